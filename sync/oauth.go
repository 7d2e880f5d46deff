// ABOUTME: OAuth configuration and token management for the Google People API
// ABOUTME: Handles OAuth config from env, token storage at XDG paths, refresh tokens
package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// NewOAuthConfig creates the OAuth2 config for the People API. Users supply
// their own OAuth app credentials via environment variables.
func NewOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  "http://localhost:8080/oauth/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/contacts",
		},
		Endpoint: google.Endpoint,
	}
}

// TokenPath returns the XDG-compliant path for storing OAuth tokens.
func TokenPath() string {
	return filepath.Join(xdg.DataHome, "contactsync", "google-credentials.json")
}

// SaveToken saves an OAuth token to the XDG data directory.
func SaveToken(token *oauth2.Token) error {
	path := TokenPath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return nil
}

// LoadToken loads an OAuth token from the XDG data directory.
func LoadToken() (*oauth2.Token, error) {
	f, err := os.Open(TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return &token, nil
}

// TokenFromRefreshToken builds a token carrying only a refresh token, for
// headless use with GOOGLE_REFRESH_TOKEN. The oauth2 transport exchanges it
// for an access token on first use.
func TokenFromRefreshToken(refreshToken string) *oauth2.Token {
	return &oauth2.Token{RefreshToken: refreshToken}
}

// ResolveToken picks credentials for a sync run: the refresh token when set,
// otherwise the stored token file from a previous auth run.
func ResolveToken(refreshToken string) (*oauth2.Token, error) {
	if refreshToken != "" {
		return TokenFromRefreshToken(refreshToken), nil
	}

	token, err := LoadToken()
	if err != nil {
		return nil, fmt.Errorf("no Google credentials: set GOOGLE_REFRESH_TOKEN or run 'contactsync auth' first: %w", err)
	}
	return token, nil
}

// OAuthConfigured reports whether OAuth app credentials are present.
func OAuthConfigured() bool {
	return os.Getenv("GOOGLE_CLIENT_ID") != "" && os.Getenv("GOOGLE_CLIENT_SECRET") != ""
}
