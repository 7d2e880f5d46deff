// ABOUTME: Notion API client for contact database access
// ABOUTME: Handles auth headers, cursor pagination, and rate-limit retries
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"

	// Notion caps query page size at 100.
	queryPageSize = 100

	maxRetries = 3
)

// Error is a Notion API failure. Code is Notion's machine-readable error
// code, e.g. "object_not_found" or "rate_limited".
type Error struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("notion API error (%d %s): %s", e.StatusCode, e.Code, e.Message)
}

// Page is a Notion page with its decoded property bag.
type Page struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
}

// Database is a Notion database with its property schema. Schema values are
// kept raw; callers only inspect which property names exist.
type Database struct {
	ID         string                     `json:"id"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// Client talks to the Notion API with bearer auth.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	// sleep is swapped out in tests to avoid real rate-limit waits.
	sleep func(time.Duration)
}

// NewClient creates a Notion API client with the given integration token.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sleep:      time.Sleep,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *Client) request(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", apiVersion)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("notion request failed: %w", err)
		}

		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			c.sleep(retryAfter(resp))
			continue
		}

		if resp.StatusCode >= 400 {
			apiErr := &Error{StatusCode: resp.StatusCode}
			if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
				apiErr.Message = string(data)
			}
			apiErr.StatusCode = resp.StatusCode
			return apiErr
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Second
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size"`
}

type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryDatabaseAll lists every page in a database, following cursor
// pagination to exhaustion.
func (c *Client) QueryDatabaseAll(ctx context.Context, databaseID string) ([]Page, error) {
	var pages []Page
	cursor := ""

	for {
		var resp queryResponse
		body := queryRequest{StartCursor: cursor, PageSize: queryPageSize}
		err := c.request(ctx, http.MethodPost, "/databases/"+databaseID+"/query", body, &resp)
		if err != nil {
			return nil, fmt.Errorf("failed to query database: %w", err)
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	return pages, nil
}

// GetPage fetches a single page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.request(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

type createPageRequest struct {
	Parent     pageParent          `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage creates a page in a database with the given property bag.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]Property) (*Page, error) {
	var page Page
	body := createPageRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: properties,
	}
	if err := c.request(ctx, http.MethodPost, "/pages", body, &page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &page, nil
}

type updatePageRequest struct {
	Properties map[string]Property `json:"properties"`
}

// UpdatePage replaces the given properties on an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]Property) (*Page, error) {
	var page Page
	body := updatePageRequest{Properties: properties}
	if err := c.request(ctx, http.MethodPatch, "/pages/"+pageID, body, &page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return &page, nil
}

// GetDatabase fetches a database, including its property schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.request(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	return &db, nil
}

type updateDatabaseRequest struct {
	Properties map[string]PropertySchema `json:"properties"`
}

// UpdateDatabase adds or updates database properties. Existing properties
// not named are left untouched.
func (c *Client) UpdateDatabase(ctx context.Context, databaseID string, properties map[string]PropertySchema) error {
	body := updateDatabaseRequest{Properties: properties}
	if err := c.request(ctx, http.MethodPatch, "/databases/"+databaseID, body, nil); err != nil {
		return fmt.Errorf("failed to update database: %w", err)
	}
	return nil
}
