// ABOUTME: Google People API client for contacts sync
// ABOUTME: Paginated listing, single fetch, and masked partial updates
package sync

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"
)

// Person fields requested on every read. Must cover everything the record
// model parses.
const personFields = "names,emailAddresses,phoneNumbers,birthdays,organizations,addresses,urls,metadata"

const listPageSize = 1000

// PeopleClient wraps the Google People API service. The oauth2 transport
// underneath handles token refresh transparently.
type PeopleClient struct {
	svc *people.Service
}

// NewPeopleClient creates an authenticated People API client.
func NewPeopleClient(ctx context.Context, token *oauth2.Token) (*PeopleClient, error) {
	if token == nil {
		return nil, fmt.Errorf("token cannot be nil")
	}

	config := NewOAuthConfig()
	httpClient := config.Client(ctx, token)

	svc, err := people.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create People service: %w", err)
	}

	return &PeopleClient{svc: svc}, nil
}

// ListContacts fetches the complete connections list, following pagination.
func (c *PeopleClient) ListContacts(ctx context.Context) ([]*people.Person, error) {
	var all []*people.Person
	pageToken := ""

	for {
		call := c.svc.People.Connections.List("people/me").
			PageSize(listPageSize).
			PersonFields(personFields).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list contacts: %w", err)
		}

		all = append(all, resp.Connections...)

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return all, nil
}

// GetContact fetches one person by resourceName ("people/c123456").
func (c *PeopleClient) GetContact(ctx context.Context, resourceName string) (*people.Person, error) {
	person, err := c.svc.People.Get(resourceName).
		PersonFields(personFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact %s: %w", resourceName, err)
	}
	return person, nil
}

// UpdateContact partially updates a person. Only the field groups named in
// updateMask change; a masked group absent from the payload is cleared. The
// person must carry the etag of the revision it was read from.
func (c *PeopleClient) UpdateContact(ctx context.Context, resourceName string, person *people.Person, updateMask []string) (*people.Person, error) {
	updated, err := c.svc.People.UpdateContact(resourceName, person).
		UpdatePersonFields(strings.Join(updateMask, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update contact %s: %w", resourceName, err)
	}
	return updated, nil
}
