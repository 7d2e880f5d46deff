// ABOUTME: Bidirectional contact sync orchestration between Google and Notion
// ABOUTME: Index build, per-record upserts, merge write-back, error isolation
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/api/people/v1"

	"github.com/harperreed/contactsync/models"
	"github.com/harperreed/contactsync/notion"
)

// NotionService is the Notion API surface the syncer consumes.
type NotionService interface {
	QueryDatabaseAll(ctx context.Context, databaseID string) ([]notion.Page, error)
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.Property) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]notion.Property) (*notion.Page, error)
}

// GoogleService is the People API surface the syncer consumes.
type GoogleService interface {
	ListContacts(ctx context.Context) ([]*people.Person, error)
	GetContact(ctx context.Context, resourceName string) (*people.Person, error)
	UpdateContact(ctx context.Context, resourceName string, person *people.Person, updateMask []string) (*people.Person, error)
}

// ProgressFunc receives human-readable progress lines. Nil means silent.
type ProgressFunc func(format string, args ...any)

// Syncer drives sync passes between a Google account and a Notion contacts
// database. It is not safe for concurrent use; one sync invocation owns the
// matcher and statistics exclusively.
type Syncer struct {
	notion     NotionService
	google     GoogleService
	databaseID string
	matcher    *ContactMatcher

	// Progress, when set, receives status lines during a pass.
	Progress ProgressFunc
}

// NewSyncer creates a syncer over already-authenticated clients.
func NewSyncer(notionClient NotionService, googleClient GoogleService, databaseID string) *Syncer {
	return &Syncer{
		notion:     notionClient,
		google:     googleClient,
		databaseID: databaseID,
	}
}

func (s *Syncer) progressf(format string, args ...any) {
	if s.Progress != nil {
		s.Progress(format, args...)
	}
}

// BuildIndex rebuilds the identity index from every page currently in the
// Notion database. Must run before either directional pass.
func (s *Syncer) BuildIndex(ctx context.Context) error {
	s.progressf("Building lookup indexes from Notion...")

	pages, err := s.notion.QueryDatabaseAll(ctx, s.databaseID)
	if err != nil {
		return fmt.Errorf("failed to list Notion pages: %w", err)
	}

	s.matcher = NewContactMatcher()
	for i := range pages {
		contact := models.FromNotionPage(&pages[i])
		s.matcher.Index(contact, pages[i].ID)
	}

	s.progressf("Indexed %d Notion pages (%d with Google ID)", len(pages), s.matcher.GoogleIDCount())
	return nil
}

// SyncFromGoogle runs the Google → Notion pass: fetch every Google contact,
// resolve it against the index, and upsert it to Notion. Notion-only fields
// on existing pages are preserved. A failure on one contact is recorded and
// the pass continues; only the initial listing error aborts.
func (s *Syncer) SyncFromGoogle(ctx context.Context) (*models.SyncStats, error) {
	if s.matcher == nil {
		return nil, fmt.Errorf("identity index not built; call BuildIndex first")
	}

	s.progressf("Fetching contacts from Google...")
	persons, err := s.google.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google contacts: %w", err)
	}
	s.progressf("Fetched %d contacts from Google", len(persons))

	stats := &models.SyncStats{}
	for i, person := range persons {
		contact := models.FromGooglePerson(person)
		if err := s.upsertToNotion(ctx, contact, stats); err != nil {
			stats.AddError(fmt.Sprintf("failed to sync %q (%s): %v", contact.DisplayName(), contact.GoogleID, err))
		}
		if (i+1)%10 == 0 || i+1 == len(persons) {
			s.progressf("  → %d/%d contacts synced", i+1, len(persons))
		}
	}

	return stats, nil
}

// upsertToNotion writes one Google contact to Notion, updating the matched
// page or creating a new one.
func (s *Syncer) upsertToNotion(ctx context.Context, contact *models.Contact, stats *models.SyncStats) error {
	pageID, found := s.matcher.Match(contact)
	if !found {
		page, err := s.notion.CreatePage(ctx, s.databaseID, contact.NotionProperties())
		if err != nil {
			return err
		}
		s.matcher.Add(contact, page.ID)
		stats.Created++
		return nil
	}

	// Reload the page fresh and copy the Notion-owned fields forward so the
	// wholesale property write never clobbers them.
	page, err := s.notion.GetPage(ctx, pageID)
	if err != nil {
		return err
	}
	existing := models.FromNotionPage(page)
	contact.HideBirthday = existing.HideBirthday
	contact.Tags = existing.Tags
	contact.Notes = existing.Notes
	contact.LastContacted = existing.LastContacted

	if _, err := s.notion.UpdatePage(ctx, pageID, contact.NotionProperties()); err != nil {
		return err
	}
	s.matcher.Add(contact, pageID)
	stats.Updated++
	return nil
}

// SyncToGoogle runs the Notion → Google pass. Pages without a Google ID are
// manual Notion entries and are skipped, never pushed. For the rest, the
// current Google person is fetched, merged (Google wins, Notion fills gaps,
// Hide Birthday deletes), and written back only when the serialized person
// actually changed.
func (s *Syncer) SyncToGoogle(ctx context.Context) (*models.SyncStats, error) {
	s.progressf("Fetching contacts from Notion...")
	pages, err := s.notion.QueryDatabaseAll(ctx, s.databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list Notion pages: %w", err)
	}
	s.progressf("Fetched %d contacts from Notion", len(pages))

	stats := &models.SyncStats{}
	for i := range pages {
		contact := models.FromNotionPage(&pages[i])

		// Manual Notion entries have no Google counterpart to update.
		if contact.GoogleID == "" {
			stats.Skipped++
			continue
		}

		updated, err := s.pushToGoogle(ctx, contact)
		if err != nil {
			stats.AddError(fmt.Sprintf("failed to sync %q (%s) to Google: %v", contact.DisplayName(), contact.GoogleID, err))
			continue
		}
		if updated {
			s.progressf("  Updated Google contact: %s", contact.DisplayName())
			stats.Updated++
		}
	}

	return stats, nil
}

// pushToGoogle merges one Notion contact into its Google counterpart and
// updates Google when the result differs. Reports whether a write happened.
func (s *Syncer) pushToGoogle(ctx context.Context, notionContact *models.Contact) (bool, error) {
	person, err := s.google.GetContact(ctx, notionContact.GoogleID)
	if err != nil {
		return false, err
	}

	googleContact := models.FromGooglePerson(person)
	merged := MergeContacts(googleContact, notionContact)

	before := googleContact.GooglePerson()
	after := merged.GooglePerson()
	if personsEqual(before, after) {
		return false, nil
	}

	// The mask is the union of field groups on either side, so a group the
	// merge removed (a suppressed birthday) is cleared rather than left
	// untouched by the partial update.
	mask := updateMask(before, after)
	after.Etag = person.Etag
	if _, err := s.google.UpdateContact(ctx, notionContact.GoogleID, after, mask); err != nil {
		return false, err
	}
	return true, nil
}

// FullSync runs a complete bidirectional pass: index build, Google → Notion,
// then Notion → Google. Phases are strictly sequential.
func (s *Syncer) FullSync(ctx context.Context) (googleStats, notionStats *models.SyncStats, err error) {
	if err = s.BuildIndex(ctx); err != nil {
		return nil, nil, err
	}
	if googleStats, err = s.SyncFromGoogle(ctx); err != nil {
		return nil, nil, err
	}
	if notionStats, err = s.SyncToGoogle(ctx); err != nil {
		return googleStats, nil, err
	}
	return googleStats, notionStats, nil
}

// personsEqual compares the serialized forms of two person payloads.
func personsEqual(a, b *people.Person) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

// People API field groups in updatePersonFields order.
var personFieldGroups = []struct {
	name    string
	present func(*people.Person) bool
}{
	{"names", func(p *people.Person) bool { return len(p.Names) > 0 }},
	{"emailAddresses", func(p *people.Person) bool { return len(p.EmailAddresses) > 0 }},
	{"phoneNumbers", func(p *people.Person) bool { return len(p.PhoneNumbers) > 0 }},
	{"birthdays", func(p *people.Person) bool { return len(p.Birthdays) > 0 }},
	{"organizations", func(p *people.Person) bool { return len(p.Organizations) > 0 }},
	{"addresses", func(p *people.Person) bool { return len(p.Addresses) > 0 }},
	{"urls", func(p *people.Person) bool { return len(p.Urls) > 0 }},
}

// updateMask lists every field group present on either person.
func updateMask(before, after *people.Person) []string {
	var mask []string
	for _, group := range personFieldGroups {
		if group.present(before) || group.present(after) {
			mask = append(mask, group.name)
		}
	}
	return mask
}
