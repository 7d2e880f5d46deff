// ABOUTME: Contact identity resolution across Google and Notion datasets
// ABOUTME: Multi-key index mapping contacts to existing Notion page IDs
package sync

import (
	"strings"
	"unicode"

	"github.com/harperreed/contactsync/models"
)

// ContactMatcher answers whether an incoming contact already exists in the
// Notion database and under which page. Four lookup keys are maintained;
// when the dataset itself contains duplicate key values, the last page
// indexed wins.
type ContactMatcher struct {
	byGoogleID map[string]string
	byEmail    map[string]string
	byPhone    map[string]string
	byName     map[string]string
}

// NewContactMatcher creates an empty matcher.
func NewContactMatcher() *ContactMatcher {
	return &ContactMatcher{
		byGoogleID: make(map[string]string),
		byEmail:    make(map[string]string),
		byPhone:    make(map[string]string),
		byName:     make(map[string]string),
	}
}

// Index registers an existing page under every key the contact carries.
func (m *ContactMatcher) Index(c *models.Contact, pageID string) {
	if c.GoogleID != "" {
		m.byGoogleID[c.GoogleID] = pageID
	}
	if email := normalizeEmail(c.PrimaryEmail); email != "" {
		m.byEmail[email] = pageID
	}
	if phone := normalizePhone(c.PrimaryPhone); phone != "" {
		m.byPhone[phone] = pageID
	}
	if c.FirstName != "" {
		if name := normalizeName(c.FirstName, c.LastName); name != "" {
			m.byName[name] = pageID
		}
	}
}

// Match resolves the incoming contact to an existing page ID.
//
// Priority, first hit wins:
//  1. Google ID (authoritative, assigned by this system)
//  2. primary email, case-insensitive (contacts migrated from CSV)
//  3. primary phone, formatting stripped
//  4. "first last" name, lowercased (imports with no contact channel;
//     knowingly lossy across distinct people sharing a name)
func (m *ContactMatcher) Match(c *models.Contact) (string, bool) {
	if c.GoogleID != "" {
		if pageID, ok := m.byGoogleID[c.GoogleID]; ok {
			return pageID, true
		}
	}
	if c.PrimaryEmail != "" {
		if pageID, ok := m.byEmail[normalizeEmail(c.PrimaryEmail)]; ok {
			return pageID, true
		}
	}
	if c.PrimaryPhone != "" {
		if pageID, ok := m.byPhone[normalizePhone(c.PrimaryPhone)]; ok {
			return pageID, true
		}
	}
	if c.FirstName != "" {
		if pageID, ok := m.byName[normalizeName(c.FirstName, c.LastName)]; ok {
			return pageID, true
		}
	}
	return "", false
}

// Add registers a page written during the current pass under its Google ID
// and email keys, so later contacts in the same pass match against it.
func (m *ContactMatcher) Add(c *models.Contact, pageID string) {
	if c.GoogleID != "" {
		m.byGoogleID[c.GoogleID] = pageID
	}
	if email := normalizeEmail(c.PrimaryEmail); email != "" {
		m.byEmail[email] = pageID
	}
}

// GoogleIDCount reports how many indexed pages carry a Google ID.
func (m *ContactMatcher) GoogleIDCount() int {
	return len(m.byGoogleID)
}

// normalizeEmail converts email to lowercase for comparison.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizePhone strips everything but digits, so "+1 (555) 123-4567" and
// "15551234567" compare equal.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeName builds the lowercased "first last" lookup key.
func normalizeName(first, last string) string {
	return strings.TrimSpace(strings.ToLower(first) + " " + strings.ToLower(last))
}
