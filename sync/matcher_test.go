package sync

import (
	"testing"

	"github.com/harperreed/contactsync/models"
)

func TestMatchByGoogleID(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{GoogleID: "people/c1", FirstName: "Alice", PrimaryEmail: "alice@example.com"}, "page-1")
	m.Index(&models.Contact{GoogleID: "people/c2", FirstName: "Bob"}, "page-2")

	// Google ID wins regardless of every other field differing
	incoming := &models.Contact{
		GoogleID:     "people/c1",
		FirstName:    "Completely",
		LastName:     "Different",
		PrimaryEmail: "other@example.com",
	}
	pageID, found := m.Match(incoming)
	if !found {
		t.Fatal("expected match by Google ID")
	}
	if pageID != "page-1" {
		t.Errorf("expected page-1, got %s", pageID)
	}
}

func TestMatchByEmailCaseInsensitive(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Jane", PrimaryEmail: "jane@x.com"}, "page-1")

	pageID, found := m.Match(&models.Contact{FirstName: "Jane", PrimaryEmail: "Jane@X.com"})
	if !found {
		t.Fatal("expected case-insensitive email match")
	}
	if pageID != "page-1" {
		t.Errorf("expected page-1, got %s", pageID)
	}
}

func TestMatchByPhoneIgnoresFormatting(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Carol", PrimaryPhone: "+1 (555) 123-4567"}, "page-1")

	pageID, found := m.Match(&models.Contact{FirstName: "Someone", PrimaryPhone: "15551234567"})
	if !found {
		t.Fatal("expected phone match ignoring formatting")
	}
	if pageID != "page-1" {
		t.Errorf("expected page-1, got %s", pageID)
	}
}

func TestMatchByNameFallback(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Dana", LastName: "Smith"}, "page-1")

	pageID, found := m.Match(&models.Contact{FirstName: "DANA", LastName: "smith"})
	if !found {
		t.Fatal("expected name match")
	}
	if pageID != "page-1" {
		t.Errorf("expected page-1, got %s", pageID)
	}
}

func TestMatchPriorityEmailBeforeName(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Eve", LastName: "Jones", PrimaryEmail: "eve@x.com"}, "page-email")
	m.Index(&models.Contact{FirstName: "Eve", LastName: "Adams"}, "page-name")

	// Incoming matches page-email by email and page-name by name; email wins.
	incoming := &models.Contact{FirstName: "Eve", LastName: "Adams", PrimaryEmail: "eve@x.com"}
	pageID, found := m.Match(incoming)
	if !found {
		t.Fatal("expected match")
	}
	if pageID != "page-email" {
		t.Errorf("email should outrank name, got %s", pageID)
	}
}

func TestMatchNoMatch(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Frank", PrimaryEmail: "frank@x.com"}, "page-1")

	_, found := m.Match(&models.Contact{FirstName: "Grace", PrimaryEmail: "grace@x.com"})
	if found {
		t.Error("expected no match for unknown contact")
	}
}

func TestAddRegistersForSamePass(t *testing.T) {
	m := NewContactMatcher()

	created := &models.Contact{GoogleID: "people/c9", FirstName: "Henry", PrimaryEmail: "henry@x.com"}
	m.Add(created, "page-new")

	if pageID, found := m.Match(&models.Contact{GoogleID: "people/c9"}); !found || pageID != "page-new" {
		t.Errorf("expected Google ID lookup after Add, got %q found=%v", pageID, found)
	}
	if pageID, found := m.Match(&models.Contact{FirstName: "H", PrimaryEmail: "Henry@X.com"}); !found || pageID != "page-new" {
		t.Errorf("expected email lookup after Add, got %q found=%v", pageID, found)
	}
}

func TestDuplicateKeysLastWriteWins(t *testing.T) {
	m := NewContactMatcher()
	m.Index(&models.Contact{FirstName: "Ivy", PrimaryEmail: "shared@x.com"}, "page-1")
	m.Index(&models.Contact{FirstName: "Iris", PrimaryEmail: "shared@x.com"}, "page-2")

	pageID, _ := m.Match(&models.Contact{FirstName: "Who", PrimaryEmail: "shared@x.com"})
	if pageID != "page-2" {
		t.Errorf("last registration should win, got %s", pageID)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+1 (555) 123-4567", "15551234567"},
		{"555.123.4567", "5551234567"},
		{"", ""},
		{"ext", ""},
	}

	for _, tt := range tests {
		result := normalizePhone(tt.input)
		if result != tt.expected {
			t.Errorf("normalizePhone(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		first    string
		last     string
		expected string
	}{
		{"Jane", "Doe", "jane doe"},
		{"Jane", "", "jane"},
		{"", "", ""},
	}

	for _, tt := range tests {
		result := normalizeName(tt.first, tt.last)
		if result != tt.expected {
			t.Errorf("normalizeName(%q, %q) = %q, want %q", tt.first, tt.last, result, tt.expected)
		}
	}
}
