// ABOUTME: Merge policy for contacts present on both Google and Notion
// ABOUTME: Gap-fill merge where Google wins and Notion enriches empty fields
package sync

import "github.com/harperreed/contactsync/models"

// MergeContacts reconciles two representations of the same person into the
// record to write back to Google. Per field: the Google value wins when
// non-empty, otherwise the Notion value fills the gap. Names are not
// gap-filled; the Google copy is the base. The birthday is only filled from
// Notion when Hide Birthday is unchecked, and a checked Hide Birthday
// removes the birthday outright, even one Google already has.
func MergeContacts(google, notionContact *models.Contact) *models.Contact {
	merged := *google

	if merged.PrimaryEmail == "" {
		merged.PrimaryEmail = notionContact.PrimaryEmail
	}
	if merged.SecondaryEmail == "" {
		merged.SecondaryEmail = notionContact.SecondaryEmail
	}
	if merged.PrimaryPhone == "" {
		merged.PrimaryPhone = notionContact.PrimaryPhone
	}
	if merged.SecondaryPhone == "" {
		merged.SecondaryPhone = notionContact.SecondaryPhone
	}
	if merged.Birthday == nil && notionContact.Birthday != nil && !notionContact.HideBirthday {
		merged.Birthday = notionContact.Birthday
	}
	if merged.Company == "" {
		merged.Company = notionContact.Company
	}
	if merged.Title == "" {
		merged.Title = notionContact.Title
	}
	if merged.Department == "" {
		merged.Department = notionContact.Department
	}
	if merged.Address == "" {
		merged.Address = notionContact.Address
	}
	if merged.Website == "" {
		merged.Website = notionContact.Website
	}

	// Notion-only fields travel with the Notion side.
	merged.HideBirthday = notionContact.HideBirthday
	merged.Tags = notionContact.Tags
	merged.Notes = notionContact.Notes
	merged.LastContacted = notionContact.LastContacted

	// Suppression takes precedence over every fill rule above.
	if notionContact.HideBirthday {
		merged.Birthday = nil
	}

	return &merged
}
