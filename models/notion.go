// ABOUTME: Conversions between Contact and Notion page property bags
// ABOUTME: Property names match the contacts database schema exactly
package models

import (
	"time"

	"github.com/harperreed/contactsync/notion"
)

// Property names in the Notion contacts database. Must stay in lockstep with
// notion.ContactSchema.
const (
	propFirstName      = "First Name"
	propLastName       = "Last Name"
	propCompany        = "Company"
	propJobTitle       = "Job Title"
	propDepartment     = "Department"
	propPrimaryEmail   = "Primary Email"
	propSecondaryEmail = "Secondary Email"
	propPrimaryPhone   = "Primary Phone"
	propSecondaryPhone = "Secondary Phone"
	propBirthday       = "Birthday"
	propAddress        = "Address"
	propWebsite        = "Website"
	propHideBirthday   = "Hide Birthday"
	propTags           = "Tags"
	propNotes          = "Notes"
	propLastContacted  = "Last Contacted"
	propGoogleID       = "Google ID"
	propLastSynced     = "Last Synced"
)

// FromNotionPage parses a Notion contact page. String properties default to
// empty, nullable scalars to nil.
func FromNotionPage(page *notion.Page) *Contact {
	props := page.Properties
	return &Contact{
		GoogleID:       props.Text(propGoogleID),
		FirstName:      props.TitleText(propFirstName),
		LastName:       props.Text(propLastName),
		Company:        props.Text(propCompany),
		Title:          props.Text(propJobTitle),
		Department:     props.Text(propDepartment),
		PrimaryEmail:   props.Email(propPrimaryEmail),
		SecondaryEmail: props.Email(propSecondaryEmail),
		PrimaryPhone:   props.Phone(propPrimaryPhone),
		SecondaryPhone: props.Phone(propSecondaryPhone),
		Birthday:       props.Date(propBirthday),
		Address:        props.Text(propAddress),
		Website:        props.URL(propWebsite),
		HideBirthday:   props.Checkbox(propHideBirthday),
		Tags:           props.MultiSelect(propTags),
		Notes:          props.Text(propNotes),
		LastContacted:  props.Date(propLastContacted),
		LastSyncedAt:   props.Date(propLastSynced),
	}
}

// NotionProperties serializes the contact for a Notion page write. Every
// schema key is always present, with explicit null or empty-list values for
// absent fields, since page updates replace properties wholesale. Last
// Synced is stamped with the current time on every call.
func (c *Contact) NotionProperties() map[string]notion.Property {
	now := time.Now().UTC()
	return map[string]notion.Property{
		propFirstName:      notion.NewTitle(c.FirstName),
		propLastName:       notion.NewText(c.LastName),
		propCompany:        notion.NewText(c.Company),
		propJobTitle:       notion.NewText(c.Title),
		propDepartment:     notion.NewText(c.Department),
		propPrimaryEmail:   notion.NewEmail(c.PrimaryEmail),
		propSecondaryEmail: notion.NewEmail(c.SecondaryEmail),
		propPrimaryPhone:   notion.NewPhone(c.PrimaryPhone),
		propSecondaryPhone: notion.NewPhone(c.SecondaryPhone),
		propBirthday:       notion.NewDate(c.Birthday),
		propAddress:        notion.NewText(c.Address),
		propWebsite:        notion.NewURL(c.Website),
		propHideBirthday:   notion.NewCheckbox(c.HideBirthday),
		propTags:           notion.NewMultiSelect(c.Tags),
		propNotes:          notion.NewText(c.Notes),
		propLastContacted:  notion.NewDate(c.LastContacted),
		propGoogleID:       notion.NewText(c.GoogleID),
		propLastSynced:     notion.NewDateTime(&now),
	}
}
