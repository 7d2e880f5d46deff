// ABOUTME: Notion database schema definition for contacts
// ABOUTME: Property definitions used by the init-schema command
package notion

// PropertySchema declares a database property's type. Exactly one field is
// set; empty-object values are what the Notion API expects for typed
// property creation.
type PropertySchema struct {
	Title       *struct{}          `json:"title,omitempty"`
	RichText    *struct{}          `json:"rich_text,omitempty"`
	Email       *struct{}          `json:"email,omitempty"`
	PhoneNumber *struct{}          `json:"phone_number,omitempty"`
	Date        *struct{}          `json:"date,omitempty"`
	Checkbox    *struct{}          `json:"checkbox,omitempty"`
	MultiSelect *MultiSelectSchema `json:"multi_select,omitempty"`
	URL         *struct{}          `json:"url,omitempty"`
}

// MultiSelectSchema carries the option list for a multi_select property.
type MultiSelectSchema struct {
	Options []Option `json:"options"`
}

var empty = &struct{}{}

// ContactSchema is the full property set for a contacts database. The title
// property is First Name; Google ID and Last Synced are sync metadata.
var ContactSchema = map[string]PropertySchema{
	"First Name":      {Title: empty},
	"Last Name":       {RichText: empty},
	"Company":         {RichText: empty},
	"Job Title":       {RichText: empty},
	"Department":      {RichText: empty},
	"Primary Email":   {Email: empty},
	"Secondary Email": {Email: empty},
	"Primary Phone":   {PhoneNumber: empty},
	"Secondary Phone": {PhoneNumber: empty},
	"Birthday":        {Date: empty},
	"Address":         {RichText: empty},
	"Website":         {URL: empty},
	// Notion-only fields, never synced to Google
	"Hide Birthday":  {Checkbox: empty},
	"Tags":           {MultiSelect: &MultiSelectSchema{Options: []Option{}}},
	"Notes":          {RichText: empty},
	"Last Contacted": {Date: empty},
	// Metadata
	"Google ID":   {RichText: empty},
	"Last Synced": {Date: empty},
}
