// ABOUTME: Typed Notion property values for contact pages
// ABOUTME: Closed set of property variants with strict serialize/parse shapes
package notion

import (
	"strings"
	"time"
)

// Text is the write-side content of a rich text segment.
type Text struct {
	Content string `json:"content"`
}

// RichText is a single Notion rich text segment. Writes set Text; reads
// populate PlainText.
type RichText struct {
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// Date is a Notion date value. Start is either a date ("2006-01-02") or an
// RFC 3339 date-time.
type Date struct {
	Start string `json:"start"`
}

// Option is a multi_select option.
type Option struct {
	Name string `json:"name"`
}

// Property is a write-side Notion property value. The concrete types below
// are the only implementations; the property bag is never handled as an open
// dictionary.
type Property interface {
	isProperty()
}

type TitleProperty struct {
	Title []RichText `json:"title"`
}

type TextProperty struct {
	RichText []RichText `json:"rich_text"`
}

type EmailProperty struct {
	Email *string `json:"email"`
}

type PhoneProperty struct {
	PhoneNumber *string `json:"phone_number"`
}

type DateProperty struct {
	Date *Date `json:"date"`
}

type CheckboxProperty struct {
	Checkbox bool `json:"checkbox"`
}

type MultiSelectProperty struct {
	MultiSelect []Option `json:"multi_select"`
}

type URLProperty struct {
	URL *string `json:"url"`
}

func (TitleProperty) isProperty()       {}
func (TextProperty) isProperty()        {}
func (EmailProperty) isProperty()       {}
func (PhoneProperty) isProperty()       {}
func (DateProperty) isProperty()        {}
func (CheckboxProperty) isProperty()    {}
func (MultiSelectProperty) isProperty() {}
func (URLProperty) isProperty()         {}

// NewTitle builds a title property. Titles always carry exactly one segment.
func NewTitle(value string) TitleProperty {
	return TitleProperty{Title: []RichText{{Text: &Text{Content: value}}}}
}

// NewText builds a rich_text property. Empty input serializes as an empty
// segment list, which is how Notion represents an absent text value.
func NewText(value string) TextProperty {
	if value == "" {
		return TextProperty{RichText: []RichText{}}
	}
	return TextProperty{RichText: []RichText{{Text: &Text{Content: value}}}}
}

// NewEmail builds an email property, explicit null when empty.
func NewEmail(value string) EmailProperty {
	if value == "" {
		return EmailProperty{}
	}
	return EmailProperty{Email: &value}
}

// NewPhone builds a phone_number property, explicit null when empty.
func NewPhone(value string) PhoneProperty {
	if value == "" {
		return PhoneProperty{}
	}
	return PhoneProperty{PhoneNumber: &value}
}

// NewDate builds a date-only date property, explicit null when nil.
func NewDate(value *time.Time) DateProperty {
	if value == nil {
		return DateProperty{}
	}
	return DateProperty{Date: &Date{Start: value.Format("2006-01-02")}}
}

// NewDateTime builds a date property carrying a full timestamp.
func NewDateTime(value *time.Time) DateProperty {
	if value == nil {
		return DateProperty{}
	}
	return DateProperty{Date: &Date{Start: value.UTC().Format(time.RFC3339)}}
}

// NewCheckbox builds a checkbox property.
func NewCheckbox(value bool) CheckboxProperty {
	return CheckboxProperty{Checkbox: value}
}

// NewMultiSelect builds a multi_select property. A nil slice serializes as an
// empty option list.
func NewMultiSelect(values []string) MultiSelectProperty {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Name: v})
	}
	return MultiSelectProperty{MultiSelect: options}
}

// NewURL builds a url property, explicit null when empty.
func NewURL(value string) URLProperty {
	if value == "" {
		return URLProperty{}
	}
	return URLProperty{URL: &value}
}

// PropertyValue is the read-side decoding of one page property. Only the
// field matching the property's type is populated.
type PropertyValue struct {
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type,omitempty"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Date        *Date      `json:"date,omitempty"`
	Checkbox    bool       `json:"checkbox,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	URL         *string    `json:"url,omitempty"`
}

// Properties is a decoded page property bag keyed by property name.
type Properties map[string]PropertyValue

func plainText(segments []RichText) string {
	if len(segments) == 0 {
		return ""
	}
	if segments[0].PlainText != "" {
		return segments[0].PlainText
	}
	if segments[0].Text != nil {
		return segments[0].Text.Content
	}
	return ""
}

// TitleText returns the first title segment's text, empty when absent.
func (p Properties) TitleText(name string) string {
	return plainText(p[name].Title)
}

// Text returns the first rich_text segment's text, empty when absent.
func (p Properties) Text(name string) string {
	return plainText(p[name].RichText)
}

// Email returns the email value, empty when null.
func (p Properties) Email(name string) string {
	if v := p[name].Email; v != nil {
		return *v
	}
	return ""
}

// Phone returns the phone_number value, empty when null.
func (p Properties) Phone(name string) string {
	if v := p[name].PhoneNumber; v != nil {
		return *v
	}
	return ""
}

// Date returns the date start parsed to a UTC date, nil when absent or
// unparseable. Date-time starts (including a trailing Z) are truncated to
// their date component.
func (p Properties) Date(name string) *time.Time {
	v := p[name].Date
	if v == nil || v.Start == "" {
		return nil
	}
	start := v.Start
	if strings.ContainsRune(start, 'T') {
		ts, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return nil
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		return &day
	}
	day, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil
	}
	return &day
}

// Checkbox returns the checkbox value, false when absent.
func (p Properties) Checkbox(name string) bool {
	return p[name].Checkbox
}

// MultiSelect returns the selected option names.
func (p Properties) MultiSelect(name string) []string {
	options := p[name].MultiSelect
	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Name)
	}
	return names
}

// URL returns the url value, empty when null.
func (p Properties) URL(name string) string {
	if v := p[name].URL; v != nil {
		return *v
	}
	return ""
}
