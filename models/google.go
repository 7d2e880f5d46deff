// ABOUTME: Conversions between Contact and Google People API person resources
// ABOUTME: Lenient parsing from person resources, selective serialization back
package models

import (
	"time"

	"google.golang.org/api/people/v1"
)

// Year used when Google supplies a birthday without a year (contacts often
// omit it). Round-trips back to Google as-is.
const sentinelBirthdayYear = 1900

// FromGooglePerson parses a People API person resource. The first element of
// each repeatable group is the primary value, the second (if any) the
// secondary. Malformed data degrades to zero values rather than failing; the
// provider is outside our control.
func FromGooglePerson(person *people.Person) *Contact {
	c := &Contact{GoogleID: person.ResourceName}

	if len(person.Names) > 0 {
		c.FirstName = person.Names[0].GivenName
		c.LastName = person.Names[0].FamilyName
	}

	if len(person.EmailAddresses) > 0 {
		c.PrimaryEmail = person.EmailAddresses[0].Value
	}
	if len(person.EmailAddresses) > 1 {
		c.SecondaryEmail = person.EmailAddresses[1].Value
	}

	if len(person.PhoneNumbers) > 0 {
		c.PrimaryPhone = person.PhoneNumbers[0].Value
	}
	if len(person.PhoneNumbers) > 1 {
		c.SecondaryPhone = person.PhoneNumbers[1].Value
	}

	if len(person.Birthdays) > 0 && person.Birthdays[0].Date != nil {
		c.Birthday = parseBirthday(person.Birthdays[0].Date)
	}

	if len(person.Organizations) > 0 {
		org := person.Organizations[0]
		c.Company = org.Name
		c.Title = org.Title
		c.Department = org.Department
	}

	if len(person.Addresses) > 0 {
		c.Address = person.Addresses[0].FormattedValue
	}

	if len(person.Urls) > 0 {
		c.Website = person.Urls[0].Value
	}

	return c
}

// parseBirthday validates a People API date. A missing year falls back to
// the sentinel; a missing or impossible month/day combination (e.g. Feb 30)
// yields nil instead of an error.
func parseBirthday(d *people.Date) *time.Time {
	if d.Month == 0 || d.Day == 0 {
		return nil
	}
	year := int(d.Year)
	if year == 0 {
		year = sentinelBirthdayYear
	}
	t := time.Date(year, time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so a shifted month/day means the
	// combination was invalid.
	if int64(t.Month()) != d.Month || int64(t.Day()) != d.Day {
		return nil
	}
	return &t
}

// GooglePerson serializes the contact for a People API write. Absent groups
// are omitted entirely, never sent as empty lists. Notion-only fields are
// excluded, with one crossover: HideBirthday removes the birthday from the
// payload at serialization time, leaving Contact.Birthday itself intact.
func (c *Contact) GooglePerson() *people.Person {
	person := &people.Person{}

	if c.FirstName != "" || c.LastName != "" {
		person.Names = []*people.Name{{
			GivenName:  c.FirstName,
			FamilyName: c.LastName,
		}}
	}

	var emails []*people.EmailAddress
	if c.PrimaryEmail != "" {
		emails = append(emails, &people.EmailAddress{Value: c.PrimaryEmail, Type: "work"})
	}
	if c.SecondaryEmail != "" {
		emails = append(emails, &people.EmailAddress{Value: c.SecondaryEmail, Type: "home"})
	}
	person.EmailAddresses = emails

	var phones []*people.PhoneNumber
	if c.PrimaryPhone != "" {
		phones = append(phones, &people.PhoneNumber{Value: c.PrimaryPhone, Type: "mobile"})
	}
	if c.SecondaryPhone != "" {
		phones = append(phones, &people.PhoneNumber{Value: c.SecondaryPhone, Type: "home"})
	}
	person.PhoneNumbers = phones

	if c.Birthday != nil && !c.HideBirthday {
		person.Birthdays = []*people.Birthday{{
			Date: &people.Date{
				Year:  int64(c.Birthday.Year()),
				Month: int64(c.Birthday.Month()),
				Day:   int64(c.Birthday.Day()),
			},
		}}
	}

	if c.Company != "" || c.Title != "" || c.Department != "" {
		person.Organizations = []*people.Organization{{
			Name:       c.Company,
			Title:      c.Title,
			Department: c.Department,
		}}
	}

	if c.Address != "" {
		person.Addresses = []*people.Address{{FormattedValue: c.Address}}
	}

	if c.Website != "" {
		person.Urls = []*people.Url{{Value: c.Website, Type: "homepage"}}
	}

	return person
}
