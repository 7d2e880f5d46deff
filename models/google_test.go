package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/people/v1"
)

func TestFromGooglePerson(t *testing.T) {
	person := &people.Person{
		ResourceName: "people/c123",
		Names:        []*people.Name{{GivenName: "John", FamilyName: "Doe"}},
		EmailAddresses: []*people.EmailAddress{
			{Value: "john@work.com", Type: "work"},
			{Value: "john@home.com", Type: "home"},
			{Value: "ignored@third.com"},
		},
		PhoneNumbers: []*people.PhoneNumber{
			{Value: "+1 555 111 2222"},
			{Value: "+1 555 333 4444"},
		},
		Birthdays: []*people.Birthday{
			{Date: &people.Date{Year: 1990, Month: 1, Day: 15}},
		},
		Organizations: []*people.Organization{
			{Name: "Acme", Title: "Engineer", Department: "Eng"},
		},
		Addresses: []*people.Address{{FormattedValue: "123 Main St"}},
		Urls:      []*people.Url{{Value: "https://example.com"}},
	}

	c := FromGooglePerson(person)

	assert.Equal(t, "people/c123", c.GoogleID)
	assert.Equal(t, "John", c.FirstName)
	assert.Equal(t, "Doe", c.LastName)
	assert.Equal(t, "john@work.com", c.PrimaryEmail)
	assert.Equal(t, "john@home.com", c.SecondaryEmail, "third and later emails are dropped")
	assert.Equal(t, "+1 555 111 2222", c.PrimaryPhone)
	assert.Equal(t, "+1 555 333 4444", c.SecondaryPhone)
	require.NotNil(t, c.Birthday)
	assert.Equal(t, time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC), *c.Birthday)
	assert.Equal(t, "Acme", c.Company)
	assert.Equal(t, "Engineer", c.Title)
	assert.Equal(t, "Eng", c.Department)
	assert.Equal(t, "123 Main St", c.Address)
	assert.Equal(t, "https://example.com", c.Website)
}

func TestFromGooglePersonEmpty(t *testing.T) {
	c := FromGooglePerson(&people.Person{ResourceName: "people/c1"})

	assert.Equal(t, "people/c1", c.GoogleID)
	assert.Empty(t, c.FirstName)
	assert.Empty(t, c.PrimaryEmail)
	assert.Nil(t, c.Birthday)
}

func TestBirthdayMissingYearUsesSentinel(t *testing.T) {
	person := &people.Person{
		ResourceName: "people/c1",
		Birthdays:    []*people.Birthday{{Date: &people.Date{Month: 6, Day: 15}}},
	}

	c := FromGooglePerson(person)

	require.NotNil(t, c.Birthday)
	assert.Equal(t, 1900, c.Birthday.Year())
}

func TestMalformedBirthdayDegradesToNil(t *testing.T) {
	tests := []struct {
		name string
		date *people.Date
	}{
		{"impossible day", &people.Date{Year: 1990, Month: 2, Day: 30}},
		{"missing day", &people.Date{Year: 1990, Month: 2}},
		{"missing month", &people.Date{Year: 1990, Day: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := &people.Person{
				ResourceName: "people/c1",
				Birthdays:    []*people.Birthday{{Date: tt.date}},
			}
			c := FromGooglePerson(person)
			assert.Nil(t, c.Birthday)
		})
	}
}

func TestGooglePersonOmitsAbsentGroups(t *testing.T) {
	c := &Contact{GoogleID: "people/c1", FirstName: "Ann"}

	person := c.GooglePerson()

	require.Len(t, person.Names, 1)
	assert.Equal(t, "Ann", person.Names[0].GivenName)
	assert.Nil(t, person.EmailAddresses)
	assert.Nil(t, person.PhoneNumbers)
	assert.Nil(t, person.Birthdays)
	assert.Nil(t, person.Organizations)
	assert.Nil(t, person.Addresses)
	assert.Nil(t, person.Urls)
}

func TestGooglePersonHideBirthdayExcludesAtSerialization(t *testing.T) {
	birthday := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)
	c := &Contact{
		GoogleID:     "people/c1",
		FirstName:    "Ann",
		Birthday:     &birthday,
		HideBirthday: true,
	}

	person := c.GooglePerson()

	assert.Nil(t, person.Birthdays, "hidden birthday must not serialize")
	require.NotNil(t, c.Birthday, "the canonical record keeps the true birthday")
	assert.Equal(t, birthday, *c.Birthday)
}

func TestGooglePersonRoundTrip(t *testing.T) {
	birthday := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)
	original := &Contact{
		GoogleID:       "people/c1",
		FirstName:      "Ann",
		LastName:       "Lee",
		Company:        "Acme",
		Title:          "Engineer",
		PrimaryEmail:   "ann@acme.com",
		SecondaryEmail: "ann@home.com",
		PrimaryPhone:   "555-1234",
		Birthday:       &birthday,
		Address:        "123 Main St",
		Website:        "https://ann.example.com",
	}

	parsed := FromGooglePerson(original.GooglePerson())
	parsed.GoogleID = original.GoogleID // resourceName is server-assigned

	assert.Equal(t, original, parsed)
}
