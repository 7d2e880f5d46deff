package notion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesDateParsing(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		expected *time.Time
	}{
		{"date only", "2024-03-03", timePtr(2024, time.March, 3)},
		{"datetime with Z", "2024-03-03T10:30:00Z", timePtr(2024, time.March, 3)},
		{"datetime with offset", "2024-03-03T23:30:00+09:00", timePtr(2024, time.March, 3)},
		{"garbage", "not-a-date", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Properties{"When": {Date: &Date{Start: tt.start}}}
			got := props.Date("When")
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func timePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPropertiesMissingKeysAreZero(t *testing.T) {
	props := Properties{}

	assert.Empty(t, props.TitleText("First Name"))
	assert.Empty(t, props.Text("Notes"))
	assert.Empty(t, props.Email("Primary Email"))
	assert.Empty(t, props.Phone("Primary Phone"))
	assert.Nil(t, props.Date("Birthday"))
	assert.False(t, props.Checkbox("Hide Birthday"))
	assert.Empty(t, props.MultiSelect("Tags"))
	assert.Empty(t, props.URL("Website"))
}

func TestPlainTextFallsBackToContent(t *testing.T) {
	// Write-shaped rich text (no plain_text) still reads back, which the
	// in-memory fakes in the sync tests rely on.
	props := Properties{
		"Notes": {RichText: []RichText{{Text: &Text{Content: "hello"}}}},
	}
	assert.Equal(t, "hello", props.Text("Notes"))
}

func TestNewTextEmptyIsEmptyList(t *testing.T) {
	prop := NewText("")
	require.NotNil(t, prop.RichText)
	assert.Empty(t, prop.RichText)
}

func TestNewEmailEmptyIsNull(t *testing.T) {
	assert.Nil(t, NewEmail("").Email)
	require.NotNil(t, NewEmail("a@b.com").Email)
	assert.Equal(t, "a@b.com", *NewEmail("a@b.com").Email)
}

func TestNewMultiSelectNilIsEmptyList(t *testing.T) {
	prop := NewMultiSelect(nil)
	require.NotNil(t, prop.MultiSelect)
	assert.Empty(t, prop.MultiSelect)
}
