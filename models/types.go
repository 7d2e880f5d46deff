// ABOUTME: Data models for contact synchronization
// ABOUTME: Defines the canonical Contact record and per-pass SyncStats
package models

import (
	"fmt"
	"strings"
	"time"
)

// Contact is the canonical contact record, independent of either external
// service's schema. GoogleID is the People API resourceName
// ("people/c123456") and is empty for contacts that only exist in Notion.
type Contact struct {
	GoogleID string `json:"google_id,omitempty"`

	// Core fields, synced both ways
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name,omitempty"`
	Company        string     `json:"company,omitempty"`
	Title          string     `json:"title,omitempty"`
	Department     string     `json:"department,omitempty"`
	PrimaryEmail   string     `json:"primary_email,omitempty"`
	SecondaryEmail string     `json:"secondary_email,omitempty"`
	PrimaryPhone   string     `json:"primary_phone,omitempty"`
	SecondaryPhone string     `json:"secondary_phone,omitempty"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	Address        string     `json:"address,omitempty"`
	Website        string     `json:"website,omitempty"`

	// Notion-only fields, never synced to Google
	HideBirthday  bool       `json:"hide_birthday,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	LastContacted *time.Time `json:"last_contacted,omitempty"`

	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// DisplayName returns "First Last" for log and error messages.
func (c *Contact) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// SyncStats accumulates the outcome of one directional sync pass.
type SyncStats struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// AddError records one failed record's error message.
func (s *SyncStats) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// ErrorSummary returns at most limit error messages, appending a truncation
// marker when more were recorded.
func (s *SyncStats) ErrorSummary(limit int) []string {
	if limit <= 0 || len(s.Errors) <= limit {
		return s.Errors
	}
	summary := make([]string, 0, limit+1)
	summary = append(summary, s.Errors[:limit]...)
	summary = append(summary, fmt.Sprintf("... and %d more", len(s.Errors)-limit))
	return summary
}
