// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// RosterBuilder provides a fluent interface for building test Roster instances
type RosterBuilder struct {
	roster *hev.Roster
}

// NewRosterBuilder creates a new builder with minimal defaults
func NewRosterBuilder() *RosterBuilder {
	now := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	return &RosterBuilder{
		roster: &hev.Roster{
			ID:        "roster-test-123",
			Name:      "Test Roster",
			Units:     []*hev.UnitConfiguration{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the roster ID
func (b *RosterBuilder) WithID(id string) *RosterBuilder {
	b.roster.ID = id
	return b
}

// WithName sets the roster name
func (b *RosterBuilder) WithName(name string) *RosterBuilder {
	b.roster.Name = name
	return b
}

// WithUnits appends units
func (b *RosterBuilder) WithUnits(units ...*hev.UnitConfiguration) *RosterBuilder {
	b.roster.Units = append(b.roster.Units, units...)
	return b
}

// WithCreatedAt sets both timestamps
func (b *RosterBuilder) WithCreatedAt(t time.Time) *RosterBuilder {
	b.roster.CreatedAt = t
	b.roster.UpdatedAt = t
	return b
}

// Build returns the roster
func (b *RosterBuilder) Build() *hev.Roster {
	return b.roster
}
