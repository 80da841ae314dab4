// Package engine is the entry point to unit configuration: it wires the
// catalog lookup, cost calculator, configuration builder and validator
// behind one interface.
package engine

import (
	"context"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/lookup"
)

// Engine builds, prices and validates units against one catalog
type Engine interface {
	// BuildUnit derives a complete unit and validates it. Only a missing or
	// unresolvable class or mobility selection is an error.
	BuildUnit(ctx context.Context, input *BuildUnitInput) (*BuildUnitOutput, error)
	// ValidateUnit re-checks an already built unit without changing it
	ValidateUnit(ctx context.Context, input *ValidateUnitInput) (*ValidateUnitOutput, error)
	// ListOptions returns what a player may pick for a class
	ListOptions(ctx context.Context, input *ListOptionsInput) (*ListOptionsOutput, error)

	IsAvailableForClass(item hev.Item, className string) bool
	Lookup() lookup.Service
}
