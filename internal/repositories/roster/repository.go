// Package roster defines the interface for roster persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/hev-builder/internal/repositories/roster Repository

import (
	"context"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
)

// Repository stores rosters whole; units live inside their roster
type Repository interface {
	// Save creates or replaces a roster
	// Returns errors.InvalidArgument for a nil roster or empty ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a roster by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the roster doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a roster by ID
	// Returns errors.NotFound if the roster doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every roster ordered by creation time
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a roster
type SaveInput struct {
	Roster *hev.Roster
}

// SaveOutput defines the output for saving a roster
type SaveOutput struct{}

// GetInput defines the input for getting a roster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a roster
type GetOutput struct {
	Roster *hev.Roster
}

// DeleteInput defines the input for deleting a roster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a roster
type DeleteOutput struct{}

// ListInput defines the input for listing rosters
type ListInput struct{}

// ListOutput defines the output for listing rosters
type ListOutput struct {
	Rosters []*hev.Roster
}

const (
	errRosterNil     = "roster cannot be nil"
	errRosterIDEmpty = "roster ID cannot be empty"
)
