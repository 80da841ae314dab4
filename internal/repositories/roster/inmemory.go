package roster

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	"github.com/KirkDiggler/hev-builder/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*hev.Roster
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*hev.Roster),
	}
}

// Save stores a copy of the roster
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}
	if input.Roster.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Roster.ID] = input.Roster.Clone()

	return &SaveOutput{}, nil
}

// Get returns a copy of the stored roster
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}

	return &GetOutput{Roster: roster.Clone()}, nil
}

// Delete removes a roster
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRosterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("roster with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns copies of every roster, oldest first
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rosters := make([]*hev.Roster, 0, len(r.store))
	for _, roster := range r.store {
		rosters = append(rosters, roster.Clone())
	}
	sort.Slice(rosters, func(i, j int) bool {
		if rosters[i].CreatedAt.Equal(rosters[j].CreatedAt) {
			return rosters[i].ID < rosters[j].ID
		}
		return rosters[i].CreatedAt.Before(rosters[j].CreatedAt)
	})

	return &ListOutput{Rosters: rosters}, nil
}

// Compile-time check that InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)
