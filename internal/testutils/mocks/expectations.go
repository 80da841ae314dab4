// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hev-builder/internal/entities/hev"
	rosterrepo "github.com/KirkDiggler/hev-builder/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/hev-builder/internal/repositories/roster/mock"
)

// ExpectRosterGet sets up a mock expectation for getting a roster. The
// repository hands back a copy, as the real backends do.
func ExpectRosterGet(
	ctx context.Context, mockRepo *rostermock.MockRepository,
	rosterID string, roster *hev.Roster, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, rosterrepo.GetInput{ID: rosterID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, rosterrepo.GetInput{ID: rosterID}).
		Return(&rosterrepo.GetOutput{Roster: roster.Clone()}, nil)
}

// ExpectRosterSave sets up a mock expectation for saving any roster. saved,
// when non-nil, receives a copy of what was stored.
func ExpectRosterSave(ctx context.Context, mockRepo *rostermock.MockRepository, saved *hev.Roster, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rosterrepo.SaveInput) (*rosterrepo.SaveOutput, error) {
			if err != nil {
				return nil, err
			}
			if saved != nil {
				*saved = *input.Roster.Clone()
			}
			return &rosterrepo.SaveOutput{}, nil
		})
}

// ExpectRosterDelete sets up a mock expectation for deleting a roster
func ExpectRosterDelete(ctx context.Context, mockRepo *rostermock.MockRepository, rosterID string, err error) {
	mockRepo.EXPECT().
		Delete(ctx, rosterrepo.DeleteInput{ID: rosterID}).
		Return(&rosterrepo.DeleteOutput{}, err)
}
