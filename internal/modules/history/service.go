package history

import (
	"context"

	"wayfarer/internal/modules/trip"
)

const defaultRecentLimit = 20

// Service sits between the dialogue engine and the store. It implements
// conversation.HistoryRecorder.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordFinalized persists a finalized trip. The caller treats failures as
// best-effort; this method just reports them.
func (s *Service) RecordFinalized(ctx context.Context, state trip.State, itinerary []trip.ItineraryDay) error {
	return s.store.Insert(ctx, &Trip{
		Destination: state.Destination,
		Days:        state.Days,
		People:      state.People,
		Budget:      state.Budget,
		Itinerary:   itinerary,
	})
}

// Recent lists the latest finalized trips. limit <= 0 uses the default.
func (s *Service) Recent(ctx context.Context, limit int) ([]Trip, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
