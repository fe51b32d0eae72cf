package ai

import (
	"context"

	"wayfarer/internal/modules/trip"
)

// Provider defines the contract for the optional generative backend.
// The dialogue engine runs fully without one; every Provider failure has a
// deterministic local fallback.
type Provider interface {
	// Chat produces a conversational reply from the full message history and
	// the trip details collected so far. It may also report a destination it
	// recognised in the latest user message.
	Chat(ctx context.Context, messages []Message, details trip.State) (*ChatResult, error)

	// GenerateItinerary asks the backend for a day-by-day plan for a
	// finalized trip. Callers must validate the result before trusting it
	// over the deterministic synthesis.
	GenerateItinerary(ctx context.Context, req ItineraryRequest) ([]trip.ItineraryDay, error)
}
