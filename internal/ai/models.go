package ai

import "errors"

// ErrRateLimited marks quota or rate-limit failures from the backend so the
// engine can show a distinct friendly message instead of a generic fallback.
var ErrRateLimited = errors.New("ai backend rate limited")

// Message is one role-tagged chat turn forwarded to the backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatResult captures the structured output of a chat completion.
type ChatResult struct {
	// Reply is the user-facing assistant message.
	Reply string `json:"reply"`

	// Destination is a place name the model recognised in the latest user
	// message, empty when none. It supplements the rule-based extractor and
	// never overrides it.
	Destination string `json:"destination,omitempty"`
}

// ItineraryRequest carries a finalized trip to the itinerary backend.
// All four fields are required.
type ItineraryRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	People      int    `json:"people"`
	Budget      string `json:"budget"`
}
