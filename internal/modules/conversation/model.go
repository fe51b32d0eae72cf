// README: Session aggregate: trip state plus the append-only message log.
package conversation

import (
	"sync"

	"wayfarer/internal/modules/trip"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn. Messages are immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Greeting opens every new session's log.
const Greeting = "Hey traveler 👋 Where do you want to go next? I'll help you plan the perfect journey!"

// Session owns one conversation's trip state and message log. The caller
// contract is one in-flight turn per session; mu enforces it defensively
// against misbehaving callers.
type Session struct {
	ID string

	mu    sync.Mutex
	state trip.State
	log   []Message
}

func newSession(id string) *Session {
	return &Session{
		ID:  id,
		log: []Message{{Role: RoleAssistant, Content: Greeting}},
	}
}

// State returns a copy of the current trip state.
func (s *Session) State() trip.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the conversation log in insertion order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.log))
	copy(out, s.log)
	return out
}
