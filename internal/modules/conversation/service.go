// README: Dialogue policy engine: slot filling, clarification cap, finalize.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/trip"
)

var ErrEmptyMessage = errors.New("empty message")

// HistoryRecorder persists finalized trips. Recording is best-effort; a
// failure never affects the turn.
type HistoryRecorder interface {
	RecordFinalized(ctx context.Context, state trip.State, itinerary []trip.ItineraryDay) error
}

// Service runs one dialogue turn at a time against session-scoped state.
// provider and history may be nil; every turn then resolves on the
// deterministic local rules alone.
type Service struct {
	store    *Store
	provider ai.Provider
	history  HistoryRecorder
}

func NewService(store *Store, provider ai.Provider, history HistoryRecorder) *Service {
	return &Service{store: store, provider: provider, history: history}
}

// TurnResult is the outcome of one processed utterance. Exactly one
// assistant message is produced per turn; Itinerary is set only when the
// trip was finalized this turn.
type TurnResult struct {
	SessionID string
	Reply     string
	Details   trip.State
	Itinerary []trip.ItineraryDay
	Finalized bool
}

const (
	askDestinationMsg = "I'd love to help you plan something amazing! Where would you like to go? 🌍"
	rateLimitedMsg    = "I'm getting a lot of questions right now! Please try again in a moment. ⏳"
)

// Sessions exposes the underlying store for transport-layer lookups.
func (s *Service) Sessions() *Store { return s.store }

// ProcessTurn runs the dialogue policy for one utterance. An empty
// sessionID starts a fresh session.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	var sess *Session
	if sessionID == "" {
		sess = s.store.Create()
	} else {
		var err error
		if sess, err = s.store.Get(sessionID); err != nil {
			return nil, err
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.log = append(sess.log, Message{Role: RoleUser, Content: text})

	fields := trip.Extract(text, sess.state.Destination)

	// One backend call per turn, matching the original widget. The result
	// only rephrases the assistant message and may supplement a destination
	// the rule extractor missed; it never overrides extracted values.
	var chat *ai.ChatResult
	var chatErr error
	if s.provider != nil {
		chat, chatErr = s.provider.Chat(ctx, toAIMessages(sess.log), sess.state)
		if chatErr != nil {
			log.Printf("chat backend: %v", chatErr)
		} else if fields.Destination == "" && chat.Destination != "" {
			fields.Destination = trip.NormalizeDestination(chat.Destination)
		}
	}

	st := sess.state
	switch {
	case fields.Destination != "" && !strings.EqualFold(fields.Destination, st.Destination):
		// Switching destinations discards stale details: full overwrite with
		// whatever else this utterance carried, and the question counter
		// starts over.
		st = trip.State{
			Destination: fields.Destination,
			Days:        fields.Days,
			People:      fields.People,
			Budget:      fields.Budget,
		}
	case st.Destination != "":
		if fields.Days > 0 {
			st.Days = fields.Days
		}
		if fields.People > 0 {
			st.People = fields.People
		}
		if fields.Budget != "" {
			st.Budget = fields.Budget
		}
	default:
		// No destination yet, nothing recognised: ask for one. The question
		// counter only tracks clarifications after a destination is known.
		reply := s.turnReply(chat, chatErr, askDestinationMsg)
		sess.log = append(sess.log, Message{Role: RoleAssistant, Content: reply})
		return &TurnResult{SessionID: sess.ID, Reply: reply, Details: st}, nil
	}

	if missing := st.Missing(); len(missing) > 0 && st.QuestionsAsked < trip.MaxQuestions {
		st.QuestionsAsked++
		reply := s.turnReply(chat, chatErr, clarifyingQuestion(missing[0], st.Destination))
		if errors.Is(chatErr, ai.ErrRateLimited) {
			// No clarifying question actually reached the user this turn.
			st.QuestionsAsked--
		}
		sess.state = st
		sess.log = append(sess.log, Message{Role: RoleAssistant, Content: reply})
		return &TurnResult{SessionID: sess.ID, Reply: reply, Details: st}, nil
	}

	defaulted := st.ApplyDefaults()
	itinerary := s.BuildItinerary(ctx, st)
	reply := finalizeMessage(st, defaulted)

	sess.state = st
	sess.log = append(sess.log, Message{Role: RoleAssistant, Content: reply})

	if s.history != nil {
		if err := s.history.RecordFinalized(ctx, st, itinerary); err != nil {
			log.Printf("record finalized trip: %v", err)
		}
	}

	return &TurnResult{
		SessionID: sess.ID,
		Reply:     reply,
		Details:   st,
		Itinerary: itinerary,
		Finalized: true,
	}, nil
}

// BuildItinerary produces the day-by-day plan for a finalized state: the
// generative backend when available and structurally valid, the
// deterministic synthesis otherwise. It cannot fail.
func (s *Service) BuildItinerary(ctx context.Context, st trip.State) []trip.ItineraryDay {
	if s.provider != nil {
		itinerary, err := s.provider.GenerateItinerary(ctx, ai.ItineraryRequest{
			Destination: st.Destination,
			Days:        st.Days,
			People:      st.People,
			Budget:      st.Budget,
		})
		if err != nil {
			log.Printf("itinerary backend: %v", err)
		} else if verr := trip.ValidateItinerary(itinerary); verr != nil {
			log.Printf("itinerary payload rejected: %v", verr)
		} else {
			return itinerary
		}
	}
	return trip.Synthesize(st)
}

// turnReply picks the assistant message for a turn: the backend's phrasing
// when it answered, the specific rate-limit notice when it was throttled,
// and the deterministic text otherwise.
func (s *Service) turnReply(chat *ai.ChatResult, chatErr error, deterministic string) string {
	if s.provider == nil {
		return deterministic
	}
	if errors.Is(chatErr, ai.ErrRateLimited) {
		return rateLimitedMsg
	}
	if chatErr != nil || chat == nil || strings.TrimSpace(chat.Reply) == "" {
		return deterministic
	}
	return chat.Reply
}

func clarifyingQuestion(field, destination string) string {
	switch field {
	case "days":
		return fmt.Sprintf("%s, great choice! How many days are you planning to spend there?", destination)
	case "people":
		return "How many people are traveling?"
	default:
		return "What's your budget? You can say budget, mid-range, luxury, or a specific amount."
	}
}

func finalizeMessage(st trip.State, defaulted []string) string {
	msg := fmt.Sprintf("Perfect! Your %d-day trip to %s is ready 🎉 Open the itinerary tab for the full day-by-day plan.", st.Days, st.Destination)
	if len(defaulted) == 0 {
		return msg
	}
	parts := make([]string, 0, len(defaulted))
	for _, f := range defaulted {
		switch f {
		case "days":
			parts = append(parts, fmt.Sprintf("days (%d)", st.Days))
		case "people":
			parts = append(parts, fmt.Sprintf("people (%d)", st.People))
		case "budget":
			parts = append(parts, fmt.Sprintf("budget (%s)", st.Budget))
		}
	}
	return msg + fmt.Sprintf("\n\nI went ahead and assumed a few details: %s. Just tell me if you'd like to change them!", strings.Join(parts, ", "))
}

func toAIMessages(log []Message) []ai.Message {
	out := make([]ai.Message, len(log))
	for i, m := range log {
		out[i] = ai.Message{Role: string(m.Role), Content: m.Content}
	}
	return out
}
