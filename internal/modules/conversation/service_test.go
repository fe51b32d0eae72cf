// README: Dialogue policy tests (slot filling, question cap, fallbacks).
package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/trip"
)

func newTestService() *Service {
	return NewService(NewStore(), nil, nil)
}

func mustTurn(t *testing.T, svc *Service, sessionID, text string) *TurnResult {
	t.Helper()
	res, err := svc.ProcessTurn(context.Background(), sessionID, text)
	if err != nil {
		t.Fatalf("ProcessTurn(%q): %v", text, err)
	}
	return res
}

func TestNoDestinationPromptsWithoutCounting(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "I want to plan a trip")
	if res.Details.Destination != "" {
		t.Fatalf("destination = %q, want none", res.Details.Destination)
	}
	if res.Details.QuestionsAsked != 0 {
		t.Errorf("questionsAsked = %d, want 0", res.Details.QuestionsAsked)
	}
	if res.Finalized || res.Itinerary != nil {
		t.Error("no itinerary may be produced without a destination")
	}
	if res.Reply == "" {
		t.Error("turn must still produce an assistant message")
	}

	// Repeated destination-less turns never advance the counter.
	for i := 0; i < 4; i++ {
		res = mustTurn(t, svc, res.SessionID, "hmm, let me think...")
		if res.Details.QuestionsAsked != 0 {
			t.Fatalf("turn %d: questionsAsked = %d, want 0", i, res.Details.QuestionsAsked)
		}
		if res.Finalized {
			t.Fatal("must not finalize without a destination")
		}
	}
}

func TestOneShotUtteranceFinalizesImmediately(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "5 days in Paris, just the two of us, mid-range budget")

	want := trip.State{Destination: "Paris", Days: 5, People: 2, Budget: trip.BudgetMid}
	if res.Details != want {
		t.Fatalf("details = %+v, want %+v", res.Details, want)
	}
	if !res.Finalized {
		t.Fatal("fully specified turn must finalize immediately")
	}
	if len(res.Itinerary) != 5 {
		t.Fatalf("itinerary length = %d, want 5", len(res.Itinerary))
	}
	if strings.Contains(res.Reply, "assumed") {
		t.Errorf("no defaulted-fields note expected, got %q", res.Reply)
	}
}

func TestSlotFillingAsksInFixedOrder(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "Tokyo")
	if res.Details.Destination != "Tokyo" {
		t.Fatalf("destination = %q, want Tokyo", res.Details.Destination)
	}
	if res.Details.QuestionsAsked != 1 {
		t.Fatalf("questionsAsked = %d, want 1", res.Details.QuestionsAsked)
	}
	if !strings.Contains(res.Reply, "days") {
		t.Errorf("first question should ask about days, got %q", res.Reply)
	}

	res = mustTurn(t, svc, res.SessionID, "4 days")
	if res.Details.Days != 4 {
		t.Fatalf("days = %d, want 4", res.Details.Days)
	}
	if res.Details.QuestionsAsked != 2 {
		t.Fatalf("questionsAsked = %d, want 2", res.Details.QuestionsAsked)
	}
	if !strings.Contains(res.Reply, "people") {
		t.Errorf("second question should ask about people, got %q", res.Reply)
	}

	// Cap reached: the third turn finalizes with the budget defaulted.
	res = mustTurn(t, svc, res.SessionID, "2 people")
	if !res.Finalized {
		t.Fatal("turn after cap must finalize")
	}
	want := trip.State{Destination: "Tokyo", Days: 4, People: 2, Budget: trip.BudgetMid, QuestionsAsked: 2}
	if res.Details != want {
		t.Fatalf("details = %+v, want %+v", res.Details, want)
	}
	if len(res.Itinerary) != 4 {
		t.Fatalf("itinerary length = %d, want 4", len(res.Itinerary))
	}
	if !strings.Contains(res.Reply, "budget (mid-range)") {
		t.Errorf("reply should note the defaulted budget, got %q", res.Reply)
	}
	if strings.Contains(res.Reply, "days (") || strings.Contains(res.Reply, "people (") {
		t.Errorf("reply must list only defaulted fields, got %q", res.Reply)
	}
}

func TestQuestionCapForcesFinalizeWithDefaults(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "Reykjavik")
	res = mustTurn(t, svc, res.SessionID, "not sure yet")
	if res.Finalized {
		t.Fatal("second question turn must not finalize yet")
	}
	if res.Details.QuestionsAsked != 2 {
		t.Fatalf("questionsAsked = %d, want 2", res.Details.QuestionsAsked)
	}

	res = mustTurn(t, svc, res.SessionID, "whatever you think is best")
	if !res.Finalized {
		t.Fatal("cap reached: turn must finalize")
	}
	want := trip.State{Destination: "Reykjavik", Days: 5, People: 2, Budget: trip.BudgetMid, QuestionsAsked: 2}
	if res.Details != want {
		t.Fatalf("details = %+v, want %+v", res.Details, want)
	}
	for _, frag := range []string{"days (5)", "people (2)", "budget (mid-range)"} {
		if !strings.Contains(res.Reply, frag) {
			t.Errorf("reply missing defaulted note %q: %q", frag, res.Reply)
		}
	}
	if len(res.Itinerary) != 5 {
		t.Fatalf("itinerary length = %d, want 5", len(res.Itinerary))
	}
}

func TestNewDestinationResetsState(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "a week in Rome with 4 people, luxury")
	if !res.Finalized {
		t.Fatal("fully specified first turn should finalize")
	}

	// Switching destinations must clear days/people/budget and the counter.
	res = mustTurn(t, svc, res.SessionID, "actually let's go to Lisbon")
	want := trip.State{Destination: "Lisbon", QuestionsAsked: 1}
	if res.Details != want {
		t.Fatalf("details after switch = %+v, want %+v", res.Details, want)
	}
	if res.Finalized {
		t.Fatal("destination switch with no other fields must not finalize")
	}
}

func TestSameDestinationMergesFields(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "going to Lisbon")
	res = mustTurn(t, svc, res.SessionID, "3 days in lisbon on a budget")

	if res.Details.Destination != "Lisbon" {
		t.Fatalf("destination = %q, want Lisbon (case-insensitive match, no reset)", res.Details.Destination)
	}
	if res.Details.Days != 3 || res.Details.Budget != trip.BudgetLow {
		t.Fatalf("merge failed: %+v", res.Details)
	}
	if res.Details.QuestionsAsked != 2 {
		t.Errorf("questionsAsked = %d, want 2 (no reset on same destination)", res.Details.QuestionsAsked)
	}
}

func TestQuestionsNeverExceedCap(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "Oslo")
	for i := 0; i < 5; i++ {
		res = mustTurn(t, svc, res.SessionID, "hmm")
		if res.Details.QuestionsAsked > trip.MaxQuestions {
			t.Fatalf("questionsAsked = %d exceeds cap", res.Details.QuestionsAsked)
		}
	}
	if !res.Finalized {
		t.Fatal("conversation must converge to an itinerary")
	}
}

func TestLogGetsExactlyOneAssistantMessagePerTurn(t *testing.T) {
	svc := newTestService()

	res := mustTurn(t, svc, "", "Tokyo")
	sess, err := svc.Sessions().Get(res.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	// greeting + user + assistant
	if got := len(sess.Messages()); got != 3 {
		t.Fatalf("log length = %d, want 3", got)
	}

	mustTurn(t, svc, res.SessionID, "5 days")
	if got := len(sess.Messages()); got != 5 {
		t.Fatalf("log length = %d, want 5", got)
	}
	msgs := sess.Messages()
	if msgs[0].Role != RoleAssistant || msgs[1].Role != RoleUser || msgs[2].Role != RoleAssistant {
		t.Errorf("unexpected role order: %+v", msgs)
	}
}

func TestEmptyMessageRejected(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ProcessTurn(context.Background(), "", "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestUnknownSessionRejected(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ProcessTurn(context.Background(), "nope", "Tokyo"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

// stubProvider scripts backend behaviour for fallback tests.
type stubProvider struct {
	chatResult *ai.ChatResult
	chatErr    error
	itinerary  []trip.ItineraryDay
	itinErr    error
}

func (s *stubProvider) Chat(_ context.Context, _ []ai.Message, _ trip.State) (*ai.ChatResult, error) {
	return s.chatResult, s.chatErr
}

func (s *stubProvider) GenerateItinerary(_ context.Context, _ ai.ItineraryRequest) ([]trip.ItineraryDay, error) {
	return s.itinerary, s.itinErr
}

func TestBackendFailureFallsBackToSynthesis(t *testing.T) {
	tests := []struct {
		name string
		stub *stubProvider
	}{
		{"transport error", &stubProvider{chatErr: errors.New("boom"), itinErr: errors.New("boom")}},
		{"empty itinerary", &stubProvider{chatErr: errors.New("boom"), itinerary: []trip.ItineraryDay{}}},
		{"misnumbered days", &stubProvider{chatErr: errors.New("boom"), itinerary: []trip.ItineraryDay{{Day: 7, Activities: []trip.Activity{{Title: "x"}}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(NewStore(), tt.stub, nil)
			res := mustTurn(t, svc, "", "3 days in Paris, solo, luxury")
			if !res.Finalized {
				t.Fatal("turn must finalize despite backend failure")
			}
			if len(res.Itinerary) != 3 {
				t.Fatalf("fallback itinerary length = %d, want 3", len(res.Itinerary))
			}
			if res.Itinerary[0].Activities[0].Cost != "$25-40" {
				t.Errorf("fallback must apply luxury cost bands, got %q", res.Itinerary[0].Activities[0].Cost)
			}
		})
	}
}

func TestValidBackendItineraryIsUsed(t *testing.T) {
	custom := []trip.ItineraryDay{
		{Day: 1, Activities: []trip.Activity{{Time: "10:00 AM", Title: "Custom Tour", Location: "Somewhere"}}},
		{Day: 2, Activities: []trip.Activity{{Time: "11:00 AM", Title: "Custom Museum", Location: "Elsewhere"}}},
	}
	svc := NewService(NewStore(), &stubProvider{chatErr: errors.New("unused"), itinerary: custom}, nil)

	res := mustTurn(t, svc, "", "2 days in Paris, solo, luxury")
	if len(res.Itinerary) != 2 || res.Itinerary[0].Activities[0].Title != "Custom Tour" {
		t.Fatalf("backend itinerary not used: %+v", res.Itinerary)
	}
}

func TestRateLimitedBackendShowsNoticeAndDoesNotBurnQuestion(t *testing.T) {
	svc := NewService(NewStore(), &stubProvider{chatErr: ai.ErrRateLimited}, nil)

	res := mustTurn(t, svc, "", "Tokyo")
	if !strings.Contains(res.Reply, "try again") {
		t.Errorf("reply = %q, want the rate-limit notice", res.Reply)
	}
	if res.Details.QuestionsAsked != 0 {
		t.Errorf("questionsAsked = %d, want 0 (no question was delivered)", res.Details.QuestionsAsked)
	}
}

func TestBackendRecognisedDestinationSupplementsExtractor(t *testing.T) {
	stub := &stubProvider{
		chatResult: &ai.ChatResult{Reply: "Kyoto sounds wonderful! How long are you staying?", Destination: "kyoto"},
		itinErr:    errors.New("unused"),
	}
	svc := NewService(NewStore(), stub, nil)

	res := mustTurn(t, svc, "", "not sure, got any ideas?")
	if res.Details.Destination != "Kyoto" {
		t.Fatalf("destination = %q, want Kyoto from backend hint", res.Details.Destination)
	}
	if res.Details.QuestionsAsked != 1 {
		t.Errorf("questionsAsked = %d, want 1", res.Details.QuestionsAsked)
	}
}

type recordedTrip struct {
	state trip.State
	days  int
}

type stubHistory struct {
	records []recordedTrip
	err     error
}

func (s *stubHistory) RecordFinalized(_ context.Context, st trip.State, itin []trip.ItineraryDay) error {
	s.records = append(s.records, recordedTrip{state: st, days: len(itin)})
	return s.err
}

func TestFinalizedTripsAreRecorded(t *testing.T) {
	hist := &stubHistory{}
	svc := NewService(NewStore(), nil, hist)

	mustTurn(t, svc, "", "5 days in Paris, just the two of us, mid-range budget")
	if len(hist.records) != 1 {
		t.Fatalf("recorded %d trips, want 1", len(hist.records))
	}
	if hist.records[0].state.Destination != "Paris" || hist.records[0].days != 5 {
		t.Errorf("recorded trip = %+v", hist.records[0])
	}
}

func TestHistoryFailureDoesNotBreakTurn(t *testing.T) {
	svc := NewService(NewStore(), nil, &stubHistory{err: errors.New("db down")})

	res := mustTurn(t, svc, "", "5 days in Paris, solo, luxury")
	if !res.Finalized || len(res.Itinerary) != 5 {
		t.Fatal("turn must complete despite history failure")
	}
}
