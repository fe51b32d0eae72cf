// README: Trip state record, budget tiers, and itinerary value objects.
package trip

// Budget tier tags. A budget may also be a literal amount such as "$2000";
// anything that is not BudgetLow or BudgetLuxury is priced as mid-range.
const (
	BudgetLow    = "budget"
	BudgetMid    = "mid-range"
	BudgetLuxury = "luxury"
)

// Finalization defaults applied to fields the user never supplied.
const (
	DefaultDays   = 5
	DefaultPeople = 2
	DefaultBudget = BudgetMid

	// MaxQuestions caps clarifying questions per destination so the
	// conversation always converges to an itinerary.
	MaxQuestions = 2
)

// State is the accumulated trip record for one planning session.
// Zero values mean "not provided yet".
type State struct {
	Destination    string `json:"destination,omitempty"`
	Days           int    `json:"days,omitempty"`
	People         int    `json:"people,omitempty"`
	Budget         string `json:"budget,omitempty"`
	QuestionsAsked int    `json:"-"`
}

// Complete reports whether a destination is known.
func (s State) Complete() bool { return s.Destination != "" }

// FullySpecified reports whether all four trip fields are known.
func (s State) FullySpecified() bool {
	return s.Destination != "" && s.Days > 0 && s.People > 0 && s.Budget != ""
}

// Finalizable reports whether the dialogue may proceed to generation.
func (s State) Finalizable() bool {
	return s.Complete() && (s.FullySpecified() || s.QuestionsAsked >= MaxQuestions)
}

// Missing returns the unset fields among days, people, and budget, in the
// fixed clarification order.
func (s State) Missing() []string {
	var m []string
	if s.Days == 0 {
		m = append(m, "days")
	}
	if s.People == 0 {
		m = append(m, "people")
	}
	if s.Budget == "" {
		m = append(m, "budget")
	}
	return m
}

// ApplyDefaults fills every unset field with its default and returns the
// names of the fields that were defaulted, in clarification order.
func (s *State) ApplyDefaults() []string {
	var defaulted []string
	if s.Days == 0 {
		s.Days = DefaultDays
		defaulted = append(defaulted, "days")
	}
	if s.People == 0 {
		s.People = DefaultPeople
		defaulted = append(defaulted, "people")
	}
	if s.Budget == "" {
		s.Budget = DefaultBudget
		defaulted = append(defaulted, "budget")
	}
	return defaulted
}

// Fields holds the values recognised in a single utterance. Zero values
// mean the utterance said nothing about that field.
type Fields struct {
	Destination string
	Days        int
	People      int
	Budget      string
}

// Activity is one itinerary slot. Coordinates are attached later by the
// geocoding layer, never by the synthesizer.
type Activity struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Cost        string   `json:"cost,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// ItineraryDay groups the activities of one day. Day numbers within an
// itinerary form a contiguous ascending range 1..N.
type ItineraryDay struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}
