// README: Pre-built trip suggestions assembled from curated pools.
package recommend

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"wayfarer/internal/modules/trip"
)

const (
	minPlanDays  = 3
	maxPlanDays  = 7
	visitsPerDay = 3
	checkInSlot  = "Check-in"
)

// Service assembles throwaway inspiration plans. Plans are random by
// design; two requests for the same place yield different itineraries.
type Service struct {
	rng *rand.Rand
}

// NewService seeds the plan generator. Pass a fixed seed in tests for
// reproducible plans.
func NewService(seed int64) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed))}
}

// Places lists the destinations the catalogue can build a plan for.
func (s *Service) Places() []string {
	out := make([]string, len(places))
	copy(out, places)
	return out
}

// PlanFor builds a random 3 to 7 day plan for a place. Each day opens with
// a hotel check-in slot followed by three sight visits drawn from the
// combined attraction pools.
func (s *Service) PlanFor(place string) []trip.ItineraryDay {
	attractions := lo.Flatten([][]string{pois, beaches, treks, streets, monuments})

	days := s.rng.Intn(maxPlanDays-minPlanDays+1) + minPlanDays
	plan := make([]trip.ItineraryDay, 0, days)
	for day := 1; day <= days; day++ {
		hotel := hotels[s.rng.Intn(len(hotels))]
		activities := []trip.Activity{{
			Time:        checkInSlot,
			Title:       "Stay at " + hotel,
			Description: fmt.Sprintf("Enjoy your stay at the luxurious %s.", hotel),
			Location:    place,
		}}
		for i := 0; i < visitsPerDay; i++ {
			sight := attractions[s.rng.Intn(len(attractions))]
			activities = append(activities, trip.Activity{
				Time:        s.randomClock(),
				Title:       "Visit " + sight,
				Description: fmt.Sprintf("Explore the wonders of %s.", sight),
				Location:    place,
			})
		}
		plan = append(plan, trip.ItineraryDay{Day: day, Activities: activities})
	}
	return plan
}

func (s *Service) randomClock() string {
	hour := s.rng.Intn(12) + 1
	meridiem := "AM"
	if s.rng.Intn(2) == 1 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:00 %s", hour, meridiem)
}
