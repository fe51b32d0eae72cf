// README: Deterministic fallback itinerary generation from a finalized state.
package trip

import (
	"errors"
	"fmt"
)

// mealCosts maps a budget tier to the display cost band of each meal slot.
// Unknown tiers, including literal "$<n>" amounts, price as mid-range.
type mealCosts struct {
	Breakfast string
	Lunch     string
	Dinner    string
}

var costBands = map[string]mealCosts{
	BudgetLow:    {Breakfast: "$8-15", Lunch: "$15-25", Dinner: "$20-35"},
	BudgetMid:    {Breakfast: "$15-25", Lunch: "$25-40", Dinner: "$40-70"},
	BudgetLuxury: {Breakfast: "$25-40", Lunch: "$50-80", Dinner: "$80-150"},
}

func bandsFor(budget string) mealCosts {
	if b, ok := costBands[budget]; ok {
		return b
	}
	return costBands[BudgetMid]
}

// Synthesize expands a finalized trip state into a day-by-day plan. It is
// pure and total: same state in, same itinerary out, and it cannot fail.
// The party size documents intent but does not change the content.
func Synthesize(state State) []ItineraryDay {
	dest := state.Destination
	bands := bandsFor(state.Budget)

	itinerary := make([]ItineraryDay, 0, state.Days)
	for day := 1; day <= state.Days; day++ {
		lastDay := day == state.Days

		activities := []Activity{
			{
				Time:        "9:00 AM",
				Title:       "Breakfast & Coffee",
				Location:    fmt.Sprintf("Local café in %s", dest),
				Description: "Start your day with a delicious breakfast at a charming local spot. Try the regional specialties and enjoy the morning atmosphere.",
				Cost:        bands.Breakfast,
			},
			{
				Time:        "11:00 AM",
				Title:       morningTitle(day),
				Location:    fmt.Sprintf("Historic District of %s", dest),
				Description: "Explore the main attractions and landmarks. Take your time to soak in the local culture and snap some photos at iconic spots.",
				Cost:        "$10-20",
			},
			{
				Time:        "1:30 PM",
				Title:       "Lunch Experience",
				Location:    fmt.Sprintf("Popular restaurant in %s", dest),
				Description: "Enjoy authentic local cuisine at a highly-rated restaurant. Don't miss the signature dishes that make this place famous among locals.",
				Cost:        bands.Lunch,
			},
			{
				Time:        "3:30 PM",
				Title:       afternoonTitle(day),
				Location:    afternoonLocation(day, dest),
				Description: "Immerse yourself in the local culture and learn about the area's rich history and natural beauty.",
				Cost:        "$15-30",
			},
		}

		// The sunset stop is skipped on the final day to leave room for the
		// farewell dinner; a 1-day trip therefore has none at all.
		if !lastDay {
			activities = append(activities, Activity{
				Time:        "6:00 PM",
				Title:       "Sunset Viewpoint",
				Location:    fmt.Sprintf("Scenic overlook in %s", dest),
				Description: "Catch the golden hour from one of the best vantage points in town. Bring your camera.",
				Cost:        "Free",
			})
		}

		activities = append(activities, Activity{
			Time:        "7:30 PM",
			Title:       dinnerTitle(lastDay),
			Location:    fmt.Sprintf("Dining district in %s", dest),
			Description: "Cap off your day with a memorable dinner. Choose from various restaurants offering everything from street food to fine dining.",
			Cost:        bands.Dinner,
		})

		itinerary = append(itinerary, ItineraryDay{Day: day, Activities: activities})
	}
	return itinerary
}

func morningTitle(day int) string {
	if day == 1 {
		return "City Walking Tour"
	}
	return "Visit Historic Landmark"
}

func afternoonTitle(day int) string {
	if day%2 == 0 {
		return "Museum & Gallery Visit"
	}
	return "Park & Nature Walk"
}

func afternoonLocation(day int, dest string) string {
	if day%2 == 0 {
		return fmt.Sprintf("City Museum of %s", dest)
	}
	return fmt.Sprintf("Central Park of %s", dest)
}

func dinnerTitle(lastDay bool) string {
	if lastDay {
		return "Farewell Dinner"
	}
	return "Dinner Experience"
}

// ValidateItinerary checks the structural contract an external generator
// must meet before its output is trusted over the fallback synthesis:
// a non-empty sequence of days numbered contiguously from 1, each with at
// least one activity.
func ValidateItinerary(itinerary []ItineraryDay) error {
	if len(itinerary) == 0 {
		return errors.New("empty itinerary")
	}
	for i, day := range itinerary {
		if day.Day != i+1 {
			return fmt.Errorf("day %d out of sequence (want %d)", day.Day, i+1)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("day %d has no activities", day.Day)
		}
	}
	return nil
}
