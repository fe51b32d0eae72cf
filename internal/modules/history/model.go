// README: Finalized-trip history persisted across restarts.
package history

import (
	"time"

	"wayfarer/internal/modules/trip"
)

// Trip is one finalized plan as stored. The itinerary is kept as produced
// at finalize time; later synthesis changes do not rewrite history.
type Trip struct {
	ID          int64               `json:"id"`
	Destination string              `json:"destination"`
	Days        int                 `json:"days"`
	People      int                 `json:"people"`
	Budget      string              `json:"budget"`
	Itinerary   []trip.ItineraryDay `json:"itinerary"`
	CreatedAt   time.Time           `json:"createdAt"`
}
