// README: Simulated fare and room quotes for the price tracker.
package pricewatch

import "time"

// Flight is one simulated fare quote.
type Flight struct {
	ID               int       `json:"id"`
	Airline          string    `json:"airline"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Price            int       `json:"price"`
	Layovers         int       `json:"layovers"`
	LayoverLocations []string  `json:"layoverLocations"`
	Date             time.Time `json:"date"`
}

// Hotel is one simulated room quote.
type Hotel struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	RoomType       string      `json:"roomType"`
	StarRating     int         `json:"starRating"`
	AvailableDates []time.Time `json:"availableDates"`
	Address        string      `json:"address"`
}
