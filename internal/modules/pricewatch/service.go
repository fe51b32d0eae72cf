package pricewatch

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

const (
	flightResults = 10
	hotelResults  = 5
)

// Service generates simulated price quotes. It stands in for a real fare
// aggregator; quotes are random each call, only the shape and ordering are
// contractual.
type Service struct {
	rng *rand.Rand
	now func() time.Time
}

func NewService(seed int64) *Service {
	return &Service{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// SearchFlights quotes fares from origin to destination around the given
// date, cheapest first. A zero date means departures starting today.
func (s *Service) SearchFlights(origin, destination string, date time.Time) []Flight {
	if date.IsZero() {
		date = s.now()
	}
	flights := make([]Flight, flightResults)
	for i := range flights {
		layovers := s.rng.Intn(3)
		stops := make([]string, layovers)
		for j := range stops {
			stops[j] = airports[s.rng.Intn(len(airports))]
		}
		flights[i] = Flight{
			ID:               i,
			Airline:          airlines[s.rng.Intn(len(airlines))],
			Origin:           origin,
			Destination:      destination,
			Price:            s.rng.Intn(1000) + 200,
			Layovers:         layovers,
			LayoverLocations: stops,
			Date:             date.AddDate(0, 0, s.rng.Intn(7)),
		}
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].Price < flights[j].Price })
	return flights
}

// SearchHotels quotes rooms in a place with availability starting from the
// given date. A zero date means availability from today.
func (s *Service) SearchHotels(place string, date time.Time) []Hotel {
	if date.IsZero() {
		date = s.now()
	}
	hotels := make([]Hotel, hotelResults)
	for i := range hotels {
		dates := make([]time.Time, 3)
		for j := range dates {
			dates[j] = date.AddDate(0, 0, s.rng.Intn(30)+j*5)
		}
		hotels[i] = Hotel{
			ID:             i,
			Name:           hotelNames[s.rng.Intn(len(hotelNames))],
			RoomType:       roomTypes[s.rng.Intn(len(roomTypes))],
			StarRating:     s.rng.Intn(5) + 1,
			AvailableDates: dates,
			Address:        fmt.Sprintf("%d %s, %s", s.rng.Intn(1000), streetNames[s.rng.Intn(len(streetNames))], place),
		}
	}
	return hotels
}
