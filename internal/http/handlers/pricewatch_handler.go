// README: Price tracker endpoints (simulated quotes).
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/pricewatch"
)

type PricewatchHandler struct {
	prices *pricewatch.Service
}

func NewPricewatchHandler(prices *pricewatch.Service) *PricewatchHandler {
	return &PricewatchHandler{prices: prices}
}

// Flights handles GET /api/pricewatch/flights.
func (h *PricewatchHandler) Flights(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}
	date, ok := parseDate(c.Query("date"))
	if !ok {
		writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"flights": h.prices.SearchFlights(origin, destination, date)})
}

// Hotels handles GET /api/pricewatch/hotels.
func (h *PricewatchHandler) Hotels(c *gin.Context) {
	place := strings.TrimSpace(c.Query("place"))
	if place == "" {
		writeError(c, http.StatusBadRequest, "place is required")
		return
	}
	date, ok := parseDate(c.Query("date"))
	if !ok {
		writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": h.prices.SearchHotels(place, date)})
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
