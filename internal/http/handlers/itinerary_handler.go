// README: Direct itinerary generation and geocoding endpoints.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/conversation"
	"wayfarer/internal/modules/geocode"
	"wayfarer/internal/modules/trip"
)

type ItineraryHandler struct {
	conv    *conversation.Service
	geocode *geocode.Service
}

func NewItineraryHandler(conv *conversation.Service, geo *geocode.Service) *ItineraryHandler {
	return &ItineraryHandler{conv: conv, geocode: geo}
}

type itineraryReq struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	People      int    `json:"people"`
	Budget      string `json:"budget"`
}

// Generate handles POST /api/itinerary: a plan without a conversation.
// Missing fields get the same defaults the dialogue engine applies.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itineraryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	if req.Days < 0 || req.Days > 30 {
		writeError(c, http.StatusBadRequest, "days out of range")
		return
	}

	st := trip.State{
		Destination: req.Destination,
		Days:        req.Days,
		People:      req.People,
		Budget:      req.Budget,
	}
	st.ApplyDefaults()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	writeJSON(c, http.StatusOK, gin.H{
		"destination": st.Destination,
		"days":        st.Days,
		"itinerary":   h.conv.BuildItinerary(ctx, st),
	})
}

type locationsReq struct {
	Destination string              `json:"destination"`
	Itinerary   []trip.ItineraryDay `json:"itinerary"`
}

// Locations handles POST /api/itinerary/locations: annotates an itinerary
// with coordinates for the map view.
func (h *ItineraryHandler) Locations(c *gin.Context) {
	var req locationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Itinerary) == 0 {
		writeError(c, http.StatusBadRequest, "itinerary is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	h.geocode.Annotate(ctx, req.Destination, req.Itinerary)
	writeJSON(c, http.StatusOK, gin.H{"itinerary": req.Itinerary})
}
