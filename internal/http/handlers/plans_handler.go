// README: Recommended-plans catalogue endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/recommend"
)

type PlansHandler struct {
	plans *recommend.Service
}

func NewPlansHandler(plans *recommend.Service) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// List handles GET /api/plans.
func (h *PlansHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"places": h.plans.Places()})
}

// Get handles GET /api/plans/:place.
func (h *PlansHandler) Get(c *gin.Context) {
	place := c.Param("place")
	if place == "" {
		writeError(c, http.StatusBadRequest, "place is required")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"place":     place,
		"itinerary": h.plans.PlanFor(place),
	})
}
