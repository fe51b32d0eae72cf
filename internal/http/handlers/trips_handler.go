// README: Finalized-trip history endpoints.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/history"
)

type TripsHandler struct {
	history *history.Service
}

func NewTripsHandler(hist *history.Service) *TripsHandler {
	return &TripsHandler{history: hist}
}

// Recent handles GET /api/trips/recent.
func (h *TripsHandler) Recent(c *gin.Context) {
	if h.history == nil {
		writeError(c, http.StatusServiceUnavailable, "trip history is not configured")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	trips, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if trips == nil {
		trips = []history.Trip{}
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}
