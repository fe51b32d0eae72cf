// README: Immersive-experience catalogue endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/experience"
)

type ExperienceHandler struct{}

func NewExperienceHandler() *ExperienceHandler {
	return &ExperienceHandler{}
}

// List handles GET /api/experiences.
func (h *ExperienceHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"places": experience.Places()})
}

// Get handles GET /api/experiences/:place.
func (h *ExperienceHandler) Get(c *gin.Context) {
	set, err := experience.Get(strings.ToLower(c.Param("place")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, set)
}
