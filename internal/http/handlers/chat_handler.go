// README: Chat handler; one dialogue turn per request.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/modules/conversation"
	"wayfarer/internal/modules/trip"
)

type ChatHandler struct {
	conv *conversation.Service
}

func NewChatHandler(conv *conversation.Service) *ChatHandler {
	return &ChatHandler{conv: conv}
}

type chatReq struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

type chatResp struct {
	SessionID string              `json:"sessionId"`
	Reply     string              `json:"reply"`
	Details   trip.State          `json:"details"`
	Itinerary []trip.ItineraryDay `json:"itinerary,omitempty"`
	Finalized bool                `json:"finalized"`
}

// Send handles POST /api/chat. An empty sessionId starts a new session.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	res, err := h.conv.ProcessTurn(ctx, req.SessionID, req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, chatResp{
		SessionID: res.SessionID,
		Reply:     res.Reply,
		Details:   res.Details,
		Itinerary: res.Itinerary,
		Finalized: res.Finalized,
	})
}

// Messages handles GET /api/chat/:id/messages.
func (h *ChatHandler) Messages(c *gin.Context) {
	sess, err := h.conv.Sessions().Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"messages":  sess.Messages(),
		"details":   sess.State(),
	})
}
