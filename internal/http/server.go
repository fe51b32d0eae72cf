// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/modules/conversation"
	"wayfarer/internal/modules/geocode"
	"wayfarer/internal/modules/history"
	"wayfarer/internal/modules/pricewatch"
	"wayfarer/internal/modules/recommend"
)

type ServerDeps struct {
	Conversation *conversation.Service
	Geocode      *geocode.Service
	Recommend    *recommend.Service
	Pricewatch   *pricewatch.Service
	History      *history.Service // nil when no database is configured
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging())

	chat := handlers.NewChatHandler(s.deps.Conversation)
	r.POST("/api/chat", chat.Send)
	r.GET("/api/chat/:id/messages", chat.Messages)

	itinerary := handlers.NewItineraryHandler(s.deps.Conversation, s.deps.Geocode)
	r.POST("/api/itinerary", itinerary.Generate)
	r.POST("/api/itinerary/locations", itinerary.Locations)

	plans := handlers.NewPlansHandler(s.deps.Recommend)
	r.GET("/api/plans", plans.List)
	r.GET("/api/plans/:place", plans.Get)

	experiences := handlers.NewExperienceHandler()
	r.GET("/api/experiences", experiences.List)
	r.GET("/api/experiences/:place", experiences.Get)

	prices := handlers.NewPricewatchHandler(s.deps.Pricewatch)
	r.GET("/api/pricewatch/flights", prices.Flights)
	r.GET("/api/pricewatch/hotels", prices.Hotels)

	trips := handlers.NewTripsHandler(s.deps.History)
	r.GET("/api/trips/recent", trips.Recent)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
