package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/modules/pricewatch"
	"wayfarer/internal/modules/recommend"
	"wayfarer/internal/modules/trip"
)

func buildCatalogueRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	plans := handlers.NewPlansHandler(recommend.NewService(42))
	r.GET("/api/plans", plans.List)
	r.GET("/api/plans/:place", plans.Get)

	experiences := handlers.NewExperienceHandler()
	r.GET("/api/experiences", experiences.List)
	r.GET("/api/experiences/:place", experiences.Get)

	prices := handlers.NewPricewatchHandler(pricewatch.NewService(42))
	r.GET("/api/pricewatch/flights", prices.Flights)
	r.GET("/api/pricewatch/hotels", prices.Hotels)
	return r
}

func TestPlansEndpoints(t *testing.T) {
	r := buildCatalogueRouter()

	w := doRequest(r, http.MethodGet, "/api/plans", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list struct {
		Places []string `json:"places"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list.Places) == 0 {
		t.Fatal("empty plans catalogue")
	}

	w = doRequest(r, http.MethodGet, "/api/plans/Kyoto", nil)
	var plan struct {
		Place     string              `json:"place"`
		Itinerary []trip.ItineraryDay `json:"itinerary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
		t.Fatal(err)
	}
	if plan.Place != "Kyoto" || len(plan.Itinerary) < 3 {
		t.Errorf("unexpected plan: place=%q days=%d", plan.Place, len(plan.Itinerary))
	}
}

func TestExperienceEndpoints(t *testing.T) {
	r := buildCatalogueRouter()

	w := doRequest(r, http.MethodGet, "/api/experiences/Paris", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (slug lookup should be case-insensitive)", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/experiences/atlantis", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPricewatchEndpoints(t *testing.T) {
	r := buildCatalogueRouter()

	w := doRequest(r, http.MethodGet, "/api/pricewatch/flights?origin=Berlin&destination=Tokyo&date=2026-09-01", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var flights struct {
		Flights []pricewatch.Flight `json:"flights"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &flights); err != nil {
		t.Fatal(err)
	}
	if len(flights.Flights) != 10 {
		t.Errorf("flights = %d, want 10", len(flights.Flights))
	}

	w = doRequest(r, http.MethodGet, "/api/pricewatch/flights?origin=Berlin", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing destination: status = %d, want 400", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/api/pricewatch/hotels?place=Lisbon&date=not-a-date", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: status = %d, want 400", w.Code)
	}
}
