package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/foodtour/foodtour-backend-go/internal/location"
	"github.com/foodtour/foodtour-backend-go/internal/mapbox"
	"github.com/foodtour/foodtour-backend-go/internal/spatial"
)

// ErrSuperseded means a newer route request for the same session was issued
// while this one was in flight; the stale result is discarded, never shown.
var ErrSuperseded = errors.New("route request superseded")

// RouteETA is the estimated distance/duration for a computed route
type RouteETA struct {
	Profile   string  `json:"profile"`
	DistanceM float64 `json:"distanceM"`
	DurationS float64 `json:"durationS"`
	Summary   string  `json:"summary,omitempty"`
	DestName  string  `json:"destName,omitempty"`
}

// routeClient is the slice of the Mapbox client the service needs
type routeClient interface {
	HasToken() bool
	Directions(ctx context.Context, profile mapbox.Profile, originLat, originLng, destLat, destLng float64) (*mapbox.Route, error)
}

// DirectionsService resolves routes between the session's stored location
// and a requested destination. A per-session generation counter makes
// "latest request wins" explicit: whichever call started last is the only
// one allowed to deliver a result.
type DirectionsService struct {
	client    routeClient
	locations *location.Store

	mu   sync.Mutex
	gens map[string]uint64
}

// NewDirectionsService creates a new directions service
func NewDirectionsService(client routeClient, locations *location.Store) *DirectionsService {
	return &DirectionsService{
		client:    client,
		locations: locations,
		gens:      make(map[string]uint64),
	}
}

// begin registers a new request generation for the session
func (s *DirectionsService) begin(session string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[session]++
	return s.gens[session]
}

// current reports whether the generation is still the latest for the session
func (s *DirectionsService) current(session string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[session] == gen
}

// GetRoute computes the ETA from the session's location to the destination
func (s *DirectionsService) GetRoute(ctx context.Context, session, profile string, destLat, destLng float64, destName string) (*RouteETA, error) {
	if !s.client.HasToken() {
		return nil, mapbox.ErrNoToken
	}

	st := s.locations.Get(session)
	if st.Lat == nil || st.Lng == nil {
		return nil, fmt.Errorf("%w: no origin location for session", ErrValidation)
	}
	if !spatial.ValidCoordinates(destLat, destLng) {
		return nil, fmt.Errorf("%w: invalid destination coordinates", ErrValidation)
	}

	p := mapbox.NormalizeProfile(profile)
	gen := s.begin(session)

	route, err := s.client.Directions(ctx, p, *st.Lat, *st.Lng, destLat, destLng)

	// A later request may have started while this one was on the wire;
	// its answer, not ours, owns the session now.
	if !s.current(session, gen) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	return &RouteETA{
		Profile:   string(p),
		DistanceM: route.DistanceM,
		DurationS: route.DurationS,
		Summary:   route.Summary,
		DestName:  destName,
	}, nil
}
