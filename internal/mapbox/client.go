// Package mapbox is a thin client for the Mapbox Directions and forward
// Geocoding HTTP APIs. The routing itself is entirely Mapbox's job; this
// package only configures, calls and decodes.
package mapbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/foodtour/foodtour-backend-go/internal/logging"
)

var (
	// ErrNoToken means the access token is absent from configuration.
	// This is a deployment problem, not a provider failure, and is never retried.
	ErrNoToken = errors.New("mapbox access token not configured")
	// ErrNoRoute means the provider answered but produced no usable route
	ErrNoRoute = errors.New("no route found")
	// ErrNoResult means a geocoding query matched nothing
	ErrNoResult = errors.New("no geocoding result")
)

// Profile is a transport mode passed to the routing provider
type Profile string

const (
	ProfileDriving Profile = "driving"
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
)

// NormalizeProfile maps a request string onto a supported profile,
// defaulting to driving
func NormalizeProfile(s string) Profile {
	switch Profile(s) {
	case ProfileWalking:
		return ProfileWalking
	case ProfileCycling:
		return ProfileCycling
	default:
		return ProfileDriving
	}
}

// Route is the ETA for a computed route
type Route struct {
	DistanceM float64 `json:"distanceM"` // 米
	DurationS float64 `json:"durationS"` // 秒
	Summary   string  `json:"summary,omitempty"`
}

// Place is a forward-geocoding hit
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Client calls the Mapbox HTTP APIs through a circuit breaker
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a Mapbox client. The breaker opens after a 60% failure
// rate over at least 10 requests and probes again after one minute.
func NewClient(baseURL, token string) *Client {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "mapbox-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})

	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		cb:      cb,
	}
}

// HasToken reports whether an access token is configured
func (c *Client) HasToken() bool {
	return c.token != ""
}

// get performs one breaker-guarded GET and returns the body for 2xx answers
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return c.cb.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("mapbox request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("mapbox response read failed: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("mapbox returned status %d", resp.StatusCode)
		}
		return body, nil
	})
}

// directionsResponse mirrors the subset of the Directions v5 answer we use
type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Summary string `json:"summary"`
		} `json:"legs"`
	} `json:"routes"`
}

// Directions computes a route between origin and destination for the given
// profile and returns the first route's ETA
func (c *Client) Directions(ctx context.Context, profile Profile, originLat, originLng, destLat, destLng float64) (*Route, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	url := fmt.Sprintf("%s/directions/v5/mapbox/%s/%f,%f;%f,%f?access_token=%s&overview=false",
		c.baseURL, profile, originLng, originLat, destLng, destLat, c.token)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var dr directionsResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if dr.Code != "Ok" || len(dr.Routes) == 0 {
		return nil, ErrNoRoute
	}

	r := dr.Routes[0]
	route := &Route{
		DistanceM: r.Distance,
		DurationS: r.Duration,
	}
	if len(r.Legs) > 0 {
		route.Summary = r.Legs[0].Summary
	}
	return route, nil
}

func escapeQuery(q string) string {
	return url.PathEscape(q)
}

// geocodingResponse mirrors the subset of the Geocoding v5 answer we use
type geocodingResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

// Geocode resolves a free-text address to coordinates
func (c *Client) Geocode(ctx context.Context, query string) (*Place, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	url := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=1",
		c.baseURL, escapeQuery(query), c.token)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var gr geocodingResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(gr.Features) == 0 || len(gr.Features[0].Center) < 2 {
		return nil, ErrNoResult
	}

	f := gr.Features[0]
	return &Place{
		Name: f.PlaceName,
		Lat:  f.Center[1],
		Lng:  f.Center[0],
	}, nil
}
