package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/location"
	"github.com/foodtour/foodtour-backend-go/internal/logging"
	"github.com/foodtour/foodtour-backend-go/internal/mapbox"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// geocoder is the slice of the Mapbox client the location surface needs
type geocoder interface {
	HasToken() bool
	Geocode(ctx context.Context, query string) (*mapbox.Place, error)
}

// LocationHandler exposes the per-session location state machine. The
// browser's geolocation callbacks are posted here instead of mutating an
// ambient client-side global.
type LocationHandler struct {
	store    *location.Store
	geocoder geocoder
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(store *location.Store, geocoder geocoder) *LocationHandler {
	return &LocationHandler{
		store:    store,
		geocoder: geocoder,
	}
}

// requireSession aborts with 400 when no session id was supplied
func requireSession(c *gin.Context) (string, bool) {
	id := sessionID(c)
	if id == "" {
		response.BadRequest(c, "Missing session id")
		return "", false
	}
	return id, true
}

// Get handles GET /api/v1/location
func (h *LocationHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	response.Success(c, h.store.Get(session))
}

// coordsInput binds to pointers so presence is checked by the validator while
// zero stays a legal value; lat=0 / lng=0 are real places. Range validation
// belongs to the store.
type coordsInput struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// SetGPS handles POST /api/v1/location/gps
func (h *LocationHandler) SetGPS(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var input coordsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "lat and lng are required")
		return
	}

	st, err := h.store.SetGPS(session, *input.Lat, *input.Lng)
	if err != nil {
		response.BadRequest(c, "Invalid coordinates")
		return
	}
	response.Success(c, st)
}

type manualInput struct {
	Address string   `json:"address" binding:"required"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// SetManual handles POST /api/v1/location/manual. When no coordinates come
// with the address and a map token is configured, the address is forward
// geocoded; a geocoding failure degrades to an address-only manual state.
func (h *LocationHandler) SetManual(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var input manualInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "address is required")
		return
	}

	lat, lng := input.Lat, input.Lng
	if lat == nil && h.geocoder != nil && h.geocoder.HasToken() {
		place, err := h.geocoder.Geocode(c.Request.Context(), input.Address)
		if err != nil {
			logging.Warn().Err(err).Str("address", input.Address).Msg("geocoding failed")
		} else {
			lat, lng = &place.Lat, &place.Lng
		}
	}

	st, err := h.store.SetManual(session, input.Address, lat, lng)
	if err != nil {
		response.BadRequest(c, "Invalid coordinates")
		return
	}
	response.Success(c, st)
}

// BeginAutoDetect handles POST /api/v1/location/autodetect/begin
func (h *LocationHandler) BeginAutoDetect(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	response.Success(c, h.store.BeginAutoDetect(session))
}

type failInput struct {
	Code string `json:"code" binding:"required"`
}

// FailAutoDetect handles POST /api/v1/location/autodetect/fail
func (h *LocationHandler) FailAutoDetect(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var input failInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "code is required")
		return
	}

	response.Success(c, h.store.FailAutoDetect(session, location.ErrorCode(input.Code)))
}

// Unsupported handles POST /api/v1/location/unsupported
func (h *LocationHandler) Unsupported(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	response.Success(c, h.store.Unsupported(session))
}

// StartWatch handles POST /api/v1/location/watch
func (h *LocationHandler) StartWatch(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	watchID, st := h.store.StartWatch(session)
	response.Success(c, gin.H{
		"watchId": watchID,
		"state":   st,
	})
}

// WatchUpdate handles POST /api/v1/location/watch/:watchId
func (h *LocationHandler) WatchUpdate(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var input coordsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "lat and lng are required")
		return
	}

	st, err := h.store.WatchUpdate(session, c.Param("watchId"), *input.Lat, *input.Lng)
	if err == location.ErrStaleWatch {
		response.Conflict(c, "Watch handle superseded")
		return
	}
	if err != nil {
		response.BadRequest(c, "Invalid coordinates")
		return
	}
	response.Success(c, st)
}

// StopWatch handles DELETE /api/v1/location/watch/:watchId
func (h *LocationHandler) StopWatch(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	response.Success(c, h.store.StopWatch(session, c.Param("watchId")))
}

// Reset handles POST /api/v1/location/reset
func (h *LocationHandler) Reset(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	response.Success(c, h.store.Reset(session))
}
