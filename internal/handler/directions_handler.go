package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// DirectionsHandler handles HTTP requests for route ETAs
type DirectionsHandler struct {
	directionsService *service.DirectionsService
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(directionsService *service.DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{directionsService: directionsService}
}

// GetRoute handles GET /api/v1/directions. The origin is the session's
// stored location; the destination comes from query parameters, as the
// directions page passes it through the URL.
func (h *DirectionsHandler) GetRoute(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	destLat, errLat := strconv.ParseFloat(c.Query("destLat"), 64)
	destLng, errLng := strconv.ParseFloat(c.Query("destLng"), 64)
	if errLat != nil || errLng != nil {
		response.BadRequest(c, "destLat and destLng are required")
		return
	}

	eta, err := h.directionsService.GetRoute(
		c.Request.Context(),
		session,
		c.Query("profile"),
		destLat,
		destLng,
		c.Query("destName"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, eta)
}
