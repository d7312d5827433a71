package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/mapbox"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// writeServiceError translates service-layer sentinels to HTTP responses
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, "Resource not found")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "Insufficient permissions")
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, mapbox.ErrNoToken):
		response.ServiceUnavailable(c, "Map service is not configured")
	case errors.Is(err, mapbox.ErrNoRoute):
		response.NotFound(c, "No route found")
	case errors.Is(err, service.ErrSuperseded):
		response.Conflict(c, "Route request superseded by a newer one")
	default:
		response.InternalError(c, err.Error())
	}
}

// intQuery parses an integer query parameter with a default
func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// sessionID resolves the caller's location session from header or query
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return c.Query("session")
}
