package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/middleware"
	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, result)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUser(c.GetString(middleware.CtxUserID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, user)
}

// currentUser loads the authenticated account for downstream handlers
func currentUser(c *gin.Context, authService *service.AuthService) (*models.User, bool) {
	user, err := authService.GetUser(c.GetString(middleware.CtxUserID))
	if err != nil {
		writeServiceError(c, err)
		return nil, false
	}
	return user, true
}
