package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// RestaurantHandler handles HTTP requests for the public restaurant surface
type RestaurantHandler struct {
	restaurantService *service.RestaurantService
	menuService       *service.MenuService
	reviewService     *service.ReviewService
	authService       *service.AuthService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(
	restaurantService *service.RestaurantService,
	menuService *service.MenuService,
	reviewService *service.ReviewService,
	authService *service.AuthService,
) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		menuService:       menuService,
		reviewService:     reviewService,
		authService:       authService,
	}
}

// List handles GET /api/v1/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	var filter models.RestaurantFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.Session == "" {
		filter.Session = sessionID(c)
	}

	result, err := h.restaurantService.List(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/restaurants/:id
func (h *RestaurantHandler) Get(c *gin.Context) {
	rst, err := h.restaurantService.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, rst)
}

// Nearby handles GET /api/v1/restaurants/nearby
func (h *RestaurantHandler) Nearby(c *gin.Context) {
	var filter models.NearbyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "lat and lng are required")
		return
	}

	result, err := h.restaurantService.Nearby(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  result,
		"count": len(result),
	})
}

// Menu handles GET /api/v1/restaurants/:id/menu
func (h *RestaurantHandler) Menu(c *gin.Context) {
	items, err := h.menuService.List(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  items,
		"count": len(items),
	})
}

// Reviews handles GET /api/v1/restaurants/:id/reviews
func (h *RestaurantHandler) Reviews(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 20)

	result, err := h.reviewService.List(c.Param("id"), page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// SubmitReview handles POST /api/v1/restaurants/:id/reviews
func (h *RestaurantHandler) SubmitReview(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Submit(user, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, review)
}
