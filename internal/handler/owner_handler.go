package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// OwnerHandler handles the restaurant management dashboard surface
type OwnerHandler struct {
	restaurantService *service.RestaurantService
	menuService       *service.MenuService
	authService       *service.AuthService
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(
	restaurantService *service.RestaurantService,
	menuService *service.MenuService,
	authService *service.AuthService,
) *OwnerHandler {
	return &OwnerHandler{
		restaurantService: restaurantService,
		menuService:       menuService,
		authService:       authService,
	}
}

// ListRestaurants handles GET /api/v1/owner/restaurants
func (h *OwnerHandler) ListRestaurants(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	restaurants, err := h.restaurantService.ListByOwner(user.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  restaurants,
		"count": len(restaurants),
	})
}

// CreateRestaurant handles POST /api/v1/owner/restaurants
func (h *OwnerHandler) CreateRestaurant(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var input models.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rst, err := h.restaurantService.Create(user, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, rst)
}

// UpdateRestaurant handles PUT /api/v1/owner/restaurants/:id
func (h *OwnerHandler) UpdateRestaurant(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var input models.RestaurantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rst, err := h.restaurantService.Update(user, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, rst)
}

// DeleteRestaurant handles DELETE /api/v1/owner/restaurants/:id
func (h *OwnerHandler) DeleteRestaurant(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	if err := h.restaurantService.Delete(user, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, nil)
}

// CreateMenuItem handles POST /api/v1/owner/restaurants/:id/menu
func (h *OwnerHandler) CreateMenuItem(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Create(user, c.Param("id"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateMenuItem handles PUT /api/v1/owner/restaurants/:id/menu/:itemId
func (h *OwnerHandler) UpdateMenuItem(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Update(user, c.Param("id"), c.Param("itemId"), input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, item)
}

// DeleteMenuItem handles DELETE /api/v1/owner/restaurants/:id/menu/:itemId
func (h *OwnerHandler) DeleteMenuItem(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	if err := h.menuService.Delete(user, c.Param("id"), c.Param("itemId")); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, nil)
}
