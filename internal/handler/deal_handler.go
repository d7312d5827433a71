package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// DealHandler handles HTTP requests for deals
type DealHandler struct {
	dealService *service.DealService
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService *service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// List handles GET /api/v1/deals
func (h *DealHandler) List(c *gin.Context) {
	var filter models.DealFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.dealService.List(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/deals/:id
func (h *DealHandler) Get(c *gin.Context) {
	deal, err := h.dealService.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, deal)
}
