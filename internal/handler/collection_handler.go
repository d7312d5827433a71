package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/service"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// CollectionHandler handles HTTP requests for curated collections
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// List handles GET /api/v1/collections
func (h *CollectionHandler) List(c *gin.Context) {
	var filter models.CollectionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.collectionService.List(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /api/v1/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	col, err := h.collectionService.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, col)
}
