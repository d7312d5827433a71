package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/foodtour/foodtour-backend-go/internal/repository"
	"github.com/foodtour/foodtour-backend-go/pkg/response"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.categoryRepo.List()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  cats,
		"count": len(cats),
	})
}
