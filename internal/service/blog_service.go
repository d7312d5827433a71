package service

import (
	"fmt"
	"math"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

// BlogResponse is a paginated page of posts
type BlogResponse struct {
	Data       []models.BlogPost `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// BlogService handles business logic for editorial content
type BlogService struct {
	blogRepo *repository.BlogRepository
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo *repository.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// List retrieves published posts, newest first
func (s *BlogService) List(page, pageSize int) (*BlogResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 50 {
		pageSize = 50
	}

	posts, total, err := s.blogRepo.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return &BlogResponse{
		Data:       posts,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// Get retrieves a full post by slug or id
func (s *BlogService) Get(key string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlugOrID(key)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}
