package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

// ReviewsResponse is a paginated page of reviews
type ReviewsResponse struct {
	Data       []models.Review `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviewRepo     *repository.ReviewRepository
	restaurantRepo *repository.RestaurantRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo *repository.ReviewRepository, restaurantRepo *repository.RestaurantRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
	}
}

// List retrieves a restaurant's reviews, newest first
func (s *ReviewService) List(restaurantID string, page, pageSize int) (*ReviewsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	reviews, total, err := s.reviewRepo.ListByRestaurant(restaurantID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &ReviewsResponse{
		Data:       reviews,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// Submit writes the caller's review; a second submission replaces the first
func (s *ReviewService) Submit(user *models.User, restaurantID string, input models.ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	rst, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if rst == nil {
		return nil, ErrNotFound
	}

	review := &models.Review{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		UserID:       user.ID,
		Rating:       input.Rating,
		Comment:      input.Comment,
	}
	if err := s.reviewRepo.Upsert(review); err != nil {
		return nil, err
	}

	return s.reviewRepo.GetByUser(restaurantID, user.ID)
}
