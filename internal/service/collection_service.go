package service

import (
	"fmt"
	"math"

	"github.com/foodtour/foodtour-backend-go/internal/listing"
	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

// CollectionService handles business logic for curated collections
type CollectionService struct {
	collectionRepo *repository.CollectionRepository
	restaurantRepo *repository.RestaurantRepository
}

// NewCollectionService creates a new collection service
func NewCollectionService(collectionRepo *repository.CollectionRepository, restaurantRepo *repository.RestaurantRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		restaurantRepo: restaurantRepo,
	}
}

// List retrieves collections through the filter → sort → paginate pipeline
func (s *CollectionService) List(filter models.CollectionFilter) (*models.CollectionsResponse, error) {
	cols, err := s.collectionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	subset := listing.FilterCollections(cols, filter)
	listing.SortCollections(subset, filter.Sort)

	page, size := listing.ClampPage(filter.Page, filter.PageSize)
	paged := listing.Paginate(subset, page, size, filter.Accumulate)

	total := int64(len(subset))
	return &models.CollectionsResponse{
		Data:       paged,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}, nil
}

// Get retrieves a collection with its member restaurants
func (s *CollectionService) Get(id string) (*models.Collection, error) {
	col, err := s.collectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if col == nil {
		return nil, ErrNotFound
	}

	restaurants, err := s.restaurantRepo.ListByCollection(id)
	if err != nil {
		return nil, err
	}
	col.Restaurants = restaurants
	return col, nil
}
