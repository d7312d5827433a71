package service

import (
	"fmt"
	"math"

	"github.com/foodtour/foodtour-backend-go/internal/listing"
	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

// DealService handles business logic for deals
type DealService struct {
	dealRepo *repository.DealRepository
}

// NewDealService creates a new deal service
func NewDealService(dealRepo *repository.DealRepository) *DealService {
	return &DealService{dealRepo: dealRepo}
}

// List retrieves current deals through the filter → sort → paginate pipeline
func (s *DealService) List(filter models.DealFilter) (*models.DealsResponse, error) {
	deals, err := s.dealRepo.ListCurrent()
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	subset := listing.FilterDeals(deals, filter)
	listing.SortDeals(subset, filter.Sort)

	page, size := listing.ClampPage(filter.Page, filter.PageSize)
	paged := listing.Paginate(subset, page, size, filter.Accumulate)

	total := int64(len(subset))
	return &models.DealsResponse{
		Data:       paged,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}, nil
}

// Get retrieves a single deal
func (s *DealService) Get(id string) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrNotFound
	}
	return deal, nil
}
