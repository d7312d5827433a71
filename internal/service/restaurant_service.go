package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/foodtour/foodtour-backend-go/internal/listing"
	"github.com/foodtour/foodtour-backend-go/internal/location"
	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
	"github.com/foodtour/foodtour-backend-go/internal/spatial"
)

const (
	defaultNearbyRadius = 3000.0 // 米
	maxNearbyRadius     = 20000.0
)

// RestaurantService handles business logic for restaurant listings
type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
	locations      *location.Store
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurantRepo *repository.RestaurantRepository, locations *location.Store) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		locations:      locations,
	}
}

// List retrieves restaurants through the filter → sort → paginate pipeline.
// The district narrows in SQL; everything else runs in memory.
func (s *RestaurantService) List(filter models.RestaurantFilter) (*models.RestaurantsResponse, error) {
	candidates, err := s.restaurantRepo.ListActive(filter.District)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	// Category predicates need the category links loaded up front
	if filter.Category != "" {
		for i := range candidates {
			cats, err := s.restaurantRepo.GetCategories(candidates[i].ID)
			if err != nil {
				return nil, err
			}
			candidates[i].Categories = cats
		}
	}

	subset := listing.FilterRestaurants(candidates, filter)

	if filter.Sort == "distance" {
		lat, lng, ok := s.referencePoint(filter)
		if !ok {
			return nil, fmt.Errorf("%w: distance sort needs a reference location", ErrValidation)
		}
		listing.ComputeDistances(subset, lat, lng)
	}
	listing.SortRestaurants(subset, filter.Sort)

	page, size := listing.ClampPage(filter.Page, filter.PageSize)
	paged := listing.Paginate(subset, page, size, filter.Accumulate)

	// Attach categories to the returned page when they were not needed earlier
	if filter.Category == "" {
		for i := range paged {
			cats, err := s.restaurantRepo.GetCategories(paged[i].ID)
			if err != nil {
				return nil, err
			}
			paged[i].Categories = cats
		}
	}

	total := int64(len(subset))
	return &models.RestaurantsResponse{
		Data:       paged,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}, nil
}

// referencePoint resolves the point for distance sorting: explicit lat/lng
// beats the session's location store state
func (s *RestaurantService) referencePoint(filter models.RestaurantFilter) (float64, float64, bool) {
	if filter.Lat != nil && filter.Lng != nil {
		if spatial.ValidCoordinates(*filter.Lat, *filter.Lng) {
			return *filter.Lat, *filter.Lng, true
		}
		return 0, 0, false
	}
	if filter.Session != "" && s.locations != nil {
		st := s.locations.Get(filter.Session)
		if st.Lat != nil && st.Lng != nil {
			return *st.Lat, *st.Lng, true
		}
	}
	return 0, 0, false
}

// Get retrieves a single restaurant with its categories
func (s *RestaurantService) Get(id string) (*models.Restaurant, error) {
	rst, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rst == nil {
		return nil, ErrNotFound
	}

	cats, err := s.restaurantRepo.GetCategories(id)
	if err != nil {
		return nil, err
	}
	rst.Categories = cats
	return rst, nil
}

// Nearby retrieves active restaurants within the radius, nearest first
func (s *RestaurantService) Nearby(filter models.NearbyFilter) ([]models.Restaurant, error) {
	if filter.Lat == nil || filter.Lng == nil {
		return nil, fmt.Errorf("%w: lat and lng are required", ErrValidation)
	}
	lat, lng := *filter.Lat, *filter.Lng
	if !spatial.ValidCoordinates(lat, lng) {
		return nil, fmt.Errorf("%w: invalid coordinates", ErrValidation)
	}

	radius := filter.Radius
	if radius <= 0 {
		radius = defaultNearbyRadius
	}
	if radius > maxNearbyRadius {
		radius = maxNearbyRadius
	}

	minLat, maxLat, minLng, maxLng := spatial.BoundingBox(lat, lng, radius)
	candidates, err := s.restaurantRepo.ListInBounds(minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby restaurants: %w", err)
	}

	// Exact distance check inside the box
	listing.ComputeDistances(candidates, lat, lng)
	within := candidates[:0]
	for _, r := range candidates {
		if r.DistanceM != nil && *r.DistanceM <= radius {
			within = append(within, r)
		}
	}
	listing.SortRestaurants(within, "distance")

	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if len(within) > limit {
		within = within[:limit]
	}
	return within, nil
}

// ListByOwner retrieves the caller's own listings
func (s *RestaurantService) ListByOwner(ownerID string) ([]models.Restaurant, error) {
	return s.restaurantRepo.ListByOwner(ownerID)
}

// Create adds a listing owned by the caller
func (s *RestaurantService) Create(owner *models.User, input models.RestaurantInput) (*models.Restaurant, error) {
	if err := validateRestaurantInput(input); err != nil {
		return nil, err
	}

	rst := &models.Restaurant{
		ID:          uuid.New().String(),
		OwnerID:     owner.ID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		District:    input.District,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Phone:       input.Phone,
		PriceLevel:  clampPriceLevel(input.PriceLevel),
		AvgPrice:    input.AvgPrice,
		Tags:        input.Tags,
		ImageURL:    input.ImageURL,
		Status:      "active",
	}

	if err := s.restaurantRepo.Create(rst, input.CategoryIDs); err != nil {
		return nil, err
	}
	return s.Get(rst.ID)
}

// Update rewrites a listing after an ownership check; admins may edit any
func (s *RestaurantService) Update(caller *models.User, id string, input models.RestaurantInput) (*models.Restaurant, error) {
	if err := validateRestaurantInput(input); err != nil {
		return nil, err
	}

	existing, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	if caller.Role != models.RoleAdmin && existing.OwnerID != caller.ID {
		return nil, ErrForbidden
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Address = input.Address
	existing.District = input.District
	existing.Latitude = input.Latitude
	existing.Longitude = input.Longitude
	existing.Phone = input.Phone
	existing.PriceLevel = clampPriceLevel(input.PriceLevel)
	existing.AvgPrice = input.AvgPrice
	existing.Tags = input.Tags
	existing.ImageURL = input.ImageURL

	if err := s.restaurantRepo.Update(existing, input.CategoryIDs); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a listing after an ownership check
func (s *RestaurantService) Delete(caller *models.User, id string) error {
	existing, err := s.restaurantRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if caller.Role != models.RoleAdmin && existing.OwnerID != caller.ID {
		return ErrForbidden
	}
	return s.restaurantRepo.Delete(id)
}

// OwnsRestaurant reports whether the caller may manage the restaurant
func (s *RestaurantService) OwnsRestaurant(caller *models.User, restaurantID string) error {
	rst, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return err
	}
	if rst == nil {
		return ErrNotFound
	}
	if caller.Role != models.RoleAdmin && rst.OwnerID != caller.ID {
		return ErrForbidden
	}
	return nil
}

func validateRestaurantInput(input models.RestaurantInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Latitude != nil && input.Longitude != nil {
		if !spatial.ValidCoordinates(*input.Latitude, *input.Longitude) {
			return fmt.Errorf("%w: invalid coordinates", ErrValidation)
		}
	}
	return nil
}

func clampPriceLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}
