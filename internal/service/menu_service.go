package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/foodtour/foodtour-backend-go/internal/models"
	"github.com/foodtour/foodtour-backend-go/internal/repository"
)

// MenuService handles business logic for restaurant menus
type MenuService struct {
	menuRepo    *repository.MenuRepository
	restaurants *RestaurantService
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo *repository.MenuRepository, restaurants *RestaurantService) *MenuService {
	return &MenuService{
		menuRepo:    menuRepo,
		restaurants: restaurants,
	}
}

// List retrieves a restaurant's menu
func (s *MenuService) List(restaurantID string) ([]models.MenuItem, error) {
	if _, err := s.restaurants.Get(restaurantID); err != nil {
		return nil, err
	}
	return s.menuRepo.ListByRestaurant(restaurantID)
}

// Create adds a dish after an ownership check
func (s *MenuService) Create(caller *models.User, restaurantID string, input models.MenuItemInput) (*models.MenuItem, error) {
	if err := s.restaurants.OwnsRestaurant(caller, restaurantID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	item := &models.MenuItem{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
		Available:    true,
	}
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := s.menuRepo.Create(item); err != nil {
		return nil, err
	}
	return s.menuRepo.GetByID(item.ID)
}

// Update rewrites a dish after an ownership check
func (s *MenuService) Update(caller *models.User, restaurantID, itemID string, input models.MenuItemInput) (*models.MenuItem, error) {
	if err := s.restaurants.OwnsRestaurant(caller, restaurantID); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.RestaurantID != restaurantID {
		return nil, ErrNotFound
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.ImageURL = input.ImageURL
	if input.Available != nil {
		item.Available = *input.Available
	}

	if err := s.menuRepo.Update(item); err != nil {
		return nil, err
	}
	return s.menuRepo.GetByID(itemID)
}

// Delete removes a dish after an ownership check
func (s *MenuService) Delete(caller *models.User, restaurantID, itemID string) error {
	if err := s.restaurants.OwnsRestaurant(caller, restaurantID); err != nil {
		return err
	}

	item, err := s.menuRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.RestaurantID != restaurantID {
		return ErrNotFound
	}

	return s.menuRepo.Delete(itemID)
}
