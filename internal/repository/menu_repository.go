package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

const menuColumns = "id, restaurant_id, name, description, price, image_url, available, created_at, updated_at"

// MenuRepository handles database operations for menu items
type MenuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func scanMenuItem(scan func(dest ...interface{}) error) (*models.MenuItem, error) {
	var m models.MenuItem
	err := scan(&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price,
		&m.ImageURL, &m.Available, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByRestaurant retrieves a restaurant's menu
func (r *MenuRepository) ListByRestaurant(restaurantID string) ([]models.MenuItem, error) {
	query := "SELECT " + menuColumns + " FROM menu_items WHERE restaurant_id = ? ORDER BY name"

	rows, err := r.db.Query(query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// GetByID retrieves a single menu item, nil when absent
func (r *MenuRepository) GetByID(id string) (*models.MenuItem, error) {
	query := "SELECT " + menuColumns + " FROM menu_items WHERE id = ?"

	m, err := scanMenuItem(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return m, nil
}

// Create inserts a menu item
func (r *MenuRepository) Create(m *models.MenuItem) error {
	query := `INSERT INTO menu_items (id, restaurant_id, name, description, price, image_url, available)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, m.ID, m.RestaurantID, m.Name, m.Description, m.Price, m.ImageURL, m.Available)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Update rewrites a menu item
func (r *MenuRepository) Update(m *models.MenuItem) error {
	query := `UPDATE menu_items SET name = ?, description = ?, price = ?, image_url = ?,
		available = ?, updated_at = datetime('now') WHERE id = ?`

	_, err := r.db.Exec(query, m.Name, m.Description, m.Price, m.ImageURL, m.Available, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

// Delete removes a menu item
func (r *MenuRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
