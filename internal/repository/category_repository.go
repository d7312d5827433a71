package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List() ([]models.Category, error) {
	rows, err := r.db.Query("SELECT id, name, slug, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Create inserts a category
func (r *CategoryRepository) Create(c *models.Category) error {
	_, err := r.db.Exec("INSERT INTO categories (id, name, slug) VALUES (?, ?, ?)", c.ID, c.Name, c.Slug)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
