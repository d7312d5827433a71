package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// CollectionRepository handles database operations for collections
type CollectionRepository struct {
	db *sql.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *sql.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List retrieves all collections, newest first
func (r *CollectionRepository) List() ([]models.Collection, error) {
	query := `SELECT id, title, description, category, image_url, created_at
		FROM collections ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	var cols []models.Collection
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// GetByID retrieves a single collection, nil when absent
func (r *CollectionRepository) GetByID(id string) (*models.Collection, error) {
	query := `SELECT id, title, description, category, image_url, created_at
		FROM collections WHERE id = ?`

	var c models.Collection
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.ImageURL, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &c, nil
}

// Create inserts a collection and its member links
func (r *CollectionRepository) Create(c *models.Collection, restaurantIDs []string) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO collections (id, title, description, category, image_url)
			VALUES (?, ?, ?, ?, ?)`
		if _, err := tx.Exec(query, c.ID, c.Title, c.Description, c.Category, c.ImageURL); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		for i, rid := range restaurantIDs {
			if _, err := tx.Exec(
				"INSERT INTO collection_restaurants (collection_id, restaurant_id, position) VALUES (?, ?, ?)",
				c.ID, rid, i); err != nil {
				return fmt.Errorf("failed to link restaurant %s: %w", rid, err)
			}
		}
		return nil
	})
}
