package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

const restaurantColumns = `id, owner_id, name, description, address, district, latitude, longitude,
	phone, price_level, avg_price, rating, review_count, tags, image_url, status, created_at, updated_at`

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db *sql.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func scanRestaurant(scan func(dest ...interface{}) error) (*models.Restaurant, error) {
	var (
		rst      models.Restaurant
		ownerID  sql.NullString
		lat, lng sql.NullFloat64
	)
	err := scan(
		&rst.ID, &ownerID, &rst.Name, &rst.Description, &rst.Address, &rst.District,
		&lat, &lng, &rst.Phone, &rst.PriceLevel, &rst.AvgPrice, &rst.Rating,
		&rst.ReviewCount, &rst.Tags, &rst.ImageURL, &rst.Status, &rst.CreatedAt, &rst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ownerID.Valid {
		rst.OwnerID = ownerID.String
	}
	if lat.Valid {
		rst.Latitude = &lat.Float64
	}
	if lng.Valid {
		rst.Longitude = &lng.Float64
	}
	return &rst, nil
}

func (r *RestaurantRepository) queryRestaurants(query string, args ...interface{}) ([]models.Restaurant, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		rst, err := scanRestaurant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		out = append(out, *rst)
	}
	return out, rows.Err()
}

// ListActive retrieves active restaurants, optionally narrowed by district.
// Finer-grained filtering, sorting and paging happen in the listing pipeline.
func (r *RestaurantRepository) ListActive(district string) ([]models.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants"

	conditions := []string{"status = 'active'"}
	var args []interface{}
	if district != "" {
		conditions = append(conditions, "district = ?")
		args = append(args, district)
	}
	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY created_at DESC"

	return r.queryRestaurants(query, args...)
}

// ListInBounds retrieves active restaurants inside a lat/lng bounding box
func (r *RestaurantRepository) ListInBounds(minLat, maxLat, minLng, maxLng float64) ([]models.Restaurant, error) {
	query := "SELECT " + restaurantColumns + ` FROM restaurants
		WHERE status = 'active'
		AND latitude IS NOT NULL AND longitude IS NOT NULL
		AND latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?`

	return r.queryRestaurants(query, minLat, maxLat, minLng, maxLng)
}

// ListByOwner retrieves all restaurants belonging to an owner
func (r *RestaurantRepository) ListByOwner(ownerID string) ([]models.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants WHERE owner_id = ? ORDER BY created_at DESC"
	return r.queryRestaurants(query, ownerID)
}

// ListByCollection retrieves the member restaurants of a collection in position order
func (r *RestaurantRepository) ListByCollection(collectionID string) ([]models.Restaurant, error) {
	query := `SELECT ` + prefixColumns("r", restaurantColumns) + `
		FROM restaurants r
		JOIN collection_restaurants cr ON cr.restaurant_id = r.id
		WHERE cr.collection_id = ?
		ORDER BY cr.position ASC`

	return r.queryRestaurants(query, collectionID)
}

// prefixColumns qualifies a comma-separated column list with a table alias
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// GetByID retrieves a single restaurant, nil when absent
func (r *RestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants WHERE id = ?"

	rst, err := scanRestaurant(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return rst, nil
}

// GetCategories retrieves the categories attached to a restaurant
func (r *RestaurantRepository) GetCategories(restaurantID string) ([]models.Category, error) {
	query := `SELECT c.id, c.name, c.slug, c.created_at
		FROM categories c
		JOIN restaurant_categories rc ON rc.category_id = c.id
		WHERE rc.restaurant_id = ?
		ORDER BY c.name`

	rows, err := r.db.Query(query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant categories: %w", err)
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// withTx executes fn inside a transaction on this repository's handle
func withTx(db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Create inserts a restaurant and its category links
func (r *RestaurantRepository) Create(rst *models.Restaurant, categoryIDs []string) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO restaurants (id, owner_id, name, description, address, district,
			latitude, longitude, phone, price_level, avg_price, tags, image_url, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query, rst.ID, nullable(rst.OwnerID), rst.Name, rst.Description,
			rst.Address, rst.District, rst.Latitude, rst.Longitude, rst.Phone,
			rst.PriceLevel, rst.AvgPrice, rst.Tags, rst.ImageURL, rst.Status)
		if err != nil {
			return fmt.Errorf("failed to create restaurant: %w", err)
		}

		return replaceCategories(tx, rst.ID, categoryIDs)
	})
}

// Update rewrites a restaurant and its category links
func (r *RestaurantRepository) Update(rst *models.Restaurant, categoryIDs []string) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		query := `UPDATE restaurants SET name = ?, description = ?, address = ?, district = ?,
			latitude = ?, longitude = ?, phone = ?, price_level = ?, avg_price = ?,
			tags = ?, image_url = ?, updated_at = datetime('now')
			WHERE id = ?`

		_, err := tx.Exec(query, rst.Name, rst.Description, rst.Address, rst.District,
			rst.Latitude, rst.Longitude, rst.Phone, rst.PriceLevel, rst.AvgPrice,
			rst.Tags, rst.ImageURL, rst.ID)
		if err != nil {
			return fmt.Errorf("failed to update restaurant: %w", err)
		}

		if categoryIDs == nil {
			return nil
		}
		return replaceCategories(tx, rst.ID, categoryIDs)
	})
}

func replaceCategories(tx *sql.Tx, restaurantID string, categoryIDs []string) error {
	if _, err := tx.Exec("DELETE FROM restaurant_categories WHERE restaurant_id = ?", restaurantID); err != nil {
		return fmt.Errorf("failed to clear restaurant categories: %w", err)
	}
	for _, cid := range categoryIDs {
		if _, err := tx.Exec("INSERT INTO restaurant_categories (restaurant_id, category_id) VALUES (?, ?)",
			restaurantID, cid); err != nil {
			return fmt.Errorf("failed to link category %s: %w", cid, err)
		}
	}
	return nil
}

// Delete removes a restaurant; dependent rows cascade
func (r *RestaurantRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM restaurants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
