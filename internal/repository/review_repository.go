package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByRestaurant retrieves reviews for a restaurant, newest first
func (r *ReviewRepository) ListByRestaurant(restaurantID string, limit, offset int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?", restaurantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `SELECT rv.id, rv.restaurant_id, rv.user_id, u.display_name, rv.rating, rv.comment,
			rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.restaurant_id = ?
		ORDER BY rv.created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.Query(query, restaurantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.RestaurantID, &rv.UserID, &rv.UserName,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, total, rows.Err()
}

// Upsert writes a user's review of a restaurant (one per user, last write
// wins) and recomputes the restaurant's rating aggregate in one transaction
func (r *ReviewRepository) Upsert(rv *models.Review) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		query := `INSERT INTO reviews (id, restaurant_id, user_id, rating, comment)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (restaurant_id, user_id) DO UPDATE SET
				rating = excluded.rating,
				comment = excluded.comment,
				updated_at = datetime('now')`

		if _, err := tx.Exec(query, rv.ID, rv.RestaurantID, rv.UserID, rv.Rating, rv.Comment); err != nil {
			return fmt.Errorf("failed to upsert review: %w", err)
		}

		return recomputeRating(tx, rv.RestaurantID)
	})
}

// Delete removes a review and refreshes the aggregate
func (r *ReviewRepository) Delete(reviewID, restaurantID string) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM reviews WHERE id = ?", reviewID); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return recomputeRating(tx, restaurantID)
	})
}

// GetByUser retrieves a user's review of a restaurant, nil when absent
func (r *ReviewRepository) GetByUser(restaurantID, userID string) (*models.Review, error) {
	query := `SELECT id, restaurant_id, user_id, rating, comment, created_at, updated_at
		FROM reviews WHERE restaurant_id = ? AND user_id = ?`

	var rv models.Review
	err := r.db.QueryRow(query, restaurantID, userID).Scan(
		&rv.ID, &rv.RestaurantID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &rv, nil
}

// recomputeRating refreshes the denormalized rating fields on the restaurant
func recomputeRating(tx *sql.Tx, restaurantID string) error {
	query := `UPDATE restaurants SET
			rating = COALESCE((SELECT ROUND(AVG(rating), 2) FROM reviews WHERE restaurant_id = ?), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?),
			updated_at = datetime('now')
		WHERE id = ?`

	if _, err := tx.Exec(query, restaurantID, restaurantID, restaurantID); err != nil {
		return fmt.Errorf("failed to recompute rating: %w", err)
	}
	return nil
}
