package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

const dealColumns = `id, restaurant_id, title, description, percent_off, price, original_price,
	district, tags, image_url, starts_at, ends_at, created_at`

// DealRepository handles database operations for deals
type DealRepository struct {
	db *sql.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *sql.DB) *DealRepository {
	return &DealRepository{db: db}
}

func scanDeal(scan func(dest ...interface{}) error) (*models.Deal, error) {
	var (
		d                models.Deal
		restID           sql.NullString
		startsAt, endsAt sql.NullString
	)
	err := scan(&d.ID, &restID, &d.Title, &d.Description, &d.PercentOff, &d.Price,
		&d.OriginalPrice, &d.District, &d.Tags, &d.ImageURL, &startsAt, &endsAt, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	d.RestaurantID = restID.String
	d.StartsAt = startsAt.String
	d.EndsAt = endsAt.String
	return &d, nil
}

// ListCurrent retrieves deals that have not expired. Filtering, sorting and
// paging happen in the listing pipeline.
func (r *DealRepository) ListCurrent() ([]models.Deal, error) {
	query := "SELECT " + dealColumns + ` FROM deals
		WHERE ends_at IS NULL OR ends_at >= datetime('now')
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		d, err := scanDeal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	return deals, rows.Err()
}

// GetByID retrieves a single deal, nil when absent
func (r *DealRepository) GetByID(id string) (*models.Deal, error) {
	query := "SELECT " + dealColumns + " FROM deals WHERE id = ?"

	d, err := scanDeal(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	return d, nil
}

// Create inserts a deal
func (r *DealRepository) Create(d *models.Deal) error {
	query := `INSERT INTO deals (id, restaurant_id, title, description, percent_off, price,
		original_price, district, tags, image_url, starts_at, ends_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, d.ID, nullable(d.RestaurantID), d.Title, d.Description,
		d.PercentOff, d.Price, d.OriginalPrice, d.District, d.Tags, d.ImageURL,
		nullable(d.StartsAt), nullable(d.EndsAt))
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}
