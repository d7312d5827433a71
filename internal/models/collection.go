package models

// Collection represents a curated list of restaurants
type Collection struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description,omitempty" db:"description"`
	Category    string `json:"category,omitempty" db:"category"`
	ImageURL    string `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   string `json:"createdAt,omitempty" db:"created_at"`

	// Populated on detail fetch
	Restaurants []Restaurant `json:"restaurants,omitempty" db:"-"`
}

// CollectionsResponse represents a paginated response of collections
type CollectionsResponse struct {
	Data       []Collection `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
