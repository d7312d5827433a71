package models

// Restaurant represents a restaurant listing
type Restaurant struct {
	ID          string   `json:"id" db:"id"`
	OwnerID     string   `json:"ownerId,omitempty" db:"owner_id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description,omitempty" db:"description"`
	Address     string   `json:"address" db:"address"`
	District    string   `json:"district,omitempty" db:"district"`
	Latitude    *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude   *float64 `json:"longitude,omitempty" db:"longitude"`
	Phone       string   `json:"phone,omitempty" db:"phone"`
	PriceLevel  int      `json:"priceLevel" db:"price_level"` // 1-4
	AvgPrice    float64  `json:"avgPrice" db:"avg_price"`
	Rating      float64  `json:"rating" db:"rating"`
	ReviewCount int      `json:"reviewCount" db:"review_count"`
	Tags        string   `json:"tags,omitempty" db:"tags"` // 逗号分隔
	ImageURL    string   `json:"imageUrl,omitempty" db:"image_url"`
	Status      string   `json:"status" db:"status"` // active, hidden, pending

	// Populated per request, not stored
	Categories []Category `json:"categories,omitempty" db:"-"`
	DistanceM  *float64   `json:"distanceM,omitempty" db:"-"` // 距用户位置的米数

	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt string `json:"updatedAt,omitempty" db:"updated_at"`
}

// RestaurantsResponse represents a paginated response of restaurants
type RestaurantsResponse struct {
	Data       []Restaurant `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// RestaurantInput is the payload for owner create/update
type RestaurantInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	District    string   `json:"district"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Phone       string   `json:"phone"`
	PriceLevel  int      `json:"priceLevel"`
	AvgPrice    float64  `json:"avgPrice"`
	Tags        string   `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	CategoryIDs []string `json:"categoryIds"`
}
