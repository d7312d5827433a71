package models

// Deal represents a discount offer tied to a restaurant
type Deal struct {
	ID            string  `json:"id" db:"id"`
	RestaurantID  string  `json:"restaurantId,omitempty" db:"restaurant_id"`
	Title         string  `json:"title" db:"title"`
	Description   string  `json:"description,omitempty" db:"description"`
	PercentOff    float64 `json:"percentOff" db:"percent_off"`
	Price         float64 `json:"price" db:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty" db:"original_price"`
	District      string  `json:"district,omitempty" db:"district"`
	Tags          string  `json:"tags,omitempty" db:"tags"`
	ImageURL      string  `json:"imageUrl,omitempty" db:"image_url"`
	StartsAt      string  `json:"startsAt,omitempty" db:"starts_at"`
	EndsAt        string  `json:"endsAt,omitempty" db:"ends_at"`
	CreatedAt     string  `json:"createdAt,omitempty" db:"created_at"`
}

// DealsResponse represents a paginated response of deals
type DealsResponse struct {
	Data       []Deal `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
