package models

// MenuItem represents a dish on a restaurant's menu
type MenuItem struct {
	ID           string  `json:"id" db:"id"`
	RestaurantID string  `json:"restaurantId" db:"restaurant_id"`
	Name         string  `json:"name" db:"name"`
	Description  string  `json:"description,omitempty" db:"description"`
	Price        float64 `json:"price" db:"price"`
	ImageURL     string  `json:"imageUrl,omitempty" db:"image_url"`
	Available    bool    `json:"available" db:"available"`
	CreatedAt    string  `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt    string  `json:"updatedAt,omitempty" db:"updated_at"`
}

// MenuItemInput is the payload for owner menu management
type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Available   *bool   `json:"available"`
}
