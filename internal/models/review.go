package models

// Review represents a user review of a restaurant
type Review struct {
	ID           string `json:"id" db:"id"`
	RestaurantID string `json:"restaurantId" db:"restaurant_id"`
	UserID       string `json:"userId" db:"user_id"`
	UserName     string `json:"userName,omitempty" db:"-"`
	Rating       int    `json:"rating" db:"rating"` // 1-5
	Comment      string `json:"comment,omitempty" db:"comment"`
	CreatedAt    string `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt    string `json:"updatedAt,omitempty" db:"updated_at"`
}

// ReviewInput is the payload for creating or replacing a review
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
