package models

// Category represents a cuisine or venue category
type Category struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Slug      string `json:"slug" db:"slug"`
	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}
