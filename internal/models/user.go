package models

// User roles
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// User represents a registered account
type User struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	DisplayName  string `json:"displayName" db:"display_name"`
	Role         string `json:"role" db:"role"`
	AvatarURL    string `json:"avatarUrl,omitempty" db:"avatar_url"`
	CreatedAt    string `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt    string `json:"updatedAt,omitempty" db:"updated_at"`
}

// RegisterInput is the payload for POST /auth/register
type RegisterInput struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        string `json:"role"` // user (default) or owner
}

// LoginInput is the payload for POST /auth/login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
