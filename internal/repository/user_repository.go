package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user
func (r *UserRepository) Create(u *models.User) error {
	query := `INSERT INTO users (id, email, password_hash, display_name, role, avatar_url)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, u.ID, u.Email, u.PasswordHash, u.DisplayName, u.Role, u.AvatarURL)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email, nil when absent
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, display_name, role, avatar_url, created_at, updated_at
		FROM users WHERE email = ?`

	var u models.User
	err := r.db.QueryRow(query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// GetByID retrieves a user by id, nil when absent
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT id, email, password_hash, display_name, role, avatar_url, created_at, updated_at
		FROM users WHERE id = ?`

	var u models.User
	err := r.db.QueryRow(query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Role, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
