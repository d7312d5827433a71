package repository

import (
	"database/sql"
	"fmt"

	"github.com/foodtour/foodtour-backend-go/internal/models"
)

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List retrieves published posts, newest first, without bodies
func (r *BlogRepository) List(limit, offset int) ([]models.BlogPost, int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM blog_posts WHERE published_at IS NOT NULL").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	query := `SELECT id, title, slug, excerpt, cover_url, author, published_at, created_at
		FROM blog_posts
		WHERE published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		var publishedAt sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.CoverURL,
			&p.Author, &publishedAt, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post: %w", err)
		}
		p.PublishedAt = publishedAt.String
		posts = append(posts, p)
	}

	return posts, total, rows.Err()
}

// GetBySlugOrID retrieves a full post by slug or id, nil when absent
func (r *BlogRepository) GetBySlugOrID(key string) (*models.BlogPost, error) {
	query := `SELECT id, title, slug, excerpt, body, cover_url, author, published_at, created_at
		FROM blog_posts WHERE slug = ? OR id = ?`

	var p models.BlogPost
	var publishedAt sql.NullString
	err := r.db.QueryRow(query, key, key).Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt,
		&p.Body, &p.CoverURL, &p.Author, &publishedAt, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	p.PublishedAt = publishedAt.String
	return &p, nil
}

// Create inserts a blog post
func (r *BlogRepository) Create(p *models.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, slug, excerpt, body, cover_url, author, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, p.ID, p.Title, p.Slug, p.Excerpt, p.Body, p.CoverURL,
		p.Author, nullable(p.PublishedAt))
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}
