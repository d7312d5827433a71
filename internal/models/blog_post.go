package models

// BlogPost represents an editorial article
type BlogPost struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Excerpt     string `json:"excerpt,omitempty" db:"excerpt"`
	Body        string `json:"body,omitempty" db:"body"`
	CoverURL    string `json:"coverUrl,omitempty" db:"cover_url"`
	Author      string `json:"author,omitempty" db:"author"`
	PublishedAt string `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt   string `json:"createdAt,omitempty" db:"created_at"`
}
