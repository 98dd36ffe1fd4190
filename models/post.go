package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post edited through the admin console. Body is
// markdown; rendering to HTML happens at read time.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
