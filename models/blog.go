package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SortOrder controls the createdAt ordering of blog listings
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Blog represents a blog post. OwnerID is set at creation and never reassigned.
type Blog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	CategoryID uuid.UUID `json:"categoryId" db:"category_id"`
	OwnerID    uuid.UUID `json:"ownerId" db:"owner_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// NewBlog creates a new Blog owned by ownerID
func NewBlog(title, content string, categoryID, ownerID uuid.UUID) *Blog {
	now := time.Now().UTC()
	return &Blog{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(title),
		Content:    content,
		CategoryID: categoryID,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// OwnerRef is the {id, name, email} projection of a blog owner
type OwnerRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BlogView is a blog with its category and owner populated
type BlogView struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Category  CategoryRef `json:"category"`
	Owner     OwnerRef    `json:"owner"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// BlogFilter narrows a blog listing. Empty fields are ignored.
type BlogFilter struct {
	CategoryID *uuid.UUID
	OwnerID    *uuid.UUID
	Title      string
	Content    string
	Order      SortOrder
	Limit      int
	Offset     int
}
