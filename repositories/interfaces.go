package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/blog-api/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique constraint
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidReference is returned when a write points at a row that does not exist
	ErrInvalidReference = errors.New("invalid reference")
)

// TransactionManager manages database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns a context bound to the transaction.
	// Repository calls made with it run inside the transaction.
	Context() context.Context
}

// UserRepository handles user data operations
type UserRepository interface {
	// Create inserts a new user. Returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, user *models.User) error

	// FindByID retrieves a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByEmail retrieves a user by normalized email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateName sets a user's name and returns the updated row
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error)
}

// BlogRepository handles blog data operations
type BlogRepository interface {
	// List returns blogs matching the filter with category and owner populated
	List(ctx context.Context, filter models.BlogFilter) ([]models.BlogView, error)

	// Count returns the number of blogs matching the filter, ignoring Limit and Offset
	Count(ctx context.Context, filter models.BlogFilter) (int, error)

	// FindByID retrieves a populated blog by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.BlogView, error)

	// FindByTitle retrieves a blog by exact title
	FindByTitle(ctx context.Context, title string) (*models.Blog, error)

	// GetOwnerID returns only the owner of a blog
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	// Create inserts a new blog. Returns ErrDuplicate on a taken title
	// and ErrInvalidReference on an unknown category.
	Create(ctx context.Context, blog *models.Blog) error

	// Update replaces title, content and category and returns the updated row
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)

	// Delete removes a blog and returns the deleted row
	Delete(ctx context.Context, id uuid.UUID) (*models.Blog, error)
}

// CategoryRepository handles category data operations
type CategoryRepository interface {
	// List returns all categories ordered by name
	List(ctx context.Context) ([]models.Category, error)

	// FindByID retrieves a category by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// FindByName retrieves a category by exact name
	FindByName(ctx context.Context, name string) (*models.Category, error)

	// Create inserts a new category. Returns ErrDuplicate on a taken name.
	Create(ctx context.Context, category *models.Category) error

	// Update renames a category and returns the updated row
	Update(ctx context.Context, id uuid.UUID, name string) (*models.Category, error)

	// Delete removes a category and returns the deleted row.
	// Returns ErrInvalidReference while blogs still point at it.
	Delete(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Users      UserRepository
	Blogs      BlogRepository
	Categories CategoryRepository
}
