package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"go.uber.org/zap"
)

const categoryColumns = `id, name, created_at, updated_at`

// CategoryRepository implements the repositories.CategoryRepository interface
type CategoryRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB, logger *zap.Logger) repositories.CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all categories ordered by name
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

// FindByID retrieves a category by ID
func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// FindByName retrieves a category by name
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	return r.scanOne(ctx, query, name)
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", mapError(err))
	}

	r.logger.Debug("category created", zap.String("id", category.ID.String()))
	return nil
}

// Update renames a category
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $2,
		    updated_at = $3
		WHERE id = $1
		RETURNING ` + categoryColumns

	category, err := r.scanOne(ctx, query, id, name, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	r.logger.Debug("category updated", zap.String("id", id.String()))
	return category, nil
}

// Delete deletes a category
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	query := `DELETE FROM categories WHERE id = $1 RETURNING ` + categoryColumns

	category, err := r.scanOne(ctx, query, id)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("category deleted", zap.String("id", id.String()))
	return category, nil
}

func (r *CategoryRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*models.Category, error) {
	executor := GetExecutor(ctx, r.db)
	category := &models.Category{}

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("category query failed: %w", mapError(err))
	}

	return category, nil
}
