package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"go.uber.org/zap"
)

const (
	blogColumns = `id, title, content, category_id, owner_id, created_at, updated_at`

	blogViewSelect = `
		SELECT b.id, b.title, b.content, b.created_at, b.updated_at,
		       c.id, c.name,
		       u.id, u.name, u.email
		FROM blogs b
		JOIN categories c ON c.id = b.category_id
		JOIN users u ON u.id = b.owner_id`
)

// BlogRepository implements the repositories.BlogRepository interface
type BlogRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *DB, logger *zap.Logger) repositories.BlogRepository {
	return &BlogRepository{
		db:     db,
		logger: logger,
	}
}

// List returns one page of blogs matching the filter
func (r *BlogRepository) List(ctx context.Context, filter models.BlogFilter) ([]models.BlogView, error) {
	where, args := buildBlogWhere(filter)

	order := "DESC"
	if filter.Order == models.SortAsc {
		order = "ASC"
	}

	query := blogViewSelect + where + fmt.Sprintf(" ORDER BY b.created_at %s, b.id %s", order, order)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	views := []models.BlogView{}
	for rows.Next() {
		var v models.BlogView
		if err := rows.Scan(
			&v.ID, &v.Title, &v.Content, &v.CreatedAt, &v.UpdatedAt,
			&v.Category.ID, &v.Category.Name,
			&v.Owner.ID, &v.Owner.Name, &v.Owner.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog rows: %w", err)
	}

	return views, nil
}

// Count returns the number of blogs matching the filter
func (r *BlogRepository) Count(ctx context.Context, filter models.BlogFilter) (int, error) {
	where, args := buildBlogWhere(filter)
	query := `SELECT COUNT(*) FROM blogs b` + where

	var total int
	executor := GetExecutor(ctx, r.db)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count blogs: %w", err)
	}
	return total, nil
}

// FindByID retrieves a populated blog by ID
func (r *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogView, error) {
	query := blogViewSelect + ` WHERE b.id = $1`

	var v models.BlogView
	executor := GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Title, &v.Content, &v.CreatedAt, &v.UpdatedAt,
		&v.Category.ID, &v.Category.Name,
		&v.Owner.ID, &v.Owner.Name, &v.Owner.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog: %w", mapError(err))
	}

	return &v, nil
}

// FindByTitle retrieves a blog by exact title
func (r *BlogRepository) FindByTitle(ctx context.Context, title string) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE title = $1`
	return r.scanOne(ctx, query, title)
}

// GetOwnerID returns the owner of a blog
func (r *BlogRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := `SELECT owner_id FROM blogs WHERE id = $1`

	var ownerID uuid.UUID
	executor := GetExecutor(ctx, r.db)
	if err := executor.QueryRowContext(ctx, query, id).Scan(&ownerID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to get blog owner: %w", mapError(err))
	}
	return ownerID, nil
}

// Create creates a new blog
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (id, title, content, category_id, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		blog.ID,
		blog.Title,
		blog.Content,
		blog.CategoryID,
		blog.OwnerID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", mapError(err))
	}

	r.logger.Debug("blog created",
		zap.String("id", blog.ID.String()),
		zap.String("owner_id", blog.OwnerID.String()))
	return nil
}

// Update replaces the editable fields of a blog. The owner is never changed.
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query := `
		UPDATE blogs
		SET title = $2,
		    content = $3,
		    category_id = $4,
		    updated_at = $5
		WHERE id = $1
		RETURNING ` + blogColumns

	updated, err := r.scanOne(ctx, query, blog.ID, blog.Title, blog.Content, blog.CategoryID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	r.logger.Debug("blog updated", zap.String("id", blog.ID.String()))
	return updated, nil
}

// Delete deletes a blog
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	query := `DELETE FROM blogs WHERE id = $1 RETURNING ` + blogColumns

	deleted, err := r.scanOne(ctx, query, id)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("blog deleted", zap.String("id", id.String()))
	return deleted, nil
}

func (r *BlogRepository) scanOne(ctx context.Context, query string, args ...interface{}) (*models.Blog, error) {
	executor := GetExecutor(ctx, r.db)
	blog := &models.Blog{}

	err := executor.QueryRowContext(ctx, query, args...).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.CategoryID,
		&blog.OwnerID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("blog query failed: %w", mapError(err))
	}

	return blog, nil
}

// buildBlogWhere renders the filter as a WHERE clause over alias b
func buildBlogWhere(filter models.BlogFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("b.category_id = $%d", len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conds = append(conds, fmt.Sprintf("b.owner_id = $%d", len(args)))
	}
	if filter.Title != "" {
		args = append(args, containsPattern(filter.Title))
		conds = append(conds, fmt.Sprintf("b.title ILIKE $%d", len(args)))
	}
	if filter.Content != "" {
		args = append(args, containsPattern(filter.Content))
		conds = append(conds, fmt.Sprintf("b.content ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
