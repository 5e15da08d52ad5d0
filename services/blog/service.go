// Package blog implements blog post listing, authoring and ownership lookups.
package blog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"github.com/upb/blog-api/services"
	"go.uber.org/zap"
)

// Service handles blog operations
type Service struct {
	blogs      repositories.BlogRepository
	categories repositories.CategoryRepository
	txMgr      repositories.TransactionManager
	logger     *zap.Logger
}

// NewService creates a new blog Service instance
func NewService(
	blogs repositories.BlogRepository,
	categories repositories.CategoryRepository,
	txMgr repositories.TransactionManager,
	logger *zap.Logger,
) *Service {
	return &Service{
		blogs:      blogs,
		categories: categories,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// List returns one page of blogs matching filter.
// page and limit are clamped to their defaults and maximum.
func (s *Service) List(ctx context.Context, filter models.BlogFilter, page, limit int) (models.Page[models.BlogView], error) {
	if page < 1 {
		page = models.DefaultPage
	}
	if limit < 1 {
		limit = models.DefaultLimit
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}
	if filter.Order != models.SortAsc {
		filter.Order = models.SortDesc
	}

	filter.Limit = limit
	filter.Offset = models.Offset(page, limit)

	views, err := s.blogs.List(ctx, filter)
	if err != nil {
		return models.Page[models.BlogView]{}, services.WrapInternal("failed to list blogs", err)
	}

	total, err := s.blogs.Count(ctx, filter)
	if err != nil {
		return models.Page[models.BlogView]{}, services.WrapInternal("failed to count blogs", err)
	}

	return models.NewPage(views, total, page, limit), nil
}

// Get returns a blog with its category and owner
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.BlogView, error) {
	view, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrItemNotFound
		}
		return nil, services.WrapInternal("failed to get blog", err)
	}
	return view, nil
}

// Create stores a new blog owned by ownerID. Titles are unique.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req models.BlogRequest) (*models.Blog, error) {
	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return nil, services.ErrInvalidCategory
	}

	return services.WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, tx repositories.Transaction) (*models.Blog, error) {
		if err := s.ensureTitleFree(ctx, req.Title, uuid.Nil); err != nil {
			return nil, err
		}
		if err := s.ensureCategory(ctx, categoryID); err != nil {
			return nil, err
		}

		blog := models.NewBlog(req.Title, req.Content, categoryID, ownerID)
		if err := s.blogs.Create(ctx, blog); err != nil {
			return nil, mapWriteError("failed to create blog", err)
		}

		s.logger.Info("blog created",
			zap.String("blog_id", blog.ID.String()),
			zap.String("owner_id", ownerID.String()))
		return blog, nil
	})
}

// Update replaces the title, content and category of a blog
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.BlogRequest) (*models.Blog, error) {
	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return nil, services.ErrInvalidCategory
	}

	return services.WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, tx repositories.Transaction) (*models.Blog, error) {
		if err := s.ensureTitleFree(ctx, req.Title, id); err != nil {
			return nil, err
		}
		if err := s.ensureCategory(ctx, categoryID); err != nil {
			return nil, err
		}

		updated, err := s.blogs.Update(ctx, &models.Blog{
			ID:         id,
			Title:      req.Title,
			Content:    req.Content,
			CategoryID: categoryID,
		})
		if err != nil {
			return nil, mapWriteError("failed to update blog", err)
		}

		s.logger.Info("blog updated", zap.String("blog_id", id.String()))
		return updated, nil
	})
}

// Delete removes a blog and returns it
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	deleted, err := s.blogs.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrItemNotFound
		}
		return nil, services.WrapInternal("failed to delete blog", err)
	}

	s.logger.Info("blog deleted", zap.String("blog_id", id.String()))
	return deleted, nil
}

// OwnerOf returns the id of the user who created the blog
func (s *Service) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ownerID, err := s.blogs.GetOwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return uuid.Nil, services.ErrItemNotFound
		}
		return uuid.Nil, services.WrapInternal("failed to get blog owner", err)
	}
	return ownerID, nil
}

// AuthorizeOwner fails with ErrForbiddenBlog unless userID created the blog
func (s *Service) AuthorizeOwner(ctx context.Context, id, userID uuid.UUID) error {
	ownerID, err := s.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return services.ErrForbiddenBlog
	}
	return nil
}

// ensureTitleFree fails when another blog than self already uses title
func (s *Service) ensureTitleFree(ctx context.Context, title string, self uuid.UUID) error {
	existing, err := s.blogs.FindByTitle(ctx, title)
	switch {
	case err == nil:
		if existing.ID != self {
			return services.ErrItemExists
		}
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		return services.WrapInternal("failed to check blog title", err)
	}
}

func (s *Service) ensureCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrInvalidCategory
		}
		return services.WrapInternal("failed to check category", err)
	}
	return nil
}

func mapWriteError(message string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return services.ErrItemNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return services.ErrItemExists
	case errors.Is(err, repositories.ErrInvalidReference):
		return services.ErrInvalidCategory
	default:
		return services.WrapInternal(message, err)
	}
}
