// Package category implements category management.
package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"github.com/upb/blog-api/services"
	"go.uber.org/zap"
)

// Service handles category operations
type Service struct {
	categories repositories.CategoryRepository
	txMgr      repositories.TransactionManager
	logger     *zap.Logger
}

// NewService creates a new category Service instance
func NewService(categories repositories.CategoryRepository, txMgr repositories.TransactionManager, logger *zap.Logger) *Service {
	return &Service{
		categories: categories,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// List returns every category ordered by name
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, services.WrapInternal("failed to list categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Create stores a new category. Names are unique.
func (s *Service) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	category := models.NewCategory(req.Name)

	err := services.WithTransaction(ctx, s.txMgr, func(ctx context.Context, tx repositories.Transaction) error {
		if err := s.ensureNameFree(ctx, req.Name, uuid.Nil); err != nil {
			return err
		}
		if err := s.categories.Create(ctx, category); err != nil {
			return mapWriteError("failed to create category", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.String("category_id", category.ID.String()))
	return category, nil
}

// Update renames a category
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	return services.WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, tx repositories.Transaction) (*models.Category, error) {
		if err := s.ensureNameFree(ctx, req.Name, id); err != nil {
			return nil, err
		}

		updated, err := s.categories.Update(ctx, id, req.Name)
		if err != nil {
			return nil, mapWriteError("failed to update category", err)
		}

		s.logger.Info("category updated", zap.String("category_id", id.String()))
		return updated, nil
	})
}

// Delete removes a category that no blog references
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, services.ErrCategoryInUse
		}
		return nil, mapWriteError("failed to delete category", err)
	}

	s.logger.Info("category deleted", zap.String("category_id", id.String()))
	return deleted, nil
}

func (s *Service) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.categories.FindByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID != self {
			return services.ErrItemExists
		}
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		return services.WrapInternal("failed to check category name", err)
	}
}

func mapWriteError(message string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return services.ErrItemNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return services.ErrItemExists
	default:
		return services.WrapInternal(message, err)
	}
}
