// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
)

// TransactionManager is a mock implementation of repositories.TransactionManager
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) Begin(ctx context.Context) (repositories.Transaction, error) {
	args := m.Called(ctx)
	if tx := args.Get(0); tx != nil {
		return tx.(repositories.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

// Transaction is a mock implementation of repositories.Transaction.
// Context returns Ctx, or context.Background when Ctx is nil.
type Transaction struct {
	mock.Mock
	Ctx        context.Context
	Committed  bool
	RolledBack bool
}

func (m *Transaction) Commit() error {
	args := m.Called()
	m.Committed = true
	return args.Error(0)
}

func (m *Transaction) Rollback() error {
	args := m.Called()
	m.RolledBack = true
	return args.Error(0)
}

func (m *Transaction) Context() context.Context {
	if m.Ctx == nil {
		return context.Background()
	}
	return m.Ctx
}

// NewPassthroughTxManager returns a manager whose transactions always commit
func NewPassthroughTxManager() (*TransactionManager, *Transaction) {
	tx := &Transaction{}
	tx.On("Commit").Return(nil).Maybe()
	tx.On("Rollback").Return(nil).Maybe()

	txMgr := &TransactionManager{}
	txMgr.On("Begin", mock.Anything).Return(tx, nil).Maybe()
	return txMgr, tx
}

// UserRepository is a mock implementation of repositories.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	args := m.Called(ctx, id, name)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// BlogRepository is a mock implementation of repositories.BlogRepository
type BlogRepository struct {
	mock.Mock
}

func (m *BlogRepository) List(ctx context.Context, filter models.BlogFilter) ([]models.BlogView, error) {
	args := m.Called(ctx, filter)
	if views := args.Get(0); views != nil {
		return views.([]models.BlogView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) Count(ctx context.Context, filter models.BlogFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.BlogView, error) {
	args := m.Called(ctx, id)
	if view := args.Get(0); view != nil {
		return view.(*models.BlogView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) FindByTitle(ctx context.Context, title string) (*models.Blog, error) {
	args := m.Called(ctx, title)
	if blog := args.Get(0); blog != nil {
		return blog.(*models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *BlogRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	args := m.Called(ctx, blog)
	if updated := args.Get(0); updated != nil {
		return updated.(*models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	if deleted := args.Get(0); deleted != nil {
		return deleted.(*models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

// CategoryRepository is a mock implementation of repositories.CategoryRepository
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if categories := args.Get(0); categories != nil {
		return categories.([]models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) Update(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	args := m.Called(ctx, id, name)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if category := args.Get(0); category != nil {
		return category.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
