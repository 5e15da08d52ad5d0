package app

import (
	"context"
	"fmt"

	"github.com/upb/blog-api/auth"
	"github.com/upb/blog-api/config"
	"github.com/upb/blog-api/middleware"
	"github.com/upb/blog-api/repositories"
	"github.com/upb/blog-api/repositories/postgres"
	"github.com/upb/blog-api/services/account"
	"github.com/upb/blog-api/services/blog"
	"github.com/upb/blog-api/services/category"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Users      repositories.UserRepository
	Blogs      repositories.BlogRepository
	Categories repositories.CategoryRepository
	TxManager  repositories.TransactionManager

	// Auth
	Hasher auth.Hasher
	Tokens *auth.TokenService

	// Services
	AuthService     *account.AuthService
	UserService     *account.UserService
	BlogService     *blog.Service
	CategoryService *category.Service

	// Middleware
	AuthMiddleware      *middleware.AuthMiddleware
	OwnershipMiddleware *middleware.OwnershipMiddleware
}

// NewDependencies opens the database and wires up all application dependencies
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	factory, err := postgres.NewRepositoryFactory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps, err := NewDependenciesWithFactory(ctx, cfg, factory, logger)
	if err != nil {
		_ = factory.Close()
		return nil, err
	}
	return deps, nil
}

// NewDependenciesWithFactory wires dependencies over an existing repository factory
func NewDependenciesWithFactory(ctx context.Context, cfg *config.Config, factory *postgres.RepositoryFactory, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:      cfg,
		Logger:      logger,
		RepoFactory: factory,
		DB:          factory.GetDB(),
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initRepositories()

	if err := deps.initAuth(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}

	deps.initServices()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase applies migrations when enabled
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	if !cfg.Database.AutoMigrate {
		d.Logger.Info("automatic migrations disabled")
		return nil
	}

	if err := d.RepoFactory.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.Logger.Info("database migrations applied")
	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	repos := d.RepoFactory.NewRepositories()

	d.Users = repos.Users
	d.Blogs = repos.Blogs
	d.Categories = repos.Categories
	d.TxManager = d.RepoFactory.GetTransactionManager()

	d.Logger.Info("repositories initialized")
}

func (d *Dependencies) initAuth(cfg *config.Config) error {
	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	d.Tokens = tokens
	d.Hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	d.AuthMiddleware = middleware.NewAuthMiddleware(tokens, d.Logger)

	d.Logger.Info("auth initialized",
		zap.Duration("token_ttl", cfg.Auth.TokenTTL),
		zap.Int("bcrypt_cost", cfg.Auth.BcryptCost))
	return nil
}

func (d *Dependencies) initServices() {
	d.AuthService = account.NewAuthService(d.Users, d.Hasher, d.Tokens, d.Logger)
	d.UserService = account.NewUserService(d.Users, d.Logger)
	d.BlogService = blog.NewService(d.Blogs, d.Categories, d.TxManager, d.Logger)
	d.CategoryService = category.NewService(d.Categories, d.TxManager, d.Logger)

	// ownership is resolved through the blog service so store errors map to domain errors
	d.OwnershipMiddleware = middleware.NewOwnershipMiddleware(d.AuthMiddleware, d.BlogService, d.Logger)
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
