package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/auth"
	"github.com/upb/blog-api/middleware"
	"github.com/upb/blog-api/repositories/mocks"
	"github.com/upb/blog-api/services/account"
	"github.com/upb/blog-api/services/blog"
	"github.com/upb/blog-api/services/category"
	"go.uber.org/zap"
)

type testEnv struct {
	deps       *app.Dependencies
	users      *mocks.UserRepository
	blogs      *mocks.BlogRepository
	categories *mocks.CategoryRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	logger := zap.NewNop()
	tokens, err := auth.NewTokenService("handler-secret", "blog-api", time.Hour)
	require.NoError(t, err)

	users := new(mocks.UserRepository)
	blogs := new(mocks.BlogRepository)
	categories := new(mocks.CategoryRepository)
	txMgr, _ := mocks.NewPassthroughTxManager()
	hasher := auth.NewBcryptHasher(4)

	deps := &app.Dependencies{
		Logger:          logger,
		Users:           users,
		Blogs:           blogs,
		Categories:      categories,
		TxManager:       txMgr,
		Hasher:          hasher,
		Tokens:          tokens,
		AuthService:     account.NewAuthService(users, hasher, tokens, logger),
		UserService:     account.NewUserService(users, logger),
		BlogService:     blog.NewService(blogs, categories, txMgr, logger),
		CategoryService: category.NewService(categories, txMgr, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokens, logger),
	}

	return testEnv{deps: deps, users: users, blogs: blogs, categories: categories}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

var anyCtx = mock.Anything
