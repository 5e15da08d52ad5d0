package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/upb/blog-api/services"
	"github.com/upb/blog-api/utils"
	"go.uber.org/zap"
)

// OwnershipChecker decides whether a user may modify a resource.
// It returns nil for the owner and a domain error otherwise.
type OwnershipChecker interface {
	AuthorizeOwner(ctx context.Context, resourceID, userID uuid.UUID) error
}

// OwnershipMiddleware restricts a route to the creator of the addressed resource.
// It always runs behind RequireAuth.
type OwnershipMiddleware struct {
	auth    *AuthMiddleware
	checker OwnershipChecker
	param   string
	logger  *zap.Logger
}

// NewOwnershipMiddleware creates an OwnershipMiddleware reading the resource id from the "id" URL param
func NewOwnershipMiddleware(auth *AuthMiddleware, checker OwnershipChecker, logger *zap.Logger) *OwnershipMiddleware {
	return &OwnershipMiddleware{
		auth:    auth,
		checker: checker,
		param:   "id",
		logger:  logger,
	}
}

// RequireOwner authenticates the request and then checks ownership
func (m *OwnershipMiddleware) RequireOwner(next http.Handler) http.Handler {
	return m.auth.RequireAuth(m.checkOwner(next))
}

func (m *OwnershipMiddleware) checkOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := GetRequestIDFromContext(ctx)

		userID, ok := GetUserIDFromContext(ctx)
		if !ok {
			m.logger.Error("user id not found in context",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w)
			return
		}

		resourceID, err := uuid.Parse(chi.URLParam(r, m.param))
		if err != nil {
			utils.WriteServiceError(w, services.ErrItemNotFound, m.logger)
			return
		}

		if err := m.checker.AuthorizeOwner(ctx, resourceID, userID); err != nil {
			if services.IsForbiddenError(err) {
				m.logger.Warn("ownership check failed",
					zap.String("request_id", requestID),
					zap.String("resource_id", resourceID.String()),
					zap.String("user_id", userID.String()))
			}
			utils.WriteServiceError(w, err, m.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
