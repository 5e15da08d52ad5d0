package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/upb/blog-api/middleware"
	"github.com/upb/blog-api/utils"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies read by decodeBody
const maxBodyBytes = 1 << 20

// decodeBody reads and validates the request body into T.
// On failure the response has already been written and ok is false.
func decodeBody[T any](w http.ResponseWriter, r *http.Request, logger *zap.Logger) (T, bool) {
	var zero T

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = utils.WriteValidationErrors(w, []utils.FieldError{{Field: "body", Message: "Request body is too large"}})
			return zero, false
		}
		logger.Error("failed to read request body", zap.Error(err))
		_ = utils.WriteInternalServerError(w)
		return zero, false
	}

	result := utils.Validate[T](body)
	if !result.Success {
		_ = utils.WriteValidationErrors(w, result.Errors)
		return zero, false
	}

	return result.Data, true
}

// pathID parses the {id} URL parameter. A malformed id is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteNotFound(w, "")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated user, answering 401 when absent
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		_ = utils.WriteUnauthorized(w)
		return uuid.Nil, false
	}
	return userID, true
}

// RootHandler answers GET / with a plain greeting
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello World"))
	}
}

// NotFoundHandler answers unknown routes
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteMessage(w, http.StatusNotFound, "Endpoint not found")
	}
}
