package utils

import (
	"net/http"

	"github.com/upb/blog-api/services"
	"go.uber.org/zap"
)

// WriteServiceError maps domain errors to HTTP responses.
// Anything that is not a client error is logged and answered with the uniform 500 body.
func WriteServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	message := services.GetErrorMessage(err)

	var writeErr error
	switch {
	case services.IsValidationError(err):
		field, _ := services.GetErrorDetails(err)["field"].(string)
		if field == "" {
			field = "body"
		}
		writeErr = WriteValidationErrors(w, []FieldError{{Field: field, Message: message}})

	case services.IsBadRequestError(err), services.IsConflictError(err):
		writeErr = WriteBadRequest(w, message)

	case services.IsUnauthorizedError(err):
		writeErr = WriteUnauthorized(w)

	case services.IsForbiddenError(err):
		writeErr = WriteForbidden(w, message)

	case services.IsNotFoundError(err):
		writeErr = WriteNotFound(w, message)

	case services.IsInternalError(err):
		logger.Error("internal server error", zap.Error(err))
		writeErr = WriteInternalServerError(w)

	default:
		logger.Error("unhandled error type",
			zap.Error(err),
			zap.String("error_type", string(services.GetErrorType(err))))
		writeErr = WriteInternalServerError(w)
	}

	if writeErr != nil {
		logger.Error("failed to write error response", zap.Error(writeErr))
		return
	}

	logger.Debug("handled service error",
		zap.String("type", string(services.GetErrorType(err))),
		zap.String("message", message))
}
