package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/upb/blog-api/utils"
	"go.uber.org/zap"
)

// Recoverer turns panics into the uniform 500 response and logs the stack
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", GetRequestIDFromContext(r.Context())),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))

				if r.Header.Get("Connection") != "Upgrade" {
					_ = utils.WriteInternalServerError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
