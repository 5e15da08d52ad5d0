package handlers

import (
	"net/http"

	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/utils"
)

// LoginHandler handles POST /api/auth/login
func LoginHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[models.LoginRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		result, err := deps.AuthService.Login(r.Context(), req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, result)
	}
}

// RegisterHandler handles POST /api/auth/register
func RegisterHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[models.RegisterRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		result, err := deps.AuthService.Register(r.Context(), req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteCreated(w, result)
	}
}
