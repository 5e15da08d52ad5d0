package handlers

import (
	"net/http"

	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/utils"
)

// UpdateUserHandler handles PATCH /api/users/{id}
func UpdateUserHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		req, ok := decodeBody[models.UpdateUserRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		user, err := deps.UserService.UpdateName(r.Context(), id, req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, user)
	}
}

// GetCurrentUserHandler handles GET /api/users/me
func GetCurrentUserHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		user, err := deps.UserService.GetByID(r.Context(), userID)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, user)
	}
}
