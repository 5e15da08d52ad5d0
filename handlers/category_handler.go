package handlers

import (
	"net/http"

	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/utils"
)

// ListCategoriesHandler handles GET /api/categories
func ListCategoriesHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := deps.CategoryService.List(r.Context())
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, categories)
	}
}

// CreateCategoryHandler handles POST /api/categories
func CreateCategoryHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeBody[models.CategoryRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		category, err := deps.CategoryService.Create(r.Context(), req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteCreated(w, category)
	}
}

// UpdateCategoryHandler handles PUT /api/categories/{id}
func UpdateCategoryHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		req, ok := decodeBody[models.CategoryRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		category, err := deps.CategoryService.Update(r.Context(), id, req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, category)
	}
}

// DeleteCategoryHandler handles DELETE /api/categories/{id}
func DeleteCategoryHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		category, err := deps.CategoryService.Delete(r.Context(), id)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, category)
	}
}
