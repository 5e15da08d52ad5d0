package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/upb/blog-api/app"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/utils"
)

// blogListQuery is the parsed query string of GET /api/blogs
type blogListQuery struct {
	Filter models.BlogFilter
	Page   int
	Limit  int
}

// parseBlogListQuery reads paging and filter parameters.
// Malformed values are reported per parameter.
func parseBlogListQuery(q url.Values) (blogListQuery, []utils.FieldError) {
	query := blogListQuery{
		Page:  models.DefaultPage,
		Limit: models.DefaultLimit,
	}
	var errs []utils.FieldError

	if v := strings.TrimSpace(q.Get("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			errs = append(errs, utils.FieldError{Field: "page", Message: "page must be a positive integer"})
		} else {
			query.Page = page
		}
	}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			errs = append(errs, utils.FieldError{Field: "limit", Message: "limit must be a positive integer"})
		} else {
			query.Limit = min(limit, models.MaxLimit)
		}
	}

	for _, p := range []struct {
		name string
		dst  **uuid.UUID
	}{
		{"categoryId", &query.Filter.CategoryID},
		{"ownerId", &query.Filter.OwnerID},
	} {
		v := strings.TrimSpace(q.Get(p.name))
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, utils.FieldError{Field: p.name, Message: "Invalid ID"})
			continue
		}
		*p.dst = &id
	}

	query.Filter.Title = strings.TrimSpace(q.Get("title"))
	query.Filter.Content = strings.TrimSpace(q.Get("content"))

	query.Filter.Order = models.SortDesc
	if strings.EqualFold(strings.TrimSpace(q.Get("order")), string(models.SortAsc)) {
		query.Filter.Order = models.SortAsc
	}

	return query, errs
}

// ListBlogsHandler handles GET /api/blogs
func ListBlogsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, errs := parseBlogListQuery(r.URL.Query())
		if len(errs) > 0 {
			_ = utils.WriteValidationErrors(w, errs)
			return
		}

		page, err := deps.BlogService.List(r.Context(), query.Filter, query.Page, query.Limit)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, page)
	}
}

// GetBlogHandler handles GET /api/blogs/{id}
func GetBlogHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		view, err := deps.BlogService.Get(r.Context(), id)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, view)
	}
}

// CreateBlogHandler handles POST /api/blogs. The caller becomes the owner.
func CreateBlogHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		req, ok := decodeBody[models.BlogRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		blog, err := deps.BlogService.Create(r.Context(), ownerID, req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteCreated(w, blog)
	}
}

// UpdateBlogHandler handles PUT /api/blogs/{id}. Ownership is checked by middleware.
func UpdateBlogHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		req, ok := decodeBody[models.BlogRequest](w, r, deps.Logger)
		if !ok {
			return
		}

		blog, err := deps.BlogService.Update(r.Context(), id, req)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, blog)
	}
}

// DeleteBlogHandler handles DELETE /api/blogs/{id}. Ownership is checked by middleware.
func DeleteBlogHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		blog, err := deps.BlogService.Delete(r.Context(), id)
		if err != nil {
			utils.WriteServiceError(w, err, deps.Logger)
			return
		}

		_ = utils.WriteOK(w, blog)
	}
}
