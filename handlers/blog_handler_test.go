package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upb/blog-api/models"
	"github.com/upb/blog-api/repositories"
	"github.com/upb/blog-api/utils"
)

func TestParseBlogListQuery(t *testing.T) {
	categoryID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		query, errs := parseBlogListQuery(url.Values{})
		assert.Empty(t, errs)
		assert.Equal(t, models.DefaultPage, query.Page)
		assert.Equal(t, models.DefaultLimit, query.Limit)
		assert.Equal(t, models.SortDesc, query.Filter.Order)
		assert.Nil(t, query.Filter.CategoryID)
	})

	t.Run("all parameters", func(t *testing.T) {
		query, errs := parseBlogListQuery(url.Values{
			"page":       {"2"},
			"limit":      {"500"},
			"categoryId": {categoryID.String()},
			"title":      {" go "},
			"content":    {"channels"},
			"order":      {"ASC"},
		})
		require.Empty(t, errs)
		assert.Equal(t, 2, query.Page)
		assert.Equal(t, models.MaxLimit, query.Limit)
		require.NotNil(t, query.Filter.CategoryID)
		assert.Equal(t, categoryID, *query.Filter.CategoryID)
		assert.Nil(t, query.Filter.OwnerID)
		assert.Equal(t, "go", query.Filter.Title)
		assert.Equal(t, "channels", query.Filter.Content)
		assert.Equal(t, models.SortAsc, query.Filter.Order)
	})

	t.Run("unknown order falls back to newest first", func(t *testing.T) {
		query, errs := parseBlogListQuery(url.Values{"order": {"sideways"}})
		assert.Empty(t, errs)
		assert.Equal(t, models.SortDesc, query.Filter.Order)
	})

	t.Run("malformed values", func(t *testing.T) {
		_, errs := parseBlogListQuery(url.Values{
			"page":    {"zero"},
			"limit":   {"-1"},
			"ownerId": {"123"},
		})
		assert.ElementsMatch(t, []utils.FieldError{
			{Field: "page", Message: "page must be a positive integer"},
			{Field: "limit", Message: "limit must be a positive integer"},
			{Field: "ownerId", Message: "Invalid ID"},
		}, errs)
	})
}

func TestListBlogsHandler(t *testing.T) {
	t.Run("returns a page", func(t *testing.T) {
		env := newTestEnv(t)
		views := []models.BlogView{{ID: uuid.New(), Title: "Go tips"}}
		want := models.BlogFilter{Title: "go", Order: models.SortDesc, Limit: 10, Offset: 0}
		env.blogs.On("List", anyCtx, want).Return(views, nil)
		env.blogs.On("Count", anyCtx, want).Return(1, nil)

		w := httptest.NewRecorder()
		ListBlogsHandler(env.deps)(w, httptest.NewRequest(http.MethodGet, "/api/blogs?title=go", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var page models.Page[models.BlogView]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 1, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Len(t, page.Data, 1)
	})

	t.Run("empty result keeps data as an array", func(t *testing.T) {
		env := newTestEnv(t)
		env.blogs.On("List", anyCtx, mock.Anything).Return(nil, nil)
		env.blogs.On("Count", anyCtx, mock.Anything).Return(0, nil)

		w := httptest.NewRecorder()
		ListBlogsHandler(env.deps)(w, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

		assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":10}`, w.Body.String())
	})

	t.Run("malformed filter", func(t *testing.T) {
		env := newTestEnv(t)

		w := httptest.NewRecorder()
		ListBlogsHandler(env.deps)(w, httptest.NewRequest(http.MethodGet, "/api/blogs?categoryId=abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"field":"categoryId","message":"Invalid ID"}]}`, w.Body.String())
	})
}

func TestGetBlogHandler(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	env.blogs.On("FindByID", anyCtx, id).Return(nil, repositories.ErrNotFound)

	w := httptest.NewRecorder()
	GetBlogHandler(env.deps)(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/blogs/"+id.String(), nil), "id", id.String()))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Item not found"}`, w.Body.String())
}

func TestCreateBlogHandler(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	body := `{"title":"Go tips","content":"Channels are typed conduits","category":"` + categoryID.String() + `"}`

	t.Run("owner comes from identity", func(t *testing.T) {
		env := newTestEnv(t)
		env.blogs.On("FindByTitle", anyCtx, "Go tips").Return(nil, repositories.ErrNotFound)
		env.categories.On("FindByID", anyCtx, categoryID).Return(&models.Category{ID: categoryID}, nil)
		env.blogs.On("Create", anyCtx, mock.MatchedBy(func(b *models.Blog) bool {
			return b.OwnerID == ownerID
		})).Return(nil)

		req := withUser(jsonRequest(http.MethodPost, "/api/blogs", body), ownerID)
		w := httptest.NewRecorder()

		CreateBlogHandler(env.deps)(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Blog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, ownerID, created.OwnerID)
		assert.Equal(t, categoryID, created.CategoryID)
	})

	t.Run("duplicate title", func(t *testing.T) {
		env := newTestEnv(t)
		env.blogs.On("FindByTitle", anyCtx, "Go tips").Return(&models.Blog{ID: uuid.New()}, nil)

		req := withUser(jsonRequest(http.MethodPost, "/api/blogs", body), ownerID)
		w := httptest.NewRecorder()

		CreateBlogHandler(env.deps)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Item already exists"}`, w.Body.String())
	})

	t.Run("unknown category", func(t *testing.T) {
		env := newTestEnv(t)
		env.blogs.On("FindByTitle", anyCtx, "Go tips").Return(nil, repositories.ErrNotFound)
		env.categories.On("FindByID", anyCtx, categoryID).Return(nil, repositories.ErrNotFound)

		req := withUser(jsonRequest(http.MethodPost, "/api/blogs", body), ownerID)
		w := httptest.NewRecorder()

		CreateBlogHandler(env.deps)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":[{"field":"category","message":"Invalid ID"}]}`, w.Body.String())
	})

	t.Run("schema failure", func(t *testing.T) {
		env := newTestEnv(t)

		req := withUser(jsonRequest(http.MethodPost, "/api/blogs", `{"title":"Go","content":"short","category":"x"}`), ownerID)
		w := httptest.NewRecorder()

		CreateBlogHandler(env.deps)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Content must be at least 10 characters long")
	})
}

func TestUpdateAndDeleteBlogHandlers(t *testing.T) {
	id := uuid.New()
	categoryID := uuid.New()

	env := newTestEnv(t)
	env.blogs.On("FindByTitle", anyCtx, "Go tips").Return(&models.Blog{ID: id}, nil)
	env.categories.On("FindByID", anyCtx, categoryID).Return(&models.Category{ID: categoryID}, nil)
	env.blogs.On("Update", anyCtx, mock.Anything).Return(&models.Blog{ID: id, Title: "Go tips"}, nil)
	env.blogs.On("Delete", anyCtx, id).Return(&models.Blog{ID: id, Title: "Go tips"}, nil)

	body := `{"title":"Go tips","content":"Channels are typed conduits","category":"` + categoryID.String() + `"}`
	w := httptest.NewRecorder()
	UpdateBlogHandler(env.deps)(w, withURLParam(jsonRequest(http.MethodPut, "/api/blogs/"+id.String(), body), "id", id.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	DeleteBlogHandler(env.deps)(w, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/blogs/"+id.String(), nil), "id", id.String()))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}
