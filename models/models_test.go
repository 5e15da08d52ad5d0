package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// User tests
func TestNewUser(t *testing.T) {
	user := NewUser("  Ann Lee ", " Ann@Example.COM ", "hashed")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ann Lee", user.Name)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	user := NewUser("Ann Lee", "ann@example.com", "$2a$10$secret")

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "password")
	assert.NotContains(t, decoded, "PasswordHash")
	assert.NotContains(t, string(data), "$2a$10$secret")
	assert.Equal(t, "ann@example.com", decoded["email"])
}

func TestUser_Summary(t *testing.T) {
	user := NewUser("Ann Lee", "ann@example.com", "hashed")

	summary := user.Summary()

	assert.Equal(t, user.ID.String(), summary.ID)
	assert.Equal(t, "Ann Lee", summary.Name)
	assert.Equal(t, "ann@example.com", summary.Email)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  ANN@example.com\t"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

// Category tests
func TestNewCategory(t *testing.T) {
	category := NewCategory(" Technology ")

	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Equal(t, "Technology", category.Name)
}

// Blog tests
func TestNewBlog(t *testing.T) {
	categoryID := uuid.New()
	ownerID := uuid.New()

	blog := NewBlog(" Intro to Go ", "Goroutines and channels", categoryID, ownerID)

	assert.NotEqual(t, uuid.Nil, blog.ID)
	assert.Equal(t, "Intro to Go", blog.Title)
	assert.Equal(t, categoryID, blog.CategoryID)
	assert.Equal(t, ownerID, blog.OwnerID)
}

// Pagination tests
func TestNewPage(t *testing.T) {
	t.Run("nil data becomes empty slice", func(t *testing.T) {
		page := NewPage[BlogView](nil, 0, 1, 10)

		data, err := json.Marshal(page)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[],"total":0,"page":1,"limit":10}`, string(data))
	})

	t.Run("keeps values", func(t *testing.T) {
		views := []BlogView{{ID: uuid.New(), CreatedAt: time.Now()}}
		page := NewPage(views, 11, 2, 5)

		assert.Len(t, page.Data, 1)
		assert.Equal(t, 11, page.Total)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 5, page.Limit)
	})
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 5, 10},
		{0, 10, 0},
		{-4, 10, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Offset(tt.page, tt.limit))
	}
}
