package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/blog-api/models"
)

type nestedAuthor struct {
	Name string `json:"name" validate:"required,min=2" msg_min:"Author name is too short"`
}

type nestedRequest struct {
	Title  string       `json:"title" validate:"required"`
	Author nestedAuthor `json:"author"`
}

func fieldMessages(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidate_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantFields map[string]string
	}{
		{
			name:   "valid payload is normalized",
			body:   `{"name":"  Ann Lee ","email":" ANN@Example.com ","password":"password123"}`,
			wantOK: true,
		},
		{
			name:   "short name",
			body:   `{"name":"A","email":"ann@example.com","password":"password123"}`,
			wantOK: false,
			wantFields: map[string]string{
				"name": "Name must be at least 2 characters long",
			},
		},
		{
			name:   "long name",
			body:   `{"name":"` + strings.Repeat("a", 51) + `","email":"ann@example.com","password":"password123"}`,
			wantOK: false,
			wantFields: map[string]string{
				"name": "Name must be less than 50 characters long",
			},
		},
		{
			name:   "invalid email and short password",
			body:   `{"name":"Ann","email":"not-an-email","password":"short"}`,
			wantOK: false,
			wantFields: map[string]string{
				"email":    "Invalid Email Address",
				"password": "Password must be at least 8 characters long",
			},
		},
		{
			name:   "missing fields",
			body:   `{}`,
			wantOK: false,
			wantFields: map[string]string{
				"name":     "name is required",
				"email":    "email is required",
				"password": "password is required",
			},
		},
		{
			name:   "whitespace-only name counts as missing",
			body:   `{"name":"   ","email":"ann@example.com","password":"password123"}`,
			wantOK: false,
			wantFields: map[string]string{
				"name": "name is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate[models.RegisterRequest]([]byte(tt.body))

			assert.Equal(t, tt.wantOK, result.Success)
			if tt.wantOK {
				assert.Empty(t, result.Errors)
				assert.Equal(t, "Ann Lee", result.Data.Name)
				assert.Equal(t, "ann@example.com", result.Data.Email)
				return
			}
			assert.Equal(t, tt.wantFields, fieldMessages(result.Errors))
		})
	}
}

func TestValidate_MalformedInput(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"empty body", "", "body"},
		{"whitespace body", "   ", "body"},
		{"invalid json", `{"name":`, "body"},
		{"array instead of object", `[1,2]`, "body"},
		{"wrong field type", `{"name":42,"email":"a@b.co","password":"password123"}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result Result[models.RegisterRequest]
			require.NotPanics(t, func() {
				result = Validate[models.RegisterRequest]([]byte(tt.body))
			})

			assert.False(t, result.Success)
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidate_Blog(t *testing.T) {
	result := Validate[models.BlogRequest]([]byte(`{"title":"Go","content":"too short","category":"123"}`))

	assert.False(t, result.Success)
	assert.Equal(t, map[string]string{
		"content":  "Content must be at least 10 characters long",
		"category": "Invalid ID",
	}, fieldMessages(result.Errors))
}

func TestValidate_Category(t *testing.T) {
	result := Validate[models.CategoryRequest]([]byte(`{"name":"x"}`))

	assert.False(t, result.Success)
	assert.Equal(t, map[string]string{
		"name": "Category name must be at least 2 characters long",
	}, fieldMessages(result.Errors))
}

func TestValidate_NestedFieldPaths(t *testing.T) {
	result := Validate[nestedRequest]([]byte(`{"title":"Hello","author":{"name":"A"}}`))

	assert.False(t, result.Success)
	assert.Equal(t, map[string]string{
		"author.name": "Author name is too short",
	}, fieldMessages(result.Errors))
}

func TestParseUUID(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	assert.Error(t, err)

	id, err := ParseUUID(" 6f1c1b7e-1111-4c3a-9c1d-2f0e5d7a9b10 ")
	require.NoError(t, err)
	assert.Equal(t, "6f1c1b7e-1111-4c3a-9c1d-2f0e5d7a9b10", id.String())
}
