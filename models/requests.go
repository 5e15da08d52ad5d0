package models

import "strings"

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims and lowercases the email
func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50" msg_min:"Name must be at least 2 characters long" msg_max:"Name must be less than 50 characters long"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8" msg_min:"Password must be at least 8 characters long"`
}

// Normalize trims the name and normalizes the email. Passwords are kept verbatim.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
}

// UpdateUserRequest is the body of PATCH /api/users/{id}
type UpdateUserRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50" msg_min:"Name must be at least 2 characters long" msg_max:"Name must be less than 50 characters long"`
}

// Normalize trims the name
func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// CategoryRequest is the body of POST and PUT /api/categories
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50" msg_min:"Category name must be at least 2 characters long" msg_max:"Category name must be less than 50 characters long"`
}

// Normalize trims the name
func (r *CategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// BlogRequest is the body of POST and PUT /api/blogs
type BlogRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=50" msg_min:"Name must be at least 2 characters long" msg_max:"Name must be less than 50 characters long"`
	Content  string `json:"content" validate:"required,min=10" msg_min:"Content must be at least 10 characters long"`
	Category string `json:"category" validate:"required,uuid" msg_uuid:"Invalid ID"`
}

// Normalize trims title and category id
func (r *BlogRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
}
