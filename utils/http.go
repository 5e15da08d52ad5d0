package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the {message} body used for client errors
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the {errors} body used for schema failures
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// InternalErrorResponse is the uniform body of every 500 response
type InternalErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return nil
	}

	return json.NewEncoder(w).Encode(data)
}

// WriteOK writes a 200 OK response with data as the body
func WriteOK(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusOK, data)
}

// WriteCreated writes a 201 Created response with data as the body
func WriteCreated(w http.ResponseWriter, data interface{}) error {
	return WriteJSON(w, http.StatusCreated, data)
}

// WriteMessage writes a {message} body with the given status
func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteValidationErrors writes a 400 with the field-level error list
func WriteValidationErrors(w http.ResponseWriter, errs []FieldError) error {
	if errs == nil {
		errs = []FieldError{}
	}
	return WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
}

// WriteBadRequest writes a 400 Bad Request response
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteMessage(w, http.StatusBadRequest, message)
}

// WriteUnauthorized writes a 401 Unauthorized response
func WriteUnauthorized(w http.ResponseWriter) error {
	return WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
}

// WriteForbidden writes a 403 Forbidden response
func WriteForbidden(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return WriteMessage(w, http.StatusForbidden, message)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) error {
	if message == "" {
		message = "Item not found"
	}
	return WriteMessage(w, http.StatusNotFound, message)
}

// WriteInternalServerError writes the uniform 500 body. Nothing about the cause is exposed.
func WriteInternalServerError(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusInternalServerError, InternalErrorResponse{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
		Success: false,
	})
}
