package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed docs/openapi.json
var openAPIDocument []byte

// APIDocsHandler serves the OpenAPI document at GET /api-docs.json
func APIDocsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(openAPIDocument)
	}
}
