package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.HandleHealth)
	mux.HandleFunc("GET /api/search-by-text", s.requireAPIKey(s.HandleSearchByText))
	mux.HandleFunc("GET /api/wp/search-by-text", s.requireAPIKey(s.HandleSearchByTextStorefront))
	mux.HandleFunc("GET /api/search-by-id", s.requireAPIKey(s.HandleSearchByID))
}
