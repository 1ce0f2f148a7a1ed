package api

import (
	"context"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"shopchannel/search/internal/config"
	"shopchannel/search/internal/domain"
	"shopchannel/search/internal/search"
)

// SearchService is what the HTTP layer needs from the application core.
type SearchService interface {
	SearchByText(ctx context.Context, query string, criteria search.Criteria, page, pageSize int, shape domain.OutputShape) (*search.Result, error)
	SearchByID(ctx context.Context, id string) (*domain.ProductRecord, error)
}

type Server struct {
	service SearchService
	cfg     config.Config
}

func NewServer(service SearchService, cfg config.Config) *Server {
	return &Server{
		service: service,
		cfg:     cfg,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, error, message string) {
	response := ErrorResponse{
		Error:   error,
		Message: message,
	}
	s.writeJSON(w, status, response)
}

// requireAPIKey enforces the X-API-Key header on API routes: missing keys
// are unauthorized, mismatched keys are forbidden.
func (s *Server) requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			s.writeError(w, http.StatusUnauthorized, "Missing API key", "API key is missing")
			return
		}
		if apiKey != s.cfg.Server.APIKey {
			s.writeError(w, http.StatusForbidden, "Invalid API key", "API key is not valid")
			return
		}

		next(w, r)
	}
}

func (s *Server) CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.Server.CORSAllowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
