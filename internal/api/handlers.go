package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"shopchannel/search/internal/domain"
	"shopchannel/search/internal/search"
	"shopchannel/search/internal/service"
)

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Message: "ok",
		Status:  "healthy",
	})
}

func (s *Server) HandleSearchByText(w http.ResponseWriter, r *http.Request) {
	s.handleTextSearch(w, r, domain.ShapeGeneral)
}

func (s *Server) HandleSearchByTextStorefront(w http.ResponseWriter, r *http.Request) {
	s.handleTextSearch(w, r, domain.ShapeStorefront)
}

func (s *Server) handleTextSearch(w http.ResponseWriter, r *http.Request, shape domain.OutputShape) {
	params, err := s.parseSearchParams(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid parameters", err.Error())
		return
	}

	result, err := s.service.SearchByText(r.Context(), params.query, params.criteria, params.page, params.pageSize, shape)
	if err != nil {
		s.writeSearchError(w, err)
		return
	}

	switch shape {
	case domain.ShapeStorefront:
		s.writeJSON(w, http.StatusOK, StorefrontResponse{
			Suggestions:  result.Suggestions,
			TotalResults: result.TotalResults,
			Page:         result.PageNumber,
			PageSize:     result.PageSize,
			TotalPages:   result.TotalPages,
		})
	default:
		s.writeJSON(w, http.StatusOK, SearchResponse{
			Query:        params.query,
			Results:      result.Records,
			TotalResults: result.TotalResults,
			Page:         result.PageNumber,
			PageSize:     result.PageSize,
			TotalPages:   result.TotalPages,
		})
	}
}

func (s *Server) HandleSearchByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.writeError(w, http.StatusBadRequest, "Invalid parameters", "Query parameter 'id' is required")
		return
	}

	record, err := s.service.SearchByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			s.writeError(w, http.StatusBadRequest, "Invalid ID", err.Error())
		case errors.Is(err, domain.ErrProductNotFound):
			s.writeError(w, http.StatusNotFound, "Product not found", fmt.Sprintf("No product with product_number %q", id))
		default:
			log.Errorf("Search by ID failed: %v", err)
			s.writeError(w, http.StatusInternalServerError, "Search operation failed", err.Error())
		}
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuery),
		errors.Is(err, search.ErrInvalidPage),
		errors.Is(err, search.ErrInvalidPageSize):
		s.writeError(w, http.StatusBadRequest, "Invalid parameters", err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		s.writeError(w, http.StatusNotFound, "Product not found", "No product found from the query ID")
	default:
		log.Errorf("Search failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "Search operation failed", err.Error())
	}
}

type searchParams struct {
	query    string
	page     int
	pageSize int
	criteria search.Criteria
}

// parseSearchParams validates the shared query parameters of both text
// search endpoints. Violations are reported as-is; nothing is clamped or
// corrected on the caller's behalf.
func (s *Server) parseSearchParams(r *http.Request) (*searchParams, error) {
	values := r.URL.Query()

	query := values.Get("query")
	if query == "" {
		return nil, fmt.Errorf("query parameter 'query' is required")
	}

	params := &searchParams{
		query:    query,
		page:     1,
		pageSize: s.cfg.Search.DefaultPageSize,
		criteria: search.Criteria{Category: values.Get("cat")},
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, fmt.Errorf("page must be a positive integer, got %q", raw)
		}
		params.page = page
	}

	if raw := values.Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 || pageSize > s.cfg.Search.MaxPageSize {
			return nil, fmt.Errorf("page_size must be between 1 and %d, got %q", s.cfg.Search.MaxPageSize, raw)
		}
		params.pageSize = pageSize
	}

	var err error
	if params.criteria.LoPrice, err = parsePriceParam(values.Get("lo_price"), "lo_price"); err != nil {
		return nil, err
	}
	if params.criteria.HiPrice, err = parsePriceParam(values.Get("hi_price"), "hi_price"); err != nil {
		return nil, err
	}

	return params, nil
}

func parsePriceParam(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%s must be a non-negative number, got %q", name, raw)
	}
	return &price, nil
}
