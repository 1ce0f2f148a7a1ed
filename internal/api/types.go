package api

import (
	"shopchannel/search/internal/domain"
	"shopchannel/search/internal/search"
)

// SearchResponse is the general-shape payload: normalized product records
// plus pagination metadata computed over the filtered set.
type SearchResponse struct {
	Query        string                 `json:"query"`
	Results      []domain.ProductRecord `json:"results"`
	TotalResults int                    `json:"total_results"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
}

// StorefrontResponse is the Flatsome-theme payload. Structure matches
// SearchResponse except the record list is named "suggestions".
type StorefrontResponse struct {
	Suggestions  []search.StorefrontSuggestion `json:"suggestions"`
	TotalResults int                           `json:"total_results"`
	Page         int                           `json:"page"`
	PageSize     int                           `json:"page_size"`
	TotalPages   int                           `json:"total_pages"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
