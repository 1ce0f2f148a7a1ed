package search

import (
	"errors"
	"fmt"

	"shopchannel/search/internal/domain"
)

var (
	// ErrInvalidPage is returned for page numbers below one.
	ErrInvalidPage = errors.New("page must be at least 1")
	// ErrInvalidPageSize is returned for page sizes outside the configured bounds.
	ErrInvalidPageSize = errors.New("page size out of bounds")
)

// Result is the final pipeline payload. Exactly one of Records or
// Suggestions is populated, selected by Shape.
type Result struct {
	Shape        domain.OutputShape
	Records      []domain.ProductRecord
	Suggestions  []StorefrontSuggestion
	TotalResults int
	PageNumber   int
	PageSize     int
	TotalPages   int
}

// Pipeline shapes raw backend hits into a response page:
// filter -> paginate -> format. It is stateless and safe for concurrent
// use; every invocation works only on its own request-scoped data.
type Pipeline struct {
	maxPageSize int
}

// NewPipeline creates a pipeline with an explicit page-size ceiling so the
// core never consults ambient configuration.
func NewPipeline(maxPageSize int) *Pipeline {
	return &Pipeline{
		maxPageSize: maxPageSize,
	}
}

// Run drives the sequential stages over one hit list. Pagination parameter
// violations surface as input errors; the pipeline never corrects them.
func (p *Pipeline) Run(hits []domain.ProductRecord, criteria Criteria, page, pageSize int, shape domain.OutputShape) (*Result, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if pageSize < 1 || pageSize > p.maxPageSize {
		return nil, fmt.Errorf("%w: got %d, allowed 1..%d", ErrInvalidPageSize, pageSize, p.maxPageSize)
	}

	survivors := FilterResults(hits, criteria)
	paged := Paginate(survivors, page, pageSize)

	result := &Result{
		Shape:        shape,
		TotalResults: paged.TotalResults,
		PageNumber:   paged.PageNumber,
		PageSize:     paged.PageSize,
		TotalPages:   paged.TotalPages,
	}

	switch shape {
	case domain.ShapeStorefront:
		result.Suggestions = make([]StorefrontSuggestion, 0, len(paged.Records))
		for _, record := range paged.Records {
			result.Suggestions = append(result.Suggestions, FormatStorefront(record))
		}
	default:
		result.Records = make([]domain.ProductRecord, 0, len(paged.Records))
		for _, record := range paged.Records {
			result.Records = append(result.Records, FormatGeneral(record))
		}
	}

	return result, nil
}
