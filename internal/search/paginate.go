package search

import "shopchannel/search/internal/domain"

// Page is one slice of the filtered result set plus pagination metadata
// computed over the full set of survivors.
type Page struct {
	Records      []domain.ProductRecord
	TotalResults int
	PageNumber   int
	PageSize     int
	TotalPages   int
}

// Paginate slices an ordered survivor sequence into the requested 1-based
// page. Requesting a page past the end yields an empty slice while the
// metadata still reflects the full filtered set. TotalPages is never below
// one, even for zero survivors. The caller has already validated page and
// pageSize bounds.
func Paginate(survivors []domain.ProductRecord, page, pageSize int) Page {
	totalResults := len(survivors)

	totalPages := (totalResults + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	offset := (page - 1) * pageSize
	records := []domain.ProductRecord{}
	if offset < totalResults {
		end := offset + pageSize
		if end > totalResults {
			end = totalResults
		}
		records = survivors[offset:end]
	}

	return Page{
		Records:      records,
		TotalResults: totalResults,
		PageNumber:   page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}
