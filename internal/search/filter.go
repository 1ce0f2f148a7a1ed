package search

import (
	log "github.com/sirupsen/logrus"

	"shopchannel/search/internal/domain"
)

// Criteria describes the optional category and price-range filters applied
// to a raw hit list. Nil price bounds mean the bound is not requested.
type Criteria struct {
	Category string
	LoPrice  *float64
	HiPrice  *float64
}

func (c Criteria) hasPriceBound() bool {
	return c.LoPrice != nil || c.HiPrice != nil
}

// FilterResults reduces raw hits to the records satisfying the criteria.
// Survivors keep their original relative order; no deduplication happens.
func FilterResults(hits []domain.ProductRecord, criteria Criteria) []domain.ProductRecord {
	survivors := make([]domain.ProductRecord, 0, len(hits))

	for _, hit := range hits {
		if !MatchesCategory(hit.Category, criteria.Category) {
			continue
		}
		if !matchesPriceRange(hit, criteria) {
			continue
		}

		survivors = append(survivors, hit)
	}

	log.Debugf("Filter matched %d out of %d results (category=%q)",
		len(survivors), len(hits), criteria.Category)

	return survivors
}

func matchesPriceRange(record domain.ProductRecord, criteria Criteria) bool {
	if !criteria.hasPriceBound() {
		return true
	}

	price, ok := EffectivePrice(record.SalePrice, record.RegularPrice)
	if !ok {
		// A product with no effective price fails any requested bound.
		return false
	}

	if criteria.LoPrice != nil && price < *criteria.LoPrice {
		return false
	}
	if criteria.HiPrice != nil && price > *criteria.HiPrice {
		return false
	}

	return true
}
