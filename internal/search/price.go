package search

import (
	"strconv"
	"strings"
)

// EffectivePrice derives the single price used for range filtering.
// The sale price wins when it parses to a value strictly greater than zero;
// otherwise the regular price is used when it parses to a value >= 0.
// The second return value reports whether any effective price exists —
// a product without one is not priced at zero, it has no price at all.
func EffectivePrice(salePrice, regularPrice string) (float64, bool) {
	if sale := strings.TrimSpace(salePrice); sale != "" {
		if v, err := strconv.ParseFloat(sale, 64); err == nil && v > 0 {
			return v, true
		}
	}

	if regular := strings.TrimSpace(regularPrice); regular != "" {
		if v, err := strconv.ParseFloat(regular, 64); err == nil && v >= 0 {
			return v, true
		}
	}

	return 0, false
}
