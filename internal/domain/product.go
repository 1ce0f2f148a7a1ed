package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrProductNotFound is returned when a warehouse lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ProductRecord is an immutable snapshot of one catalog item as returned
// by the search backend or the warehouse. Identifiers are always non-empty;
// every other field may be an empty string but is never absent.
type ProductRecord struct {
	ID            string `json:"id"`
	RecordID      string `json:"record_id"`
	ProductNumber string `json:"product_number"`
	ProductName   string `json:"product_name"`
	ImageURI      string `json:"image_uri"`
	Description   string `json:"description"`
	ProductURI    string `json:"product_uri"`
	Category      string `json:"category"`
	Brands        string `json:"brands"`
	RegularPrice  string `json:"regular_price"`
	SalePrice     string `json:"sale_price"`
	IsAvailable   bool   `json:"is_available"`
}

// ProductFromPayload converts a loosely-typed backend payload into a
// ProductRecord. The mapping is total: absent or mistyped fields default to
// empty strings (false for availability) instead of failing.
func ProductFromPayload(id string, payload map[string]any) ProductRecord {
	return ProductRecord{
		ID:            id,
		RecordID:      stringField(payload, "record_id"),
		ProductNumber: stringField(payload, "product_number"),
		ProductName:   stringField(payload, "product_name"),
		ImageURI:      stringField(payload, "image_uri"),
		Description:   stringField(payload, "description"),
		ProductURI:    stringField(payload, "custom_uri"),
		Category:      stringField(payload, "category"),
		Brands:        stringField(payload, "brands"),
		RegularPrice:  stringField(payload, "regular_price"),
		SalePrice:     stringField(payload, "sale_price"),
		IsAvailable:   boolField(payload, "is_available"),
	}
}

func stringField(payload map[string]any, key string) string {
	value, ok := payload[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// boolField accepts the backend's numeric availability flag (1/0) as well
// as plain booleans.
func boolField(payload map[string]any, key string) bool {
	value, ok := payload[key]
	if !ok || value == nil {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v == 1
	case int:
		return v == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	default:
		return false
	}
}
