package domain

// OutputShape selects the response format produced by the search pipeline.
type OutputShape string

func (s OutputShape) String() string {
	return string(s)
}

const (
	// ShapeGeneral is the pass-through API format.
	ShapeGeneral OutputShape = "general"
	// ShapeStorefront is the WooCommerce Flatsome theme suggestion format.
	ShapeStorefront OutputShape = "storefront"
)
