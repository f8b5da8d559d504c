package repo

// PriceRange filters products by price. A nil bound is open: nil Min means
// no lower bound, nil Max means no upper bound. Both bounds are inclusive.
type PriceRange struct {
	Min *float64
	Max *float64
}
