package repo

import "github.com/rogerio-castellano/product-catalog/internal/models"

// ProductRepository defines the interface for catalog reads.
type ProductRepository interface {
	// Filter returns the products whose price falls within pr, preserving
	// catalog order, together with the total catalog size.
	Filter(pr PriceRange) ([]models.Product, int, error)
}
