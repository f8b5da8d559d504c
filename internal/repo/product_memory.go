package repo

import "github.com/rogerio-castellano/product-catalog/internal/models"

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. The catalog is fixed at construction time and never
// mutated, so concurrent reads need no locking.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository returns a repository seeded with the catalog.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{
			{ID: 1, Name: "Wireless Headphones", Price: 12900},
			{ID: 2, Name: "4K Action Camera", Price: 24900},
			{ID: 3, Name: "Smart Watch", Price: 15900},
			{ID: 4, Name: "Bluetooth Speaker", Price: 2990},
			{ID: 5, Name: "Gaming Mouse", Price: 6990},
			{ID: 6, Name: "Mechanical Keyboard", Price: 12990},
		},
	}
}

func matchesRange(p models.Product, pr PriceRange) bool {
	if pr.Min != nil && p.Price < *pr.Min {
		return false
	}
	if pr.Max != nil && p.Price > *pr.Max {
		return false
	}
	return true
}

// Filter returns the products whose price lies within pr, in catalog order,
// along with the total catalog size.
func (r *InMemoryProductRepository) Filter(pr PriceRange) ([]models.Product, int, error) {
	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesRange(p, pr) {
			filtered = append(filtered, p)
		}
	}
	return filtered, len(r.products), nil
}

// Len reports the number of products in the catalog.
func (r *InMemoryProductRepository) Len() int {
	return len(r.products)
}
