package repo

import "testing"

func fptr(v float64) *float64 { return &v }

func TestFilter(t *testing.T) {
	r := NewInMemoryProductRepository()

	tests := []struct {
		name    string
		pr      PriceRange
		wantIds []int
	}{
		{name: "open range returns everything", pr: PriceRange{}, wantIds: []int{1, 2, 3, 4, 5, 6}},
		{name: "closed interval", pr: PriceRange{Min: fptr(5000), Max: fptr(20000)}, wantIds: []int{1, 3, 5, 6}},
		{name: "lower bound only", pr: PriceRange{Min: fptr(13000)}, wantIds: []int{2, 3}},
		{name: "upper bound only", pr: PriceRange{Max: fptr(5000)}, wantIds: []int{4}},
		{name: "bounds are inclusive", pr: PriceRange{Min: fptr(6990), Max: fptr(6990)}, wantIds: []int{5}},
		{name: "inverted range matches nothing", pr: PriceRange{Min: fptr(20000), Max: fptr(5000)}, wantIds: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, total, err := r.Filter(tt.pr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != r.Len() {
				t.Errorf("expected total %d, got %d", r.Len(), total)
			}
			if len(products) != len(tt.wantIds) {
				t.Fatalf("expected %d products, got %d", len(tt.wantIds), len(products))
			}
			for i, p := range products {
				if p.ID != tt.wantIds[i] {
					t.Errorf("position %d: expected id %d, got %d", i, tt.wantIds[i], p.ID)
				}
			}
		})
	}
}

func TestCatalogSeed(t *testing.T) {
	r := NewInMemoryProductRepository()

	if r.Len() != 6 {
		t.Fatalf("expected 6 seeded products, got %d", r.Len())
	}

	products, _, _ := r.Filter(PriceRange{})
	for _, p := range products {
		if p.ID <= 0 {
			t.Errorf("product %q: expected positive id, got %d", p.Name, p.ID)
		}
		if p.Name == "" {
			t.Errorf("product %d: expected a name", p.ID)
		}
		if p.Price < 0 {
			t.Errorf("product %d: expected non-negative price, got %v", p.ID, p.Price)
		}
	}
}
