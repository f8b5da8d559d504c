package handlers

import (
	"encoding/json"
	"math"
)

type ProductResponse struct {
	Id    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Endpoints struct {
	Health   string `json:"health"`
	Products string `json:"products"`
}

type IndexResult struct {
	Message   string    `json:"message"`
	Endpoints Endpoints `json:"endpoints"`
}

type HealthResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// PriceBound is a price boundary that may be unbounded. JSON has no Infinity,
// so a non-finite bound serializes as null.
type PriceBound float64

func (b PriceBound) MarshalJSON() ([]byte, error) {
	f := float64(b)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (b *PriceBound) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = PriceBound(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*b = PriceBound(f)
	return nil
}

type ProductsFilterResult struct {
	Min             PriceBound        `json:"min"`
	Max             PriceBound        `json:"max"`
	TotalProducts   int               `json:"totalProducts"`
	MatchedCount    int               `json:"matchedCount"`
	MatchedProducts []ProductResponse `json:"matchedProducts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
