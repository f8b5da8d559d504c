package handlers

import (
	"math"
	"net/http"
	"strconv"

	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

// FilterProductsHandler godoc
// @Summary List products within a price range
// @Description Returns every catalog product whose price lies in the closed interval [min, max]. Missing or non-numeric bounds default to 0 and unbounded.
// @Tags products
// @Produce json
// @Param min query number false "Minimum price"
// @Param max query number false "Maximum price"
// @Success 200 {object} ProductsFilterResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pr := repo.PriceRange{
		Min: parseFloatPtr(q.Get("min")),
		Max: parseFloatPtr(q.Get("max")),
	}

	products, total, err := productRepo.Filter(pr)
	if err != nil {
		logger.Error("could not filter products", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, "could not filter products")
		return
	}

	// Echo the bounds actually applied: an absent or unparsable min is 0,
	// an absent or unparsable max is unbounded.
	min := 0.0
	if pr.Min != nil {
		min = *pr.Min
	}
	max := math.Inf(1)
	if pr.Max != nil {
		max = *pr.Max
	}

	resp := ProductsFilterResult{
		Min:             PriceBound(min),
		Max:             PriceBound(max),
		TotalProducts:   total,
		MatchedCount:    len(products),
		MatchedProducts: make([]ProductResponse, len(products)),
	}
	for i, p := range products {
		resp.MatchedProducts[i] = ProductResponse{
			Id:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
