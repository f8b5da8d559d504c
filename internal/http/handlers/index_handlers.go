package handlers

import "net/http"

// IndexHandler godoc
// @Summary Welcome index
// @Description Lists the endpoints exposed by the catalog API
// @Tags index
// @Produce json
// @Success 200 {object} IndexResult
// @Router / [get]
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	resp := IndexResult{
		Message: "Welcome to the Product Catalog API",
		Endpoints: Endpoints{
			Health:   "/api/health",
			Products: "/api/products",
		},
	}
	writeJSON(w, http.StatusOK, resp)
}
