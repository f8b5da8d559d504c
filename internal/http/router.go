package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware)
	r.Use(RequestLogger)
	r.Use(RateLimitMiddleware)

	r.Get("/", handlers.IndexHandler)
	r.Get("/api/health", handlers.HealthHandler)
	// The product route matches its whole subtree; subpaths return the same
	// filtered listing as the bare path.
	r.Get("/api/products", handlers.FilterProductsHandler)
	r.Get("/api/products/*", handlers.FilterProductsHandler)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	return r
}

// Unmatched method+path pairs are not an error internally; 404 with the JSON
// envelope is the defined response, method mismatches included.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "path not found")
}
