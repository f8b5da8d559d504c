package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/product-catalog/internal/http"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func TestRouter_UnknownPath(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/unknown/path"},
		{name: "post on products", method: http.MethodPost, target: "/api/products"},
		{name: "delete on index", method: http.MethodDelete, target: "/"},
		{name: "run-on products segment", method: http.MethodGet, target: "/api/productsxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.target)

			if w.Code != http.StatusNotFound {
				t.Fatalf("expected 404 Not Found, got %d", w.Code)
			}

			var resp handler.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Error == "" {
				t.Error("expected a non-empty error message")
			}
		})
	}
}

func TestRouter_NotFoundHeaders(t *testing.T) {
	r := api.NewRouter()

	w := doGet(r, "/unknown/path")

	if got := w.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("expected JSON content type with charset, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS header, got %q", got)
	}
}
