package handlers

import (
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Router /api/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResult{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, resp)
}
