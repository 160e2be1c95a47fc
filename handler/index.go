package handler

import (
	"encoding/json"
	"net/http"
)

// Handler is a bare liveness endpoint for platforms that probe the
// function without routing through the Gin engine.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "trendkart-api",
		"path":    r.URL.Path,
	})
}
