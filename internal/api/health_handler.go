package api

import (
	"database/sql"
	"net/http"
	"time"
)

// HealthCheck reports service and database health.
func HealthCheck(database *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := database.Ping(); err != nil {
			status = "database unreachable"
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]string{
			"status": status,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Index lists the API surface for anyone poking at the root URL.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name": "beauty salon booking API",
		"endpoints": map[string]string{
			"auth":         "/api/auth",
			"services":     "/api/services",
			"appointments": "/api/appointments",
			"availability": "/api/availability",
			"blocked":      "/api/blocked-dates",
			"ai":           "/api/ai",
			"health":       "/api/health",
		},
	})
}
