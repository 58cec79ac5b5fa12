package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kanishkdw/mita/internal/model"
)

// Health returns service health status.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NewHealthStatus())
}

// Hello returns the greeting.
func Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NewGreeting())
}

// writeJSON marshals v before any header is written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
