package middleware

import (
	"encoding/json"
	"net/http"
)

type errorResp struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RespondError writes a JSON error response.
func RespondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var resp errorResp
	resp.Error.Code = code
	resp.Error.Message = message
	resp.RequestID = RequestIDFromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// NotFound is a JSON replacement for the router's plain-text 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
}

// MethodNotAllowed is a JSON replacement for the router's plain-text 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed on "+r.URL.Path)
}
