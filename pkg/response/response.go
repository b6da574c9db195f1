// Package response writes the API's JSON wire shapes.
//
// The public API is deliberately not enveloped: successes are handler-shaped
// objects ({"cookies": [...]}, {"success": true, ...}) and failures are a
// bare {"error": "..."} pair, matching what the storefront client renders
// verbatim in its notice banner.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status and a JSON content type.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// OK writes v with a 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}
