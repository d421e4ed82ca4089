// Package httpjson holds the JSON response helpers shared by the API
// handlers. Error payloads use a single "detail" field, matching what the
// browser frontend expects.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON shape for every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// Write encodes v as JSON with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error response with the given status and detail.
func Error(w http.ResponseWriter, status int, detail string) {
	Write(w, status, errorBody{Detail: detail})
}

// NotFound writes a 404 with the given detail message.
func NotFound(w http.ResponseWriter, detail string) {
	Error(w, http.StatusNotFound, detail)
}

// BadRequest writes a 400 with the given detail message.
func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

// ServerError writes a generic 500. The underlying error is logged at the
// call site, never echoed to the caller.
func ServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
