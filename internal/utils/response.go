package utils

import (
	"encoding/json"
	"net/http"
)

// Payload is the envelope every JSON response uses. Only the fields a
// given route fills in are emitted.
type Payload struct {
	Error       bool   `json:"error"`
	Message     string `json:"message"`
	User        any    `json:"user,omitempty"`
	Story       any    `json:"story,omitempty"`
	Stories     any    `json:"stories,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// JSONResponse sends a JSON response with given status and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ErrorResponse is shorthand for an error-flagged payload.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{Error: true, Message: message})
}
