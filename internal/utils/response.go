package utils

import (
	"encoding/json"
	"net/http"
)

// Payload is the envelope for error responses.
type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSONResponse sends v as a JSON response with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError sends an error envelope with the given status and message.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{Success: false, Message: message})
}
