package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// parseJSON decodes a request body into the target type, rejecting
// unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var target T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&target)
	return target, err
}

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}
