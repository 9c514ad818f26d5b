package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/valuation"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

const maxBodyBytes = 1 << 20

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeEstimateError answers 400 naming the bad field for invalid input and
// 500 for anything else.
func writeEstimateError(w http.ResponseWriter, err error) {
	var ie *valuation.InvalidInputError
	if errors.As(err, &ie) {
		log.Printf("Rejected descriptor: %v", err)
		writeJSON(w, http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: err.Error(),
			Data:    map[string]string{"field": ie.Field},
		})
		return
	}
	log.Printf("Estimate failed: %v", err)
	http.Error(w, "Estimate failed", http.StatusInternalServerError)
}

func userIDFrom(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
