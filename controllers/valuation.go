package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dcode-github/property_valuation/cache"
	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/storage"
	"github.com/dcode-github/property_valuation/valuation"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateValuation estimates the posted descriptor and saves the pair for the
// caller.
func CreateValuation(engine *valuation.Engine, store storage.ValuationStore, listCache cache.ListCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		var descriptor valuation.PropertyDescriptor
		if err := decodeBody(w, r, &descriptor); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		res, err := engine.Estimate(descriptor)
		if err != nil {
			writeEstimateError(w, err)
			return
		}

		saved := &models.SavedValuation{
			ID:         uuid.NewString(),
			Owner:      userID,
			Descriptor: descriptor,
			Result:     res,
			CreatedAt:  time.Now().UTC(),
		}
		if err := store.Save(r.Context(), saved); err != nil {
			log.Printf("Save failed for user %s: %v", userID, err)
			http.Error(w, "Failed to save valuation", http.StatusInternalServerError)
			return
		}

		listCache.Invalidate(r.Context(), userID)

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Valuation saved",
			Data:    saved,
		})
	}
}

func GetValuations(store storage.ValuationStore, listCache cache.ListCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			log.Println("User ID missing in context for GetValuations")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			log.Printf("Invalid limit %q: %v", r.URL.Query().Get("limit"), err)
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}

		valuations, err := listCache.List(r.Context(), userID, limit, func(ctx context.Context) ([]models.SavedValuation, error) {
			return store.List(ctx, userID, limit)
		})
		if err != nil {
			log.Printf("Error fetching valuations for user %s: %v", userID, err)
			http.Error(w, "Error fetching valuations", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched saved valuations",
			Data:    valuations,
		})
	}
}

func GetValuation(store storage.ValuationStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		id, ok := valuationID(w, r)
		if !ok {
			return
		}

		v, err := store.Get(r.Context(), userID, id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Valuation not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error fetching valuation %s: %v", id, err)
			http.Error(w, "Error fetching valuation", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Fetched valuation",
			Data:    v,
		})
	}
}

func DeleteValuation(store storage.ValuationStore, listCache cache.ListCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		id, ok := valuationID(w, r)
		if !ok {
			return
		}

		deleted, err := store.Delete(r.Context(), userID, id)
		if err != nil {
			log.Printf("Delete failed for valuation %s: %v", id, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}
		if !deleted {
			log.Printf("No valuation found with ID %s for user %s", id, userID)
			http.Error(w, "Valuation not found", http.StatusNotFound)
			return
		}

		listCache.Invalidate(r.Context(), userID)

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Valuation deleted",
		})
	}
}

func valuationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		log.Printf("Invalid valuation ID %s: %v", raw, err)
		http.Error(w, "Invalid valuation ID", http.StatusBadRequest)
		return "", false
	}
	return id.String(), true
}

func parseLimit(raw string) (int64, error) {
	if raw == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("limit must be positive")
	}
	if n > maxListLimit {
		n = maxListLimit
	}
	return n, nil
}
