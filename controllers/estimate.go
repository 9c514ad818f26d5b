package controllers

import (
	"log"
	"net/http"

	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/valuation"
)

func EstimateProperty(engine *valuation.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		writeJSON(w, http.StatusOK, models.NewEstimateResponse(res))
	}
}

type compareRequest struct {
	Items []valuation.CompareItem `json:"items"`
}

const maxCompareItems = 10

func CompareProperties(engine *valuation.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := decodeBody(w, r, &req); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(req.Items) > maxCompareItems {
			log.Printf("Comparison of %d items rejected", len(req.Items))
			http.Error(w, "Too many items to compare", http.StatusBadRequest)
			return
		}

		cmp, err := engine.Compare(req.Items)
		if err != nil {
			writeEstimateError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Comparison ready",
			Data:    cmp,
		})
	}
}
