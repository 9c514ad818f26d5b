package controllers

import (
	"net/http"

	"github.com/dcode-github/property_valuation/valuation"
)

// GetLocationFactors ranks the neighborhoods of ?city= (default Mumbai).
func GetLocationFactors(engine *valuation.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := valuation.City(r.URL.Query().Get("city"))
		if city == "" {
			city = valuation.DefaultCity
		}
		if parsed, ok := valuation.ParseCity(string(city)); ok {
			city = parsed
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"city":      city,
			"locations": engine.RankedLocationFactors(city),
		})
	}
}

func GetPriceTrends() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.PriceTrend())
	}
}

func GetFeatureImportance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.FeatureImportance())
	}
}
