package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dcode-github/property_valuation/valuation"
)

func GetCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.Cities())
	}
}

// GetNeighborhoods lists the neighborhoods of {city}. Unknown cities get the
// default city's list, matching how estimates resolve them.
func GetNeighborhoods() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := valuation.City(mux.Vars(r)["city"])
		writeJSON(w, http.StatusOK, valuation.Neighborhoods(city))
	}
}

func GetPropertyTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.PropertyTypes())
	}
}

func GetFurnishingOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.FurnishingOptions())
	}
}

func GetAmenities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, valuation.AmenityCatalog())
	}
}
