package routes

import (
	"github.com/gorilla/mux"

	"github.com/dcode-github/property_valuation/cache"
	"github.com/dcode-github/property_valuation/controllers"
	"github.com/dcode-github/property_valuation/middleware"
	"github.com/dcode-github/property_valuation/storage"
	"github.com/dcode-github/property_valuation/valuation"
)

func Routes(router *mux.Router, engine *valuation.Engine, store storage.ValuationStore, listCache cache.ListCache) {
	// Valuation
	router.HandleFunc("/estimate", controllers.EstimateProperty(engine)).Methods("POST")
	router.HandleFunc("/compare", controllers.CompareProperties(engine)).Methods("POST")

	// Analytics
	router.HandleFunc("/analytics/locations", controllers.GetLocationFactors(engine)).Methods("GET")
	router.HandleFunc("/analytics/trends", controllers.GetPriceTrends()).Methods("GET")
	router.HandleFunc("/analytics/importance", controllers.GetFeatureImportance()).Methods("GET")

	// Form options
	router.HandleFunc("/options/cities", controllers.GetCities()).Methods("GET")
	router.HandleFunc("/options/cities/{city}/neighborhoods", controllers.GetNeighborhoods()).Methods("GET")
	router.HandleFunc("/options/property-types", controllers.GetPropertyTypes()).Methods("GET")
	router.HandleFunc("/options/furnishing", controllers.GetFurnishingOptions()).Methods("GET")
	router.HandleFunc("/options/amenities", controllers.GetAmenities()).Methods("GET")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	// Saved valuations
	authenticated.HandleFunc("/valuations", controllers.CreateValuation(engine, store, listCache)).Methods("POST")
	authenticated.HandleFunc("/valuations", controllers.GetValuations(store, listCache)).Methods("GET")
	authenticated.HandleFunc("/valuations/{id}", controllers.GetValuation(store)).Methods("GET")
	authenticated.HandleFunc("/valuations/{id}", controllers.DeleteValuation(store, listCache)).Methods("DELETE")
}
