// Package valuation estimates residential property prices from a handful of
// structured attributes and serves the chart data that explains them.
//
// Usage:
//
//	eng := valuation.New(valuation.WithSource(valuation.NewSeededSource(42)))
//	res, err := eng.Estimate(valuation.PropertyDescriptor{
//	    City: valuation.Mumbai, Neighborhood: "Colaba",
//	    PropertyType: valuation.Apartment, SizeSqFt: 1000,
//	    Bedrooms: 2, Bathrooms: 2, AgeYears: 5,
//	    Furnishing: valuation.SemiFurnished,
//	})
//
// The package does no I/O. Unknown cities, neighborhoods and categories fall
// back to documented defaults; only malformed numbers are rejected, with
// *InvalidInputError.
package valuation
