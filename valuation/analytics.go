package valuation

import "sort"

// ============================================================================
// ANALYTICS: chart data, off the valuation path
// ============================================================================

// LocationFactor is one bar of the location ranking chart.
type LocationFactor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TrendSeries is a single yearly series. Labels are strictly increasing years.
type TrendSeries struct {
	Name   string    `json:"name"`
	Labels []int     `json:"labels"`
	Values []float64 `json:"values"`
}

// FeatureWeight is the share of a feature in the price, summing to 1 overall.
type FeatureWeight struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// RankedLocationFactors values every neighborhood of city at its per sq ft
// rate with +-7% display noise, highest first. Results are never cached, so
// repeated calls differ in value but not in ordering contract.
func RankedLocationFactors(city City) []LocationFactor {
	return defaultEngine.RankedLocationFactors(city)
}

func (e *Engine) RankedLocationFactors(city City) []LocationFactor {
	rate := BaseRate(city)
	names := Neighborhoods(city)

	out := make([]LocationFactor, 0, len(names))
	for _, name := range names {
		noise := 0.93 + e.src.Float64()*0.14
		out = append(out, LocationFactor{
			Name:  name,
			Value: rate * LocationMultiplier(city, name) * noise,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

const trendSeriesName = "Average Price (₹/sq ft)"

var (
	trendStartYear = 2018
	// 2020 dips with COVID, then recovers.
	trendValues = []float64{20000, 21400, 20500, 22300, 24200, 26400}
)

// PriceTrend returns the historical average rate series.
func PriceTrend() TrendSeries {
	s := TrendSeries{
		Name:   trendSeriesName,
		Labels: make([]int, len(trendValues)),
		Values: append([]float64(nil), trendValues...),
	}
	for i := range trendValues {
		s.Labels[i] = trendStartYear + i
	}
	return s
}

var featureWeights = []FeatureWeight{
	{"Location", 0.42},
	{"Size", 0.22},
	{"Property Type", 0.12},
	{"Age", 0.08},
	{"Bedrooms", 0.06},
	{"Furnishing", 0.05},
	{"Amenities", 0.03},
	{"Bathrooms", 0.02},
}

// FeatureImportance returns the fixed feature weights, heaviest first.
func FeatureImportance() []FeatureWeight {
	return append([]FeatureWeight(nil), featureWeights...)
}
