package models

import "github.com/dcode-github/property_valuation/valuation"

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// EstimateResponse is the estimate plus its display strings.
type EstimateResponse struct {
	Price           int64               `json:"price"`
	Confidence      float64             `json:"confidence"`
	FormattedPrice  string              `json:"formattedPrice"`
	ConfidenceLabel string              `json:"confidenceLabel"`
	Breakdown       valuation.Breakdown `json:"breakdown"`
}

func NewEstimateResponse(res valuation.ValuationResult) EstimateResponse {
	return EstimateResponse{
		Price:           res.Price,
		Confidence:      res.Confidence,
		FormattedPrice:  valuation.FormatPrice(res.Price),
		ConfidenceLabel: valuation.ConfidenceLabel(res.Confidence),
		Breakdown:       res.Breakdown,
	}
}
