package valuation

import "fmt"

// FormatPrice renders price in the Indian style: "₹1.25 Cr" from one crore
// upwards, "₹85 Lakhs" below it.
func FormatPrice(price int64) string {
	crores := price / Crore
	lakhs := (price % Crore) / Lakh

	if crores > 0 {
		return fmt.Sprintf("₹%d.%02d Cr", crores, lakhs)
	}
	return fmt.Sprintf("₹%d Lakhs", lakhs)
}

// ConfidenceLabel buckets a confidence score for display.
func ConfidenceLabel(confidence float64) string {
	switch {
	case confidence > 0.9:
		return "Very High"
	case confidence > 0.8:
		return "High"
	case confidence > 0.7:
		return "Good"
	case confidence > 0.6:
		return "Moderate"
	default:
		return "Low"
	}
}
