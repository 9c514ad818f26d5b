package valuation

import (
	"fmt"
	"math"
)

// InvalidInputError reports a malformed descriptor. It is returned before any
// part of the formula runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Upper bounds on descriptor inputs. At these limits the highest possible
// raw price stays below 1e13, far inside int64.
const (
	MaxSizeSqFt  = 10_000_000
	MaxAmenities = 100
)

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Validate checks the numeric fields of d and the length of its amenity
// list. Categorical values are never rejected; unknown ones fall back to
// default factors.
func Validate(d PropertyDescriptor) error {
	switch {
	case math.IsNaN(d.SizeSqFt) || math.IsInf(d.SizeSqFt, 0):
		return invalid("size", "must be a finite number")
	case d.SizeSqFt <= 0:
		return invalid("size", "must be positive")
	case d.SizeSqFt > MaxSizeSqFt:
		return invalid("size", fmt.Sprintf("must not exceed %d sq ft", MaxSizeSqFt))
	case d.Bedrooms < 0:
		return invalid("bedrooms", "must not be negative")
	case d.Bathrooms < 0:
		return invalid("bathrooms", "must not be negative")
	case math.IsNaN(d.AgeYears) || math.IsInf(d.AgeYears, 0):
		return invalid("age", "must be a finite number")
	case d.AgeYears < 0:
		return invalid("age", "must not be negative")
	case len(d.Amenities) > MaxAmenities:
		return invalid("amenities", fmt.Sprintf("must list at most %d entries", MaxAmenities))
	}
	return nil
}
