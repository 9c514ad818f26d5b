package valuation

import (
	"math"
	"math/rand/v2"
	"sync"
)

// ============================================================================
// VALUATION ENGINE
// ============================================================================
// Price = base rate x location multiplier x a chain of named factors, with
// two independent noise draws on top. Every factor below is exported so it
// can be checked on its own.
// ============================================================================

// PropertyDescriptor is the input to Estimate. JSON names follow the form
// fields of the web client.
type PropertyDescriptor struct {
	City         City         `json:"city" bson:"city"`
	Neighborhood string       `json:"neighborhood" bson:"neighborhood"`
	PropertyType PropertyType `json:"propertyType" bson:"propertyType"`
	SizeSqFt     float64      `json:"size" bson:"size"`
	Bedrooms     int          `json:"bedrooms" bson:"bedrooms"`
	Bathrooms    int          `json:"bathrooms" bson:"bathrooms"`
	AgeYears     float64      `json:"age" bson:"age"`
	Furnishing   Furnishing   `json:"furnishing" bson:"furnishing"`
	Amenities    []Amenity    `json:"amenities" bson:"amenities"`
}

// Breakdown exposes every intermediate term of an estimate.
type Breakdown struct {
	BaseRate           float64 `json:"baseRate" bson:"baseRate"`
	LocationMultiplier float64 `json:"locationMultiplier" bson:"locationMultiplier"`
	BasePrice          float64 `json:"basePrice" bson:"basePrice"`
	SizeFactor         float64 `json:"sizeFactor" bson:"sizeFactor"`
	BedroomsFactor     float64 `json:"bedroomsFactor" bson:"bedroomsFactor"`
	BathroomsFactor    float64 `json:"bathroomsFactor" bson:"bathroomsFactor"`
	PropertyTypeFactor float64 `json:"propertyTypeFactor" bson:"propertyTypeFactor"`
	FurnishingFactor   float64 `json:"furnishingFactor" bson:"furnishingFactor"`
	AgeFactor          float64 `json:"ageFactor" bson:"ageFactor"`
	AmenitiesCount     int     `json:"amenitiesCount" bson:"amenitiesCount"`
	AmenitiesFactor    float64 `json:"amenitiesFactor" bson:"amenitiesFactor"`
	PricePerSqFt       float64 `json:"pricePerSqFt" bson:"pricePerSqFt"`
	RawPrice           float64 `json:"rawPrice" bson:"rawPrice"`
	MarketVariance     float64 `json:"marketVariance" bson:"marketVariance"`
	ModelNoise         float64 `json:"modelNoise" bson:"modelNoise"`
}

// ValuationResult is the output of Estimate. Price is a multiple of one lakh
// and Confidence lies in [MinConfidence, MaxConfidence].
type ValuationResult struct {
	Price      int64     `json:"price" bson:"price"`
	Confidence float64   `json:"confidence" bson:"confidence"`
	Breakdown  Breakdown `json:"breakdown" bson:"breakdown"`
}

const (
	Lakh  = 100_000
	Crore = 10_000_000

	// MaxPrice is the largest lakh multiple an int64 holds.
	MaxPrice = math.MaxInt64 / Lakh * Lakh

	BaseConfidence = 0.85
	MinConfidence  = 0.75
	MaxConfidence  = 0.95
)

// Source supplies uniform draws in [0, 1). *rand.Rand satisfies it but is not
// safe for concurrent use; see NewSeededSource.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewSeededSource returns a reproducible Source that may be shared between
// goroutines.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Engine computes valuations and analytics from the reference tables and an
// entropy source.
type Engine struct {
	src Source
}

type Option func(*Engine)

// WithSource injects the entropy source used for every random draw.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{src: globalSource{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Estimate values d with the process-wide random source.
func Estimate(d PropertyDescriptor) (ValuationResult, error) {
	return defaultEngine.Estimate(d)
}

// Estimate values d. The only error is *InvalidInputError. Draws are taken
// in a fixed order: market variance, model noise, confidence jitter.
func (e *Engine) Estimate(d PropertyDescriptor) (ValuationResult, error) {
	if err := Validate(d); err != nil {
		return ValuationResult{}, err
	}

	b := Breakdown{
		BaseRate:           BaseRate(d.City),
		LocationMultiplier: LocationMultiplier(d.City, d.Neighborhood),
		SizeFactor:         SizeFactor(d.SizeSqFt),
		BedroomsFactor:     BedroomsFactor(d.Bedrooms),
		BathroomsFactor:    BathroomsFactor(d.Bathrooms),
		PropertyTypeFactor: PropertyTypeFactor(d.PropertyType),
		FurnishingFactor:   FurnishingFactor(d.Furnishing),
		AgeFactor:          AgeFactor(d.AgeYears),
		AmenitiesCount:     CountAmenities(d.Amenities),
	}
	b.BasePrice = b.BaseRate * b.LocationMultiplier
	b.AmenitiesFactor = AmenitiesFactor(b.AmenitiesCount)

	// sizeFactor is reported but the rate is applied to the full area.
	b.PricePerSqFt = b.BasePrice * b.PropertyTypeFactor * b.AgeFactor * b.FurnishingFactor * b.AmenitiesFactor
	b.RawPrice = b.PricePerSqFt * d.SizeSqFt * b.BedroomsFactor * b.BathroomsFactor

	b.MarketVariance = 0.95 + e.src.Float64()*0.10
	b.ModelNoise = 0.98 + e.src.Float64()*0.04
	price := RoundToLakh(b.RawPrice * b.MarketVariance * b.ModelNoise)

	jitter := e.src.Float64()*0.04 - 0.02
	return ValuationResult{
		Price:      price,
		Confidence: Confidence(d, b.AmenitiesCount, jitter),
		Breakdown:  b,
	}, nil
}

// SizeFactor models diminishing returns on area as (size/1000)^0.9.
func SizeFactor(sizeSqFt float64) float64 {
	return math.Pow(sizeSqFt/1000, 0.9)
}

// BedroomsFactor adds 7% per bedroom, capped at +25%.
func BedroomsFactor(bedrooms int) float64 {
	return math.Min(1.25, 1+float64(bedrooms)*0.07)
}

// BathroomsFactor adds 4% per bathroom, capped at +15%.
func BathroomsFactor(bathrooms int) float64 {
	return math.Min(1.15, 1+float64(bathrooms)*0.04)
}

func PropertyTypeFactor(t PropertyType) float64 {
	if e, ok := propertyTypeIndex[foldKey(string(t))]; ok {
		return e.factor
	}
	return DefaultPropertyTypeFactor
}

func FurnishingFactor(f Furnishing) float64 {
	if e, ok := furnishingIndex[foldKey(string(f))]; ok {
		return e.factor
	}
	return DefaultFurnishingFactor
}

// AgeFactor depreciates 1.5% per year, compounding, never below 0.75.
func AgeFactor(ageYears float64) float64 {
	return math.Max(0.75, math.Exp(-0.015*ageYears))
}

// CountAmenities counts distinct non-blank amenity names, ignoring case.
func CountAmenities(amenities []Amenity) int {
	seen := make(map[string]struct{}, len(amenities))
	for _, a := range amenities {
		key := foldKey(string(a))
		if key == "" {
			continue
		}
		seen[key] = struct{}{}
	}
	return len(seen)
}

// AmenitiesFactor is +2% for the first amenity and +1% for each further one.
func AmenitiesFactor(count int) float64 {
	if count <= 0 {
		return 1
	}
	return 1 + 0.02 + float64(count-1)*0.01
}

// RoundToLakh rounds to the nearest 100,000, half away from zero. The result
// is clamped to [0, MaxPrice]; NaN maps to 0.
func RoundToLakh(price float64) int64 {
	lakhs := math.Round(price / Lakh)
	switch {
	case math.IsNaN(lakhs) || lakhs <= 0:
		return 0
	case lakhs >= MaxPrice/Lakh:
		return MaxPrice
	}
	return int64(lakhs) * Lakh
}

// Confidence applies the shape penalties and bonus to BaseConfidence, adds
// jitter and clamps the result.
func Confidence(d PropertyDescriptor, amenitiesCount int, jitter float64) float64 {
	c := BaseConfidence
	if d.Bedrooms > 4 {
		c -= 0.02
	}
	if d.Bathrooms > d.Bedrooms+1 {
		c -= 0.03
	}
	if d.SizeSqFt > 3000 {
		c -= 0.02
	}
	if d.AgeYears > 20 {
		c -= 0.02
	}
	if amenitiesCount > 5 {
		c += 0.02
	}
	return math.Min(MaxConfidence, math.Max(MinConfidence, c+jitter))
}
