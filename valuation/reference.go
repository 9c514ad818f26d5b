package valuation

import (
	"strings"

	"golang.org/x/text/cases"
)

// ============================================================================
// REFERENCE DATA: city base rates and neighborhood multipliers
// ============================================================================
// Tables are package-level values built once at init and never written
// afterwards, so concurrent readers need no locking.
// ============================================================================

type City string

const (
	Mumbai    City = "Mumbai"
	Delhi     City = "Delhi"
	Bangalore City = "Bangalore"
	Pune      City = "Pune"
	Hyderabad City = "Hyderabad"
	Chennai   City = "Chennai"

	// DefaultCity supplies the neighborhood table for unknown cities.
	DefaultCity = Mumbai
)

const (
	// DefaultBaseRate is the per sq ft rate used when the city is unknown.
	DefaultBaseRate = 20000.0
	// NeutralMultiplier is applied for neighborhoods missing from the city table.
	NeutralMultiplier = 1.0
)

type neighborhoodRate struct {
	name       string
	multiplier float64
}

type cityTable struct {
	city          City
	baseRate      float64
	neighborhoods []neighborhoodRate
	index         map[string]float64
}

// Rates are rupees per sq ft. Multipliers scale the city rate per neighborhood.
var cityTables = []*cityTable{
	{city: Mumbai, baseRate: 30000, neighborhoods: []neighborhoodRate{
		{"Andheri East", 0.73}, {"Andheri West", 0.93}, {"Bandra East", 1.40},
		{"Bandra West", 2.17}, {"Borivali", 0.60}, {"Chembur", 0.73},
		{"Colaba", 2.60}, {"Dadar", 1.17}, {"Goregaon", 0.67},
		{"Juhu", 1.83}, {"Kandivali", 0.57}, {"Khar", 1.73},
		{"Lower Parel", 1.50}, {"Malad", 0.60}, {"Mira Road", 0.40},
		{"Mulund", 0.57}, {"Powai", 0.83}, {"Santacruz", 1.27},
		{"Thane", 0.47}, {"Versova", 1.00}, {"Vikhroli", 0.63},
		{"Worli", 2.00},
	}},
	{city: Delhi, baseRate: 25000, neighborhoods: []neighborhoodRate{
		{"Connaught Place", 2.20}, {"Defence Colony", 1.70}, {"Dwarka", 0.65},
		{"Greater Kailash", 1.45}, {"Hauz Khas", 1.50}, {"Janakpuri", 0.70},
		{"Lajpat Nagar", 1.15}, {"Mayur Vihar", 0.75}, {"New Friends Colony", 1.25},
		{"Paharganj", 0.60}, {"Rohini", 0.55}, {"Saket", 1.35},
		{"South Extension", 1.60}, {"Vasant Kunj", 1.40}, {"Vasant Vihar", 1.80},
	}},
	{city: Bangalore, baseRate: 18000, neighborhoods: []neighborhoodRate{
		{"Indiranagar", 1.60}, {"Koramangala", 1.70}, {"Whitefield", 0.85},
		{"HSR Layout", 1.40}, {"Jayanagar", 1.35}, {"JP Nagar", 1.20},
		{"Electronic City", 0.65}, {"Bannerghatta Road", 0.90}, {"Hebbal", 0.80},
		{"Malleswaram", 1.45}, {"Marathahalli", 0.80}, {"Yelahanka", 0.60},
		{"BTM Layout", 1.10}, {"MG Road", 1.80}, {"Rajajinagar", 1.25},
	}},
	{city: Pune, baseRate: 15000, neighborhoods: []neighborhoodRate{
		{"Koregaon Park", 1.70}, {"Kalyani Nagar", 1.60}, {"Viman Nagar", 1.45},
		{"Aundh", 1.30}, {"Baner", 1.25}, {"Kothrud", 1.15},
		{"Hadapsar", 0.75}, {"Hinjewadi", 0.90}, {"Kharadi", 0.95},
		{"Magarpatta City", 1.10}, {"Camp", 1.40}, {"Shivaji Nagar", 1.35},
		{"Kondhwa", 0.80}, {"Wakad", 0.85}, {"Pimpri-Chinchwad", 0.65},
	}},
	{city: Hyderabad, baseRate: 13000, neighborhoods: []neighborhoodRate{
		{"Banjara Hills", 1.80}, {"Jubilee Hills", 1.95}, {"Gachibowli", 1.30},
		{"Madhapur", 1.40}, {"HITEC City", 1.35}, {"Kondapur", 1.10},
		{"Kukatpally", 0.85}, {"Miyapur", 0.70}, {"Secunderabad", 1.00},
		{"Begumpet", 1.25}, {"Ameerpet", 1.15}, {"Somajiguda", 1.30},
		{"Manikonda", 0.80}, {"Uppal", 0.65}, {"LB Nagar", 0.60},
	}},
	{city: Chennai, baseRate: 16000, neighborhoods: []neighborhoodRate{
		{"Anna Nagar", 1.50}, {"Adyar", 1.70}, {"T. Nagar", 1.60},
		{"Velachery", 1.15}, {"Nungambakkam", 1.80}, {"Mylapore", 1.65},
		{"Porur", 0.85}, {"Thoraipakkam", 0.95}, {"Sholinganallur", 0.90},
		{"Guindy", 1.20}, {"Perungudi", 0.85}, {"Egmore", 1.45},
		{"Besant Nagar", 1.75}, {"Kilpauk", 1.40}, {"OMR", 0.80},
	}},
}

var cityIndex = indexCities(cityTables)

func indexCities(tables []*cityTable) map[string]*cityTable {
	idx := make(map[string]*cityTable, len(tables))
	for _, t := range tables {
		t.index = make(map[string]float64, len(t.neighborhoods))
		for _, n := range t.neighborhoods {
			t.index[foldKey(n.name)] = n.multiplier
		}
		idx[foldKey(string(t.city))] = t
	}
	return idx
}

// foldKey normalises free-text input for lookups: trims, collapses inner
// whitespace and case-folds. A Caser is stateful, so one is built per call.
func foldKey(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func lookupCity(city City) (*cityTable, bool) {
	t, ok := cityIndex[foldKey(string(city))]
	return t, ok
}

// BaseRate returns the per sq ft base rate for city, or DefaultBaseRate when
// the city is not supported.
func BaseRate(city City) float64 {
	if t, ok := lookupCity(city); ok {
		return t.baseRate
	}
	return DefaultBaseRate
}

// LocationMultiplier returns the neighborhood multiplier for city. Unknown
// cities use DefaultCity's table; unknown neighborhoods get NeutralMultiplier.
func LocationMultiplier(city City, neighborhood string) float64 {
	t, ok := lookupCity(city)
	if !ok {
		t, _ = lookupCity(DefaultCity)
	}
	if m, ok := t.index[foldKey(neighborhood)]; ok {
		return m
	}
	return NeutralMultiplier
}

// ParseCity maps free text onto a supported City.
func ParseCity(s string) (City, bool) {
	if t, ok := cityIndex[foldKey(s)]; ok {
		return t.city, true
	}
	return City(s), false
}

// Cities lists the supported cities in display order.
func Cities() []City {
	out := make([]City, 0, len(cityTables))
	for _, t := range cityTables {
		out = append(out, t.city)
	}
	return out
}

// Neighborhoods lists the registered neighborhoods of city. Unknown cities
// get DefaultCity's list.
func Neighborhoods(city City) []string {
	t, ok := lookupCity(city)
	if !ok {
		t, _ = lookupCity(DefaultCity)
	}
	out := make([]string, 0, len(t.neighborhoods))
	for _, n := range t.neighborhoods {
		out = append(out, n.name)
	}
	return out
}

// ============================================================================
// ENUMERATIONS: property type, furnishing, amenities
// ============================================================================

type PropertyType string

const (
	Apartment        PropertyType = "Apartment"
	BuilderFloor     PropertyType = "Builder Floor"
	Penthouse        PropertyType = "Penthouse"
	StudioApartment  PropertyType = "Studio Apartment"
	IndependentHouse PropertyType = "Independent House"
	Villa            PropertyType = "Villa"
)

type enumEntry[T ~string] struct {
	value  T
	factor float64
}

var propertyTypes = []enumEntry[PropertyType]{
	{Apartment, 1.00},
	{BuilderFloor, 0.95},
	{Penthouse, 1.40},
	{StudioApartment, 0.85},
	{IndependentHouse, 1.35},
	{Villa, 1.50},
}

// DefaultPropertyTypeFactor prices unrecognised types like a studio.
const DefaultPropertyTypeFactor = 0.85

type Furnishing string

const (
	Unfurnished    Furnishing = "Unfurnished"
	SemiFurnished  Furnishing = "Semi-Furnished"
	FullyFurnished Furnishing = "Fully Furnished"
)

var furnishings = []enumEntry[Furnishing]{
	{Unfurnished, 1.00},
	{SemiFurnished, 1.07},
	{FullyFurnished, 1.15},
}

const DefaultFurnishingFactor = 1.0

type Amenity string

const (
	SwimmingPool      Amenity = "Swimming Pool"
	Gym               Amenity = "Gym"
	Garden            Amenity = "Garden"
	Clubhouse         Amenity = "Clubhouse"
	Security          Amenity = "Security"
	PowerBackup       Amenity = "Power Backup"
	Parking           Amenity = "Parking"
	Lift              Amenity = "Lift"
	ChildrensPlayArea Amenity = "Children's Play Area"
	Intercom          Amenity = "Intercom"
)

var amenityCatalog = []Amenity{
	SwimmingPool, Gym, Garden, Clubhouse, Security,
	PowerBackup, Parking, Lift, ChildrensPlayArea, Intercom,
}

var (
	propertyTypeIndex = indexEnum(propertyTypes)
	furnishingIndex   = indexEnum(furnishings)
	amenityIndex      = indexAmenities(amenityCatalog)
)

func indexEnum[T ~string](entries []enumEntry[T]) map[string]enumEntry[T] {
	idx := make(map[string]enumEntry[T], len(entries))
	for _, e := range entries {
		idx[foldKey(string(e.value))] = e
	}
	return idx
}

func indexAmenities(catalog []Amenity) map[string]Amenity {
	idx := make(map[string]Amenity, len(catalog))
	for _, a := range catalog {
		idx[foldKey(string(a))] = a
	}
	return idx
}

// ParsePropertyType returns the canonical PropertyType for s. Unknown input
// is returned verbatim with ok=false and prices at DefaultPropertyTypeFactor.
func ParsePropertyType(s string) (PropertyType, bool) {
	if e, ok := propertyTypeIndex[foldKey(s)]; ok {
		return e.value, true
	}
	return PropertyType(s), false
}

func ParseFurnishing(s string) (Furnishing, bool) {
	if e, ok := furnishingIndex[foldKey(s)]; ok {
		return e.value, true
	}
	return Furnishing(s), false
}

func ParseAmenity(s string) (Amenity, bool) {
	if a, ok := amenityIndex[foldKey(s)]; ok {
		return a, true
	}
	return Amenity(s), false
}

func PropertyTypes() []PropertyType {
	out := make([]PropertyType, 0, len(propertyTypes))
	for _, e := range propertyTypes {
		out = append(out, e.value)
	}
	return out
}

func FurnishingOptions() []Furnishing {
	out := make([]Furnishing, 0, len(furnishings))
	for _, e := range furnishings {
		out = append(out, e.value)
	}
	return out
}

func AmenityCatalog() []Amenity {
	return append([]Amenity(nil), amenityCatalog...)
}
