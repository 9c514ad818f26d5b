package valuation

import "testing"

func TestBaseRate(t *testing.T) {
	tests := []struct {
		city City
		want float64
	}{
		{Mumbai, 30000},
		{Delhi, 25000},
		{Bangalore, 18000},
		{Pune, 15000},
		{Hyderabad, 13000},
		{Chennai, 16000},
		{"  mumbai ", 30000},
		{"Unknown City", DefaultBaseRate},
		{"", DefaultBaseRate},
	}
	for _, tt := range tests {
		if got := BaseRate(tt.city); got != tt.want {
			t.Errorf("BaseRate(%q) = %v; want %v", tt.city, got, tt.want)
		}
	}
}

func TestLocationMultiplier(t *testing.T) {
	tests := []struct {
		city         City
		neighborhood string
		want         float64
	}{
		{Mumbai, "Colaba", 2.60},
		{Mumbai, "colaba", 2.60},
		{Mumbai, "Lower  Parel", 1.50},
		{Delhi, "Connaught Place", 2.20},
		{Chennai, "T. Nagar", 1.60},
		{Mumbai, "Connaught Place", NeutralMultiplier},
		{Pune, "", NeutralMultiplier},
		{"Atlantis", "Colaba", 2.60},
		{"Atlantis", "Somewhere", NeutralMultiplier},
	}
	for _, tt := range tests {
		if got := LocationMultiplier(tt.city, tt.neighborhood); got != tt.want {
			t.Errorf("LocationMultiplier(%q, %q) = %v; want %v", tt.city, tt.neighborhood, got, tt.want)
		}
	}
}

func TestEveryNeighborhoodHasMultiplier(t *testing.T) {
	for _, city := range Cities() {
		hoods := Neighborhoods(city)
		if len(hoods) == 0 {
			t.Errorf("%s has no neighborhoods", city)
		}
		for _, n := range hoods {
			m := LocationMultiplier(city, n)
			if m < 0.4 || m > 2.6 {
				t.Errorf("%s/%s multiplier %v outside [0.4, 2.6]", city, n, m)
			}
		}
	}
}

func TestNeighborhoodsUnknownCityUsesDefault(t *testing.T) {
	got := Neighborhoods("Gotham")
	want := Neighborhoods(DefaultCity)
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("Neighborhoods(Gotham) = %v; want %v", got, want)
	}
}

func TestParseEnums(t *testing.T) {
	if c, ok := ParseCity(" hyderabad"); !ok || c != Hyderabad {
		t.Errorf("ParseCity = %q, %v", c, ok)
	}
	if c, ok := ParseCity("Springfield"); ok || c != "Springfield" {
		t.Errorf("ParseCity(unknown) = %q, %v", c, ok)
	}
	if pt, ok := ParsePropertyType("independent house"); !ok || pt != IndependentHouse {
		t.Errorf("ParsePropertyType = %q, %v", pt, ok)
	}
	if f, ok := ParseFurnishing("FULLY FURNISHED"); !ok || f != FullyFurnished {
		t.Errorf("ParseFurnishing = %q, %v", f, ok)
	}
	if a, ok := ParseAmenity("children's play area"); !ok || a != ChildrensPlayArea {
		t.Errorf("ParseAmenity = %q, %v", a, ok)
	}
	if _, ok := ParseAmenity("Helipad"); ok {
		t.Error("ParseAmenity(Helipad) reported ok")
	}
}

func TestEnumerationsReturnCopies(t *testing.T) {
	if n := len(Cities()); n != 6 {
		t.Errorf("Cities() has %d entries; want 6", n)
	}
	if n := len(PropertyTypes()); n != 6 {
		t.Errorf("PropertyTypes() has %d entries; want 6", n)
	}
	if n := len(FurnishingOptions()); n != 3 {
		t.Errorf("FurnishingOptions() has %d entries; want 3", n)
	}

	a := AmenityCatalog()
	if len(a) != 10 {
		t.Fatalf("AmenityCatalog() has %d entries; want 10", len(a))
	}
	a[0] = "Moat"
	if AmenityCatalog()[0] != SwimmingPool {
		t.Error("mutating AmenityCatalog() result changed the catalog")
	}
}
