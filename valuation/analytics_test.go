package valuation

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRankedLocationFactorsSortedDescending(t *testing.T) {
	eng := New(WithSource(rand.New(rand.NewPCG(5, 6))))

	for _, city := range append(Cities(), "Unknown City") {
		got := eng.RankedLocationFactors(city)
		if len(got) != len(Neighborhoods(city)) {
			t.Fatalf("%s: %d factors; want %d", city, len(got), len(Neighborhoods(city)))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Value > got[i-1].Value {
				t.Errorf("%s: %s (%.0f) ranked after %s (%.0f)",
					city, got[i].Name, got[i].Value, got[i-1].Name, got[i-1].Value)
			}
		}
	}
}

func TestRankedLocationFactorsNoiseBounds(t *testing.T) {
	for _, u := range []float64{0, 0.5, 0.999} {
		eng := New(WithSource(fixedSource(u)))
		for _, lf := range eng.RankedLocationFactors(Delhi) {
			exact := BaseRate(Delhi) * LocationMultiplier(Delhi, lf.Name)
			if lf.Value < exact*0.93-1e-6 || lf.Value > exact*1.07+1e-6 {
				t.Errorf("u=%v %s: %.2f outside +-7%% of %.2f", u, lf.Name, lf.Value, exact)
			}
		}
	}
}

func TestRankedLocationFactorsStableTies(t *testing.T) {
	// Neutral noise leaves Chembur and Andheri East tied at 0.73; insertion
	// order wins.
	got := New(WithSource(fixedSource(0.5))).RankedLocationFactors(Mumbai)
	if got[0].Name != "Colaba" {
		t.Errorf("top location = %s; want Colaba", got[0].Name)
	}
	ae, ch := -1, -1
	for i, lf := range got {
		switch lf.Name {
		case "Andheri East":
			ae = i
		case "Chembur":
			ch = i
		}
	}
	if ae < 0 || ch < 0 || ae > ch {
		t.Errorf("Andheri East at %d, Chembur at %d; want Andheri East first", ae, ch)
	}
}

func TestPriceTrendYearsContiguous(t *testing.T) {
	s := PriceTrend()
	if len(s.Labels) == 0 || len(s.Labels) != len(s.Values) {
		t.Fatalf("labels %d, values %d", len(s.Labels), len(s.Values))
	}
	for i := 1; i < len(s.Labels); i++ {
		if s.Labels[i] != s.Labels[i-1]+1 {
			t.Errorf("year %d follows %d", s.Labels[i], s.Labels[i-1])
		}
	}
	if s.Labels[0] != 2018 || s.Labels[len(s.Labels)-1] != 2023 {
		t.Errorf("range %d-%d; want 2018-2023", s.Labels[0], s.Labels[len(s.Labels)-1])
	}
}

func TestPriceTrendReturnsCopy(t *testing.T) {
	s := PriceTrend()
	s.Values[0] = -1
	if PriceTrend().Values[0] != 20000 {
		t.Error("mutating a returned series changed the package data")
	}
}

func TestFeatureImportance(t *testing.T) {
	got := FeatureImportance()
	want := []string{"Location", "Size", "Property Type", "Age", "Bedrooms", "Furnishing", "Amenities", "Bathrooms"}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}

	var sum float64
	for i, fw := range got {
		if fw.Feature != want[i] {
			t.Errorf("feature[%d] = %q; want %q", i, fw.Feature, want[i])
		}
		if i > 0 && fw.Weight > got[i-1].Weight {
			t.Errorf("%s weight %.2f exceeds %s", fw.Feature, fw.Weight, got[i-1].Feature)
		}
		sum += fw.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %v; want 1", sum)
	}

	got[0].Weight = 0
	if FeatureImportance()[0].Weight != 0.42 {
		t.Error("mutating the result changed the package data")
	}
}
