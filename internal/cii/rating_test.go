package cii

import (
	"math"
	"testing"
)

func TestAttainedKnownScenario(t *testing.T) {
	// 18500 t HFO over 95000 nm at 85000 dwt
	got := Attained(18500, 95000, 85000, "HFO")
	want := 18500 * 3.114 / (85000 * 95000) * 1e6
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("attained: got %v want %v", got, want)
	}
	if math.Abs(got-7.128) > 0.01 {
		t.Fatalf("attained: got %v, expected ~7.128", got)
	}
}

func TestAttainedZeroWorkIsInf(t *testing.T) {
	if !math.IsInf(Attained(100, 0, 85000, "HFO"), 1) {
		t.Fatal("zero distance should yield +Inf")
	}
	if !math.IsInf(Attained(100, 95000, 0, "HFO"), 1) {
		t.Fatal("zero capacity should yield +Inf")
	}
}

func TestAttainedMonotonic(t *testing.T) {
	// strictly increasing in fuel
	prev := Attained(1000, 95000, 85000, "HFO")
	for f := 2000.0; f <= 10000; f += 1000 {
		cur := Attained(f, 95000, 85000, "HFO")
		if cur <= prev {
			t.Fatalf("attained not increasing in fuel at %v: %v <= %v", f, cur, prev)
		}
		prev = cur
	}
	// strictly decreasing in distance
	prev = Attained(18500, 10000, 85000, "HFO")
	for d := 20000.0; d <= 100000; d += 10000 {
		cur := Attained(18500, d, 85000, "HFO")
		if cur >= prev {
			t.Fatalf("attained not decreasing in distance at %v: %v >= %v", d, cur, prev)
		}
		prev = cur
	}
}

func TestCO2FactorFallback(t *testing.T) {
	if got := CO2Factor("Hydrogen"); got != 3.114 {
		t.Fatalf("unknown fuel factor: got %v want 3.114", got)
	}
	if got := CO2Factor("Ammonia"); got != 0 {
		t.Fatalf("ammonia factor: got %v want 0", got)
	}
}

func TestRequiredKnownScenario(t *testing.T) {
	got := Required("Bulk Carrier", 85000, 2025)
	want := 4745 * math.Pow(85000, -0.622) * (1 - 0.09)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("required: got %v want %v", got, want)
	}
}

func TestRequiredFallbacks(t *testing.T) {
	// unknown ship type uses the Bulk Carrier baseline
	if got, want := Required("Hovercraft", 85000, 2025), Required("Bulk Carrier", 85000, 2025); got != want {
		t.Fatalf("unknown ship type: got %v want %v", got, want)
	}
	// out-of-schedule year uses the 2025 reduction
	if got, want := Required("Bulk Carrier", 85000, 2055), Required("Bulk Carrier", 85000, 2025); got != want {
		t.Fatalf("unknown year: got %v want %v", got, want)
	}
}

func TestRatingBands(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0.5, "A"}, {0.88, "A"}, {0.8801, "B"}, {0.94, "B"},
		{0.9401, "C"}, {1.0, "C"}, {1.06, "C"}, {1.0601, "D"},
		{1.18, "D"}, {1.1801, "E"}, {5, "E"},
	}
	for _, c := range cases {
		if got := Rating(c.ratio*10, 10); got != c.want {
			t.Fatalf("ratio %v: got %s want %s", c.ratio, got, c.want)
		}
	}
}

func TestRatingEqualIsC(t *testing.T) {
	for _, x := range []float64{0.001, 1, 7.128, 1e6} {
		if got := Rating(x, x); got != "C" {
			t.Fatalf("Rating(%v,%v) = %s, want C", x, x, got)
		}
	}
}

func TestRatingInfIsE(t *testing.T) {
	if got := Rating(math.Inf(1), 5); got != "E" {
		t.Fatalf("infinite attained: got %s want E", got)
	}
}

func TestRatingNonDecreasing(t *testing.T) {
	order := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4}
	prev := 0
	for r := 0.01; r < 2.0; r += 0.01 {
		idx := order[Rating(r*100, 100)]
		if idx < prev {
			t.Fatalf("rating improved as ratio rose at %v", r)
		}
		prev = idx
	}
}

func TestThresholdFor(t *testing.T) {
	req := 10.0
	cases := map[string]float64{"A": 8.8, "B": 9.4, "C": 10.6, "D": 11.8}
	for r, want := range cases {
		if got := ThresholdFor(req, r); math.Abs(got-want) > 1e-9 {
			t.Fatalf("threshold %s: got %v want %v", r, got, want)
		}
	}
	// E and junk default to the A threshold
	if got := ThresholdFor(req, "E"); got != 8.8 {
		t.Fatalf("threshold E: got %v want 8.8", got)
	}
	if got := ThresholdFor(req, "Z"); got != 8.8 {
		t.Fatalf("threshold Z: got %v want 8.8", got)
	}
}

func TestRatingOrderHelpers(t *testing.T) {
	if !Better("A", "B") || Better("C", "C") || Better("D", "B") {
		t.Fatal("Better ordering wrong")
	}
	if got := NextBetter("C"); got != "B" {
		t.Fatalf("NextBetter(C) = %s", got)
	}
	if got := NextBetter("A"); got != "A" {
		t.Fatalf("NextBetter(A) = %s", got)
	}
	if got := NextBetter("E"); got != "D" {
		t.Fatalf("NextBetter(E) = %s", got)
	}
}
