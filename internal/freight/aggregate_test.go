package freight

import (
	"errors"
	"testing"

	"github.com/Simplici0/freight/internal/apperrors"
)

func TestAggregatePackages_MixedBatch(t *testing.T) {
	specs := []PackageSpec{
		{Dimensions: &Dimensions{Length: 100, Width: 50, Height: 50}, Quantity: 2},
		{Weight: 10, Quantity: 3},
	}

	agg, err := AggregatePackages(specs, 200000, 5000)
	if err != nil {
		t.Fatalf("AggregatePackages: %v", err)
	}

	if len(agg.Packages) != 2 {
		t.Fatalf("expected 2 package results, got %d", len(agg.Packages))
	}

	first := agg.Packages[0]
	nearlyEqual(t, "pkg1 volume", first.Volume, 0.5)
	nearlyEqual(t, "pkg1 sea", *first.SeaCost, 100000)
	nearlyEqual(t, "pkg1 air", *first.AirCost, 0)

	second := agg.Packages[1]
	nearlyEqual(t, "pkg2 weight", second.Weight, 30)
	nearlyEqual(t, "pkg2 air", *second.AirCost, 150000)
	nearlyEqual(t, "pkg2 sea", *second.SeaCost, 0)

	nearlyEqual(t, "totalSeaCost", agg.Totals.SeaCost, 100000)
	nearlyEqual(t, "totalAirCost", agg.Totals.AirCost, 150000)
	nearlyEqual(t, "totalVolume", agg.Totals.Volume, 0.5)
	nearlyEqual(t, "totalWeight", agg.Totals.Weight, 30)
	if agg.Totals.Units != 5 {
		t.Fatalf("totalUnits = %d, want 5", agg.Totals.Units)
	}
}

func TestAggregatePackages_SkipsInvalidAndKeepsPositions(t *testing.T) {
	specs := []PackageSpec{
		{Dimensions: &Dimensions{Length: 10, Width: 0, Height: 10}, Quantity: 4},
		{Weight: 2},
		{},
		{Dimensions: &Dimensions{Length: 10, Width: 10, Height: 10}, Weight: -3},
	}

	agg, err := AggregatePackages(specs, 1000, 100)
	if err != nil {
		t.Fatalf("AggregatePackages: %v", err)
	}

	if len(agg.Packages) != 2 {
		t.Fatalf("expected 2 valid packages, got %+v", agg.Packages)
	}
	if agg.Packages[0].Position != 1 || agg.Packages[1].Position != 3 {
		t.Fatalf("positions not preserved: %+v", agg.Packages)
	}
	if agg.Packages[0].Quantity != 1 {
		t.Fatalf("default quantity = %d, want 1", agg.Packages[0].Quantity)
	}
	if agg.Totals.Units != 2 {
		t.Fatalf("totalUnits = %d, want 2", agg.Totals.Units)
	}
	nearlyEqual(t, "totalWeight", agg.Totals.Weight, 2)
	nearlyEqual(t, "totalVolume", agg.Totals.Volume, 0.001)
}

func TestAggregatePackages_AllInvalidYieldsZeroTotals(t *testing.T) {
	specs := []PackageSpec{{}, {Weight: 0, Quantity: 3}, {Dimensions: &Dimensions{Length: -1, Width: 2, Height: 3}}}

	agg, err := AggregatePackages(specs, 100, 100)
	if err != nil {
		t.Fatalf("AggregatePackages: %v", err)
	}
	if len(agg.Packages) != 0 {
		t.Fatalf("expected no package results, got %+v", agg.Packages)
	}
	if agg.Totals != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", agg.Totals)
	}
}

func TestAggregatePackages_RefusesWithoutRates(t *testing.T) {
	specs := []PackageSpec{{Weight: 5}}
	if _, err := AggregatePackages(specs, 0, -10); !errors.Is(err, apperrors.ErrNoRate) {
		t.Fatalf("expected ErrNoRate, got %v", err)
	}
}

func TestAggregatePackages_OmitsAbsentRate(t *testing.T) {
	agg, err := AggregatePackages([]PackageSpec{{Weight: 5, Quantity: 2}}, 0, 10)
	if err != nil {
		t.Fatalf("AggregatePackages: %v", err)
	}
	if agg.Packages[0].SeaCost != nil {
		t.Fatalf("expected sea cost to be absent, got %v", *agg.Packages[0].SeaCost)
	}
	nearlyEqual(t, "air", *agg.Packages[0].AirCost, 100)
}

func TestAggregatePackages_QuantityEquivalence(t *testing.T) {
	pkg := PackageSpec{Dimensions: &Dimensions{Length: 33.3, Width: 21.7, Height: 12.9}, Weight: 4.35, Quantity: 1}

	copies := make([]PackageSpec, 7)
	for i := range copies {
		copies[i] = pkg
	}
	multiplied := pkg
	multiplied.Quantity = 7

	a, err := AggregatePackages(copies, 180000, 2750)
	if err != nil {
		t.Fatalf("copies: %v", err)
	}
	b, err := AggregatePackages([]PackageSpec{multiplied}, 180000, 2750)
	if err != nil {
		t.Fatalf("multiplied: %v", err)
	}

	nearlyEqual(t, "sea", a.Totals.SeaCost, b.Totals.SeaCost)
	nearlyEqual(t, "air", a.Totals.AirCost, b.Totals.AirCost)
	nearlyEqual(t, "volume", a.Totals.Volume, b.Totals.Volume)
	nearlyEqual(t, "weight", a.Totals.Weight, b.Totals.Weight)
	if a.Totals.Units != b.Totals.Units {
		t.Fatalf("units %d != %d", a.Totals.Units, b.Totals.Units)
	}
}
