package freight

import (
	"fmt"

	"github.com/Simplici0/freight/internal/apperrors"
)

// PackageSpec describes one line of a multi-package shipment.
// Dimensions may be nil and Weight may be 0 when unknown; Quantity <= 0 counts as 1.
type PackageSpec struct {
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Weight     float64     `json:"weight,omitempty"`
	Quantity   int         `json:"quantity"`
}

// Valid reports whether the package has complete positive dimensions or a positive weight.
func (p PackageSpec) Valid() bool {
	return p.hasDimensions() || p.Weight > 0
}

func (p PackageSpec) hasDimensions() bool {
	return p.Dimensions != nil && p.Dimensions.Valid()
}

func (p PackageSpec) quantity() int {
	if p.Quantity <= 0 {
		return 1
	}
	return p.Quantity
}

// CostResult is the priced outcome of one valid package line.
type CostResult struct {
	Position   int      `json:"position"`
	Quantity   int      `json:"quantity"`
	UnitVolume float64  `json:"unitVolume"`
	Volume     float64  `json:"volume"`
	UnitWeight float64  `json:"unitWeight"`
	Weight     float64  `json:"weight"`
	SeaCost    *float64 `json:"seaCost,omitempty"`
	AirCost    *float64 `json:"airCost,omitempty"`
}

// Totals sums every valid package of an aggregation.
type Totals struct {
	SeaCost float64 `json:"totalSeaCost"`
	AirCost float64 `json:"totalAirCost"`
	Volume  float64 `json:"totalVolume"`
	Weight  float64 `json:"totalWeight"`
	Units   int     `json:"totalUnits"`
}

// Aggregate is the result of pricing a batch of packages.
type Aggregate struct {
	Packages []CostResult `json:"packages"`
	Totals   Totals       `json:"totals"`
}

// Cheaper compares the aggregate sea and air totals.
func (a Aggregate) Cheaper() ComparisonResult {
	return Compare(a.Totals.SeaCost, a.Totals.AirCost)
}

// AggregatePackages prices every valid package in input order and sums the totals.
// A rate <= 0 is treated as absent; at least one rate must be present.
// Invalid packages are skipped without error.
func AggregatePackages(specs []PackageSpec, seaRate, airRate float64) (Aggregate, error) {
	hasSea := seaRate > 0
	hasAir := airRate > 0
	if !hasSea && !hasAir {
		return Aggregate{}, fmt.Errorf("%w: sea or air rate", apperrors.ErrNoRate)
	}

	result := Aggregate{Packages: make([]CostResult, 0, len(specs))}
	for i, spec := range specs {
		if !spec.Valid() {
			continue
		}

		qty := spec.quantity()
		line := CostResult{Position: i, Quantity: qty}

		if spec.hasDimensions() {
			d := spec.Dimensions
			line.UnitVolume = Volume(d.Length, d.Width, d.Height)
			line.Volume = line.UnitVolume * float64(qty)
		}
		if spec.Weight > 0 {
			line.UnitWeight = spec.Weight
			line.Weight = spec.Weight * float64(qty)
		}

		if hasSea {
			cost := SeaCost(line.Volume, seaRate)
			line.SeaCost = &cost
			result.Totals.SeaCost += cost
		}
		if hasAir {
			cost := AirCost(line.Weight, airRate)
			line.AirCost = &cost
			result.Totals.AirCost += cost
		}

		result.Totals.Volume += line.Volume
		result.Totals.Weight += line.Weight
		result.Totals.Units += qty
		result.Packages = append(result.Packages, line)
	}

	return result, nil
}
