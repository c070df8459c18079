package freight

import (
	"fmt"

	"github.com/Simplici0/freight/internal/apperrors"
)

// cm3PerM3 converts centimeter dimensions into cubic meters.
const cm3PerM3 = 1_000_000

// Mode identifies a transport mode.
type Mode string

const (
	ModeSea Mode = "sea"
	ModeAir Mode = "air"
)

// Dimensions are package measurements in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether all three dimensions are strictly positive.
func (d Dimensions) Valid() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

// Money is a non-negative amount tagged with a currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// NewMoney validates the amount and returns a Money value.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrInvalidInput)
	}
	if currency == "" {
		return Money{}, fmt.Errorf("%w: currency is required", apperrors.ErrInvalidInput)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Volume returns the volume in m³ of a package measured in centimeters.
// Callers must only pass strictly positive dimensions.
func Volume(length, width, height float64) float64 {
	return (length * width * height) / cm3PerM3
}

// SeaCost prices a volume in m³ at a CBM rate.
func SeaCost(volumeM3, cbmRate float64) float64 {
	return volumeM3 * cbmRate
}

// AirCost prices a weight in kg at a per-kilogram rate.
func AirCost(weightKg, perKgRate float64) float64 {
	return weightKg * perKgRate
}

// SeaQuote is the result of a single sea-freight calculation.
type SeaQuote struct {
	Dimensions Dimensions `json:"dimensions"`
	CBMRate    float64    `json:"cbmRate"`
	Volume     float64    `json:"volume"`
	Cost       float64    `json:"cost"`
}

// AirQuote is the result of a single air-freight calculation.
type AirQuote struct {
	Weight    float64 `json:"weight"`
	PerKgRate float64 `json:"perKgRate"`
	Cost      float64 `json:"cost"`
}

// QuoteSea computes a single sea-freight cost, refusing invalid dimensions or rate.
func QuoteSea(dims Dimensions, cbmRate float64) (SeaQuote, error) {
	if !dims.Valid() {
		return SeaQuote{}, fmt.Errorf("%w: length, width and height must be greater than 0", apperrors.ErrInvalidInput)
	}
	if cbmRate <= 0 {
		return SeaQuote{}, fmt.Errorf("%w: cbm rate must be greater than 0", apperrors.ErrInvalidInput)
	}

	volume := Volume(dims.Length, dims.Width, dims.Height)
	return SeaQuote{
		Dimensions: dims,
		CBMRate:    cbmRate,
		Volume:     volume,
		Cost:       SeaCost(volume, cbmRate),
	}, nil
}

// QuoteAir computes a single air-freight cost, refusing a non-positive weight or rate.
func QuoteAir(weightKg, perKgRate float64) (AirQuote, error) {
	if weightKg <= 0 {
		return AirQuote{}, fmt.Errorf("%w: weight must be greater than 0", apperrors.ErrInvalidInput)
	}
	if perKgRate <= 0 {
		return AirQuote{}, fmt.Errorf("%w: rate per kg must be greater than 0", apperrors.ErrInvalidInput)
	}

	return AirQuote{
		Weight:    weightKg,
		PerKgRate: perKgRate,
		Cost:      AirCost(weightKg, perKgRate),
	}, nil
}
