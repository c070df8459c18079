package main

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Simplici0/freight/internal/apperrors"
	"github.com/Simplici0/freight/internal/currency"
	"github.com/Simplici0/freight/internal/freight"
	"github.com/Simplici0/freight/internal/quote"
)

// Requests carry raw text exactly as typed; numbers are parsed explicitly below.

type normalizer interface {
	normalize()
}

type shipmentFields struct {
	Currency    string `json:"currency" validate:"required,currency"`
	Destination string `json:"destination" validate:"omitempty,len=2"`
}

func (f *shipmentFields) normalize() {
	f.Currency = currency.Normalize(f.Currency)
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
}

type seaRequest struct {
	shipmentFields
	CBMRate string `json:"cbmRate" validate:"required"`
	Length  string `json:"length" validate:"required"`
	Width   string `json:"width" validate:"required"`
	Height  string `json:"height" validate:"required"`
}

type airRequest struct {
	shipmentFields
	RatePerKg string `json:"ratePerKg" validate:"required"`
	Weight    string `json:"weight" validate:"required"`
}

type compareRequest struct {
	shipmentFields
	CBMRate   string `json:"cbmRate" validate:"required"`
	Length    string `json:"length" validate:"required"`
	Width     string `json:"width" validate:"required"`
	Height    string `json:"height" validate:"required"`
	RatePerKg string `json:"ratePerKg" validate:"required"`
	Weight    string `json:"weight" validate:"required"`
}

type packageRequest struct {
	Length   string `json:"length"`
	Width    string `json:"width"`
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	Quantity string `json:"quantity"`
}

type multiRequest struct {
	shipmentFields
	CBMRate   string           `json:"cbmRate"`
	RatePerKg string           `json:"ratePerKg"`
	Packages  []packageRequest `json:"packages" validate:"required,min=1,max=100,dive"`
}

type manualRatesRequest struct {
	UseManual bool              `json:"useManual"`
	Rates     map[string]string `json:"rates" validate:"max=50"`
}

type convertRequest struct {
	Amount string `json:"amount" validate:"required"`
	From   string `json:"from" validate:"required,max=8"`
	To     string `json:"to" validate:"required,max=8"`
}

func (c *convertRequest) normalize() {
	c.From = currency.Normalize(c.From)
	c.To = currency.Normalize(c.To)
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return currency.IsSelectable(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register currency validation: %v", err))
	}
	return v
}

// parseNumber parses a decimal number typed by a user. A comma is accepted as decimal separator.
func parseNumber(raw, field string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s must be numeric", apperrors.ErrInvalidInput, field)
	}
	return value, nil
}

// parseOptionalNumber is parseNumber where an empty field means 0.
func parseOptionalNumber(raw, field string) (float64, error) {
	if !filled(raw) {
		return 0, nil
	}
	return parseNumber(raw, field)
}

func parseNonNegative(raw, field string) (float64, error) {
	value, err := parseNumber(raw, field)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %s must be greater than or equal to 0", apperrors.ErrInvalidInput, field)
	}
	return value, nil
}

func parsePositive(raw, field string) (float64, error) {
	value, err := parseNumber(raw, field)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", apperrors.ErrInvalidInput, field)
	}
	return value, nil
}

// parseQuantity parses a package quantity. Empty means 1.
func parseQuantity(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", apperrors.ErrInvalidInput, field)
	}
	return value, nil
}

func parseDimensions(length, width, height, prefix string) (freight.Dimensions, error) {
	var (
		d   freight.Dimensions
		err error
	)
	if d.Length, err = parseNumber(length, prefix+"length"); err != nil {
		return d, err
	}
	if d.Width, err = parseNumber(width, prefix+"width"); err != nil {
		return d, err
	}
	if d.Height, err = parseNumber(height, prefix+"height"); err != nil {
		return d, err
	}
	return d, nil
}

// parsePackage turns one raw package line into a spec. Dimensions are kept only when all three are given.
func parsePackage(p packageRequest, index int) (freight.PackageSpec, error) {
	prefix := fmt.Sprintf("packages[%d].", index)
	var spec freight.PackageSpec

	if filled(p.Length) && filled(p.Width) && filled(p.Height) {
		d, err := parseDimensions(p.Length, p.Width, p.Height, prefix)
		if err != nil {
			return spec, err
		}
		spec.Dimensions = &d
	}

	var err error
	if spec.Weight, err = parseOptionalNumber(p.Weight, prefix+"weight"); err != nil {
		return spec, err
	}
	if spec.Quantity, err = parseQuantity(p.Quantity, prefix+"quantity"); err != nil {
		return spec, err
	}
	return spec, nil
}

func filled(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

func parseManualRates(raw map[string]string) (currency.Table, error) {
	table := make(currency.Table, len(raw))
	for code, value := range raw {
		code = currency.Normalize(code)
		if code == "" {
			return nil, fmt.Errorf("%w: empty currency code", apperrors.ErrInvalidInput)
		}
		rate, err := parsePositive(value, "rates."+code)
		if err != nil {
			return nil, err
		}
		table[code] = rate
	}
	return table, nil
}

func destinationFor(code string) (*quote.Destination, error) {
	if code == "" {
		return nil, nil
	}
	d, ok := quote.FindDestination(code)
	if !ok {
		return nil, fmt.Errorf("%w: unknown destination %q", apperrors.ErrInvalidInput, code)
	}
	return &d, nil
}
