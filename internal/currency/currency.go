package currency

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/Simplici0/freight/internal/apperrors"
)

// Base is the currency every table rate is expressed against.
const Base = "EUR"

// Table maps a currency code to its rate against Base.
type Table map[string]float64

// DefaultTable returns the rates used until a live table has been fetched.
func DefaultTable() Table {
	return Table{
		"EUR":  1,
		"USD":  1.08,
		"GBP":  0.86,
		"CAD":  1.47,
		"FCFA": 655.96,
		"ZAR":  20.5,
		"TND":  3.4,
		"MAD":  10.9,
		"GHS":  15.8,
		"KES":  165,
	}
}

// Selectable lists the currencies offered for pricing.
var Selectable = []string{"FCFA", "EUR", "USD", "GBP", "CAD"}

// IsSelectable reports whether code, once normalized, is offered for pricing.
func IsSelectable(code string) bool {
	return slices.Contains(Selectable, Normalize(code))
}

// Normalize upper-cases and trims a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks that Base maps to 1 and every rate is positive.
func (t Table) Validate() error {
	if r, ok := t[Base]; !ok || r != 1 {
		return fmt.Errorf("%w: %s must map to 1", apperrors.ErrInvalidInput, Base)
	}
	for code, r := range t {
		if r <= 0 {
			return fmt.Errorf("%w: rate for %s must be greater than 0", apperrors.ErrInvalidInput, code)
		}
	}
	return nil
}

// Codes returns the table codes in sorted order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// ResolveRate returns the override for code when useOverrides is set and an override exists,
// otherwise the base table rate.
func ResolveRate(code string, table, overrides Table, useOverrides bool) (float64, error) {
	if useOverrides {
		if r, ok := overrides[code]; ok {
			return r, nil
		}
	}
	if r, ok := table[code]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, code)
}

// Settings is the full exchange-rate state: the fetched table and the manual overrides.
type Settings struct {
	Base       Table     `json:"rates"`
	Manual     Table     `json:"manualRates"`
	UseManual  bool      `json:"useManual"`
	LastUpdate time.Time `json:"lastUpdate,omitempty"`
}

// DefaultSettings returns settings backed by DefaultTable with no overrides.
func DefaultSettings() Settings {
	return Settings{Base: DefaultTable(), Manual: Table{}}
}

// Resolve returns the rate for code under the current override switch.
func (s Settings) Resolve(code string) (float64, error) {
	return ResolveRate(Normalize(code), s.Base, s.Manual, s.UseManual)
}

// Active returns the manual table when the switch is on and it has entries, otherwise the fetched table.
func (s Settings) Active() Table {
	if s.UseManual && len(s.Manual) > 0 {
		return s.Manual
	}
	return s.Base
}

// Convert converts amount between two currencies through Base, resolving each code
// under the override switch.
func (s Settings) Convert(amount float64, from, to string) (float64, error) {
	if Normalize(from) == Normalize(to) {
		return amount, nil
	}

	fromRate, err := s.Resolve(from)
	if err != nil {
		return 0, err
	}
	toRate, err := s.Resolve(to)
	if err != nil {
		return 0, err
	}

	return amount / fromRate * toRate, nil
}
