package freight

import (
	"errors"
	"math"
	"testing"

	"github.com/Simplici0/freight/internal/apperrors"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestVolume_MatchesFormula(t *testing.T) {
	cases := []struct{ l, w, h float64 }{
		{150, 55, 63.5},
		{100, 50, 50},
		{1, 1, 1},
		{0.5, 2000, 3},
	}
	for _, c := range cases {
		nearlyEqual(t, "volume", Volume(c.l, c.w, c.h), c.l*c.w*c.h/1_000_000)
	}
}

func TestVolume_IncreasesWithEachDimension(t *testing.T) {
	base := Volume(10, 20, 30)
	if Volume(11, 20, 30) <= base {
		t.Fatalf("volume did not increase with length")
	}
	if Volume(10, 21, 30) <= base {
		t.Fatalf("volume did not increase with width")
	}
	if Volume(10, 20, 31) <= base {
		t.Fatalf("volume did not increase with height")
	}
}

func TestQuoteSea_Crate(t *testing.T) {
	q, err := QuoteSea(Dimensions{Length: 150, Width: 55, Height: 63.5}, 210000)
	if err != nil {
		t.Fatalf("QuoteSea: %v", err)
	}

	nearlyEqual(t, "volume", q.Volume, 0.523875)
	nearlyEqual(t, "cost", q.Cost, 110013.75)
}

func TestQuoteSea_RejectsInvalidInput(t *testing.T) {
	if _, err := QuoteSea(Dimensions{Length: 150, Width: 0, Height: 63.5}, 210000); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero width, got %v", err)
	}
	if _, err := QuoteSea(Dimensions{Length: 150, Width: 55, Height: 63.5}, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero rate, got %v", err)
	}
}

func TestQuoteAir_WeightTimesRate(t *testing.T) {
	q, err := QuoteAir(25, 3000)
	if err != nil {
		t.Fatalf("QuoteAir: %v", err)
	}
	nearlyEqual(t, "cost", q.Cost, 75000)

	if _, err := QuoteAir(-1, 3000); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative weight, got %v", err)
	}
}

func TestNewMoney_RejectsNegative(t *testing.T) {
	if _, err := NewMoney(-0.01, "EUR"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	m, err := NewMoney(12.5, "FCFA")
	if err != nil {
		t.Fatalf("NewMoney: %v", err)
	}
	if m.Amount != 12.5 || m.Currency != "FCFA" {
		t.Fatalf("unexpected money: %+v", m)
	}
}

func TestTransitGapDays(t *testing.T) {
	if got := TransitGapDays(); got != 33 {
		t.Fatalf("TransitGapDays = %d, want 33", got)
	}
	if sea := Transit(ModeSea); sea.MinDays != 30 || sea.MaxDays != 45 {
		t.Fatalf("unexpected sea window: %+v", sea)
	}
}
