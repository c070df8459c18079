package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/freight/internal/apperrors"
)

func TestResolveRate(t *testing.T) {
	table := Table{"EUR": 1, "USD": 1.08, "GBP": 0.86}
	overrides := Table{"USD": 1.1, "XOF": 655}

	tests := []struct {
		name         string
		code         string
		useOverrides bool
		want         float64
		wantErr      error
	}{
		{name: "base rate when overrides off", code: "USD", want: 1.08},
		{name: "override wins when on", code: "USD", useOverrides: true, want: 1.1},
		{name: "base fallback when override missing", code: "GBP", useOverrides: true, want: 0.86},
		{name: "override only code", code: "XOF", useOverrides: true, want: 655},
		{name: "override only code ignored when off", code: "XOF", wantErr: apperrors.ErrUnknownCurrency},
		{name: "unknown everywhere", code: "JPY", useOverrides: true, wantErr: apperrors.ErrUnknownCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRate(tt.code, table, overrides, tt.useOverrides)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultTableIsValid(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())
	for _, code := range Selectable {
		assert.Contains(t, table, code)
	}
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable("fcfa"))
	assert.True(t, IsSelectable(" CAD "))
	assert.False(t, IsSelectable("ZAR"))
	assert.False(t, IsSelectable(""))
}

func TestTableValidate(t *testing.T) {
	assert.ErrorIs(t, Table{"USD": 1.08}.Validate(), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, Table{"EUR": 2}.Validate(), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, Table{"EUR": 1, "USD": 0}.Validate(), apperrors.ErrInvalidInput)
	assert.NoError(t, Table{"EUR": 1, "USD": 1.08}.Validate())
}

func TestTableCloneIsIndependent(t *testing.T) {
	original := DefaultTable()
	clone := original.Clone()
	clone["USD"] = 99

	assert.Equal(t, 1.08, original["USD"])
	assert.Equal(t, []string{"CAD", "EUR", "FCFA", "GBP", "GHS", "KES", "MAD", "TND", "USD", "ZAR"}, original.Codes())
}

func TestSettingsConvert(t *testing.T) {
	s := DefaultSettings()

	got, err := s.Convert(100, "eur", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 108, got, 1e-9)

	got, err = s.Convert(1.08, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-9)

	got, err = s.Convert(42, "ABC", "abc")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	_, err = s.Convert(1, "EUR", "JPY")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestSettingsConvertUsesOverridesPerCode(t *testing.T) {
	s := DefaultSettings()
	s.Manual = Table{"FCFA": 650}
	s.UseManual = true

	got, err := s.Convert(10, "EUR", "FCFA")
	require.NoError(t, err)
	assert.InDelta(t, 6500, got, 1e-9)

	got, err = s.Convert(10, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 10.8, got, 1e-9)
}

func TestSettingsActive(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, s.Base, s.Active())

	s.UseManual = true
	assert.Equal(t, s.Base, s.Active(), "empty manual table falls back to fetched rates")

	s.Manual = Table{"EUR": 1, "USD": 1.2}
	assert.Equal(t, s.Manual, s.Active())
}
