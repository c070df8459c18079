package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int32
		lang     Lang
		want     string
	}{
		{109286.25, 2, LangFR, "109 286,25"},
		{109286.25, 2, LangEN, "109,286.25"},
		{109286.25, 2, LangES, "109.286,25"},
		{0.523875, 4, LangFR, "0,5239"},
		{0.523875, 4, LangEN, "0.5239"},
		{1234567.891, 2, LangEN, "1,234,567.89"},
		{999, 2, LangFR, "999,00"},
		{1000, 0, LangEN, "1,000"},
		{-75000, 2, LangEN, "-75,000.00"},
		{-0.001, 2, LangEN, "0.00"},
		{31.3735, 2, Lang("de"), "31,37"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.value, tt.decimals, tt.lang), "FormatAmount(%v, %d, %s)", tt.value, tt.decimals, tt.lang)
	}
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, LangEN, ParseLang(" EN ", LangFR))
	assert.Equal(t, LangES, ParseLang("es", LangFR))
	assert.Equal(t, LangFR, ParseLang("pt", LangFR))
	assert.Equal(t, LangEN, ParseLang("", LangEN))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "75 000,00 FCFA", FormatMoney(75000, "FCFA", LangFR))
}
