package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Lang selects the language of labels and number formatting.
type Lang string

const (
	LangFR Lang = "fr"
	LangEN Lang = "en"
	LangES Lang = "es"
)

// ParseLang returns the language for s, or fallback when s is not supported.
func ParseLang(s string, fallback Lang) Lang {
	switch l := Lang(strings.ToLower(strings.TrimSpace(s))); l {
	case LangFR, LangEN, LangES:
		return l
	}
	return fallback
}

type separators struct {
	group   string
	decimal string
}

var numberFormats = map[Lang]separators{
	LangFR: {group: " ", decimal: ","},
	LangEN: {group: ",", decimal: "."},
	LangES: {group: ".", decimal: ","},
}

// FormatAmount rounds value half away from zero to decimals places and groups thousands the way lang writes numbers.
func FormatAmount(value float64, decimals int32, lang Lang) string {
	sep, ok := numberFormats[lang]
	if !ok {
		sep = numberFormats[LangFR]
	}

	fixed := decimal.NewFromFloat(value).StringFixed(decimals)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if strings.Trim(intPart+fracPart, "0") == "" {
		sign = ""
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(sep.group)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(sep.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatMoney formats an amount with two decimals followed by its currency code.
func FormatMoney(value float64, currency string, lang Lang) string {
	return FormatAmount(value, 2, lang) + " " + currency
}
