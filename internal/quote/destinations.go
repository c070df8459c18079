package quote

import (
	"strconv"
	"strings"

	"github.com/Simplici0/freight/internal/freight"
)

// Destination is a delivery country with the preposition each language puts before its name.
type Destination struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	PrepFR string `json:"-"`
	PrepEN string `json:"-"`
	PrepES string `json:"-"`
}

// Destinations lists the supported delivery countries.
var Destinations = []Destination{
	{Code: "TG", Name: "Togo", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "BJ", Name: "Bénin", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "CI", Name: "Côte d'Ivoire", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "SN", Name: "Sénégal", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "CM", Name: "Cameroun", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "GH", Name: "Ghana", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "NG", Name: "Nigeria", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "ML", Name: "Mali", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "BF", Name: "Burkina Faso", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "NE", Name: "Niger", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "GA", Name: "Gabon", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "CG", Name: "Congo", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "CD", Name: "RD Congo", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "GN", Name: "Guinée", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "TD", Name: "Tchad", PrepFR: "au", PrepES: "a", PrepEN: "in"},
	{Code: "MR", Name: "Mauritanie", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "FR", Name: "France", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "DE", Name: "Allemagne", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "CN", Name: "Chine", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "TR", Name: "Turquie", PrepFR: "en", PrepES: "en", PrepEN: "in"},
	{Code: "AE", Name: "Émirats Arabes Unis", PrepFR: "aux", PrepES: "a los", PrepEN: "in"},
	{Code: "US", Name: "États-Unis", PrepFR: "aux", PrepES: "a", PrepEN: "in"},
}

// FindDestination looks a destination up by its two-letter code.
func FindDestination(code string) (Destination, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, d := range Destinations {
		if d.Code == code {
			return d, true
		}
	}
	return Destination{}, false
}

// Phrase returns the name preceded by its preposition, e.g. "au Togo".
func (d Destination) Phrase(lang Lang) string {
	switch lang {
	case LangEN:
		return d.PrepEN + " " + d.Name
	case LangES:
		return d.PrepES + " " + d.Name
	default:
		return d.PrepFR + " " + d.Name
	}
}

// TransitLabel renders a delivery window such as "30-45 jours".
func TransitLabel(mode freight.Mode, lang Lang) string {
	t := freight.Transit(mode)
	return strconv.Itoa(t.MinDays) + "-" + strconv.Itoa(t.MaxDays) + " " + LabelsFor(lang).Days
}

// ArrivalMessage tells when a shipment by mode reaches dest.
func ArrivalMessage(dest Destination, mode freight.Mode, lang Lang) string {
	l := LabelsFor(lang)
	return l.Arrival + " " + dest.Phrase(lang) + " " + l.Within + " " + TransitLabel(mode, lang) + " (" + modeName(mode, l) + ")"
}

// PaymentMessage states the amount due.
func PaymentMessage(total freight.Money, lang Lang) string {
	return LabelsFor(lang).Payment + " " + FormatMoney(total.Amount, total.Currency, lang)
}

func modeName(mode freight.Mode, l Labels) string {
	if mode == freight.ModeAir {
		return l.Plane
	}
	return l.Ship
}
