package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/freight/internal/freight"
)

var sheetDate = time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)

func TestDestinations(t *testing.T) {
	assert.Len(t, Destinations, 22)

	togo, ok := FindDestination("tg")
	require.True(t, ok)
	assert.Equal(t, "au Togo", togo.Phrase(LangFR))
	assert.Equal(t, "a Togo", togo.Phrase(LangES))
	assert.Equal(t, "in Togo", togo.Phrase(LangEN))

	uae, ok := FindDestination("AE")
	require.True(t, ok)
	assert.Equal(t, "a los Émirats Arabes Unis", uae.Phrase(LangES))

	_, ok = FindDestination("XX")
	assert.False(t, ok)
}

func TestArrivalMessage(t *testing.T) {
	togo, _ := FindDestination("TG")

	assert.Equal(t, "Votre colis arrivera au Togo dans 30-45 jours (Bateau)", ArrivalMessage(togo, freight.ModeSea, LangFR))
	assert.Equal(t, "Your package will arrive in Togo within 3-7 days (Plane)", ArrivalMessage(togo, freight.ModeAir, LangEN))
}

func TestSeaSheet(t *testing.T) {
	q, err := freight.QuoteSea(freight.Dimensions{Length: 150, Width: 55, Height: 63.5}, 210000)
	require.NoError(t, err)
	senegal, _ := FindDestination("SN")

	s := SeaSheet(Meta{Currency: "FCFA", Date: sheetDate, Lang: LangFR, Destination: &senegal}, q)

	assert.Equal(t, KindSea, s.Type)
	assert.Equal(t, "Calcul Bateau (CBM)", s.Title)
	assert.Equal(t, Line{"Hauteur", "63,50 cm"}, s.Inputs[3])
	assert.Equal(t, []Line{{"Volume", "0,5239 m³"}, {"Coût total", "110 013,75 FCFA"}}, s.Results)
	assert.Equal(t, "30-45 jours", s.TransitTime)
	assert.Equal(t, "Votre colis arrivera au Sénégal dans 30-45 jours (Bateau)", s.ArrivalMessage)
	assert.Equal(t, "Montant à payer : 110 013,75 FCFA", s.PaymentMessage)
	assert.Equal(t, "freight-sea-2026-10-18.txt", s.FileName())
}

func TestAirSheetWithoutDestination(t *testing.T) {
	q, err := freight.QuoteAir(25, 3000)
	require.NoError(t, err)

	s := AirSheet(Meta{Currency: "EUR", Date: sheetDate, Lang: LangEN}, q)

	assert.Equal(t, []Line{{"Total cost", "75,000.00 EUR"}}, s.Results)
	assert.Equal(t, "3-7 days", s.TransitTime)
	assert.Empty(t, s.ArrivalMessage)
	assert.Empty(t, s.PaymentMessage)
}

func TestPaymentMessageNeedsCurrency(t *testing.T) {
	q, err := freight.QuoteAir(25, 3000)
	require.NoError(t, err)
	togo, _ := FindDestination("TG")

	s := AirSheet(Meta{Date: sheetDate, Lang: LangEN, Destination: &togo}, q)

	assert.NotEmpty(t, s.ArrivalMessage)
	assert.Empty(t, s.PaymentMessage)
	assert.Equal(t, "Monto a pagar: 1.250,50 USD", PaymentMessage(freight.Money{Amount: 1250.5, Currency: "USD"}, LangES))
}

func TestCompareSheetFollowsWinner(t *testing.T) {
	sea, err := freight.QuoteSea(freight.Dimensions{Length: 150, Width: 55, Height: 63.5}, 210000)
	require.NoError(t, err)
	air, err := freight.QuoteAir(25, 3000)
	require.NoError(t, err)
	ghana, _ := FindDestination("GH")

	s := CompareSheet(Meta{Currency: "FCFA", Date: sheetDate, Lang: LangEN, Destination: &ghana}, sea, air, freight.CompareQuotes(sea, air))

	assert.Contains(t, s.Results, Line{"Recommendation", "Plane"})
	assert.Contains(t, s.Results, Line{"Difference", "35,013.75 FCFA"})
	assert.Equal(t, "3-7 days", s.TransitTime)
	assert.Equal(t, "Amount to pay: 75,000.00 FCFA", s.PaymentMessage)
}

func TestMultiSheet(t *testing.T) {
	agg, err := freight.AggregatePackages([]freight.PackageSpec{
		{Dimensions: &freight.Dimensions{Length: 100, Width: 50, Height: 50}, Quantity: 2},
		{Weight: 10, Quantity: 3},
	}, 200000, 5000)
	require.NoError(t, err)

	s := MultiSheet(Meta{Currency: "FCFA", Date: sheetDate, Lang: LangES}, agg, 200000, 5000)

	assert.Equal(t, KindMulti, s.Type)
	assert.Contains(t, s.Inputs, Line{"Paquete #1", "0,5000 m³ · Cantidad 2"})
	assert.Contains(t, s.Inputs, Line{"Paquete #2", "30,00 kg · Cantidad 3"})
	assert.Contains(t, s.Results, Line{"Total paquetes", "5"})
	assert.Contains(t, s.Results, Line{"Recomendación", "Barco"})
	assert.Equal(t, "30-45 días", s.TransitTime)
}

func TestWriteText(t *testing.T) {
	q, err := freight.QuoteAir(25, 3000)
	require.NoError(t, err)
	togo, _ := FindDestination("TG")

	var b strings.Builder
	require.NoError(t, AirSheet(Meta{Currency: "FCFA", Date: sheetDate, Lang: LangFR, Destination: &togo}, q).WriteText(&b))

	out := b.String()
	assert.True(t, strings.HasPrefix(out, "Freight-Calculator\nCalcul Avion (Poids)\n18/10/2026 14:05\n"))
	assert.Contains(t, out, "  Tarif/kg  3 000,00 FCFA\n")
	assert.Contains(t, out, "  Poids     25,00 kg\n")
	assert.Contains(t, out, "Temps de transit: 3-7 jours")
	assert.Contains(t, out, "Votre colis arrivera au Togo dans 3-7 jours (Avion)")
}
