package quote

// Labels holds the translated strings a quote sheet needs.
type Labels struct {
	AppName string

	SeaTitle     string
	AirTitle     string
	CompareTitle string
	MultiTitle   string

	Parameters string
	Results    string

	Currency  string
	CBMRate   string
	RatePerKg string
	Length    string
	Width     string
	Height    string
	Weight    string
	Volume    string
	TotalCost string

	Ship           string
	Plane          string
	ShipResult     string
	PlaneResult    string
	Recommendation string
	Difference     string
	Savings        string
	Faster         string

	Package       string
	Quantity      string
	TotalPackages string
	TotalVolume   string
	TotalWeight   string

	TransitTime string
	Days        string
	Arrival     string
	Within      string
	Payment     string
}

var catalog = map[Lang]Labels{
	LangFR: {
		AppName:        "Freight-Calculator",
		SeaTitle:       "Calcul Bateau (CBM)",
		AirTitle:       "Calcul Avion (Poids)",
		CompareTitle:   "Comparaison Bateau vs Avion",
		MultiTitle:     "Calcul Multi-colis",
		Parameters:     "Paramètres",
		Results:        "Résultats",
		Currency:       "Devise",
		CBMRate:        "Tarif CBM",
		RatePerKg:      "Tarif/kg",
		Length:         "Longueur",
		Width:          "Largeur",
		Height:         "Hauteur",
		Weight:         "Poids",
		Volume:         "Volume",
		TotalCost:      "Coût total",
		Ship:           "Bateau",
		Plane:          "Avion",
		ShipResult:     "Résultat Bateau",
		PlaneResult:    "Résultat Avion",
		Recommendation: "Recommandation",
		Difference:     "Différence",
		Savings:        "Économie",
		Faster:         "plus rapide",
		Package:        "Colis",
		Quantity:       "Quantité",
		TotalPackages:  "Total colis",
		TotalVolume:    "Volume total",
		TotalWeight:    "Poids total",
		TransitTime:    "Temps de transit",
		Days:           "jours",
		Arrival:        "Votre colis arrivera",
		Within:         "dans",
		Payment:        "Montant à payer :",
	},
	LangEN: {
		AppName:        "Freight-Calculator",
		SeaTitle:       "Ship Calculation (CBM)",
		AirTitle:       "Plane Calculation (Weight)",
		CompareTitle:   "Ship vs Plane Comparison",
		MultiTitle:     "Multi-package Calculation",
		Parameters:     "Parameters",
		Results:        "Results",
		Currency:       "Currency",
		CBMRate:        "CBM rate",
		RatePerKg:      "Rate/kg",
		Length:         "Length",
		Width:          "Width",
		Height:         "Height",
		Weight:         "Weight",
		Volume:         "Volume",
		TotalCost:      "Total cost",
		Ship:           "Ship",
		Plane:          "Plane",
		ShipResult:     "Ship Result",
		PlaneResult:    "Plane Result",
		Recommendation: "Recommendation",
		Difference:     "Difference",
		Savings:        "Savings",
		Faster:         "faster",
		Package:        "Package",
		Quantity:       "Quantity",
		TotalPackages:  "Total packages",
		TotalVolume:    "Total volume",
		TotalWeight:    "Total weight",
		TransitTime:    "Transit time",
		Days:           "days",
		Arrival:        "Your package will arrive",
		Within:         "within",
		Payment:        "Amount to pay:",
	},
	LangES: {
		AppName:        "Freight-Calculator",
		SeaTitle:       "Cálculo Barco (CBM)",
		AirTitle:       "Cálculo Avión (Peso)",
		CompareTitle:   "Comparación Barco vs Avión",
		MultiTitle:     "Cálculo Multi-paquete",
		Parameters:     "Parámetros",
		Results:        "Resultados",
		Currency:       "Moneda",
		CBMRate:        "Tarifa CBM",
		RatePerKg:      "Tarifa/kg",
		Length:         "Largo",
		Width:          "Ancho",
		Height:         "Alto",
		Weight:         "Peso",
		Volume:         "Volumen",
		TotalCost:      "Costo total",
		Ship:           "Barco",
		Plane:          "Avión",
		ShipResult:     "Resultado Barco",
		PlaneResult:    "Resultado Avión",
		Recommendation: "Recomendación",
		Difference:     "Diferencia",
		Savings:        "Ahorro",
		Faster:         "más rápido",
		Package:        "Paquete",
		Quantity:       "Cantidad",
		TotalPackages:  "Total paquetes",
		TotalVolume:    "Volumen total",
		TotalWeight:    "Peso total",
		TransitTime:    "Tiempo de tránsito",
		Days:           "días",
		Arrival:        "Su paquete llegará",
		Within:         "en",
		Payment:        "Monto a pagar:",
	},
}

// LabelsFor returns the catalog for lang, French when lang is unknown.
func LabelsFor(lang Lang) Labels {
	if l, ok := catalog[lang]; ok {
		return l
	}
	return catalog[LangFR]
}
