package quote

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Simplici0/freight/internal/freight"
)

// Sheet kinds match the calculation types.
const (
	KindSea     = "sea"
	KindAir     = "air"
	KindCompare = "compare"
	KindMulti   = "multi"
)

// Line is one label/value pair of a sheet.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Sheet is the flat, already translated content of an exported quote.
type Sheet struct {
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Currency       string    `json:"currency"`
	Date           time.Time `json:"date"`
	Lang           Lang      `json:"lang"`
	Inputs         []Line    `json:"inputs"`
	Results        []Line    `json:"results"`
	TransitTime    string    `json:"transitTime,omitempty"`
	ArrivalMessage string    `json:"arrivalMessage,omitempty"`
	PaymentMessage string    `json:"paymentMessage,omitempty"`
}

// Meta carries what every sheet needs besides the calculation itself.
// Destination is optional; without it no arrival or payment message is written.
type Meta struct {
	Currency    string
	Date        time.Time
	Lang        Lang
	Destination *Destination
}

func (m Meta) sheet(kind, title string) Sheet {
	return Sheet{Title: title, Type: kind, Currency: m.Currency, Date: m.Date, Lang: m.Lang}
}

func (m Meta) deliver(s *Sheet, mode freight.Mode, amount float64) {
	s.TransitTime = TransitLabel(mode, m.Lang)
	if m.Destination == nil {
		return
	}
	s.ArrivalMessage = ArrivalMessage(*m.Destination, mode, m.Lang)
	if total, err := freight.NewMoney(amount, m.Currency); err == nil {
		s.PaymentMessage = PaymentMessage(total, m.Lang)
	}
}

func (m Meta) money(v float64) string { return FormatMoney(v, m.Currency, m.Lang) }
func (m Meta) cm(v float64) string    { return FormatAmount(v, 2, m.Lang) + " cm" }
func (m Meta) kg(v float64) string    { return FormatAmount(v, 2, m.Lang) + " kg" }
func (m Meta) m3(v float64) string    { return FormatAmount(v, 4, m.Lang) + " m³" }

// SeaSheet describes a single sea-freight calculation.
func SeaSheet(m Meta, q freight.SeaQuote) Sheet {
	l := LabelsFor(m.Lang)
	s := m.sheet(KindSea, l.SeaTitle)
	s.Inputs = []Line{
		{l.CBMRate, m.money(q.CBMRate)},
		{l.Length, m.cm(q.Dimensions.Length)},
		{l.Width, m.cm(q.Dimensions.Width)},
		{l.Height, m.cm(q.Dimensions.Height)},
	}
	s.Results = []Line{
		{l.Volume, m.m3(q.Volume)},
		{l.TotalCost, m.money(q.Cost)},
	}
	m.deliver(&s, freight.ModeSea, q.Cost)
	return s
}

// AirSheet describes a single air-freight calculation.
func AirSheet(m Meta, q freight.AirQuote) Sheet {
	l := LabelsFor(m.Lang)
	s := m.sheet(KindAir, l.AirTitle)
	s.Inputs = []Line{
		{l.RatePerKg, m.money(q.PerKgRate)},
		{l.Weight, m.kg(q.Weight)},
	}
	s.Results = []Line{
		{l.TotalCost, m.money(q.Cost)},
	}
	m.deliver(&s, freight.ModeAir, q.Cost)
	return s
}

// CompareSheet describes a sea against air comparison. Delivery messages follow the winner.
func CompareSheet(m Meta, sea freight.SeaQuote, air freight.AirQuote, r freight.ComparisonResult) Sheet {
	l := LabelsFor(m.Lang)
	s := m.sheet(KindCompare, l.CompareTitle)
	s.Inputs = []Line{
		{l.CBMRate, m.money(sea.CBMRate)},
		{l.Length, m.cm(sea.Dimensions.Length)},
		{l.Width, m.cm(sea.Dimensions.Width)},
		{l.Height, m.cm(sea.Dimensions.Height)},
		{l.RatePerKg, m.money(air.PerKgRate)},
		{l.Weight, m.kg(air.Weight)},
	}
	s.Results = []Line{
		{l.Volume, m.m3(sea.Volume)},
		{l.ShipResult, m.money(r.SeaCost)},
		{l.PlaneResult, m.money(r.AirCost)},
		{l.Recommendation, modeName(r.Winner, l)},
		{l.Difference, m.money(r.Difference)},
		{l.Savings, FormatAmount(r.Savings, 2, m.Lang) + " %"},
		{l.Plane, "~" + strconv.Itoa(freight.TransitGapDays()) + " " + l.Days + " " + l.Faster},
	}
	cost := r.SeaCost
	if r.Winner == freight.ModeAir {
		cost = r.AirCost
	}
	m.deliver(&s, r.Winner, cost)
	return s
}

// MultiSheet describes a multi-package calculation. Rates <= 0 are left out.
// Delivery messages follow the cheaper mode when both rates are present.
func MultiSheet(m Meta, agg freight.Aggregate, seaRate, airRate float64) Sheet {
	l := LabelsFor(m.Lang)
	s := m.sheet(KindMulti, l.MultiTitle)

	if seaRate > 0 {
		s.Inputs = append(s.Inputs, Line{l.CBMRate, m.money(seaRate)})
	}
	if airRate > 0 {
		s.Inputs = append(s.Inputs, Line{l.RatePerKg, m.money(airRate)})
	}
	for _, p := range agg.Packages {
		var parts []string
		if p.Volume > 0 {
			parts = append(parts, m.m3(p.Volume))
		}
		if p.Weight > 0 {
			parts = append(parts, m.kg(p.Weight))
		}
		parts = append(parts, l.Quantity+" "+strconv.Itoa(p.Quantity))
		s.Inputs = append(s.Inputs, Line{fmt.Sprintf("%s #%d", l.Package, p.Position+1), strings.Join(parts, " · ")})
	}

	s.Results = []Line{
		{l.TotalPackages, strconv.Itoa(agg.Totals.Units)},
		{l.TotalVolume, m.m3(agg.Totals.Volume)},
		{l.TotalWeight, m.kg(agg.Totals.Weight)},
	}
	if seaRate > 0 {
		s.Results = append(s.Results, Line{l.ShipResult, m.money(agg.Totals.SeaCost)})
	}
	if airRate > 0 {
		s.Results = append(s.Results, Line{l.PlaneResult, m.money(agg.Totals.AirCost)})
	}

	switch {
	case seaRate > 0 && airRate > 0:
		r := agg.Cheaper()
		cost := r.SeaCost
		if r.Winner == freight.ModeAir {
			cost = r.AirCost
		}
		s.Results = append(s.Results, Line{l.Recommendation, modeName(r.Winner, l)})
		m.deliver(&s, r.Winner, cost)
	case seaRate > 0:
		m.deliver(&s, freight.ModeSea, agg.Totals.SeaCost)
	case airRate > 0:
		m.deliver(&s, freight.ModeAir, agg.Totals.AirCost)
	}
	return s
}

// FileName is the download name of the sheet, e.g. freight-sea-2026-10-18.txt.
func (s Sheet) FileName() string {
	return fmt.Sprintf("freight-%s-%s.txt", s.Type, s.Date.Format("2006-01-02"))
}

// WriteText renders the sheet as plain text.
func (s Sheet) WriteText(w io.Writer) error {
	l := LabelsFor(s.Lang)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, l.AppName)
	fmt.Fprintln(bw, s.Title)
	fmt.Fprintln(bw, s.Date.Format("02/01/2006 15:04"))
	fmt.Fprintf(bw, "%s: %s\n", l.Currency, s.Currency)

	writeSection(bw, l.Parameters, s.Inputs)
	writeSection(bw, l.Results, s.Results)

	if s.TransitTime != "" {
		fmt.Fprintf(bw, "\n%s: %s\n", l.TransitTime, s.TransitTime)
	}
	if s.ArrivalMessage != "" {
		fmt.Fprintf(bw, "\n%s\n", s.ArrivalMessage)
	}
	if s.PaymentMessage != "" {
		fmt.Fprintln(bw, s.PaymentMessage)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write quote sheet: %w", err)
	}
	return nil
}

func writeSection(w io.Writer, title string, lines []Line) {
	fmt.Fprintf(w, "\n%s\n", title)
	width := 0
	for _, line := range lines {
		if n := len([]rune(line.Label)); n > width {
			width = n
		}
	}
	for _, line := range lines {
		pad := width - len([]rune(line.Label))
		fmt.Fprintf(w, "  %s%s  %s\n", line.Label, strings.Repeat(" ", pad), line.Value)
	}
}
