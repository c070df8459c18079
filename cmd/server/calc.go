package main

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Simplici0/freight/internal/apperrors"
	"github.com/Simplici0/freight/internal/freight"
	"github.com/Simplici0/freight/internal/history"
	"github.com/Simplici0/freight/internal/quote"
)

// calculation is a priced request, ready to be saved or rendered as a sheet.
type calculation struct {
	kind        history.Type
	currency    string
	destination *quote.Destination
	inputs      any
	results     any
	sheet       func(quote.Meta) quote.Sheet
}

type seaInputs struct {
	CBMRate float64 `json:"cbmRate"`
	freight.Dimensions
	Destination string `json:"destination,omitempty"`
}

type seaResults struct {
	Volume  float64                 `json:"volume"`
	Cost    float64                 `json:"cost"`
	Transit freight.TransitEstimate `json:"transit"`
}

type airInputs struct {
	RatePerKg   float64 `json:"ratePerKg"`
	Weight      float64 `json:"weight"`
	Destination string  `json:"destination,omitempty"`
}

type airResults struct {
	Cost    float64                 `json:"cost"`
	Transit freight.TransitEstimate `json:"transit"`
}

type compareInputs struct {
	CBMRate float64 `json:"cbmRate"`
	freight.Dimensions
	RatePerKg   float64 `json:"ratePerKg"`
	Weight      float64 `json:"weight"`
	Destination string  `json:"destination,omitempty"`
}

type compareResults struct {
	Volume float64 `json:"volume"`
	freight.ComparisonResult
	SeaTransit     freight.TransitEstimate `json:"seaTransit"`
	AirTransit     freight.TransitEstimate `json:"airTransit"`
	TransitGapDays int                     `json:"transitGapDays"`
}

type multiInputs struct {
	CBMRate     float64               `json:"cbmRate,omitempty"`
	RatePerKg   float64               `json:"ratePerKg,omitempty"`
	Packages    []freight.PackageSpec `json:"packages"`
	Destination string                `json:"destination,omitempty"`
}

type multiResults struct {
	freight.Aggregate
	Comparison *freight.ComparisonResult `json:"comparison,omitempty"`
}

func (s *server) handleCalc(w http.ResponseWriter, r *http.Request) {
	calc, err := s.readCalculation(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	inputs, err := toPayload(calc.inputs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	results, err := toPayload(calc.results)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.builder.Build(calc.kind, calc.currency, inputs, results)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.history.Insert(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Debug("calculation saved", zap.String("id", rec.ID), zap.String("type", string(rec.Type)))
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	calc, err := s.readCalculation(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSheet(w, r, calc, s.now())
}

// handleHistoryQuote renders a saved record as a quote sheet dated when it was saved.
func (s *server) handleHistoryQuote(w http.ResponseWriter, r *http.Request) {
	rec, err := s.history.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	calc, err := recordCalculation(rec)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSheet(w, r, calc, rec.CreatedAt)
}

func (s *server) writeSheet(w http.ResponseWriter, r *http.Request, calc calculation, date time.Time) {
	sheet := calc.sheet(quote.Meta{
		Currency:    calc.currency,
		Date:        date,
		Lang:        quote.ParseLang(r.URL.Query().Get("lang"), s.defaultLang),
		Destination: calc.destination,
	})

	var buf bytes.Buffer
	if err := sheet.WriteText(&buf); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sheet.FileName()))
	_, _ = w.Write(buf.Bytes())
}

func (s *server) readCalculation(r *http.Request) (calculation, error) {
	kind, err := history.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		return calculation{}, err
	}

	switch kind {
	case history.TypeSea:
		var req seaRequest
		if err := s.decodeJSON(r, &req); err != nil {
			return calculation{}, err
		}
		return calcSea(req)
	case history.TypeAir:
		var req airRequest
		if err := s.decodeJSON(r, &req); err != nil {
			return calculation{}, err
		}
		return calcAir(req)
	case history.TypeCompare:
		var req compareRequest
		if err := s.decodeJSON(r, &req); err != nil {
			return calculation{}, err
		}
		return calcCompare(req)
	default:
		var req multiRequest
		if err := s.decodeJSON(r, &req); err != nil {
			return calculation{}, err
		}
		return calcMulti(req)
	}
}

func quoteSea(cbmRate, length, width, height string) (freight.SeaQuote, error) {
	rate, err := parseNumber(cbmRate, "cbmRate")
	if err != nil {
		return freight.SeaQuote{}, err
	}
	dims, err := parseDimensions(length, width, height, "")
	if err != nil {
		return freight.SeaQuote{}, err
	}
	return freight.QuoteSea(dims, rate)
}

func quoteAir(ratePerKg, weight string) (freight.AirQuote, error) {
	rate, err := parseNumber(ratePerKg, "ratePerKg")
	if err != nil {
		return freight.AirQuote{}, err
	}
	w, err := parseNumber(weight, "weight")
	if err != nil {
		return freight.AirQuote{}, err
	}
	return freight.QuoteAir(w, rate)
}

func calcSea(req seaRequest) (calculation, error) {
	q, err := quoteSea(req.CBMRate, req.Length, req.Width, req.Height)
	if err != nil {
		return calculation{}, err
	}
	return seaCalculation(req.Currency, req.Destination, q)
}

func seaCalculation(cur, destination string, q freight.SeaQuote) (calculation, error) {
	dest, err := destinationFor(destination)
	if err != nil {
		return calculation{}, err
	}

	return calculation{
		kind:        history.TypeSea,
		currency:    cur,
		destination: dest,
		inputs:      seaInputs{CBMRate: q.CBMRate, Dimensions: q.Dimensions, Destination: destination},
		results:     seaResults{Volume: q.Volume, Cost: q.Cost, Transit: freight.Transit(freight.ModeSea)},
		sheet:       func(m quote.Meta) quote.Sheet { return quote.SeaSheet(m, q) },
	}, nil
}

func calcAir(req airRequest) (calculation, error) {
	q, err := quoteAir(req.RatePerKg, req.Weight)
	if err != nil {
		return calculation{}, err
	}
	return airCalculation(req.Currency, req.Destination, q)
}

func airCalculation(cur, destination string, q freight.AirQuote) (calculation, error) {
	dest, err := destinationFor(destination)
	if err != nil {
		return calculation{}, err
	}

	return calculation{
		kind:        history.TypeAir,
		currency:    cur,
		destination: dest,
		inputs:      airInputs{RatePerKg: q.PerKgRate, Weight: q.Weight, Destination: destination},
		results:     airResults{Cost: q.Cost, Transit: freight.Transit(freight.ModeAir)},
		sheet:       func(m quote.Meta) quote.Sheet { return quote.AirSheet(m, q) },
	}, nil
}

func calcCompare(req compareRequest) (calculation, error) {
	sea, err := quoteSea(req.CBMRate, req.Length, req.Width, req.Height)
	if err != nil {
		return calculation{}, err
	}
	air, err := quoteAir(req.RatePerKg, req.Weight)
	if err != nil {
		return calculation{}, err
	}
	return compareCalculation(req.Currency, req.Destination, sea, air)
}

func compareCalculation(cur, destination string, sea freight.SeaQuote, air freight.AirQuote) (calculation, error) {
	dest, err := destinationFor(destination)
	if err != nil {
		return calculation{}, err
	}

	cmp := freight.CompareQuotes(sea, air)

	return calculation{
		kind:        history.TypeCompare,
		currency:    cur,
		destination: dest,
		inputs: compareInputs{
			CBMRate:     sea.CBMRate,
			Dimensions:  sea.Dimensions,
			RatePerKg:   air.PerKgRate,
			Weight:      air.Weight,
			Destination: destination,
		},
		results: compareResults{
			Volume:           sea.Volume,
			ComparisonResult: cmp,
			SeaTransit:       freight.Transit(freight.ModeSea),
			AirTransit:       freight.Transit(freight.ModeAir),
			TransitGapDays:   freight.TransitGapDays(),
		},
		sheet: func(m quote.Meta) quote.Sheet { return quote.CompareSheet(m, sea, air, cmp) },
	}, nil
}

func calcMulti(req multiRequest) (calculation, error) {
	seaRate, err := parseOptionalNumber(req.CBMRate, "cbmRate")
	if err != nil {
		return calculation{}, err
	}
	airRate, err := parseOptionalNumber(req.RatePerKg, "ratePerKg")
	if err != nil {
		return calculation{}, err
	}

	specs := make([]freight.PackageSpec, 0, len(req.Packages))
	for i, p := range req.Packages {
		spec, err := parsePackage(p, i)
		if err != nil {
			return calculation{}, err
		}
		specs = append(specs, spec)
	}

	return multiCalculation(req.Currency, multiInputs{
		CBMRate:     seaRate,
		RatePerKg:   airRate,
		Packages:    specs,
		Destination: req.Destination,
	})
}

// multiCalculation refuses a batch in which no package can be priced.
func multiCalculation(cur string, in multiInputs) (calculation, error) {
	dest, err := destinationFor(in.Destination)
	if err != nil {
		return calculation{}, err
	}

	agg, err := freight.AggregatePackages(in.Packages, in.CBMRate, in.RatePerKg)
	if err != nil {
		return calculation{}, err
	}
	if len(agg.Packages) == 0 {
		return calculation{}, fmt.Errorf("%w: no valid package", apperrors.ErrInvalidInput)
	}

	results := multiResults{Aggregate: agg}
	if in.CBMRate > 0 && in.RatePerKg > 0 {
		cmp := agg.Cheaper()
		results.Comparison = &cmp
	}

	return calculation{
		kind:        history.TypeMulti,
		currency:    cur,
		destination: dest,
		inputs:      in,
		results:     results,
		sheet:       func(m quote.Meta) quote.Sheet { return quote.MultiSheet(m, agg, in.CBMRate, in.RatePerKg) },
	}, nil
}

// recordCalculation prices a saved record again from its stored inputs.
func recordCalculation(rec history.Record) (calculation, error) {
	switch rec.Type {
	case history.TypeSea:
		var in seaInputs
		if err := fromPayload(rec.Inputs, &in); err != nil {
			return calculation{}, err
		}
		q, err := freight.QuoteSea(in.Dimensions, in.CBMRate)
		if err != nil {
			return calculation{}, err
		}
		return seaCalculation(rec.Currency, in.Destination, q)
	case history.TypeAir:
		var in airInputs
		if err := fromPayload(rec.Inputs, &in); err != nil {
			return calculation{}, err
		}
		q, err := freight.QuoteAir(in.Weight, in.RatePerKg)
		if err != nil {
			return calculation{}, err
		}
		return airCalculation(rec.Currency, in.Destination, q)
	case history.TypeCompare:
		var in compareInputs
		if err := fromPayload(rec.Inputs, &in); err != nil {
			return calculation{}, err
		}
		sea, err := freight.QuoteSea(in.Dimensions, in.CBMRate)
		if err != nil {
			return calculation{}, err
		}
		air, err := freight.QuoteAir(in.Weight, in.RatePerKg)
		if err != nil {
			return calculation{}, err
		}
		return compareCalculation(rec.Currency, in.Destination, sea, air)
	case history.TypeMulti:
		var in multiInputs
		if err := fromPayload(rec.Inputs, &in); err != nil {
			return calculation{}, err
		}
		return multiCalculation(rec.Currency, in)
	default:
		return calculation{}, fmt.Errorf("%w: unknown calculation type %q", apperrors.ErrInvalidInput, rec.Type)
	}
}

// toPayload converts a typed value into the opaque map stored with history records.
func toPayload(v any) (history.Payload, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode history payload: %w", err)
	}
	var p history.Payload
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode history payload: %w", err)
	}
	return p, nil
}

// fromPayload decodes a stored payload back into its typed form.
func fromPayload(p history.Payload, v any) error {
	raw, err := sonic.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode history payload: %w", err)
	}
	if err := sonic.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode history payload: %w", err)
	}
	return nil
}
