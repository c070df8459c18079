package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/freight/internal/currency"
)

type rateStore interface {
	Load(ctx context.Context) (currency.Settings, error)
	SaveManual(ctx context.Context, table currency.Table, useManual bool) error
}

type rateRefresher interface {
	Refresh(ctx context.Context) (currency.Table, error)
}

type ratesResponse struct {
	currency.Settings
	BaseCurrency string         `json:"base"`
	Active       currency.Table `json:"active"`
	Selectable   []string       `json:"selectable"`
}

type rateResponse struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

type convertResponse struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Result float64 `json:"result"`
}

func newRatesResponse(s currency.Settings) ratesResponse {
	if s.Manual == nil {
		s.Manual = currency.Table{}
	}
	return ratesResponse{
		Settings:     s,
		BaseCurrency: currency.Base,
		Active:       s.Active(),
		Selectable:   currency.Selectable,
	}
}

func (s *server) handleRates(w http.ResponseWriter, r *http.Request) {
	settings, err := s.rates.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newRatesResponse(settings))
}

func (s *server) handleRate(w http.ResponseWriter, r *http.Request) {
	settings, err := s.rates.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	code := currency.Normalize(chi.URLParam(r, "code"))
	rate, err := settings.Resolve(code)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rateResponse{Code: code, Rate: rate})
}

func (s *server) handleManualRates(w http.ResponseWriter, r *http.Request) {
	var req manualRatesRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	table, err := parseManualRates(req.Rates)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.rates.SaveManual(r.Context(), table, req.UseManual); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.handleRates(w, r)
}

func (s *server) handleRefreshRates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.writeErrorStatus(w, r, http.StatusBadGateway, fmt.Errorf("refresh exchange rates: %w", err))
		return
	}

	s.handleRates(w, r)
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	amount, err := parseNonNegative(req.Amount, "amount")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	settings, err := s.rates.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := settings.Convert(amount, req.From, req.To)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, convertResponse{Amount: amount, From: req.From, To: req.To, Result: result})
}
