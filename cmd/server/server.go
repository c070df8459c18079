package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"go.uber.org/zap"

	"github.com/Simplici0/freight/internal/history"
	"github.com/Simplici0/freight/internal/quote"
)

type server struct {
	log         *zap.Logger
	rates       rateStore
	refresher   rateRefresher
	history     history.Store
	builder     *history.Builder
	validate    *validator.Validate
	limiter     *limiter.Limiter
	defaultLang quote.Lang
	now         func() time.Time
}

func newServer(log *zap.Logger, rates rateStore, refresher rateRefresher, store history.Store, lim *limiter.Limiter, lang quote.Lang) *server {
	return &server{
		log:         log,
		rates:       rates,
		refresher:   refresher,
		history:     store,
		builder:     history.NewBuilder(),
		validate:    newValidator(),
		limiter:     lim,
		defaultLang: lang,
		now:         time.Now,
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit(s.limiter))
		}

		r.Post("/calc/{type}", s.handleCalc)
		r.Post("/quote/{type}", s.handleQuote)

		r.Get("/rates", s.handleRates)
		r.Get("/rates/{code}", s.handleRate)
		r.Put("/rates/manual", s.handleManualRates)
		r.Post("/rates/refresh", s.handleRefreshRates)
		r.Post("/convert", s.handleConvert)

		r.Get("/history", s.handleHistoryList)
		r.Delete("/history", s.handleHistoryClear)
		r.Get("/history/{id}", s.handleHistoryGet)
		r.Get("/history/{id}/quote", s.handleHistoryQuote)
		r.Delete("/history/{id}", s.handleHistoryDelete)

		r.Get("/destinations", s.handleDestinations)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type destinationResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (s *server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	lang := quote.ParseLang(r.URL.Query().Get("lang"), s.defaultLang)

	out := make([]destinationResponse, 0, len(quote.Destinations))
	for _, d := range quote.Destinations {
		out = append(out, destinationResponse{Code: d.Code, Name: d.Name, Label: d.Phrase(lang)})
	}
	s.writeJSON(w, http.StatusOK, out)
}
