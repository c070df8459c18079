package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *server) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.history.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
