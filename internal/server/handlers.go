package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/autocomplete"
	"github.com/Mohammed-Abed-Alkareem/LLM-Institution-Profiler-sub001/internal/models"
)

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	query := &models.SuggestionQuery{
		Query: r.URL.Query().Get("q"),
		Limit: parseIntParam(r, "limit"),
	}
	if v := r.URL.Query().Get("spell"); v != "" {
		enabled := v != "false" && v != "0"
		query.SpellCorrection = &enabled
	}
	s.logger.Debug("autocomplete request", zap.String("query", query.Query), zap.Int("limit", query.Limit))

	result, err := s.engine.GetSuggestions(query)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSpellCorrections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := parseIntParam(r, "limit")
	s.logger.Debug("spell corrections request", zap.String("query", q), zap.Int("limit", limit))

	candidates, err := s.engine.GetSpellCorrections(q, limit)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":      q,
		"candidates": candidates,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.engine.Stats())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	report, err := s.engine.Reload()
	if err != nil {
		s.logger.Error("reload failed", zap.Error(err))
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error":  "reload failed: no sources loaded",
			"report": report,
		})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "reloaded",
		"report": report,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondEngineError maps typed engine errors to stable status codes.
func (s *Server) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autocomplete.ErrEngineUnavailable):
		s.respondError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, autocomplete.ErrQueryTooLong):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("query failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func parseIntParam(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
