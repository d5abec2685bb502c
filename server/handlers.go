package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/revelaction/lesk/render"
)

// maxBodySize bounds the disambiguate request body.
const maxBodySize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type disambiguateRequest struct {
	Sentence string `json:"sentence"`
	Word     string `json:"word"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleDisambiguate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req disambiguateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with a 'sentence' field")
		return
	}

	results, err := s.pipeline.Disambiguate(r.Context(), req.Sentence, req.Word)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, render.ResultsDoc{Sentence: req.Sentence, Results: results})
}

func (s *Server) handleSenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	word := r.URL.Query().Get("word")
	tokens := s.pipeline.Tokenize(word)
	if len(tokens) != 1 {
		writeError(w, http.StatusBadRequest, "'word' query parameter must be a single word")
		return
	}

	senses, err := s.kb.Senses(r.Context(), tokens[0].Text)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, render.SensesDoc{Word: tokens[0].Text, Senses: senses})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		writeError(w, http.StatusServiceUnavailable, "request canceled")
		return
	}

	s.log.Error("request failed",
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
