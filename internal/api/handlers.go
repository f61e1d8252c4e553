package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/QTest-hq/sjavac/internal/parser"
	"github.com/QTest-hq/sjavac/internal/verifier"
)

// SourceRequest carries one s-Java source
type SourceRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// ClassifiedLine is one classified source line
type ClassifiedLine struct {
	Number int    `json:"number"`
	Kind   string `json:"kind"`
	Raw    string `json:"raw"`
}

// ClassifyResponse lists the kind of every line
type ClassifyResponse struct {
	Name  string           `json:"name"`
	Lines []ClassifiedLine `json:"lines"`
	Stats map[string]int   `json:"stats"`
}

func (s *Server) decodeSource(w http.ResponseWriter, r *http.Request) (*SourceRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxSourceBytes)

	var req SourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "source too large")
			return nil, false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if req.Name == "" {
		req.Name = "source" + verifier.Extension
	}
	return &req, true
}

// verify returns the report. Invalid programs are a successful request:
// the outcome is in the report status.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSource(w, r)
	if !ok {
		return
	}

	report := s.verifier.VerifySource(r.Context(), req.Name, strings.NewReader(req.Source))
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) classify(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSource(w, r)
	if !ok {
		return
	}

	parsed, err := s.verifier.ClassifySource(r.Context(), req.Name, strings.NewReader(req.Source))
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error": synErr.Error(),
				"line":  synErr.Line,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := ClassifyResponse{
		Name:  req.Name,
		Lines: make([]ClassifiedLine, 0, len(parsed.Lines)),
		Stats: make(map[string]int),
	}
	for _, l := range parsed.Lines {
		resp.Lines = append(resp.Lines, ClassifiedLine{Number: l.Number, Kind: l.Kind.String(), Raw: l.Raw})
	}
	for k, n := range parsed.Stats() {
		resp.Stats[k.String()] = n
	}
	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
