package server

import (
	"encoding/json"
	"net/http"
)

// handleProfile serves the validated profile document.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.rawJSONResponse(w, s.contentDB.Profile())
}

// handleCaseStudies serves the validated case studies document.
func (s *Server) handleCaseStudies(w http.ResponseWriter, _ *http.Request) {
	s.rawJSONResponse(w, s.contentDB.CaseStudies())
}

// handleMetrics serves the validated metrics document.
func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	s.rawJSONResponse(w, s.contentDB.Metrics())
}

// rawJSONResponse writes a pre-validated raw JSON document.
func (s *Server) rawJSONResponse(w http.ResponseWriter, doc json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
