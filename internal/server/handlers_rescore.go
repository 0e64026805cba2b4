package server

import (
	"encoding/json"
	"net/http"
	"net/url"
)

type rescoreRequest struct {
	CompanyName  string   `json:"company_name"`
	Domain       string   `json:"domain,omitempty"`
	EvidenceURLs []string `json:"evidence_urls"`
}

func (req *rescoreRequest) validate() error {
	if req.CompanyName == "" {
		return &ErrValidation{Field: "company_name", Message: "company_name is required"}
	}
	if len(req.EvidenceURLs) == 0 {
		return &ErrValidation{Field: "evidence_urls", Message: "at least one evidence URL is required"}
	}
	for _, raw := range req.EvidenceURLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &ErrValidation{Field: "evidence_urls", Message: "each evidence URL must be an absolute http(s) URL"}
		}
	}
	return nil
}

// handleRescore recomputes a company's score from operator-supplied
// evidence URLs. Runs synchronously and returns the new score.
func (s *Server) handleRescore(w http.ResponseWriter, r *http.Request) {
	var req rescoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.harvester.HarvestURLs(r.Context(), req.EvidenceURLs)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Harvest failed: "+err.Error())
		return
	}

	// Operator-supplied identity wins over what the harvest derived.
	result.CompanyName = req.CompanyName
	if req.Domain != "" {
		result.RootDomain = req.Domain
	}

	signals := s.analyzer.Analyze(result.Segments)
	score := s.calculator.Calculate(result.CompanyName, signals)

	if err := s.persistScore(r.Context(), result, score); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to persist score: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}
