package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dutchdutchdutch/signalscore/internal/harvest"
	"github.com/dutchdutchdutch/signalscore/internal/scoring"
	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

type scoreRequest struct {
	URL string `json:"url"`
}

func (req *scoreRequest) validate() error {
	if req.URL == "" {
		return &ErrValidation{Field: "url", Message: "url is required"}
	}
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ErrValidation{Field: "url", Message: "url must be an absolute http(s) URL"}
	}
	return nil
}

// handleCreateScore accepts a company URL and starts an asynchronous
// harvest-and-score run. Responds immediately with a job ID.
func (s *Server) handleCreateScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// An in-flight run for the same URL is returned instead of starting
	// a duplicate crawl.
	if existing, ok := s.jobs.Processing(req.URL); ok {
		s.jsonResponse(w, http.StatusAccepted, map[string]any{
			"job_id": existing.ID,
			"status": existing.Status,
		})
		return
	}

	job := s.jobs.Create(req.URL)
	go s.runScore(job.ID, req.URL)

	s.jsonResponse(w, http.StatusAccepted, map[string]any{
		"job_id": job.ID,
		"status": job.Status,
	})
}

// runScore executes one harvest-and-score run in the background.
func (s *Server) runScore(jobID, seedURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.scoreTimeout)
	defer cancel()

	result, err := s.harvester.Harvest(ctx, seedURL)
	if err != nil {
		log.Printf("[SCORE] Harvest failed for %s: %v", seedURL, err)
		s.jobs.Fail(jobID, err.Error())
		return
	}

	signals := s.analyzer.Analyze(result.Segments)
	score := s.calculator.Calculate(result.CompanyName, signals)

	// Persistence is best-effort: a storage failure does not fail the run.
	if err := s.persistScore(ctx, result, score); err != nil {
		log.Printf("[SCORE] Failed to persist score for %s: %v", result.CompanyName, err)
	}

	s.jobs.Complete(jobID, result.CompanyName)
	log.Printf("[SCORE] %s scored %.1f (%s)", result.CompanyName, score.Score, score.CategoryLabel)
}

func (s *Server) persistScore(ctx context.Context, result *harvest.Result, score scoring.CompanyScore) error {
	if s.db == nil {
		return nil
	}

	// The first job-posting page found stands in as the careers URL.
	careersURL := ""
	for _, src := range result.Sources {
		if src.Label == sources.JobPosting || src.Label == sources.JobPostingVerified {
			careersURL = src.URL
			break
		}
	}

	company, err := s.db.GetOrCreateCompany(ctx, result.CompanyName, result.RootDomain, careersURL)
	if err != nil {
		return fmt.Errorf("get or create company: %w", err)
	}
	if _, err := s.db.SaveScore(ctx, company.ID, score); err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	records := make(map[string]sources.Label, len(result.Sources))
	for _, src := range result.Sources {
		records[src.URL] = src.Label
	}
	if err := s.db.SaveCompanySources(ctx, company.ID, records); err != nil {
		return fmt.Errorf("save sources: %w", err)
	}

	return nil
}

// handleGetScore returns the latest score for a company domain.
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	domain := r.PathValue("domain")

	company, err := s.db.GetCompanyByDomain(r.Context(), domain)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	record, err := s.db.LatestScore(r.Context(), company.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "No score recorded for company")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company": company,
		"score":   record,
	})
}

// handleScoreHistory lists past scores for a company domain.
func (s *Server) handleScoreHistory(w http.ResponseWriter, r *http.Request) {
	domain := r.PathValue("domain")
	limit := parseQueryInt(r, "limit", 20, 100)

	company, err := s.db.GetCompanyByDomain(r.Context(), domain)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	records, err := s.db.ListScores(r.Context(), company.ID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company": company,
		"scores":  records,
	})
}

// handleListSources lists the pages that contributed to a company's score.
func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	domain := r.PathValue("domain")

	company, err := s.db.GetCompanyByDomain(r.Context(), domain)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "Company not found")
		return
	}

	records, err := s.db.ListCompanySources(r.Context(), company.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company": company,
		"sources": records,
	})
}

// handleListCompanies lists scored companies.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 200)

	companies, err := s.db.ListCompanies(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}
