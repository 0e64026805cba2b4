package server

import "net/http"

// handleGetJob returns the status of an asynchronous scoring run.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	job, ok := s.jobs.Get(id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}
