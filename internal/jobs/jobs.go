// Package jobs tracks in-flight scoring jobs in memory. Jobs are transient:
// they only matter between the request that starts a scoring run and the
// polling requests that watch it finish, so the registry is not persisted
// and clears on restart.
package jobs

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of one scoring job.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Job is one background scoring run.
type Job struct {
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	URL         string    `json:"url"`
	CompanyName string    `json:"company_name,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Registry is a mutex-guarded job store. The zero value is not usable;
// construct with NewRegistry.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewRegistry returns an empty job registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]Job)}
}

// Create registers a new processing job for the given URL and returns it.
func (r *Registry) Create(url string) Job {
	job := Job{
		ID:        uuid.NewString(),
		Status:    StatusProcessing,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return job
}

// Complete marks a job completed and records the company it resolved to.
// Unknown IDs are ignored.
func (r *Registry) Complete(id, companyName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusCompleted
	job.CompanyName = companyName
	r.jobs[id] = job
}

// Fail marks a job failed with the given error message. Unknown IDs are
// ignored.
func (r *Registry) Fail(id, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusFailed
	job.Error = errMsg
	r.jobs[id] = job
}

// Get returns a job by ID.
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	return job, ok
}

// Processing returns the most recent in-flight job for a URL, if any. Used
// to avoid starting duplicate scoring runs for the same seed.
func (r *Registry) Processing(url string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest Job
	found := false
	for _, job := range r.jobs {
		if job.URL != url || job.Status != StatusProcessing {
			continue
		}
		if !found || job.CreatedAt.After(latest.CreatedAt) {
			latest = job
			found = true
		}
	}
	return latest, found
}
