package status

import (
	"sync"
	"time"
)

type Worker struct {
	Running     bool       `json:"running"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Restarts    int        `json:"restarts"`
	LastError   string     `json:"last_error,omitempty"`
	LastErrorAt *time.Time `json:"last_error_at,omitempty"`
}

// Status is written by the workers and read by the status endpoint.
type Status struct {
	mu      sync.RWMutex
	now     func() time.Time
	workers map[string]*Worker
}

func New() *Status {
	return &Status{
		now:     time.Now,
		workers: make(map[string]*Worker),
	}
}

func (s *Status) worker(name string) *Worker {
	w, ok := s.workers[name]
	if !ok {
		w = &Worker{}
		s.workers[name] = w
	}
	return w
}

// Started marks the worker as running. Every start after the first one
// counts as a restart.
func (s *Status) Started(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.worker(name)
	if w.StartedAt != nil {
		w.Restarts++
	}
	now := s.now()
	w.StartedAt = &now
	w.Running = true
}

func (s *Status) Stopped(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.worker(name)
	w.Running = false
	if err != nil {
		now := s.now()
		w.LastError = err.Error()
		w.LastErrorAt = &now
	}
}

func (s *Status) Snapshot() map[string]Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]Worker, len(s.workers))
	for name, w := range s.workers {
		snapshot[name] = *w
	}
	return snapshot
}

// Healthy reports whether every known worker is running.
func (s *Status) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.workers {
		if !w.Running {
			return false
		}
	}
	return true
}
