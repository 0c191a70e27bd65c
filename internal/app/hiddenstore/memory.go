package hiddenstore

import (
	"context"
	"sync"
)

// Memory keeps the hidden-jobs set in process. Suitable for tests and
// single-instance deployments where losing the set on restart is
// acceptable.
type Memory struct {
	mu   sync.Mutex
	jobs map[string]struct{}
}

func CreateMemoryStore() *Memory {
	return &Memory{jobs: make(map[string]struct{})}
}

func (m *Memory) Load(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	jobIDs := make([]string, 0, len(m.jobs))
	for id := range m.jobs {
		jobIDs = append(jobIDs, id)
	}
	return jobIDs, nil
}

func (m *Memory) Add(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[jobID] = struct{}{}
	return nil
}
