package orchestrator

import (
	"fmt"
	"sync"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"go.uber.org/zap"
)

// Tracker owns the job-set state for one restoration request. Apply is
// driven by the single restore loop goroutine; Snapshot may be called
// concurrently by HTTP readers.
//
// Terminal job states are idempotent: duplicate completion or failure
// events for an already-terminal job are silently ignored, which makes
// redundant delivery across the service's event channels safe.
type Tracker struct {
	mu sync.RWMutex

	requestID string
	jobs      []models.RestorationJob
	results   []string

	// direct marks jobs that have received at least one per-job
	// event; coarse request-level progress applies only before that.
	direct []bool
	coarse float64

	completedCount int
	failedCount    int
	firstJobErr    error
	requestErr     error
}

// NewTracker seeds n placeholder jobs, all generating at progress 0,
// with deterministic display ids so callers can render slots before
// any event arrives.
func NewTracker(requestID string, n int) *Tracker {
	t := &Tracker{
		requestID: requestID,
		jobs:      make([]models.RestorationJob, n),
		results:   make([]string, n),
		direct:    make([]bool, n),
	}
	for i := range t.jobs {
		t.jobs[i] = models.RestorationJob{
			ID:         fmt.Sprintf("%s-%d", requestID, i),
			Index:      i,
			Generating: true,
		}
	}
	return t
}

// Apply folds one canonical event into the job-set state.
func (t *Tracker) Apply(ev models.CanonicalEvent) {
	const funcName = "Tracker.Apply"

	t.mu.Lock()
	defer t.mu.Unlock()

	if ev.Scope == models.ScopeRequest {
		t.applyRequestScoped(ev)
		return
	}

	if ev.JobIndex < 0 || ev.JobIndex >= len(t.jobs) {
		return
	}
	job := &t.jobs[ev.JobIndex]

	switch ev.Kind {
	case models.EventProgress:
		if !job.Generating {
			return
		}
		t.direct[ev.JobIndex] = true
		if ev.Progress > job.Progress {
			job.Progress = ev.Progress
		}
		if ev.ETASeconds > 0 {
			job.ETASeconds = ev.ETASeconds
		}

	case models.EventCompleted:
		if !job.Generating {
			return
		}
		job.Generating = false
		job.Progress = 1
		job.ResultURL = ev.ResultURL
		job.ETASeconds = 0
		t.direct[ev.JobIndex] = true
		t.results[ev.JobIndex] = ev.ResultURL
		t.completedCount++
		logger.Debug("job completed",
			zap.String("function", funcName),
			zap.String("request_id", t.requestID),
			zap.Int("job_index", ev.JobIndex),
			zap.Int("completed", t.completedCount),
			zap.Int("total", len(t.jobs)),
		)

	case models.EventFailed:
		if !job.Generating {
			return
		}
		job.Generating = false
		job.Error = ev.Err.Error()
		job.ETASeconds = 0
		t.direct[ev.JobIndex] = true
		t.failedCount++
		if t.firstJobErr == nil {
			t.firstJobErr = ev.Err
		}
		logger.Warn("job failed",
			zap.String("function", funcName),
			zap.String("request_id", t.requestID),
			zap.Int("job_index", ev.JobIndex),
			zap.String("error", job.Error),
		)
	}
}

func (t *Tracker) applyRequestScoped(ev models.CanonicalEvent) {
	switch ev.Kind {
	case models.EventProgress:
		if ev.Progress > t.coarse {
			t.coarse = ev.Progress
		}
	case models.EventFailed:
		if t.requestErr == nil {
			t.requestErr = ev.Err
		}
	}
}

// Snapshot returns a copy of the job set with aggregate counters. The
// copy is safe to hand to renderers; mutating it has no effect on the
// tracker.
func (t *Tracker) Snapshot() ([]models.RestorationJob, int, int, float64, float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	jobs := make([]models.RestorationJob, len(t.jobs))
	copy(jobs, t.jobs)

	var sum, eta float64
	for i := range jobs {
		if jobs[i].Generating && !t.direct[i] && t.coarse > jobs[i].Progress {
			jobs[i].Progress = t.coarse
		}
		sum += jobs[i].Progress
		if jobs[i].ETASeconds > eta {
			eta = jobs[i].ETASeconds
		}
	}

	overall := 0.0
	if len(jobs) > 0 {
		overall = sum / float64(len(jobs))
	}
	return jobs, t.completedCount, len(t.jobs), overall, eta
}

// IsComplete reports full success: every slot has a result.
func (t *Tracker) IsComplete() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completedCount == len(t.jobs)
}

// AllTerminal reports that no job is still generating, regardless of
// outcome.
func (t *Tracker) AllTerminal() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completedCount+t.failedCount == len(t.jobs)
}

func (t *Tracker) FailedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failedCount
}

// RequestError returns the request-level fatal error, if one arrived.
func (t *Tracker) RequestError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.requestErr
}

// FirstJobError returns the first failed slot's classified error, used
// when the whole request is rejected because of job failures.
func (t *Tracker) FirstJobError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.firstJobErr
}

// Results returns the ordered result URLs. The second value is false
// until every slot has resolved.
func (t *Tracker) Results() ([]string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.completedCount != len(t.jobs) {
		return nil, false
	}
	urls := make([]string, len(t.results))
	copy(urls, t.results)
	return urls, true
}
