package event

import (
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"go.uber.org/zap"
)

// Normalizer converts the generation service's loosely-specified raw
// events into canonical ones for a single tracked project. Events that
// cannot be attributed to the tracked project, or that are malformed,
// are discarded (Normalize returns nil).
//
// Attribution priority: an explicit job index wins; otherwise a job id
// is looked up in the mapping learned from events that carried both;
// otherwise the event is attributed to the whole request.
type Normalizer struct {
	projectID string
	jobCount  int
	idxByJob  map[string]int
}

func NewNormalizer(projectID string, jobCount int) *Normalizer {
	return &Normalizer{
		projectID: projectID,
		jobCount:  jobCount,
		idxByJob:  make(map[string]int),
	}
}

func (n *Normalizer) Normalize(raw models.RawEvent) *models.CanonicalEvent {
	const funcName = "Normalizer.Normalize"

	if raw.ProjectID != "" && raw.ProjectID != n.projectID {
		logger.Debug("discarding event for foreign project",
			zap.String("function", funcName),
			zap.String("project_id", raw.ProjectID),
		)
		return nil
	}

	idx, scope := n.attribute(raw)

	switch raw.Type {
	case "progress":
		progress, ok := normalizeProgress(raw)
		if !ok {
			return nil
		}
		ev := &models.CanonicalEvent{
			Kind:     models.EventProgress,
			Scope:    scope,
			JobIndex: idx,
			JobID:    raw.JobID,
			Progress: progress,
		}
		if raw.ETASeconds != nil && *raw.ETASeconds > 0 {
			ev.ETASeconds = *raw.ETASeconds
		}
		return ev

	case "completed":
		// A dedicated completion signal without a result reference is
		// not trustworthy: the service reports 100% before the
		// artifact exists. Discard and wait for the real one.
		if raw.ResultURL == "" || scope != models.ScopeJob {
			logger.Debug("discarding completion without attributable result",
				zap.String("function", funcName),
				zap.String("job_id", raw.JobID),
			)
			return nil
		}
		return &models.CanonicalEvent{
			Kind:      models.EventCompleted,
			Scope:     models.ScopeJob,
			JobIndex:  idx,
			JobID:     raw.JobID,
			Progress:  1,
			ResultURL: raw.ResultURL,
		}

	case "failed":
		return &models.CanonicalEvent{
			Kind:     models.EventFailed,
			Scope:    scope,
			JobIndex: idx,
			JobID:    raw.JobID,
			Err:      errs.Classify(raw.ErrCode, raw.ErrMessage, errs.ErrJobFailed),
		}

	default:
		logger.Debug("discarding event of unknown type",
			zap.String("function", funcName),
			zap.String("type", raw.Type),
		)
		return nil
	}
}

// attribute resolves the target job slot, learning the job-id-to-index
// mapping from any event that carries both identifiers.
func (n *Normalizer) attribute(raw models.RawEvent) (int, models.EventScope) {
	if raw.JobIndex != nil && *raw.JobIndex >= 0 && *raw.JobIndex < n.jobCount {
		if raw.JobID != "" {
			n.idxByJob[raw.JobID] = *raw.JobIndex
		}
		return *raw.JobIndex, models.ScopeJob
	}

	if raw.JobID != "" {
		if idx, ok := n.idxByJob[raw.JobID]; ok {
			return idx, models.ScopeJob
		}
	}

	return 0, models.ScopeRequest
}

// normalizeProgress reduces the three progress encodings to a single
// fraction in [0,1].
func normalizeProgress(raw models.RawEvent) (float64, bool) {
	var value float64

	switch {
	case raw.Progress != nil:
		value = *raw.Progress
		if value > 1 {
			value /= 100
		}
	case raw.Step != nil && raw.StepCount != nil && *raw.StepCount > 0:
		value = float64(*raw.Step) / float64(*raw.StepCount)
	default:
		return 0, false
	}

	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	return value, true
}
