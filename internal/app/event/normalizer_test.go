package event

import (
	"testing"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestNormalize_ProgressEncodings(t *testing.T) {
	tests := []struct {
		name     string
		raw      models.RawEvent
		expected float64
	}{
		{
			name:     "percentageStyle",
			raw:      models.RawEvent{Type: "progress", JobIndex: intPtr(0), Progress: floatPtr(75)},
			expected: 0.75,
		},
		{
			name:     "fractionStyleUnchanged",
			raw:      models.RawEvent{Type: "progress", JobIndex: intPtr(0), Progress: floatPtr(0.42)},
			expected: 0.42,
		},
		{
			name:     "stepPair",
			raw:      models.RawEvent{Type: "progress", JobIndex: intPtr(0), Step: intPtr(3), StepCount: intPtr(12)},
			expected: 0.25,
		},
		{
			name:     "percentageAboveHundredClamped",
			raw:      models.RawEvent{Type: "progress", JobIndex: intPtr(0), Progress: floatPtr(150)},
			expected: 1,
		},
		{
			name:     "exactlyOneIsFraction",
			raw:      models.RawEvent{Type: "progress", JobIndex: intPtr(0), Progress: floatPtr(1)},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer("p1", 4)
			ev := n.Normalize(tt.raw)

			assert.NotNil(t, ev)
			assert.Equal(t, models.EventProgress, ev.Kind)
			assert.InDelta(t, tt.expected, ev.Progress, 1e-9)
		})
	}
}

func TestNormalize_ProgressWithoutValueDiscarded(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{Type: "progress", JobIndex: intPtr(1)})

	assert.Nil(t, ev)
}

func TestNormalize_ForeignProjectDiscarded(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{
		Type:      "progress",
		ProjectID: "other",
		JobIndex:  intPtr(0),
		Progress:  floatPtr(0.5),
	})

	assert.Nil(t, ev)
}

func TestNormalize_AttributionPriority(t *testing.T) {
	n := NewNormalizer("p1", 4)

	// Index wins and teaches the job-id mapping.
	ev := n.Normalize(models.RawEvent{
		Type:     "progress",
		JobID:    "j-abc",
		JobIndex: intPtr(2),
		Progress: floatPtr(0.1),
	})
	assert.NotNil(t, ev)
	assert.Equal(t, models.ScopeJob, ev.Scope)
	assert.Equal(t, 2, ev.JobIndex)

	// Later event with only the job id resolves through the mapping.
	ev = n.Normalize(models.RawEvent{
		Type:     "progress",
		JobID:    "j-abc",
		Progress: floatPtr(0.3),
	})
	assert.NotNil(t, ev)
	assert.Equal(t, models.ScopeJob, ev.Scope)
	assert.Equal(t, 2, ev.JobIndex)

	// An unknown job id falls back to request scope.
	ev = n.Normalize(models.RawEvent{
		Type:     "progress",
		JobID:    "j-unknown",
		Progress: floatPtr(0.4),
	})
	assert.NotNil(t, ev)
	assert.Equal(t, models.ScopeRequest, ev.Scope)

	// No identifiers at all is coarse request progress.
	ev = n.Normalize(models.RawEvent{
		Type:     "progress",
		Progress: floatPtr(0.2),
	})
	assert.NotNil(t, ev)
	assert.Equal(t, models.ScopeRequest, ev.Scope)
}

func TestNormalize_OutOfRangeIndexIsRequestScope(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{
		Type:     "progress",
		JobIndex: intPtr(7),
		Progress: floatPtr(0.5),
	})

	assert.NotNil(t, ev)
	assert.Equal(t, models.ScopeRequest, ev.Scope)
}

func TestNormalize_CompletionRequiresResultURL(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{Type: "completed", JobIndex: intPtr(0)})
	assert.Nil(t, ev)

	ev = n.Normalize(models.RawEvent{
		Type:      "completed",
		JobIndex:  intPtr(0),
		ResultURL: "https://cdn/u0",
	})
	assert.NotNil(t, ev)
	assert.Equal(t, models.EventCompleted, ev.Kind)
	assert.Equal(t, "https://cdn/u0", ev.ResultURL)
	assert.Equal(t, 1.0, ev.Progress)
}

func TestNormalize_CompletionWithoutAttributionDiscarded(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{
		Type:      "completed",
		ResultURL: "https://cdn/u0",
	})

	assert.Nil(t, ev)
}

func TestNormalize_FailureClassification(t *testing.T) {
	tests := []struct {
		name     string
		raw      models.RawEvent
		expected error
		scope    models.EventScope
	}{
		{
			name:     "jobFailure",
			raw:      models.RawEvent{Type: "failed", JobIndex: intPtr(1), ErrMessage: "model exploded"},
			expected: errs.ErrJobFailed,
			scope:    models.ScopeJob,
		},
		{
			name:     "insufficientCreditsByCode",
			raw:      models.RawEvent{Type: "failed", JobIndex: intPtr(1), ErrCode: 4024, ErrMessage: "debit failed"},
			expected: errs.ErrInsufficientCredits,
			scope:    models.ScopeJob,
		},
		{
			name:     "requestLevelNetworkFailure",
			raw:      models.RawEvent{Type: "failed", ErrMessage: "socket network error"},
			expected: errs.ErrNetworkOrTimeout,
			scope:    models.ScopeRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer("p1", 4)
			ev := n.Normalize(tt.raw)

			assert.NotNil(t, ev)
			assert.Equal(t, models.EventFailed, ev.Kind)
			assert.Equal(t, tt.scope, ev.Scope)
			assert.ErrorIs(t, ev.Err, tt.expected)
		})
	}
}

func TestNormalize_UnknownTypeDiscarded(t *testing.T) {
	n := NewNormalizer("p1", 4)

	ev := n.Normalize(models.RawEvent{Type: "jobQueued", JobIndex: intPtr(0)})

	assert.Nil(t, ev)
}
