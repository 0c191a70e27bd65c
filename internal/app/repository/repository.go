package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/orchestrator"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestRepository keeps the live restoration requests of this
// process. Static request fields live here; the per-job state lives in
// the attached tracker and is merged into every snapshot handed out.
type RequestRepository struct {
	requests       map[string]*record
	activeRequests int
	maxRequests    int
	mu             sync.Mutex
}

type record struct {
	request *models.RestorationRequest
	tracker *orchestrator.Tracker
	cancel  context.CancelFunc
}

func CreateRequestRepository(maxRequests int) *RequestRepository {
	return &RequestRepository{
		requests:    make(map[string]*record),
		maxRequests: maxRequests,
	}
}

func (r *RequestRepository) CreateRequest(ctx context.Context, params models.SubmitParams) (*models.RestorationRequest, error) {
	const funcName = "RequestRepository.CreateRequest"
	logger.Debug("attempting to create restoration request",
		zap.String("function", funcName),
		zap.String("media_type", string(params.MediaType)),
		zap.Int("count", params.Count),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeRequests >= r.maxRequests {
		logger.Warn("maximum active restorations limit reached",
			zap.String("function", funcName),
			zap.Int("active_requests", r.activeRequests),
			zap.Int("max_requests", r.maxRequests),
		)
		return nil, fmt.Errorf("%w: current %d, max %d", errs.ErrMaxRequestsReached, r.activeRequests, r.maxRequests)
	}

	request := &models.RestorationRequest{
		ID:         uuid.NewString(),
		Status:     models.StatusWaiting,
		MediaType:  params.MediaType,
		Width:      params.Width,
		Height:     params.Height,
		TotalCount: params.Count,
		CreatedAt:  time.Now(),
	}

	r.requests[request.ID] = &record{request: request}
	r.activeRequests++

	logger.Info("restoration request created",
		zap.String("function", funcName),
		zap.String("request_id", request.ID),
		zap.Int("active_requests", r.activeRequests),
	)

	return r.requests[request.ID].view(), nil
}

func (r *RequestRepository) GetRequest(ctx context.Context, id string) (*models.RestorationRequest, error) {
	const funcName = "RequestRepository.GetRequest"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		logger.Warn("request not found",
			zap.String("function", funcName),
			zap.String("request_id", id),
		)
		return nil, errs.ErrRequestNotFound
	}

	return rec.view(), nil
}

func (r *RequestRepository) GetAllRequests(ctx context.Context) ([]*models.RestorationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]*models.RestorationRequest, 0, len(r.requests))
	for _, rec := range r.requests {
		requests = append(requests, rec.view())
	}

	return requests, nil
}

// AttachTracker binds the seeded job set once the external create call
// succeeded, moving the request to processing.
func (r *RequestRepository) AttachTracker(ctx context.Context, id, projectID string, tracker *orchestrator.Tracker) error {
	const funcName = "RequestRepository.AttachTracker"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return errs.ErrRequestNotFound
	}

	rec.tracker = tracker
	rec.request.ProjectID = projectID
	rec.request.Status = models.StatusProcessing

	logger.Info("tracker attached",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.String("project_id", projectID),
	)

	return nil
}

func (r *RequestRepository) SetCancelFunc(ctx context.Context, id string, cancel context.CancelFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return errs.ErrRequestNotFound
	}
	rec.cancel = cancel
	return nil
}

// CancelRequest rejects the outstanding restoration locally. The
// vendor-side cancellation is the usecase's concern and is
// fire-and-forget.
func (r *RequestRepository) CancelRequest(ctx context.Context, id string) error {
	const funcName = "RequestRepository.CancelRequest"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return errs.ErrRequestNotFound
	}

	if !r.markTerminal(rec, models.StatusCanceled) {
		logger.Warn("cancel ignored for terminal request",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.String("status", string(rec.request.Status)),
		)
		return nil
	}

	if rec.cancel != nil {
		rec.cancel()
	}

	logger.Info("request canceled",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)

	return nil
}

func (r *RequestRepository) CompleteRequest(ctx context.Context, id string, urls []string) error {
	const funcName = "RequestRepository.CompleteRequest"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return errs.ErrRequestNotFound
	}

	if !r.markTerminal(rec, models.StatusDone) {
		return nil
	}
	rec.request.ResultURLs = urls

	logger.Info("request completed",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.Int("results", len(urls)),
	)

	return nil
}

func (r *RequestRepository) FailRequest(ctx context.Context, id, message string) error {
	const funcName = "RequestRepository.FailRequest"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return errs.ErrRequestNotFound
	}

	if !r.markTerminal(rec, models.StatusFailed) {
		return nil
	}
	rec.request.Error = message

	logger.Warn("request failed",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.String("error", message),
	)

	return nil
}

func (r *RequestRepository) SelectResult(ctx context.Context, id string, jobIndex int) (*models.RestorationRequest, error) {
	const funcName = "RequestRepository.SelectResult"

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.requests[id]
	if !exists {
		return nil, errs.ErrRequestNotFound
	}
	if rec.request.Status == models.StatusCanceled {
		return nil, errs.ErrRequestCanceled
	}
	if rec.tracker == nil {
		return nil, errs.ErrRequestNotReady
	}

	jobs, _, _, _, _ := rec.tracker.Snapshot()
	if jobIndex < 0 || jobIndex >= len(jobs) {
		return nil, errs.ErrInvalidJobIndex
	}
	if jobs[jobIndex].ResultURL == "" {
		return nil, fmt.Errorf("%w: job %d has no result yet", errs.ErrRequestNotReady, jobIndex)
	}

	idx := jobIndex
	rec.request.SelectedJobIndex = &idx
	rec.request.SelectedURL = jobs[jobIndex].ResultURL

	logger.Info("result selected",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.Int("job_index", jobIndex),
	)

	return rec.view(), nil
}

func (r *RequestRepository) GetMaxRequests() int {
	return r.maxRequests
}

func (r *RequestRepository) GetActiveRequestsCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeRequests
}

// markTerminal moves a request out of waiting/processing, releasing
// its active slot. Returns false when the request was already terminal.
func (r *RequestRepository) markTerminal(rec *record, status models.RequestStatus) bool {
	switch rec.request.Status {
	case models.StatusWaiting, models.StatusProcessing:
		rec.request.Status = status
		r.activeRequests--
		return true
	default:
		return false
	}
}

// view composes a detached snapshot: static fields plus the live
// tracker state. Callers may mutate the result freely.
func (rec *record) view() *models.RestorationRequest {
	snapshot := *rec.request

	if rec.tracker != nil {
		jobs, completed, total, overall, eta := rec.tracker.Snapshot()
		snapshot.Jobs = jobs
		snapshot.CompletedCount = completed
		snapshot.TotalCount = total
		snapshot.OverallProgress = overall
		snapshot.ETASeconds = eta
	}
	if rec.request.SelectedJobIndex != nil {
		idx := *rec.request.SelectedJobIndex
		snapshot.SelectedJobIndex = &idx
	}
	if rec.request.ResultURLs != nil {
		snapshot.ResultURLs = append([]string(nil), rec.request.ResultURLs...)
	}

	return &snapshot
}
