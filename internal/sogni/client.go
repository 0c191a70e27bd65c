package sogni

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultHTTPTimeout  = 30 * time.Second
	eventBuffer         = 64
)

// Client talks to the generation service over plain HTTP and converts
// its per-project status polls into the raw event stream consumed by
// the restoration usecase. One poller runs per created project;
// events fan out to global subscribers and to subscribers of the
// matching project. Terminal job events repeat across polls, the
// consumer is expected to apply them idempotently.
type Client struct {
	baseURL      string
	appID        string
	hc           *http.Client
	pollInterval time.Duration

	mu      sync.Mutex
	nextSub int
	subs    map[int]*subscription
	pollers map[string]chan struct{}
	closed  bool
}

type subscription struct {
	projectID string // empty means global
	ch        chan models.RawEvent
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

func NewClient(baseURL, appID string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		appID:        appID,
		hc:           &http.Client{Timeout: defaultHTTPTimeout},
		pollInterval: defaultPollInterval,
		subs:         make(map[int]*subscription),
		pollers:      make(map[string]chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateProject issues the single "create" call and starts the status
// poller for the returned project. It is never retried here; a failed
// create surfaces immediately, classified.
func (c *Client) CreateProject(ctx context.Context, params CreateProjectParams) (string, error) {
	const funcName = "Client.CreateProject"

	body, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("%w: encode request: %v", errs.ErrSubmissionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/projects", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-App-ID", c.appID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", errs.Classify(0, err.Error(), errs.ErrSubmissionFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeError(resp, errs.ErrSubmissionFailed)
	}

	var created createProjectResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", errs.ErrSubmissionFailed, err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: create response carried no project id", errs.ErrSubmissionFailed)
	}

	logger.Info("project created",
		zap.String("function", funcName),
		zap.String("project_id", created.ID),
		zap.Int("number_of_media", params.NumberOfMedia),
	)

	c.startPoller(created.ID)
	return created.ID, nil
}

// SubscribeGlobal registers a listener for events of every project.
// The returned func deregisters it; calling it twice is safe.
func (c *Client) SubscribeGlobal() (<-chan models.RawEvent, func()) {
	return c.subscribe("")
}

// SubscribeProject registers a listener for one project's events.
func (c *Client) SubscribeProject(projectID string) (<-chan models.RawEvent, func()) {
	return c.subscribe(projectID)
}

func (c *Client) subscribe(projectID string) (<-chan models.RawEvent, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	sub := &subscription{projectID: projectID, ch: make(chan models.RawEvent, eventBuffer)}
	c.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

// SubscriberCount reports currently registered listeners.
func (c *Client) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// GetDownloadURL resolves a time-limited signed URL for one job's
// media. A 404, or a body mentioning deletion, means the artifact is
// gone for good and maps to ErrMediaDeleted.
func (c *Client) GetDownloadURL(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (string, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/jobs/%s/download?type=%s", c.baseURL, projectID, jobID, mediaType)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-App-ID", c.appID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", errs.Classify(0, err.Error(), errs.ErrNetworkOrTimeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errs.ErrMediaDeleted
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if strings.Contains(strings.ToLower(string(body)), "deleted") {
			return "", errs.ErrMediaDeleted
		}
		return "", fmt.Errorf("download url lookup failed: http %d: %s", resp.StatusCode, string(body))
	}

	var decoded downloadURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode download url response: %w", err)
	}
	return decoded.URL, nil
}

// CancelProject notifies the service that a project is abandoned. It
// is best-effort: callers do not wait on the vendor acknowledging the
// cancellation before settling locally.
func (c *Client) CancelProject(ctx context.Context, projectID string) error {
	const funcName = "Client.CancelProject"

	c.stopPoller(projectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/projects/"+projectID+"/cancel", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-App-ID", c.appID)

	resp, err := c.hc.Do(req)
	if err != nil {
		logger.Warn("project cancel notification failed",
			zap.String("function", funcName),
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return err
	}
	resp.Body.Close()
	return nil
}

// Close stops all pollers. Subscriber channels are not closed; the
// consumers own their unsubscribe funcs.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, stop := range c.pollers {
		close(stop)
		delete(c.pollers, id)
	}
}

func (c *Client) startPoller(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if _, running := c.pollers[projectID]; running {
		return
	}
	stop := make(chan struct{})
	c.pollers[projectID] = stop
	go c.poll(projectID, stop)
}

func (c *Client) stopPoller(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if stop, ok := c.pollers[projectID]; ok {
		close(stop)
		delete(c.pollers, projectID)
	}
}

func (c *Client) poll(projectID string, stop <-chan struct{}) {
	const funcName = "Client.poll"

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		status, err := c.fetchStatus(projectID)
		if err != nil {
			logger.Warn("project status poll failed",
				zap.String("function", funcName),
				zap.String("project_id", projectID),
				zap.Error(err),
			)
			continue
		}

		for _, ev := range statusToEvents(projectID, status) {
			c.dispatch(ev)
		}

		switch status.Status {
		case projectStatusCompleted, projectStatusFailed, projectStatusCanceled:
			c.stopPoller(projectID)
			return
		}
	}
}

func (c *Client) fetchStatus(projectID string) (*projectStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.hc.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/projects/"+projectID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-App-ID", c.appID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status poll: http %d", resp.StatusCode)
	}

	var status projectStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}

// statusToEvents flattens one poll response into raw lifecycle events.
// Job identifiers are forwarded exactly as the service sent them, so
// downstream sees the same inconsistent keying the wire carries.
func statusToEvents(projectID string, status *projectStatus) []models.RawEvent {
	var events []models.RawEvent

	for _, job := range status.Jobs {
		switch job.Status {
		case jobStatusCompleted:
			events = append(events, models.RawEvent{
				Type:      "completed",
				ProjectID: projectID,
				JobID:     job.ID,
				JobIndex:  job.Index,
				ResultURL: job.ResultURL,
			})
		case jobStatusFailed:
			ev := models.RawEvent{
				Type:      "failed",
				ProjectID: projectID,
				JobID:     job.ID,
				JobIndex:  job.Index,
			}
			if job.Error != nil {
				ev.ErrCode = job.Error.Code
				ev.ErrMessage = job.Error.Message
			}
			events = append(events, ev)
		case jobStatusProcessing:
			events = append(events, models.RawEvent{
				Type:       "progress",
				ProjectID:  projectID,
				JobID:      job.ID,
				JobIndex:   job.Index,
				Progress:   job.Progress,
				Step:       job.Step,
				StepCount:  job.StepCount,
				ETASeconds: job.ETASeconds,
			})
		}
	}

	if status.Progress != nil {
		events = append(events, models.RawEvent{
			Type:      "progress",
			ProjectID: projectID,
			Progress:  status.Progress,
		})
	}

	if status.Status == projectStatusFailed {
		ev := models.RawEvent{Type: "failed", ProjectID: projectID}
		if status.Error != nil {
			ev.ErrCode = status.Error.Code
			ev.ErrMessage = status.Error.Message
		}
		events = append(events, ev)
	}

	return events
}

func (c *Client) dispatch(ev models.RawEvent) {
	const funcName = "Client.dispatch"

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, sub := range c.subs {
		if sub.projectID != "" && sub.projectID != ev.ProjectID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			logger.Warn("dropping event for slow subscriber",
				zap.String("function", funcName),
				zap.String("project_id", ev.ProjectID),
				zap.String("type", ev.Type),
			)
		}
	}
}

func (c *Client) decodeError(resp *http.Response, fallback error) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err == nil {
		if code, message := decoded.unwrap(); message != "" || code != 0 {
			return errs.Classify(code, message, fallback)
		}
	}
	return fmt.Errorf("%w: http %d: %s", fallback, resp.StatusCode, string(body))
}
