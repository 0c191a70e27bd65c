package models

import "time"

type RequestStatus string

const (
	StatusWaiting    RequestStatus = "waiting"
	StatusProcessing RequestStatus = "processing"
	StatusDone       RequestStatus = "done"
	StatusFailed     RequestStatus = "failed"
	StatusCanceled   RequestStatus = "canceled"
)

// MediaType distinguishes still-image restorations from the video
// animation follow-up. The two classes carry different deadlines.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// RestorationJob is one unit of generation work: a single requested
// output variation. Exactly one of Generating, ResultURL or Error is
// meaningful at any time; a terminal job is never re-opened.
type RestorationJob struct {
	ID         string  `json:"id"`
	Index      int     `json:"index"`
	Generating bool    `json:"generating"`
	Progress   float64 `json:"progress"`
	ResultURL  string  `json:"result_url,omitempty"`
	Error      string  `json:"error,omitempty"`
	ETASeconds float64 `json:"eta_seconds,omitempty"`
}

// RestorationRequest is the aggregate view over all jobs of one
// caller-initiated batch.
type RestorationRequest struct {
	ID        string        `json:"id"`
	Status    RequestStatus `json:"status"`
	MediaType MediaType     `json:"media_type"`
	ProjectID string        `json:"project_id,omitempty"`
	Width     int           `json:"width,omitempty"`
	Height    int           `json:"height,omitempty"`

	Jobs            []RestorationJob `json:"jobs"`
	CompletedCount  int              `json:"completed_count"`
	TotalCount      int              `json:"total_count"`
	OverallProgress float64          `json:"overall_progress"`
	ETASeconds      float64          `json:"eta_seconds,omitempty"`

	SelectedJobIndex *int     `json:"selected_job_index,omitempty"`
	SelectedURL      string   `json:"selected_url,omitempty"`
	ResultURLs       []string `json:"result_urls,omitempty"`
	Error            string   `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// SubmitParams carries everything needed for one "create project"
// call against the generation service. RequestID is assigned by the
// service layer; standalone callers may leave it empty.
type SubmitParams struct {
	RequestID string
	ImageData []byte
	Width     int
	Height    int
	Count     int
	MediaType MediaType
	TokenType string
	Prompt    string
	ModelID   string
}

// EventKind is the closed set of canonical lifecycle signals.
type EventKind string

const (
	EventProgress  EventKind = "progress"
	EventCompleted EventKind = "completed"
	EventFailed    EventKind = "failed"
)

// EventScope says whether a canonical event could be attributed to a
// single job slot or only to the request as a whole.
type EventScope string

const (
	ScopeJob     EventScope = "job"
	ScopeRequest EventScope = "request"
)

// CanonicalEvent is the normalized representation of one lifecycle
// signal from the generation service. Progress is always in [0,1].
type CanonicalEvent struct {
	Kind       EventKind
	Scope      EventScope
	JobIndex   int
	JobID      string
	Progress   float64
	ETASeconds float64
	ResultURL  string
	Err        error
}

// RawEvent is the loosely-specified payload shape the generation
// service emits. Fields are present or absent depending on which
// channel produced the event: some carry a job index, some only a job
// id, some only a project id. Progress may be a [0,1] fraction, a
// [0,100] percentage, or a step/stepCount pair.
type RawEvent struct {
	Type       string   `json:"type"`
	ProjectID  string   `json:"projectId,omitempty"`
	JobID      string   `json:"jobId,omitempty"`
	JobIndex   *int     `json:"jobIndex,omitempty"`
	Progress   *float64 `json:"progress,omitempty"`
	Step       *int     `json:"step,omitempty"`
	StepCount  *int     `json:"stepCount,omitempty"`
	ETASeconds *float64 `json:"eta,omitempty"`
	ResultURL  string   `json:"resultUrl,omitempty"`
	ErrCode    int      `json:"errorCode,omitempty"`
	ErrMessage string   `json:"error,omitempty"`
}

// CachedMediaURL is the urlcache's answer for one job's media.
type CachedMediaURL struct {
	URL       string    `json:"url,omitempty"`
	Hidden    bool      `json:"hidden,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// RequestResponse is the condensed row used by list endpoints.
type RequestResponse struct {
	ID              string        `json:"id"`
	Status          RequestStatus `json:"status"`
	MediaType       MediaType     `json:"media_type"`
	CreatedAt       time.Time     `json:"created_at"`
	CompletedCount  int           `json:"completed_count"`
	TotalCount      int           `json:"total_count"`
	OverallProgress float64       `json:"overall_progress"`
}
