package sogni

// CreateProjectParams is the body of the "create project" call. The
// context image travels base64-encoded inside the JSON payload.
type CreateProjectParams struct {
	ModelID       string  `json:"modelId"`
	Prompt        string  `json:"prompt"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Steps         int     `json:"steps"`
	Guidance      float64 `json:"guidance"`
	NumberOfMedia int     `json:"numberOfMedia"`
	OutputFormat  string  `json:"outputFormat"`
	ContextImage  string  `json:"contextImage"`
	TokenType     string  `json:"tokenType"`
}

type createProjectResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error *apiError `json:"error,omitempty"`
	// Some endpoints flatten the error fields into the top level.
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e errorResponse) unwrap() (int, string) {
	if e.Error != nil {
		return e.Error.Code, e.Error.Message
	}
	return e.Code, e.Message
}

// projectStatus is the poll response. Job entries are keyed
// inconsistently: every job has an id, the index is not always
// present, and progress arrives as a fraction, a percentage or a
// step/stepCount pair depending on the worker that produced it.
type projectStatus struct {
	ID       string      `json:"id"`
	Status   string      `json:"status"`
	Progress *float64    `json:"progress,omitempty"`
	Error    *apiError   `json:"error,omitempty"`
	Jobs     []jobStatus `json:"jobs"`
}

type jobStatus struct {
	ID         string    `json:"id"`
	Index      *int      `json:"index,omitempty"`
	Status     string    `json:"status"`
	Progress   *float64  `json:"progress,omitempty"`
	Step       *int      `json:"step,omitempty"`
	StepCount  *int      `json:"stepCount,omitempty"`
	ETASeconds *float64  `json:"eta,omitempty"`
	ResultURL  string    `json:"resultUrl,omitempty"`
	Error      *apiError `json:"error,omitempty"`
}

type downloadURLResponse struct {
	URL string `json:"url"`
}

const (
	projectStatusCompleted = "completed"
	projectStatusFailed    = "failed"
	projectStatusCanceled  = "canceled"

	jobStatusProcessing = "processing"
	jobStatusCompleted  = "completed"
	jobStatusFailed     = "failed"
)
