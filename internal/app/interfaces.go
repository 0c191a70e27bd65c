package app

import (
	"context"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/orchestrator"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/sogni"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

// GenerationClient is the contract the restoration usecase holds
// against the external generation service.
type GenerationClient interface {
	CreateProject(ctx context.Context, params sogni.CreateProjectParams) (string, error)
	SubscribeGlobal() (<-chan models.RawEvent, func())
	SubscribeProject(projectID string) (<-chan models.RawEvent, func())
	GetDownloadURL(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (string, error)
	CancelProject(ctx context.Context, projectID string) error
}

type RequestRepository interface {
	CreateRequest(ctx context.Context, params models.SubmitParams) (*models.RestorationRequest, error)
	GetRequest(ctx context.Context, id string) (*models.RestorationRequest, error)
	GetAllRequests(ctx context.Context) ([]*models.RestorationRequest, error)
	AttachTracker(ctx context.Context, id, projectID string, tracker *orchestrator.Tracker) error
	SetCancelFunc(ctx context.Context, id string, cancel context.CancelFunc) error
	CancelRequest(ctx context.Context, id string) error
	CompleteRequest(ctx context.Context, id string, urls []string) error
	FailRequest(ctx context.Context, id, message string) error
	SelectResult(ctx context.Context, id string, jobIndex int) (*models.RestorationRequest, error)
	GetMaxRequests() int
	GetActiveRequestsCount() int
}

type RestorationUsecase interface {
	StartRestoration(ctx context.Context, params models.SubmitParams) (*models.RestorationRequest, error)
	GetRequest(ctx context.Context, id string) (*models.RestorationRequest, error)
	GetAllRequests(ctx context.Context) ([]*models.RestorationRequest, error)
	CancelRequest(ctx context.Context, id string) error
	SelectResult(ctx context.Context, id string, jobIndex int) (*models.RestorationRequest, error)
	Animate(ctx context.Context, id string) (*models.RestorationRequest, error)
	BuildArchive(ctx context.Context, id string) (string, error)
	ResolveMediaURL(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (models.CachedMediaURL, error)
	GetMaxRequests() int
	GetActiveRequestsCount() int
}

// MediaFetcher downloads media bytes from a signed URL, used by the
// archive builder and the animation follow-up.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HiddenJobStore is the durable suppression set for jobs deleted
// upstream. Load is called once at cache construction; Add persists a
// newly hidden job id.
type HiddenJobStore interface {
	Load(ctx context.Context) ([]string, error)
	Add(ctx context.Context, jobID string) error
}
