package usecase

import (
	"archive/zip"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/event"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/orchestrator"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/urlcache"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/sogni"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultImageTimeout = 5 * time.Minute
	DefaultVideoTimeout = 10 * time.Minute

	defaultImageModelID = "flux1-schnell-fp8"
	defaultVideoModelID = "wan2.1-i2v-14b"
	defaultTokenType    = "spark"
	defaultSteps        = 20
	defaultGuidance     = 5.0

	restorationPrompt = "restore this old photograph: repair scratches, tears and creases, remove noise and stains, recover faded colors, keep the subject and composition unchanged"
	animationPrompt   = "subtle lifelike animation of this photograph: gentle motion, natural lighting, preserve every detail of the original"
)

type RestorationUsecase struct {
	requestRepository app.RequestRepository
	client            app.GenerationClient
	fetcher           app.MediaFetcher
	urlCache          *urlcache.Cache
	storagePath       string
	imageTimeout      time.Duration
	videoTimeout      time.Duration
}

func CreateRestorationUsecase(
	requestRepository app.RequestRepository,
	client app.GenerationClient,
	fetcher app.MediaFetcher,
	urlCache *urlcache.Cache,
	storagePath string,
	imageTimeout time.Duration,
	videoTimeout time.Duration,
) *RestorationUsecase {
	if storagePath == "" {
		storagePath = "./storage"
	}
	if imageTimeout <= 0 {
		imageTimeout = DefaultImageTimeout
	}
	if videoTimeout <= 0 {
		videoTimeout = DefaultVideoTimeout
	}
	return &RestorationUsecase{
		requestRepository: requestRepository,
		client:            client,
		fetcher:           fetcher,
		urlCache:          urlCache,
		storagePath:       storagePath,
		imageTimeout:      imageTimeout,
		videoTimeout:      videoTimeout,
	}
}

// StartRestoration registers a new request and launches its
// generation in the background. The returned request is in the
// waiting state; callers poll its status endpoint for progress.
func (u *RestorationUsecase) StartRestoration(ctx context.Context, params models.SubmitParams) (*models.RestorationRequest, error) {
	const funcName = "RestorationUsecase.StartRestoration"
	logger.Debug("starting restoration",
		zap.String("function", funcName),
		zap.Int("count", params.Count),
		zap.String("media_type", string(params.MediaType)),
	)

	if err := checkVariantCount(params.Count); err != nil {
		return nil, err
	}

	request, err := u.requestRepository.CreateRequest(ctx, params)
	if err != nil {
		logger.Error("failed to create request",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}
	params.RequestID = request.ID

	// The worker outlives the HTTP request that spawned it; cancel is
	// wired into the repository so CancelRequest can reach it.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := u.requestRepository.SetCancelFunc(ctx, request.ID, cancel); err != nil {
		cancel()
		return nil, err
	}

	go u.runRestoration(runCtx, params)

	return request, nil
}

func (u *RestorationUsecase) runRestoration(ctx context.Context, params models.SubmitParams) {
	const funcName = "RestorationUsecase.runRestoration"

	urls, err := u.Restore(ctx, params, func(projectID string, tracker *orchestrator.Tracker) {
		if attachErr := u.requestRepository.AttachTracker(ctx, params.RequestID, projectID, tracker); attachErr != nil {
			logger.Error("failed to attach tracker",
				zap.String("function", funcName),
				zap.String("request_id", params.RequestID),
				zap.Error(attachErr),
			)
		}
	})

	switch {
	case err == nil:
		if completeErr := u.requestRepository.CompleteRequest(context.WithoutCancel(ctx), params.RequestID, urls); completeErr != nil {
			logger.Error("failed to complete request",
				zap.String("function", funcName),
				zap.String("request_id", params.RequestID),
				zap.Error(completeErr),
			)
		}

	case errors.Is(err, context.Canceled):
		// The repository already marked the request canceled before
		// firing the cancel func; nothing to record here.
		logger.Info("restoration canceled",
			zap.String("function", funcName),
			zap.String("request_id", params.RequestID),
		)

	default:
		logger.Warn("restoration failed",
			zap.String("function", funcName),
			zap.String("request_id", params.RequestID),
			zap.Error(err),
		)
		if failErr := u.requestRepository.FailRequest(context.WithoutCancel(ctx), params.RequestID, err.Error()); failErr != nil {
			logger.Error("failed to mark request failed",
				zap.String("function", funcName),
				zap.String("request_id", params.RequestID),
				zap.Error(failErr),
			)
		}
	}
}

// Restore submits one batch to the generation service and blocks until
// it settles: all result URLs collected, a classified failure, the
// media-class deadline, or ctx cancellation, whichever comes first.
// Both event subscriptions are released before returning, win or lose.
// onTrack, when non-nil, is invoked once as soon as the project id and
// live tracker exist, before any event is consumed.
func (u *RestorationUsecase) Restore(ctx context.Context, params models.SubmitParams, onTrack func(projectID string, tracker *orchestrator.Tracker)) ([]string, error) {
	const funcName = "RestorationUsecase.Restore"

	if err := checkVariantCount(params.Count); err != nil {
		return nil, err
	}

	globalEvents, unsubscribeGlobal := u.client.SubscribeGlobal()
	defer unsubscribeGlobal()

	projectID, err := u.client.CreateProject(ctx, buildCreateParams(params))
	if err != nil {
		logger.Error("failed to create project",
			zap.String("function", funcName),
			zap.String("request_id", params.RequestID),
			zap.Error(err),
		)
		return nil, err
	}

	projectEvents, unsubscribeProject := u.client.SubscribeProject(projectID)
	defer unsubscribeProject()

	trackID := params.RequestID
	if trackID == "" {
		trackID = projectID
	}
	tracker := orchestrator.NewTracker(trackID, params.Count)
	normalizer := event.NewNormalizer(projectID, params.Count)

	if onTrack != nil {
		onTrack(projectID, tracker)
	}

	timeout := u.timeoutFor(params.MediaType)
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	logger.Info("project submitted",
		zap.String("function", funcName),
		zap.String("request_id", params.RequestID),
		zap.String("project_id", projectID),
		zap.Int("count", params.Count),
		zap.Duration("timeout", timeout),
	)

	for {
		var raw models.RawEvent
		var ok bool

		select {
		case raw, ok = <-globalEvents:
		case raw, ok = <-projectEvents:
		case <-deadline.C:
			u.abandonProject(projectID)
			return nil, fmt.Errorf("no completion within %s: %w", timeout, errs.ErrNetworkOrTimeout)
		case <-ctx.Done():
			u.abandonProject(projectID)
			return nil, ctx.Err()
		}

		if !ok {
			u.abandonProject(projectID)
			return nil, fmt.Errorf("event stream closed: %w", errs.ErrNetworkOrTimeout)
		}

		canonical := normalizer.Normalize(raw)
		if canonical == nil {
			continue
		}
		tracker.Apply(*canonical)

		if requestErr := tracker.RequestError(); requestErr != nil {
			u.abandonProject(projectID)
			return nil, requestErr
		}

		if urls, done := tracker.Results(); done {
			logger.Info("all jobs completed",
				zap.String("function", funcName),
				zap.String("project_id", projectID),
				zap.Int("results", len(urls)),
			)
			return urls, nil
		}

		// Every job settled but at least one failed: reject now with
		// the first job's error instead of idling until the deadline.
		if tracker.AllTerminal() && tracker.FailedCount() > 0 {
			u.abandonProject(projectID)
			return nil, tracker.FirstJobError()
		}
	}
}

// checkVariantCount rejects submissions whose variant count cannot
// seed a job set. The tracker sizes its slots from it.
func checkVariantCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: variant count must be positive, got %d", errs.ErrSubmissionFailed, count)
	}
	return nil
}

// abandonProject tells the service to stop work on a project we no
// longer wait for. Best effort, off the caller's critical path.
func (u *RestorationUsecase) abandonProject(projectID string) {
	const funcName = "RestorationUsecase.abandonProject"
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := u.client.CancelProject(ctx, projectID); err != nil {
			logger.Warn("failed to cancel abandoned project",
				zap.String("function", funcName),
				zap.String("project_id", projectID),
				zap.Error(err),
			)
		}
	}()
}

func (u *RestorationUsecase) timeoutFor(mediaType models.MediaType) time.Duration {
	if mediaType == models.MediaVideo {
		return u.videoTimeout
	}
	return u.imageTimeout
}

func buildCreateParams(params models.SubmitParams) sogni.CreateProjectParams {
	modelID := params.ModelID
	prompt := params.Prompt
	outputFormat := "png"
	if params.MediaType == models.MediaVideo {
		if modelID == "" {
			modelID = defaultVideoModelID
		}
		if prompt == "" {
			prompt = animationPrompt
		}
		outputFormat = "mp4"
	} else {
		if modelID == "" {
			modelID = defaultImageModelID
		}
		if prompt == "" {
			prompt = restorationPrompt
		}
	}
	tokenType := params.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}

	return sogni.CreateProjectParams{
		ModelID:       modelID,
		Prompt:        prompt,
		Width:         params.Width,
		Height:        params.Height,
		Steps:         defaultSteps,
		Guidance:      defaultGuidance,
		NumberOfMedia: params.Count,
		OutputFormat:  outputFormat,
		ContextImage:  base64.StdEncoding.EncodeToString(params.ImageData),
		TokenType:     tokenType,
	}
}

func (u *RestorationUsecase) GetRequest(ctx context.Context, id string) (*models.RestorationRequest, error) {
	const funcName = "RestorationUsecase.GetRequest"
	logger.Debug("getting request",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)

	request, err := u.requestRepository.GetRequest(ctx, id)
	if err != nil {
		logger.Error("failed to get request",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return request, nil
}

func (u *RestorationUsecase) GetAllRequests(ctx context.Context) ([]*models.RestorationRequest, error) {
	const funcName = "RestorationUsecase.GetAllRequests"
	logger.Debug("getting all requests",
		zap.String("function", funcName),
	)

	requests, err := u.requestRepository.GetAllRequests(ctx)
	if err != nil {
		logger.Error("failed to get all requests",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	return requests, nil
}

func (u *RestorationUsecase) CancelRequest(ctx context.Context, id string) error {
	const funcName = "RestorationUsecase.CancelRequest"
	logger.Info("canceling request",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)

	if err := u.requestRepository.CancelRequest(ctx, id); err != nil {
		logger.Error("failed to cancel request",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (u *RestorationUsecase) SelectResult(ctx context.Context, id string, jobIndex int) (*models.RestorationRequest, error) {
	const funcName = "RestorationUsecase.SelectResult"
	logger.Debug("selecting result",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.Int("job_index", jobIndex),
	)

	request, err := u.requestRepository.SelectResult(ctx, id, jobIndex)
	if err != nil {
		logger.Error("failed to select result",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.Int("job_index", jobIndex),
			zap.Error(err),
		)
		return nil, err
	}

	return request, nil
}

// Animate takes a finished request with a selected result and starts a
// follow-up video request from that image.
func (u *RestorationUsecase) Animate(ctx context.Context, id string) (*models.RestorationRequest, error) {
	const funcName = "RestorationUsecase.Animate"
	logger.Info("animating selected result",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)

	request, err := u.requestRepository.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status == models.StatusCanceled {
		return nil, errs.ErrRequestCanceled
	}
	if request.Status != models.StatusDone {
		return nil, errs.ErrRequestNotReady
	}
	if request.SelectedURL == "" {
		return nil, errs.ErrNoSelection
	}

	imageData, err := u.fetcher.Fetch(ctx, request.SelectedURL)
	if err != nil {
		logger.Error("failed to fetch selected image",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return u.StartRestoration(ctx, models.SubmitParams{
		ImageData: imageData,
		Width:     request.Width,
		Height:    request.Height,
		Count:     1,
		MediaType: models.MediaVideo,
	})
}

// BuildArchive downloads every available result of a finished request
// and packs them into one zip under the storage path. Unreachable
// results are skipped; an archive with zero entries is an error.
func (u *RestorationUsecase) BuildArchive(ctx context.Context, id string) (string, error) {
	const funcName = "RestorationUsecase.BuildArchive"
	logger.Info("building archive",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)

	request, err := u.requestRepository.GetRequest(ctx, id)
	if err != nil {
		return "", err
	}
	if request.Status != models.StatusDone || len(request.ResultURLs) == 0 {
		return "", errs.ErrRequestNotReady
	}

	files := make([][]byte, len(request.ResultURLs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, url := range request.ResultURLs {
		i, url := i, url
		group.Go(func() error {
			data, fetchErr := u.fetcher.Fetch(groupCtx, url)
			if fetchErr != nil {
				logger.Warn("failed to download result",
					zap.String("function", funcName),
					zap.String("request_id", id),
					zap.String("url", url),
					zap.Error(fetchErr),
				)
				return nil
			}
			files[i] = data
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.storagePath, 0o755); err != nil {
		return "", err
	}
	zipPath := filepath.Join(u.storagePath, fmt.Sprintf("restoration_%s.zip", id))
	zipFile, err := os.Create(zipPath)
	if err != nil {
		logger.Error("failed to create zip file",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.String("zip_path", zipPath),
			zap.Error(err),
		)
		return "", err
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	successCount := 0
	for i, data := range files {
		if data == nil {
			continue
		}
		ext := "png"
		if request.MediaType == models.MediaVideo {
			ext = "mp4"
		}
		fileWriter, err := zipWriter.Create(fmt.Sprintf("result_%d.%s", i+1, ext))
		if err != nil {
			logger.Warn("failed to create file in archive",
				zap.String("function", funcName),
				zap.String("request_id", id),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		if _, err := fileWriter.Write(data); err != nil {
			logger.Warn("failed to write file to archive",
				zap.String("function", funcName),
				zap.String("request_id", id),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		successCount++
	}

	if err := zipWriter.Close(); err != nil {
		return "", err
	}

	if successCount == 0 {
		os.Remove(zipPath)
		logger.Error("no files were added to archive",
			zap.String("function", funcName),
			zap.String("request_id", id),
		)
		return "", fmt.Errorf("no downloadable results for request %s", id)
	}

	logger.Info("archive built",
		zap.String("function", funcName),
		zap.String("request_id", id),
		zap.Int("files_archived", successCount),
		zap.Int("total_results", len(request.ResultURLs)),
		zap.String("zip_path", zipPath),
	)

	return zipPath, nil
}

func (u *RestorationUsecase) ResolveMediaURL(ctx context.Context, projectID, jobID string, mediaType models.MediaType) (models.CachedMediaURL, error) {
	return u.urlCache.Resolve(ctx, projectID, jobID, mediaType)
}

func (u *RestorationUsecase) GetMaxRequests() int {
	return u.requestRepository.GetMaxRequests()
}

func (u *RestorationUsecase) GetActiveRequestsCount() int {
	return u.requestRepository.GetActiveRequestsCount()
}
