package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/responses"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/validate"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20

const (
	defaultVariantCount = 4
	defaultDimension    = 1024
)

type RestorationDelivery struct {
	restorationUsecase app.RestorationUsecase
}

func CreateRestorationDelivery(restorationUsecase app.RestorationUsecase) *RestorationDelivery {
	return &RestorationDelivery{
		restorationUsecase: restorationUsecase,
	}
}

func (d *RestorationDelivery) ConfigureRouter(router *mux.Router) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/restorations", d.CreateRestoration).Methods(http.MethodPost)
	api.HandleFunc("/restorations", d.GetAllRestorations).Methods(http.MethodGet)
	api.HandleFunc("/restorations/{id}", d.GetRestoration).Methods(http.MethodGet)
	api.HandleFunc("/restorations/{id}/status", d.GetRestorationStatus).Methods(http.MethodGet)
	api.HandleFunc("/restorations/{id}/cancel", d.CancelRestoration).Methods(http.MethodPost)
	api.HandleFunc("/restorations/{id}/select", d.SelectResult).Methods(http.MethodPost)
	api.HandleFunc("/restorations/{id}/animate", d.AnimateRestoration).Methods(http.MethodPost)
	api.HandleFunc("/restorations/{id}/archive", d.DownloadArchive).Methods(http.MethodGet)
	api.HandleFunc("/media/{projectID}/{jobID}/url", d.GetMediaURL).Methods(http.MethodGet)

	router.HandleFunc("/health", d.Health).Methods(http.MethodGet)
}

func (d *RestorationDelivery) CreateRestoration(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.CreateRestoration"
	logger.Debug("creating new restoration", zap.String("function", funcName))

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if err := validate.ValidateImageExtension(header.Filename); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "failed to read image file")
		return
	}

	count := defaultVariantCount
	if raw := r.FormValue("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid count")
			return
		}
	}
	if err := validate.ValidateVariantCount(count); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, err.Error())
		return
	}

	width, err := formInt(r, "width", defaultDimension)
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid width")
		return
	}
	height, err := formInt(r, "height", defaultDimension)
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid height")
		return
	}
	if err := validate.ValidateDimensions(width, height); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, err.Error())
		return
	}

	request, err := d.restorationUsecase.StartRestoration(r.Context(), models.SubmitParams{
		ImageData: imageData,
		Width:     width,
		Height:    height,
		Count:     count,
		MediaType: models.MediaImage,
		TokenType: r.FormValue("token_type"),
		Prompt:    r.FormValue("prompt"),
	})
	if err != nil {
		if errors.Is(err, errs.ErrMaxRequestsReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":        err.Error(),
				"max_requests": d.restorationUsecase.GetMaxRequests(),
				"active_now":   d.restorationUsecase.GetActiveRequestsCount(),
				"suggestion":   "Try again later or wait for current restorations to complete",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, request, http.StatusAccepted)
}

func (d *RestorationDelivery) GetRestoration(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.GetRestoration"
	logger.Debug("getting restoration",
		zap.String("function", funcName),
	)

	request, err := d.restorationUsecase.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, request, http.StatusOK)
}

func (d *RestorationDelivery) GetRestorationStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.GetRestorationStatus"
	logger.Debug("getting restoration status",
		zap.String("function", funcName),
	)

	request, err := d.restorationUsecase.GetRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	response := struct {
		Status          models.RequestStatus    `json:"status"`
		CompletedCount  int                     `json:"completed_count"`
		TotalCount      int                     `json:"total_count"`
		OverallProgress float64                 `json:"overall_progress"`
		ETASeconds      float64                 `json:"eta_seconds,omitempty"`
		Jobs            []models.RestorationJob `json:"jobs"`
		Error           string                  `json:"error,omitempty"`
	}{
		Status:          request.Status,
		CompletedCount:  request.CompletedCount,
		TotalCount:      request.TotalCount,
		OverallProgress: request.OverallProgress,
		ETASeconds:      request.ETASeconds,
		Jobs:            request.Jobs,
		Error:           request.Error,
	}

	responses.DoJSONResponse(w, response, http.StatusOK)
}

func (d *RestorationDelivery) CancelRestoration(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.CancelRestoration"
	logger.Debug("canceling restoration",
		zap.String("function", funcName),
	)

	id := mux.Vars(r)["id"]
	if err := d.restorationUsecase.CancelRequest(r.Context(), id); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{
		"id":     id,
		"status": models.StatusCanceled,
	}, http.StatusOK)
}

func (d *RestorationDelivery) SelectResult(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.SelectResult"
	logger.Debug("selecting restoration result",
		zap.String("function", funcName),
	)

	var body struct {
		JobIndex *int `json:"job_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.JobIndex == nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "job_index is required")
		return
	}

	request, err := d.restorationUsecase.SelectResult(r.Context(), mux.Vars(r)["id"], *body.JobIndex)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, request, http.StatusOK)
}

func (d *RestorationDelivery) AnimateRestoration(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.AnimateRestoration"
	logger.Debug("animating restoration",
		zap.String("function", funcName),
	)

	followUp, err := d.restorationUsecase.Animate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, followUp, http.StatusAccepted)
}

func (d *RestorationDelivery) DownloadArchive(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.DownloadArchive"
	logger.Debug("downloading archive",
		zap.String("function", funcName),
	)

	id := mux.Vars(r)["id"]
	zipPath, err := d.restorationUsecase.BuildArchive(r.Context(), id)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if _, err := os.Stat(zipPath); os.IsNotExist(err) {
		logger.Error("archive file not found",
			zap.String("function", funcName),
			zap.String("request_id", id),
			zap.String("path", zipPath),
			zap.Error(err),
		)
		responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "archive file missing")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filepath.Base(zipPath)))

	http.ServeFile(w, r, zipPath)

	logger.Info("archive downloaded successfully",
		zap.String("function", funcName),
		zap.String("request_id", id),
	)
}

func (d *RestorationDelivery) GetMediaURL(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.GetMediaURL"
	logger.Debug("resolving media url",
		zap.String("function", funcName),
	)

	vars := mux.Vars(r)
	mediaType := models.MediaImage
	if r.URL.Query().Get("type") == string(models.MediaVideo) {
		mediaType = models.MediaVideo
	}

	cached, err := d.restorationUsecase.ResolveMediaURL(r.Context(), vars["projectID"], vars["jobID"], mediaType)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if cached.Hidden {
		responses.DoJSONResponse(w, cached, http.StatusGone)
		return
	}

	responses.DoJSONResponse(w, cached, http.StatusOK)
}

func (d *RestorationDelivery) GetAllRestorations(w http.ResponseWriter, r *http.Request) {
	const funcName = "RestorationDelivery.GetAllRestorations"
	logger.Debug("getting all restorations",
		zap.String("function", funcName),
	)

	requests, err := d.restorationUsecase.GetAllRequests(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if len(requests) == 0 {
		responses.DoJSONResponse(w, map[string]any{
			"message":      "No restorations found",
			"suggestion":   "Create a new restoration with POST /api/v1/restorations",
			"count":        0,
			"restorations": []any{},
		}, http.StatusOK)
		return
	}

	response := make([]models.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, models.RequestResponse{
			ID:              request.ID,
			Status:          request.Status,
			MediaType:       request.MediaType,
			CreatedAt:       request.CreatedAt,
			CompletedCount:  request.CompletedCount,
			TotalCount:      request.TotalCount,
			OverallProgress: request.OverallProgress,
		})
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":        len(response),
		"restorations": response,
	}, http.StatusOK)
}

func (d *RestorationDelivery) Health(w http.ResponseWriter, r *http.Request) {
	responses.DoJSONResponse(w, map[string]any{
		"status":       "ok",
		"active_now":   d.restorationUsecase.GetActiveRequestsCount(),
		"max_requests": d.restorationUsecase.GetMaxRequests(),
	}, http.StatusOK)
}

func formInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.FormValue(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
