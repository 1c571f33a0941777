package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/responses"
	"go.uber.org/zap"
)

func (d *DownloadDelivery) RequestFormats(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.RequestFormats"
	logger.Debug("requesting formats", zap.String("function", funcName))

	req := models.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := d.downloadUsecase.RequestFormats(r.Context(), req.URL)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID}, http.StatusAccepted)
}

// GetFormats reports the discovery result: the formats once the task is idle
// again, the error if discovery failed, the current status otherwise.
func (d *DownloadDelivery) GetFormats(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.GetFormats"

	task, err := d.downloadUsecase.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	switch {
	case task.Status == models.StatusError:
		responses.DoJSONResponse(w, map[string]any{"error": task.Error}, http.StatusInternalServerError)
	case task.Status == models.StatusIdle && task.Formats != nil:
		responses.DoJSONResponse(w, map[string]any{
			"title":   task.Title,
			"formats": task.Formats,
		}, http.StatusOK)
	default:
		responses.DoJSONResponse(w, map[string]any{"status": task.Status}, http.StatusOK)
	}
}

func (d *DownloadDelivery) GetTask(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.GetTask"

	task, err := d.downloadUsecase.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, task, http.StatusOK)
}

func (d *DownloadDelivery) CreateDownload(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.CreateDownload"
	logger.Debug("creating download", zap.String("function", funcName))

	req := models.DownloadRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := d.downloadUsecase.CreateDownload(r.Context(), req)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID}, http.StatusCreated)
}

func (d *DownloadDelivery) StartTask(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.StartTask"

	req := models.DownloadRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID := mux.Vars(r)["id"]
	if err := d.downloadUsecase.StartTask(r.Context(), taskID, req); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID, "status": models.StatusDownloading}, http.StatusOK)
}

func (d *DownloadDelivery) PauseTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	if err := d.downloadUsecase.PauseTask(r.Context(), taskID); err != nil {
		responses.ResponseErrorAndLog(w, err, "DownloadDelivery.PauseTask")
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID, "status": models.StatusPaused}, http.StatusOK)
}

func (d *DownloadDelivery) ResumeTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	if err := d.downloadUsecase.ResumeTask(r.Context(), taskID); err != nil {
		responses.ResponseErrorAndLog(w, err, "DownloadDelivery.ResumeTask")
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID, "status": models.StatusDownloading}, http.StatusOK)
}

func (d *DownloadDelivery) CancelTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	if err := d.downloadUsecase.CancelTask(r.Context(), taskID); err != nil {
		responses.ResponseErrorAndLog(w, err, "DownloadDelivery.CancelTask")
		return
	}

	responses.DoJSONResponse(w, map[string]any{"task_id": taskID, "status": models.StatusCancelled}, http.StatusOK)
}
