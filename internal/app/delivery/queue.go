package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/responses"
	"go.uber.org/zap"
)

func (d *DownloadDelivery) Enqueue(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.Enqueue"
	logger.Debug("adding queue entry", zap.String("function", funcName))

	req := models.QueueRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := d.downloadUsecase.Enqueue(r.Context(), req)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"id": id, "status": models.QueuePending}, http.StatusCreated)
}

func (d *DownloadDelivery) ListQueue(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.ListQueue"

	entries, err := d.downloadUsecase.ListQueue(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	if entries == nil {
		entries = []*models.QueueEntry{}
	}

	responses.DoJSONResponse(w, map[string]any{
		"count": len(entries),
		"queue": entries,
	}, http.StatusOK)
}

func (d *DownloadDelivery) DeleteQueueEntry(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.DeleteQueueEntry"

	id, ok := parseUintID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid queue entry id")
		return
	}

	if err := d.downloadUsecase.DeleteQueueEntry(r.Context(), id); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"id": id, "status": "deleted"}, http.StatusOK)
}

func (d *DownloadDelivery) StartQueue(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.StartQueue"

	started, err := d.downloadUsecase.StartQueue(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"started": started}, http.StatusOK)
}

func (d *DownloadDelivery) PauseQueue(w http.ResponseWriter, r *http.Request) {
	responses.DoJSONResponse(w, map[string]any{"paused": d.downloadUsecase.PauseAll(r.Context())}, http.StatusOK)
}

func (d *DownloadDelivery) ResumeQueue(w http.ResponseWriter, r *http.Request) {
	responses.DoJSONResponse(w, map[string]any{"resumed": d.downloadUsecase.ResumeAll(r.Context())}, http.StatusOK)
}

func (d *DownloadDelivery) StopQueue(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.StopQueue"

	stopped, err := d.downloadUsecase.StopAll(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"stopped": stopped}, http.StatusOK)
}

func (d *DownloadDelivery) ClearFinished(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.ClearFinished"

	deleted, err := d.downloadUsecase.ClearFinished(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"deleted": deleted}, http.StatusOK)
}
