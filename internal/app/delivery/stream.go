package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/responses"
	"go.uber.org/zap"
)

// TaskEvents streams task snapshots as server-sent events until the task
// reaches a terminal state or the client goes away.
func (d *DownloadDelivery) TaskEvents(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.TaskEvents"

	flusher, ok := w.(http.Flusher)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	stream, err := d.downloadUsecase.WatchTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	startStream(w)
	for snapshot := range stream {
		if err := writeEvent(w, snapshot); err != nil {
			logger.Debug("task stream closed by client",
				zap.String("function", funcName),
				zap.Error(err),
			)
			return
		}
		flusher.Flush()
	}
}

// QueueEvents streams the active job table until the client disconnects.
func (d *DownloadDelivery) QueueEvents(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.QueueEvents"

	flusher, ok := w.(http.Flusher)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	stream := d.downloadUsecase.WatchActive(r.Context())

	startStream(w)
	for active := range stream {
		if err := writeEvent(w, map[string]any{"active": active}); err != nil {
			logger.Debug("queue stream closed by client",
				zap.String("function", funcName),
				zap.Error(err),
			)
			return
		}
		flusher.Flush()
	}
}

func startStream(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
}

func writeEvent(w http.ResponseWriter, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
