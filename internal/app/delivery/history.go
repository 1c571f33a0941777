package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/responses"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxBatchDelete     = 100
	batchDeleteWorkers = 4
)

func (d *DownloadDelivery) ListHistory(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.ListHistory"

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := d.downloadUsecase.ListHistory(r.Context(), limit)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	if records == nil {
		records = []*models.HistoryRecord{}
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":   len(records),
		"history": records,
	}, http.StatusOK)
}

func (d *DownloadDelivery) GetHistory(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.GetHistory"

	id, ok := parseUintID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid history id")
		return
	}

	record, err := d.downloadUsecase.GetHistory(r.Context(), id)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, record, http.StatusOK)
}

// DeleteHistory removes one record; ?delete_file=true also removes the artifact.
func (d *DownloadDelivery) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.DeleteHistory"

	id, ok := parseUintID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid history id")
		return
	}

	deleteFile, _ := strconv.ParseBool(r.URL.Query().Get("delete_file"))

	if err := d.downloadUsecase.DeleteHistory(r.Context(), id, deleteFile); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"id": id, "status": "deleted"}, http.StatusOK)
}

func (d *DownloadDelivery) DeleteHistoryBatch(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.DeleteHistoryBatch"
	logger.Debug("deleting history records", zap.String("function", funcName))

	req := models.HistoryDeleteRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "no ids given")
		return
	}
	if len(req.IDs) > maxBatchDelete {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "too many ids per request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result := &models.HistoryDeleteResult{
		Failed: make(map[uint]string),
	}

	mu := sync.Mutex{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchDeleteWorkers)
	for _, id := range req.IDs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			err := d.downloadUsecase.DeleteHistory(ctx, id, req.DeleteFile)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed[id] = err.Error()
				logger.Warn("failed to delete history record",
					zap.String("function", funcName),
					zap.Uint("history_id", id),
					zap.Error(err),
				)
			} else {
				result.DeletedCount++
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusInternalServerError, "processing error")
		return
	}

	responses.DoJSONResponse(w, result, http.StatusOK)
}
