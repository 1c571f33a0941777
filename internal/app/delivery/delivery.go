package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/supchaser/media_queue/internal/app"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/responses"
	"go.uber.org/zap"
)

type DownloadDelivery struct {
	downloadUsecase app.DownloadUsecase
}

func CreateDownloadDelivery(downloadUsecase app.DownloadUsecase) *DownloadDelivery {
	return &DownloadDelivery{
		downloadUsecase: downloadUsecase,
	}
}

func (d *DownloadDelivery) GetConfig(w http.ResponseWriter, r *http.Request) {
	responses.DoJSONResponse(w, d.downloadUsecase.Settings(), http.StatusOK)
}

func (d *DownloadDelivery) GetUIState(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.GetUIState"

	state, err := d.downloadUsecase.GetUIState(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, state, http.StatusOK)
}

func (d *DownloadDelivery) SaveUIState(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.SaveUIState"

	values := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := d.downloadUsecase.SaveUIState(r.Context(), values); err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]any{"status": "saved"}, http.StatusOK)
}

// LogFrontendError records errors reported by the browser UI.
func (d *DownloadDelivery) LogFrontendError(w http.ResponseWriter, r *http.Request) {
	const funcName = "DownloadDelivery.LogFrontendError"

	report := models.FrontendError{}
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logger.Error("frontend error",
		zap.String("function", funcName),
		zap.String("type", report.Type),
		zap.String("message", report.Message),
		zap.String("stack", report.Stack),
		zap.String("timestamp", report.Timestamp),
	)

	responses.DoJSONResponse(w, map[string]any{"status": "logged"}, http.StatusOK)
}

func parseUintID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
