package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestResponseErrorAndLog(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "TaskNotFound", err: errs.ErrTaskNotFound, expectedStatus: http.StatusNotFound},
		{name: "QueueEntryNotFound", err: fmt.Errorf("wrap: %w", errs.ErrQueueEntryNotFound), expectedStatus: http.StatusNotFound},
		{name: "HistoryNotFound", err: errs.ErrHistoryNotFound, expectedStatus: http.StatusNotFound},
		{name: "InvalidURL", err: errs.ErrInvalidURL, expectedStatus: http.StatusBadRequest},
		{name: "FormatRequired", err: errs.ErrFormatRequired, expectedStatus: http.StatusBadRequest},
		{name: "InvalidState", err: errs.ErrInvalidState, expectedStatus: http.StatusConflict},
		{name: "AlreadyActive", err: errs.ErrAlreadyActive, expectedStatus: http.StatusConflict},
		{name: "ShuttingDown", err: errs.ErrShuttingDown, expectedStatus: http.StatusServiceUnavailable},
		{name: "Unknown", err: errors.New("disk on fire"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ResponseErrorAndLog(w, tt.err, "test")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body BadResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.NotEmpty(t, body.Text)
		})
	}
}

func TestDoJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	DoJSONResponse(w, map[string]int{"count": 2}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
	assert.Equal(t, "11", w.Header().Get("Content-Length"))
}

func TestDoJSONResponse_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()
	DoJSONResponse(w, map[string]any{"bad": make(chan int)}, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
