package delivery

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mock_app "github.com/supchaser/media_queue/internal/app/mocks"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestDownloadDelivery_RequestFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"url":"https://example.com/v"}`,
			mockSetup: func() {
				mockUsecase.EXPECT().
					RequestFormats(gomock.Any(), "https://example.com/v").
					Return("task-1", nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   `"task_id":"task-1"`,
		},
		{
			name:           "InvalidBody",
			body:           `{`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "InvalidURL",
			body: `{"url":"ftp://example.com"}`,
			mockSetup: func() {
				mockUsecase.EXPECT().
					RequestFormats(gomock.Any(), "ftp://example.com").
					Return("", errs.ErrInvalidURL)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("POST", "/api/v1/formats", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			downloadDelivery.RequestFormats(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestDownloadDelivery_GetFormats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		task           *models.Task
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Ready",
			task: &models.Task{
				ID:      "task-1",
				Status:  models.StatusIdle,
				Title:   "Clip",
				Formats: []models.Format{{FormatID: "18"}},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"format_id":"18"`,
		},
		{
			name:           "StillFetching",
			task:           &models.Task{ID: "task-1", Status: models.StatusFetching},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"fetching"`,
		},
		{
			name:           "DiscoveryFailed",
			task:           &models.Task{ID: "task-1", Status: models.StatusError, Error: "unsupported url"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "unsupported url",
		},
		{
			name:           "NotFound",
			err:            errs.ErrTaskNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase.EXPECT().GetTask(gomock.Any(), "task-1").Return(tt.task, tt.err)

			req := httptest.NewRequest("GET", "/api/v1/formats/task-1", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "task-1"})
			w := httptest.NewRecorder()

			downloadDelivery.GetFormats(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestDownloadDelivery_TaskControls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		handler        http.HandlerFunc
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:    "PauseSuccess",
			handler: downloadDelivery.PauseTask,
			mockSetup: func() {
				mockUsecase.EXPECT().PauseTask(gomock.Any(), "task-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "PauseNotActive",
			handler: downloadDelivery.PauseTask,
			mockSetup: func() {
				mockUsecase.EXPECT().PauseTask(gomock.Any(), "task-1").Return(errs.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "ResumeUnknown",
			handler: downloadDelivery.ResumeTask,
			mockSetup: func() {
				mockUsecase.EXPECT().ResumeTask(gomock.Any(), "task-1").Return(errs.ErrTaskNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "CancelSuccess",
			handler: downloadDelivery.CancelTask,
			mockSetup: func() {
				mockUsecase.EXPECT().CancelTask(gomock.Any(), "task-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "GetTask",
			handler: downloadDelivery.GetTask,
			mockSetup: func() {
				mockUsecase.EXPECT().GetTask(gomock.Any(), "task-1").
					Return(&models.Task{ID: "task-1", Status: models.StatusDownloading, Progress: 40}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("POST", "/api/v1/tasks/task-1", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "task-1"})
			w := httptest.NewRecorder()

			tt.handler(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDownloadDelivery_StartTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	body := models.DownloadRequest{FormatID: "18"}
	mockUsecase.EXPECT().StartTask(gomock.Any(), "task-1", body).Return(nil)

	req := httptest.NewRequest("POST", "/api/v1/tasks/task-1/start", jsonBody(t, body))
	req = mux.SetURLVars(req, map[string]string{"id": "task-1"})
	w := httptest.NewRecorder()

	downloadDelivery.StartTask(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"downloading"`)
}

func TestDownloadDelivery_CreateDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	body := models.DownloadRequest{URL: "https://example.com/v", AudioOnly: true}

	t.Run("Success", func(t *testing.T) {
		mockUsecase.EXPECT().CreateDownload(gomock.Any(), body).Return("task-9", nil)

		w := httptest.NewRecorder()
		downloadDelivery.CreateDownload(w, httptest.NewRequest("POST", "/api/v1/tasks", jsonBody(t, body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":"task-9"`)
	})

	t.Run("ShuttingDown", func(t *testing.T) {
		mockUsecase.EXPECT().CreateDownload(gomock.Any(), body).Return("", errs.ErrShuttingDown)

		w := httptest.NewRecorder()
		downloadDelivery.CreateDownload(w, httptest.NewRequest("POST", "/api/v1/tasks", jsonBody(t, body)))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestDownloadDelivery_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		body           models.QueueRequest
		mockSetup      func(req models.QueueRequest)
		expectedStatus int
	}{
		{
			name: "Success",
			body: models.QueueRequest{URL: "https://example.com/a", FormatID: "18"},
			mockSetup: func(req models.QueueRequest) {
				mockUsecase.EXPECT().Enqueue(gomock.Any(), req).Return(uint(3), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "FormatRequired",
			body: models.QueueRequest{URL: "https://example.com/a"},
			mockSetup: func(req models.QueueRequest) {
				mockUsecase.EXPECT().Enqueue(gomock.Any(), req).Return(uint(0), errs.ErrFormatRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.body)

			w := httptest.NewRecorder()
			downloadDelivery.Enqueue(w, httptest.NewRequest("POST", "/api/v1/queue", jsonBody(t, tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDownloadDelivery_ListQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	t.Run("Entries", func(t *testing.T) {
		mockUsecase.EXPECT().ListQueue(gomock.Any()).Return([]*models.QueueEntry{
			{ID: 1, Status: models.QueueDownloading, Progress: 40},
			{ID: 2, Status: models.QueuePending},
		}, nil)

		w := httptest.NewRecorder()
		downloadDelivery.ListQueue(w, httptest.NewRequest("GET", "/api/v1/queue", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int                  `json:"count"`
			Queue []*models.QueueEntry `json:"queue"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, 40.0, resp.Queue[0].Progress)
	})

	t.Run("Empty", func(t *testing.T) {
		mockUsecase.EXPECT().ListQueue(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		downloadDelivery.ListQueue(w, httptest.NewRequest("GET", "/api/v1/queue", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"queue":[]`)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		mockUsecase.EXPECT().ListQueue(gomock.Any()).Return(nil, errors.New("disk full"))

		w := httptest.NewRecorder()
		downloadDelivery.ListQueue(w, httptest.NewRequest("GET", "/api/v1/queue", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDownloadDelivery_DeleteQueueEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		id             string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			id:   "4",
			mockSetup: func() {
				mockUsecase.EXPECT().DeleteQueueEntry(gomock.Any(), uint(4)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "NotFound",
			id:   "4",
			mockSetup: func() {
				mockUsecase.EXPECT().DeleteQueueEntry(gomock.Any(), uint(4)).Return(errs.ErrQueueEntryNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "InvalidID",
			id:             "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ZeroID",
			id:             "0",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("DELETE", "/api/v1/queue/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			downloadDelivery.DeleteQueueEntry(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDownloadDelivery_QueueBulkActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		mockSetup    func()
		expectedBody string
	}{
		{
			name:    "Start",
			handler: downloadDelivery.StartQueue,
			mockSetup: func() {
				mockUsecase.EXPECT().StartQueue(gomock.Any()).Return(2, nil)
			},
			expectedBody: `{"started":2}`,
		},
		{
			name:    "Pause",
			handler: downloadDelivery.PauseQueue,
			mockSetup: func() {
				mockUsecase.EXPECT().PauseAll(gomock.Any()).Return(3)
			},
			expectedBody: `{"paused":3}`,
		},
		{
			name:    "Resume",
			handler: downloadDelivery.ResumeQueue,
			mockSetup: func() {
				mockUsecase.EXPECT().ResumeAll(gomock.Any()).Return(1)
			},
			expectedBody: `{"resumed":1}`,
		},
		{
			name:    "Stop",
			handler: downloadDelivery.StopQueue,
			mockSetup: func() {
				mockUsecase.EXPECT().StopAll(gomock.Any()).Return(2, nil)
			},
			expectedBody: `{"stopped":2}`,
		},
		{
			name:    "ClearFinished",
			handler: downloadDelivery.ClearFinished,
			mockSetup: func() {
				mockUsecase.EXPECT().ClearFinished(gomock.Any()).Return(int64(5), nil)
			},
			expectedBody: `{"deleted":5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			tt.handler(w, httptest.NewRequest("POST", "/api/v1/queue/action", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestDownloadDelivery_ListHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:  "DefaultLimit",
			query: "",
			mockSetup: func() {
				mockUsecase.EXPECT().ListHistory(gomock.Any(), 0).Return([]*models.HistoryRecord{{ID: 1}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "ExplicitLimit",
			query: "?limit=10",
			mockSetup: func() {
				mockUsecase.EXPECT().ListHistory(gomock.Any(), 10).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "InvalidLimit",
			query:          "?limit=-1",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			downloadDelivery.ListHistory(w, httptest.NewRequest("GET", "/api/v1/history"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDownloadDelivery_DeleteHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	tests := []struct {
		name           string
		target         string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "WithFile",
			target: "/api/v1/history/2?delete_file=true",
			mockSetup: func() {
				mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(2), true).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "RecordOnly",
			target: "/api/v1/history/2",
			mockSetup: func() {
				mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(2), false).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "NotFound",
			target: "/api/v1/history/2",
			mockSetup: func() {
				mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(2), false).Return(errs.ErrHistoryNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("DELETE", tt.target, nil)
			req = mux.SetURLVars(req, map[string]string{"id": "2"})
			w := httptest.NewRecorder()

			downloadDelivery.DeleteHistory(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestDownloadDelivery_DeleteHistoryBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	t.Run("PartialFailure", func(t *testing.T) {
		mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(1), true).Return(nil)
		mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(2), true).Return(errs.ErrHistoryNotFound)
		mockUsecase.EXPECT().DeleteHistory(gomock.Any(), uint(3), true).Return(nil)

		body := models.HistoryDeleteRequest{IDs: []uint{1, 2, 3}, DeleteFile: true}
		w := httptest.NewRecorder()
		downloadDelivery.DeleteHistoryBatch(w, httptest.NewRequest("POST", "/api/v1/history/delete", jsonBody(t, body)))

		assert.Equal(t, http.StatusOK, w.Code)

		var result models.HistoryDeleteResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, 2, result.DeletedCount)
		assert.Equal(t, map[uint]string{2: errs.ErrHistoryNotFound.Error()}, result.Failed)
	})

	t.Run("Empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		downloadDelivery.DeleteHistoryBatch(w, httptest.NewRequest("POST", "/api/v1/history/delete", strings.NewReader(`{"ids":[]}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("TooMany", func(t *testing.T) {
		ids := make([]uint, maxBatchDelete+1)
		for i := range ids {
			ids[i] = uint(i + 1)
		}
		w := httptest.NewRecorder()
		downloadDelivery.DeleteHistoryBatch(w, httptest.NewRequest("POST", "/api/v1/history/delete",
			jsonBody(t, models.HistoryDeleteRequest{IDs: ids})))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDownloadDelivery_TaskEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	t.Run("StreamsUntilClosed", func(t *testing.T) {
		stream := make(chan models.TaskSnapshot, 2)
		stream <- models.TaskSnapshot{ID: "task-1", Status: models.StatusDownloading, Progress: 40}
		stream <- models.TaskSnapshot{ID: "task-1", Status: models.StatusFinished, Progress: 100}
		close(stream)

		mockUsecase.EXPECT().WatchTask(gomock.Any(), "task-1").Return((<-chan models.TaskSnapshot)(stream), nil)

		req := httptest.NewRequest("GET", "/api/v1/tasks/task-1/events", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "task-1"})
		w := httptest.NewRecorder()

		downloadDelivery.TaskEvents(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.True(t, w.Flushed)

		events := strings.Split(strings.TrimSpace(w.Body.String()), "\n\n")
		require.Len(t, events, 2)
		assert.Contains(t, events[0], `"progress":40`)
		assert.Contains(t, events[1], `"status":"finished"`)
	})

	t.Run("UnknownTask", func(t *testing.T) {
		mockUsecase.EXPECT().WatchTask(gomock.Any(), "task-1").Return(nil, errs.ErrTaskNotFound)

		req := httptest.NewRequest("GET", "/api/v1/tasks/task-1/events", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "task-1"})
		w := httptest.NewRecorder()

		downloadDelivery.TaskEvents(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDownloadDelivery_QueueEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	stream := make(chan []models.ActiveJob, 1)
	stream <- []models.ActiveJob{{TaskID: "task-1", QueueID: 1, Progress: 12.5}}
	close(stream)

	mockUsecase.EXPECT().WatchActive(gomock.Any()).Return((<-chan []models.ActiveJob)(stream))

	w := httptest.NewRecorder()
	downloadDelivery.QueueEvents(w, httptest.NewRequest("GET", "/api/v1/queue/events", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "data: {\"active\":[{"))
	assert.Contains(t, w.Body.String(), `"progress":12.5`)
}

func TestDownloadDelivery_UIState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	t.Run("Get", func(t *testing.T) {
		mockUsecase.EXPECT().GetUIState(gomock.Any()).Return(map[string]string{"tab": "queue"}, nil)

		w := httptest.NewRecorder()
		downloadDelivery.GetUIState(w, httptest.NewRequest("GET", "/api/v1/ui-state", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tab":"queue"}`, w.Body.String())
	})

	t.Run("Save", func(t *testing.T) {
		mockUsecase.EXPECT().SaveUIState(gomock.Any(), map[string]string{"tab": "history"}).Return(nil)

		w := httptest.NewRecorder()
		downloadDelivery.SaveUIState(w, httptest.NewRequest("POST", "/api/v1/ui-state", strings.NewReader(`{"tab":"history"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SaveInvalidBody", func(t *testing.T) {
		w := httptest.NewRecorder()
		downloadDelivery.SaveUIState(w, httptest.NewRequest("POST", "/api/v1/ui-state", strings.NewReader(`["x"]`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDownloadDelivery_ConfigAndLogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_app.NewMockDownloadUsecase(ctrl)
	downloadDelivery := CreateDownloadDelivery(mockUsecase)

	mockUsecase.EXPECT().Settings().Return(models.Settings{
		DownloadFolder:  "/downloads",
		FFmpegAvailable: true,
		MaxConcurrent:   3,
	})

	w := httptest.NewRecorder()
	downloadDelivery.GetConfig(w, httptest.NewRequest("GET", "/api/v1/config", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"download_folder":"/downloads","ffmpeg_available":true,"max_concurrent":3}`, w.Body.String())

	w = httptest.NewRecorder()
	downloadDelivery.LogFrontendError(w, httptest.NewRequest("POST", "/api/v1/log-error",
		strings.NewReader(`{"type":"TypeError","message":"x is undefined"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
}
