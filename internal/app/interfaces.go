package app

import (
	"context"

	"github.com/supchaser/media_queue/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type QueueRepository interface {
	Add(ctx context.Context, entry *models.QueueEntry) (uint, error)
	Get(ctx context.Context, id uint) (*models.QueueEntry, error)
	List(ctx context.Context) ([]*models.QueueEntry, error)
	CountByStatus(ctx context.Context, status models.QueueStatus) (int64, error)
	ClaimNextPending(ctx context.Context, taskID string) (*models.QueueEntry, error)
	UpdateMetadata(ctx context.Context, id uint, title, thumbnailPath string) error
	Complete(ctx context.Context, id uint, status models.QueueStatus, record *models.HistoryRecord) error
	Requeue(ctx context.Context, id uint) error
	ResetDownloading(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
	Clear(ctx context.Context) error
	DeleteTerminal(ctx context.Context) (int64, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, record *models.HistoryRecord) (uint, error)
	List(ctx context.Context, limit int) ([]*models.HistoryRecord, error)
	Get(ctx context.Context, id uint) (*models.HistoryRecord, error)
	Delete(ctx context.Context, id uint) error
}

type StateRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetMany(ctx context.Context, values map[string]string) error
}

// FetchControl is the read side of a job's pause and cancel flags as seen by
// the fetch engine.
type FetchControl interface {
	Paused() bool
	Cancelled() bool
	Done() <-chan struct{}
	WaitWhilePaused(ctx context.Context) error
}

// FetchHooks receive progress and the final artifact path from the engine.
// Either may be nil.
type FetchHooks struct {
	OnProgress func(percent float64)
	OnArtifact func(path string)
}

type Fetcher interface {
	FetchFormats(ctx context.Context, url string) (*models.MediaInfo, error)
	FetchMedia(ctx context.Context, req models.FetchRequest, ctl FetchControl, hooks FetchHooks) error
}

type ThumbnailFetcher interface {
	Fetch(ctx context.Context, url, name string) (string, error)
}

type Tagger interface {
	TagTitle(path, title string) error
}

type DownloadUsecase interface {
	RequestFormats(ctx context.Context, url string) (string, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	StartTask(ctx context.Context, id string, req models.DownloadRequest) error
	CreateDownload(ctx context.Context, req models.DownloadRequest) (string, error)
	PauseTask(ctx context.Context, id string) error
	ResumeTask(ctx context.Context, id string) error
	CancelTask(ctx context.Context, id string) error

	Enqueue(ctx context.Context, req models.QueueRequest) (uint, error)
	ListQueue(ctx context.Context) ([]*models.QueueEntry, error)
	DeleteQueueEntry(ctx context.Context, id uint) error
	StartQueue(ctx context.Context) (int, error)
	PauseAll(ctx context.Context) int
	ResumeAll(ctx context.Context) int
	StopAll(ctx context.Context) (int, error)
	ClearFinished(ctx context.Context) (int64, error)

	WatchTask(ctx context.Context, id string) (<-chan models.TaskSnapshot, error)
	WatchActive(ctx context.Context) <-chan []models.ActiveJob

	ListHistory(ctx context.Context, limit int) ([]*models.HistoryRecord, error)
	GetHistory(ctx context.Context, id uint) (*models.HistoryRecord, error)
	DeleteHistory(ctx context.Context, id uint, deleteFile bool) error

	GetUIState(ctx context.Context) (map[string]string, error)
	SaveUIState(ctx context.Context, values map[string]string) error

	Settings() models.Settings
}
