package usecase

import (
	"context"
	"strings"

	"github.com/supchaser/media_queue/internal/app/jobs"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/validate"
	"go.uber.org/zap"
)

// RequestFormats creates a task and runs format discovery for url in the
// background. The task moves to fetching and then to idle with formats
// attached, or to error.
func (u *DownloadUsecase) RequestFormats(ctx context.Context, url string) (string, error) {
	const funcName = "DownloadUsecase.RequestFormats"

	url = strings.TrimSpace(url)
	if err := validate.ValidateURL(url); err != nil {
		logger.Warn("invalid url for format discovery",
			zap.String("function", funcName),
			zap.String("url", url),
		)
		return "", err
	}

	taskID := u.registry.Create()
	u.registry.Update(taskID, func(t *models.Task) {
		t.Status = models.StatusFetching
		t.URL = url
	})

	logger.Debug("format discovery requested",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("url", url),
	)

	go u.discoverFormats(taskID, url)

	return taskID, nil
}

func (u *DownloadUsecase) discoverFormats(taskID, url string) {
	const funcName = "DownloadUsecase.discoverFormats"

	info, err := u.fetcher.FetchFormats(u.baseCtx, url)
	if err != nil {
		logger.Warn("format discovery failed",
			zap.String("function", funcName),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		u.registry.Update(taskID, func(t *models.Task) {
			if t.Status == models.StatusFetching {
				t.Status = models.StatusError
				t.Error = err.Error()
			}
		})
		return
	}

	u.registry.Update(taskID, func(t *models.Task) {
		if t.Status != models.StatusFetching {
			return
		}
		t.Status = models.StatusIdle
		t.Title = info.Title
		t.Formats = info.Formats
	})

	logger.Info("formats discovered",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.Int("formats", len(info.Formats)),
	)
}

func (u *DownloadUsecase) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task, ok := u.registry.Get(id)
	if !ok {
		logger.Warn("task not found",
			zap.String("function", "DownloadUsecase.GetTask"),
			zap.String("task_id", id),
		)
		return nil, errs.ErrTaskNotFound
	}
	return &task, nil
}

// StartTask begins downloading a task that finished format discovery.
func (u *DownloadUsecase) StartTask(ctx context.Context, id string, req models.DownloadRequest) error {
	const funcName = "DownloadUsecase.StartTask"

	task, ok := u.registry.Get(id)
	if !ok {
		return errs.ErrTaskNotFound
	}
	if req.URL == "" {
		req.URL = task.URL
	}
	if err := u.validateDownload(req); err != nil {
		return err
	}

	if err := u.startAdHoc(id, req); err != nil {
		logger.Warn("failed to start task",
			zap.String("function", funcName),
			zap.String("task_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CreateDownload creates a task and starts downloading it straight away.
func (u *DownloadUsecase) CreateDownload(ctx context.Context, req models.DownloadRequest) (string, error) {
	const funcName = "DownloadUsecase.CreateDownload"

	if err := u.validateDownload(req); err != nil {
		logger.Warn("invalid download request",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return "", err
	}

	taskID := u.registry.Create()
	if err := u.startAdHoc(taskID, req); err != nil {
		return "", err
	}
	return taskID, nil
}

func (u *DownloadUsecase) validateDownload(req models.DownloadRequest) error {
	if err := validate.ValidateURL(req.URL); err != nil {
		return err
	}
	return validate.ValidateFormatSelection(req.FormatID, req.AudioOnly)
}

func (u *DownloadUsecase) startAdHoc(taskID string, req models.DownloadRequest) error {
	const funcName = "DownloadUsecase.startAdHoc"

	if u.closing.Load() {
		return errs.ErrShuttingDown
	}

	folder := req.DownloadFolder
	if folder == "" {
		folder = u.opts.DownloadDir
	}
	url := strings.TrimSpace(req.URL)

	var (
		started bool
		title   string
		label   string
	)
	u.registry.Update(taskID, func(t *models.Task) {
		if t.Status != models.StatusIdle {
			return
		}
		started = true
		t.Status = models.StatusDownloading
		t.URL = url
		t.FormatID = req.FormatID
		t.AudioOnly = req.AudioOnly
		t.Progress = 0
		t.Error = ""
		title = t.Title
		for _, f := range t.Formats {
			if f.FormatID == req.FormatID {
				label = f.Label()
				break
			}
		}
	})
	if !started {
		return errs.ErrInvalidState
	}

	job := jobs.NewJob(taskID, 0, models.FetchRequest{
		URL:            url,
		FormatID:       req.FormatID,
		DownloadFolder: folder,
		AudioOnly:      req.AudioOnly,
	})
	job.FormatLabel = label
	job.SetTitle(title)

	if err := u.active.Add(job); err != nil {
		u.registry.Update(taskID, func(t *models.Task) {
			t.Status = models.StatusError
			t.Error = err.Error()
		})
		return err
	}

	logger.Info("starting ad-hoc download",
		zap.String("function", funcName),
		zap.String("task_id", taskID),
		zap.String("url", url),
		zap.String("format_id", req.FormatID),
		zap.Bool("audio_only", req.AudioOnly),
	)

	if !u.spawn(job) {
		u.active.Remove(taskID)
		u.registry.Update(taskID, func(t *models.Task) {
			t.Status = models.StatusCancelled
			t.Cancelled = true
		})
		return errs.ErrShuttingDown
	}
	return nil
}

// PauseTask suspends an active job. Pausing a paused job is a no-op.
func (u *DownloadUsecase) PauseTask(ctx context.Context, id string) error {
	job, err := u.activeJob(id)
	if err != nil {
		return err
	}
	u.pauseJob(job)
	return nil
}

// ResumeTask resumes a paused job. Resuming a running job is a no-op.
func (u *DownloadUsecase) ResumeTask(ctx context.Context, id string) error {
	job, err := u.activeJob(id)
	if err != nil {
		return err
	}
	u.resumeJob(job)
	return nil
}

// CancelTask requests cancellation of an active job. A task that has not
// started downloading is cancelled directly.
func (u *DownloadUsecase) CancelTask(ctx context.Context, id string) error {
	const funcName = "DownloadUsecase.CancelTask"

	if job, ok := u.active.Get(id); ok {
		u.cancelJob(job)
		return nil
	}

	var (
		found   bool
		allowed bool
	)
	found = u.registry.Update(id, func(t *models.Task) {
		switch t.Status {
		case models.StatusIdle, models.StatusFetching:
			t.Status = models.StatusCancelled
			t.Cancelled = true
			allowed = true
		case models.StatusCancelled:
			allowed = true
		}
	})
	if !found {
		return errs.ErrTaskNotFound
	}
	if !allowed {
		logger.Warn("cannot cancel task in current state",
			zap.String("function", funcName),
			zap.String("task_id", id),
		)
		return errs.ErrInvalidState
	}
	return nil
}

func (u *DownloadUsecase) activeJob(id string) (*jobs.Job, error) {
	if job, ok := u.active.Get(id); ok {
		return job, nil
	}
	if _, ok := u.registry.Get(id); !ok {
		return nil, errs.ErrTaskNotFound
	}
	return nil, errs.ErrInvalidState
}

func (u *DownloadUsecase) pauseJob(job *jobs.Job) bool {
	if !job.Controls.Pause() {
		return false
	}
	u.registry.Update(job.TaskID, func(t *models.Task) {
		if t.Status.IsTerminal() {
			return
		}
		t.Paused = true
		if t.Status == models.StatusDownloading {
			t.Status = models.StatusPaused
		}
	})
	logger.Info("job paused",
		zap.String("function", "DownloadUsecase.pauseJob"),
		zap.String("task_id", job.TaskID),
	)
	return true
}

func (u *DownloadUsecase) resumeJob(job *jobs.Job) bool {
	if !job.Controls.Resume() {
		return false
	}
	u.registry.Update(job.TaskID, func(t *models.Task) {
		t.Paused = false
		if t.Status == models.StatusPaused {
			t.Status = models.StatusDownloading
		}
	})
	logger.Info("job resumed",
		zap.String("function", "DownloadUsecase.resumeJob"),
		zap.String("task_id", job.TaskID),
	)
	return true
}

func (u *DownloadUsecase) cancelJob(job *jobs.Job) bool {
	if !job.Controls.Cancel() {
		return false
	}
	u.registry.Update(job.TaskID, func(t *models.Task) {
		if !t.Status.IsTerminal() {
			t.Cancelled = true
		}
	})
	logger.Info("job cancellation requested",
		zap.String("function", "DownloadUsecase.cancelJob"),
		zap.String("task_id", job.TaskID),
		zap.Uint("queue_id", job.QueueID),
	)
	return true
}
