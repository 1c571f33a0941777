package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/supchaser/media_queue/internal/app"
	"github.com/supchaser/media_queue/internal/app/jobs"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

var (
	errMaxDurationExceeded = errors.New("download exceeded maximum duration")
	errNoArtifact          = errors.New("engine reported success without an output file")
)

// runJob owns job from promotion until its outcome is recorded.
func (u *DownloadUsecase) runJob(job *jobs.Job) {
	const funcName = "DownloadUsecase.runJob"

	logger.Info("starting download",
		zap.String("function", funcName),
		zap.String("task_id", job.TaskID),
		zap.Uint("queue_id", job.QueueID),
		zap.String("url", job.URL),
	)

	err := u.execute(job)
	if err == nil && job.ArtifactPath() == "" {
		err = errNoArtifact
	}
	status := classifyOutcome(job, err)
	u.finalize(job, status, err)
}

func (u *DownloadUsecase) execute(job *jobs.Job) (err error) {
	const funcName = "DownloadUsecase.execute"

	defer func() {
		if r := recover(); r != nil {
			logger.Error("worker panic recovered",
				zap.String("function", funcName),
				zap.String("task_id", job.TaskID),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()

	ctx, cancel := context.WithCancel(u.baseCtx)
	defer cancel()
	if u.opts.MaxDuration > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeoutCause(ctx, u.opts.MaxDuration, errMaxDurationExceeded)
		defer cancelTimeout()
	}

	u.resolveMetadata(ctx, job)

	hooks := app.FetchHooks{
		OnProgress: func(percent float64) {
			job.SetProgress(percent)
			u.registry.Update(job.TaskID, func(t *models.Task) {
				t.Progress = percent
			})
		},
		OnArtifact: job.SetArtifactPath,
	}

	err = u.fetcher.FetchMedia(ctx, job.FetchRequest(), job.Controls, hooks)
	if err != nil && errors.Is(context.Cause(ctx), errMaxDurationExceeded) && !job.Controls.Cancelled() {
		logger.Warn("download stopped by watchdog",
			zap.String("function", funcName),
			zap.String("task_id", job.TaskID),
			zap.Duration("max_duration", u.opts.MaxDuration),
		)
		return fmt.Errorf("%w: %v", errMaxDurationExceeded, err)
	}
	return err
}

// resolveMetadata fills in a missing title and thumbnail. Failures only
// degrade the recorded data.
func (u *DownloadUsecase) resolveMetadata(ctx context.Context, job *jobs.Job) {
	const funcName = "DownloadUsecase.resolveMetadata"

	needTitle := job.Title() == ""
	needThumb := u.thumbnails != nil && job.ThumbnailPath() == ""
	if !needTitle && !needThumb {
		return
	}

	info, err := u.fetcher.FetchFormats(ctx, job.URL)
	if err != nil {
		logger.Warn("failed to resolve media info",
			zap.String("function", funcName),
			zap.String("task_id", job.TaskID),
			zap.Error(err),
		)
		return
	}

	if needTitle && info.Title != "" {
		job.SetTitle(info.Title)
		u.registry.Update(job.TaskID, func(t *models.Task) {
			t.Title = info.Title
		})
	}

	if needThumb && info.ThumbnailURL != "" {
		path, err := u.thumbnails.Fetch(ctx, info.ThumbnailURL, thumbnailName(job))
		if err != nil {
			logger.Warn("failed to fetch thumbnail",
				zap.String("function", funcName),
				zap.String("task_id", job.TaskID),
				zap.Error(err),
			)
		} else {
			job.SetThumbnailPath(path)
		}
	}

	if job.QueueID == 0 {
		return
	}
	if err := u.queueRepo.UpdateMetadata(ctx, job.QueueID, job.Title(), job.ThumbnailPath()); err != nil {
		logger.Warn("failed to store queue entry metadata",
			zap.String("function", funcName),
			zap.Uint("queue_id", job.QueueID),
			zap.Error(err),
		)
	}
}

func thumbnailName(job *jobs.Job) string {
	if job.QueueID != 0 {
		return fmt.Sprintf("queue_%d", job.QueueID)
	}
	return job.TaskID
}

func classifyOutcome(job *jobs.Job, err error) models.QueueStatus {
	switch {
	case err == nil:
		return models.QueueFinished
	case errors.Is(err, errs.ErrCancelled), job.Controls.Cancelled():
		return models.QueueCancelled
	default:
		return models.QueueError
	}
}

func taskStatus(status models.QueueStatus) models.TaskStatus {
	switch status {
	case models.QueueFinished:
		return models.StatusFinished
	case models.QueueCancelled:
		return models.StatusCancelled
	default:
		return models.StatusError
	}
}

// finalize hands the job over from live to durable state: the job leaves the
// active table, history and queue status are written together, the task
// becomes terminal and admission runs once.
func (u *DownloadUsecase) finalize(job *jobs.Job, status models.QueueStatus, jobErr error) {
	const funcName = "DownloadUsecase.finalize"

	artifact := ""
	errMsg := ""
	switch status {
	case models.QueueFinished:
		artifact = job.ArtifactPath()
		u.tagArtifact(job, artifact)
	case models.QueueError:
		errMsg = jobErr.Error()
		job.SetError(errMsg)
	}

	u.active.Remove(job.TaskID)

	if u.closing.Load() && job.QueueID != 0 && status != models.QueueFinished {
		u.requeueInterrupted(job)
		return
	}

	record := &models.HistoryRecord{
		URL:           job.URL,
		Title:         job.Title(),
		FormatID:      job.FormatID,
		FormatLabel:   job.FormatLabel,
		AudioOnly:     job.AudioOnly,
		Status:        status,
		FilePath:      artifact,
		ThumbnailPath: job.ThumbnailPath(),
		Error:         errMsg,
	}
	if record.Title == "" {
		record.Title = job.URL
	}

	if err := u.persistOutcome(job, status, record); err != nil {
		logger.Error("failed to record download outcome",
			zap.String("function", funcName),
			zap.String("task_id", job.TaskID),
			zap.Uint("queue_id", job.QueueID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}

	u.registry.Update(job.TaskID, func(t *models.Task) {
		t.Status = taskStatus(status)
		t.Paused = false
		t.ArtifactPath = artifact
		t.Error = errMsg
		if status == models.QueueFinished {
			t.Progress = 100
		}
		if status == models.QueueCancelled {
			t.Cancelled = true
		}
	})

	logger.Info("download finished",
		zap.String("function", funcName),
		zap.String("task_id", job.TaskID),
		zap.Uint("queue_id", job.QueueID),
		zap.String("status", string(status)),
		zap.String("file", artifact),
	)

	ctx, cancel := u.persistContext()
	defer cancel()
	if _, err := u.TryPromoteNext(ctx); err != nil {
		logger.Warn("admission after completion failed",
			zap.String("function", funcName),
			zap.Error(err),
		)
	}
}

func (u *DownloadUsecase) persistOutcome(job *jobs.Job, status models.QueueStatus, record *models.HistoryRecord) error {
	const funcName = "DownloadUsecase.persistOutcome"

	var err error
	for attempt := 1; attempt <= u.opts.FinalizeRetries; attempt++ {
		ctx, cancel := u.persistContext()
		if job.QueueID != 0 {
			err = u.queueRepo.Complete(ctx, job.QueueID, status, record)
		} else {
			_, err = u.historyRepo.Append(ctx, record)
		}
		cancel()
		if err == nil {
			return nil
		}

		logger.Warn("persisting outcome failed, retrying",
			zap.String("function", funcName),
			zap.String("task_id", job.TaskID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	return err
}

func (u *DownloadUsecase) requeueInterrupted(job *jobs.Job) {
	const funcName = "DownloadUsecase.requeueInterrupted"

	ctx, cancel := u.persistContext()
	defer cancel()

	if err := u.queueRepo.Requeue(ctx, job.QueueID); err != nil {
		logger.Error("failed to requeue interrupted entry",
			zap.String("function", funcName),
			zap.Uint("queue_id", job.QueueID),
			zap.Error(err),
		)
	}

	u.registry.Update(job.TaskID, func(t *models.Task) {
		t.Status = models.StatusCancelled
		t.Cancelled = true
		t.Paused = false
	})

	logger.Info("interrupted entry returned to queue",
		zap.String("function", funcName),
		zap.Uint("queue_id", job.QueueID),
	)
}

func (u *DownloadUsecase) tagArtifact(job *jobs.Job, path string) {
	if u.tagger == nil || !job.AudioOnly || path == "" {
		return
	}
	title := job.Title()
	if title == "" || !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return
	}

	if err := u.tagger.TagTitle(path, title); err != nil {
		logger.Warn("failed to tag audio file",
			zap.String("function", "DownloadUsecase.tagArtifact"),
			zap.String("file", path),
			zap.Error(err),
		)
	}
}
