package usecase

import (
	"context"

	"github.com/supchaser/media_queue/internal/app/jobs"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

// TryPromoteNext promotes the oldest pending entry when fewer than the
// configured number of entries are downloading. It reports whether an entry
// was promoted. A queued worker holds its slot until it exits, even when its
// row is already gone.
func (u *DownloadUsecase) TryPromoteNext(ctx context.Context) (bool, error) {
	const funcName = "DownloadUsecase.TryPromoteNext"

	if u.closing.Load() {
		return false, nil
	}

	u.admitMu.Lock()
	defer u.admitMu.Unlock()

	if u.closing.Load() {
		return false, nil
	}

	running, err := u.queueRepo.CountByStatus(ctx, models.QueueDownloading)
	if err != nil {
		logger.Error("failed to count downloading entries",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return false, err
	}
	if live := int64(len(u.active.Queued())); live > running {
		running = live
	}
	if running >= int64(u.opts.MaxConcurrent) {
		logger.Debug("concurrency limit reached",
			zap.String("function", funcName),
			zap.Int64("running", running),
			zap.Int("limit", u.opts.MaxConcurrent),
		)
		return false, nil
	}

	taskID := jobs.NewTaskID()
	entry, err := u.queueRepo.ClaimNextPending(ctx, taskID)
	if err != nil {
		logger.Error("failed to claim pending entry",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return false, err
	}
	if entry == nil {
		return false, nil
	}

	if err := u.promote(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

// promote starts the worker for an entry already claimed as downloading.
func (u *DownloadUsecase) promote(ctx context.Context, entry *models.QueueEntry) error {
	const funcName = "DownloadUsecase.promote"

	folder := entry.DownloadFolder
	if folder == "" {
		folder = u.opts.DownloadDir
	}

	job := jobs.NewJob(entry.TaskID, entry.ID, models.FetchRequest{
		URL:            entry.URL,
		FormatID:       entry.FormatID,
		DownloadFolder: folder,
		AudioOnly:      entry.AudioOnly,
	})
	job.FormatLabel = entry.FormatLabel
	job.SetTitle(entry.Title)
	job.SetThumbnailPath(entry.ThumbnailPath)

	if err := u.active.Add(job); err != nil {
		logger.Error("queue entry already active, returning it to pending",
			zap.String("function", funcName),
			zap.Uint("queue_id", entry.ID),
			zap.Error(err),
		)
		if rqErr := u.queueRepo.Requeue(ctx, entry.ID); rqErr != nil {
			logger.Error("failed to requeue entry",
				zap.String("function", funcName),
				zap.Uint("queue_id", entry.ID),
				zap.Error(rqErr),
			)
		}
		return err
	}

	u.registry.Register(entry.TaskID)
	u.registry.Update(entry.TaskID, func(t *models.Task) {
		t.Status = models.StatusDownloading
		t.URL = entry.URL
		t.Title = entry.Title
		t.FormatID = entry.FormatID
		t.AudioOnly = entry.AudioOnly
		t.QueueID = entry.ID
	})

	logger.Info("queue entry promoted",
		zap.String("function", funcName),
		zap.Uint("queue_id", entry.ID),
		zap.String("task_id", entry.TaskID),
	)

	if !u.spawn(job) {
		u.active.Remove(entry.TaskID)
		if err := u.queueRepo.Requeue(ctx, entry.ID); err != nil {
			logger.Error("failed to requeue entry",
				zap.String("function", funcName),
				zap.Uint("queue_id", entry.ID),
				zap.Error(err),
			)
		}
		return errs.ErrShuttingDown
	}
	return nil
}

// StartQueue admits pending entries until the limit is reached or nothing is
// pending. It returns the number of entries promoted.
func (u *DownloadUsecase) StartQueue(ctx context.Context) (int, error) {
	const funcName = "DownloadUsecase.StartQueue"

	started := 0
	for {
		promoted, err := u.TryPromoteNext(ctx)
		if err != nil {
			return started, err
		}
		if !promoted {
			break
		}
		started++
	}

	logger.Info("queue started",
		zap.String("function", funcName),
		zap.Int("promoted", started),
	)
	return started, nil
}
