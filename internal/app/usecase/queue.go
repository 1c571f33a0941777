package usecase

import (
	"context"
	"strings"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"github.com/supchaser/media_queue/internal/utils/validate"
	"go.uber.org/zap"
)

// Enqueue stores a pending entry. Title and thumbnail are resolved when the
// entry is promoted.
func (u *DownloadUsecase) Enqueue(ctx context.Context, req models.QueueRequest) (uint, error) {
	const funcName = "DownloadUsecase.Enqueue"

	req.URL = strings.TrimSpace(req.URL)
	if err := validate.ValidateURL(req.URL); err != nil {
		logger.Warn("invalid url for queue entry",
			zap.String("function", funcName),
			zap.String("url", req.URL),
		)
		return 0, err
	}
	if err := validate.ValidateFormatSelection(req.FormatID, req.AudioOnly); err != nil {
		return 0, err
	}

	folder := req.DownloadFolder
	if folder == "" {
		folder = u.opts.DownloadDir
	}

	entry := &models.QueueEntry{
		URL:            req.URL,
		Title:          req.Title,
		FormatID:       req.FormatID,
		FormatLabel:    req.FormatLabel,
		AudioOnly:      req.AudioOnly,
		DownloadFolder: folder,
	}

	id, err := u.queueRepo.Add(ctx, entry)
	if err != nil {
		logger.Error("failed to add queue entry",
			zap.String("function", funcName),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return 0, err
	}

	logger.Info("queue entry added",
		zap.String("function", funcName),
		zap.Uint("queue_id", id),
	)
	return id, nil
}

// ListQueue returns all entries with live progress merged into active ones.
func (u *DownloadUsecase) ListQueue(ctx context.Context) ([]*models.QueueEntry, error) {
	const funcName = "DownloadUsecase.ListQueue"

	entries, err := u.queueRepo.List(ctx)
	if err != nil {
		logger.Error("failed to list queue",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	for _, entry := range entries {
		switch entry.Status {
		case models.QueueFinished:
			entry.Progress = 100
		case models.QueueDownloading:
			if job, ok := u.active.GetByQueue(entry.ID); ok {
				snap := job.Snapshot()
				entry.Progress = snap.Progress
				entry.Paused = snap.Paused
				if entry.Title == "" {
					entry.Title = snap.Title
				}
			}
		}
	}
	return entries, nil
}

// DeleteQueueEntry removes an entry, cancelling its job when one is active.
func (u *DownloadUsecase) DeleteQueueEntry(ctx context.Context, id uint) error {
	const funcName = "DownloadUsecase.DeleteQueueEntry"

	if _, err := u.queueRepo.Get(ctx, id); err != nil {
		return err
	}

	if job, ok := u.active.GetByQueue(id); ok {
		u.cancelJob(job)
	}

	if err := u.queueRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete queue entry",
			zap.String("function", funcName),
			zap.Uint("queue_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Info("queue entry deleted",
		zap.String("function", funcName),
		zap.Uint("queue_id", id),
	)
	return nil
}

// PauseAll pauses every running queued job and returns how many changed.
func (u *DownloadUsecase) PauseAll(ctx context.Context) int {
	n := 0
	for _, job := range u.active.Queued() {
		if u.pauseJob(job) {
			n++
		}
	}
	logger.Info("queue paused",
		zap.String("function", "DownloadUsecase.PauseAll"),
		zap.Int("paused", n),
	)
	return n
}

// ResumeAll resumes every paused queued job and returns how many changed.
func (u *DownloadUsecase) ResumeAll(ctx context.Context) int {
	n := 0
	for _, job := range u.active.Queued() {
		if u.resumeJob(job) {
			n++
		}
	}
	logger.Info("queue resumed",
		zap.String("function", "DownloadUsecase.ResumeAll"),
		zap.Int("resumed", n),
	)
	return n
}

// StopAll clears the queue and cancels every active queued job. Admission is
// held off while the queue is cleared so no entry is promoted in between.
func (u *DownloadUsecase) StopAll(ctx context.Context) (int, error) {
	const funcName = "DownloadUsecase.StopAll"

	u.admitMu.Lock()
	defer u.admitMu.Unlock()

	if err := u.queueRepo.Clear(ctx); err != nil {
		logger.Error("failed to clear queue",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return 0, err
	}

	n := 0
	for _, job := range u.active.Queued() {
		if u.cancelJob(job) {
			n++
		}
	}

	logger.Info("queue stopped",
		zap.String("function", funcName),
		zap.Int("cancelled", n),
	)
	return n, nil
}

// ClearFinished removes entries in a terminal state.
func (u *DownloadUsecase) ClearFinished(ctx context.Context) (int64, error) {
	const funcName = "DownloadUsecase.ClearFinished"

	n, err := u.queueRepo.DeleteTerminal(ctx)
	if err != nil {
		logger.Error("failed to clear finished entries",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return 0, err
	}
	return n, nil
}
