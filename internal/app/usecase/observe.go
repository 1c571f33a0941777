package usecase

import (
	"context"
	"time"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

// WatchTask streams snapshots of a task at the configured interval. The
// channel holds only the latest snapshot and is closed after a terminal
// snapshot or when ctx is done.
func (u *DownloadUsecase) WatchTask(ctx context.Context, id string) (<-chan models.TaskSnapshot, error) {
	if _, ok := u.registry.Get(id); !ok {
		logger.Warn("watch requested for unknown task",
			zap.String("function", "DownloadUsecase.WatchTask"),
			zap.String("task_id", id),
		)
		return nil, errs.ErrTaskNotFound
	}

	out := make(chan models.TaskSnapshot, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(u.opts.StreamInterval)
		defer ticker.Stop()

		for {
			task, ok := u.registry.Get(id)
			if !ok {
				return
			}
			publishLatest(out, task.Snapshot())
			if task.Status.IsTerminal() {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out, nil
}

// WatchActive streams the active job set until ctx is done.
func (u *DownloadUsecase) WatchActive(ctx context.Context) <-chan []models.ActiveJob {
	out := make(chan []models.ActiveJob, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(u.opts.StreamInterval)
		defer ticker.Stop()

		for {
			publishLatest(out, u.active.Snapshot())

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

// publishLatest replaces an unread value instead of blocking. ch must have
// capacity one and a single sender.
func publishLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
