package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// claimAttempts bounds how often ClaimNextPending retries after losing a race.
const claimAttempts = 5

type QueueRepository struct {
	db *gorm.DB
}

func CreateQueueRepository(db *gorm.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

func (r *QueueRepository) Add(ctx context.Context, entry *models.QueueEntry) (uint, error) {
	const funcName = "QueueRepository.Add"

	entry.ID = 0
	entry.Status = models.QueuePending
	entry.TaskID = ""
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return 0, fmt.Errorf("%s: %w", funcName, err)
	}

	logger.Debug("queue entry added",
		zap.String("function", funcName),
		zap.Uint("queue_id", entry.ID),
		zap.String("url", entry.URL),
	)

	return entry.ID, nil
}

func (r *QueueRepository) Get(ctx context.Context, id uint) (*models.QueueEntry, error) {
	const funcName = "QueueRepository.Get"

	var entry models.QueueEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Warn("queue entry not found",
			zap.String("function", funcName),
			zap.Uint("queue_id", id),
		)
		return nil, errs.ErrQueueEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", funcName, err)
	}

	return &entry, nil
}

// List returns every entry in insertion order.
func (r *QueueRepository) List(ctx context.Context) ([]*models.QueueEntry, error) {
	var entries []*models.QueueEntry
	if err := r.db.WithContext(ctx).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("QueueRepository.List: %w", err)
	}
	return entries, nil
}

func (r *QueueRepository) CountByStatus(ctx context.Context, status models.QueueStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.QueueEntry{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("QueueRepository.CountByStatus: %w", err)
	}
	return count, nil
}

// ClaimNextPending moves the oldest pending entry to downloading and binds it
// to taskID. The conditional update makes the claim exclusive: a racing caller
// that loses gets zero affected rows and moves on to the next entry. It
// returns nil without error when nothing is pending.
func (r *QueueRepository) ClaimNextPending(ctx context.Context, taskID string) (*models.QueueEntry, error) {
	const funcName = "QueueRepository.ClaimNextPending"

	for attempt := 0; attempt < claimAttempts; attempt++ {
		var entry models.QueueEntry
		err := r.db.WithContext(ctx).
			Where("status = ?", models.QueuePending).
			Order("id").
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", funcName, err)
		}

		res := r.db.WithContext(ctx).Model(&models.QueueEntry{}).
			Where("id = ? AND status = ?", entry.ID, models.QueuePending).
			Updates(map[string]any{
				"status":  models.QueueDownloading,
				"task_id": taskID,
			})
		if res.Error != nil {
			return nil, fmt.Errorf("%s: %w", funcName, res.Error)
		}
		if res.RowsAffected == 1 {
			entry.Status = models.QueueDownloading
			entry.TaskID = taskID
			return &entry, nil
		}

		logger.Debug("lost claim race, retrying",
			zap.String("function", funcName),
			zap.Uint("queue_id", entry.ID),
			zap.Int("attempt", attempt),
		)
	}

	return nil, nil
}

// UpdateMetadata stores lazily resolved title and thumbnail. Empty values are skipped.
func (r *QueueRepository) UpdateMetadata(ctx context.Context, id uint, title, thumbnailPath string) error {
	updates := map[string]any{}
	if title != "" {
		updates["title"] = title
	}
	if thumbnailPath != "" {
		updates["thumbnail_path"] = thumbnailPath
	}
	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&models.QueueEntry{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("QueueRepository.UpdateMetadata: %w", err)
	}
	return nil
}

// Complete records the job outcome: the history row is inserted and the
// queue row gets its terminal status in a single transaction. A queue row
// that was deleted meanwhile is not an error.
func (r *QueueRepository) Complete(ctx context.Context, id uint, status models.QueueStatus, record *models.HistoryRecord) error {
	const funcName = "QueueRepository.Complete"

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record.ID = 0
		record.Status = status
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&models.QueueEntry{}).
			Where("id = ?", id).
			Update("status", status).Error
	})
	if err != nil {
		return fmt.Errorf("%s: %w", funcName, err)
	}

	logger.Info("queue entry completed",
		zap.String("function", funcName),
		zap.Uint("queue_id", id),
		zap.String("status", string(status)),
		zap.Uint("history_id", record.ID),
	)

	return nil
}

// Requeue returns a downloading entry to pending.
func (r *QueueRepository) Requeue(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.QueueEntry{}).
		Where("id = ? AND status = ?", id, models.QueueDownloading).
		Updates(map[string]any{
			"status":  models.QueuePending,
			"task_id": "",
		}).Error
	if err != nil {
		return fmt.Errorf("QueueRepository.Requeue: %w", err)
	}
	return nil
}

// ResetDownloading requeues entries orphaned by a previous process.
func (r *QueueRepository) ResetDownloading(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.QueueEntry{}).
		Where("status = ?", models.QueueDownloading).
		Updates(map[string]any{
			"status":  models.QueuePending,
			"task_id": "",
		})
	if res.Error != nil {
		return 0, fmt.Errorf("QueueRepository.ResetDownloading: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *QueueRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.QueueEntry{})
	if res.Error != nil {
		return fmt.Errorf("QueueRepository.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrQueueEntryNotFound
	}
	return nil
}

// Clear removes every queue entry.
func (r *QueueRepository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.QueueEntry{}).Error; err != nil {
		return fmt.Errorf("QueueRepository.Clear: %w", err)
	}
	return nil
}

// DeleteTerminal removes finished, failed and cancelled entries.
func (r *QueueRepository) DeleteTerminal(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status IN ?", []models.QueueStatus{models.QueueFinished, models.QueueError, models.QueueCancelled}).
		Delete(&models.QueueEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("QueueRepository.DeleteTerminal: %w", res.Error)
	}
	return res.RowsAffected, nil
}
