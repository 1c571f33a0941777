package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/errs"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

type HistoryRepository struct {
	db *gorm.DB
}

func CreateHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, record *models.HistoryRecord) (uint, error) {
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return 0, fmt.Errorf("HistoryRepository.Append: %w", err)
	}
	return record.ID, nil
}

// List returns up to limit records, most recent first.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*models.HistoryRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var records []*models.HistoryRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("HistoryRepository.List: %w", err)
	}
	return records, nil
}

func (r *HistoryRepository) Get(ctx context.Context, id uint) (*models.HistoryRecord, error) {
	var record models.HistoryRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrHistoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("HistoryRepository.Get: %w", err)
	}
	return &record, nil
}

func (r *HistoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.HistoryRecord{})
	if res.Error != nil {
		return fmt.Errorf("HistoryRepository.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrHistoryNotFound
	}
	return nil
}
