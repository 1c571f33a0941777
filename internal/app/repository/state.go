package repository

import (
	"context"
	"fmt"

	"github.com/supchaser/media_queue/internal/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository persists the presentation layer's key-value state.
type StateRepository struct {
	db *gorm.DB
}

func CreateStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []models.UIState
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("StateRepository.GetAll: %w", err)
	}

	state := make(map[string]string, len(rows))
	for _, row := range rows {
		state[row.Key] = row.Value
	}
	return state, nil
}

// SetMany upserts all values in one transaction.
func (r *StateRepository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]models.UIState, 0, len(values))
	for k, v := range values {
		rows = append(rows, models.UIState{Key: k, Value: v})
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("StateRepository.SetMany: %w", err)
	}
	return nil
}
