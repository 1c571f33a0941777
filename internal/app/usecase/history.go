package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

func (u *DownloadUsecase) ListHistory(ctx context.Context, limit int) ([]*models.HistoryRecord, error) {
	records, err := u.historyRepo.List(ctx, limit)
	if err != nil {
		logger.Error("failed to list history",
			zap.String("function", "DownloadUsecase.ListHistory"),
			zap.Error(err),
		)
		return nil, err
	}
	return records, nil
}

func (u *DownloadUsecase) GetHistory(ctx context.Context, id uint) (*models.HistoryRecord, error) {
	return u.historyRepo.Get(ctx, id)
}

// DeleteHistory removes a history record. With deleteFile set the artifact
// and thumbnail are removed afterwards on a best-effort basis.
func (u *DownloadUsecase) DeleteHistory(ctx context.Context, id uint, deleteFile bool) error {
	const funcName = "DownloadUsecase.DeleteHistory"

	record, err := u.historyRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := u.historyRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete history record",
			zap.String("function", funcName),
			zap.Uint("history_id", id),
			zap.Error(err),
		)
		return err
	}

	if deleteFile {
		removeFile(record.FilePath)
		removeFile(record.ThumbnailPath)
	}

	logger.Info("history record deleted",
		zap.String("function", funcName),
		zap.Uint("history_id", id),
		zap.Bool("delete_file", deleteFile),
	)
	return nil
}

func removeFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to remove file",
			zap.String("function", "removeFile"),
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
