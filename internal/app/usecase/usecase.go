package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/supchaser/media_queue/internal/app"
	"github.com/supchaser/media_queue/internal/app/jobs"
	"github.com/supchaser/media_queue/internal/app/models"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrent   = 3
	defaultStreamInterval  = 500 * time.Millisecond
	defaultFinalizeRetries = 3
	persistTimeout         = 10 * time.Second
)

type Options struct {
	MaxConcurrent   int
	DownloadDir     string
	StreamInterval  time.Duration
	MaxDuration     time.Duration // 0 disables the watchdog
	FinalizeRetries int
	FFmpegAvailable bool
}

type Dependencies struct {
	Queue      app.QueueRepository
	History    app.HistoryRepository
	State      app.StateRepository
	Fetcher    app.Fetcher
	Thumbnails app.ThumbnailFetcher // optional
	Tagger     app.Tagger           // optional
}

type DownloadUsecase struct {
	queueRepo   app.QueueRepository
	historyRepo app.HistoryRepository
	stateRepo   app.StateRepository
	fetcher     app.Fetcher
	thumbnails  app.ThumbnailFetcher
	tagger      app.Tagger
	opts        Options

	registry *jobs.TaskRegistry
	active   *jobs.ActiveTable

	// admitMu serialises the count-then-claim step of admission.
	admitMu sync.Mutex

	spawnMu sync.Mutex
	closing atomic.Bool
	workers errgroup.Group

	baseCtx context.Context
	stop    context.CancelFunc
}

func CreateDownloadUsecase(deps Dependencies, opts Options) *DownloadUsecase {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.StreamInterval <= 0 {
		opts.StreamInterval = defaultStreamInterval
	}
	if opts.FinalizeRetries <= 0 {
		opts.FinalizeRetries = defaultFinalizeRetries
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &DownloadUsecase{
		queueRepo:   deps.Queue,
		historyRepo: deps.History,
		stateRepo:   deps.State,
		fetcher:     deps.Fetcher,
		thumbnails:  deps.Thumbnails,
		tagger:      deps.Tagger,
		opts:        opts,
		registry:    jobs.CreateTaskRegistry(),
		active:      jobs.CreateActiveTable(),
		baseCtx:     ctx,
		stop:        cancel,
	}
}

func (u *DownloadUsecase) Settings() models.Settings {
	return models.Settings{
		DownloadFolder:  u.opts.DownloadDir,
		FFmpegAvailable: u.opts.FFmpegAvailable,
		MaxConcurrent:   u.opts.MaxConcurrent,
	}
}

// Recover returns entries left downloading by a previous process to pending.
func (u *DownloadUsecase) Recover(ctx context.Context) error {
	const funcName = "DownloadUsecase.Recover"

	n, err := u.queueRepo.ResetDownloading(ctx)
	if err != nil {
		logger.Error("failed to reset orphaned queue entries",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return err
	}

	if n > 0 {
		logger.Info("orphaned queue entries requeued",
			zap.String("function", funcName),
			zap.Int64("count", n),
		)
	}
	return nil
}

// Shutdown stops admission, cancels every active job and waits for the
// workers to return. Interrupted queue entries go back to pending.
func (u *DownloadUsecase) Shutdown(ctx context.Context) error {
	const funcName = "DownloadUsecase.Shutdown"

	u.spawnMu.Lock()
	u.closing.Store(true)
	u.spawnMu.Unlock()

	active := u.active.Jobs()
	logger.Info("shutting down download workers",
		zap.String("function", funcName),
		zap.Int("active", len(active)),
	)
	for _, job := range active {
		u.cancelJob(job)
	}

	drained := make(chan error, 1)
	go func() {
		drained <- u.workers.Wait()
	}()

	defer u.stop()

	select {
	case err := <-drained:
		if err != nil {
			return err
		}
		logger.Info("download workers stopped", zap.String("function", funcName))
		return nil
	case <-ctx.Done():
		logger.Warn("workers did not drain before deadline",
			zap.String("function", funcName),
			zap.Error(ctx.Err()),
		)
		return ctx.Err()
	}
}

// spawn starts the worker for job unless the service is shutting down.
func (u *DownloadUsecase) spawn(job *jobs.Job) bool {
	u.spawnMu.Lock()
	defer u.spawnMu.Unlock()

	if u.closing.Load() {
		return false
	}
	u.workers.Go(func() error {
		u.runJob(job)
		return nil
	})
	return true
}

func (u *DownloadUsecase) GetUIState(ctx context.Context) (map[string]string, error) {
	const funcName = "DownloadUsecase.GetUIState"

	state, err := u.stateRepo.GetAll(ctx)
	if err != nil {
		logger.Error("failed to load ui state",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}
	return state, nil
}

func (u *DownloadUsecase) SaveUIState(ctx context.Context, values map[string]string) error {
	const funcName = "DownloadUsecase.SaveUIState"
	logger.Debug("saving ui state",
		zap.String("function", funcName),
		zap.Int("keys", len(values)),
	)

	if err := u.stateRepo.SetMany(ctx, values); err != nil {
		logger.Error("failed to save ui state",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (u *DownloadUsecase) persistContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), persistTimeout)
}
