package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/supchaser/media_queue/internal/app/delivery"
	"github.com/supchaser/media_queue/internal/app/repository"
	"github.com/supchaser/media_queue/internal/app/usecase"
	"github.com/supchaser/media_queue/internal/config"
	"github.com/supchaser/media_queue/internal/engine"
	"github.com/supchaser/media_queue/internal/media"
	"github.com/supchaser/media_queue/internal/middleware"
	"github.com/supchaser/media_queue/internal/utils/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.Log.Mode, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.Log.Mode),
		zap.Int("max_concurrent", cfg.Queue.MaxConcurrent),
		zap.String("database_driver", cfg.Database.Driver),
	)

	if err := cfg.EnsureDirs(); err != nil {
		logger.Error("failed to create storage directories", zap.Error(err))
		os.Exit(1)
	}

	db, err := repository.OpenDatabase(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	if err := repository.InitDB(db); err != nil {
		logger.Error("failed to initialize database", zap.Error(err))
		os.Exit(1)
	}

	fetcher, err := engine.CreateYTDLPEngine(context.Background(), engine.Options{
		FFmpegPath:       cfg.Engine.FFmpegPath,
		AutoInstall:      cfg.Engine.AutoInstall,
		ProgressInterval: cfg.Stream.Interval,
	})
	if err != nil {
		logger.Error("failed to initialize fetch engine", zap.Error(err))
		os.Exit(1)
	}

	downloadUsecase := usecase.CreateDownloadUsecase(usecase.Dependencies{
		Queue:   repository.CreateQueueRepository(db),
		History: repository.CreateHistoryRepository(db),
		State:   repository.CreateStateRepository(db),
		Fetcher: fetcher,
		Thumbnails: media.CreateThumbnailStore(media.ThumbnailOptions{
			Dir:        cfg.Storage.ThumbnailDir,
			MaxWidth:   cfg.Thumbnail.MaxWidth,
			MaxHeight:  cfg.Thumbnail.MaxHeight,
			Timeout:    cfg.Thumbnail.Timeout,
			RetryCount: cfg.Thumbnail.RetryCount,
		}),
		Tagger: media.CreateID3Tagger(),
	}, usecase.Options{
		MaxConcurrent:   cfg.Queue.MaxConcurrent,
		DownloadDir:     cfg.Storage.DownloadDir,
		StreamInterval:  cfg.Stream.Interval,
		MaxDuration:     cfg.Worker.MaxDuration,
		FinalizeRetries: cfg.Worker.FinalizeRetries,
		FFmpegAvailable: fetcher.FFmpegAvailable(),
	})

	if err := downloadUsecase.Recover(context.Background()); err != nil {
		logger.Error("failed to recover queue", zap.Error(err))
		os.Exit(1)
	}
	if _, err := downloadUsecase.StartQueue(context.Background()); err != nil {
		logger.Warn("failed to resume queue", zap.Error(err))
	}

	downloadDelivery := delivery.CreateDownloadDelivery(downloadUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/config", downloadDelivery.GetConfig).Methods("GET")
	apiRouter.HandleFunc("/ui-state", downloadDelivery.GetUIState).Methods("GET")
	apiRouter.HandleFunc("/ui-state", downloadDelivery.SaveUIState).Methods("POST")
	apiRouter.HandleFunc("/log-error", downloadDelivery.LogFrontendError).Methods("POST")

	formatsRouter := apiRouter.PathPrefix("/formats").Subrouter()
	formatsRouter.HandleFunc("", downloadDelivery.RequestFormats).Methods("POST")
	formatsRouter.HandleFunc("/{id}", downloadDelivery.GetFormats).Methods("GET")

	taskRouter := apiRouter.PathPrefix("/tasks").Subrouter()
	taskRouter.HandleFunc("", downloadDelivery.CreateDownload).Methods("POST")
	taskRouter.HandleFunc("/{id}", downloadDelivery.GetTask).Methods("GET")
	taskRouter.HandleFunc("/{id}/start", downloadDelivery.StartTask).Methods("POST")
	taskRouter.HandleFunc("/{id}/pause", downloadDelivery.PauseTask).Methods("POST")
	taskRouter.HandleFunc("/{id}/resume", downloadDelivery.ResumeTask).Methods("POST")
	taskRouter.HandleFunc("/{id}/cancel", downloadDelivery.CancelTask).Methods("POST")
	taskRouter.HandleFunc("/{id}/events", downloadDelivery.TaskEvents).Methods("GET")

	queueRouter := apiRouter.PathPrefix("/queue").Subrouter()
	queueRouter.HandleFunc("", downloadDelivery.Enqueue).Methods("POST")
	queueRouter.HandleFunc("", downloadDelivery.ListQueue).Methods("GET")
	queueRouter.HandleFunc("/events", downloadDelivery.QueueEvents).Methods("GET")
	queueRouter.HandleFunc("/start", downloadDelivery.StartQueue).Methods("POST")
	queueRouter.HandleFunc("/pause", downloadDelivery.PauseQueue).Methods("POST")
	queueRouter.HandleFunc("/resume", downloadDelivery.ResumeQueue).Methods("POST")
	queueRouter.HandleFunc("/stop", downloadDelivery.StopQueue).Methods("POST")
	queueRouter.HandleFunc("/clear-finished", downloadDelivery.ClearFinished).Methods("POST")
	queueRouter.HandleFunc("/{id:[0-9]+}", downloadDelivery.DeleteQueueEntry).Methods("DELETE")

	historyRouter := apiRouter.PathPrefix("/history").Subrouter()
	historyRouter.HandleFunc("", downloadDelivery.ListHistory).Methods("GET")
	historyRouter.HandleFunc("/delete", downloadDelivery.DeleteHistoryBatch).Methods("POST")
	historyRouter.HandleFunc("/{id:[0-9]+}", downloadDelivery.GetHistory).Methods("GET")
	historyRouter.HandleFunc("/{id:[0-9]+}", downloadDelivery.DeleteHistory).Methods("DELETE")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	// Event streams only end with their request context.
	streamCtx, closeStreams := context.WithCancel(context.Background())
	defer closeStreams()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     middleware.CORSMiddleware(router),
		BaseContext: func(net.Listener) context.Context { return streamCtx },
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.String("download_dir", cfg.Storage.DownloadDir),
			zap.Bool("ffmpeg", fetcher.FFmpegAvailable()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := downloadUsecase.Shutdown(ctx); err != nil {
			logger.Error("download workers did not stop cleanly", zap.Error(err))
		}

		closeStreams()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}

		logger.Info("server stopped")
	}
}
