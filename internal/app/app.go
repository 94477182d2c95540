package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"perflog-analytics/internal/aggregators"
	"perflog-analytics/internal/analyzers"
	"perflog-analytics/internal/archivers"
	"perflog-analytics/internal/events"
	internalhttp "perflog-analytics/internal/http"
	"perflog-analytics/internal/shared/configs"
	"perflog-analytics/internal/shared/filestorages"
	"perflog-analytics/internal/shared/loggers"
	"perflog-analytics/internal/stores"
	"perflog-analytics/internal/streams"
)

const appName = "perflog-analytics"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analysisCompletedQueue    *streams.PartitionedQueue[events.AnalysisCompletedEvent]
	analysisCompletedConsumer streams.AnalysisCompletedConsumer
	backgroundCtx             context.Context
	backgroundCancel          context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	format := config.Log.Format
	if format == "" {
		format = loggers.FormatJSON
	}
	appLogger, err := loggers.NewWithFormat(config.Log.Level, format, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	resultStore := stores.NewAnalysisResultStore(fileStorage)
	uploadStore := stores.NewUploadStore(fileStorage)

	// Archiving runs behind the queue so requests never wait on disk writes.
	analysisCompletedQueue := streams.NewPartitionedQueue[events.AnalysisCompletedEvent]()
	archiveService := archivers.NewArchiveService(resultStore, uploadStore)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "archiver").Logger()
	analysisCompletedConsumer := streams.NewAnalysisCompletedConsumer(analysisCompletedQueue, archiveService, consumerLogger)
	analysisCompletedProducer := streams.NewAnalysisCompletedProducer(analysisCompletedQueue)

	analysisService, err := analyzers.NewAnalysisService(
		aggregators.NewBandwidthAggregator(),
		resultStore,
		analysisCompletedProducer,
		analyzers.Options{
			MaxUploadBytes: config.Analysis.MaxUploadBytes,
			CacheSize:      config.Analysis.CacheSize,
			ArchiveResults: config.Analysis.ArchiveResults,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analysis service: %w", err)
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analysisService, config.Analysis.MaxUploadBytes, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:                    config,
		appLogger:                 appLogger,
		server:                    server,
		analysisCompletedQueue:    analysisCompletedQueue,
		analysisCompletedConsumer: analysisCompletedConsumer,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, file_storage_root_dir=%s, archive_results=%t)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analysis.ArchiveResults)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.analysisCompletedConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown stops accepting requests, then archives what is still queued.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close the queue and let the archiver drain it
	app.analysisCompletedQueue.Close()
	app.analysisCompletedConsumer.Stop()
	app.appLogger.Info().Msg("Archiver drained")

	// 3) Release the background context
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	return nil
}
