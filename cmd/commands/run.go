package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodfeed/config"
	"moodfeed/internal/application/usecase"
	brokerRepository "moodfeed/internal/domain/repository/broker"
	"moodfeed/internal/infrastructure/broker"
	"moodfeed/internal/infrastructure/database"
	"moodfeed/internal/infrastructure/storage"
	"moodfeed/internal/presentation/handler"
	"moodfeed/internal/presentation/router"
	"moodfeed/pkg/logger"
)

type eventBroker interface {
	brokerRepository.Publisher
	brokerRepository.Reader
}

func HandleRun(args []string) {
	path := ""
	if len(args) > 2 {
		path = args[2]
	}

	cfg, err := config.Load(path)
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running moodfeed", "version", version(), "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close metadata store", "err", err)
		}
	}()

	blobs, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		ExitOnError(err)
	}

	var events eventBroker = broker.Noop{}
	if cfg.Broker.URI != "" {
		brokerClient, err := broker.NewClient(ctx, cfg.Broker)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		events = broker.New(brokerClient, cfg.Broker)
	} else {
		logger.Info("no broker configured, post events are dropped")
	}

	feeder := usecase.NewFeeder(db)
	handlers := router.Handlers{
		Upload:       handler.NewUploadHandler(usecase.NewCreator(blobs, blobs, db, events)),
		List:         handler.NewListHandler(usecase.NewLister(db)),
		Feed:         handler.NewFeedHandler(feeder),
		Delete:       handler.NewDeleteHandler(usecase.NewDeleter(db, events)),
		Stats:        handler.NewStatsHandler(usecase.NewStats(feeder)),
		Notification: handler.NewNotificationHandler(usecase.NewNotifier(events)),
	}

	var static *router.StaticDir
	if s, ok := blobs.(storage.Static); ok {
		static = &router.StaticDir{Prefix: s.URLPrefix(), Dir: s.BaseDir()}
	}

	e := router.New(cfg.HTTP.Router, handlers, static)

	go func() {
		logger.Info("http server listening", "address", cfg.HTTP.Address)
		if err := e.Start(cfg.HTTP.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", "err", err)
	}
}
