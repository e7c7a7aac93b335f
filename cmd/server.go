package cmd

import (
	"context"
	"exercisetracker/internal/config"
	"exercisetracker/internal/core"
	"exercisetracker/internal/db"
	"exercisetracker/internal/http/handler"
	"exercisetracker/internal/http/payload"
	"exercisetracker/internal/http/router"
	"exercisetracker/internal/http/server"
	"exercisetracker/internal/memory"
	"exercisetracker/internal/metrics"
	mongostore "exercisetracker/internal/mongo"
	"exercisetracker/internal/repository"
	"exercisetracker/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("exercisetracker", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("exercisetracker", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := newStore(logger, config)
	if err != nil {
		logger.Errorw("failed to initialise store", "driver", config.StoreDriver, "error", err)
		return err
	}
	defer closeStore()

	// tracker
	tracker := core.NewTracker(
		logger,
		store,
		time.Now,
		config.StoreTimeout)

	// metrics
	collectors := metrics.New()

	// handler
	trackerHdlr := handler.NewTrackerHandler(
		logger,
		payload.Decoder{},
		tracker,
		collectors)

	hdlr := router.New(logger, trackerHdlr, router.Options{
		AllowedOrigins: config.AllowedOrigins,
		Observer:       collectors,
		MetricsHandler: collectors.Handler(),
	})

	srv := server.NewHTTP(logger, hdlr, config.Port, config.ShutdownTimeout)
	return run(srv)
}

// newStore builds the configured store and returns a func releasing its connections.
func newStore(logger *zap.SugaredLogger, cfg config.App) (core.Store, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			return nil, nil, err
		}

		repo := repository.NewTrackerRepository(dbConn)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		if err := repo.Migrate(ctx); err != nil {
			_ = dbConn.Close()
			return nil, nil, fmt.Errorf("migrate tables to database: %w", err)
		}

		logger.Infow("using postgres store")
		return repo, func() {
			if err := dbConn.Close(); err != nil {
				logger.Errorw("failed to close database", "error", err)
			}
		}, nil

	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()

		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}

		store := mongostore.NewStore(client.Database(cfg.MongoDatabase))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}

		logger.Infow("using mongo store", "database", cfg.MongoDatabase)
		return store, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Errorw("failed to disconnect from mongo", "error", err)
			}
		}, nil

	default:
		logger.Infow("using in-memory store")
		return memory.NewStore(), func() {}, nil
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || err == http.ErrServerClosed {
		return sdErr
	}

	return err
}
