package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/rockpaperscissors/internal/config"
	"github.com/rocketscienceinc/rockpaperscissors/internal/repository"
	"github.com/rocketscienceinc/rockpaperscissors/internal/repository/storage"
	"github.com/rocketscienceinc/rockpaperscissors/internal/transport/backend"
	"github.com/rocketscienceinc/rockpaperscissors/internal/usecase"
	"github.com/rocketscienceinc/rockpaperscissors/transport/rest"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	matchRepo := repository.NewMatchRepository(redisStorage, conf.Redis.SessionTTL)
	submissionRepo := repository.NewSubmissionRepository(redisStorage, conf.Backend.SubmissionTTL)

	backendClient := backend.New(conf.Backend.SubmitURL, conf.Backend.HistoryURL, conf.Backend.Timeout)

	submitter := usecase.NewSubmitter(
		ctx,
		logger,
		backendClient,
		submissionRepo,
		conf.Backend.SubmitAttempts,
		conf.Backend.RetryInterval,
	)
	// submissions still in flight finish before redis is closed
	defer submitter.Wait()

	matchUseCase := usecase.NewMatchUseCase(logger, matchRepo, submitter, conf.Game.EntryMode)
	historyUseCase := usecase.NewHistoryUseCase(logger, backendClient)

	server := rest.New(logger, matchUseCase, historyUseCase, func(ctx context.Context) error {
		return redisStorage.Ping(ctx).Err()
	})

	// run HTTP server
	log.Info("Starting HTTP server", "port", conf.HTTPPort, "entry_mode", conf.Game.EntryMode)

	return serveHTTP(ctx, log, func(ctx context.Context) error {
		return server.Start(ctx, conf.HTTPPort)
	})
}

// serveHTTP - runs start until ctx is canceled. It returns only once start has returned.
func serveHTTP(ctx context.Context, log *slog.Logger, start func(ctx context.Context) error) error {
	httpErrCh := make(chan error, 1)
	go func() {
		httpErrCh <- start(ctx)
	}()

	select {
	case err := <-httpErrCh:
		if err != nil {
			log.Error("HTTP server error", "error", err)
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	if err := <-httpErrCh; err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	return nil
}
