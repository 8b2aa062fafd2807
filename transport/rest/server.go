package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/rockpaperscissors/pkg/handlers"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger

	game *GameHandlers
	ping http.HandlerFunc
}

func New(logger *slog.Logger, matchUseCase matchUseCaseDep, historyUseCase historyUseCaseDep, checks ...handlers.Check) *Server {
	return &Server{
		logger: logger.With("component", "http"),

		game: NewGameHandlers(logger, matchUseCase, historyUseCase, mustParseViews()),
		ping: handlers.NewPingHandler(checks...),
	}
}

// Routes - the HTTP routes of the game UI.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.ping)

	mux.HandleFunc("GET /{$}", that.game.Play)
	mux.HandleFunc("POST /start", that.game.Start)
	mux.HandleFunc("POST /choose", that.game.Choose)
	mux.HandleFunc("POST /restart", that.game.Restart)
	mux.HandleFunc("GET /history", that.game.History)

	return that.logRequests(mux)
}

// Start - serves the routes until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		that.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (that *statusRecorder) WriteHeader(status int) {
	that.status = status
	that.ResponseWriter.WriteHeader(status)
}
