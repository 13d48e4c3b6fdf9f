package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

type WeatherEatsHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	logger    *slog.Logger
}

func NewWeatherEatsHttpServer(router *Router, muxRouter *mux.Router, port string, logger *slog.Logger) *WeatherEatsHttpServer {
	return &WeatherEatsHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      ":" + port,
		logger:    logger.With("component", "WeatherEatsHttpServer"),
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *WeatherEatsHttpServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled.
func (s *WeatherEatsHttpServer) Run(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exiting")
	return nil
}
