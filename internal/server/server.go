package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/handler"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/workers"
)

// shutdownTimeout bounds how long in-flight requests and queued mail get
// after a stop signal.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	background workers.Worker
	logger     *logger.Logger
}

// NewServer creates the HTTP server for handlers. background is started
// together with the server and stopped after it; it may be nil.
func NewServer(handlers *handler.Handlers, background workers.Worker, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{background: background, logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx, s.httpServer.RunServer); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// stop accepting requests first so nothing enqueues mail afterwards
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	if s.background != nil {
		if err := s.background.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("workers Shutdown")
		}
	}
}

// run starts the background workers and listen, then blocks until ctx is
// done and everything has been shut down.
func (s *server) run(ctx context.Context, listen func()) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.background != nil {
		s.logger.Info().Msg("Launching workers")
		s.background.Run()
	}

	s.logger.Info().Msg("Launching HTTP server")
	go listen()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
