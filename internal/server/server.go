package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/handler"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
	done         chan struct{}
}

// NewServer binds the listeners of every configured transport. Nothing is
// served until Run or RunServer is called.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		logger: logger,
		done:   make(chan struct{}),
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.Addr()).Msg("launching HTTP server")
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.Addr()).Msg("launching gRPC server")
		g.Go(s.gRPCServer.RunServer)
	}

	// stop everything on cancellation, on a failing transport or on an
	// explicit Shutdown
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			s.Shutdown()
		case <-s.done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			s.httpServer.Shutdown(ctx)
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown(ctx)
		}

		close(s.done)
	})
}
