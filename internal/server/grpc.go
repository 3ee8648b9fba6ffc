package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/campus-coffee/internal/config"
	myGRPC "github.com/MKhiriev/campus-coffee/internal/handler/grpc"
	"github.com/MKhiriev/campus-coffee/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w on gRPC address %s: %w", errListen, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() string {
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING to health checks, then drains in-flight RPCs.
// When ctx expires first the remaining RPCs are cancelled.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Str("func", "*grpcServer.Shutdown").Msg("graceful stop timed out, forcing")
		g.server.Stop()
	}
	// GracefulStop only closes listeners passed to Serve.
	if err := g.gRPCNetListener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		g.logger.Err(err).Str("func", "*grpcServer.Shutdown").Msg("error closing gRPC listener")
	}
}
