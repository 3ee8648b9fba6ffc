package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// UserServiceName is the service name reported by the health endpoint for
// the user API.
const UserServiceName = "users"

// Handler is the root gRPC transport handler.
//
// The gRPC transport only exposes the standard grpc.health.v1 service. The
// user API itself is served over HTTP; the health status of UserServiceName
// reflects whether a user service is wired in.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] and sets the initial serving status from
// the provided service container.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}

	userStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if services != nil && services.UserService != nil {
		userStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(UserServiceName, userStatus)

	logger.Debug().Str("users", userStatus.String()).Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the options every gRPC server built for this handler
// should use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.loggingInterceptor),
	}
}

// Shutdown flips every service to NOT_SERVING so that health checks fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
