// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// MintService is the service name reported by the health server.
const MintService = "cryptocator.mint.v1.MintConsole"

// RegisterHealth installs the standard health service and reports the console as serving.
func RegisterHealth(server *grpc.Server) *health.Server {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.SetServingStatus(MintService, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, h)
	return h
}
