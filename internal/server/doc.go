// Package server runs the HTTP API and the gRPC health endpoint of the user
// service and stops them together on a signal or context cancellation.
package server
