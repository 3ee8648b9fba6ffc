// Package http implements the REST transport of the user service.
//
// Routes live under /api/users and map the service error taxonomy onto HTTP
// status codes (see errorStatusMap). Request tracing, access logging,
// compression, security headers and rate limiting are applied as chi
// middleware before a request reaches a handler.
package http
