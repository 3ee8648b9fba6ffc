// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered as the router's [chi.Mux.MethodNotAllowed]
// handler.
//
// chi answers 405 when a path is known but the method is not. This handler
// answers 404 instead, so unsupported methods do not reveal which paths
// exist. chi propagates it to subrouters mounted before registration, so
// /api/users/{id} and friends behave the same as top-level routes.
//
// chi only calls it once the method failed to resolve, so it never
// dispatches back into the router.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
