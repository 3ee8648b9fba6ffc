package http

import (
	"net/http"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/unrolled/secure"
)

// withSecureHeaders sets the usual hardening headers on every response. The
// API serves JSON only, so the content security policy denies everything.
func (h *Handler) withSecureHeaders() func(http.Handler) http.Handler {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := secureMiddleware.Process(w, r); err != nil {
				logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.withSecureHeaders").Msg("secure headers blocked request")
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
