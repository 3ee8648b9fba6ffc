package utils

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/go-resty/resty/v2"
)

const userAgent = "campus-coffee-client"

// HTTPClient embeds *resty.Client so callers get the full request builder
// API, preconfigured with the application user agent and logger.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client whose resty diagnostics are
// routed to log.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetLogger(restyLogger{log: log}).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("func", "resty").Msg(restyMessage(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("func", "resty").Msg(restyMessage(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("func", "resty").Msg(restyMessage(format, v...))
}

func restyMessage(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
