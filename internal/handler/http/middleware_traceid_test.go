package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// newTestRouter mounts a single /things/{id} route behind withTraceID-free
// logging so that tests can inspect the recorded route pattern.
func newTestRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

func serveTraceID(h *Handler, header string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID_ReusesClientID(t *testing.T) {
	rec, _ := serveTraceID(newTestHandler(), "my-trace")

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	rec, _ := serveTraceID(newTestHandler(), "")

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_ReplacesOversizedID(t *testing.T) {
	long := strings.Repeat("a", maxTraceIDLength+1)
	rec, _ := serveTraceID(newTestHandler(), long)

	got := rec.Header().Get(traceIDHeader)
	assert.NotEqual(t, long, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, req := serveTraceID(h, "trace-123")
	require.NotNil(t, req)

	logger.FromRequest(req).Info().Msg("inside")
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	serveTraceID(h, "trace-123")

	h.logger.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "trace_id")
}
