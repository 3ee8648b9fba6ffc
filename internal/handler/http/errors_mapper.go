package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:            http.StatusNotFound,
	service.ErrDuplication:         http.StatusConflict,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidUserID:    http.StatusBadRequest,
	ErrUnexpectedUserID: http.StatusBadRequest,
	ErrUserIDMismatch:   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors echo the
// error text; server errors only expose the status text.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	http.Error(w, err.Error(), status)
}
