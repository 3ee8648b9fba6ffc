package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/campus-coffee/internal/service"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrInvalidDataProvided, body)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", service.ErrNotFound, body)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", service.ErrDuplication, body)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, body)
	}
}
