package adapter

import "errors"

var (
	// ErrOperationNotSupported is returned for operations the HTTP API does
	// not expose, such as Clear.
	ErrOperationNotSupported = errors.New("operation not supported by remote adapter")

	ErrInvalidAddress      = errors.New("invalid adapter http address")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)
