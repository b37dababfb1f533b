package common

import "errors"

var (
	// ErrNotFound not found
	ErrNotFound = errors.New(`Not found`)
	// ErrClosed connection closed
	ErrClosed = errors.New(`Connection closed`)
	// ErrTimeout timed out
	ErrTimeout = errors.New(`Timed out`)
	// ErrServiceUnavailable is returned when the sync service could not be
	// brought into the running state
	ErrServiceUnavailable = errors.New(`Service unavailable`)
	// ErrPermissionDenied is returned when the caller lacks the rights to
	// control the service or open a channel.  Administrator privileges are
	// required.
	ErrPermissionDenied = errors.New(`Permission denied`)
	// ErrConnectFailed is returned when a named channel could not be opened
	ErrConnectFailed = errors.New(`Connect failed`)
	// ErrMalformedResponse is returned when a response does not match the
	// expected delimited structure
	ErrMalformedResponse = errors.New(`Malformed response`)
	// ErrUnsupportedPlatform is returned on hosts without the sync service
	ErrUnsupportedPlatform = errors.New(`Unsupported platform`)
)
