// Package apperr defines the failure taxonomy shared by the fulfillment stages.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a stage failure.
type Kind int

const (
	// KindBadRequest is a client input problem.
	KindBadRequest Kind = iota + 1
	// KindUnavailable is a simulated transient failure.
	KindUnavailable
	// KindUpstream wraps a failure reported by a downstream stage.
	KindUpstream
)

// String returns the kind label used in logs and span attributes.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnavailable:
		return "service_unavailable"
	case KindUpstream:
		return "upstream_failure"
	default:
		return "internal"
	}
}

// Error is a classified stage failure carrying the caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	// Status is the downstream HTTP status for KindUpstream.
	Status int
}

func (e *Error) Error() string {
	if e.Kind == KindUpstream {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// HTTPStatus returns the status code the stage should answer with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstream:
		if e.Status >= http.StatusBadRequest {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest builds a KindBadRequest error.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Unavailable builds a KindUnavailable error.
func Unavailable(msg string) *Error {
	return &Error{Kind: KindUnavailable, Message: msg}
}

// Upstream builds a KindUpstream error preserving the downstream status.
func Upstream(status int, msg string) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Status: status}
}

// KindOf extracts the Kind from err, or 0 when err is not classified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// Label returns a short, low-cardinality label for metrics.
func Label(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return KindOf(err).String()
	}
}

// HTTPStatus maps any error to a response status.
func HTTPStatus(err error) int {
	var appErr *Error
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &appErr):
		return appErr.HTTPStatus()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
