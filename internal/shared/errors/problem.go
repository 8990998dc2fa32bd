// Package errors provides RFC 7807 Problem Details for the stage HTTP APIs.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Apurer/go-gin-fulfillment/internal/shared/apperr"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail carries the stage message, e.g. "Failed to make shirts!".
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Extensions holds additional problem-specific properties.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with an additional extension property.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	extensions := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		extensions[k] = v
	}
	extensions[key] = value
	p.Extensions = extensions
	return p
}

// Problem types as URI references.
const (
	TypeNotFound           = "/problems/not-found"
	TypeInternal           = "/problems/internal-error"
	TypeBadRequest         = "/problems/bad-request"
	TypeServiceUnavailable = "/problems/service-unavailable"
	TypeUpstreamFailure    = "/problems/upstream-failure"
)

var (
	// ErrNotFound indicates the requested route or resource was not found.
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	// ErrBadRequest indicates the request was malformed or rejected by a stage.
	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	// ErrInternal indicates an unexpected server error.
	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}

	// ErrServiceUnavailable indicates a simulated transient failure.
	ErrServiceUnavailable = ProblemDetail{
		Type:   TypeServiceUnavailable,
		Title:  "Service Unavailable",
		Status: http.StatusServiceUnavailable,
	}
)

// NewUpstreamProblem reports a downstream stage failure, keeping its status code.
func NewUpstreamProblem(status int, detail string) ProblemDetail {
	return ProblemDetail{
		Type:   TypeUpstreamFailure,
		Title:  "Upstream Failure",
		Status: status,
		Detail: detail,
	}.WithExtension("upstreamStatus", status)
}

// FromAppError maps the stage taxonomy onto problem documents.
func FromAppError(err error) (ProblemDetail, bool) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return ProblemDetail{}, false
	}
	switch appErr.Kind {
	case apperr.KindBadRequest:
		return ErrBadRequest.WithDetail(appErr.Message), true
	case apperr.KindUnavailable:
		return ErrServiceUnavailable.WithDetail(appErr.Message), true
	case apperr.KindUpstream:
		return NewUpstreamProblem(appErr.HTTPStatus(), appErr.Error()), true
	default:
		return ErrInternal.WithDetail(appErr.Message), true
	}
}
