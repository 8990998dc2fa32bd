// Package transport holds the HTTP plumbing shared by the stage clients.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultTimeout bounds every inter-stage call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

const maxErrorBody = 64 << 10

// NewHTTPClient returns a client that injects W3C trace context into every request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// StatusError reports a non-2xx answer, or a transport failure mapped onto a 5xx status.
type StatusError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream status %d: %v", e.StatusCode, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode extracts the upstream status from err. Unclassified errors count as 502.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode != 0 {
		return statusErr.StatusCode
	}
	return http.StatusBadGateway
}

// BaseURL validates and normalizes a stage base URL.
func BaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("base URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", raw)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return parsed, nil
}

// DoJSON sends req and decodes a 2xx JSON body into out.
// Timeouts become 504 and other transport failures 502, so callers can apply one wrapping rule.
func DoJSON(client *http.Client, req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return &StatusError{StatusCode: transportStatus(req.Context(), err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode, Detail: problemDetail(resp.Body)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &StatusError{StatusCode: http.StatusBadGateway, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func transportStatus(ctx context.Context, err error) int {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func problemDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(raw, &problem); err == nil {
		if problem.Detail != "" {
			return problem.Detail
		}
		if problem.Title != "" {
			return problem.Title
		}
	}
	return strings.TrimSpace(string(raw))
}
