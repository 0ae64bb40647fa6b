package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies how a provider degraded, so the fallback chain can
// decide which outer-layer message (if any) to surface.
type ErrorKind string

const (
	ErrKindTimeout     ErrorKind = "timeout"
	ErrKindAuth        ErrorKind = "auth"
	ErrKindQuota       ErrorKind = "quota"
	ErrKindUnavailable ErrorKind = "unavailable"
	ErrKindBadOutput   ErrorKind = "bad_output"
	ErrKindConfig      ErrorKind = "config"
	ErrKindTransport   ErrorKind = "transport"
)

// ProviderError is the uniform error every backend returns, whatever the
// underlying transport failure looked like.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm provider %s (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts a ProviderError from an error chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// KindFromStatus maps an HTTP status to an error kind.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrKindAuth
	case status == http.StatusTooManyRequests:
		return ErrKindQuota
	case status == http.StatusNotFound:
		return ErrKindUnavailable
	case status >= http.StatusInternalServerError:
		return ErrKindUnavailable
	default:
		return ErrKindTransport
	}
}

// KindFromTransport maps a request-level error to an error kind.
func KindFromTransport(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrKindTimeout
	}
	return ErrKindTransport
}
