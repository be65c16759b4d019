package errors

import (
	stderrors "errors"
	"fmt"
)

// ProviderErrorKind classifies why a location provider could not produce data.
type ProviderErrorKind string

const (
	KindUnavailable ProviderErrorKind = "unavailable"
	KindTimeout     ProviderErrorKind = "timeout"
	KindMalformed   ProviderErrorKind = "malformed_response"
)

// ProviderError is returned by every LocationProvider implementation on failure.
type ProviderError struct {
	Kind ProviderErrorKind
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(kind ProviderErrorKind, op string, err error) *ProviderError {
	return &ProviderError{Kind: kind, Op: op, Err: err}
}

// FromProvider converts a provider failure into the caller-visible AppError.
// AppErrors pass through untouched, anything unclassified becomes an internal error.
func FromProvider(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var provErr *ProviderError
	if !stderrors.As(err, &provErr) {
		return ErrInternalServer
	}

	details := map[string]interface{}{"operation": provErr.Op}
	switch provErr.Kind {
	case KindTimeout:
		return ErrProviderTimeout.WithDetails(details)
	case KindMalformed:
		return ErrProviderMalformed.WithDetails(details)
	default:
		return ErrProviderUnavailable.WithDetails(details)
	}
}
