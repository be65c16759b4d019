package errors

import "net/http"

const (
	CodeInvalidArguments    = "invalid_arguments"
	CodeNotFound            = "not_found"
	CodeProviderUnavailable = "provider_unavailable"
	CodeProviderTimeout     = "provider_timeout"
	CodeProviderMalformed   = "provider_malformed"
	CodeInternal            = "internal_error"
)

var (
	ErrInvalidArguments = New(
		CodeInvalidArguments,
		"Invalid arguments",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		CodeInvalidArguments,
		"latitude and longitude must be valid degrees",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		CodeInvalidArguments,
		"radius_km must be between 0.1 and 50",
		http.StatusBadRequest,
	)

	ErrInvalidLimit = New(
		CodeInvalidArguments,
		"limit must be between 1 and 50",
		http.StatusBadRequest,
	)

	ErrInvalidPage = New(
		CodeInvalidArguments,
		"page must be 1 or greater",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		CodeNotFound,
		"Location not found",
		http.StatusNotFound,
	)

	ErrProviderUnavailable = New(
		CodeProviderUnavailable,
		"Location backend is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrProviderTimeout = New(
		CodeProviderTimeout,
		"Location backend did not answer in time",
		http.StatusGatewayTimeout,
	)

	ErrProviderMalformed = New(
		CodeProviderMalformed,
		"Location backend returned an unreadable response",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
