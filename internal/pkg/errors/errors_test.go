package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-finder/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateShared(t *testing.T) {
	withDetails := errors.ErrInvalidArguments.WithDetails(map[string]interface{}{"field": "latitude"})

	assert.Equal(t, "latitude", withDetails.Details["field"])
	assert.Empty(t, errors.ErrInvalidArguments.Details)
	assert.True(t, stderrors.Is(withDetails, errors.ErrInvalidArguments))
}

func TestFromProvider(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "unavailable",
			err:        errors.NewProviderError(errors.KindUnavailable, "find_candidates", fmt.Errorf("connection refused")),
			wantCode:   errors.CodeProviderUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "timeout",
			err:        errors.NewProviderError(errors.KindTimeout, "get_by_id", context.DeadlineExceeded),
			wantCode:   errors.CodeProviderTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "malformed wrapped",
			err:        fmt.Errorf("search: %w", errors.NewProviderError(errors.KindMalformed, "list_facilities", nil)),
			wantCode:   errors.CodeProviderMalformed,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "app error passes through",
			err:        errors.ErrLocationNotFound,
			wantCode:   errors.CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("boom"),
			wantCode:   errors.CodeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := errors.FromProvider(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
		})
	}

	assert.Nil(t, errors.FromProvider(nil))
}

func TestProviderError_Unwrap(t *testing.T) {
	err := errors.NewProviderError(errors.KindTimeout, "find_candidates", context.DeadlineExceeded)

	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "find_candidates")
	assert.Contains(t, err.Error(), "timeout")
}
