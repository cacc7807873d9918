package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "title validation error",
			field:           "title",
			message:         "Please enter title",
			expectedError:   "validation error: title - Please enter title",
			expectedField:   "title",
			expectedMessage: "Please enter title",
		},
		{
			name:            "location validation error",
			field:           "location",
			message:         "Please select location",
			expectedError:   "validation error: location - Please select location",
			expectedField:   "location",
			expectedMessage: "Please select location",
		},
		{
			name:            "id validation error",
			field:           "id",
			message:         "invalid reminder ID",
			expectedError:   "validation error: id - invalid reminder ID",
			expectedField:   "id",
			expectedMessage: "invalid reminder ID",
		},
		{
			name:            "transition validation error",
			field:           "transition",
			message:         "invalid geofence transition: leave",
			expectedError:   "validation error: transition - invalid geofence transition: leave",
			expectedField:   "transition",
			expectedMessage: "invalid geofence transition: leave",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "double wrapped ValidationError",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", app.NewValidationError("field", "message"))),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "not ValidationError - wrapped generic error",
			err:      fmt.Errorf("wrapped: %w", errors.New("generic error")),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := app.IsValidationError(tt.err)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidationErrorTypeAssertionSuccess(t *testing.T) {
	tests := []struct {
		name string
	}{
		{
			name: "can be type asserted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError("field", "message")

			var validationErr *app.ValidationError
			assert.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "field", validationErr.Field)
			assert.Equal(t, "message", validationErr.Message)
		})
	}
}

func TestSentinelErrorsSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "ErrValidation exists",
			err:  app.ErrValidation,
		},
		{
			name: "ErrNotFound exists",
			err:  app.ErrNotFound,
		},
		{
			name: "ErrInternalError exists",
			err:  app.ErrInternalError,
		},
		{
			name: "ErrConflict exists",
			err:  app.ErrConflict,
		},
		{
			name: "ErrPermissionDenied exists",
			err:  app.ErrPermissionDenied,
		},
		{
			name: "ErrSettingsUnresolved exists",
			err:  app.ErrSettingsUnresolved,
		},
		{
			name: "ErrRegistrationFailed exists",
			err:  app.ErrRegistrationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Error(t, tt.err)
		})
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("save reminder: %w", app.NewValidationError("title", "Please enter title"))

	assert.ErrorIs(t, err, app.ErrValidation)
	assert.NotErrorIs(t, err, app.ErrNotFound)
}
