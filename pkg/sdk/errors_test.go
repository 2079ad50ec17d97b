package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arden28/studely-client/pkg/sdk"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		unauthorized  bool
		networkfailed bool
	}{
		{
			name:         "401 api error is unauthorized",
			err:          &sdk.APIError{Status: http.StatusUnauthorized},
			unauthorized: true,
		},
		{
			name: "500 api error is neither",
			err:  &sdk.APIError{Status: http.StatusInternalServerError},
		},
		{
			name:          "transport failure is a network failure",
			err:           &sdk.NetworkError{Err: errors.New("connection reset")},
			networkfailed: true,
		},
		{
			name:          "deadline counts as network failure",
			err:           context.DeadlineExceeded,
			networkfailed: true,
		},
		{
			name: "validation error is neither",
			err:  &sdk.ValidationError{Message: "bad input"},
		},
		{
			name:          "wrapped network failure still classifies",
			err:           &sdk.NetworkError{Err: context.DeadlineExceeded},
			networkfailed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unauthorized, sdk.IsUnauthorized(tt.err))
			assert.Equal(t, tt.networkfailed, sdk.IsNetworkFailure(tt.err))
		})
	}
}

func TestValidationErrorDetail(t *testing.T) {
	withField := &sdk.ValidationError{
		Message: "The given data was invalid.",
		Fields:  map[string][]string{"email": {"The email has already been taken."}},
	}
	assert.Equal(t, "The email has already been taken.", withField.Detail())

	messageOnly := &sdk.ValidationError{Message: "The given data was invalid."}
	assert.Equal(t, "The given data was invalid.", messageOnly.Detail())
}
