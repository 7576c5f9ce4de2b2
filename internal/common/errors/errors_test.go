package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingCredential(t *testing.T) {
	err := NewMissingCredential("weather", "OPENWEATHER_API_KEY")

	assert.True(t, IsMissingCredential(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "weather")
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestIsMissingCredential_Wrapped(t *testing.T) {
	err := fmt.Errorf("calling gateway: %w", NewMissingCredential("news", "NEWS_API_KEY"))
	assert.True(t, IsMissingCredential(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("city %q: %w", "atlantis", ErrNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}

func TestGatewayError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewGatewayError("currency", inner)

	assert.Contains(t, err.Error(), "currency")
	assert.ErrorIs(t, err, inner)
	assert.False(t, IsMissingCredential(err))
	assert.False(t, IsNotFound(err))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(NewGatewayError("wiki", context.DeadlineExceeded)))
	assert.True(t, IsTimeout(errors.New("Get \"http://x\": context deadline exceeded (Client.Timeout exceeded while awaiting headers)")))
	assert.False(t, IsTimeout(nil))
	assert.False(t, IsTimeout(errors.New("connection refused")))
}
