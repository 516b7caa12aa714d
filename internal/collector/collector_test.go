package collector

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDeadline(t *testing.T) {
	// Deadline expiry mid-scroll is a normal stop, even when wrapped the
	// way errors come back out of the browser session.
	assert.True(t, isDeadline(context.DeadlineExceeded))
	assert.True(t, isDeadline(context.Canceled))
	assert.True(t, isDeadline(fmt.Errorf("run CDP command: %w", context.DeadlineExceeded)))
	assert.True(t, isDeadline(fmt.Errorf("session: %w", fmt.Errorf("cmd: %w", context.Canceled))))

	// Navigation and extraction failures stay fatal.
	assert.False(t, isDeadline(errors.New("net::ERR_NAME_NOT_RESOLVED")))
	assert.False(t, isDeadline(fmt.Errorf("extract comment blocks: %w", errors.New("exception thrown"))))
	assert.False(t, isDeadline(nil))
}
