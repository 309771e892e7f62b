package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottleSpacesCalls(t *testing.T) {
	throttle := NewThrottle(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, throttle.Wait(ctx))
	require.NoError(t, throttle.Wait(ctx))
	require.NoError(t, throttle.Wait(ctx))

	// first call is free, the following two wait one interval each
	require.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestThrottleDisabled(t *testing.T) {
	throttle := NewThrottle(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, throttle.Wait(ctx))
	}
	require.Less(t, time.Since(start), 50*time.Millisecond)
	require.Equal(t, time.Duration(0), throttle.Interval())
}

func TestThrottleCancelled(t *testing.T) {
	throttle := NewThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, throttle.Wait(ctx))
	cancel()
	require.Error(t, throttle.Wait(ctx))
}
