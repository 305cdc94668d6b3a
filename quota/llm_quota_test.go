package quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/config"
)

func limiterWith(perMinute, perDay int) *LLMQuotaLimiter {
	return NewLLMQuotaLimiterFromConfig(config.AppConfig{
		LLMQuota: config.LLMQuotaConfig{
			RequestsPerMinute: perMinute,
			RequestsPerDay:    perDay,
		},
	})
}

func TestWaitAndReserveUnlimited(t *testing.T) {
	l := limiterWith(0, 0)
	for i := 0; i < 5; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestWaitAndReserveDailyLimit(t *testing.T) {
	l := limiterWith(0, 2)

	for i := 0; i < 2; i++ {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "third call on a 2/day limit must be denied")
}

func TestWaitAndReserveDailyCounterResets(t *testing.T) {
	l := limiterWith(0, 1)

	day := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
	l.now = func() time.Time { return day }

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	// Next day: the counter starts over.
	l.now = func() time.Time { return day.Add(2 * time.Minute) }
	ok, err = l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWaitAndReserveContextCancelledWhileWaiting(t *testing.T) {
	// One request per minute forces a long wait for the second call.
	l := limiterWith(1, 0)

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err = l.WaitAndReserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
