package quota

import (
	"context"
	"sync"
	"time"

	"conmates/config"
)

// LLMQuotaLimiter enforces per-minute and daily caps on model calls. It is
// in-memory and assumes a single server instance; counters reset when the
// process restarts.
type LLMQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewLLMQuotaLimiterFromConfig builds the limiter from the llm_quota section
// of config.yaml. Values of 0 or below disable the limit in that direction.
func NewLLMQuotaLimiterFromConfig(cfg config.AppConfig) *LLMQuotaLimiter {
	q := cfg.LLMQuota

	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &LLMQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// WaitAndReserve applies the per-minute and daily limits before a model call.
// - Daily limit exhausted: returns (false, nil); the caller must skip the call.
// - Context cancelled while waiting: returns (false, ctx.Err()).
// Otherwise it reserves a slot and returns (true, nil), sleeping first if the
// per-minute interval requires it.
func (l *LLMQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = nextAllowed.Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// Release the lock while waiting, then re-evaluate.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
