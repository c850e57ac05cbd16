// Package ratelimit enforces per-plan execution quotas over fixed windows.
// Counters live in PostgreSQL so every replica gates against the same pool;
// the check-and-consume is a single upsert, atomic under concurrent callers.
package ratelimit

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/weft-labs/weft/ent"
	"github.com/weft-labs/weft/ent/userratelimit"
)

// Decision is the outcome of one check-and-consume call.
type Decision struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// Status is the read-only view of a key's current window.
type Status struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

// counter selects which of the three quota columns a request consumes.
type counter int

const (
	counterSync counter = iota
	counterAsync
	counterAPIEndpoint
)

func selectCounter(trigger TriggerType, isAsync bool) counter {
	if trigger == TriggerAPIEndpoint {
		return counterAPIEndpoint
	}
	if isAsync {
		return counterAsync
	}
	return counterSync
}

func (p PlanLimits) limitFor(c counter) int {
	switch c {
	case counterAsync:
		return p.AsyncPerWindow
	case counterAPIEndpoint:
		return p.APIEndpointPerWindow
	default:
		return p.SyncPerWindow
	}
}

// Limiter gates workflow executions. The hot path goes through raw SQL on
// the shared pool; Status and Reset use ent.
type Limiter struct {
	db     *stdsql.DB
	client *ent.Client
	cfg    Config
	logger *slog.Logger
}

// New creates a limiter over the given database handles.
func New(db *stdsql.DB, client *ent.Client, cfg Config) *Limiter {
	if cfg.Plans == nil {
		cfg = DefaultConfig()
	}
	return &Limiter{
		db:     db,
		client: client,
		cfg:    cfg,
		logger: slog.With("component", "ratelimit"),
	}
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.cfg.Window
}

// key picks the quota pool: team and enterprise subscriptions with a
// distinct billing reference share the organisation's pool, everyone else
// consumes their own.
func (l *Limiter) key(userID string, sub *Subscription) string {
	if sub == nil {
		return userID
	}
	if (sub.Plan == PlanTeam || sub.Plan == PlanEnterprise) &&
		sub.ReferenceID != "" && sub.ReferenceID != userID {
		return sub.ReferenceID
	}
	return userID
}

func (l *Limiter) planLimits(sub *Subscription) PlanLimits {
	if sub != nil {
		if limits, ok := l.cfg.Plans[sub.Plan]; ok {
			return limits
		}
	}
	return l.cfg.Plans[PlanFree]
}

// consumeQuery resets the window or increments in one statement. The CASE
// on the stored window_start decides at commit time, so N concurrent callers
// on one key serialise on the row and each sees a distinct counter value.
const consumeQuery = `
INSERT INTO user_rate_limits AS r
    (reference_id, sync_api_requests, async_api_requests, api_endpoint_requests, window_start, last_request_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (reference_id) DO UPDATE SET
    sync_api_requests     = CASE WHEN r.window_start <= $6 THEN $2 ELSE r.sync_api_requests + $2 END,
    async_api_requests    = CASE WHEN r.window_start <= $6 THEN $3 ELSE r.async_api_requests + $3 END,
    api_endpoint_requests = CASE WHEN r.window_start <= $6 THEN $4 ELSE r.api_endpoint_requests + $4 END,
    window_start          = CASE WHEN r.window_start <= $6 THEN $5 ELSE r.window_start END,
    is_rate_limited       = CASE WHEN r.window_start <= $6 THEN false ELSE r.is_rate_limited END,
    rate_limit_reset_at   = CASE WHEN r.window_start <= $6 THEN NULL ELSE r.rate_limit_reset_at END,
    last_request_at       = $5
RETURNING sync_api_requests, async_api_requests, api_endpoint_requests, window_start`

const markLimitedQuery = `
UPDATE user_rate_limits SET is_rate_limited = true, rate_limit_reset_at = $2 WHERE reference_id = $1`

// CheckAndConsume takes one slot from the caller's quota and reports whether
// the request may proceed. Manual triggers are always allowed and never touch
// storage. Storage failures fail open: an unreachable database must not stop
// executions, so the request is allowed and the error logged.
func (l *Limiter) CheckAndConsume(ctx context.Context, userID string, sub *Subscription, trigger TriggerType, isAsync bool) Decision {
	now := time.Now().UTC()
	if trigger == TriggerManual {
		return Decision{Allowed: true, Remaining: l.cfg.ManualLimit, ResetAt: now.Add(l.cfg.Window)}
	}

	key := l.key(userID, sub)
	c := selectCounter(trigger, isAsync)
	limit := l.planLimits(sub).limitFor(c)

	inserts := [3]int{}
	inserts[c] = 1
	cutoff := now.Add(-l.cfg.Window)

	var syncCount, asyncCount, apiCount int
	var windowStart time.Time
	err := l.db.QueryRowContext(ctx, consumeQuery,
		key, inserts[counterSync], inserts[counterAsync], inserts[counterAPIEndpoint], now, cutoff).
		Scan(&syncCount, &asyncCount, &apiCount, &windowStart)
	if err != nil {
		l.logger.Warn("Rate limit check failed, allowing request", "key", key, "error", err)
		return Decision{Allowed: true, Remaining: 0, ResetAt: now.Add(l.cfg.Window)}
	}

	value := syncCount
	switch c {
	case counterAsync:
		value = asyncCount
	case counterAPIEndpoint:
		value = apiCount
	}
	resetAt := windowStart.Add(l.cfg.Window)

	if value > limit {
		l.markLimited(ctx, key, resetAt)
		return Decision{Allowed: false, Remaining: 0, ResetAt: resetAt}
	}
	return Decision{Allowed: true, Remaining: limit - value, ResetAt: resetAt}
}

// markLimited flags the row for dashboards. Best effort: the denial stands
// whether or not the flag write succeeds.
func (l *Limiter) markLimited(ctx context.Context, key string, resetAt time.Time) {
	if _, err := l.db.ExecContext(ctx, markLimitedQuery, key, resetAt); err != nil {
		l.logger.Warn("Failed to mark rate limited", "key", key, "error", err)
	}
}

// Status reports the current window without consuming a slot.
func (l *Limiter) Status(ctx context.Context, userID string, sub *Subscription, trigger TriggerType, isAsync bool) (*Status, error) {
	now := time.Now().UTC()
	if trigger == TriggerManual {
		return &Status{
			Used:      0,
			Limit:     l.cfg.ManualLimit,
			Remaining: l.cfg.ManualLimit,
			ResetAt:   now.Add(l.cfg.Window),
		}, nil
	}

	c := selectCounter(trigger, isAsync)
	limit := l.planLimits(sub).limitFor(c)
	st := &Status{Limit: limit, Remaining: limit, ResetAt: now.Add(l.cfg.Window)}

	rec, err := l.client.UserRateLimit.Query().
		Where(userratelimit.IDEQ(l.key(userID, sub))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return st, nil
		}
		return nil, fmt.Errorf("failed to load rate limit record: %w", err)
	}
	if !rec.WindowStart.After(now.Add(-l.cfg.Window)) {
		// Expired window reads as unused; the next consume resets it.
		return st, nil
	}

	used := rec.SyncAPIRequests
	switch c {
	case counterAsync:
		used = rec.AsyncAPIRequests
	case counterAPIEndpoint:
		used = rec.APIEndpointRequests
	}
	st.Used = used
	st.Remaining = limit - used
	if st.Remaining < 0 {
		st.Remaining = 0
	}
	st.ResetAt = rec.WindowStart.Add(l.cfg.Window)
	return st, nil
}

// Reset clears the caller's window entirely.
func (l *Limiter) Reset(ctx context.Context, userID string, sub *Subscription) error {
	_, err := l.client.UserRateLimit.Delete().
		Where(userratelimit.IDEQ(l.key(userID, sub))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}
