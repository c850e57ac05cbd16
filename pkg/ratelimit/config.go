package ratelimit

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Subscription plans with their own quota tiers.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanTeam       Plan = "team"
	PlanEnterprise Plan = "enterprise"
)

// Subscription identifies the plan a request is billed against. ReferenceID
// is the billing entity: for team and enterprise plans it is the
// organisation, so members share one pool.
type Subscription struct {
	Plan        Plan   `json:"plan"`
	ReferenceID string `json:"referenceId,omitempty"`
}

// Trigger types with dedicated limiter behaviour. Any other value counts
// against the sync or async execution quota.
type TriggerType string

const (
	// TriggerAPIEndpoint consumes the api-endpoint counter.
	TriggerAPIEndpoint TriggerType = "api-endpoint"
	// TriggerManual bypasses the limiter entirely.
	TriggerManual TriggerType = "manual"
	// TriggerAPI is a programmatic execution, sync or async.
	TriggerAPI TriggerType = "api"
)

// PlanLimits is one plan's per-window quota triple.
type PlanLimits struct {
	SyncPerWindow        int
	AsyncPerWindow       int
	APIEndpointPerWindow int
}

// Config holds the limiter's window and per-plan quotas.
type Config struct {
	Window time.Duration
	// ManualLimit exists for parity with the quota table; manual triggers are
	// allowed before storage is consulted, so it never produces a denial.
	ManualLimit int
	Plans       map[Plan]PlanLimits
}

// DefaultConfig returns the stock per-minute quotas.
func DefaultConfig() Config {
	return Config{
		Window:      time.Minute,
		ManualLimit: 999999,
		Plans: map[Plan]PlanLimits{
			PlanFree:       {SyncPerWindow: 10, AsyncPerWindow: 50, APIEndpointPerWindow: 10},
			PlanPro:        {SyncPerWindow: 25, AsyncPerWindow: 200, APIEndpointPerWindow: 30},
			PlanTeam:       {SyncPerWindow: 75, AsyncPerWindow: 500, APIEndpointPerWindow: 60},
			PlanEnterprise: {SyncPerWindow: 150, AsyncPerWindow: 1000, APIEndpointPerWindow: 120},
		},
	}
}

// ConfigFromEnv loads the defaults and applies the RATE_LIMIT_* /
// MANUAL_EXECUTION_LIMIT environment overrides.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if ms, ok := envInt("RATE_LIMIT_WINDOW_MS"); ok && ms > 0 {
		cfg.Window = time.Duration(ms) * time.Millisecond
	}
	if n, ok := envInt("MANUAL_EXECUTION_LIMIT"); ok && n > 0 {
		cfg.ManualLimit = n
	}

	for plan, name := range map[Plan]string{
		PlanFree:       "FREE",
		PlanPro:        "PRO",
		PlanTeam:       "TEAM",
		PlanEnterprise: "ENTERPRISE",
	} {
		limits := cfg.Plans[plan]
		if n, ok := envInt("RATE_LIMIT_" + name + "_SYNC"); ok && n > 0 {
			limits.SyncPerWindow = n
		}
		if n, ok := envInt("RATE_LIMIT_" + name + "_ASYNC"); ok && n > 0 {
			limits.AsyncPerWindow = n
		}
		cfg.Plans[plan] = limits
	}
	return cfg
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring invalid integer environment variable", "key", key, "value", raw)
		return 0, false
	}
	return n, true
}
