package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_MS", "30000")
	t.Setenv("MANUAL_EXECUTION_LIMIT", "5")
	t.Setenv("RATE_LIMIT_FREE_SYNC", "99")
	t.Setenv("RATE_LIMIT_ENTERPRISE_ASYNC", "2000")
	t.Setenv("RATE_LIMIT_PRO_SYNC", "bogus")

	cfg := ConfigFromEnv()

	assert.Equal(t, 30*time.Second, cfg.Window)
	assert.Equal(t, 5, cfg.ManualLimit)
	assert.Equal(t, 99, cfg.Plans[PlanFree].SyncPerWindow)
	// Untouched values keep their defaults.
	assert.Equal(t, 50, cfg.Plans[PlanFree].AsyncPerWindow)
	assert.Equal(t, 2000, cfg.Plans[PlanEnterprise].AsyncPerWindow)
	// Unparseable overrides are ignored.
	assert.Equal(t, 25, cfg.Plans[PlanPro].SyncPerWindow)
}

func TestDefaultConfigQuotas(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, time.Minute, cfg.Window)
	assert.Equal(t, 999999, cfg.ManualLimit)
	assert.Equal(t, PlanLimits{10, 50, 10}, cfg.Plans[PlanFree])
	assert.Equal(t, PlanLimits{25, 200, 30}, cfg.Plans[PlanPro])
	assert.Equal(t, PlanLimits{75, 500, 60}, cfg.Plans[PlanTeam])
	assert.Equal(t, PlanLimits{150, 1000, 120}, cfg.Plans[PlanEnterprise])
}

func TestKeySelection(t *testing.T) {
	l := New(nil, nil, DefaultConfig())

	tests := []struct {
		name   string
		userID string
		sub    *Subscription
		want   string
	}{
		{"no subscription", "u1", nil, "u1"},
		{"free plan", "u1", &Subscription{Plan: PlanFree, ReferenceID: "org"}, "u1"},
		{"pro plan", "u1", &Subscription{Plan: PlanPro, ReferenceID: "org"}, "u1"},
		{"team org pool", "u1", &Subscription{Plan: PlanTeam, ReferenceID: "org"}, "org"},
		{"enterprise org pool", "u1", &Subscription{Plan: PlanEnterprise, ReferenceID: "org"}, "org"},
		{"team self reference", "u1", &Subscription{Plan: PlanTeam, ReferenceID: "u1"}, "u1"},
		{"team empty reference", "u1", &Subscription{Plan: PlanTeam}, "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.key(tt.userID, tt.sub))
		})
	}
}

func TestCounterSelection(t *testing.T) {
	assert.Equal(t, counterAPIEndpoint, selectCounter(TriggerAPIEndpoint, false))
	assert.Equal(t, counterAPIEndpoint, selectCounter(TriggerAPIEndpoint, true))
	assert.Equal(t, counterAsync, selectCounter(TriggerAPI, true))
	assert.Equal(t, counterSync, selectCounter(TriggerAPI, false))
	assert.Equal(t, counterSync, selectCounter("webhook", false))
	assert.Equal(t, counterAsync, selectCounter("webhook", true))
}

func TestPlanLimitsFallBackToFree(t *testing.T) {
	l := New(nil, nil, DefaultConfig())

	assert.Equal(t, 10, l.planLimits(nil).SyncPerWindow)
	assert.Equal(t, 10, l.planLimits(&Subscription{Plan: "bespoke"}).SyncPerWindow)
	assert.Equal(t, 150, l.planLimits(&Subscription{Plan: PlanEnterprise}).SyncPerWindow)
}
