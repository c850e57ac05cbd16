package ratelimit

import (
	"context"
	stdsql "database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/ent/userratelimit"
	util "github.com/weft-labs/weft/test/util"
)

// smallConfig shrinks the quotas so tests exhaust windows quickly.
func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Plans[PlanFree] = PlanLimits{SyncPerWindow: 3, AsyncPerWindow: 5, APIEndpointPerWindow: 2}
	cfg.Plans[PlanTeam] = PlanLimits{SyncPerWindow: 2, AsyncPerWindow: 4, APIEndpointPerWindow: 2}
	return cfg
}

func TestLimiterAllowsUntilQuotaThenDenies(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	for i, wantRemaining := range []int{2, 1, 0} {
		d := limiter.CheckAndConsume(ctx, "user-a", nil, TriggerAPI, false)
		assert.True(t, d.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, wantRemaining, d.Remaining, "request %d remaining", i+1)
		assert.False(t, d.ResetAt.IsZero())
	}

	denied := limiter.CheckAndConsume(ctx, "user-a", nil, TriggerAPI, false)
	assert.False(t, denied.Allowed)
	assert.Zero(t, denied.Remaining)
	assert.False(t, denied.ResetAt.IsZero())

	// The denial leaves an audit mark on the row.
	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-a")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, rec.IsRateLimited)
	require.NotNil(t, rec.RateLimitResetAt)
	assert.Equal(t, 4, rec.SyncAPIRequests)
}

func TestLimiterWindowResets(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	cfg := smallConfig()
	cfg.Window = 150 * time.Millisecond
	limiter := New(db, entClient, cfg)
	ctx := context.Background()

	for range 3 {
		limiter.CheckAndConsume(ctx, "user-b", nil, TriggerAPI, false)
	}
	denied := limiter.CheckAndConsume(ctx, "user-b", nil, TriggerAPI, false)
	require.False(t, denied.Allowed)

	time.Sleep(200 * time.Millisecond)

	d := limiter.CheckAndConsume(ctx, "user-b", nil, TriggerAPI, false)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)

	// Reset cleared the denial mark along with the counters.
	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-b")).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, rec.IsRateLimited)
	assert.Nil(t, rec.RateLimitResetAt)
	assert.Equal(t, 1, rec.SyncAPIRequests)
}

func TestLimiterCountersAreIndependent(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	for range 3 {
		limiter.CheckAndConsume(ctx, "user-c", nil, TriggerAPI, false)
	}
	require.False(t, limiter.CheckAndConsume(ctx, "user-c", nil, TriggerAPI, false).Allowed)

	// Sync quota exhausted; async and api-endpoint still open.
	async := limiter.CheckAndConsume(ctx, "user-c", nil, TriggerAPI, true)
	assert.True(t, async.Allowed)
	assert.Equal(t, 4, async.Remaining)

	endpoint := limiter.CheckAndConsume(ctx, "user-c", nil, TriggerAPIEndpoint, false)
	assert.True(t, endpoint.Allowed)
	assert.Equal(t, 1, endpoint.Remaining)

	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-c")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.SyncAPIRequests)
	assert.Equal(t, 1, rec.AsyncAPIRequests)
	assert.Equal(t, 1, rec.APIEndpointRequests)
}

func TestLimiterTeamPlanSharesOrgPool(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	sub := &Subscription{Plan: PlanTeam, ReferenceID: "org-1"}

	first := limiter.CheckAndConsume(ctx, "alice", sub, TriggerAPI, false)
	assert.True(t, first.Allowed)
	second := limiter.CheckAndConsume(ctx, "bob", sub, TriggerAPI, false)
	assert.True(t, second.Allowed)
	assert.Zero(t, second.Remaining)

	// Third member hits the shared ceiling even though they never ran before.
	third := limiter.CheckAndConsume(ctx, "carol", sub, TriggerAPI, false)
	assert.False(t, third.Allowed)

	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("org-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.SyncAPIRequests)
}

func TestLimiterReferenceEqualToUserStaysPersonal(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	sub := &Subscription{Plan: PlanTeam, ReferenceID: "dave"}
	d := limiter.CheckAndConsume(ctx, "dave", sub, TriggerAPI, false)
	assert.True(t, d.Allowed)

	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("dave")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.SyncAPIRequests)
}

func TestLimiterManualNeverTouchesStorage(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	cfg := smallConfig()
	limiter := New(db, entClient, cfg)
	ctx := context.Background()

	for range 20 {
		d := limiter.CheckAndConsume(ctx, "user-m", nil, TriggerManual, false)
		require.True(t, d.Allowed)
		assert.Equal(t, cfg.ManualLimit, d.Remaining)
	}

	exists, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-m")).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestLimiterConcurrentConsumers drives N goroutines at one key. Every
// caller must observe a distinct counter value and no increment may be lost.
func TestLimiterConcurrentConsumers(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	cfg := DefaultConfig()
	cfg.Plans[PlanFree] = PlanLimits{SyncPerWindow: 100, AsyncPerWindow: 100, APIEndpointPerWindow: 100}
	limiter := New(db, entClient, cfg)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	remaining := make(map[int]int, n)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := limiter.CheckAndConsume(ctx, "user-conc", nil, TriggerAPI, false)
			mu.Lock()
			defer mu.Unlock()
			if d.Allowed {
				remaining[d.Remaining]++
			}
		}()
	}
	wg.Wait()

	// All callers were under quota, and each saw a unique remaining value:
	// duplicates would mean two increments observed the same counter.
	require.Len(t, remaining, n)
	for value, count := range remaining {
		assert.Equal(t, 1, count, "remaining value %d seen more than once", value)
	}

	rec, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-conc")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, rec.SyncAPIRequests)
}

func TestLimiterFailsOpenOnStorageError(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	// Port 1 refuses connections immediately.
	deadDB, err := stdsql.Open("pgx", "host=127.0.0.1 port=1 user=weft dbname=weft sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = deadDB.Close() })

	limiter := New(deadDB, entClient, smallConfig())

	d := limiter.CheckAndConsume(context.Background(), "user-x", nil, TriggerAPI, false)
	assert.True(t, d.Allowed)
	assert.Zero(t, d.Remaining)
	assert.False(t, d.ResetAt.IsZero())
}

func TestLimiterStatus(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	// No record yet: full quota.
	st, err := limiter.Status(ctx, "user-s", nil, TriggerAPI, false)
	require.NoError(t, err)
	assert.Zero(t, st.Used)
	assert.Equal(t, 3, st.Limit)
	assert.Equal(t, 3, st.Remaining)

	limiter.CheckAndConsume(ctx, "user-s", nil, TriggerAPI, false)
	limiter.CheckAndConsume(ctx, "user-s", nil, TriggerAPI, false)

	st, err = limiter.Status(ctx, "user-s", nil, TriggerAPI, false)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Used)
	assert.Equal(t, 1, st.Remaining)

	// Status is read-only: asking again changes nothing.
	st, err = limiter.Status(ctx, "user-s", nil, TriggerAPI, false)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Used)
}

func TestLimiterStatusExpiredWindowReadsZero(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	cfg := smallConfig()
	cfg.Window = 100 * time.Millisecond
	limiter := New(db, entClient, cfg)
	ctx := context.Background()

	limiter.CheckAndConsume(ctx, "user-e", nil, TriggerAPI, false)
	time.Sleep(150 * time.Millisecond)

	st, err := limiter.Status(ctx, "user-e", nil, TriggerAPI, false)
	require.NoError(t, err)
	assert.Zero(t, st.Used)
	assert.Equal(t, 3, st.Remaining)
}

func TestLimiterReset(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	limiter := New(db, entClient, smallConfig())
	ctx := context.Background()

	limiter.CheckAndConsume(ctx, "user-r", nil, TriggerAPI, false)
	require.NoError(t, limiter.Reset(ctx, "user-r", nil))

	exists, err := entClient.UserRateLimit.Query().
		Where(userratelimit.IDEQ("user-r")).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLimiterManualStatus(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	cfg := smallConfig()
	limiter := New(db, entClient, cfg)

	st, err := limiter.Status(context.Background(), "user-m2", nil, TriggerManual, false)
	require.NoError(t, err)
	assert.Zero(t, st.Used)
	assert.Equal(t, cfg.ManualLimit, st.Limit)
	assert.Equal(t, cfg.ManualLimit, st.Remaining)
}
