// Package database provides database client helpers for tests.
package database

import (
	"testing"

	"github.com/weft-labs/weft/pkg/database"
	"github.com/weft-labs/weft/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a shared testcontainer with PostgreSQL.
// Each test gets its own schema; cleanup is registered on t automatically.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
