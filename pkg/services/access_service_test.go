package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/ent/permission"
	testdb "github.com/weft-labs/weft/test/database"
)

func TestAccessService_VerifyWorkflowAccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	access := NewAccessService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "owner"})
	require.NoError(t, err)

	t.Run("owner is admin without a grant", func(t *testing.T) {
		result, err := access.VerifyWorkflowAccess(ctx, "owner", wf.ID)
		require.NoError(t, err)

		assert.True(t, result.HasAccess)
		assert.Equal(t, "admin", result.Role)
	})

	t.Run("stranger has no access", func(t *testing.T) {
		result, err := access.VerifyWorkflowAccess(ctx, "stranger", wf.ID)
		require.NoError(t, err)

		assert.False(t, result.HasAccess)
		assert.Empty(t, result.Role)
	})

	t.Run("granted role is reported", func(t *testing.T) {
		err := access.GrantPermission(ctx, "viewer", "workflow", wf.ID, permission.PermissionTypeRead)
		require.NoError(t, err)

		result, err := access.VerifyWorkflowAccess(ctx, "viewer", wf.ID)
		require.NoError(t, err)

		assert.True(t, result.HasAccess)
		assert.Equal(t, "read", result.Role)
	})

	t.Run("regrant upgrades the role", func(t *testing.T) {
		err := access.GrantPermission(ctx, "editor", "workflow", wf.ID, permission.PermissionTypeRead)
		require.NoError(t, err)
		err = access.GrantPermission(ctx, "editor", "workflow", wf.ID, permission.PermissionTypeWrite)
		require.NoError(t, err)

		result, err := access.VerifyWorkflowAccess(ctx, "editor", wf.ID)
		require.NoError(t, err)

		assert.True(t, result.HasAccess)
		assert.Equal(t, "write", result.Role)
	})

	t.Run("missing workflow", func(t *testing.T) {
		_, err := access.VerifyWorkflowAccess(ctx, "owner", "no-such-workflow")
		assert.ErrorIs(t, err, ErrWorkflowNotFound)
	})
}
