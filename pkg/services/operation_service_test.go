package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-labs/weft/ent/workflowoperation"
	testdb "github.com/weft-labs/weft/test/database"
)

// addTestBlock applies a block-add operation with the minimum payload.
func addTestBlock(t *testing.T, ops *OperationService, workflowID, blockID string) {
	t.Helper()

	_, err := ops.ApplyOperation(context.Background(), OperationInput{
		WorkflowID: workflowID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       blockID,
			"type":     "agent",
			"position": map[string]any{"x": 0.0, "y": 0.0},
		},
	})
	require.NoError(t, err)
}

func TestIsValidOperation(t *testing.T) {
	assert.True(t, IsValidOperation(TargetBlock, OpAdd))
	assert.True(t, IsValidOperation(TargetBlock, OpUpdatePosition))
	assert.True(t, IsValidOperation(TargetEdge, OpRemove))
	assert.True(t, IsValidOperation(TargetVariable, OpDuplicate))

	assert.False(t, IsValidOperation(TargetEdge, OpUpdatePosition))
	assert.False(t, IsValidOperation(TargetVariable, OpUpdateName))
	assert.False(t, IsValidOperation("subflow", OpAdd))
	assert.False(t, IsValidOperation(TargetBlock, "rename"))
}

func TestOperationService_BlockOperations(t *testing.T) {
	client := testdb.NewTestClient(t)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetBlock,
			Payload: map[string]any{
				"id":       "block-1",
				"type":     "agent",
				"name":     "First agent",
				"position": map[string]any{"x": 100.0, "y": 50.0},
				"enabled":  false,
			},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		blk := state.Blocks["block-1"]
		assert.Equal(t, "First agent", blk.Name)
		assert.Equal(t, 100.0, blk.Position.X)
		assert.False(t, blk.Enabled)
	})

	t.Run("add duplicate id", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetBlock,
			Payload: map[string]any{
				"id":       "block-1",
				"type":     "api",
				"position": map[string]any{"x": 0.0, "y": 0.0},
			},
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("update-position", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdatePosition,
			Target:     TargetBlock,
			Payload: map[string]any{
				"id":       "block-1",
				"position": map[string]any{"x": 250.0, "y": 300.0},
			},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, 250.0, state.Blocks["block-1"].Position.X)
		assert.Equal(t, 300.0, state.Blocks["block-1"].Position.Y)
	})

	t.Run("update-position of missing block", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdatePosition,
			Target:     TargetBlock,
			Payload: map[string]any{
				"id":       "ghost",
				"position": map[string]any{"x": 1.0, "y": 1.0},
			},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update-name", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdateName,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "block-1", "name": "Renamed"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", state.Blocks["block-1"].Name)
	})

	t.Run("toggle-enabled", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpToggleEnabled,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "block-1"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.True(t, state.Blocks["block-1"].Enabled, "block was added disabled")
	})

	t.Run("update-parent and clear", func(t *testing.T) {
		addTestBlock(t, ops, wf.ID, "subflow-1")

		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdateParent,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "block-1", "parentId": "subflow-1"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "subflow-1", state.Blocks["block-1"].ParentID)

		_, err = ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdateParent,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "block-1"},
		})
		require.NoError(t, err)

		state, err = workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Empty(t, state.Blocks["block-1"].ParentID)
	})

	t.Run("duplicate copies type and sub-blocks", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpDuplicate,
			Target:     TargetBlock,
			Payload: map[string]any{
				"sourceId": "block-1",
				"id":       "block-1-copy",
				"position": map[string]any{"x": 400.0, "y": 50.0},
			},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		copyBlk := state.Blocks["block-1-copy"]
		assert.Equal(t, "agent", copyBlk.Type)
		assert.Equal(t, "Renamed (copy)", copyBlk.Name)
		assert.Equal(t, 400.0, copyBlk.Position.X)
	})

	t.Run("remove cascades edges and detaches children", func(t *testing.T) {
		addTestBlock(t, ops, wf.ID, "hub")
		addTestBlock(t, ops, wf.ID, "spoke")

		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetEdge,
			Payload: map[string]any{
				"id":            "edge-hub",
				"sourceBlockId": "hub",
				"targetBlockId": "spoke",
			},
		})
		require.NoError(t, err)

		_, err = ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpUpdateParent,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "spoke", "parentId": "hub"},
		})
		require.NoError(t, err)

		_, err = ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "hub"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.NotContains(t, state.Blocks, "hub")
		for _, e := range state.Edges {
			assert.NotEqual(t, "edge-hub", e.ID)
		}
		assert.Empty(t, state.Blocks["spoke"].ParentID)
	})

	t.Run("remove missing block", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetBlock,
			Payload:    map[string]any{"id": "ghost"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOperationService_EdgeOperations(t *testing.T) {
	client := testdb.NewTestClient(t)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)
	addTestBlock(t, ops, wf.ID, "a")
	addTestBlock(t, ops, wf.ID, "b")

	t.Run("add requires existing endpoints", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetEdge,
			Payload: map[string]any{
				"id":            "edge-dangling",
				"sourceBlockId": "a",
				"targetBlockId": "ghost",
			},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("add and remove", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetEdge,
			Payload: map[string]any{
				"id":            "edge-1",
				"sourceBlockId": "a",
				"targetBlockId": "b",
				"targetHandle":  "target",
			},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		require.Len(t, state.Edges, 1)
		assert.Equal(t, "target", state.Edges[0].TargetHandle)

		_, err = ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetEdge,
			Payload:    map[string]any{"id": "edge-1"},
		})
		require.NoError(t, err)

		state, err = workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Empty(t, state.Edges)
	})

	t.Run("remove missing edge", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetEdge,
			Payload:    map[string]any{"id": "ghost"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOperationService_VariableOperations(t *testing.T) {
	client := testdb.NewTestClient(t)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetVariable,
			Payload:    map[string]any{"id": "var-1", "name": "region", "type": "string", "value": "eu-north"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "region", state.Variables["var-1"].Name)
		assert.Equal(t, "eu-north", state.Variables["var-1"].Value)
	})

	t.Run("add duplicate id", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpAdd,
			Target:     TargetVariable,
			Payload:    map[string]any{"id": "var-1", "name": "other", "type": "string"},
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("duplicate copies type and value", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpDuplicate,
			Target:     TargetVariable,
			Payload:    map[string]any{"sourceId": "var-1", "id": "var-2"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "region (copy)", state.Variables["var-2"].Name)
		assert.Equal(t, "eu-north", state.Variables["var-2"].Value)
	})

	t.Run("remove", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetVariable,
			Payload:    map[string]any{"id": "var-2"},
		})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.NotContains(t, state.Variables, "var-2")
	})

	t.Run("remove missing variable", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: wf.ID,
			UserID:     "user-1",
			Operation:  OpRemove,
			Target:     TargetVariable,
			Payload:    map[string]any{"id": "ghost"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOperationService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input OperationInput
	}{
		{
			name:  "missing workflow id",
			input: OperationInput{Operation: OpAdd, Target: TargetBlock},
		},
		{
			name:  "unknown target",
			input: OperationInput{WorkflowID: wf.ID, Operation: OpAdd, Target: "subflow"},
		},
		{
			name:  "unknown operation for target",
			input: OperationInput{WorkflowID: wf.ID, Operation: OpUpdateName, Target: TargetEdge},
		},
		{
			name: "block add without id",
			input: OperationInput{
				WorkflowID: wf.ID, Operation: OpAdd, Target: TargetBlock,
				Payload: map[string]any{"type": "agent", "position": map[string]any{"x": 0.0, "y": 0.0}},
			},
		},
		{
			name: "block add without position",
			input: OperationInput{
				WorkflowID: wf.ID, Operation: OpAdd, Target: TargetBlock,
				Payload: map[string]any{"id": "x", "type": "agent"},
			},
		},
		{
			name: "position with non-numeric coordinates",
			input: OperationInput{
				WorkflowID: wf.ID, Operation: OpAdd, Target: TargetBlock,
				Payload: map[string]any{"id": "x", "type": "agent", "position": map[string]any{"x": "left", "y": 0.0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ops.ApplyOperation(ctx, tt.input)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}

	t.Run("unknown workflow", func(t *testing.T) {
		_, err := ops.ApplyOperation(ctx, OperationInput{
			WorkflowID: "no-such-workflow",
			Operation:  OpAdd,
			Target:     TargetBlock,
			Payload: map[string]any{
				"id":       "x",
				"type":     "agent",
				"position": map[string]any{"x": 0.0, "y": 0.0},
			},
		})
		assert.ErrorIs(t, err, ErrWorkflowNotFound)
	})
}

func TestOperationService_AuditTrail(t *testing.T) {
	client := testdb.NewTestClient(t)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	countOps := func() int {
		n, err := client.WorkflowOperation.Query().
			Where(workflowoperation.WorkflowIDEQ(wf.ID)).
			Count(ctx)
		require.NoError(t, err)
		return n
	}

	serverTime, err := ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       "audited",
			"type":     "agent",
			"position": map[string]any{"x": 0.0, "y": 0.0},
		},
		Timestamp: 1735689600000,
	})
	require.NoError(t, err)
	assert.False(t, serverTime.IsZero())
	assert.Equal(t, 1, countOps())

	row, err := client.WorkflowOperation.Query().
		Where(workflowoperation.WorkflowIDEQ(wf.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, OpAdd, row.Operation)
	assert.Equal(t, TargetBlock, row.Target)
	assert.Equal(t, "user-1", row.UserID)
	assert.Equal(t, int64(1735689600000), row.ClientTimestamp)

	// A failed mutation must not leave an audit row behind.
	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       "audited",
			"type":     "agent",
			"position": map[string]any{"x": 0.0, "y": 0.0},
		},
	})
	require.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 1, countOps())
}
