package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/weft-labs/weft/test/database"
)

func TestFieldService_MergeSubblockValue(t *testing.T) {
	client := testdb.NewTestClient(t)
	fields := NewFieldService(client.Client)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       "block-1",
			"type":     "agent",
			"position": map[string]any{"x": 0.0, "y": 0.0},
			"subBlocks": map[string]any{
				"prompt": map[string]any{"id": "prompt", "type": "long-input", "value": "hello"},
				"model":  map[string]any{"id": "model", "type": "dropdown", "value": "gpt-4o"},
			},
		},
	})
	require.NoError(t, err)

	t.Run("updates existing slot and preserves siblings", func(t *testing.T) {
		err := fields.MergeSubblockValue(ctx, wf.ID, "block-1", "prompt", "rewritten")
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		subs := state.Blocks["block-1"].SubBlocks
		assert.Equal(t, "rewritten", subs["prompt"].Value)
		assert.Equal(t, "long-input", subs["prompt"].Type, "untouched attributes survive the merge")
		assert.Equal(t, "gpt-4o", subs["model"].Value, "sibling sub-blocks survive the merge")
	})

	t.Run("creates slot when missing", func(t *testing.T) {
		err := fields.MergeSubblockValue(ctx, wf.ID, "block-1", "temperature", 0.7)
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		subs := state.Blocks["block-1"].SubBlocks
		assert.Equal(t, "temperature", subs["temperature"].ID)
		assert.Equal(t, 0.7, subs["temperature"].Value)
	})

	t.Run("non-string values round-trip", func(t *testing.T) {
		err := fields.MergeSubblockValue(ctx, wf.ID, "block-1", "tools", []any{"search", "fetch"})
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, []any{"search", "fetch"}, state.Blocks["block-1"].SubBlocks["tools"].Value)
	})

	t.Run("missing block", func(t *testing.T) {
		err := fields.MergeSubblockValue(ctx, wf.ID, "ghost", "prompt", "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("block of another workflow", func(t *testing.T) {
		other, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-2"})
		require.NoError(t, err)

		err = fields.MergeSubblockValue(ctx, other.ID, "block-1", "prompt", "x")
		assert.ErrorIs(t, err, ErrNotFound, "block ids are scoped to their workflow")
	})
}

func TestFieldService_MergeVariableField(t *testing.T) {
	client := testdb.NewTestClient(t)
	fields := NewFieldService(client.Client)
	ops := NewOperationService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetVariable,
		Payload:    map[string]any{"id": "var-1", "name": "city", "type": "string", "value": "Oslo"},
	})
	require.NoError(t, err)

	t.Run("value", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "var-1", VariableFieldValue, "Bergen")
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bergen", state.Variables["var-1"].Value)
		assert.Equal(t, "city", state.Variables["var-1"].Name, "other fields survive the merge")
	})

	t.Run("name", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "var-1", VariableFieldName, "destination")
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "destination", state.Variables["var-1"].Name)
	})

	t.Run("type", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "var-1", VariableFieldType, "plain")
		require.NoError(t, err)

		state, err := workflows.GetWorkflowState(ctx, wf.ID)
		require.NoError(t, err)
		assert.Equal(t, "plain", state.Variables["var-1"].Type)
	})

	t.Run("non-string name rejected", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "var-1", VariableFieldName, 42)
		assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "var-1", "scope", "global")
		assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
	})

	t.Run("missing variable", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, wf.ID, "ghost", VariableFieldValue, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing workflow", func(t *testing.T) {
		err := fields.MergeVariableField(ctx, "no-such-workflow", "var-1", VariableFieldValue, "x")
		assert.ErrorIs(t, err, ErrWorkflowNotFound)
	})
}

func TestFieldService_WorkflowExists(t *testing.T) {
	client := testdb.NewTestClient(t)
	fields := NewFieldService(client.Client)
	workflows := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := workflows.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	exists, err := fields.WorkflowExists(ctx, wf.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fields.WorkflowExists(ctx, "no-such-workflow")
	require.NoError(t, err)
	assert.False(t, exists)
}
