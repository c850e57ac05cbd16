package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/weft-labs/weft/test/database"
)

func TestWorkflowService_CreateWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)
	ctx := context.Background()

	t.Run("creates workflow with defaults", func(t *testing.T) {
		wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
		require.NoError(t, err)

		assert.NotEmpty(t, wf.ID)
		assert.Equal(t, "user-1", wf.UserID)
		assert.Equal(t, "Untitled workflow", wf.Name)
		assert.NotNil(t, wf.Variables)
	})

	t.Run("honours explicit id and name", func(t *testing.T) {
		wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
			ID:     "wf-explicit",
			UserID: "user-1",
			Name:   "Deploy pipeline",
		})
		require.NoError(t, err)

		assert.Equal(t, "wf-explicit", wf.ID)
		assert.Equal(t, "Deploy pipeline", wf.Name)
	})

	t.Run("duplicate id returns ErrAlreadyExists", func(t *testing.T) {
		_, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{ID: "wf-dup", UserID: "user-1"})
		require.NoError(t, err)

		_, err = svc.CreateWorkflow(ctx, CreateWorkflowRequest{ID: "wf-dup", UserID: "user-2"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing user id is a validation error", func(t *testing.T) {
		_, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{})
		assert.True(t, IsValidationError(err))
	})
}

func TestWorkflowService_GetWorkflowState(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)
	ops := NewOperationService(client.Client)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1", Name: "Graph"})
	require.NoError(t, err)

	// Build a small graph through the operation path.
	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       "block-a",
			"type":     "agent",
			"name":     "Agent A",
			"position": map[string]any{"x": 10.0, "y": 20.0},
			"subBlocks": map[string]any{
				"prompt": map[string]any{"id": "prompt", "type": "long-input", "value": "hello"},
			},
		},
	})
	require.NoError(t, err)

	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetBlock,
		Payload: map[string]any{
			"id":       "block-b",
			"type":     "api",
			"position": map[string]any{"x": 300.0, "y": 20.0},
		},
	})
	require.NoError(t, err)

	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetEdge,
		Payload: map[string]any{
			"id":            "edge-1",
			"sourceBlockId": "block-a",
			"targetBlockId": "block-b",
			"sourceHandle":  "source",
		},
	})
	require.NoError(t, err)

	_, err = ops.ApplyOperation(ctx, OperationInput{
		WorkflowID: wf.ID,
		UserID:     "user-1",
		Operation:  OpAdd,
		Target:     TargetVariable,
		Payload:    map[string]any{"id": "var-1", "name": "city", "type": "string", "value": "Oslo"},
	})
	require.NoError(t, err)

	state, err := svc.GetWorkflowState(ctx, wf.ID)
	require.NoError(t, err)

	assert.Equal(t, wf.ID, state.ID)
	assert.Equal(t, "Graph", state.Name)
	assert.Greater(t, state.LastModified, int64(0))

	require.Len(t, state.Blocks, 2)
	blockA := state.Blocks["block-a"]
	assert.Equal(t, "agent", blockA.Type)
	assert.Equal(t, "Agent A", blockA.Name)
	assert.Equal(t, 10.0, blockA.Position.X)
	assert.Equal(t, 20.0, blockA.Position.Y)
	assert.True(t, blockA.Enabled)
	assert.Equal(t, "hello", blockA.SubBlocks["prompt"].Value)

	// Blocks created without names fall back to their type.
	assert.Equal(t, "api", state.Blocks["block-b"].Name)

	require.Len(t, state.Edges, 1)
	assert.Equal(t, "block-a", state.Edges[0].SourceBlockID)
	assert.Equal(t, "block-b", state.Edges[0].TargetBlockID)
	assert.Equal(t, "source", state.Edges[0].SourceHandle)

	require.Contains(t, state.Variables, "var-1")
	assert.Equal(t, "city", state.Variables["var-1"].Name)
	assert.Equal(t, "Oslo", state.Variables["var-1"].Value)
}

func TestWorkflowService_GetWorkflowStateNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)

	_, err := svc.GetWorkflowState(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
}

func TestWorkflowService_WorkflowExists(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	exists, err := svc.WorkflowExists(ctx, wf.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.WorkflowExists(ctx, "no-such-workflow")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWorkflowService_TouchWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewWorkflowService(client.Client)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{UserID: "user-1"})
	require.NoError(t, err)

	before := wf.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, svc.TouchWorkflow(ctx, wf.ID))

	reloaded, err := svc.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.UpdatedAt.After(before))

	assert.ErrorIs(t, svc.TouchWorkflow(ctx, "no-such-workflow"), ErrWorkflowNotFound)
}
