package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weft-labs/weft/ent"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/pkg/models"
)

// WorkflowService manages workflow lifecycle and state assembly.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflowRequest contains fields for creating a workflow.
type CreateWorkflowRequest struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
}

// CreateWorkflow creates an empty workflow owned by the requesting user.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, req CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.UserID == "" {
		return nil, NewValidationError("userId", "required")
	}
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.client.Workflow.Create().
		SetID(id).
		SetUserID(req.UserID).
		SetVariables(map[string]models.Variable{})
	if req.Name != "" {
		builder.SetName(req.Name)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow returns the workflow row.
func (s *WorkflowService) GetWorkflow(ctx context.Context, workflowID string) (*ent.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}

// WorkflowExists reports whether the workflow row still exists.
func (s *WorkflowService) WorkflowExists(ctx context.Context, workflowID string) (bool, error) {
	exists, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check workflow existence: %w", err)
	}
	return exists, nil
}

// GetWorkflowState assembles the full document sent to clients on join and
// sync: blocks with positions and sub-blocks, edges, variables.
func (s *WorkflowService) GetWorkflowState(ctx context.Context, workflowID string) (*models.WorkflowState, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.client.WorkflowBlock.Query().
		Where(workflowblock.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowblock.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocks: %w", err)
	}

	edges, err := s.client.WorkflowEdge.Query().
		Where(workflowedge.WorkflowIDEQ(workflowID)).
		Order(ent.Asc(workflowedge.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}

	state := &models.WorkflowState{
		ID:           wf.ID,
		Name:         wf.Name,
		Blocks:       make(map[string]models.BlockState, len(blocks)),
		Edges:        make([]models.EdgeState, 0, len(edges)),
		Variables:    wf.Variables,
		LastModified: wf.UpdatedAt.UnixMilli(),
	}
	if state.Variables == nil {
		state.Variables = map[string]models.Variable{}
	}

	for _, b := range blocks {
		bs := models.BlockState{
			ID:        b.ID,
			Type:      b.Type,
			Name:      b.Name,
			Position:  models.Position{X: b.PositionX, Y: b.PositionY},
			Enabled:   b.Enabled,
			SubBlocks: b.SubBlocks,
		}
		if b.ParentID != nil {
			bs.ParentID = *b.ParentID
		}
		if bs.SubBlocks == nil {
			bs.SubBlocks = map[string]models.Subblock{}
		}
		state.Blocks[b.ID] = bs
	}

	for _, e := range edges {
		es := models.EdgeState{
			ID:            e.ID,
			SourceBlockID: e.SourceBlockID,
			TargetBlockID: e.TargetBlockID,
		}
		if e.SourceHandle != nil {
			es.SourceHandle = *e.SourceHandle
		}
		if e.TargetHandle != nil {
			es.TargetHandle = *e.TargetHandle
		}
		state.Edges = append(state.Edges, es)
	}

	return state, nil
}

// TouchWorkflow bumps the workflow's updated_at. Used by the async commit
// path of position updates, which writes outside the operation transaction.
func (s *WorkflowService) TouchWorkflow(ctx context.Context, workflowID string) error {
	n, err := s.client.Workflow.Update().
		Where(workflow.IDEQ(workflowID)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch workflow: %w", err)
	}
	if n == 0 {
		return ErrWorkflowNotFound
	}
	return nil
}
