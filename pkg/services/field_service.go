package services

import (
	"context"
	"fmt"
	"time"

	"github.com/weft-labs/weft/ent"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/pkg/models"
)

// Variable fields accepted by MergeVariableField.
const (
	VariableFieldName  = "name"
	VariableFieldType  = "type"
	VariableFieldValue = "value"
)

// FieldService merges single-field edits into their JSON containers. It backs
// the debounced update path, so each call is the one write produced by a burst
// of coalesced events and must preserve every sibling field it does not touch.
type FieldService struct {
	client *ent.Client
}

// NewFieldService creates a new FieldService.
func NewFieldService(client *ent.Client) *FieldService {
	return &FieldService{client: client}
}

// WorkflowExists reports whether the workflow row is still present.
func (s *FieldService) WorkflowExists(ctx context.Context, workflowID string) (bool, error) {
	exists, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check workflow: %w", err)
	}
	return exists, nil
}

// MergeSubblockValue sets one sub-block's value inside the block's sub_blocks
// map, creating the slot when it does not exist yet. Returns ErrNotFound when
// the block row is gone.
func (s *FieldService) MergeSubblockValue(ctx context.Context, workflowID, blockID, subblockID string, value any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	blk, err := tx.WorkflowBlock.Query().
		Where(workflowblock.IDEQ(blockID), workflowblock.WorkflowIDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get block: %w", err)
	}

	subs := blk.SubBlocks
	if subs == nil {
		subs = map[string]models.Subblock{}
	}
	slot, ok := subs[subblockID]
	if !ok {
		slot = models.Subblock{ID: subblockID}
	}
	slot.Value = value
	subs[subblockID] = slot

	_, err = blk.Update().
		SetSubBlocks(subs).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update sub-blocks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// MergeVariableField sets one field (name, type or value) of a workflow
// variable. Returns ErrWorkflowNotFound when the workflow row is gone and
// ErrNotFound when the variable is not in the map.
func (s *FieldService) MergeVariableField(ctx context.Context, workflowID, variableID, field string, value any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	wf, err := tx.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrWorkflowNotFound
		}
		return fmt.Errorf("failed to get workflow: %w", err)
	}

	vars := wf.Variables
	variable, ok := vars[variableID]
	if !ok {
		return ErrNotFound
	}

	switch field {
	case VariableFieldName:
		name, ok := value.(string)
		if !ok {
			return NewValidationError("value", "variable name must be a string")
		}
		variable.Name = name
	case VariableFieldType:
		varType, ok := value.(string)
		if !ok {
			return NewValidationError("value", "variable type must be a string")
		}
		variable.Type = varType
	case VariableFieldValue:
		variable.Value = value
	default:
		return NewValidationError("field", fmt.Sprintf("unknown variable field %q", field))
	}
	vars[variableID] = variable

	_, err = wf.Update().
		SetVariables(vars).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update variables: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
