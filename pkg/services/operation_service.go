package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weft-labs/weft/ent"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/pkg/models"
)

// Operation targets accepted by ApplyOperation.
const (
	TargetBlock    = "block"
	TargetEdge     = "edge"
	TargetVariable = "variable"
)

// Operations accepted per target.
const (
	OpAdd            = "add"
	OpRemove         = "remove"
	OpUpdatePosition = "update-position"
	OpUpdateName     = "update-name"
	OpToggleEnabled  = "toggle-enabled"
	OpUpdateParent   = "update-parent"
	OpDuplicate      = "duplicate"
)

var operationsByTarget = map[string]map[string]bool{
	TargetBlock: {
		OpAdd:            true,
		OpRemove:         true,
		OpUpdatePosition: true,
		OpUpdateName:     true,
		OpToggleEnabled:  true,
		OpUpdateParent:   true,
		OpDuplicate:      true,
	},
	TargetEdge: {
		OpAdd:    true,
		OpRemove: true,
	},
	TargetVariable: {
		OpAdd:       true,
		OpRemove:    true,
		OpDuplicate: true,
	},
}

// IsValidOperation reports whether the operation is defined for the target.
func IsValidOperation(target, operation string) bool {
	return operationsByTarget[target][operation]
}

// OperationService applies collaborative graph mutations to a workflow.
// Every mutation runs in a single transaction together with its audit row,
// so the workflow_operations log never records a change that was rolled back.
type OperationService struct {
	client *ent.Client
}

// NewOperationService creates a new OperationService.
func NewOperationService(client *ent.Client) *OperationService {
	return &OperationService{client: client}
}

// OperationInput carries one validated workflow operation.
type OperationInput struct {
	WorkflowID string
	UserID     string
	Operation  string
	Target     string
	Payload    map[string]any
	// Timestamp is the client wall clock in ms, kept for replay ordering.
	Timestamp int64
}

// ApplyOperation persists a single operation and returns the server timestamp
// assigned to it. Unknown targets or operations and malformed payloads return
// a ValidationError; missing entities map to ErrNotFound /
// ErrWorkflowNotFound.
func (s *OperationService) ApplyOperation(ctx context.Context, in OperationInput) (time.Time, error) {
	if in.WorkflowID == "" {
		return time.Time{}, NewValidationError("workflowId", "required")
	}
	if !IsValidOperation(in.Target, in.Operation) {
		return time.Time{}, NewValidationError("operation", fmt.Sprintf("unknown operation %q for target %q", in.Operation, in.Target))
	}

	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Workflow.Query().Where(workflow.IDEQ(in.WorkflowID)).Exist(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to check workflow: %w", err)
	}
	if !exists {
		return time.Time{}, ErrWorkflowNotFound
	}

	switch in.Target {
	case TargetBlock:
		err = applyBlockOperation(ctx, tx, in, now)
	case TargetEdge:
		err = applyEdgeOperation(ctx, tx, in)
	case TargetVariable:
		err = applyVariableOperation(ctx, tx, in)
	}
	if err != nil {
		return time.Time{}, err
	}

	// Audit row rides the same transaction as the mutation it records.
	_, err = tx.WorkflowOperation.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(in.WorkflowID).
		SetOperation(in.Operation).
		SetTarget(in.Target).
		SetPayload(in.Payload).
		SetUserID(in.UserID).
		SetClientTimestamp(in.Timestamp).
		Save(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to record operation: %w", err)
	}

	_, err = tx.Workflow.Update().
		Where(workflow.IDEQ(in.WorkflowID)).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to touch workflow: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return time.Time{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return now, nil
}

func applyBlockOperation(ctx context.Context, tx *ent.Tx, in OperationInput, now time.Time) error {
	switch in.Operation {
	case OpAdd:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		blockType, err := requireString(in.Payload, "type")
		if err != nil {
			return err
		}
		x, y, err := positionField(in.Payload)
		if err != nil {
			return err
		}
		name, _ := stringField(in.Payload, "name")
		if name == "" {
			name = blockType
		}

		create := tx.WorkflowBlock.Create().
			SetID(id).
			SetWorkflowID(in.WorkflowID).
			SetType(blockType).
			SetName(name).
			SetPositionX(x).
			SetPositionY(y)
		if enabled, ok := boolField(in.Payload, "enabled"); ok {
			create.SetEnabled(enabled)
		}
		if parent, ok := stringField(in.Payload, "parentId"); ok && parent != "" {
			create.SetParentID(parent)
		}
		if subs, err := subblocksField(in.Payload, "subBlocks"); err != nil {
			return err
		} else if subs != nil {
			create.SetSubBlocks(subs)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to add block: %w", err)
		}
		return nil

	case OpRemove:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		n, err := tx.WorkflowBlock.Delete().
			Where(workflowblock.IDEQ(id), workflowblock.WorkflowIDEQ(in.WorkflowID)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove block: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		// Edges referencing the block and parent pointers of its children go
		// with it, otherwise the canvas would render dangling references.
		_, err = tx.WorkflowEdge.Delete().
			Where(
				workflowedge.WorkflowIDEQ(in.WorkflowID),
				workflowedge.Or(
					workflowedge.SourceBlockIDEQ(id),
					workflowedge.TargetBlockIDEQ(id),
				),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove edges of block: %w", err)
		}
		_, err = tx.WorkflowBlock.Update().
			Where(workflowblock.WorkflowIDEQ(in.WorkflowID), workflowblock.ParentIDEQ(id)).
			ClearParentID().
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to detach child blocks: %w", err)
		}
		return nil

	case OpUpdatePosition:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		x, y, err := positionField(in.Payload)
		if err != nil {
			return err
		}
		return updateBlock(ctx, tx, in.WorkflowID, id, func(u *ent.WorkflowBlockUpdate) {
			u.SetPositionX(x).SetPositionY(y).SetUpdatedAt(now)
		})

	case OpUpdateName:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		name, err := requireString(in.Payload, "name")
		if err != nil {
			return err
		}
		return updateBlock(ctx, tx, in.WorkflowID, id, func(u *ent.WorkflowBlockUpdate) {
			u.SetName(name).SetUpdatedAt(now)
		})

	case OpToggleEnabled:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		blk, err := tx.WorkflowBlock.Query().
			Where(workflowblock.IDEQ(id), workflowblock.WorkflowIDEQ(in.WorkflowID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get block: %w", err)
		}
		_, err = blk.Update().SetEnabled(!blk.Enabled).SetUpdatedAt(now).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to toggle block: %w", err)
		}
		return nil

	case OpUpdateParent:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		parent, _ := stringField(in.Payload, "parentId")
		return updateBlock(ctx, tx, in.WorkflowID, id, func(u *ent.WorkflowBlockUpdate) {
			if parent == "" {
				u.ClearParentID()
			} else {
				u.SetParentID(parent)
			}
			u.SetUpdatedAt(now)
		})

	case OpDuplicate:
		sourceID, err := requireString(in.Payload, "sourceId")
		if err != nil {
			return err
		}
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		x, y, err := positionField(in.Payload)
		if err != nil {
			return err
		}
		src, err := tx.WorkflowBlock.Query().
			Where(workflowblock.IDEQ(sourceID), workflowblock.WorkflowIDEQ(in.WorkflowID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get source block: %w", err)
		}
		name, _ := stringField(in.Payload, "name")
		if name == "" {
			name = src.Name + " (copy)"
		}
		create := tx.WorkflowBlock.Create().
			SetID(id).
			SetWorkflowID(in.WorkflowID).
			SetType(src.Type).
			SetName(name).
			SetPositionX(x).
			SetPositionY(y).
			SetEnabled(src.Enabled).
			SetSubBlocks(src.SubBlocks)
		if src.ParentID != nil {
			create.SetParentID(*src.ParentID)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to duplicate block: %w", err)
		}
		return nil
	}
	return NewValidationError("operation", fmt.Sprintf("unknown block operation %q", in.Operation))
}

// updateBlock applies a predicate-scoped update and maps zero affected rows
// to ErrNotFound.
func updateBlock(ctx context.Context, tx *ent.Tx, workflowID, blockID string, apply func(*ent.WorkflowBlockUpdate)) error {
	u := tx.WorkflowBlock.Update().
		Where(workflowblock.IDEQ(blockID), workflowblock.WorkflowIDEQ(workflowID))
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update block: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func applyEdgeOperation(ctx context.Context, tx *ent.Tx, in OperationInput) error {
	switch in.Operation {
	case OpAdd:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		source, err := requireString(in.Payload, "sourceBlockId")
		if err != nil {
			return err
		}
		target, err := requireString(in.Payload, "targetBlockId")
		if err != nil {
			return err
		}
		for _, blockID := range []string{source, target} {
			exists, err := tx.WorkflowBlock.Query().
				Where(workflowblock.IDEQ(blockID), workflowblock.WorkflowIDEQ(in.WorkflowID)).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check endpoint block: %w", err)
			}
			if !exists {
				return ErrNotFound
			}
		}
		create := tx.WorkflowEdge.Create().
			SetID(id).
			SetWorkflowID(in.WorkflowID).
			SetSourceBlockID(source).
			SetTargetBlockID(target)
		if h, ok := stringField(in.Payload, "sourceHandle"); ok && h != "" {
			create.SetSourceHandle(h)
		}
		if h, ok := stringField(in.Payload, "targetHandle"); ok && h != "" {
			create.SetTargetHandle(h)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("failed to add edge: %w", err)
		}
		return nil

	case OpRemove:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		n, err := tx.WorkflowEdge.Delete().
			Where(workflowedge.IDEQ(id), workflowedge.WorkflowIDEQ(in.WorkflowID)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to remove edge: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}
	return NewValidationError("operation", fmt.Sprintf("unknown edge operation %q", in.Operation))
}

func applyVariableOperation(ctx context.Context, tx *ent.Tx, in OperationInput) error {
	wf, err := tx.Workflow.Query().Where(workflow.IDEQ(in.WorkflowID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrWorkflowNotFound
		}
		return fmt.Errorf("failed to get workflow: %w", err)
	}
	vars := wf.Variables
	if vars == nil {
		vars = map[string]models.Variable{}
	}

	switch in.Operation {
	case OpAdd:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		name, err := requireString(in.Payload, "name")
		if err != nil {
			return err
		}
		varType, err := requireString(in.Payload, "type")
		if err != nil {
			return err
		}
		if _, taken := vars[id]; taken {
			return ErrAlreadyExists
		}
		vars[id] = models.Variable{ID: id, Name: name, Type: varType, Value: in.Payload["value"]}

	case OpRemove:
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		if _, ok := vars[id]; !ok {
			return ErrNotFound
		}
		delete(vars, id)

	case OpDuplicate:
		sourceID, err := requireString(in.Payload, "sourceId")
		if err != nil {
			return err
		}
		id, err := requireString(in.Payload, "id")
		if err != nil {
			return err
		}
		src, ok := vars[sourceID]
		if !ok {
			return ErrNotFound
		}
		if _, taken := vars[id]; taken {
			return ErrAlreadyExists
		}
		name, _ := stringField(in.Payload, "name")
		if name == "" {
			name = src.Name + " (copy)"
		}
		vars[id] = models.Variable{ID: id, Name: name, Type: src.Type, Value: src.Value}

	default:
		return NewValidationError("operation", fmt.Sprintf("unknown variable operation %q", in.Operation))
	}

	if _, err := wf.Update().SetVariables(vars).Save(ctx); err != nil {
		return fmt.Errorf("failed to update variables: %w", err)
	}
	return nil
}

// Payload field extraction. Payloads arrive as decoded JSON, so numbers are
// float64 and nested objects are map[string]any.

func stringField(payload map[string]any, key string) (string, bool) {
	v, ok := payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func requireString(payload map[string]any, key string) (string, error) {
	s, ok := stringField(payload, key)
	if !ok || s == "" {
		return "", NewValidationError(key, "required")
	}
	return s, nil
}

func boolField(payload map[string]any, key string) (bool, bool) {
	v, ok := payload[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func numberField(payload map[string]any, key string) (float64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func positionField(payload map[string]any) (float64, float64, error) {
	raw, ok := payload["position"].(map[string]any)
	if !ok {
		return 0, 0, NewValidationError("position", "required")
	}
	x, okX := numberField(raw, "x")
	y, okY := numberField(raw, "y")
	if !okX || !okY {
		return 0, 0, NewValidationError("position", "must contain numeric x and y")
	}
	return x, y, nil
}

// subblocksField converts the raw JSON object under key into the typed
// sub-block map. A missing key returns (nil, nil).
func subblocksField(payload map[string]any, key string) (map[string]models.Subblock, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, NewValidationError(key, "must be an object keyed by subblock id")
	}
	var subs map[string]models.Subblock
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, NewValidationError(key, "must be an object keyed by subblock id")
	}
	return subs, nil
}
