package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/weft-labs/weft/ent"
	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/ent/workflow"
)

// AccessService answers "may this user see this workflow, and as what role".
// The answer is looked up once at room join and cached in the user's presence
// record; per-operation checks run against that cached role.
type AccessService struct {
	client *ent.Client
}

// NewAccessService creates a new AccessService
func NewAccessService(client *ent.Client) *AccessService {
	return &AccessService{client: client}
}

// AccessResult carries the outcome of an access check.
type AccessResult struct {
	HasAccess bool   `json:"hasAccess"`
	Role      string `json:"role,omitempty"`
}

// VerifyWorkflowAccess resolves a user's role on a workflow. Owners are
// admins without a permissions row; everyone else needs a grant.
func (s *AccessService) VerifyWorkflowAccess(ctx context.Context, userID, workflowID string) (*AccessResult, error) {
	wf, err := s.client.Workflow.Query().
		Where(workflow.IDEQ(workflowID)).
		Select(workflow.FieldUserID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to load workflow for access check: %w", err)
	}

	if wf.UserID == userID {
		return &AccessResult{HasAccess: true, Role: "admin"}, nil
	}

	perm, err := s.client.Permission.Query().
		Where(
			permission.UserIDEQ(userID),
			permission.EntityTypeEQ("workflow"),
			permission.EntityIDEQ(workflowID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &AccessResult{HasAccess: false}, nil
		}
		return nil, fmt.Errorf("failed to load permission: %w", err)
	}

	return &AccessResult{HasAccess: true, Role: perm.PermissionType.String()}, nil
}

// GrantPermission upserts a user's role on an entity.
func (s *AccessService) GrantPermission(ctx context.Context, userID, entityType, entityID string, role permission.PermissionType) error {
	err := s.client.Permission.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetPermissionType(role).
		OnConflictColumns(permission.FieldUserID, permission.FieldEntityType, permission.FieldEntityID).
		SetPermissionType(role).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}
	return nil
}
