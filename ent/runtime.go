// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/weft-labs/weft/ent/permission"
	"github.com/weft-labs/weft/ent/schema"
	"github.com/weft-labs/weft/ent/userratelimit"
	"github.com/weft-labs/weft/ent/workflow"
	"github.com/weft-labs/weft/ent/workflowblock"
	"github.com/weft-labs/weft/ent/workflowedge"
	"github.com/weft-labs/weft/ent/workflowoperation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	permissionFields := schema.Permission{}.Fields()
	_ = permissionFields
	// permissionDescCreatedAt is the schema descriptor for created_at field.
	permissionDescCreatedAt := permissionFields[5].Descriptor()
	// permission.DefaultCreatedAt holds the default value on creation for the created_at field.
	permission.DefaultCreatedAt = permissionDescCreatedAt.Default.(func() time.Time)
	// permissionDescUpdatedAt is the schema descriptor for updated_at field.
	permissionDescUpdatedAt := permissionFields[6].Descriptor()
	// permission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	permission.DefaultUpdatedAt = permissionDescUpdatedAt.Default.(func() time.Time)
	userratelimitFields := schema.UserRateLimit{}.Fields()
	_ = userratelimitFields
	// userratelimitDescSyncAPIRequests is the schema descriptor for sync_api_requests field.
	userratelimitDescSyncAPIRequests := userratelimitFields[1].Descriptor()
	// userratelimit.DefaultSyncAPIRequests holds the default value on creation for the sync_api_requests field.
	userratelimit.DefaultSyncAPIRequests = userratelimitDescSyncAPIRequests.Default.(int)
	// userratelimitDescAsyncAPIRequests is the schema descriptor for async_api_requests field.
	userratelimitDescAsyncAPIRequests := userratelimitFields[2].Descriptor()
	// userratelimit.DefaultAsyncAPIRequests holds the default value on creation for the async_api_requests field.
	userratelimit.DefaultAsyncAPIRequests = userratelimitDescAsyncAPIRequests.Default.(int)
	// userratelimitDescAPIEndpointRequests is the schema descriptor for api_endpoint_requests field.
	userratelimitDescAPIEndpointRequests := userratelimitFields[3].Descriptor()
	// userratelimit.DefaultAPIEndpointRequests holds the default value on creation for the api_endpoint_requests field.
	userratelimit.DefaultAPIEndpointRequests = userratelimitDescAPIEndpointRequests.Default.(int)
	// userratelimitDescWindowStart is the schema descriptor for window_start field.
	userratelimitDescWindowStart := userratelimitFields[4].Descriptor()
	// userratelimit.DefaultWindowStart holds the default value on creation for the window_start field.
	userratelimit.DefaultWindowStart = userratelimitDescWindowStart.Default.(func() time.Time)
	// userratelimitDescLastRequestAt is the schema descriptor for last_request_at field.
	userratelimitDescLastRequestAt := userratelimitFields[5].Descriptor()
	// userratelimit.DefaultLastRequestAt holds the default value on creation for the last_request_at field.
	userratelimit.DefaultLastRequestAt = userratelimitDescLastRequestAt.Default.(func() time.Time)
	// userratelimitDescIsRateLimited is the schema descriptor for is_rate_limited field.
	userratelimitDescIsRateLimited := userratelimitFields[6].Descriptor()
	// userratelimit.DefaultIsRateLimited holds the default value on creation for the is_rate_limited field.
	userratelimit.DefaultIsRateLimited = userratelimitDescIsRateLimited.Default.(bool)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescName is the schema descriptor for name field.
	workflowDescName := workflowFields[2].Descriptor()
	// workflow.DefaultName holds the default value on creation for the name field.
	workflow.DefaultName = workflowDescName.Default.(string)
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[4].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[5].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	workflowblockFields := schema.WorkflowBlock{}.Fields()
	_ = workflowblockFields
	// workflowblockDescEnabled is the schema descriptor for enabled field.
	workflowblockDescEnabled := workflowblockFields[6].Descriptor()
	// workflowblock.DefaultEnabled holds the default value on creation for the enabled field.
	workflowblock.DefaultEnabled = workflowblockDescEnabled.Default.(bool)
	// workflowblockDescCreatedAt is the schema descriptor for created_at field.
	workflowblockDescCreatedAt := workflowblockFields[9].Descriptor()
	// workflowblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowblock.DefaultCreatedAt = workflowblockDescCreatedAt.Default.(func() time.Time)
	// workflowblockDescUpdatedAt is the schema descriptor for updated_at field.
	workflowblockDescUpdatedAt := workflowblockFields[10].Descriptor()
	// workflowblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowblock.DefaultUpdatedAt = workflowblockDescUpdatedAt.Default.(func() time.Time)
	workflowedgeFields := schema.WorkflowEdge{}.Fields()
	_ = workflowedgeFields
	// workflowedgeDescCreatedAt is the schema descriptor for created_at field.
	workflowedgeDescCreatedAt := workflowedgeFields[6].Descriptor()
	// workflowedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowedge.DefaultCreatedAt = workflowedgeDescCreatedAt.Default.(func() time.Time)
	workflowoperationFields := schema.WorkflowOperation{}.Fields()
	_ = workflowoperationFields
	// workflowoperationDescCreatedAt is the schema descriptor for created_at field.
	workflowoperationDescCreatedAt := workflowoperationFields[7].Descriptor()
	// workflowoperation.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowoperation.DefaultCreatedAt = workflowoperationDescCreatedAt.Default.(func() time.Time)
}
