// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PermissionsColumns holds the columns for the "permissions" table.
	PermissionsColumns = []*schema.Column{
		{Name: "permission_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "permission_type", Type: field.TypeEnum, Enums: []string{"admin", "write", "read"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PermissionsTable holds the schema information for the "permissions" table.
	PermissionsTable = &schema.Table{
		Name:       "permissions",
		Columns:    PermissionsColumns,
		PrimaryKey: []*schema.Column{PermissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "permission_user_id_entity_type_entity_id",
				Unique:  true,
				Columns: []*schema.Column{PermissionsColumns[1], PermissionsColumns[2], PermissionsColumns[3]},
			},
			{
				Name:    "permission_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{PermissionsColumns[2], PermissionsColumns[3]},
			},
		},
	}
	// UserRateLimitsColumns holds the columns for the "user_rate_limits" table.
	UserRateLimitsColumns = []*schema.Column{
		{Name: "reference_id", Type: field.TypeString, Unique: true},
		{Name: "sync_api_requests", Type: field.TypeInt, Default: 0},
		{Name: "async_api_requests", Type: field.TypeInt, Default: 0},
		{Name: "api_endpoint_requests", Type: field.TypeInt, Default: 0},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "last_request_at", Type: field.TypeTime},
		{Name: "is_rate_limited", Type: field.TypeBool, Default: false},
		{Name: "rate_limit_reset_at", Type: field.TypeTime, Nullable: true},
	}
	// UserRateLimitsTable holds the schema information for the "user_rate_limits" table.
	UserRateLimitsTable = &schema.Table{
		Name:       "user_rate_limits",
		Columns:    UserRateLimitsColumns,
		PrimaryKey: []*schema.Column{UserRateLimitsColumns[0]},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: "Untitled workflow"},
		{Name: "variables", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[1]},
			},
		},
	}
	// WorkflowBlocksColumns holds the columns for the "workflow_blocks" table.
	WorkflowBlocksColumns = []*schema.Column{
		{Name: "block_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "position_x", Type: field.TypeFloat64},
		{Name: "position_y", Type: field.TypeFloat64},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "sub_blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowBlocksTable holds the schema information for the "workflow_blocks" table.
	WorkflowBlocksTable = &schema.Table{
		Name:       "workflow_blocks",
		Columns:    WorkflowBlocksColumns,
		PrimaryKey: []*schema.Column{WorkflowBlocksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_blocks_workflows_blocks",
				Columns:    []*schema.Column{WorkflowBlocksColumns[10]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowblock_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowBlocksColumns[10]},
			},
		},
	}
	// WorkflowEdgesColumns holds the columns for the "workflow_edges" table.
	WorkflowEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "source_block_id", Type: field.TypeString},
		{Name: "target_block_id", Type: field.TypeString},
		{Name: "source_handle", Type: field.TypeString, Nullable: true},
		{Name: "target_handle", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowEdgesTable holds the schema information for the "workflow_edges" table.
	WorkflowEdgesTable = &schema.Table{
		Name:       "workflow_edges",
		Columns:    WorkflowEdgesColumns,
		PrimaryKey: []*schema.Column{WorkflowEdgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_edges_workflows_workflow_edges",
				Columns:    []*schema.Column{WorkflowEdgesColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowedge_workflow_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowEdgesColumns[6]},
			},
			{
				Name:    "workflowedge_workflow_id_source_block_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowEdgesColumns[6], WorkflowEdgesColumns[1]},
			},
			{
				Name:    "workflowedge_workflow_id_target_block_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowEdgesColumns[6], WorkflowEdgesColumns[2]},
			},
		},
	}
	// WorkflowOperationsColumns holds the columns for the "workflow_operations" table.
	WorkflowOperationsColumns = []*schema.Column{
		{Name: "operation_id", Type: field.TypeString, Unique: true},
		{Name: "operation", Type: field.TypeString},
		{Name: "target", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "client_timestamp", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeString},
	}
	// WorkflowOperationsTable holds the schema information for the "workflow_operations" table.
	WorkflowOperationsTable = &schema.Table{
		Name:       "workflow_operations",
		Columns:    WorkflowOperationsColumns,
		PrimaryKey: []*schema.Column{WorkflowOperationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_operations_workflows_operations",
				Columns:    []*schema.Column{WorkflowOperationsColumns[7]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowoperation_workflow_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowOperationsColumns[7], WorkflowOperationsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PermissionsTable,
		UserRateLimitsTable,
		WorkflowsTable,
		WorkflowBlocksTable,
		WorkflowEdgesTable,
		WorkflowOperationsTable,
	}
)

func init() {
	WorkflowBlocksTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowEdgesTable.ForeignKeys[0].RefTable = WorkflowsTable
	WorkflowOperationsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
