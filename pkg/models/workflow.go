// Package models contains request/response models and business domain types.
package models

// Position is a block's canvas coordinate pair.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Subblock is one configurable field inside a workflow block. Value holds
// whatever the client last wrote (string, number, list, object).
type Subblock struct {
	ID    string `json:"id"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// Variable is a workflow-scoped variable. Variables live as a JSON map on the
// workflow row, keyed by variable ID.
type Variable struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// BlockState is the wire projection of a workflow block sent to clients in
// workflow-state payloads.
type BlockState struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	Name      string              `json:"name"`
	Position  Position            `json:"position"`
	Enabled   bool                `json:"enabled"`
	ParentID  string              `json:"parentId,omitempty"`
	SubBlocks map[string]Subblock `json:"subBlocks"`
}

// EdgeState is the wire projection of a workflow edge.
type EdgeState struct {
	ID            string `json:"id"`
	SourceBlockID string `json:"sourceBlockId"`
	TargetBlockID string `json:"targetBlockId"`
	SourceHandle  string `json:"sourceHandle,omitempty"`
	TargetHandle  string `json:"targetHandle,omitempty"`
}

// WorkflowState is the full document a client receives on join and sync.
type WorkflowState struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Blocks       map[string]BlockState `json:"blocks"`
	Edges        []EdgeState           `json:"edges"`
	Variables    map[string]Variable   `json:"variables"`
	LastModified int64                 `json:"lastModified"`
}
