package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatchesByName(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", Func(func(_ context.Context, params map[string]any) (*ToolResult, error) {
		return &ToolResult{Success: true, Output: params["msg"]}, nil
	}))
	r.Register("fail", Func(func(context.Context, map[string]any) (*ToolResult, error) {
		return &ToolResult{Success: false, Error: "nope"}, nil
	}))

	result, err := r.Execute(context.Background(), "echo", map[string]any{"msg": "hi"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "hi", result.Output)

	result, err = r.Execute(context.Background(), "fail", nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "nope", result.Error)
}

func TestRegistryUnknownToolIsFailedResult(t *testing.T) {
	r := NewRegistry()

	result, err := r.Execute(context.Background(), "missing", nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, `tool "missing" is not registered`)
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	nop := Func(func(context.Context, map[string]any) (*ToolResult, error) { return &ToolResult{Success: true}, nil })
	r.Register("zeta.last", nop)
	r.Register("alpha.first", nop)
	r.Register("mid", nop)

	assert.Equal(t, []string{"alpha.first", "mid", "zeta.last"}, r.Names())
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("tool", Func(func(context.Context, map[string]any) (*ToolResult, error) {
		return &ToolResult{Success: true, Output: "old"}, nil
	}))
	r.Register("tool", Func(func(context.Context, map[string]any) (*ToolResult, error) {
		return &ToolResult{Success: true, Output: "new"}, nil
	}))

	result, err := r.Execute(context.Background(), "tool", nil)
	require.NoError(t, err)
	assert.Equal(t, "new", result.Output)
}

func TestFuncPropagatesError(t *testing.T) {
	boom := errors.New("infrastructure down")
	r := NewRegistry()
	r.Register("broken", Func(func(context.Context, map[string]any) (*ToolResult, error) {
		return nil, boom
	}))

	_, err := r.Execute(context.Background(), "broken", nil)
	assert.ErrorIs(t, err, boom)
}
