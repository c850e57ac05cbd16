package providers

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitStreamDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not finish in time")
	}
}

func TestStreamingExecutionDeliversTextAndCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent, 8)
	exec := &Response{Model: "m", Tokens: TokenUsage{Prompt: 3, Completion: 1, Total: 4}}
	tracker := newTimeTracker()

	s := newStreamingExecution(ctx, cancel, events, exec, tracker, "fake")

	events <- streamEvent{text: "Hel"}
	events <- streamEvent{text: "lo"}
	events <- streamEvent{usage: &TokenUsage{Prompt: 5, Completion: 2, Total: 7}}
	events <- streamEvent{done: true}
	close(events)

	data, err := io.ReadAll(s.Stream)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))

	waitStreamDone(t, s.Done)
	assert.Equal(t, "Hello", exec.Content)
	// The final call's usage stacks on what earlier iterations accumulated.
	assert.Equal(t, TokenUsage{Prompt: 8, Completion: 3, Total: 11}, exec.Tokens)
	require.NotNil(t, exec.Timing)
	require.Len(t, exec.Timing.TimeSegments, 1)
	assert.Equal(t, segmentModel, exec.Timing.TimeSegments[0].Type)
	assert.Equal(t, 1, exec.Timing.Iterations)
	assert.False(t, s.FunctionCallSeen)
}

func TestStreamingExecutionStripsFencesFromStoredContent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent, 8)
	exec := &Response{}

	s := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "fake")

	events <- streamEvent{text: "```json\n"}
	events <- streamEvent{text: `{"ok":true}`}
	events <- streamEvent{text: "\n```"}
	events <- streamEvent{done: true}
	close(events)

	data, err := io.ReadAll(s.Stream)
	require.NoError(t, err)

	waitStreamDone(t, s.Done)
	// Live deltas pass through raw; only the stored content is unwrapped.
	assert.Equal(t, "```json\n{\"ok\":true}\n```", string(data))
	assert.Equal(t, `{"ok":true}`, exec.Content)
}

func TestStreamingExecutionErrorReachesReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent, 8)
	exec := &Response{}

	s := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "fake")

	boom := errors.New("upstream reset")
	events <- streamEvent{text: "partial"}
	events <- streamEvent{err: boom}

	data, err := io.ReadAll(s.Stream)
	assert.Equal(t, "partial", string(data))
	require.ErrorIs(t, err, boom)

	waitStreamDone(t, s.Done)
	// Whatever arrived before the failure is still recorded.
	assert.Equal(t, "partial", exec.Content)
	require.NotNil(t, exec.Timing)
}

func TestStreamingExecutionFunctionCallStopsStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent, 8)
	exec := &Response{}

	s := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "fake")

	events <- streamEvent{text: "before"}
	events <- streamEvent{functionCall: true}

	data, err := io.ReadAll(s.Stream)
	require.NoError(t, err)
	assert.Equal(t, "before", string(data))

	waitStreamDone(t, s.Done)
	assert.True(t, s.FunctionCallSeen)
	assert.Equal(t, "before", exec.Content)
}

func TestStreamingExecutionCloseUnblocksDrain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent) // nothing will ever arrive
	exec := &Response{}

	s := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "fake")

	require.NoError(t, s.Stream.Close())

	waitStreamDone(t, s.Done)
	assert.Error(t, ctx.Err())
	require.NotNil(t, exec.Timing)
}

func TestStreamingExecutionChannelCloseCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan streamEvent, 1)
	exec := &Response{}

	s := newStreamingExecution(ctx, cancel, events, exec, newTimeTracker(), "fake")

	events <- streamEvent{text: "x"}
	close(events)

	data, err := io.ReadAll(s.Stream)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	waitStreamDone(t, s.Done)
	assert.Equal(t, "x", exec.Content)
}
