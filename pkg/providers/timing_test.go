package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeTrackerDerivesTotals(t *testing.T) {
	tracker := newTimeTracker()

	model := tracker.begin(segmentModel, "openai")
	tracker.addIteration()
	time.Sleep(15 * time.Millisecond)
	tracker.finish(model)

	tool := tracker.begin(segmentTool, "lookup")
	time.Sleep(15 * time.Millisecond)
	tracker.finish(tool)
	tracker.addIteration()

	timing := tracker.build()

	assert.Equal(t, 2, timing.Iterations)
	require.Len(t, timing.TimeSegments, 2)
	assert.Equal(t, segmentModel, timing.TimeSegments[0].Type)
	assert.Equal(t, "openai", timing.TimeSegments[0].Name)
	assert.Equal(t, segmentTool, timing.TimeSegments[1].Type)

	for _, seg := range timing.TimeSegments {
		assert.False(t, seg.EndTime.Before(seg.StartTime))
		assert.GreaterOrEqual(t, seg.Duration, int64(10))
	}

	assert.GreaterOrEqual(t, timing.ModelTime, int64(10))
	assert.GreaterOrEqual(t, timing.ToolsTime, int64(10))
	// Segments run sequentially, so wall time covers both.
	assert.GreaterOrEqual(t, timing.Duration, timing.ModelTime+timing.ToolsTime-2)
	assert.True(t, timing.EndTime.After(timing.StartTime))
}

func TestTimeTrackerFirstResponseIsFirstModelSegment(t *testing.T) {
	tracker := newTimeTracker()

	first := tracker.begin(segmentModel, "openai")
	time.Sleep(15 * time.Millisecond)
	tracker.finish(first)

	second := tracker.begin(segmentModel, "openai")
	time.Sleep(15 * time.Millisecond)
	tracker.finish(second)

	timing := tracker.build()

	require.Positive(t, timing.FirstResponseTime)
	// Latency to the first answer, not to the last.
	assert.Less(t, timing.FirstResponseTime, timing.ModelTime)
	assert.LessOrEqual(t, timing.FirstResponseTime, timing.Duration)
}

func TestTimeTrackerClosesOpenSegments(t *testing.T) {
	tracker := newTimeTracker()

	seg := tracker.begin(segmentModel, "anthropic")
	tracker.addIteration()
	time.Sleep(15 * time.Millisecond)
	// A failure path reaches build without finishing the segment.
	timing := tracker.build()

	require.Len(t, timing.TimeSegments, 1)
	assert.False(t, timing.TimeSegments[0].EndTime.IsZero())
	assert.GreaterOrEqual(t, timing.ModelTime, int64(10))
	assert.False(t, seg.EndTime.IsZero())
}
