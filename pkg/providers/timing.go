package providers

import "time"

// Segment types recorded by the tracker.
const (
	segmentModel = "model"
	segmentTool  = "tool"
)

// TimeSegment is one timed span inside a provider execution.
type TimeSegment struct {
	Type      string    `json:"type"` // model | tool
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int64     `json:"duration"` // ms
}

// Timing is the telemetry block attached to every execution, successful
// or not.
type Timing struct {
	StartTime         time.Time     `json:"startTime"`
	EndTime           time.Time     `json:"endTime"`
	Duration          int64         `json:"duration"` // ms
	ModelTime         int64         `json:"modelTime"`
	ToolsTime         int64         `json:"toolsTime"`
	FirstResponseTime int64         `json:"firstResponseTime"`
	Iterations        int           `json:"iterations"`
	TimeSegments      []TimeSegment `json:"timeSegments,omitempty"`
}

// timeTracker accumulates ordered time segments for one request. Not safe
// for concurrent use; the loop engine is single-threaded per request.
type timeTracker struct {
	start      time.Time
	segments   []*TimeSegment
	iterations int
}

func newTimeTracker() *timeTracker {
	return &timeTracker{start: time.Now()}
}

// begin opens a segment. The caller must finish it.
func (t *timeTracker) begin(segType, name string) *TimeSegment {
	seg := &TimeSegment{Type: segType, Name: name, StartTime: time.Now()}
	t.segments = append(t.segments, seg)
	return seg
}

func (t *timeTracker) finish(seg *TimeSegment) {
	seg.EndTime = time.Now()
	seg.Duration = seg.EndTime.Sub(seg.StartTime).Milliseconds()
}

func (t *timeTracker) addIteration() {
	t.iterations++
}

// build derives the full timing block from the recorded segments. Open
// segments are closed at the current time so a failure mid-call still
// reports what it spent.
func (t *timeTracker) build() *Timing {
	end := time.Now()
	timing := &Timing{
		StartTime:  t.start,
		EndTime:    end,
		Duration:   end.Sub(t.start).Milliseconds(),
		Iterations: t.iterations,
	}
	for _, seg := range t.segments {
		if seg.EndTime.IsZero() {
			t.finish(seg)
		}
		switch seg.Type {
		case segmentModel:
			timing.ModelTime += seg.Duration
			if timing.FirstResponseTime == 0 {
				timing.FirstResponseTime = seg.EndTime.Sub(t.start).Milliseconds()
			}
		case segmentTool:
			timing.ToolsTime += seg.Duration
		}
		timing.TimeSegments = append(timing.TimeSegments, *seg)
	}
	return timing
}
