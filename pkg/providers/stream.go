package providers

import (
	"context"
	"io"
	"strings"
)

// streamReader is the consumer-facing byte stream. Close cancels the
// upstream request in addition to closing the pipe.
type streamReader struct {
	*io.PipeReader
	cancel context.CancelFunc
}

func (r *streamReader) Close() error {
	r.cancel()
	return r.PipeReader.Close()
}

// newStreamingExecution normalises adapter events into a byte stream of
// UTF-8 text deltas. The completion callback runs exactly once,
// immediately before the stream closes, with the full content and the
// last usage seen; it finalises the execution, ends the final model
// segment and is followed by the Done close.
func newStreamingExecution(ctx context.Context, cancel context.CancelFunc, events <-chan streamEvent, exec *Response, tracker *timeTracker, backendName string) *StreamingExecution {
	pr, pw := io.Pipe()
	done := make(chan struct{})
	s := &StreamingExecution{
		Stream:    &streamReader{PipeReader: pr, cancel: cancel},
		Execution: exec,
		Done:      done,
	}

	seg := tracker.begin(segmentModel, backendName)
	tracker.addIteration()

	complete := func(fullContent string, lastUsage *TokenUsage) {
		exec.Content = stripFencedJSON(fullContent)
		mergeUsage(&exec.Tokens, lastUsage)
		tracker.finish(seg)
		exec.Timing = tracker.build()
	}

	go func() {
		var full strings.Builder
		var lastUsage *TokenUsage
		var streamErr error

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					break drain
				}
				switch {
				case ev.err != nil:
					streamErr = ev.err
					break drain
				case ev.functionCall:
					// Content so far is final; the consumer may switch
					// to a non-streaming follow-up.
					s.FunctionCallSeen = true
					break drain
				case ev.usage != nil:
					lastUsage = ev.usage
				case ev.done:
					break drain
				case ev.text != "":
					full.WriteString(ev.text)
					if _, err := pw.Write([]byte(ev.text)); err != nil {
						// Consumer closed its end of the pipe.
						break drain
					}
				}
			case <-ctx.Done():
				streamErr = ctx.Err()
				break drain
			}
		}

		cancel()
		complete(full.String(), lastUsage)
		if streamErr != nil {
			pw.CloseWithError(streamErr)
		} else {
			pw.Close()
		}
		close(done)
	}()

	return s
}

// sendEvent delivers ev unless the stream context is gone; adapters use it
// so a departed consumer never blocks the drain goroutine.
func sendEvent(ctx context.Context, ch chan<- streamEvent, ev streamEvent) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
