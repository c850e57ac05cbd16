package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/weft-labs/weft/pkg/collab"
)

// WSEvent is one received collaboration envelope.
type WSEvent struct {
	Event    string
	Raw      json.RawMessage // original frame
	Payload  map[string]any  // decoded payload, for assertions
	Received time.Time
}

// WSClient connects to the weft websocket endpoint and collects every
// envelope the server sends.
type WSClient struct {
	conn   *websocket.Conn
	events []WSEvent
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	doneCh chan struct{}
}

// WSConnect establishes a websocket connection and starts collecting events
// in a background goroutine. Identity travels in the dial headers.
func WSConnect(ctx context.Context, wsURL string, header http.Header) (*WSClient, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: header,
	})
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	clientCtx, cancel := context.WithCancel(ctx)
	c := &WSClient{
		conn:   conn,
		ctx:    clientCtx,
		cancel: cancel,
		doneCh: make(chan struct{}),
	}

	go c.readLoop()

	return c, nil
}

// Send writes one envelope.
func (c *WSClient) Send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(collab.Envelope{Event: event, Payload: data})
	if err != nil {
		return err
	}
	return c.conn.Write(c.ctx, websocket.MessageText, frame)
}

// Join sends a join-workflow for the given workflow.
func (c *WSClient) Join(workflowID string) error {
	return c.Send(collab.EventJoinWorkflow, collab.JoinPayload{WorkflowID: workflowID})
}

// WaitForMatch waits until an event matching the predicate is received, or
// fails with a timeout.
func (c *WSClient) WaitForMatch(predicate func(WSEvent) bool, timeout time.Duration) (*WSEvent, error) {
	deadline := time.After(timeout)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline:
			return nil, fmt.Errorf("timeout waiting for event (collected %d events: %v)",
				len(c.Events()), c.eventNames())
		case <-tick.C:
			c.mu.Lock()
			for i := range c.events {
				if predicate(c.events[i]) {
					evt := c.events[i]
					c.mu.Unlock()
					return &evt, nil
				}
			}
			c.mu.Unlock()
		}
	}
}

// WaitForEvent waits for the next envelope with the given event name.
func (c *WSClient) WaitForEvent(event string, timeout time.Duration) (*WSEvent, error) {
	return c.WaitForMatch(func(e WSEvent) bool {
		return e.Event == event
	}, timeout)
}

// Events returns a snapshot of all collected events.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]WSEvent, len(c.events))
	copy(result, c.events)
	return result
}

// EventsByName returns the collected events with the given name.
func (c *WSClient) EventsByName(event string) []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var result []WSEvent
	for _, e := range c.events {
		if e.Event == event {
			result = append(result, e)
		}
	}
	return result
}

func (c *WSClient) eventNames() []string {
	names := make([]string, 0)
	for _, e := range c.Events() {
		names = append(names, e.Event)
	}
	return names
}

// Close closes the websocket connection and waits for the read loop to exit.
func (c *WSClient) Close() error {
	c.cancel()
	_ = c.conn.CloseNow()
	<-c.doneCh
	return nil
}

// readLoop reads envelopes and appends them to the events slice.
func (c *WSClient) readLoop() {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			return // connection closed or context cancelled
		}

		var env collab.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			continue // skip malformed frames
		}

		evt := WSEvent{
			Event:    env.Event,
			Raw:      json.RawMessage(data),
			Received: time.Now(),
		}
		if len(env.Payload) > 0 {
			_ = json.Unmarshal(env.Payload, &evt.Payload)
		}

		c.mu.Lock()
		c.events = append(c.events, evt)
		c.mu.Unlock()
	}
}
