// Package search coordinates debounced, race-safe queries against an
// external search provider and annotates the results it commits.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is one phase of the coordinator's session state machine.
type State string

// Coordinator states.
const (
	StateIdle     State = "idle"
	StateTyping   State = "typing"
	StateQuerying State = "querying"
	StateResolved State = "resolved"
	StateFailed   State = "failed"
)

// defaultDebounce is the trailing coalescing window for query input.
const defaultDebounce = time.Second

// Snapshot is an immutable view of the session state.
type Snapshot struct {
	State   State
	Query   string
	Results []Result
	Total   int
	Err     error
}

// Coordinator debounces query input, dispatches to the provider, and commits
// only the response matching the latest dispatch. Superseded responses are
// silently discarded, never cancelled: last-dispatched-query wins, not
// last-arrived-response.
type Coordinator struct {
	provider   Provider
	ancestorID string
	debounce   time.Duration
	onChange   func(Snapshot)
	onStale    func()
	logger     *zap.Logger
	ctx        context.Context

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64 // monotonically increasing dispatch sequence
	query string
	snap  Snapshot
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDebounce overrides the 1s debounce window.
func WithDebounce(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.debounce = d }
}

// WithOnChange registers a callback invoked after every state transition.
// The callback runs outside the coordinator lock.
func WithOnChange(fn func(Snapshot)) CoordinatorOption {
	return func(c *Coordinator) { c.onChange = fn }
}

// WithStaleObserver registers a hook invoked when a stale response is dropped.
func WithStaleObserver(fn func()) CoordinatorOption {
	return func(c *Coordinator) { c.onStale = fn }
}

// WithLogger attaches a logger for discard and failure events.
func WithLogger(l *zap.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.logger = l }
}

// WithContext sets the base context passed to provider dispatches.
func WithContext(ctx context.Context) CoordinatorOption {
	return func(c *Coordinator) { c.ctx = ctx }
}

// NewCoordinator creates an idle search session scoped to one ancestor.
func NewCoordinator(provider Provider, ancestorID string, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		provider:   provider,
		ancestorID: ancestorID,
		debounce:   defaultDebounce,
		logger:     zap.NewNop(),
		ctx:        context.Background(),
		snap:       Snapshot{State: StateIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current session state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// SetQuery records a keystroke. A blank query resets to idle and discards any
// pending dispatch; otherwise the trailing debounce timer restarts, so rapid
// keystrokes coalesce into at most one dispatch per window.
func (c *Coordinator) SetQuery(query string) {
	c.mu.Lock()
	c.query = query

	if strings.TrimSpace(query) == "" {
		if c.timer != nil {
			c.timer.Stop()
			c.timer = nil
		}
		c.snap = Snapshot{State: StateIdle}
	} else {
		c.snap = Snapshot{State: StateTyping, Query: query}
		if c.timer == nil {
			c.timer = time.AfterFunc(c.debounce, c.dispatch)
		} else {
			c.timer.Reset(c.debounce)
		}
	}

	snap := c.snap
	c.mu.Unlock()
	c.notify(snap)
}

// Clear resets the session to idle.
func (c *Coordinator) Clear() {
	c.SetQuery("")
}

// dispatch fires once per debounce window with the trailing query.
func (c *Coordinator) dispatch() {
	c.mu.Lock()
	query := c.query
	if strings.TrimSpace(query) == "" {
		c.mu.Unlock()
		return
	}

	c.seq++
	seq := c.seq
	c.timer = nil
	c.snap = Snapshot{State: StateQuerying, Query: query}
	snap := c.snap
	c.mu.Unlock()
	c.notify(snap)

	go func() {
		resp, err := c.provider.Search(c.ctx, query, c.ancestorID)
		c.complete(seq, query, resp, err)
	}()
}

// complete commits a response only when it is still the latest dispatch and
// the query text has not changed since.
func (c *Coordinator) complete(seq uint64, query string, resp Response, err error) {
	c.mu.Lock()

	if seq != c.seq || query != c.query {
		c.mu.Unlock()
		c.logger.Debug("discarding stale search response",
			zap.String("query", query),
			zap.Uint64("seq", seq),
		)
		if c.onStale != nil {
			c.onStale()
		}
		return
	}

	switch {
	case err != nil:
		c.logger.Warn("search dispatch failed", zap.String("query", query), zap.Error(err))
		c.snap = Snapshot{State: StateFailed, Query: query, Err: err}
	case resp.Err() != nil:
		c.snap = Snapshot{State: StateFailed, Query: query, Err: resp.Err()}
	default:
		c.snap = Snapshot{
			State:   StateResolved,
			Query:   query,
			Results: Annotate(resp),
			Total:   resp.Total,
		}
	}

	snap := c.snap
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Coordinator) notify(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
