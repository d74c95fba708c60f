// Package view is the composition root for the knowledge-graph visual:
// it wires normalization, force layout, and a frame-driven render loop
// into one mountable unit with an explicit lifecycle.
//
// A [View] receives a raw service payload and a surface size. [View.Start]
// begins the loop (idempotent); [View.Dispose] stops it and releases all
// per-instance state. Each View owns its layout state exclusively, so
// multiple views can normalize overlapping payloads without aliasing.
//
// The actual drawing is pluggable: callers register a [FrameFunc] that is
// invoked once per frame with the graph and the live engine. The terminal
// viewer, the HTTP server's SVG endpoint, and tests all mount the same
// way.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
)

// FrameFunc draws one frame from the current layout state. It must not
// retain the engine past the call.
type FrameFunc func(g graph.Graph, eng *layout.Engine)

// Option configures a View.
type Option func(*View)

// WithLayoutConfig overrides the simulation parameters.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(v *View) { v.cfg = cfg }
}

// WithFrameFunc registers the per-frame draw callback.
func WithFrameFunc(fn FrameFunc) Option {
	return func(v *View) { v.frame = fn }
}

// WithFPS sets the frame rate of the render loop (default 30).
func WithFPS(fps int) Option {
	return func(v *View) {
		if fps > 0 {
			v.fps = fps
		}
	}
}

// View owns one normalized graph and its layout lifecycle.
type View struct {
	mu sync.Mutex

	graph graph.Graph
	eng   *layout.Engine
	cfg   layout.Config
	frame FrameFunc
	fps   int

	cancel  context.CancelFunc
	stopped chan struct{}
	err     error
}

// New normalizes the payload and prepares a view for a width×height
// surface. The loop does not run until [View.Start].
func New(p graph.Payload, width, height float64, opts ...Option) *View {
	v := &View{
		cfg: layout.DefaultConfig(),
		fps: 30,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.cfg.Width = width
	v.cfg.Height = height
	v.graph = graph.Normalize(p)
	v.eng = layout.New(v.graph, v.cfg)
	return v
}

// Empty reports whether the normalized graph has no nodes. Callers
// should render a fallback message instead of mounting an empty view.
func (v *View) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.graph.IsEmpty()
}

// Graph returns the normalized graph.
func (v *View) Graph() graph.Graph {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.graph
}

// Err returns the failure recorded by the render loop, if any. A fault
// inside a frame callback stops the loop and is surfaced here instead of
// propagating as a panic.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Positions returns a snapshot of the current layout positions.
func (v *View) Positions() map[string]layout.Point {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.eng.Positions()
}

// Settled reports whether the simulation has converged.
func (v *View) Settled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.eng.Settled()
}

// Start begins the frame loop. It is idempotent: calling Start on a
// running or empty view does nothing. Each frame advances the simulation
// one step (skipped once settled) and invokes the frame callback.
func (v *View) Start() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil || v.graph.IsEmpty() {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.stopped = make(chan struct{})
	go v.loop(ctx, v.stopped)
}

// Dispose stops the frame loop on the next scheduling opportunity and
// waits for it to exit. Idempotent.
func (v *View) Dispose() {
	v.mu.Lock()
	cancel, stopped := v.cancel, v.stopped
	v.cancel, v.stopped = nil, nil
	v.mu.Unlock()

	if cancel != nil {
		cancel()
		<-stopped
	}
}

// SetPayload replaces the view's graph. The previous loop is cancelled
// before the new one may start, so two loops never run concurrently.
// Nodes surviving the payload change keep their positions.
func (v *View) SetPayload(p graph.Payload) {
	running := v.running()
	v.Dispose()

	v.mu.Lock()
	prev := v.eng.Positions()
	v.graph = graph.Normalize(p)
	v.eng = layout.NewFrom(v.graph, v.cfg, prev)
	v.err = nil
	v.mu.Unlock()

	if running {
		v.Start()
	}
}

func (v *View) running() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cancel != nil
}

// loop is the single frame loop. One simulation step and one draw per
// tick; a panic in either is recorded and ends the loop.
func (v *View) loop(ctx context.Context, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !v.stepFrame() {
				return
			}
		}
	}
}

// stepFrame runs one frame under the lock and reports whether the loop
// should continue.
func (v *View) stepFrame() (ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			v.err = errors.New(errors.ErrCodeRenderFailed, "frame callback panicked: %v", r)
			ok = false
		}
	}()

	v.eng.Step()
	if v.frame != nil {
		v.frame(v.graph, v.eng)
	}
	return true
}

// String describes the view for logs.
func (v *View) String() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fmt.Sprintf("view(%d nodes, %d links, settled=%v)",
		v.graph.NodeCount(), v.graph.EdgeCount(), v.eng.Settled())
}
