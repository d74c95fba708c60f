package layout

import (
	"math"
	"math/rand"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
)

// =============================================================================
// Configuration
// =============================================================================

// Config holds the simulation parameters.
type Config struct {
	Repulsion       float64 // Pairwise push strength (force = Repulsion / d²)
	SpringLength    float64 // Rest length edges are pulled toward
	SpringStiffness float64 // Spring constant (force per unit deviation)
	Damping         float64 // Velocity decay per step, must be < 1
	MaxVelocity     float64 // Per-axis velocity cap, prevents instability
	Threshold       float64 // Settle when max displacement drops below this
	MaxSteps        int     // Hard step cap for graphs that never settle
	Width           float64 // Extent of the initial placement square
	Height          float64
	Clamp           bool  // Keep positions inside Width×Height bounds
	Seed            int64 // PRNG seed for initial placement
}

// DefaultConfig returns the simulation defaults. The force constants
// match the values the dashboard front end has always used, so server
// and browser layouts agree in shape.
func DefaultConfig() Config {
	return Config{
		Repulsion:       2000,
		SpringLength:    80,
		SpringStiffness: 0.05,
		Damping:         0.85,
		MaxVelocity:     50,
		Threshold:       0.05,
		MaxSteps:        1000,
		Width:           800,
		Height:          600,
		Seed:            42,
	}
}

// minDistance guards the repulsion term against near-zero separations.
const minDistance = 0.1

// maxForce caps any single force contribution.
const maxForce = 100.0

// =============================================================================
// Engine
// =============================================================================

// Point is a 2D position in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// body is the per-node simulation state. Bodies live in a slice owned by
// the engine; node order matches the canonical graph's node order.
type body struct {
	id     string
	x, y   float64
	vx, vy float64
}

// Engine evolves a layout for one canonical graph. It is not safe for
// concurrent use; each view owns its engine exclusively.
type Engine struct {
	cfg    Config
	bodies []body
	index  map[string]int
	edges  [][2]int // resolved into body indices at construction
	steps  int
	done   bool
}

// New creates an engine with pseudo-random initial positions inside the
// configured placement square. Graphs with fewer than two nodes are
// settled immediately.
func New(g graph.Graph, cfg Config) *Engine {
	return NewFrom(g, cfg, nil)
}

// NewFrom is like [New] but reuses previous positions for nodes present
// in prev. This keeps the picture stable across incremental payload
// updates: existing nodes stay put, new ones drop in at random spots.
func NewFrom(g graph.Graph, cfg Config, prev map[string]Point) *Engine {
	e := &Engine{
		cfg:    cfg,
		bodies: make([]body, 0, len(g.Nodes)),
		index:  make(map[string]int, len(g.Nodes)),
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for _, n := range g.Nodes {
		b := body{id: n.ID}
		if p, ok := prev[n.ID]; ok {
			b.x, b.y = p.X, p.Y
		} else {
			b.x = rng.Float64() * cfg.Width
			b.y = rng.Float64() * cfg.Height
		}
		e.index[n.ID] = len(e.bodies)
		e.bodies = append(e.bodies, b)
	}

	for _, ed := range g.Edges {
		// Normalize guarantees both endpoints resolve.
		e.edges = append(e.edges, [2]int{e.index[ed.Source], e.index[ed.Target]})
	}

	if len(e.bodies) < 2 {
		e.done = true
	}
	return e
}

// Settled reports whether the layout has converged or hit the step cap.
func (e *Engine) Settled() bool { return e.done }

// Steps returns the number of simulation steps taken so far.
func (e *Engine) Steps() int { return e.steps }

// Position returns the current position of a node.
func (e *Engine) Position(id string) (Point, bool) {
	i, ok := e.index[id]
	if !ok {
		return Point{}, false
	}
	return Point{X: e.bodies[i].x, Y: e.bodies[i].y}, true
}

// Positions returns a snapshot of all current positions keyed by node id.
func (e *Engine) Positions() map[string]Point {
	out := make(map[string]Point, len(e.bodies))
	for i := range e.bodies {
		out[e.bodies[i].id] = Point{X: e.bodies[i].x, Y: e.bodies[i].y}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the current positions.
// Returns zeros for an empty layout.
func (e *Engine) Bounds() (minX, minY, maxX, maxY float64) {
	if len(e.bodies) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = e.bodies[0].x, e.bodies[0].y
	maxX, maxY = minX, minY
	for i := 1; i < len(e.bodies); i++ {
		minX = math.Min(minX, e.bodies[i].x)
		minY = math.Min(minY, e.bodies[i].y)
		maxX = math.Max(maxX, e.bodies[i].x)
		maxY = math.Max(maxY, e.bodies[i].y)
	}
	return minX, minY, maxX, maxY
}

// =============================================================================
// Simulation
// =============================================================================

// Step advances the simulation by one tick and returns the settled flag.
// Stepping a settled engine is a no-op that keeps returning true.
func (e *Engine) Step() bool {
	if e.done {
		return true
	}

	n := len(e.bodies)
	fx := make([]float64, n)
	fy := make([]float64, n)

	// Repulsion between every pair of distinct nodes.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := e.bodies[j].x - e.bodies[i].x
			dy := e.bodies[j].y - e.bodies[i].y
			d := math.Hypot(dx, dy)
			if d < minDistance {
				// Coincident nodes: push apart along a fixed axis so the
				// result stays deterministic.
				d, dx, dy = minDistance, minDistance, 0
			}
			f := math.Min(e.cfg.Repulsion/(d*d), maxForce)
			ux, uy := dx/d, dy/d
			fx[i] -= f * ux
			fy[i] -= f * uy
			fx[j] += f * ux
			fy[j] += f * uy
		}
	}

	// Spring attraction toward the rest length for every edge.
	for _, ed := range e.edges {
		i, j := ed[0], ed[1]
		if i == j {
			continue
		}
		dx := e.bodies[j].x - e.bodies[i].x
		dy := e.bodies[j].y - e.bodies[i].y
		d := math.Hypot(dx, dy)
		if d < minDistance {
			continue
		}
		f := (d - e.cfg.SpringLength) * e.cfg.SpringStiffness
		f = math.Max(-maxForce, math.Min(f, maxForce))
		ux, uy := dx/d, dy/d
		fx[i] += f * ux
		fy[i] += f * uy
		fx[j] -= f * ux
		fy[j] -= f * uy
	}

	// Integrate with damping and a velocity cap, tracking the largest
	// displacement for the convergence check.
	var maxDisp float64
	for i := range e.bodies {
		b := &e.bodies[i]
		b.vx = clamp((b.vx+fx[i])*e.cfg.Damping, e.cfg.MaxVelocity)
		b.vy = clamp((b.vy+fy[i])*e.cfg.Damping, e.cfg.MaxVelocity)
		b.x += b.vx
		b.y += b.vy
		if e.cfg.Clamp {
			b.x = math.Max(0, math.Min(b.x, e.cfg.Width))
			b.y = math.Max(0, math.Min(b.y, e.cfg.Height))
		}
		maxDisp = math.Max(maxDisp, math.Hypot(b.vx, b.vy))
	}

	e.steps++
	if maxDisp < e.cfg.Threshold || e.steps >= e.cfg.MaxSteps {
		e.done = true
	}
	return e.done
}

// Run steps the simulation until it settles and returns the step count.
func (e *Engine) Run() int {
	for !e.Step() {
	}
	return e.steps
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(v, limit))
}
