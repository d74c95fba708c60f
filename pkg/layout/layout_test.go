package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
)

func testGraph(nodes []string, edges [][2]string) graph.Graph {
	var g graph.Graph
	for _, id := range nodes {
		g.Nodes = append(g.Nodes, graph.Node{ID: id, Label: id})
	}
	for _, e := range edges {
		g.Edges = append(g.Edges, graph.Edge{Source: e[0], Target: e[1], Weight: 1})
	}
	return g
}

func TestEmptyAndSingleNodeSettleImmediately(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
	}{
		{name: "empty", nodes: nil},
		{name: "single node", nodes: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(testGraph(tt.nodes, nil), DefaultConfig())
			if !eng.Settled() {
				t.Error("should be settled at construction")
			}
			if !eng.Step() {
				t.Error("Step on settled engine must return true")
			}
			if eng.Steps() != 0 {
				t.Errorf("Steps = %d, want 0", eng.Steps())
			}
		})
	}
}

func TestConvergenceWithinStepCap(t *testing.T) {
	g := testGraph(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}},
	)
	eng := New(g, DefaultConfig())

	steps := eng.Run()
	if !eng.Settled() {
		t.Fatal("engine must settle")
	}
	if steps > DefaultConfig().MaxSteps {
		t.Errorf("took %d steps, cap is %d", steps, DefaultConfig().MaxSteps)
	}
}

func TestZeroEdgeGraphScattersAndSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 200
	eng := New(testGraph([]string{"a", "b", "c"}, nil), cfg)

	eng.Run()
	if !eng.Settled() {
		t.Fatal("pure-repulsion graph must settle via the step cap")
	}

	// Repulsion should have pushed all nodes apart.
	pos := eng.Positions()
	ids := []string{"a", "b", "c"}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := pos[ids[i]], pos[ids[j]]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < 1 {
				t.Errorf("nodes %s and %s still coincident", ids[i], ids[j])
			}
		}
	}
}

func TestSpringRestLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repulsion = 50
	cfg.SpringStiffness = 0.2
	cfg.Threshold = 0.01
	cfg.MaxSteps = 5000

	eng := New(testGraph([]string{"a", "b"}, [][2]string{{"a", "b"}}), cfg)
	eng.Run()

	pa, _ := eng.Position("a")
	pb, _ := eng.Position("b")
	dist := math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
	if math.Abs(dist-cfg.SpringLength) > 2 {
		t.Errorf("settled distance = %.2f, want ≈ %.0f", dist, cfg.SpringLength)
	}
}

func TestDeterministicForFixedSeed(t *testing.T) {
	g := testGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	e1 := New(g, DefaultConfig())
	e2 := New(g, DefaultConfig())
	e1.Run()
	e2.Run()

	if !reflect.DeepEqual(e1.Positions(), e2.Positions()) {
		t.Error("same seed must reproduce identical layouts")
	}

	cfg := DefaultConfig()
	cfg.Seed = 7
	e3 := New(g, cfg)
	if reflect.DeepEqual(e1.Positions(), e3.Positions()) {
		t.Error("different seed should start from different positions")
	}
}

func TestNewFromKeepsPreviousPositions(t *testing.T) {
	g := testGraph([]string{"a", "b"}, nil)
	prev := map[string]Point{"a": {X: 10, Y: 20}}

	eng := NewFrom(g, DefaultConfig(), prev)
	if p, _ := eng.Position("a"); p.X != 10 || p.Y != 20 {
		t.Errorf("node a should keep previous position, got %+v", p)
	}
}

func TestCoincidentNodesSeparate(t *testing.T) {
	g := testGraph([]string{"a", "b"}, nil)
	prev := map[string]Point{"a": {X: 5, Y: 5}, "b": {X: 5, Y: 5}}
	cfg := DefaultConfig()
	cfg.MaxSteps = 50

	eng := NewFrom(g, cfg, prev)
	eng.Run()

	pa, _ := eng.Position("a")
	pb, _ := eng.Position("b")
	if math.Hypot(pa.X-pb.X, pa.Y-pb.Y) < 1 {
		t.Error("coincident nodes must be pushed apart")
	}
}

func TestClampKeepsPositionsInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Clamp = true
	cfg.Width = 100
	cfg.Height = 100
	cfg.MaxSteps = 100

	g := testGraph([]string{"a", "b", "c", "d", "e"}, nil)
	eng := New(g, cfg)
	eng.Run()

	for id, p := range eng.Positions() {
		if p.X < 0 || p.X > cfg.Width || p.Y < 0 || p.Y > cfg.Height {
			t.Errorf("node %s escaped bounds: %+v", id, p)
		}
	}
}

func TestBounds(t *testing.T) {
	g := testGraph([]string{"a", "b"}, nil)
	prev := map[string]Point{"a": {X: -10, Y: 5}, "b": {X: 30, Y: -2}}
	eng := NewFrom(g, DefaultConfig(), prev)

	minX, minY, maxX, maxY := eng.Bounds()
	if minX != -10 || minY != -2 || maxX != 30 || maxY != 5 {
		t.Errorf("Bounds() = %v %v %v %v", minX, minY, maxX, maxY)
	}
}
