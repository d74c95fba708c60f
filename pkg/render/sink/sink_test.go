package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
)

func settledEngine(t *testing.T, g graph.Graph) *layout.Engine {
	t.Helper()
	cfg := layout.DefaultConfig()
	cfg.MaxSteps = 300
	eng := layout.New(g, cfg)
	eng.Run()
	return eng
}

func twoNodeGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "n0", Label: "Reuters", Group: "ORG"},
			{ID: "n1", Label: "NASA", Group: "ORG"},
		},
		Edges: []graph.Edge{{Source: "n0", Target: "n1", Weight: 2}},
	}
}

func TestSVGContainsNodesAndEdges(t *testing.T) {
	g := twoNodeGraph()
	svg := string(SVG(g, settledEngine(t, g)))

	for _, want := range []string{"<svg", "Reuters", "NASA", "<line", "<circle", "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	// Same group, same fill.
	if strings.Count(svg, `fill="#`) < 2 {
		t.Error("nodes should carry fill colors")
	}
}

func TestSVGEmptyGraph(t *testing.T) {
	var g graph.Graph
	svg := string(SVG(g, settledEngine(t, g), WithSize(200, 100)))

	if !strings.Contains(svg, `viewBox="0 0 200.0 100.0"`) {
		t.Errorf("empty SVG should keep requested size:\n%s", svg)
	}
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<line") {
		t.Error("empty graph must render no shapes")
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: "a", Label: `<b>&"bad"`}}}
	svg := string(SVG(g, settledEngine(t, g)))

	if strings.Contains(svg, "<b>") {
		t.Error("label markup must be escaped")
	}
	if !strings.Contains(svg, "&lt;b&gt;&amp;&quot;bad&quot;") {
		t.Errorf("escaped label missing:\n%s", svg)
	}
}

func TestPNGProducesValidImage(t *testing.T) {
	g := twoNodeGraph()
	data, err := PNG(g, settledEngine(t, g), WithPNGSize(200, 150), WithPNGScale(1))
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestDOTOutput(t *testing.T) {
	dot := DOT(twoNodeGraph())

	for _, want := range []string{"graph KG {", `"n0"`, `"n1"`, `"n0" -- "n1" [weight=2]`, `label="Reuters"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q in:\n%s", want, dot)
		}
	}
}

func TestJSONExport(t *testing.T) {
	g := twoNodeGraph()
	eng := settledEngine(t, g)

	data, err := JSON(g, eng)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out Export
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Nodes) != 2 || len(out.Links) != 1 {
		t.Fatalf("export = %d nodes %d links", len(out.Nodes), len(out.Links))
	}
	if !out.Settled {
		t.Error("settled flag should carry through")
	}
	if out.Nodes[0].ID != "n0" || out.Nodes[1].ID != "n1" {
		t.Error("node order must match canonical order")
	}
	if out.Nodes[0].X == out.Nodes[1].X && out.Nodes[0].Y == out.Nodes[1].Y {
		t.Error("nodes should have distinct positions")
	}
}
