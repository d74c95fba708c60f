package sink

import (
	"encoding/json"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
)

// PositionedNode is a canonical node with its layout coordinates, the
// shape the browser dashboard consumes directly.
type PositionedNode struct {
	graph.Node
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Export is the JSON sink's document shape.
type Export struct {
	Nodes   []PositionedNode `json:"nodes"`
	Links   []graph.Edge     `json:"links"`
	Settled bool             `json:"settled"`
	Steps   int              `json:"steps"`
}

// JSON serializes the graph with its current positions. Node order
// matches the canonical graph, so output is deterministic.
func JSON(g graph.Graph, eng *layout.Engine) ([]byte, error) {
	out := Export{
		Nodes:   make([]PositionedNode, 0, len(g.Nodes)),
		Links:   g.Edges,
		Settled: eng.Settled(),
		Steps:   eng.Steps(),
	}
	for _, n := range g.Nodes {
		p, _ := eng.Position(n.ID)
		out.Nodes = append(out.Nodes, PositionedNode{Node: n, X: p.X, Y: p.Y})
	}
	return json.MarshalIndent(out, "", "  ")
}
