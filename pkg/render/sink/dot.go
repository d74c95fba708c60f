package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/viewport"
)

// DOT converts a canonical graph to Graphviz DOT format. Co-occurrence
// links are undirected, so the output is a plain "graph". Node fills
// follow the same group palette as the other sinks.
func DOT(g graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph KG {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", n.DisplayLabel()),
			fmt.Sprintf("fillcolor=%q", viewport.GroupColor(n.Group)),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Weight > 1 {
			fmt.Fprintf(&buf, "  %q -- %q [weight=%g];\n", e.Source, e.Target, e.Weight)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.Source, e.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphvizSVG renders a DOT graph to SVG using the in-process Graphviz
// engine. Useful for tools that want Graphviz's own layout instead of
// the force simulation.
func GraphvizSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
