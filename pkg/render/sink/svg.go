package sink

import (
	"bytes"
	"fmt"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/viewport"
)

const hoverCSS = `
    .node { transition: r 0.15s ease; cursor: pointer; }
    .node:hover { stroke-width: 3; }
    .node-label { pointer-events: none; }`

const hoverJS = `
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('mouseenter', () => {
        const label = document.querySelector('#label-' + CSS.escape(el.dataset.node));
        if (label) label.setAttribute('font-weight', 'bold');
      });
      el.addEventListener('mouseleave', () => {
        const label = document.querySelector('#label-' + CSS.escape(el.dataset.node));
        if (label) label.removeAttribute('font-weight');
      });
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      float64
	height     float64
	padding    float64
	background string
	nodeRadius float64
	fontSize   float64
	labels     bool
}

// WithSize sets the output dimensions in pixels (default 800×600).
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithBackground sets the background fill (default dashboard dark).
func WithBackground(hex string) SVGOption {
	return func(r *svgRenderer) { r.background = hex }
}

// WithoutLabels suppresses node labels.
func WithoutLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = false }
}

// WithNodeRadius sets the base node radius (default 6).
func WithNodeRadius(px float64) SVGOption {
	return func(r *svgRenderer) { r.nodeRadius = px }
}

// SVG renders the current layout as a standalone SVG document with hover
// highlighting. The layout is framed to fit the output size; an empty
// graph produces an empty document of the requested dimensions.
func SVG(g graph.Graph, eng *layout.Engine, opts ...SVGOption) []byte {
	r := svgRenderer{
		width:      800,
		height:     600,
		padding:    40,
		background: "#0b0e14",
		nodeRadius: 6,
		fontSize:   12,
		labels:     true,
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <style>%s</style>`+"\n", hoverCSS)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill=%q/>`+"\n", r.background)

	if !g.IsEmpty() {
		vp := viewport.Fit(eng, r.width, r.height, r.padding)
		pos := eng.Positions()
		renderEdges(&buf, g, pos, vp)
		renderNodes(&buf, &r, g, pos, vp)
		fmt.Fprintf(&buf, `  <script>//<![CDATA[%s//]]></script>`+"\n", hoverJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderEdges(buf *bytes.Buffer, g graph.Graph, pos map[string]layout.Point, vp viewport.Viewport) {
	for _, e := range g.Edges {
		x1, y1 := vp.ToScreen(pos[e.Source])
		x2, y2 := vp.ToScreen(pos[e.Target])
		// Heavier co-occurrence, thicker line.
		width := 1 + 0.5*(e.Weight-1)
		if width > 4 {
			width = 4
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke=%q stroke-width="%.1f"/>`+"\n",
			x1, y1, x2, y2, viewport.EdgeColor, width)
	}
}

func renderNodes(buf *bytes.Buffer, r *svgRenderer, g graph.Graph, pos map[string]layout.Point, vp viewport.Viewport) {
	for _, n := range g.Nodes {
		x, y := vp.ToScreen(pos[n.ID])
		radius := r.nodeRadius
		if n.Score > 0 {
			radius += n.Score * r.nodeRadius // centrality hint from the service
		}
		eid := escapeText(n.ID)
		fmt.Fprintf(buf, `  <circle class="node" data-node="%s" id="node-%s" cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="#1e1e2e" stroke-width="1.5">`+"\n",
			eid, eid, x, y, radius, viewport.GroupColor(n.Group))
		fmt.Fprintf(buf, `    <title>%s</title>`+"\n", escapeText(n.DisplayLabel()))
		buf.WriteString("  </circle>\n")

		if r.labels {
			fmt.Fprintf(buf, `  <text class="node-label" id="label-%s" x="%.1f" y="%.1f" font-size="%.1f" fill="#eaeef3" text-anchor="middle" font-family="sans-serif">%s</text>`+"\n",
				eid, x, y-radius-4, vp.LabelSize(r.fontSize), escapeText(n.DisplayLabel()))
		}
	}
}

// escapeText escapes the XML special characters in label text.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
