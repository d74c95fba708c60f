// Package render provides visualization rendering for knowledge graphs.
//
// # Overview
//
// This package groups the rendering pipeline that turns a normalized
// graph plus a settled (or still-running) layout into visual output:
//
//   - Viewport math and colors (in [viewport] subpackage)
//   - Static sinks: SVG, PNG, DOT, JSON (in [sink] subpackage)
//   - Interactive terminal viewer (in [term] subpackage)
//
// # Viewport
//
// The [viewport] subpackage maps layout coordinates onto a screen
// rectangle with pan and zoom, keeps the zoom anchor fixed under the
// cursor, and resolves hover hits. It also owns the deterministic
// group-to-color palette shared by every renderer.
//
// # Sinks
//
// The [sink] subpackage renders one frame of layout state to bytes:
//
//	svg := sink.SVG(g, eng)
//	png, err := sink.PNG(g, eng)
//	dot := sink.DOT(g)
//	out, err := sink.JSON(g, eng)
//
// SVG is built natively; PNG uses fogleman/gg; DOT can additionally be
// rasterized through Graphviz with [sink.GraphvizSVG].
//
// # Terminal Viewer
//
// The [term] subpackage is a bubbletea model that steps the simulation
// on a frame tick and paints the graph as character cells, with pan,
// zoom, and mouse hover.
//
// [viewport]: github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/viewport
// [sink]: github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/sink
// [term]: github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/term
package render
