// Package sink renders settled layouts to output formats.
//
// Four sinks are provided:
//
//   - [SVG]: standalone SVG with hover highlighting, the dashboard's
//     primary export format
//   - [PNG]: raster image drawn with fogleman/gg
//   - [DOT] and [GraphvizSVG]: Graphviz node-link export for tools that
//     speak DOT
//   - [JSON]: positions keyed by node id, for the browser front end
//
// All sinks take the canonical graph plus a layout engine snapshot and
// are pure with respect to both: rendering never advances the simulation
// or mutates positions. Screen coordinates come from pkg/render/viewport
// so exports match what the interactive viewer shows.
package sink
