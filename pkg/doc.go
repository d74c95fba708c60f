// Package pkg provides the core libraries for Misinfo-Detector.
//
// # Overview
//
// Misinfo-Detector analyzes news articles through an external analysis
// service and visualizes the extracted knowledge graphs. The pkg
// directory is organized into four main areas:
//
//  1. [graph], [layout] - Domain logic (payload normalization, force simulation)
//  2. [render] - Visualization (viewport math, SVG/PNG/DOT/JSON sinks, terminal viewer)
//  3. [detect], [score], [view] - Dashboard glue (service client, score display, view lifecycle)
//  4. [cache], [config], [httputil], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Analysis service response (untrusted JSON)
//	         ↓
//	    [graph] package (schema-tolerant normalization)
//	         ↓
//	    [layout] package (force-directed simulation)
//	         ↓
//	    [render] package (viewport + sinks)
//	         ↓
//	    SVG/PNG/DOT/JSON output, or live terminal view
//
// # Quick Start
//
// Normalize a payload and render a settled layout to SVG:
//
//	import (
//	    "github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
//	    "github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
//	    "github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/sink"
//	)
//
//	// 1. Normalize the untrusted service payload
//	p, _ := graph.ParsePayload(data)
//	g := graph.Normalize(p)
//
//	// 2. Run the force simulation to settlement
//	eng := layout.New(g, layout.DefaultConfig())
//	eng.Run()
//
//	// 3. Render
//	svg := sink.SVG(g, eng)
//
// # Main Packages
//
// [graph] - Canonical graph model plus normalization of the loosely
// structured payloads the analysis service emits. Tolerates missing ids,
// alternate field names, duplicate nodes, and dangling links.
//
// [layout] - Deterministic force-directed layout: pairwise repulsion,
// spring forces along links, damped integration, convergence detection.
//
// [render/viewport] - Pan/zoom/fit transforms between layout space and
// screen space, hit testing, and the group color palette.
//
// [render/sink] - Static outputs: native SVG, PNG via fogleman/gg, DOT
// (plus Graphviz SVG), and positioned-JSON export.
//
// [render/term] - Interactive terminal viewer built on bubbletea.
//
// [view] - Composition root tying normalization, layout, and a frame
// loop into one mountable unit with Start/Dispose lifecycle.
//
// [detect] - Client for the analysis service; the Verdict model carries
// the credibility score, evidence, and the raw knowledge graph.
//
// [score] - Credibility score banding and terminal score bar.
//
// [cache] - Verdict/artifact caching with file, Redis, MongoDB, and
// null backends behind one interface.
//
// [config] - TOML configuration layered over compiled-in defaults.
//
// [httputil] - JSON client with request IDs, retry with backoff.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Hook registry for metrics/tracing without hard
// backend dependencies.
package pkg
