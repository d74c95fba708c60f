// Package layout computes 2D positions for knowledge graphs through an
// iterative force simulation.
//
// The model is the usual trio of forces: pairwise repulsion falling off
// with squared distance, spring attraction pulling each edge toward a
// rest length, and velocity damping so the system converges instead of
// oscillating. Positions and velocities live in an arena owned by the
// [Engine], indexed by node id; canonical nodes are never mutated.
//
// # Usage
//
//	eng := layout.New(g, layout.DefaultConfig())
//	for !eng.Step() {
//	}
//	pos := eng.Positions()
//
// Or drive it frame by frame from a render loop, checking the return of
// [Engine.Step] to stop stepping once the layout has settled.
//
// # Determinism
//
// Initial positions are drawn from a seeded PRNG and the simulation
// iterates slices only, so a fixed [Config.Seed] reproduces the exact
// same layout on every run. This is what makes layouts cacheable and
// testable.
//
// # Degenerate Inputs
//
// Zero- and single-node graphs settle immediately. Edge-free graphs
// scatter under pure repulsion until the step cap is reached. The step
// cap ([Config.MaxSteps]) bounds worst-case CPU on graphs that never
// reach the displacement threshold.
package layout
