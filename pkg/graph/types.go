package graph

// =============================================================================
// Canonical Model
// =============================================================================

// Node is a single entity in the canonical knowledge graph.
// Positions are not stored here; layout owns them (pkg/layout).
type Node struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Group string  `json:"group,omitempty" bson:"group,omitempty"` // Entity class, drives node color
	Score float64 `json:"score,omitempty" bson:"score,omitempty"` // Centrality hint from the service
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a validated link between two canonical nodes.
// Both endpoints are guaranteed to exist in the owning graph's node set.
type Edge struct {
	Source string  `json:"source" bson:"source"`
	Target string  `json:"target" bson:"target"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"` // Co-occurrence count, defaults to 1
}

// Graph is the canonical, deduplicated node-link model.
//
// Invariants established by [Normalize]:
//   - node ids are pairwise distinct
//   - node order is first-seen order from the payload
//   - every edge's endpoints are present in the node set
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"links" bson:"links"`

	// Dropped counts edges discarded during normalization because an
	// endpoint did not resolve to a known node. Informational only.
	Dropped int `json:"-" bson:"-"`
}

// NodeCount returns the number of nodes.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of validated edges.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// IsEmpty reports whether the graph has no nodes.
// Empty graphs are a normal outcome for short or unparseable articles.
func (g Graph) IsEmpty() bool { return len(g.Nodes) == 0 }

// Index returns a node-id → slice-index lookup for the node list.
func (g *Graph) Index() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		idx[n.ID] = i
	}
	return idx
}

// Node returns the node with the given id, or nil if absent.
func (g *Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}
