package graph

import (
	"encoding/json"
	"strconv"
)

// =============================================================================
// Payload - Untrusted Service Output
// =============================================================================

// Payload is the raw, untrusted graph fragment of an analysis response.
// Entries are kept as loosely typed values so that a single malformed
// element can never fail the whole decode.
type Payload struct {
	Nodes []any
	Links []any
}

// payloadJSON mirrors the wire shape. The link array may be named either
// "links" (d3 convention, what the service emits) or "edges".
type payloadJSON struct {
	Nodes []any `json:"nodes"`
	Links []any `json:"links"`
	Edges []any `json:"edges"`
}

// UnmarshalJSON decodes a payload, accepting "links" or "edges" for the
// link array. Absent or null arrays decode to nil.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw payloadJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Nodes = raw.Nodes
	p.Links = raw.Links
	if len(p.Links) == 0 {
		p.Links = raw.Edges
	}
	return nil
}

// MarshalJSON encodes the payload using the "links" name.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(payloadJSON{Nodes: p.Nodes, Links: p.Links})
}

// ParsePayload decodes raw JSON bytes into a Payload.
// An empty object, or one missing both arrays, is valid and yields an
// empty payload.
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// =============================================================================
// Normalization
// =============================================================================

// Normalize converts an untrusted payload into the canonical graph model.
//
// It never fails. Unresolvable node entries are skipped, duplicate node
// ids collapse to the first occurrence, and links whose endpoints do not
// resolve to known nodes are dropped and counted in [Graph.Dropped].
// Output node order is first-occurrence order from the payload.
func Normalize(p Payload) Graph {
	var g Graph

	seen := make(map[string]bool, len(p.Nodes))
	for i, entry := range p.Nodes {
		n, ok := resolveNode(entry, i)
		if !ok || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		g.Nodes = append(g.Nodes, n)
	}

	for _, entry := range p.Links {
		e, ok := resolveEdge(entry)
		if !ok || !seen[e.Source] || !seen[e.Target] {
			g.Dropped++
			continue
		}
		g.Edges = append(g.Edges, e)
	}

	return g
}

// Payload converts a canonical graph back into payload form. Feeding the
// result to [Normalize] reproduces the graph exactly (idempotence).
func (g *Graph) Payload() Payload {
	var p Payload
	for _, n := range g.Nodes {
		m := map[string]any{"id": n.ID, "label": n.Label}
		if n.Group != "" {
			m["group"] = n.Group
		}
		if n.Score != 0 {
			m["score"] = n.Score
		}
		p.Nodes = append(p.Nodes, m)
	}
	for _, e := range g.Edges {
		m := map[string]any{"source": e.Source, "target": e.Target}
		if e.Weight != 1 {
			m["weight"] = e.Weight
		}
		p.Links = append(p.Links, m)
	}
	return p
}

// =============================================================================
// Field Resolution
// =============================================================================

// resolveNode applies the ordered fallback chains to a single node entry.
// i is the entry's index in the payload, used to synthesize an id when
// none of the identifier fields are present.
func resolveNode(entry any, i int) (Node, bool) {
	switch v := entry.(type) {
	case map[string]any:
		n := Node{
			ID:    firstString(v, "id", "key", "label"),
			Label: firstString(v, "label", "name"),
			Group: firstString(v, "group", "type"),
		}
		if n.ID == "" {
			n.ID = "_n" + strconv.Itoa(i)
		}
		if n.Label == "" {
			n.Label = n.ID
		}
		if s, ok := asFloat(v["score"]); ok {
			n.Score = s
		}
		return n, true
	case string:
		// Bare string entry: the string is both id and label.
		if v == "" {
			return Node{}, false
		}
		return Node{ID: v, Label: v}, true
	case float64:
		id := formatNumber(v)
		return Node{ID: id, Label: id}, true
	default:
		return Node{}, false
	}
}

// resolveEdge resolves a single link entry. Accepted shapes:
//
//	{"source": "a", "target": "b"}        field names source/target or from/to
//	{"source": {"id": "a"}, ...}          nested endpoint objects
//	["a", "b"]                            positional pair
func resolveEdge(entry any) (Edge, bool) {
	switch v := entry.(type) {
	case map[string]any:
		src, okS := resolveEndpoint(firstPresent(v, "source", "from"))
		tgt, okT := resolveEndpoint(firstPresent(v, "target", "to"))
		if !okS || !okT {
			return Edge{}, false
		}
		e := Edge{Source: src, Target: tgt, Weight: 1}
		if w, ok := asFloat(firstPresent(v, "weight", "value")); ok && w > 0 {
			e.Weight = w
		}
		return e, true
	case []any:
		if len(v) < 2 {
			return Edge{}, false
		}
		src, okS := resolveEndpoint(v[0])
		tgt, okT := resolveEndpoint(v[1])
		if !okS || !okT {
			return Edge{}, false
		}
		return Edge{Source: src, Target: tgt, Weight: 1}, true
	default:
		return Edge{}, false
	}
}

// resolveEndpoint turns a link endpoint into a node id.
func resolveEndpoint(v any) (string, bool) {
	switch ep := v.(type) {
	case string:
		return ep, ep != ""
	case float64:
		return formatNumber(ep), true
	case map[string]any:
		id := firstString(ep, "id", "key", "label")
		return id, id != ""
	default:
		return "", false
	}
}

// firstString returns the first key in keys whose value converts to a
// non-empty string.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := asString(m[k]); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstPresent returns the first key in keys present in m.
func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return formatNumber(s), true
	default:
		return "", false
	}
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// formatNumber renders a JSON number as an id, without a trailing ".0"
// for integral values.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
