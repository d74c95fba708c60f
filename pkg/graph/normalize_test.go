package graph

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, data string) Payload {
	t.Helper()
	p, err := ParsePayload([]byte(data))
	if err != nil {
		t.Fatalf("ParsePayload(%s): %v", data, err)
	}
	return p
}

func TestNormalizeIDResolution(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
	}{
		{
			name:    "id field",
			payload: `{"nodes": [{"id": "n0", "label": "Reuters"}]}`,
			wantID:  "n0",
		},
		{
			name:    "key fallback",
			payload: `{"nodes": [{"key": "n1"}]}`,
			wantID:  "n1",
		},
		{
			name:    "label fallback",
			payload: `{"nodes": [{"label": "Reuters"}]}`,
			wantID:  "Reuters",
		},
		{
			name:    "synthesized placeholder",
			payload: `{"nodes": [{"group": "ORG"}]}`,
			wantID:  "_n0",
		},
		{
			name:    "numeric id",
			payload: `{"nodes": [{"id": 7}]}`,
			wantID:  "7",
		},
		{
			name:    "bare string entry",
			payload: `{"nodes": ["Reuters"]}`,
			wantID:  "Reuters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Normalize(mustParse(t, tt.payload))
			if len(g.Nodes) != 1 {
				t.Fatalf("got %d nodes, want 1", len(g.Nodes))
			}
			if g.Nodes[0].ID != tt.wantID {
				t.Errorf("ID = %q, want %q", g.Nodes[0].ID, tt.wantID)
			}
		})
	}
}

func TestNormalizeLabelAndGroupResolution(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLabel string
		wantGroup string
	}{
		{
			name:      "label preferred",
			payload:   `{"nodes": [{"id": "a", "label": "Alpha", "name": "ignored"}]}`,
			wantLabel: "Alpha",
		},
		{
			name:      "name fallback",
			payload:   `{"nodes": [{"id": "a", "name": "Alpha"}]}`,
			wantLabel: "Alpha",
		},
		{
			name:      "id fallback",
			payload:   `{"nodes": [{"id": "a"}]}`,
			wantLabel: "a",
		},
		{
			name:      "group field",
			payload:   `{"nodes": [{"id": "a", "group": "ORG"}]}`,
			wantLabel: "a",
			wantGroup: "ORG",
		},
		{
			name:      "type fallback",
			payload:   `{"nodes": [{"id": "a", "type": "PERSON"}]}`,
			wantLabel: "a",
			wantGroup: "PERSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Normalize(mustParse(t, tt.payload))
			if len(g.Nodes) != 1 {
				t.Fatalf("got %d nodes, want 1", len(g.Nodes))
			}
			if g.Nodes[0].Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", g.Nodes[0].Label, tt.wantLabel)
			}
			if g.Nodes[0].Group != tt.wantGroup {
				t.Errorf("Group = %q, want %q", g.Nodes[0].Group, tt.wantGroup)
			}
		})
	}
}

func TestNormalizeEdgeShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Edge
	}{
		{
			name:    "scalar endpoints",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [{"source":"a","target":"b"}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 1},
		},
		{
			name:    "object endpoints",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [{"source":{"id":"a"},"target":{"id":"b"}}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 1},
		},
		{
			name:    "positional pair",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [["a","b"]]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 1},
		},
		{
			name:    "from/to field names",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [{"from":"a","to":"b"}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 1},
		},
		{
			name:    "edges array name",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "edges": [{"source":"a","target":"b"}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 1},
		},
		{
			name:    "weight preserved",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [{"source":"a","target":"b","weight":3}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 3},
		},
		{
			name:    "value alias for weight",
			payload: `{"nodes": [{"id":"a"},{"id":"b"}], "links": [{"source":"a","target":"b","value":2}]}`,
			want:    Edge{Source: "a", Target: "b", Weight: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Normalize(mustParse(t, tt.payload))
			if len(g.Edges) != 1 {
				t.Fatalf("got %d edges, want 1 (dropped=%d)", len(g.Edges), g.Dropped)
			}
			if g.Edges[0] != tt.want {
				t.Errorf("edge = %+v, want %+v", g.Edges[0], tt.want)
			}
		})
	}
}

func TestNormalizeDropsDanglingEdges(t *testing.T) {
	p := mustParse(t, `{
		"nodes": [{"id": "a"}],
		"links": [
			{"source": "a", "target": "zzz"},
			{"source": "zzz", "target": "a"},
			{"source": "a", "target": "a"}
		]
	}`)
	g := Normalize(p)

	if len(g.Nodes) != 1 || g.Nodes[0].ID != "a" {
		t.Fatalf("node 'a' should survive, got %+v", g.Nodes)
	}
	if len(g.Edges) != 1 {
		t.Errorf("got %d edges, want only the self-referencing valid one", len(g.Edges))
	}
	if g.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", g.Dropped)
	}
}

func TestNormalizeMalformedLinks(t *testing.T) {
	p := mustParse(t, `{
		"nodes": [{"id": "a"}, {"id": "b"}],
		"links": [null, {}, ["a"], {"source": "a"}, 42, {"source": "a", "target": "b"}]
	}`)
	g := Normalize(p)

	if len(g.Edges) != 1 {
		t.Errorf("got %d edges, want 1", len(g.Edges))
	}
	if g.Dropped != 5 {
		t.Errorf("Dropped = %d, want 5", g.Dropped)
	}
}

func TestNormalizeDuplicateNodes(t *testing.T) {
	p := mustParse(t, `{
		"nodes": [
			{"id": "a", "label": "First", "group": "ORG"},
			{"id": "a", "label": "Second"},
			{"label": "a"}
		]
	}`)
	g := Normalize(p)

	if len(g.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(g.Nodes))
	}
	if g.Nodes[0].Label != "First" || g.Nodes[0].Group != "ORG" {
		t.Errorf("first-seen attributes must win, got %+v", g.Nodes[0])
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	for _, data := range []string{`{}`, `{"nodes": [], "links": []}`, `{"nodes": null}`} {
		g := Normalize(mustParse(t, data))
		if !g.IsEmpty() || len(g.Edges) != 0 {
			t.Errorf("Normalize(%s) should be empty, got %d nodes %d edges",
				data, len(g.Nodes), len(g.Edges))
		}
	}
}

func TestNormalizeNodeOrderStable(t *testing.T) {
	p := mustParse(t, `{"nodes": [{"id":"c"},{"id":"a"},{"id":"b"},{"id":"a"}]}`)
	g := Normalize(p)

	want := []string{"c", "a", "b"}
	if len(g.Nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(g.Nodes), len(want))
	}
	for i, id := range want {
		if g.Nodes[i].ID != id {
			t.Errorf("node[%d] = %q, want %q", i, g.Nodes[i].ID, id)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	payloads := []string{
		`{"nodes": [{"label": "Reuters", "group": "ORG"}, {"id": "x", "score": 0.5}],
		  "links": [{"source": "Reuters", "target": "x", "weight": 2}]}`,
		`{"nodes": ["a", "b", {"key": "c"}], "edges": [["a","b"], {"from":"b","to":"c"}]}`,
		`{}`,
	}

	for _, data := range payloads {
		first := Normalize(mustParse(t, data))
		second := Normalize(first.Payload())
		if !reflect.DeepEqual(first.Nodes, second.Nodes) {
			t.Errorf("nodes changed on re-normalize:\nfirst:  %+v\nsecond: %+v", first.Nodes, second.Nodes)
		}
		if !reflect.DeepEqual(first.Edges, second.Edges) {
			t.Errorf("edges changed on re-normalize:\nfirst:  %+v\nsecond: %+v", first.Edges, second.Edges)
		}
	}
}

func TestNormalizeReferentialIntegrity(t *testing.T) {
	p := mustParse(t, `{
		"nodes": [{"id":"a"},{"id":"b"},{"id":"c"},{"id":"a"}],
		"links": [
			{"source":"a","target":"b"}, {"source":"b","target":"missing"},
			["c","a"], ["c","gone"], {"source":{"id":"b"},"target":{"id":"c"}}
		]
	}`)
	g := Normalize(p)

	ids := make(map[string]bool)
	for _, n := range g.Nodes {
		if ids[n.ID] {
			t.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.Source] || !ids[e.Target] {
			t.Errorf("edge %s→%s references unknown node", e.Source, e.Target)
		}
	}
	if g.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", g.Dropped)
	}
}
