package graph

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTestFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func TestGraphRoundTrip(t *testing.T) {
	g := Normalize(mustParse(t, `{
		"nodes": [{"id":"n0","label":"Reuters","group":"ORG"},{"id":"n1","label":"NASA","group":"ORG"}],
		"links": [{"source":"n0","target":"n1","weight":2}]
	}`))

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}

	back, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}
	if !reflect.DeepEqual(g.Nodes, back.Nodes) || !reflect.DeepEqual(g.Edges, back.Edges) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", g, back)
	}
}

func TestReadGraphFileToleratesRawServiceOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kg.json")
	raw := []byte(`{"nodes": [{"label": "Reuters"}], "edges": [["Reuters", "missing"]]}`)
	if err := writeTestFile(path, raw); err != nil {
		t.Fatal(err)
	}

	g, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if len(g.Nodes) != 1 || g.Nodes[0].ID != "Reuters" {
		t.Errorf("got nodes %+v, want single Reuters node", g.Nodes)
	}
	if len(g.Edges) != 0 || g.Dropped != 1 {
		t.Errorf("dangling edge should be dropped, got edges=%d dropped=%d", len(g.Edges), g.Dropped)
	}
}

func TestUnmarshalGraphRejectsInvalidJSON(t *testing.T) {
	if _, err := UnmarshalGraph([]byte(`{"nodes": [`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestGraphLookupHelpers(t *testing.T) {
	g := Normalize(mustParse(t, `{"nodes": [{"id":"a"},{"id":"b"}], "links": [["a","b"]]}`))

	if g.NodeCount() != 2 || g.EdgeCount() != 1 || g.IsEmpty() {
		t.Errorf("counts wrong: nodes=%d edges=%d empty=%v", g.NodeCount(), g.EdgeCount(), g.IsEmpty())
	}
	if idx := g.Index(); idx["a"] != 0 || idx["b"] != 1 {
		t.Errorf("Index() = %v", idx)
	}
	if n := g.Node("b"); n == nil || n.ID != "b" {
		t.Errorf("Node(b) = %+v", n)
	}
	if n := g.Node("zzz"); n != nil {
		t.Errorf("Node(zzz) should be nil, got %+v", n)
	}
}
