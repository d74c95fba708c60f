package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a canonical graph to pretty-printed JSON bytes.
// Node and edge order is preserved, so output is deterministic.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGraph deserializes JSON bytes into a canonical graph.
// The input is normalized on the way in, so the result upholds the
// [Graph] invariants even when the bytes came from an untrusted source.
func UnmarshalGraph(data []byte) (Graph, error) {
	p, err := ParsePayload(data)
	if err != nil {
		return Graph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	return Normalize(p), nil
}

// WriteGraph writes a canonical graph as JSON to w.
func WriteGraph(g Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// WriteGraphFile writes a canonical graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// ReadGraphFile reads a JSON file and returns the normalized graph.
// The file may contain raw service output or previously exported
// canonical form; both decode through the same tolerant path.
func ReadGraphFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalGraph(data)
}

// ReadPayloadFile reads a JSON file and returns the raw payload without
// normalizing. Useful when the caller wants to inspect the raw shape.
func ReadPayloadFile(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParsePayload(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
