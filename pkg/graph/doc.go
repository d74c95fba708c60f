// Package graph defines the canonical knowledge-graph model and the
// normalizer that produces it from untrusted service payloads.
//
// The analysis service extracts entities and co-occurrence links from
// article text on a best-effort basis. Its payloads are loosely shaped:
// node identifiers may arrive as "id", "key", or "label"; link endpoints
// may be scalar ids, nested objects, or positional pairs; the link array
// itself may be named "links" or "edges". This package absorbs all of
// that variance at the boundary so the rest of the pipeline only ever
// sees a validated [Graph].
//
// # Normalization
//
// [Normalize] converts a [Payload] into a [Graph]. It never fails:
// malformed entries degrade rather than abort.
//
//   - Node id resolution order: id → key → label → synthesized "_nN"
//   - Display label resolution order: label → name → resolved id
//   - Group resolution order: group → type → ""
//   - Edge endpoints accept strings, numbers, {"id": ...} objects,
//     or two-element arrays
//   - Edges referencing unknown node ids are dropped; the count of
//     dropped edges is reported in [Graph.Dropped]
//   - Duplicate node ids collapse to the first occurrence
//
// Normalization is deterministic and idempotent: re-normalizing an
// already-canonical graph yields an identical graph.
//
// # Serialization
//
// Graphs round-trip through a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "n0", "label": "Reuters", "group": "ORG"}],
//	  "links": [{"source": "n0", "target": "n1", "weight": 2}]
//	}
//
// Use [ParsePayload] / [ReadPayloadFile] to decode raw service output and
// [MarshalGraph] / [WriteGraphFile] for canonical output.
//
// # Concurrency
//
// A Graph is immutable after normalization and safe for concurrent reads.
// Layout state lives elsewhere (pkg/layout); this package never attaches
// mutable positions to nodes.
package graph
