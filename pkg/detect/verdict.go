// Package detect is the client for the misinformation analysis service.
//
// The service scrapes an article, runs summarization, stance and bias
// models, extracts a knowledge graph, and scores credibility. This
// package only transports the result: the [Verdict] mirrors the service
// response and no scoring happens client-side.
package detect

import (
	"encoding/json"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
)

// Stance holds the stance model's class probabilities for the article.
type Stance struct {
	Support float64 `json:"support"`
	Deny    float64 `json:"deny"`
	Neutral float64 `json:"neutral"`
}

// Verdict is the analysis service's response for one article.
type Verdict struct {
	URL            string  `json:"url"`
	Title          string  `json:"title"`
	Summary        string  `json:"summary"`
	Evidence       []string `json:"evidence"`
	Contradictions []string `json:"contradictions"`
	Stance         Stance  `json:"stance"`
	BiasNote       string  `json:"bias_note"`

	// CredibilityScore is in [0,1]. It is computed by the service and
	// only displayed here.
	CredibilityScore float64 `json:"credibility_score"`

	// KnowledgeGraph is the raw entity graph. It is untrusted until
	// passed through graph.Normalize; see [Verdict.Graph].
	KnowledgeGraph graph.Payload `json:"knowledge_graph"`

	// Mode identifies the service pipeline that produced the verdict
	// (e.g. "url-article-analysis"). Empty on the classic endpoint.
	Mode string `json:"mode,omitempty"`
}

// Graph normalizes the verdict's knowledge graph into the canonical
// model.
func (v *Verdict) Graph() graph.Graph {
	return graph.Normalize(v.KnowledgeGraph)
}

// MarshalIndent renders the verdict as indented JSON for --json output
// and file export.
func (v *Verdict) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ParseVerdict decodes a verdict from JSON, e.g. a saved export.
func ParseVerdict(data []byte) (*Verdict, error) {
	var v Verdict
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
