package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/errors"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/sink"
)

// maxPayloadBytes bounds request bodies.
const maxPayloadBytes = 4 << 20

// handleStatus reports service liveness.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "misinfo-dashboard",
		"status":  "ok",
	})
}

// detectRequest is the body of POST /api/detect.
type detectRequest struct {
	URL string `json:"url"`
}

// handleDetect proxies a detection request through the verdict cache.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPayload, err, "decode request body"))
		return
	}
	if req.URL == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing \"url\" field"))
		return
	}

	verdict, err := s.detector.Detect(r.Context(), req.URL)
	if err != nil {
		s.logger.Error("detect failed", "url", req.URL, "err", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

// handleGraph renders a raw graph payload in the requested format.
// The body is the knowledge_graph fragment of a verdict; it is
// normalized and laid out to settlement server-side.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPayload, err, "read request body"))
		return
	}
	payload, err := graph.ParsePayload(body)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPayload, err, "parse graph payload"))
		return
	}

	g := graph.Normalize(payload)
	if g.IsEmpty() {
		writeError(w, errors.New(errors.ErrCodeEmptyGraph, "payload contains no entities"))
		return
	}

	eng := layout.New(g, layout.DefaultConfig())
	eng.Run()

	switch format {
	case "svg":
		writeBytes(w, "image/svg+xml", sink.SVG(g, eng))
	case "png":
		data, err := sink.PNG(g, eng)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeRenderFailed, err, "render png"))
			return
		}
		writeBytes(w, "image/png", data)
	case "dot":
		writeBytes(w, "text/vnd.graphviz", []byte(sink.DOT(g)))
	case "json":
		data, err := sink.JSON(g, eng)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeRenderFailed, err, "export json"))
			return
		}
		writeBytes(w, "application/json", data)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format))
	}
}
