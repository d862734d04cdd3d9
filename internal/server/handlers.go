package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/matzehuels/planforge/pkg/assembly"
	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/history"
	planio "github.com/matzehuels/planforge/pkg/io"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/plan"
	renderassembly "github.com/matzehuels/planforge/pkg/render/assembly"
	"github.com/matzehuels/planforge/pkg/solver"
)

// artifactTTL is how long rendered diagrams stay cached. Keys embed the
// plan content hash, so stale entries are unreachable anyway.
const artifactTTL = 24 * time.Hour

// solveRequest selects which polygons a solve run covers.
type solveRequest struct {
	PolygonID string `json:"polygon_id"` // empty solves all
}

// solveOutcome reports one polygon's solve result.
type solveOutcome struct {
	Polygon      string   `json:"polygon"`
	Status       string   `json:"status"` // "solved", "approximated" or an error code
	Area         *float64 `json:"area,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// joinRequest describes a join attempt.
type joinRequest struct {
	SourceEdge string   `json:"source_edge"`
	TargetEdge string   `json:"target_edge"`
	Offset     float64  `json:"offset"`
	InPlace    bool     `json:"in_place"`
	Thickness  *float64 `json:"thickness"` // settles a thickness conflict
}

// edgeRequest addresses a single edge with an optional new value.
type edgeRequest struct {
	Edge  string  `json:"edge"`
	Value float64 `json:"value"`
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	pl := s.snapshot()
	writeJSON(w, http.StatusOK, &pl)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.pl.Clone()
	var outcomes []solveOutcome
	for i := range next.Polygons {
		p := &next.Polygons[i]
		if req.PolygonID != "" && p.ID != req.PolygonID {
			continue
		}
		res := solver.Solve(*p)
		*p = res.Polygon
		outcomes = append(outcomes, outcome(&res))
	}
	if len(outcomes) == 0 && req.PolygonID != "" {
		writeError(w, plan.NewError(plan.ErrCodeNotFound, "polygon %s not found", req.PolygonID))
		return
	}

	s.hist.Push(history.Take(&s.pl, nil))
	s.pl = next

	writeJSON(w, http.StatusOK, map[string]any{
		"plan":    &next,
		"results": outcomes,
	})
}

func outcome(res *solver.Result) solveOutcome {
	o := solveOutcome{Polygon: res.Polygon.ID, Status: "solved", Area: res.Polygon.Area}
	if res.Approximated {
		o.Status = "approximated"
	}
	if res.Err != nil {
		o.Status = string(res.Err.Code)
		o.ErrorMessage = res.Err.Message
	}
	return o
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.pl.Clone()
	offset := req.Offset
	if req.InPlace {
		off, perr := assembly.InPlaceOffset(&work, req.SourceEdge, req.TargetEdge)
		if perr != nil {
			writeError(w, perr)
			return
		}
		offset = off
	}

	res := assembly.Join(work, req.SourceEdge, req.TargetEdge, offset)
	switch {
	case res.Err != nil:
		writeError(w, res.Err)
		return
	case res.Conflict != nil && req.Thickness == nil:
		writeJSON(w, http.StatusConflict, map[string]any{"conflict": res.Conflict})
		return
	case res.Conflict != nil:
		out, perr := assembly.Resolve(work, *res.Conflict, *req.Thickness)
		if perr != nil {
			writeError(w, perr)
			return
		}
		res.Plan = out
	}

	s.hist.Push(history.Take(&s.pl, nil))
	s.pl = res.Plan
	writeJSON(w, http.StatusOK, &res.Plan)
}

func (s *Server) handleUnlink(w http.ResponseWriter, r *http.Request) {
	s.handleEdgeOp(w, r, func(pl plan.Plan, req edgeRequest) (plan.Plan, *plan.Error) {
		return assembly.Unlink(pl, req.Edge)
	})
}

func (s *Server) handleOffset(w http.ResponseWriter, r *http.Request) {
	s.handleEdgeOp(w, r, func(pl plan.Plan, req edgeRequest) (plan.Plan, *plan.Error) {
		return assembly.UpdateOffset(pl, req.Edge, req.Value)
	})
}

func (s *Server) handleThickness(w http.ResponseWriter, r *http.Request) {
	s.handleEdgeOp(w, r, func(pl plan.Plan, req edgeRequest) (plan.Plan, *plan.Error) {
		return assembly.UpdateThickness(pl, req.Edge, req.Value)
	})
}

// handleEdgeOp runs one edge-addressed mutation with undo bookkeeping.
func (s *Server) handleEdgeOp(w http.ResponseWriter, r *http.Request, op func(plan.Plan, edgeRequest) (plan.Plan, *plan.Error)) {
	var req edgeRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out, perr := op(s.pl.Clone(), req)
	if perr != nil {
		writeError(w, perr)
		return
	}

	s.hist.Push(history.Take(&s.pl, nil))
	s.pl = out
	writeJSON(w, http.StatusOK, &out)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.hist.Undo(history.Take(&s.pl, nil))
	if !ok {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to undo"})
		return
	}
	s.pl = snap.Plan()
	writeJSON(w, http.StatusOK, &s.pl)
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.hist.Redo(history.Take(&s.pl, nil))
	if !ok {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "nothing to redo"})
		return
	}
	s.pl = snap.Plan()
	writeJSON(w, http.StatusOK, &s.pl)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	pl := s.snapshot()
	if err := planio.ExportJSON(&pl, s.cfg.PlanPath); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"saved": s.cfg.PlanPath})
}

func (s *Server) handleAssemblySVG(w http.ResponseWriter, r *http.Request) {
	detailed := r.URL.Query().Get("detailed") == "1"
	pl := s.snapshot()

	raw, err := planio.MarshalPlan(&pl)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	key := s.keyer.ArtifactKey(cache.Hash(raw), cache.ArtifactKeyOpts{Format: "svg", Detailed: detailed})

	ctx := r.Context()
	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		writeSVG(w, data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	dot := renderassembly.ToDOT(&pl, renderassembly.Options{Detailed: detailed})
	svg, err := renderassembly.RenderSVG(dot)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.cache.Set(ctx, key, svg, artifactTTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(svg))
	}
	writeSVG(w, svg)
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(v)
}
