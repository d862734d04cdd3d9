package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/planforge/pkg/plan"
)

// ReadPlan decodes a JSON plan document from r and validates its structure.
//
// ReadPlan returns an error if:
//   - The JSON is malformed
//   - A polygon, vertex or edge has a duplicate ID
//   - An edge references a vertex missing from its polygon
//
// Errors are wrapped with context naming the offending entity. The returned
// plan is independent of r; ReadPlan does not close r.
func ReadPlan(r io.Reader) (plan.Plan, error) {
	var pl plan.Plan
	if err := json.NewDecoder(r).Decode(&pl); err != nil {
		return plan.Plan{}, fmt.Errorf("decode: %w", err)
	}
	if err := validate(&pl); err != nil {
		return plan.Plan{}, err
	}
	return pl, nil
}

// ImportJSON reads the plan file at path via [ReadPlan].
func ImportJSON(path string) (plan.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}

func validate(pl *plan.Plan) error {
	polyIDs := map[string]bool{}
	edgeIDs := map[string]bool{}

	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		if p.ID == "" {
			return fmt.Errorf("polygon %d: empty ID", i)
		}
		if polyIDs[p.ID] {
			return fmt.Errorf("polygon %s: duplicate ID", p.ID)
		}
		polyIDs[p.ID] = true

		vertexIDs := map[string]bool{}
		for _, v := range p.Vertices {
			if v.ID == "" {
				return fmt.Errorf("polygon %s: vertex with empty ID", p.ID)
			}
			if vertexIDs[v.ID] {
				return fmt.Errorf("polygon %s: duplicate vertex %s", p.ID, v.ID)
			}
			vertexIDs[v.ID] = true
		}

		for _, e := range p.Edges {
			if e.ID == "" {
				return fmt.Errorf("polygon %s: edge with empty ID", p.ID)
			}
			if edgeIDs[e.ID] {
				return fmt.Errorf("edge %s: duplicate ID", e.ID)
			}
			edgeIDs[e.ID] = true
			if !vertexIDs[e.Start] || !vertexIDs[e.End] {
				return fmt.Errorf("edge %s: references missing vertex %s or %s", e.ID, e.Start, e.End)
			}
			switch e.Kind {
			case plan.KindPerimeter, plan.KindDiagonal:
			default:
				return fmt.Errorf("edge %s: unknown kind %q", e.ID, e.Kind)
			}
		}
	}
	return nil
}
