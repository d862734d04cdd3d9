package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/planforge/pkg/plan"
)

// WritePlan encodes the plan as indented JSON to w. The output includes all
// derived state (solved flags, locks, groups, links), enabling full
// round-trip fidelity through [ReadPlan].
func WritePlan(pl *plan.Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pl); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the plan to a JSON file at path.
// This is a convenience wrapper around [WritePlan] for file-based output.
func ExportJSON(pl *plan.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePlan(pl, f)
}

// MarshalPlan returns the plan as indented JSON bytes.
func MarshalPlan(pl *plan.Plan) ([]byte, error) {
	return json.MarshalIndent(pl, "", "  ")
}
