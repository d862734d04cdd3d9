package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/planforge/pkg/plan"
)

func samplePlan() plan.Plan {
	angle := 90.0
	thickness := 10.0
	offset := 0.25
	return plan.Plan{Polygons: []plan.Polygon{{
		ID:      "kitchen",
		Name:    "Kitchen",
		Locked:  true,
		GroupID: "g1",
		Vertices: []plan.Vertex{
			{ID: "v1", X: 0, Y: 0, Solved: true},
			{ID: "v2", X: 200, Y: 0, Solved: true, FixedAngle: &angle},
			{ID: "v3", X: 200, Y: 200, Solved: true},
		},
		Edges: []plan.Edge{
			{ID: "e1", Start: "v1", End: "v2", Length: 2, Kind: plan.KindPerimeter,
				Thickness: &thickness, LinkedEdgeID: "other-e1", AlignmentOffset: &offset},
			{ID: "e2", Start: "v2", End: "v3", Length: 2, Kind: plan.KindPerimeter},
			{ID: "d1", Start: "v1", End: "v3", Length: 2.83, Kind: plan.KindDiagonal},
		},
	}}}
}

func TestRoundTrip(t *testing.T) {
	pl := samplePlan()

	var buf bytes.Buffer
	if err := WritePlan(&pl, &buf); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}

	got, err := ReadPlan(&buf)
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}

	p := got.Polygon("kitchen")
	if p == nil {
		t.Fatal("polygon lost in round trip")
	}
	if !p.Locked || p.GroupID != "g1" {
		t.Error("derived state lost")
	}
	if *p.Vertices[1].FixedAngle != 90 {
		t.Error("fixed angle lost")
	}
	e := p.Edge("e1")
	if *e.Thickness != 10 || e.LinkedEdgeID != "other-e1" || *e.AlignmentOffset != 0.25 {
		t.Errorf("edge attributes lost: %+v", e)
	}
}

func TestFileRoundTrip(t *testing.T) {
	pl := samplePlan()
	path := filepath.Join(t.TempDir(), "plan.json")

	if err := ExportJSON(&pl, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got.Polygons) != 1 || got.Polygons[0].ID != "kitchen" {
		t.Errorf("unexpected plan: %+v", got)
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadPlanValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "Malformed",
			json: `{"polygons": [`,
			want: "decode",
		},
		{
			name: "DuplicatePolygon",
			json: `{"polygons": [{"id": "a", "vertices": [], "edges": []},
			                     {"id": "a", "vertices": [], "edges": []}]}`,
			want: "duplicate ID",
		},
		{
			name: "DuplicateVertex",
			json: `{"polygons": [{"id": "a",
				"vertices": [{"id": "v1"}, {"id": "v1"}], "edges": []}]}`,
			want: "duplicate vertex",
		},
		{
			name: "DanglingEdge",
			json: `{"polygons": [{"id": "a",
				"vertices": [{"id": "v1"}],
				"edges": [{"id": "e1", "start": "v1", "end": "v9", "length": 1, "kind": "perimeter"}]}]}`,
			want: "missing vertex",
		},
		{
			name: "BadKind",
			json: `{"polygons": [{"id": "a",
				"vertices": [{"id": "v1"}, {"id": "v2"}],
				"edges": [{"id": "e1", "start": "v1", "end": "v2", "length": 1, "kind": "curvy"}]}]}`,
			want: "unknown kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPlan(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
