package assembly

import (
	"strings"
	"testing"

	"github.com/matzehuels/planforge/pkg/plan"
)

func linkedPlan() *plan.Plan {
	area := 6.0
	thick := 25.0
	return &plan.Plan{
		Polygons: []plan.Polygon{
			{
				ID: "a", Name: "Kitchen", Locked: true, GroupID: "7f3b2a10-0000-0000-0000-000000000000", Area: &area,
				Vertices: []plan.Vertex{{ID: "v1"}, {ID: "v2"}},
				Edges: []plan.Edge{
					{ID: "a-e1", Start: "v1", End: "v2", Kind: plan.KindPerimeter, LinkedEdgeID: "b-e1", Thickness: &thick},
				},
			},
			{
				ID: "b", Name: "Hall", Locked: true, GroupID: "7f3b2a10-0000-0000-0000-000000000000",
				Vertices: []plan.Vertex{{ID: "v1"}, {ID: "v2"}},
				Edges: []plan.Edge{
					{ID: "b-e1", Start: "v1", End: "v2", Kind: plan.KindPerimeter, LinkedEdgeID: "a-e1", Thickness: &thick},
				},
			},
			{
				ID: "c", Name: "Draft",
				Vertices: []plan.Vertex{{ID: "v1"}, {ID: "v2"}},
				Edges:    []plan.Edge{{ID: "c-e1", Start: "v1", End: "v2", Kind: plan.KindPerimeter}},
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(linkedPlan(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("expected undirected graph header, got %q", dot[:20])
	}
	for _, want := range []string{`"a" [label="Kitchen"]`, `"b" [label="Hall"]`} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing node %q in:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "--"); got != 1 {
		t.Errorf("expected exactly 1 link edge, found %d:\n%s", got, dot)
	}
	if !strings.Contains(dot, `"a" -- "b" [label="25 cm"`) {
		t.Errorf("missing thickness label on link:\n%s", dot)
	}
	if !strings.Contains(dot, `"c" [label="Draft", style="rounded,filled,dashed"`) {
		t.Errorf("unsolved polygon should render dashed:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(linkedPlan(), Options{Detailed: true})

	if !strings.Contains(dot, "area: 6.00 m²") {
		t.Errorf("detailed label missing area:\n%s", dot)
	}
	if !strings.Contains(dot, "group: 7f3b2a10") {
		t.Errorf("detailed label missing short group ID:\n%s", dot)
	}
}

func TestToDOTDanglingLink(t *testing.T) {
	pl := linkedPlan()
	pl.Polygons[0].Edges[0].LinkedEdgeID = "ghost"
	dot := ToDOT(pl, Options{})

	if strings.Contains(dot, "--") {
		t.Errorf("dangling link should emit no edge:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8.5in" height="11in" viewBox="0.00 0.00 612.00 792.00">rest</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 612.00 792.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="612" height="792"`) {
		t.Errorf("pixel dimensions not set: %s", out)
	}
}
