package assembly

import (
	"github.com/matzehuels/planforge/pkg/plan"
)

// ConnectedGroup returns the set of polygon IDs reachable from startID over
// link edges, including startID itself. If excludeID is non-empty the
// traversal never steps into that polygon, which isolates the subgraph on
// one side of a specific link. Dangling link references resolve to nothing
// and contribute no edges.
func ConnectedGroup(pl *plan.Plan, startID, excludeID string) map[string]bool {
	visited := map[string]bool{}
	if pl.Polygon(startID) == nil || startID == excludeID {
		return visited
	}

	index := pl.EdgeIndex()
	queue := []string{startID}
	visited[startID] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		poly := pl.Polygon(cur)
		if poly == nil {
			continue
		}
		for _, e := range poly.Edges {
			if e.LinkedEdgeID == "" {
				continue
			}
			next, ok := index[e.LinkedEdgeID]
			if !ok || next == excludeID || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// RecalculateGroups recomputes every connected component from scratch and
// returns the updated plan. Components of more than one polygon receive a
// freshly minted group ID; isolated polygons have their group cleared.
// Run this after any unlink or polygon deletion - removing one link can
// fragment a larger assembly into several components.
func RecalculateGroups(pl plan.Plan) plan.Plan {
	out := pl.Clone()

	assigned := map[string]bool{}
	for i := range out.Polygons {
		start := out.Polygons[i].ID
		if assigned[start] {
			continue
		}
		component := ConnectedGroup(&out, start, "")

		groupID := ""
		if len(component) > 1 {
			groupID = plan.NewGroupID()
		}
		for id := range component {
			assigned[id] = true
			out.Polygon(id).GroupID = groupID
		}
	}
	return out
}
