package assembly

import (
	"github.com/matzehuels/planforge/pkg/align"
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/plan"
)

// ThicknessConflict records a join that cannot proceed because the two
// edges disagree on wall thickness. The join is re-attempted through
// [Resolve] once an external choice is made; SlideOffset carries the offset
// the resolved join must use.
type ThicknessConflict struct {
	SourcePolygon   string   `json:"source_polygon"`
	SourceEdge      string   `json:"source_edge"`
	TargetPolygon   string   `json:"target_polygon"`
	TargetEdge      string   `json:"target_edge"`
	SourceThickness *float64 `json:"source_thickness"` // cm, nil when unset
	TargetThickness *float64 `json:"target_thickness"` // cm, nil when unset
	SlideOffset     float64  `json:"slide_offset"`     // meters
}

// JoinResult is the outcome of one join attempt. Exactly one of the three
// states holds: applied (Err and Conflict nil), conflicted (Conflict set),
// or rejected (Err set). On rejection Plan is the unmodified input.
type JoinResult struct {
	Plan     plan.Plan
	Conflict *ThicknessConflict
	Err      *plan.Error
}

// Join attempts to snap the source edge against the target edge with the
// given slide offset (meters). Preconditions: the edges belong to two
// distinct, locked polygons that are not already linked through some other
// edge pair. Matching thicknesses apply immediately; differing ones return
// a conflict for external resolution.
func Join(pl plan.Plan, srcEdgeID, dstEdgeID string, slide float64) JoinResult {
	res := join(pl, srcEdgeID, dstEdgeID, slide)
	if res.Conflict == nil {
		var err error
		if res.Err != nil {
			err = res.Err
		}
		observability.Assembly().OnJoin(srcEdgeID, dstEdgeID, err)
	}
	return res
}

func join(pl plan.Plan, srcEdgeID, dstEdgeID string, slide float64) JoinResult {
	srcPoly, srcEdge := pl.FindEdge(srcEdgeID)
	dstPoly, dstEdge := pl.FindEdge(dstEdgeID)
	if srcEdge == nil || dstEdge == nil {
		return JoinResult{Plan: pl, Err: plan.NewError(plan.ErrCodeNotFound,
			"join edges %s, %s: not found", srcEdgeID, dstEdgeID)}
	}
	if srcPoly.ID == dstPoly.ID {
		return JoinResult{Plan: pl, Err: plan.NewError(plan.ErrCodeSelfJoin,
			"cannot join polygon %s to itself", srcPoly.ID)}
	}
	if !srcPoly.Locked || !dstPoly.Locked {
		return JoinResult{Plan: pl, Err: plan.NewError(plan.ErrCodeTargetUnlocked,
			"both polygons must be solved and locked before joining")}
	}

	// Neither edge may carry a link already; a second link on one edge
	// would leave its old partner dangling.
	if srcEdge.LinkedEdgeID != "" || dstEdge.LinkedEdgeID != "" {
		return JoinResult{Plan: pl, Err: plan.NewError(plan.ErrCodeAlreadyLinked,
			"edge %s or %s is already linked", srcEdgeID, dstEdgeID)}
	}
	index := pl.EdgeIndex()
	for _, e := range srcPoly.Edges {
		if e.LinkedEdgeID != "" && index[e.LinkedEdgeID] == dstPoly.ID {
			return JoinResult{Plan: pl, Err: plan.NewError(plan.ErrCodeAlreadyLinked,
				"polygons %s and %s are already joined", srcPoly.ID, dstPoly.ID)}
		}
	}

	if !thicknessEqual(srcEdge.Thickness, dstEdge.Thickness) {
		return JoinResult{Plan: pl, Conflict: &ThicknessConflict{
			SourcePolygon:   srcPoly.ID,
			SourceEdge:      srcEdgeID,
			TargetPolygon:   dstPoly.ID,
			TargetEdge:      dstEdgeID,
			SourceThickness: srcEdge.Thickness,
			TargetThickness: dstEdge.Thickness,
			SlideOffset:     slide,
		}}
	}

	thickness := 0.0
	if srcEdge.Thickness != nil {
		thickness = *srcEdge.Thickness
	}
	out, err := ApplyJoin(pl, srcEdgeID, dstEdgeID, thickness, slide)
	if err != nil {
		return JoinResult{Plan: pl, Err: err}
	}
	return JoinResult{Plan: out}
}

// Resolve applies a join previously suspended by a thickness conflict,
// using the externally chosen thickness (cm).
func Resolve(pl plan.Plan, c ThicknessConflict, chosenThickness float64) (plan.Plan, *plan.Error) {
	return ApplyJoin(pl, c.SourceEdge, c.TargetEdge, chosenThickness, c.SlideOffset)
}

// ApplyJoin performs the join unconditionally: sets the thickness on both
// edges, aligns the source polygon against the target with a gap of
// thickness/100 meters, rigidly drags the source's prior group along,
// merges group IDs and links the edges. The target polygon and its peers
// never move.
func ApplyJoin(pl plan.Plan, srcEdgeID, dstEdgeID string, thickness, slide float64) (plan.Plan, *plan.Error) {
	out := pl.Clone()

	srcPoly, srcEdge := out.FindEdge(srcEdgeID)
	dstPoly, dstEdge := out.FindEdge(dstEdgeID)
	if srcEdge == nil || dstEdge == nil {
		return pl, plan.NewError(plan.ErrCodeNotFound, "join edges %s, %s: not found", srcEdgeID, dstEdgeID)
	}
	if len(srcPoly.Vertices) == 0 {
		return pl, plan.NewError(plan.ErrCodeInvalidInput, "polygon %s has no vertices", srcPoly.ID)
	}

	th := thickness
	srcEdge.Thickness = &th
	th2 := thickness
	dstEdge.Thickness = &th2

	gap := thickness / 100 // cm to meters
	tr, aerr := align.ComputeTransform(srcPoly, srcEdgeID, dstPoly, dstEdgeID, slide, gap)
	if aerr != nil {
		return pl, aerr
	}

	srcGroup := srcPoly.GroupID
	dstGroup := dstPoly.GroupID

	before := srcPoly.Vertices[0].Point()
	align.Apply(srcPoly, tr)
	delta := srcPoly.Vertices[0].Point().Sub(before)

	// The source's prior peers follow rigidly: translation only, the
	// rotation already happened about the source's own centroid.
	translatePriorGroup(&out, srcGroup, srcPoly.ID, delta)

	merged := srcGroup
	if merged == "" {
		merged = dstGroup
	}
	if merged == "" {
		merged = plan.NewGroupID()
	}
	assignGroup(&out, srcGroup, srcPoly.ID, merged)
	assignGroup(&out, dstGroup, dstPoly.ID, merged)

	srcEdge.LinkedEdgeID = dstEdgeID
	dstEdge.LinkedEdgeID = srcEdgeID
	off := slide
	srcEdge.AlignmentOffset = &off

	return out, nil
}

// Unlink severs the link on the given edge and its partner, clears the
// stored alignment offset and recomputes all groups.
func Unlink(pl plan.Plan, edgeID string) (plan.Plan, *plan.Error) {
	out, perr := unlink(pl, edgeID)
	var err error
	if perr != nil {
		err = perr
	}
	observability.Assembly().OnUnlink(edgeID, err)
	return out, perr
}

func unlink(pl plan.Plan, edgeID string) (plan.Plan, *plan.Error) {
	out := pl.Clone()

	_, e := out.FindEdge(edgeID)
	if e == nil {
		return pl, plan.NewError(plan.ErrCodeNotFound, "edge %s not found", edgeID)
	}
	if e.LinkedEdgeID == "" {
		return pl, plan.NewError(plan.ErrCodeInvalidInput, "edge %s is not linked", edgeID)
	}

	if _, partner := out.FindEdge(e.LinkedEdgeID); partner != nil {
		partner.LinkedEdgeID = ""
		partner.AlignmentOffset = nil
	}
	e.LinkedEdgeID = ""
	e.AlignmentOffset = nil

	return RecalculateGroups(out), nil
}

// UpdateOffset re-aligns an existing join with a new slide offset (meters).
// Only the source-side cluster moves; the target side stays put.
func UpdateOffset(pl plan.Plan, srcEdgeID string, offset float64) (plan.Plan, *plan.Error) {
	return realign(pl, srcEdgeID, func(srcEdge, dstEdge *plan.Edge) (float64, float64) {
		thickness := 0.0
		if srcEdge.Thickness != nil {
			thickness = *srcEdge.Thickness
		}
		return offset, thickness
	})
}

// UpdateThickness changes the wall thickness (cm) of an existing join on
// both sides and re-aligns with the stored slide offset. Only the
// source-side cluster moves.
func UpdateThickness(pl plan.Plan, srcEdgeID string, thickness float64) (plan.Plan, *plan.Error) {
	return realign(pl, srcEdgeID, func(srcEdge, dstEdge *plan.Edge) (float64, float64) {
		t1, t2 := thickness, thickness
		srcEdge.Thickness = &t1
		dstEdge.Thickness = &t2
		offset := 0.0
		if srcEdge.AlignmentOffset != nil {
			offset = *srcEdge.AlignmentOffset
		}
		return offset, thickness
	})
}

// realign recomputes the alignment of a linked edge pair after one join
// parameter changed. params may mutate the edges (thickness update) and
// returns the slide offset and thickness to align with.
func realign(pl plan.Plan, srcEdgeID string, params func(srcEdge, dstEdge *plan.Edge) (float64, float64)) (plan.Plan, *plan.Error) {
	out := pl.Clone()

	srcPoly, srcEdge := out.FindEdge(srcEdgeID)
	if srcEdge == nil {
		return pl, plan.NewError(plan.ErrCodeNotFound, "edge %s not found", srcEdgeID)
	}
	if srcEdge.LinkedEdgeID == "" {
		return pl, plan.NewError(plan.ErrCodeInvalidInput, "edge %s is not linked", srcEdgeID)
	}
	dstPoly, dstEdge := out.FindEdge(srcEdge.LinkedEdgeID)
	if dstEdge == nil {
		return pl, plan.NewError(plan.ErrCodeNotFound, "linked edge %s not found", srcEdge.LinkedEdgeID)
	}

	offset, thickness := params(srcEdge, dstEdge)

	tr, aerr := align.ComputeTransform(srcPoly, srcEdgeID, dstPoly, dstEdge.ID, offset, thickness/100)
	if aerr != nil {
		return pl, aerr
	}

	// Only the cluster hanging off the source side of this link moves.
	cluster := ConnectedGroup(&out, srcPoly.ID, dstPoly.ID)

	before := srcPoly.Vertices[0].Point()
	align.Apply(srcPoly, tr)
	delta := srcPoly.Vertices[0].Point().Sub(before)

	for id := range cluster {
		if id == srcPoly.ID {
			continue
		}
		out.Polygon(id).Translate(delta.X, delta.Y)
	}

	off := offset
	srcEdge.AlignmentOffset = &off
	return out, nil
}

// InPlaceOffset computes the slide offset (meters) that keeps the current
// relative placement of two edges, so a join requested after manual
// positioning does not make the layout jump.
func InPlaceOffset(pl *plan.Plan, srcEdgeID, dstEdgeID string) (float64, *plan.Error) {
	srcPoly, srcEdge := pl.FindEdge(srcEdgeID)
	dstPoly, dstEdge := pl.FindEdge(dstEdgeID)
	if srcEdge == nil || dstEdge == nil {
		return 0, plan.NewError(plan.ErrCodeNotFound, "edges %s, %s: not found", srcEdgeID, dstEdgeID)
	}
	return align.ProjectedOffset(
		endpoint(srcPoly, srcEdge.Start), endpoint(srcPoly, srcEdge.End),
		endpoint(dstPoly, dstEdge.Start), endpoint(dstPoly, dstEdge.End),
	), nil
}

func endpoint(p *plan.Polygon, vertexID string) geom.Point {
	if v := p.Vertex(vertexID); v != nil {
		return v.Point()
	}
	return geom.Point{}
}

// translatePriorGroup moves every member of the given group except the
// polygon that was already transformed.
func translatePriorGroup(pl *plan.Plan, groupID, movedID string, delta geom.Point) {
	if groupID == "" {
		return
	}
	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		if p.ID == movedID || p.GroupID != groupID {
			continue
		}
		p.Translate(delta.X, delta.Y)
	}
}

// assignGroup rewrites the group of a polygon and all its prior peers.
func assignGroup(pl *plan.Plan, priorGroup, polyID, newGroup string) {
	for i := range pl.Polygons {
		p := &pl.Polygons[i]
		if p.ID == polyID || (priorGroup != "" && p.GroupID == priorGroup) {
			p.GroupID = newGroup
		}
	}
}

func thicknessEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
