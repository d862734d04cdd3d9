// Package history implements the undo collaborator: a bounded stack of
// document snapshots with a plain push/pop contract.
//
// The core engine performs no undo bookkeeping itself; callers snapshot the
// document before each mutating operation and restore on undo. Snapshots
// deep-copy the polygon list, so later mutations never leak into history.
package history

import (
	"github.com/matzehuels/planforge/pkg/plan"
)

// DefaultLimit is the number of undo steps kept when no limit is given.
const DefaultLimit = 50

// Snapshot captures the document state restored by an undo: the polygon
// list and the active selection.
type Snapshot struct {
	Polygons  []plan.Polygon `json:"polygons"`
	Selection []string       `json:"selection,omitempty"`
}

// Take builds a snapshot by deep-copying the plan and selection.
func Take(pl *plan.Plan, selection []string) Snapshot {
	cloned := pl.Clone()
	sel := make([]string, len(selection))
	copy(sel, selection)
	return Snapshot{Polygons: cloned.Polygons, Selection: sel}
}

// Plan reconstructs a document from the snapshot, again deep-copied so the
// snapshot can be restored more than once.
func (s Snapshot) Plan() plan.Plan {
	pl := plan.Plan{Polygons: s.Polygons}
	return pl.Clone()
}

// Stack is a bounded undo/redo stack. The zero value is not usable; use
// [New]. Stack is not safe for concurrent use.
type Stack struct {
	limit  int
	past   []Snapshot
	future []Snapshot
}

// New creates a stack keeping at most limit undo steps. Non-positive limits
// fall back to [DefaultLimit].
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Push records a snapshot taken before a mutating operation. Any redo
// branch is discarded; the oldest entry is dropped once the limit is hit.
func (s *Stack) Push(snap Snapshot) {
	s.future = s.future[:0]
	s.past = append(s.past, snap)
	if len(s.past) > s.limit {
		s.past = s.past[1:]
	}
}

// Undo pops the latest snapshot, storing current for a subsequent [Stack.Redo].
// The second return value is false when there is nothing to undo.
func (s *Stack) Undo(current Snapshot) (Snapshot, bool) {
	if len(s.past) == 0 {
		return Snapshot{}, false
	}
	last := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, current)
	return last, true
}

// Redo reverses the latest undo. The second return value is false when
// there is nothing to redo.
func (s *Stack) Redo(current Snapshot) (Snapshot, bool) {
	if len(s.future) == 0 {
		return Snapshot{}, false
	}
	next := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	s.past = append(s.past, current)
	return next, true
}

// CanUndo reports whether an undo step is available.
func (s *Stack) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether a redo step is available.
func (s *Stack) CanRedo() bool { return len(s.future) > 0 }

// Len returns the number of stored undo steps.
func (s *Stack) Len() int { return len(s.past) }
