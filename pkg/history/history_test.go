package history

import (
	"testing"

	"github.com/matzehuels/planforge/pkg/plan"
)

func onePoly(id string, x float64) plan.Plan {
	return plan.Plan{Polygons: []plan.Polygon{{
		ID:       id,
		Vertices: []plan.Vertex{{ID: id + "-v1", X: x}},
	}}}
}

func TestUndoRedo(t *testing.T) {
	s := New(10)

	v1 := onePoly("a", 1)
	v2 := onePoly("a", 2)

	s.Push(Take(&v1, []string{"a"}))
	if !s.CanUndo() || s.CanRedo() {
		t.Fatal("expected undo available, redo not")
	}

	restored, ok := s.Undo(Take(&v2, nil))
	if !ok {
		t.Fatal("undo failed")
	}
	if restored.Plan().Polygons[0].Vertices[0].X != 1 {
		t.Error("undo restored the wrong state")
	}
	if restored.Selection[0] != "a" {
		t.Error("selection lost")
	}

	redone, ok := s.Redo(restored)
	if !ok {
		t.Fatal("redo failed")
	}
	if redone.Plan().Polygons[0].Vertices[0].X != 2 {
		t.Error("redo restored the wrong state")
	}
}

func TestPushDiscardsRedoBranch(t *testing.T) {
	s := New(10)
	v1 := onePoly("a", 1)
	v2 := onePoly("a", 2)

	s.Push(Take(&v1, nil))
	if _, ok := s.Undo(Take(&v2, nil)); !ok {
		t.Fatal("undo failed")
	}
	s.Push(Take(&v1, nil))
	if s.CanRedo() {
		t.Error("push must discard the redo branch")
	}
}

func TestBoundedDepth(t *testing.T) {
	s := New(3)
	for i := 0; i < 10; i++ {
		pl := onePoly("a", float64(i))
		s.Push(Take(&pl, nil))
	}
	if s.Len() != 3 {
		t.Errorf("depth = %d, want 3", s.Len())
	}

	// The oldest surviving entry is the seventh push.
	cur := onePoly("a", 99)
	var last Snapshot
	for s.CanUndo() {
		last, _ = s.Undo(Take(&cur, nil))
	}
	if got := last.Plan().Polygons[0].Vertices[0].X; got != 7 {
		t.Errorf("oldest retained state = %v, want 7", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	pl := onePoly("a", 1)
	snap := Take(&pl, nil)

	// Mutating the live document must not change the snapshot.
	pl.Polygons[0].Vertices[0].X = 42
	if snap.Polygons[0].Vertices[0].X != 1 {
		t.Error("snapshot shares storage with the document")
	}

	// Restoring twice yields independent copies.
	a := snap.Plan()
	b := snap.Plan()
	a.Polygons[0].Vertices[0].X = 7
	if b.Polygons[0].Vertices[0].X != 1 {
		t.Error("restored plans share storage")
	}
}

func TestEmptyStack(t *testing.T) {
	s := New(0) // falls back to the default limit
	if _, ok := s.Undo(Snapshot{}); ok {
		t.Error("undo on empty stack should fail")
	}
	if _, ok := s.Redo(Snapshot{}); ok {
		t.Error("redo on empty stack should fail")
	}
}
