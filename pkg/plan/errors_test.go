package plan

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrCodeSeparated, "edge %s too short", "e1")
	want := "SEPARATED: edge e1 too short"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("boom")
	wrapped := WrapError(ErrCodeInternal, cause, "solve failed")
	if wrapped.Error() != "INTERNAL_ERROR: solve failed: boom" {
		t.Errorf("wrapped = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Unwrap chain lost the cause")
	}
}

func TestIsCode(t *testing.T) {
	err := NewError(ErrCodeAlreadyLinked, "polygons already joined")

	if !IsCode(err, ErrCodeAlreadyLinked) {
		t.Error("IsCode should match the code")
	}
	if IsCode(err, ErrCodeSelfJoin) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(errors.New("plain"), ErrCodeSelfJoin) {
		t.Error("IsCode should not match plain errors")
	}

	// Matching survives fmt wrapping.
	outer := fmt.Errorf("context: %w", err)
	if !IsCode(outer, ErrCodeAlreadyLinked) {
		t.Error("IsCode should unwrap")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(NewError(ErrCodeUnreachable, "x")); got != ErrCodeUnreachable {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}
