package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestPlaceholderGenerator_Next(t *testing.T) {
	t.Parallel()

	gen := NewPlaceholderGenerator()
	first := gen.Next()
	second := gen.Next()

	if first != -1 || second != -2 {
		t.Fatalf("unexpected placeholders: got=%d,%d want=-1,-2", first, second)
	}
	if !IsPlaceholder(first) || IsPlaceholder(0) || IsPlaceholder(42) {
		t.Fatalf("IsPlaceholder misclassified values")
	}
}

func TestNewRunID(t *testing.T) {
	t.Parallel()

	runID := NewRunID()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("run id is not a uuid: %q: %v", runID, err)
	}
	if NewRunID() == runID {
		t.Fatalf("expected distinct run ids")
	}
}
