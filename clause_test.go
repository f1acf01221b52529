package dpllsat

import "testing"

func TestNewClauseStoreOffsets(t *testing.T) {
	store, err := NewClauseStore([][]int{{1, -2}, {}, {3}}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if store.NumClauses() != 3 {
		t.Fatalf("NumClauses() = %d, want 3", store.NumClauses())
	}
	if got := store.ClauseLen(0); got != 2 {
		t.Fatalf("ClauseLen(0) = %d, want 2", got)
	}
	if got := store.ClauseLen(1); got != 0 {
		t.Fatalf("ClauseLen(1) = %d, want 0", got)
	}
	if got := store.Clause(2); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Clause(2) = %v, want [3]", got)
	}
	if got := store.EmptyClauseIndices; len(got) != 1 || got[0] != 1 {
		t.Fatalf("EmptyClauseIndices = %v, want [1]", got)
	}
}

func TestNewClauseStoreRejectsZeroLiteral(t *testing.T) {
	if _, err := NewClauseStore([][]int{{1, 0, 2}}, 2); err == nil {
		t.Fatal("expected error for zero literal")
	}
}

func TestNewClauseStoreRejectsOutOfRangeVariable(t *testing.T) {
	if _, err := NewClauseStore([][]int{{1, 5}}, 2); err == nil {
		t.Fatal("expected error for out-of-range variable")
	}
}

func TestNewClauseStoreRejectsNegativeNumVars(t *testing.T) {
	if _, err := NewClauseStore([][]int{}, -1); err == nil {
		t.Fatal("expected error for negative numVars")
	}
}
