package indexed

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func set(t *testing.T, items ...int) *IndexedSet[int] {
	S, err := From(items...)
	if err != nil {
		t.Fatal(err)
	}
	return S
}

func TestAlgebraIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	A := set(t, 1, 2, 3, 5, 8)
	if !Union(A, A).Equals(A) {
		t.Errorf("A ∪ A != A")
	}
	if !Intersect(A, A).Equals(A) {
		t.Errorf("A ∩ A != A")
	}
	if !Subtract(A, A).IsEmpty() {
		t.Errorf("A \\ A not empty")
	}
	if !ExclusiveOr(A, A).IsEmpty() {
		t.Errorf("A ⊕ A not empty")
	}
}

func TestAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	A := set(t, 1, 2, 3, 4)
	B := set(t, 3, 4, 5)
	if u := A.Union(B); !u.Equals(set(t, 1, 2, 3, 4, 5)) {
		t.Errorf("unexpected union %v", u)
	}
	if i := A.Intersect(B); !i.Equals(set(t, 3, 4)) {
		t.Errorf("unexpected intersection %v", i)
	}
	if d := A.Subtract(B); d.String() != "{1, 2}" {
		t.Errorf("unexpected difference %v", d)
	}
	if x := A.ExclusiveOr(B); x.String() != "{1, 2, 5}" {
		t.Errorf("unexpected symmetric difference %v", x)
	}
	if A.Count() != 4 || B.Count() != 3 {
		t.Errorf("operands have been modified")
	}
}

func TestAlgebraResultsAreConsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	A := set(t, 7, 1, 9, 4)
	B := set(t, 4, 2, 7)
	for _, r := range []*IndexedSet[int]{Union(A, B), Intersect(A, B), Subtract(B, A), ExclusiveOr(A, B)} {
		if err := r.CheckIntegrity(); err != nil {
			t.Errorf("result %v inconsistent: %v", r, err)
		}
	}
}

func TestNilOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	A := set(t, 1, 2)
	if !Union(A, nil).Equals(A) {
		t.Errorf("A ∪ ∅ != A")
	}
	if !Intersect(nil, A).IsEmpty() {
		t.Errorf("∅ ∩ A not empty")
	}
}

func TestSubsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	A := set(t, 1, 2, 3)
	B := set(t, 3, 1)
	if !B.IsSubsetOf(A) || !A.IsSupersetOf(B) {
		t.Errorf("expected B ⊆ A")
	}
	if A.IsSubsetOf(B) {
		t.Errorf("did not expect A ⊆ B")
	}
	if A.Equals(B) {
		t.Errorf("did not expect A = B")
	}
	if !set(t, 3, 2, 1).Equals(A) {
		t.Errorf("expected equality to ignore order")
	}
}
