package pairs

import (
	"errors"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestViewsAreLive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := New[string, int]()
	A, B := L.ColumnA(), L.ColumnB()
	if !A.IsEmpty() || !B.IsEmpty() {
		t.Fatalf("expected views of empty list to be empty")
	}
	L.Add("x", 10)
	L.Add("y", 20)
	if A.Count() != 2 || A.At(1) != "y" || B.At(0) != 10 {
		t.Errorf("views do not reflect list: A=%v, B=%v", A.Values(), B.Values())
	}
	if A.IndexOf("y") != 1 || B.IndexOf(20) != 1 || B.Contains(30) {
		t.Errorf("unexpected lookup result in views")
	}
	n := 0
	for i, b := range B.All() {
		if L.BAt(i) != b {
			t.Errorf("B.All() yields %d at %d, list has %d", b, i, L.BAt(i))
		}
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 iterations, have %d", n)
	}
}

func TestViewsRejectMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := From(assoc.Associate(1, 2))
	A, B := L.ColumnA(), L.ColumnB()
	for _, err := range []error{
		A.Add(3), A.Insert(0, 3), A.Set(0, 3), A.RemoveAt(0), A.Clear(),
		B.Add(3), B.Insert(0, 3), B.Set(0, 3), B.RemoveAt(0), B.Clear(),
	} {
		if !errors.Is(err, assoc.ErrReadOnly) {
			t.Errorf("expected read-only violation, got %v", err)
		}
	}
	if !A.IsReadOnly() || L.Count() != 1 {
		t.Errorf("views must be read-only and leave the list untouched")
	}
}
