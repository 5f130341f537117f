package pairs

import (
	"cmp"
	"errors"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFirstMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := New[string, int]()
	require.NoError(t, L.Add("x", 1))
	require.NoError(t, L.Add("y", 2))
	require.NoError(t, L.Add("x", 3))
	assert.Equal(t, 3, L.Count())
	assert.Equal(t, 0, L.IndexOfA("x"))
	assert.Equal(t, 2, L.IndexOfB(3))
	b, ok := L.LookupA("x")
	assert.True(t, ok)
	assert.Equal(t, 1, b)
	a, ok := L.LookupB(2)
	assert.True(t, ok)
	assert.Equal(t, "y", a)
	_, ok = L.LookupA("q")
	assert.False(t, ok)
	assert.True(t, L.Contains(assoc.Associate("x", 3)))
	assert.False(t, L.Contains(assoc.Associate("y", 3)))
}

func TestListPositionalMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := From(assoc.Associate(1, "a"), assoc.Associate(2, "b"))
	require.NoError(t, L.Insert(1, 9, "z"))
	assert.Equal(t, "[(1,a) (9,z) (2,b)]", L.String())
	require.NoError(t, L.Set(0, 0, "o"))
	require.NoError(t, L.RemoveAt(2))
	assert.Equal(t, "[(0,o) (9,z)]", L.String())
	require.NoError(t, L.Swap(0, 1))
	assert.Equal(t, assoc.Associate(9, "z"), L.At(0))
	err := L.RemoveAt(5)
	assert.Equal(t, assoc.InvalidArgument, assoc.KindOf(err))
	err = L.RemoveFirstMatch(assoc.Associate(4, "x"))
	assert.True(t, errors.Is(err, assoc.ErrKeyNotFound))
	assert.NoError(t, L.CheckIntegrity())
}

func TestListReadOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := From(assoc.Associate("k", "v"))
	L.MakeReadOnly()
	assert.True(t, L.IsReadOnly())
	for _, err := range []error{
		L.Add("a", "b"),
		L.Insert(0, "a", "b"),
		L.Set(0, "a", "b"),
		L.RemoveAt(0),
		L.Reverse(),
		L.Clear(),
	} {
		if !errors.Is(err, assoc.ErrReadOnly) {
			t.Errorf("expected read-only violation, got %v", err)
		}
	}
	assert.Equal(t, 1, L.Count())
	C := L.Copy()
	assert.False(t, C.IsReadOnly())
	assert.NoError(t, C.Add("a", "b"))
}

func TestListReverseAndSort(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := From(assoc.Associate(3, "c"), assoc.Associate(1, "a"), assoc.Associate(2, "b"))
	require.NoError(t, L.Reverse())
	assert.Equal(t, "[(2,b) (1,a) (3,c)]", L.String())
	require.NoError(t, L.SortBy(func(x, y assoc.Association[int, string]) int {
		return cmp.Compare(x.A(), y.A())
	}))
	assert.Equal(t, "[(1,a) (2,b) (3,c)]", L.String())
	assert.Equal(t, []int{1, 2, 3}, L.ColumnA().Values())
	assert.Equal(t, []string{"a", "b", "c"}, L.ColumnB().Values())
}

func TestListNilComponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	L := New[any, any]()
	require.NoError(t, L.Add(nil, 1))
	assert.Nil(t, L.AAt(0))
	assert.Equal(t, 1, L.BAt(0))
}
