package dual

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueRollback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, err := UniqueFrom(assoc.Associate(1, "a"), assoc.Associate(2, "b"))
	require.NoError(t, err)
	before := U.Values()
	err = U.Add(3, "b")
	if !errors.Is(err, assoc.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	assert.Equal(t, 2, U.Count())
	assert.False(t, U.ContainsA(3))
	assert.Equal(t, 1, U.IndexOfB("b"))
	assert.Equal(t, before, U.Values())
	assert.NoError(t, U.CheckIntegrity())
	//
	err = U.Insert(0, 3, "a")
	assert.True(t, errors.Is(err, assoc.ErrDuplicateKey))
	assert.False(t, U.ContainsA(3))
	assert.Equal(t, before, U.Values())
}

func TestUniqueSetRollback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate(1, "a"), assoc.Associate(2, "b"))
	err := U.Set(0, 5, "b") // first component is free, second is taken
	assert.True(t, errors.Is(err, assoc.ErrDuplicateKey))
	assert.False(t, U.ContainsA(5))
	assert.Equal(t, 0, U.IndexOfA(1))
	assert.Equal(t, 0, U.IndexOfB("a"))
	assert.NoError(t, U.CheckIntegrity())
	//
	require.NoError(t, U.Set(0, 5, "e"))
	assert.Equal(t, "[(5,e) (2,b)]", U.String())
	require.NoError(t, U.ReplaceB(2, "c"))
	require.NoError(t, U.ReplaceA("e", 6))
	assert.Equal(t, "[(6,e) (2,c)]", U.String())
	assert.True(t, errors.Is(U.ReplaceB(9, "x"), assoc.ErrKeyNotFound))
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	rnd := rand.New(rand.NewPCG(7, 11))
	U := NewUniqueSet[int, string]()
	for _, k := range rnd.Perm(200) {
		require.NoError(t, U.Add(k, fmt.Sprintf("v%d", k*3)))
	}
	for i, x := range U.All() {
		b, ok := U.LookupA(x.A())
		assert.True(t, ok)
		assert.Equal(t, x.B(), b)
		a, ok := U.LookupB(x.B())
		assert.True(t, ok)
		assert.Equal(t, x.A(), a)
		assert.Equal(t, i, U.IndexOfA(x.A()))
		assert.Equal(t, i, U.IndexOfB(x.B()))
	}
	for range 50 {
		_ = U.RemoveAt(rnd.IntN(U.Count()))
	}
	assert.Equal(t, 150, U.Count())
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueReverseTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2), assoc.Associate("z", 3))
	before := U.Values()
	require.NoError(t, U.Reverse())
	assert.Equal(t, 0, U.IndexOfA("z"))
	assert.Equal(t, 2, U.IndexOfB(1))
	require.NoError(t, U.Reverse())
	assert.Equal(t, before, U.Values())
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2), assoc.Associate("z", 3))
	require.NoError(t, U.RemoveB(2))
	assert.Equal(t, 1, U.IndexOfA("z"))
	require.NoError(t, U.RemoveA("x"))
	assert.Equal(t, 0, U.IndexOfB(3))
	assert.True(t, errors.Is(U.RemoveB(2), assoc.ErrKeyNotFound))
	require.NoError(t, U.Insert(0, "w", 0))
	assert.Equal(t, "[(w,0) (z,3)]", U.String())
	U.Clear()
	assert.True(t, U.IsEmpty())
	assert.False(t, U.ContainsB(0))
}

func TestUniqueViewsUseIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2))
	A, B := U.ColumnA(), U.ColumnB()
	assert.Equal(t, 1, A.IndexOf("y"))
	assert.Equal(t, 1, B.IndexOf(2))
	assert.False(t, B.Contains(5))
	require.NoError(t, U.Add("z", 5))
	assert.True(t, B.Contains(5))
	assert.True(t, errors.Is(B.Add(6), assoc.ErrReadOnly))
}

func TestUniqueCopyIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1))
	C := U.Copy()
	require.NoError(t, C.Add("y", 2))
	assert.Equal(t, 1, U.Count())
	assert.False(t, U.ContainsB(2))
	assert.NoError(t, C.CheckIntegrity())
}

func TestUniqueDivergedIndexIsRebuilt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2))
	U.idxB[2] = 0 // corrupt index
	err := U.RemoveA("y")
	assert.Equal(t, assoc.ConsistencyFault, assoc.KindOf(err))
	assert.Equal(t, 2, U.Count())
	assert.Equal(t, 1, U.IndexOfB(2))
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueDuplicateListIsCleared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2))
	_ = U.list.Set(1, "y", 1) // corrupt list: second component 1 twice
	err := U.Set(1, "q", 9)
	assert.Equal(t, assoc.ConsistencyFault, assoc.KindOf(err))
	assert.True(t, U.IsEmpty())
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueUnhashableIsFault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom[any, any](assoc.Associate[any, any]("x", 1))
	err := U.Add("y", []int{2})
	assert.Equal(t, assoc.ConsistencyFault, assoc.KindOf(err))
	assert.Equal(t, 1, U.Count())
	assert.False(t, U.ContainsA("y"))
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueFaultPanicsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	defer faultsPanic(t)()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2))
	U.idxB[2] = 0 // corrupt index
	r := recovered(func() { _ = U.RemoveA("y") })
	requireSingleFault(t, r)
	assert.Equal(t, 2, U.Count())
	assert.Equal(t, 1, U.IndexOfB(2))
	assert.NoError(t, U.CheckIntegrity())
}

func TestUniqueListFailureIsRepaired(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U, _ := UniqueFrom(assoc.Associate("x", 1), assoc.Associate("y", 2))
	U.list.MakeReadOnly()
	for _, err := range []error{U.Add("z", 3), U.Set(0, "w", 4), U.RemoveB(2), U.Reverse()} {
		assert.Equal(t, assoc.ConsistencyFault, assoc.KindOf(err))
		assert.True(t, errors.Is(err, assoc.ErrReadOnly), "cause lost in %v", err)
	}
	assert.False(t, U.ContainsA("z"))
	assert.False(t, U.ContainsB(4))
	assert.Equal(t, "[(x,1) (y,2)]", U.String())
	assert.NoError(t, U.CheckIntegrity())
	U.Clear()
	require.NoError(t, U.Add("z", 3))
}
