package synced

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/dual"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U := NewUniqueSet[int, string]()
	var g errgroup.Group
	for w := range 8 {
		g.Go(func() error {
			for i := range 100 {
				k := w*100 + i
				if err := U.Add(k, fmt.Sprintf("s%d", k)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 800, U.Count())
	assert.NoError(t, U.CheckIntegrity())
}

func TestConcurrentDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	S := NewIndexedSet[int]()
	var g errgroup.Group
	dups := make([]int, 4)
	for w := range 4 {
		g.Go(func() error {
			for i := range 50 {
				if err := S.Add(i); errors.Is(err, assoc.ErrDuplicateKey) {
					dups[w]++
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	total := 0
	for _, d := range dups {
		total += d
	}
	assert.Equal(t, 150, total)
	assert.Equal(t, 50, S.Count())
	assert.NoError(t, S.CheckIntegrity())
}

func TestIterationIsSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	S := NewSet[string, int]()
	require.NoError(t, S.Add("a", 1))
	require.NoError(t, S.Add("b", 2))
	n := 0
	for _, x := range S.All() {
		require.NoError(t, S.RemoveA(x.A()))
		n++
	}
	assert.Equal(t, 2, n)
	assert.True(t, S.IsEmpty())
	_, _, err := S.LookupB(1)
	assert.Equal(t, assoc.Unsupported, assoc.KindOf(err))
}

func TestDoIsAtomic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	U := NewUniqueSet[string, int]()
	var g errgroup.Group
	for range 10 {
		g.Go(func() error {
			return U.Do(func(u *dual.UniqueSet[string, int]) error {
				if u.ContainsA("once") {
					return nil
				}
				return u.Add("once", u.Count())
			})
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, U.Count())
}

func TestGuardReleasesOnPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	S := NewIndexedSet[string]()
	assert.Panics(t, func() { S.At(3) })
	require.NoError(t, S.Add("x")) // would block if the lock were still held
	snap := S.Snapshot()
	require.NoError(t, snap.Add("y"))
	assert.Equal(t, 1, S.Count())
	assert.Equal(t, "{x}", S.String())
}

func TestSnapshotsAreDetached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	S := NewSet[string, int]()
	U := NewUniqueSet[string, int]()
	require.NoError(t, S.Add("x", 1))
	require.NoError(t, U.Add("x", 1))
	s, u := S.Snapshot(), U.Snapshot()
	require.NoError(t, s.Add("y", 1))
	require.NoError(t, u.Add("y", 2))
	assert.Equal(t, 1, S.Count())
	assert.False(t, U.ContainsB(2))
	n := With(S.Guard, func(c *dual.Set[string, int]) int { return c.Count() })
	assert.Equal(t, 1, n)
}

func TestSetUnsupportedTakesLock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	S := NewSet[string, int]()
	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			if i%2 == 0 {
				return S.Add(fmt.Sprintf("k%d", i), i)
			}
			_, _, err := S.LookupB(i)
			if assoc.KindOf(err) != assoc.Unsupported {
				return err
			}
			if err = S.RemoveB(i); assoc.KindOf(err) != assoc.Unsupported {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 8, S.Count())
	require.NoError(t, S.Reverse())
	assert.NoError(t, S.CheckIntegrity())
}
