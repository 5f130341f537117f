package main

import (
	"errors"
	"testing"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/params"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalAll(t *testing.T, intp *Intp, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := intp.Eval(line)
		require.NoError(t, err, line)
	}
}

func TestEvalUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, err := NewIntp("unique")
	require.NoError(t, err)
	evalAll(t, intp,
		"add de Germany",
		"add fr France",
		"insert 1 at Austria",
		"getb France",
		"list",
		"tree",
		"check",
	)
	assert.Equal(t, "[(de,Germany) (at,Austria) (fr,France)]", intp.c.String())
	_, err = intp.Eval("add ch France")
	assert.True(t, errors.Is(err, assoc.ErrDuplicateKey))
	evalAll(t, intp, "rmb Austria", "set 0 d Deutschland", "reverse")
	assert.Equal(t, "[(fr,France) (d,Deutschland)]", intp.c.String())
	quit, err := intp.Eval("quit")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestEvalSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, err := NewIntp("set")
	require.NoError(t, err)
	evalAll(t, intp, "add a 1", "add b 1", "get b", "del 0")
	assert.Equal(t, 1, intp.c.Count())
	_, err = intp.Eval("getb 1")
	assert.Equal(t, assoc.Unsupported, assoc.KindOf(err))
	_, err = intp.Eval("rmb 1")
	assert.Equal(t, assoc.Unsupported, assoc.KindOf(err))
	evalAll(t, intp, "clear")
	assert.Equal(t, 0, intp.c.Count())
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, _ := NewIntp("unique")
	for _, line := range []string{
		"frobnicate",
		"add a",
		"del x",
		"42 a b",
		"del 3",
	} {
		if _, err := intp.Eval(line); err == nil {
			t.Errorf("expected %q to fail", line)
		}
	}
	_, err := intp.Eval("# nothing but a comment")
	assert.NoError(t, err)
	_, err = NewIntp("bimap")
	assert.Error(t, err)
}

func TestPreload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, _ := NewIntp("unique")
	args, err := params.ParseArgs([]string{"x=1", "y=2", "z=1"})
	require.NoError(t, err)
	intp.preload(args)
	assert.Equal(t, "[(x,1) (y,2)]", intp.c.String())
}

func TestScopesLoadVisibleParams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, _ := NewIntp("set")
	evalAll(t, intp,
		"def a 1",
		"scope inner",
		"def a 2",
		"def b 3",
		"params",
		"load",
	)
	assert.Equal(t, "[(a,2) (b,3)]", intp.c.String())
	assert.Equal(t, "globals/inner", intp.scopes.Path())
	evalAll(t, intp, "pop", "load")
	assert.Equal(t, "[(a,1)]", intp.c.String())
	_, err := intp.Eval("pop")
	assert.Equal(t, assoc.InvalidArgument, assoc.KindOf(err))
	assert.Equal(t, 1, intp.scopes.Depth())
}

func TestLoadSkipsRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "assoc")
	defer teardown()
	//
	intp, _ := NewIntp("unique")
	args, err := params.ParseArgs([]string{"x=1", "v"})
	require.NoError(t, err)
	intp.preload(args)
	evalAll(t, intp, "scope s", "def y 1", "def w true", "load")
	assert.Equal(t, "[(y,1) (w,true)]", intp.c.String())
	assert.NoError(t, intp.c.CheckIntegrity())
}
