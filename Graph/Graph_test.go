package Graph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/narytree/Trees"
	"github.com/g-m-twostay/narytree/Trees/syncTree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func binary(t *testing.T, n int) *Trees.NTree[int] {
	t.Helper()
	tree, err := Trees.New[int](2)
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		require.NoError(t, tree.Insert(i))
	}
	return tree
}

func TestRender(t *testing.T) {
	tree := binary(t, 5)
	out := Render[int](tree)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, "2-ary tree")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, out, `label="`+string(rune('0'+i))+`"`)
	}
	assert.Equal(t, 4, strings.Count(out, "->"))
}

// tag prints only its name.
type tag struct {
	id   int
	name string
}

func (u tag) String() string {
	return u.name
}

func TestRenderSameLabel(t *testing.T) {
	tree, err := Trees.New[tag](2)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(tag{0, "root"}))
	require.NoError(t, tree.Insert(tag{1, "x"}))
	require.NoError(t, tree.Insert(tag{2, "x"}))
	out := Render[tag](tree)
	assert.Equal(t, 2, strings.Count(out, `label="x"`))
	assert.Equal(t, 2, strings.Count(out, "->"))
}

func TestRenderEmpty(t *testing.T) {
	tree, err := Trees.New[string](3)
	require.NoError(t, err)
	assert.Empty(t, Render[string](tree))
	assert.Equal(t, "3-ary tree", Name[string](tree))
}

func TestRenderSyncTree(t *testing.T) {
	tree, err := syncTree.New[string](3)
	require.NoError(t, err)
	for _, v := range []string{"root", "a", "b", "c", "d"} {
		require.NoError(t, tree.Insert(v))
	}
	out := Render[string](tree)
	assert.Contains(t, out, `label="root"`)
	assert.Contains(t, out, "3-ary tree")
	assert.Equal(t, 4, strings.Count(out, "->"))
}

func TestWriteFile(t *testing.T) {
	tree := binary(t, 3)
	path := filepath.Join(t.TempDir(), "tree.dot")
	require.NoError(t, WriteFile[int](tree, path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render[int](tree), string(b))

	err = WriteFile[int](tree, filepath.Join(t.TempDir(), "missing", "tree.dot"))
	assert.ErrorContains(t, err, "2-ary tree")
}

func TestOutline(t *testing.T) {
	tree := binary(t, 5)
	assert.Equal(t, "1\n  2\n    4\n    5\n  3\n", Outline(tree, "  "))
}
