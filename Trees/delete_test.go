package Trees

import (
	"errors"
	"slices"
	"testing"
)

func TestNTree_DeleteRootCascade(t *testing.T) {
	tree := build(t, 2, 5)
	if e := tree.Delete(1); e != nil {
		t.Fatal(e)
	}
	// 1 <- 2 <- 4, then the leaf that held 4 goes away.
	want := []Edge[int]{{2, 4}, {2, 3}, {4, 5}}
	if !slices.Equal(tree.Edges(), want) {
		t.Errorf("edges are %v, want %v", tree.Edges(), want)
	}
	if vs := tree.Values(); !slices.Equal(vs, []int{2, 4, 3, 5}) {
		t.Errorf("values are %v", vs)
	}
	if tree.Size() != 4 || tree.Height() != 2 {
		t.Errorf("size %d, height %d", tree.Size(), tree.Height())
	}
	check(t, tree)
}

func TestNTree_DeleteInnerCascade(t *testing.T) {
	tree := build(t, 3, 13)
	if e := tree.Delete(2); e != nil {
		t.Fatal(e)
	}
	// 2 <- 5 and the leaf 5 is removed, so 6 and 7 stay under the old node of 2.
	want := []Edge[int]{{1, 5}, {1, 3}, {1, 4}, {5, 6}, {5, 7}, {3, 8}, {3, 9}, {3, 10}, {4, 11}, {4, 12}, {4, 13}}
	if !slices.Equal(tree.Edges(), want) {
		t.Errorf("edges are %v, want %v", tree.Edges(), want)
	}
	check(t, tree)
}

func TestNTree_DeleteSplice(t *testing.T) {
	tree := build(t, 2, 3)
	_ = tree.InsertUnder(4, 2)
	_ = tree.InsertUnder(5, 4)
	_ = tree.InsertUnder(6, 5)
	if tree.Height() != 4 {
		t.Fatalf("height is %d", tree.Height())
	}
	if e := tree.Delete(2); e != nil {
		t.Fatal(e)
	}
	want := []Edge[int]{{1, 4}, {1, 3}, {4, 5}, {5, 6}}
	if !slices.Equal(tree.Edges(), want) {
		t.Errorf("edges are %v, want %v", tree.Edges(), want)
	}
	for v, l := range map[int]uint{4: 1, 5: 2, 6: 3} {
		if n := tree.BreadthFirstSearch(v); n.Level() != l {
			t.Errorf("%d is on level %d, want %d", v, n.Level(), l)
		}
	}
	if tree.Height() != 3 {
		t.Errorf("height is %d, want 3", tree.Height())
	}
	check(t, tree)
}

func TestNTree_DeleteRootSplice(t *testing.T) {
	tree, _ := New[string](2)
	_ = tree.Insert("a")
	_ = tree.InsertUnder("b", "a")
	_ = tree.InsertUnder("c", "b")
	_ = tree.InsertUnder("d", "b")
	if e := tree.Delete("a"); e != nil {
		t.Fatal(e)
	}
	if r := tree.Root(); r.Value() != "b" || r.Level() != 0 || r.Degree() != 2 {
		t.Errorf("root is %v on level %d", r, r.Level())
	}
	if tree.Height() != 1 || tree.Size() != 3 {
		t.Errorf("height %d, size %d", tree.Height(), tree.Size())
	}
	check(t, tree)
}

func TestNTree_DeleteLeaf(t *testing.T) {
	tree := build(t, 3, 20)
	before := tree.Fingerprint()
	for _, p := range []int{1, 7, 20} {
		if e := tree.InsertUnder(100, p); e != nil && !errors.Is(e, ErrCapacityExceeded) {
			t.Fatal(e)
		} else if e == nil {
			if e := tree.Delete(100); e != nil {
				t.Fatal(e)
			}
		}
		if tree.Fingerprint() != before {
			t.Errorf("deleting the leaf under %d didn't restore the tree", p)
		}
	}
	_ = tree.Insert(100)
	_ = tree.Delete(100)
	if tree.Fingerprint() != before {
		t.Error("deleting the default leaf didn't restore the tree")
	}
	check(t, tree)
}

func TestNTree_DeleteFail(t *testing.T) {
	tree, _ := New[int](2)
	if e := tree.Delete(1); !errors.Is(e, ErrEmptyTree) {
		t.Errorf("got %v, want empty tree", e)
	}
	tree = build(t, 2, 7)
	before := tree.Fingerprint()
	if e := tree.Delete(8); !errors.Is(e, ErrValueNotFound) {
		t.Errorf("got %v, want value not found", e)
	}
	if tree.Fingerprint() != before || tree.Size() != 7 {
		t.Error("failed deletion modified the tree")
	}
}

func TestNTree_DeleteAll(t *testing.T) {
	tree := build(t, 3, 40)
	for i := 40; i >= 1; i -= 3 {
		if e := tree.Delete(i); e != nil {
			t.Fatal(e)
		}
		check(t, tree)
	}
	for !tree.Empty() {
		if e := tree.Delete(tree.Root().Value()); e != nil {
			t.Fatal(e)
		}
		check(t, tree)
	}
	if tree.Size() != 0 || tree.Height() != 0 {
		t.Errorf("size %d, height %d", tree.Size(), tree.Height())
	}
}
