package Trees

import (
	"testing"
)

var (
	bAddN  = 2000
	bOrder = uint(4)
	__r1   bool
	__r2   uint
)

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree, _ := New[int](bOrder)
		for i := range bAddN {
			_ = tree.Insert(i)
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := build(b, bOrder, bAddN)
		b.StartTimer()
		for !tree.Empty() {
			_ = tree.Delete(tree.Root().Value())
		}
	}
}

func BenchmarkShape(b *testing.B) {
	tree := build(b, bOrder, bAddN)
	b.ResetTimer()
	for range b.N {
		__r1 = tree.IsComplete() && tree.IsPerfect() && tree.Full()
		__r2, __r1 = tree.IsBalanced(tree.Root())
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := build(b, bOrder, bAddN)
	b.ResetTimer()
	for range b.N {
		__r1 = tree.Has(rg.Intn(bAddN * 2))
	}
}
