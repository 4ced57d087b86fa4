package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods as ordered sets.
// compares with https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap for
// lookups only, as they don't keep order.
const (
	benchmarkItemCount = 1 << 16
	valRange           = 1 << 20
)

var keys = func() []int {
	rg := rand.New(rand.NewSource(0))
	a := make([]int, benchmarkItemCount)
	for i := range a {
		a[i] = rg.Intn(valRange)
	}
	return a
}()

func benchTree(b *testing.B, mk func() Trees.Tree[int, uint32]) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			tree := mk()
			for _, k := range keys {
				tree.Insert(k)
			}
		}
	})
	tree := mk()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.Run("Has", func(b *testing.B) {
		for range b.N {
			for _, k := range keys {
				if !tree.Has(k) {
					b.Fail()
				}
			}
		}
	})
	b.Run("Iterate", func(b *testing.B) {
		for range b.N {
			for range tree.All() {
			}
		}
	})
	b.Run("Delete", func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			tree := mk()
			for _, k := range keys {
				tree.Insert(k)
			}
			b.StartTimer()
			for _, k := range keys {
				tree.Delete(k)
			}
		}
	})
}

func BenchmarkAVL(b *testing.B) {
	benchTree(b, func() Trees.Tree[int, uint32] { return Trees.NewAVL[int, uint32](benchmarkItemCount) })
}

func BenchmarkRB(b *testing.B) {
	benchTree(b, func() Trees.Tree[int, uint32] { return Trees.NewRB[int, uint32](benchmarkItemCount) })
}

func BenchmarkTreap(b *testing.B) {
	benchTree(b, func() Trees.Tree[int, uint32] { return Trees.NewTreap[int, uint32](benchmarkItemCount) })
}

func BenchmarkBTree(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			tree := btree.NewOrderedG[int](32)
			for _, k := range keys {
				tree.ReplaceOrInsert(k)
			}
		}
	})
	tree := btree.NewOrderedG[int](32)
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.Run("Has", func(b *testing.B) {
		for range b.N {
			for _, k := range keys {
				if !tree.Has(k) {
					b.Fail()
				}
			}
		}
	})
	b.Run("Iterate", func(b *testing.B) {
		for range b.N {
			tree.Ascend(func(int) bool { return true })
		}
	})
}

func BenchmarkLLRB(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			tree := llrb.New()
			for _, k := range keys {
				tree.ReplaceOrInsert(llrb.Int(k))
			}
		}
	})
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.Run("Has", func(b *testing.B) {
		for range b.N {
			for _, k := range keys {
				if !tree.Has(llrb.Int(k)) {
					b.Fail()
				}
			}
		}
	})
	b.Run("Iterate", func(b *testing.B) {
		for range b.N {
			tree.AscendGreaterOrEqual(tree.Min(), func(llrb.Item) bool { return true })
		}
	})
}

func BenchmarkGods(b *testing.B) {
	b.Run("Insert", func(b *testing.B) {
		for range b.N {
			tree := redblacktree.NewWithIntComparator()
			for _, k := range keys {
				tree.Put(k, nil)
			}
		}
	})
	tree := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		tree.Put(k, nil)
	}
	b.Run("Has", func(b *testing.B) {
		for range b.N {
			for _, k := range keys {
				if _, found := tree.Get(k); !found {
					b.Fail()
				}
			}
		}
	})
	b.Run("Iterate", func(b *testing.B) {
		for range b.N {
			for it := tree.Iterator(); it.Next(); {
			}
		}
	})
}

func BenchmarkHaxMap(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkHashMap(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, k := range keys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}
