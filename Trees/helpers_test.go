package Trees

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

// depth is the average depth of the nodes, the root's being 1.
func depth[T any, S constraints.Unsigned](tree Tree[T, S]) float32 {
	var n, d int
	tree.Levels(func(_ T, l int) bool {
		n++
		d += l + 1
		return true
	})
	if n == 0 {
		return 0
	}
	return float32(d) / float32(n)
}

// levels renders the tree breadth first with depths, capturing its shape.
func levels[S constraints.Unsigned](tree Tree[int, S]) string {
	var sb strings.Builder
	tree.Levels(func(v int, d int) bool {
		fmt.Fprintf(&sb, "%d:%d ", d, v)
		return true
	})
	return sb.String()
}

func randKeys(n, r int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(r)
	}
	return a
}

// sameAs fails t unless tree holds exactly the keys of oracle, in the same order both ways.
func sameAs[S constraints.Unsigned](t *testing.T, tree Tree[int, S], oracle *btree.BTreeG[int]) {
	t.Helper()
	if int(tree.Size()) != oracle.Len() {
		t.Errorf("tree size is %d, want %d", tree.Size(), oracle.Len())
	}
	want := make([]int, 0, oracle.Len())
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	if got := slices.Collect(tree.All()); !slices.Equal(got, want) {
		t.Errorf("in-order traversal differs from oracle")
	}
	got := slices.Collect(tree.Backward())
	slices.Reverse(got)
	if !slices.Equal(got, want) {
		t.Errorf("reverse traversal differs from oracle")
	}
}

// testAddDel runs random insertions and deletions on tree, checking every result against a
// map and the final content against a btree.
func testAddDel[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	content := make(map[int]struct{})
	oracle := btree.NewOrderedG[int](32)
	a := randKeys(tAddN, tAddValRange)
	for _, b := range a {
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v", b, c)
		}
		content[b] = struct{}{}
		oracle.ReplaceOrInsert(b)
	}
	if tree.Corrupt() {
		t.Fatalf("tree is corrupt after insertions")
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", depth(tree), tree.Height(), tree.Size())
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Delete(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if b := tree.Delete(a[i]); b {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
		oracle.Delete(a[i])
	}
	for _, b := range randKeys(tAddN/2, tAddValRange) {
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert of key %v returned %v", b, c)
		}
		content[b] = struct{}{}
		oracle.ReplaceOrInsert(b)
	}
	if tree.Corrupt() {
		t.Fatalf("tree is corrupt after deletions")
	}
	t.Logf("depth: %f, height: %d, size: %d.\n", depth(tree), tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	sameAs(t, tree, oracle)
	if !slices.IsSorted(slices.Collect(tree.All())) {
		t.Errorf("tree isn't sorted")
	}
}

// testEachOp checks the invariants after every single operation of a short random sequence.
func testEachOp[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	oracle := btree.NewOrderedG[int](4)
	for i := range 2000 {
		v := rg.Intn(300)
		if rg.Intn(3) == 0 {
			_, had := oracle.Delete(v)
			if tree.Delete(v) != had {
				t.Fatalf("op %d: delete %d disagrees with oracle", i, v)
			}
		} else {
			_, had := oracle.ReplaceOrInsert(v)
			if tree.Insert(v) == had {
				t.Fatalf("op %d: insert %d disagrees with oracle", i, v)
			}
		}
		if tree.Corrupt() {
			t.Fatalf("op %d: tree is corrupt", i)
		}
		if int(tree.Size()) != oracle.Len() {
			t.Fatalf("op %d: size %d, want %d", i, tree.Size(), oracle.Len())
		}
	}
	sameAs(t, tree, oracle)
}

// testScenario inserts the keys of a small fixed tree and deletes its root, which has two children.
func testScenario[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	for _, v := range []int{10, 5, 15, 3, 7, 12, 18} {
		tree.Insert(v)
	}
	if s := tree.String(); s != "3 5 7 10 12 15 18" {
		t.Errorf("tree prints %q", s)
	}
	shape := levels(tree)
	if tree.Insert(7) || tree.Size() != 7 || levels(tree) != shape {
		t.Errorf("duplicate insertion changed the tree")
	}
	if !tree.Delete(10) || tree.Corrupt() {
		t.Errorf("failed to delete 10")
	}
	if s := tree.String(); s != "3 5 7 12 15 18" {
		t.Errorf("tree prints %q after deleting 10", s)
	}
	if tree.Delete(10) || tree.Size() != 6 {
		t.Errorf("deleting an absent key changed the tree")
	}
}

// testRoundTrip checks that inserting then deleting a new key keeps the content.
func testRoundTrip[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	for _, v := range randKeys(500, 1000) {
		tree.Insert(v * 2)
	}
	before, n := tree.String(), tree.Size()
	for range 200 {
		v := rg.Intn(1000)*2 + 1
		tree.Insert(v)
		tree.Delete(v)
		if tree.String() != before || tree.Size() != n || tree.Corrupt() {
			t.Fatalf("insert then delete of %d changed the tree", v)
		}
	}
}

func testEmpty[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	for _, k := range []int{0, -1, 42} {
		if !tree.Find(k).Equal(tree.End()) {
			t.Errorf("Find(%d) on an empty tree isn't End", k)
		}
	}
	if !tree.Begin().Equal(tree.End()) || !tree.RBegin().Equal(tree.REnd()) {
		t.Errorf("empty tree has a first key")
	}
	if _, ok := tree.Minimum(); ok {
		t.Errorf("empty tree has a minimum")
	}
	if _, ok := tree.Maximum(); ok {
		t.Errorf("empty tree has a maximum")
	}
	if tree.Delete(1) || tree.Size() != 0 || tree.Height() != 0 || tree.Corrupt() {
		t.Errorf("empty tree misbehaves")
	}
	if s := tree.String(); s != "" {
		t.Errorf("empty tree prints %q", s)
	}
}

func testClear[S constraints.Unsigned](t *testing.T, tree Tree[int, S]) {
	for _, v := range randKeys(1000, 5000) {
		tree.Insert(v)
	}
	tree.Clear()
	if tree.Size() != 0 || tree.Corrupt() || tree.Begin().Valid() {
		t.Errorf("tree isn't empty after Clear")
	}
	for _, v := range []int{3, 1, 2} {
		tree.Insert(v)
	}
	if s := tree.String(); s != "1 2 3" || tree.Corrupt() {
		t.Errorf("tree prints %q after Clear and reuse", s)
	}
}

// testRankSelect checks that Select inverts Rank on every key and that Rank counts smaller keys
// for absent ones.
func testRankSelect[S constraints.Unsigned](t *testing.T, tree OrderedTree[int, S]) {
	for _, v := range randKeys(5000, 20000) {
		tree.Insert(v * 2)
	}
	all := slices.Collect(tree.All())
	for i, v := range all {
		r, ok := tree.Rank(v)
		if !ok || int(r) != i {
			t.Fatalf("Rank(%d)=%d,%v, want %d", v, r, ok, i)
		}
		if w, err := tree.Select(r); err != nil || w != v {
			t.Fatalf("Select(Rank(%d))=%d, %v", v, w, err)
		}
	}
	for range 500 {
		v := rg.Intn(40000)*2 + 1
		r, ok := tree.Rank(v)
		want, _ := slices.BinarySearch(all, v)
		if ok || int(r) != want {
			t.Fatalf("Rank of absent %d is %d,%v, want %d", v, r, ok, want)
		}
	}
}

// testClone checks that the copy made by clone has the same content and shape as tree, and
// that the two change independently afterwards.
func testClone[S constraints.Unsigned](t *testing.T, tree Tree[int, S], clone func() Tree[int, S]) {
	for _, v := range randKeys(2000, 4000) {
		tree.Insert(v)
	}
	for _, v := range randKeys(500, 4000) {
		tree.Delete(v)
	}
	c := clone()
	if c.String() != tree.String() || levels(c) != levels(tree) || c.Size() != tree.Size() || c.Corrupt() {
		t.Fatalf("clone differs from the tree")
	}
	want := tree.String()
	for _, v := range randKeys(1000, 8000) {
		c.Insert(v)
		c.Delete(v / 2)
	}
	if tree.String() != want || tree.Corrupt() {
		t.Errorf("changing the clone changed the tree")
	}
	before := c.String()
	tree.Clear()
	tree.Insert(-1)
	if c.String() != before || c.Corrupt() {
		t.Errorf("changing the tree changed the clone")
	}
}
