package Trees

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/g-m-twostay/go-trees/Queues"
	"golang.org/x/exp/constraints"
)

// link of a slot in the arena.
// The zero value is the nil slot's, all three indexes pointing back to 0.
type link[S constraints.Unsigned] struct {
	l, r, p S
}

// base is the arena every strategy is built on. Slot 0 is the nil slot: a child or parent
// index of 0 means absent, and it also terminates every walk. vs[i] is the key of ifs[i].
// Released slots form a linked list starting at free, using link.l as next.
// Strategies keep their own metadata in slices parallel to ifs.
type base[T any, S constraints.Unsigned] struct {
	ifs  []link[S]
	vs   []T
	free S
	cmp  func(T, T) int
}

func makeBase[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) base[T, S] {
	return base[T, S]{ifs: make([]link[S], 1, int(hint)+1), vs: make([]T, 1, int(hint)+1), cmp: cmp}
}

// alloc a detached slot holding v. Free slots are used before the arena grows.
// fresh reports that the slot was appended, so the caller must append its metadata instead of
// overwriting it. Panics with ErrCapacity when S can't address another slot.
// Time: amortized O(1)
func (u *base[T, S]) alloc(v T) (i S, fresh bool) {
	if i = u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i], u.vs[i] = link[S]{}, v
		return i, false
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(ErrCapacity)
	}
	i = S(len(u.ifs))
	u.ifs = append(u.ifs, link[S]{})
	u.vs = append(u.vs, v)
	return i, true
}

// room reports whether n more slots can be allocated without overflowing S.
// Time: O(n) in the worst case, walking the free list.
func (u *base[T, S]) room(n S) bool {
	k, head := uint64(n), uint64(^S(0))-uint64(len(u.ifs)-1)
	if k <= head {
		return true
	}
	k -= head
	for i := u.free; i != 0 && k > 0; i = u.ifs[i].l {
		k--
	}
	return k == 0
}

// clone copies the whole arena, free list included, so that slot indexes stay valid.
func (u *base[T, S]) clone() *base[T, S] {
	return &base[T, S]{ifs: slices.Clone(u.ifs), vs: slices.Clone(u.vs), free: u.free, cmp: u.cmp}
}

// release slot i to the free list. i must already be unlinked from its tree.
func (u *base[T, S]) release(i S) {
	u.vs[i] = *new(T)
	u.ifs[i] = link[S]{l: u.free}
	u.free = i
}

// reset the arena to only the nil slot. Keeps the capacity.
// Time: O(n) to drop the references held by keys.
func (u *base[T, S]) reset() {
	clear(u.vs)
	u.ifs, u.vs, u.free = u.ifs[:1], u.vs[:1], 0
	u.ifs[0] = link[S]{}
}

// search for the slot holding v in the subtree rooted at cur. 0 if v isn't there.
// Time: O(D)
func (u *base[T, S]) search(cur S, v T) S {
	for cur != 0 {
		if c := u.cmp(v, u.vs[cur]); c < 0 {
			cur = u.ifs[cur].l
		} else if c > 0 {
			cur = u.ifs[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// locate descends from cur like search. When v is absent it returns 0, the last visited slot
// as parent, and the result of the last comparison telling on which side v belongs.
func (u *base[T, S]) locate(cur S, v T) (found, parent S, c int) {
	for cur != 0 {
		if c = u.cmp(v, u.vs[cur]); c < 0 {
			parent, cur = cur, u.ifs[cur].l
		} else if c > 0 {
			parent, cur = cur, u.ifs[cur].r
		} else {
			return cur, u.ifs[cur].p, 0
		}
	}
	return 0, parent, c
}

// attach detached slot i as the child of parent on the side given by c. parent==0 makes i the root.
func (u *base[T, S]) attach(root *S, parent, i S, c int) {
	u.ifs[i].p = parent
	if parent == 0 {
		*root = i
	} else if c < 0 {
		u.ifs[parent].l = i
	} else {
		u.ifs[parent].r = i
	}
}

func (u *base[T, S]) minimum(cur S) S {
	if cur != 0 {
		for u.ifs[cur].l != 0 {
			cur = u.ifs[cur].l
		}
	}
	return cur
}

func (u *base[T, S]) maximum(cur S) S {
	if cur != 0 {
		for u.ifs[cur].r != 0 {
			cur = u.ifs[cur].r
		}
	}
	return cur
}

// successor of slot cur in in-order. 0 means cur holds the greatest key.
// Time: amortized O(1) over a full traversal, O(D) worst case.
func (u *base[T, S]) successor(cur S) S {
	if r := u.ifs[cur].r; r != 0 {
		return u.minimum(r)
	}
	p := u.ifs[cur].p
	for p != 0 && cur == u.ifs[p].r {
		cur, p = p, u.ifs[p].p
	}
	return p
}

// predecessor of slot cur in in-order. 0 means cur holds the least key.
func (u *base[T, S]) predecessor(cur S) S {
	if l := u.ifs[cur].l; l != 0 {
		return u.maximum(l)
	}
	p := u.ifs[cur].p
	for p != 0 && cur == u.ifs[p].l {
		cur, p = p, u.ifs[p].p
	}
	return p
}

// transplant replaces the subtree rooted at old with the one rooted at nw in old's parent.
// old's own links are left untouched.
func (u *base[T, S]) transplant(root *S, old, nw S) {
	p := u.ifs[old].p
	if p == 0 {
		*root = nw
	} else if old == u.ifs[p].l {
		u.ifs[p].l = nw
	} else {
		u.ifs[p].r = nw
	}
	if nw != 0 {
		u.ifs[nw].p = p
	}
}

// rotateLeft around x, returning x's former right child, now in x's place.
// Only links are touched; metadata is the strategy's business.
// Time: O(1)
func (u *base[T, S]) rotateLeft(root *S, x S) S {
	y := u.ifs[x].r
	u.ifs[x].r = u.ifs[y].l
	if yl := u.ifs[y].l; yl != 0 {
		u.ifs[yl].p = x
	}
	u.transplant(root, x, y)
	u.ifs[y].l, u.ifs[x].p = x, y
	return y
}

// rotateRight around x, returning x's former left child, now in x's place.
func (u *base[T, S]) rotateRight(root *S, x S) S {
	y := u.ifs[x].l
	u.ifs[x].l = u.ifs[y].r
	if yr := u.ifs[y].r; yr != 0 {
		u.ifs[yr].p = x
	}
	u.transplant(root, x, y)
	u.ifs[y].r, u.ifs[x].p = x, y
	return y
}

// rank counts the keys less than v in the subtree rooted at cur, whose subtree sizes are in sz.
// found reports whether v itself is present.
// Time: O(D)
func (u *base[T, S]) rank(cur S, sz []S, v T) (r S, found bool) {
	for cur != 0 {
		if c := u.cmp(v, u.vs[cur]); c < 0 {
			cur = u.ifs[cur].l
		} else if c > 0 {
			r += sz[u.ifs[cur].l] + 1
			cur = u.ifs[cur].r
		} else {
			return r + sz[u.ifs[cur].l], true
		}
	}
	return r, false
}

// rankK finds the slot of the k-th (from 0) key in the subtree rooted at cur. The caller
// guarantees k<sz[cur]; otherwise the result is 0.
// Time: O(D)
func (u *base[T, S]) rankK(cur S, sz []S, k S) S {
	for cur != 0 {
		if l := u.ifs[cur].l; k < sz[l] {
			cur = l
		} else if k > sz[l] {
			k -= sz[l] + 1
			cur = u.ifs[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// inOrder calls f on every slot of the subtree rooted at root in ascending order until f returns false.
func (u *base[T, S]) inOrder(root S, f func(S) bool) {
	for cur := u.minimum(root); cur != 0 && f(cur); {
		cur = u.successor(cur)
	}
}

// inOrderR is inOrder in descending order.
func (u *base[T, S]) inOrderR(root S, f func(S) bool) {
	for cur := u.maximum(root); cur != 0 && f(cur); {
		cur = u.predecessor(cur)
	}
}

type level[S constraints.Unsigned] struct {
	i S
	d int
}

// levels visits the subtree rooted at root breadth first, passing each slot with its depth.
func (u *base[T, S]) levels(root S, f func(S, int) bool) {
	if root == 0 {
		return
	}
	q := Queues.NewRing[level[S]](16)
	for q.Push(level[S]{root, 0}); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur.i, cur.d) {
			return
		}
		if l := u.ifs[cur.i].l; l != 0 {
			q.Push(level[S]{l, cur.d + 1})
		}
		if r := u.ifs[cur.i].r; r != 0 {
			q.Push(level[S]{r, cur.d + 1})
		}
	}
}

// height of the subtree rooted at cur, 0 for the nil slot. Recursive.
func (u *base[T, S]) height(cur S) int {
	if cur == 0 {
		return 0
	}
	return 1 + max(u.height(u.ifs[cur].l), u.height(u.ifs[cur].r))
}

// fprint writes the keys of the subtree rooted at root in ascending order, separated by a
// single space and terminated by a newline.
func (u *base[T, S]) fprint(w io.Writer, root S) error {
	bw := bufio.NewWriter(w)
	sep := ""
	var err error
	u.inOrder(root, func(i S) bool {
		_, err = fmt.Fprint(bw, sep, u.vs[i])
		sep = " "
		return err == nil
	})
	if err != nil {
		return err
	}
	if err = bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func (u *base[T, S]) str(root S) string {
	var sb strings.Builder
	u.fprint(&sb, root) //strings.Builder never fails
	return strings.TrimSuffix(sb.String(), "\n")
}

// links checks the structure shared by every strategy in the subtree rooted at root: parent
// back links, that no slot is reachable twice, and the nil slot's children. n is the number
// of slots reached.
func (u *base[T, S]) links(root S) (n int, bad bool) {
	if u.ifs[0].l != 0 || u.ifs[0].r != 0 || (root != 0 && u.ifs[root].p != 0) {
		return 0, true
	}
	st := []S{root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur == 0 {
			continue
		}
		if n++; n >= len(u.ifs) || int(cur) >= len(u.ifs) {
			return n, true
		}
		for _, c := range [2]S{u.ifs[cur].l, u.ifs[cur].r} {
			if c != 0 && u.ifs[c].p != cur {
				return n, true
			}
			st = append(st, c)
		}
	}
	return n, false
}

// corrupt is links plus strict ascending order of keys.
func (u *base[T, S]) corrupt(root S) (n int, bad bool) {
	if n, bad = u.links(root); bad {
		return
	}
	prev, first := S(0), true
	u.inOrder(root, func(i S) bool {
		if !first && u.cmp(u.vs[prev], u.vs[i]) >= 0 {
			bad = true
		}
		prev, first = i, false
		return !bad
	})
	return n, bad
}
