package Trees

import (
	"fmt"
	"iter"
	"strings"
)

// balancer is told about every structural change so that a tree variant can
// keep its per-node state, such as balance factors, up to date.
type balancer[T, K any] interface {
	// inserted is called after n was linked as a new leaf.
	inserted(root **Node[T, K], n *Node[T, K])
	// removed is called after the left (or right) child of p was unlinked.
	removed(root **Node[T, K], p *Node[T, K], left bool)
	// check the per-node state of n, whose subtrees have heights lh and rh.
	check(n *Node[T, K], lh, rh int) error
}

type noopBalancer[T, K any] struct{}

func (noopBalancer[T, K]) inserted(**Node[T, K], *Node[T, K]) {}

func (noopBalancer[T, K]) removed(**Node[T, K], *Node[T, K], bool) {}

func (noopBalancer[T, K]) check(n *Node[T, K], _, _ int) error {
	if n.bal != 0 {
		return &CorruptError{n.k, "balance factor set in an unbalanced tree"}
	}
	return nil
}

// base holds everything the tree variants share. A key that compares equal
// to an existing key is placed in the right subtree of the existing node.
type base[T, K any] struct {
	root *Node[T, K]
	sz   int
	cfg  Config[T, K]
	bal  balancer[T, K]
	// strict is true when the nodes of an equal-key group always form a
	// successor chain that starts at the node FindKey returns.
	strict bool
}

func (u *base[T, K]) eq(a, b K) bool {
	return !u.cfg.Less(a, b) && !u.cfg.Less(b, a)
}

// Size is the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *base[T, K]) Size() int {
	return u.sz
}

// Empty reports whether the tree has no element.
func (u *base[T, K]) Empty() bool {
	return u.root == nil
}

// Root node, nil if the tree is empty.
func (u *base[T, K]) Root() *Node[T, K] {
	return u.root
}

// Config the tree was created with, defaults filled in.
func (u *base[T, K]) Config() Config[T, K] {
	return u.cfg
}

// Clear drops every element.
// Time: O(1); Space: O(1)
func (u *base[T, K]) Clear() {
	u.root, u.sz = nil, 0
}

// Hint returns the insertion point of v: the first node on the search path
// whose key equals v's key, or the node that would become v's parent. Nil
// means the tree is empty. The result is only valid for AddAt until the tree
// is modified.
// Time: O(D); Space: O(1)
func (u *base[T, K]) Hint(v T) *Node[T, K] {
	return u.hint(u.cfg.KeyOf(v))
}

func (u *base[T, K]) hint(k K) *Node[T, K] {
	var p *Node[T, K]
	for cur := u.root; cur != nil; {
		p = cur
		if u.cfg.Less(k, cur.k) {
			cur = cur.l
		} else if u.cfg.Less(cur.k, k) {
			cur = cur.r
		} else {
			break
		}
	}
	return p
}

// Add v to the tree. The returned node is the node now holding v, or the node
// holding the duplicate that made Add ignore v. inserted reports whether v is
// stored in the tree after the call. A non-nil error is a
// *DuplicateKeyError or *DuplicateElementError and means the tree is
// unchanged.
// Time: O(D), plus O(k) for the k elements sharing v's key when
// Config.OnDuplicateKeys is Allow.
func (u *base[T, K]) Add(v T) (n *Node[T, K], inserted bool, err error) {
	return u.AddAt(v, nil)
}

// AddAt is Add with an insertion point previously computed by Hint. A nil hint
// is computed. AddAt panics with a PreconditionError, leaving the tree
// unchanged, when hint isn't where v belongs in the tree, e.g. because the
// tree was modified since the call to Hint.
// Time: O(D), plus O(k) as for Add.
func (u *base[T, K]) AddAt(v T, hint *Node[T, K]) (*Node[T, K], bool, error) {
	k := u.cfg.KeyOf(v)
	if hint == nil {
		hint = u.hint(k)
	} else if !u.validHint(hint, k) {
		panic(PreconditionError{"add", "invalid hint"})
	}
	if u.root == nil {
		u.root = &Node[T, K]{v: v, k: k}
		u.sz++
		u.bal.inserted(&u.root, u.root)
		return u.root, true, nil
	}
	p := hint
	if u.eq(k, p.k) {
		switch u.cfg.OnDuplicateKeys {
		case Error:
			return nil, false, &DuplicateKeyError[K]{k}
		case Replace:
			p.v, p.k = v, k
			return p, true, nil
		case Ignore:
			return p, false, nil
		}
		for cur := range u.equalRange(p, k).Cursors() {
			if !u.cfg.Equal(cur.v, v) {
				continue
			}
			switch u.cfg.OnDuplicateElements {
			case Error:
				return nil, false, &DuplicateElementError[T]{v}
			case Replace:
				cur.v, cur.k = v, k
				return cur, true, nil
			case Ignore:
				return cur, false, nil
			}
			break
		}
		// equal keys go right, keep descending to a free slot.
		for next := p.r; next != nil; {
			p = next
			if u.cfg.Less(k, p.k) {
				next = p.l
			} else {
				next = p.r
			}
		}
	}
	n := &Node[T, K]{v: v, k: k, p: p}
	if u.cfg.Less(k, p.k) {
		p.l = n
	} else {
		p.r = n
	}
	u.sz++
	u.bal.inserted(&u.root, n)
	return n, true, nil
}

// validHint reports whether Hint could have returned h for k: h is linked in
// the tree below no other node with key k, and k either equals h's key or
// fits in h's free slot, strictly between h and h's in-order neighbour.
func (u *base[T, K]) validHint(h *Node[T, K], k K) bool {
	top := h
	for ; top.p != nil; top = top.p {
		if u.eq(k, top.p.k) {
			return false
		}
	}
	if top != u.root {
		return false
	}
	if u.eq(k, h.k) {
		return true
	}
	if u.cfg.Less(k, h.k) {
		prev := h.Prev()
		return h.l == nil && (prev == nil || u.cfg.Less(prev.k, k))
	}
	next := h.Next()
	return h.r == nil && (next == nil || u.cfg.Less(k, next.k))
}

// linked reports whether n is a node of the tree.
func (u *base[T, K]) linked(n *Node[T, K]) bool {
	for n.p != nil {
		n = n.p
	}
	return n == u.root
}

// FindKey returns a node with key k, nil if there's none. When several
// elements share k, which of them is returned is unspecified.
// Time: O(D); Space: O(1)
func (u *base[T, K]) FindKey(k K) *Node[T, K] {
	for cur := u.root; cur != nil; {
		if u.cfg.Less(k, cur.k) {
			cur = cur.l
		} else if u.cfg.Less(cur.k, k) {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// GetNearest returns the node with key k if there's one, otherwise one of the
// two nodes adjacent to k in key order. Nil only when the tree is empty.
// Time: O(D); Space: O(1)
func (u *base[T, K]) GetNearest(k K) *Node[T, K] {
	return u.hint(k)
}

// HasKey reports whether some element has key k.
func (u *base[T, K]) HasKey(k K) bool {
	return u.FindKey(k) != nil
}

// Has reports whether an element with v's key and Equal to v is stored.
// Time: O(D+k) for k elements sharing v's key.
func (u *base[T, K]) Has(v T) bool {
	return u.find(v) != nil
}

func (u *base[T, K]) find(v T) *Node[T, K] {
	k := u.cfg.KeyOf(v)
	if h := u.FindKey(k); h != nil {
		for cur := range u.equalRange(h, k).Cursors() {
			if u.cfg.Equal(cur.v, v) {
				return cur
			}
		}
	}
	return nil
}

// EqualKeys returns the Range of all nodes whose key equals k.
func (u *base[T, K]) EqualKeys(k K) Range[T, K] {
	if h := u.FindKey(k); h != nil {
		return u.equalRange(h, k)
	}
	return Range[T, K]{}
}

// equalRange of k, given h returned by FindKey(k).
func (u *base[T, K]) equalRange(h *Node[T, K], k K) Range[T, K] {
	if u.strict {
		// h is the first of its group, walk forward.
		last, cnt := h, 1
		for next := h.Next(); next != nil && !u.cfg.Less(k, next.k); next = next.Next() {
			last = next
			cnt++
		}
		return makeRange(h, last, cnt)
	}
	// every node with key k is in the subtree of h. Everything left of h is
	// not greater than k, everything right of h is not less than k.
	lo, hi := h, h
	for cur := h.l; cur != nil; {
		if u.cfg.Less(cur.k, k) {
			cur = cur.r
		} else {
			lo, cur = cur, cur.l
		}
	}
	for cur := h.r; cur != nil; {
		if u.cfg.Less(k, cur.k) {
			cur = cur.l
		} else {
			hi, cur = cur, cur.r
		}
	}
	return makeRange(lo, hi, -1)
}

// GetGreatestLowerBound returns the last node whose key is not greater than k, nil if there's none.
// Time: O(D), plus O(k) for the k elements sharing the key of the result.
func (u *base[T, K]) GetGreatestLowerBound(k K) *Node[T, K] {
	n := u.GetNearest(k)
	if n == nil {
		return nil
	}
	if u.cfg.Less(k, n.k) {
		for n != nil && u.cfg.Less(k, n.k) {
			n = n.Prev()
		}
		return n
	}
	for next := n.Next(); next != nil && !u.cfg.Less(k, next.k); next = next.Next() {
		n = next
	}
	return n
}

// GetLeastUpperBound returns the first node whose key is not less than k, nil if there's none.
// Time: O(D), plus O(k) for the k elements sharing the key of the result.
func (u *base[T, K]) GetLeastUpperBound(k K) *Node[T, K] {
	n := u.GetNearest(k)
	if n == nil {
		return nil
	}
	if u.cfg.Less(n.k, k) {
		for n != nil && u.cfg.Less(n.k, k) {
			n = n.Next()
		}
		return n
	}
	for prev := n.Prev(); prev != nil && !u.cfg.Less(prev.k, k); prev = prev.Prev() {
		n = prev
	}
	return n
}

// Predecessor returns the last node whose key is less than k, nil if there's none.
// Time: O(D); Space: O(1)
func (u *base[T, K]) Predecessor(k K) *Node[T, K] {
	var p *Node[T, K]
	for cur := u.root; cur != nil; {
		if u.cfg.Less(cur.k, k) {
			p, cur = cur, cur.r
		} else {
			cur = cur.l
		}
	}
	return p
}

// Successor returns the first node whose key is greater than k, nil if there's none.
// Time: O(D); Space: O(1)
func (u *base[T, K]) Successor(k K) *Node[T, K] {
	var p *Node[T, K]
	for cur := u.root; cur != nil; {
		if u.cfg.Less(k, cur.k) {
			p, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	return p
}

// Between returns the Range of nodes whose keys are within [lo, hi].
func (u *base[T, K]) Between(lo, hi K) Range[T, K] {
	if u.cfg.Less(hi, lo) {
		return Range[T, K]{}
	}
	min, max := u.GetLeastUpperBound(lo), u.GetGreatestLowerBound(hi)
	if min == nil || max == nil || u.cfg.Less(max.k, min.k) {
		return Range[T, K]{}
	}
	return makeRange(min, max, -1)
}

// Begin is the first node in key order, nil if the tree is empty.
func (u *base[T, K]) Begin() *Node[T, K] {
	return u.root.Leftmost()
}

// End is the last node in key order, nil if the tree is empty.
func (u *base[T, K]) End() *Node[T, K] {
	return u.root.Rightmost()
}

// ToRange covers the whole tree.
func (u *base[T, K]) ToRange() Range[T, K] {
	return makeRange(u.Begin(), u.End(), u.sz)
}

// Minimum element of the tree.
func (u *base[T, K]) Minimum() (T, bool) {
	if n := u.Begin(); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum element of the tree.
func (u *base[T, K]) Maximum() (T, bool) {
	if n := u.End(); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// MustMinimum is Minimum that panics with a PreconditionError on an empty tree.
func (u *base[T, K]) MustMinimum() T {
	if u.root == nil {
		panic(PreconditionError{"minimum", "empty tree"})
	}
	return u.Begin().v
}

// MustMaximum is Maximum that panics with a PreconditionError on an empty tree.
func (u *base[T, K]) MustMaximum() T {
	if u.root == nil {
		panic(PreconditionError{"maximum", "empty tree"})
	}
	return u.End().v
}

// Delete an element with v's key that is Equal to v. Returns false if there's none.
// Time: O(D+k) for k elements sharing v's key.
func (u *base[T, K]) Delete(v T) bool {
	if n := u.find(v); n != nil {
		u.DeleteAt(n)
		return true
	}
	return false
}

// DeleteAll deletes every element with v's key that is Equal to v and returns
// how many were deleted.
func (u *base[T, K]) DeleteAll(v T) int {
	return u.deleteWhere(u.cfg.KeyOf(v), func(n *Node[T, K]) bool {
		return u.cfg.Equal(n.v, v)
	})
}

// DeleteKey deletes every element with key k and returns how many were deleted.
func (u *base[T, K]) DeleteKey(k K) int {
	return u.deleteWhere(k, func(*Node[T, K]) bool {
		return true
	})
}

// deleteWhere the nodes of k's group that satisfy f. The nodes are removed
// from last to first: DeleteAt only invalidates its argument and the
// argument's successor, which then are never pending.
func (u *base[T, K]) deleteWhere(k K, f func(*Node[T, K]) bool) int {
	var st []*Node[T, K]
	for n := range u.EqualKeys(k).Cursors() {
		if f(n) {
			st = append(st, n)
		}
	}
	for i := len(st) - 1; i > -1; i-- {
		u.DeleteAt(st[i])
	}
	return len(st)
}

// DeleteAt removes the element held by n. n must be a node of this tree; it
// panics with a PreconditionError otherwise. When n has two children, its
// in-order successor's value is moved into n and the successor's node is the
// one unlinked, so afterwards n holds that value. Nodes other than n and its
// successor are unaffected.
// Time: O(D); Space: O(1)
func (u *base[T, K]) DeleteAt(n *Node[T, K]) {
	if n == nil {
		panic(PreconditionError{"delete", "nil node"})
	}
	if !u.linked(n) {
		panic(PreconditionError{"delete", "node not in tree"})
	}
	if n.l != nil && n.r != nil {
		s := n.r.Leftmost()
		n.v, n.k = s.v, s.k
		n = s
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	p := n.p
	left := p != nil && p.l == n
	replaceChild(&u.root, n, c)
	n.p, n.l, n.r = nil, nil, nil
	u.sz--
	if p != nil {
		u.bal.removed(&u.root, p, left)
	}
}

// All elements in key order.
func (u *base[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := u.Begin(); cur != nil; cur = cur.Next() {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// Backward yields all elements in reverse key order.
func (u *base[T, K]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := u.End(); cur != nil; cur = cur.Prev() {
			if !yield(cur.v) {
				return
			}
		}
	}
}

// InOrder [Index.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *base[T, K]) InOrder() func() (T, bool) {
	cur := u.Begin()
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = cur.Next()
		return
	}
}

// Values copies all elements in key order.
func (u *base[T, K]) Values() []interface{} {
	vs := make([]interface{}, 0, u.sz)
	for v := range u.All() {
		vs = append(vs, v)
	}
	return vs
}

func (u *base[T, K]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for v := range u.All() {
		if sb.Len() > 1 {
			sb.WriteString(" ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString("]")
	return sb.String()
}

// Height of the tree, 0 when empty.
// Time: O(n). Recursive.
func (u *base[T, K]) Height() int {
	return height(u.root)
}

func height[T, K any](n *Node[T, K]) int {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}

// clone the subtree rooted at n under the parent p. Recursive.
func clone[T, K any](n, p *Node[T, K]) *Node[T, K] {
	if n == nil {
		return nil
	}
	c := &Node[T, K]{v: n.v, k: n.k, p: p, bal: n.bal}
	c.l, c.r = clone(n.l, c), clone(n.r, c)
	return c
}

func (u *base[T, K]) clone() base[T, K] {
	return base[T, K]{root: clone(u.root, nil), sz: u.sz, cfg: u.cfg, bal: u.bal, strict: u.strict}
}
