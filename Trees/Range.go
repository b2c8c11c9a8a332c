package Trees

import "iter"

// Range is a view over the nodes between min and max inclusive, in in-order
// (or reverse in-order when reversed). It stores node identities only: the
// tree must not be modified while a Range is in use, otherwise traversals
// may skip or repeat nodes and Size may be stale.
// The zero value is an empty Range. Copies of a Range, such as the one
// returned by Reverse, share the memoized size.
type Range[T, K any] struct {
	min, max *Node[T, K]
	reversed bool
	sz       *int // -1 when not yet known.
}

// makeRange with sz<0 when the size isn't known in advance.
func makeRange[T, K any](min, max *Node[T, K], sz int) Range[T, K] {
	if min == nil || max == nil {
		return Range[T, K]{}
	}
	return Range[T, K]{min: min, max: max, sz: &sz}
}

// Empty reports whether the Range covers no node.
func (u Range[T, K]) Empty() bool {
	return u.min == nil || u.max == nil
}

// Front is the first node yielded by Cursors, nil if empty.
func (u Range[T, K]) Front() *Node[T, K] {
	if u.reversed {
		return u.max
	}
	return u.min
}

// Back is the last node yielded by Cursors, nil if empty.
func (u Range[T, K]) Back() *Node[T, K] {
	if u.reversed {
		return u.min
	}
	return u.max
}

// Reverse returns the same Range with the opposite direction.
// Time: O(1)
func (u Range[T, K]) Reverse() Range[T, K] {
	u.reversed = !u.reversed
	return u
}

// Reversed reports the direction of the Range.
func (u Range[T, K]) Reversed() bool {
	return u.reversed
}

// Cursors yields every node of the Range. Each call to the returned sequence
// starts a fresh traversal from the boundary.
func (u Range[T, K]) Cursors() iter.Seq[*Node[T, K]] {
	return func(yield func(*Node[T, K]) bool) {
		if u.Empty() {
			return
		}
		if u.reversed {
			for cur := u.max; cur != nil; cur = cur.Prev() {
				if !yield(cur) || cur == u.min {
					return
				}
			}
		} else {
			for cur := u.min; cur != nil; cur = cur.Next() {
				if !yield(cur) || cur == u.max {
					return
				}
			}
		}
	}
}

// Values yields the value of every node of the Range.
func (u Range[T, K]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range u.Cursors() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Slice collects the values of the Range. The result doesn't share anything
// with the tree, so it stays valid when the tree is modified.
func (u Range[T, K]) Slice() []T {
	c := 0
	if u.sz != nil {
		c = max(*u.sz, 0)
	}
	s := make([]T, 0, c)
	for v := range u.Values() {
		s = append(s, v)
	}
	return s
}

// Size of the Range. When the size wasn't known when the Range was created it
// is counted on the first call and remembered.
// Time: O(n) on the first call, O(1) afterwards.
func (u Range[T, K]) Size() int {
	if u.Empty() {
		return 0
	}
	if *u.sz < 0 {
		c := 0
		for range u.Cursors() {
			c++
		}
		*u.sz = c
	}
	return *u.sz
}
