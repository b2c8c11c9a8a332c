package SortedMap

import (
	"github.com/g-m-twostay/go-index/Maps"
	"github.com/g-m-twostay/go-index/Trees"
	"golang.org/x/exp/constraints"
)

var _ Maps.Map[int, int] = (*SortedMap[int, int])(nil)

// SortedMap keeps its entries ordered by key in an AVLTree. Putting an
// existing key replaces its value in place.
// It isn't safe for concurrent use.
type SortedMap[K, V any] struct {
	t    *Trees.AVLTree[Maps.Pair[K, V], K]
	less func(a, b K) bool
}

// New SortedMap with an ordered key type.
func New[K constraints.Ordered, V any]() *SortedMap[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b })
}

// NewFunc SortedMap whose keys are ordered by less.
func NewFunc[K, V any](less func(a, b K) bool) *SortedMap[K, V] {
	return &SortedMap[K, V]{Trees.NewAVL(Trees.Config[Maps.Pair[K, V], K]{
		KeyOf:           Maps.PairKey[K, V],
		Less:            less,
		OnDuplicateKeys: Trees.Replace,
	}), less}
}

// Put v at k, returning the value it replaced.
// Time: O(log n)
func (u *SortedMap[K, V]) Put(k K, v V) (old V, replaced bool) {
	e := Maps.Pair[K, V]{k, v}
	h := u.t.Hint(e)
	if h != nil && !u.less(k, h.Key()) && !u.less(h.Key(), k) {
		old, replaced = h.Value().Val, true
	}
	u.t.AddAt(e, h)
	return
}

func (u *SortedMap[K, V]) HasKey(k K) bool {
	return u.t.HasKey(k)
}

func (u *SortedMap[K, V]) Get(k K) (v V, ok bool) {
	if n := u.t.FindKey(k); n != nil {
		v, ok = n.Value().Val, true
	}
	return
}

// Remove k. Returns false if k wasn't there.
func (u *SortedMap[K, V]) Remove(k K) bool {
	return u.t.DeleteKey(k) > 0
}

// Take removes and returns the entry with the least key.
func (u *SortedMap[K, V]) Take() (k K, v V, ok bool) {
	if n := u.t.Begin(); n != nil {
		k, v, ok = n.Key(), n.Value().Val, true
		u.t.DeleteAt(n)
	}
	return
}

// Keys in order.
func (u *SortedMap[K, V]) Keys() func() (K, bool) {
	f := u.t.InOrder()
	return func() (k K, ok bool) {
		var e Maps.Pair[K, V]
		if e, ok = f(); ok {
			k = e.Key
		}
		return
	}
}

// Values in key order.
func (u *SortedMap[K, V]) Values() func() (V, bool) {
	f := u.t.InOrder()
	return func() (v V, ok bool) {
		var e Maps.Pair[K, V]
		if e, ok = f(); ok {
			v = e.Val
		}
		return
	}
}

// Pairs in key order.
func (u *SortedMap[K, V]) Pairs() func() (K, V, bool) {
	f := u.t.InOrder()
	return func() (k K, v V, ok bool) {
		var e Maps.Pair[K, V]
		if e, ok = f(); ok {
			k, v = e.Key, e.Val
		}
		return
	}
}

func (u *SortedMap[K, V]) Size() uint {
	return uint(u.t.Size())
}

func (u *SortedMap[K, V]) Clear() {
	u.t.Clear()
}

// Floor returns the entry with the greatest key not greater than k.
func (u *SortedMap[K, V]) Floor(k K) (Maps.Pair[K, V], bool) {
	return pair(u.t.GetGreatestLowerBound(k))
}

// Ceiling returns the entry with the least key not less than k.
func (u *SortedMap[K, V]) Ceiling(k K) (Maps.Pair[K, V], bool) {
	return pair(u.t.GetLeastUpperBound(k))
}

// Between returns the entries with keys within [lo, hi] in order.
func (u *SortedMap[K, V]) Between(lo, hi K) []Maps.Pair[K, V] {
	return u.t.Between(lo, hi).Slice()
}

func pair[K, V any](n *Trees.Node[Maps.Pair[K, V], K]) (p Maps.Pair[K, V], ok bool) {
	if n != nil {
		p, ok = n.Value(), true
	}
	return
}
