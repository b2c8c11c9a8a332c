package SortedSet

import (
	"github.com/g-m-twostay/go-index/Sets"
	"github.com/g-m-twostay/go-index/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.OrderedSet[int] = (*SortedSet[int])(nil)

// SortedSet is an ordered set backed by an AVLTree. Elements are their own
// keys; two elements are the same when neither is less than the other.
// It isn't safe for concurrent use.
type SortedSet[E any] struct {
	t *Trees.AVLTree[E, E]
}

// New SortedSet of an ordered type.
func New[E constraints.Ordered]() *SortedSet[E] {
	return NewFunc[E](func(a, b E) bool { return a < b })
}

// NewFunc SortedSet ordered by less.
func NewFunc[E any](less func(a, b E) bool) *SortedSet[E] {
	return &SortedSet[E]{Trees.NewAVL(Trees.Config[E, E]{
		KeyOf:           func(e E) E { return e },
		Less:            less,
		OnDuplicateKeys: Trees.Ignore,
	})}
}

// Put e in the set. Returns false if e was already there.
// Time: O(log n)
func (u *SortedSet[E]) Put(e E) bool {
	_, in, _ := u.t.Add(e)
	return in
}

// Has e.
func (u *SortedSet[E]) Has(e E) bool {
	return u.t.HasKey(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *SortedSet[E]) Remove(e E) bool {
	return u.t.DeleteKey(e) > 0
}

// Size of the set.
func (u *SortedSet[E]) Size() uint {
	return uint(u.t.Size())
}

// Take removes and returns the least element.
func (u *SortedSet[E]) Take() (e E, ok bool) {
	if n := u.t.Begin(); n != nil {
		e, ok = n.Value(), true
		u.t.DeleteAt(n)
	}
	return
}

// Range calls f on every element in order until f returns false.
// The set mustn't be modified by f.
func (u *SortedSet[E]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

func (u *SortedSet[E]) Min() (E, bool) {
	return u.t.Minimum()
}

func (u *SortedSet[E]) Max() (E, bool) {
	return u.t.Maximum()
}

func (u *SortedSet[E]) Floor(e E) (E, bool) {
	return value(u.t.GetGreatestLowerBound(e))
}

func (u *SortedSet[E]) Ceiling(e E) (E, bool) {
	return value(u.t.GetLeastUpperBound(e))
}

func (u *SortedSet[E]) Between(lo, hi E) []E {
	return u.t.Between(lo, hi).Slice()
}

// Clone returns an independent copy of the set.
func (u *SortedSet[E]) Clone() *SortedSet[E] {
	return &SortedSet[E]{u.t.Clone()}
}

func (u *SortedSet[E]) String() string {
	return u.t.String()
}

func value[E any](n *Trees.Node[E, E]) (e E, ok bool) {
	if n != nil {
		e, ok = n.Value(), true
	}
	return
}
