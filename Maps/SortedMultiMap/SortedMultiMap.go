package SortedMultiMap

import (
	"reflect"

	"github.com/g-m-twostay/go-index/Maps"
	"github.com/g-m-twostay/go-index/Trees"
	"golang.org/x/exp/constraints"
)

// SortedMultiMap maps each key to any number of values, ordered by key. The
// values of one key are kept in no particular order. Adding a value already
// present at a key is resolved by onDup, see New.
// It isn't safe for concurrent use.
type SortedMultiMap[K, V any] struct {
	t *Trees.AVLTree[Maps.Pair[K, V], K]
}

// New SortedMultiMap with an ordered key type and values compared with
// reflect.DeepEqual. onDup tells what Add does with a value already
// present at the key: Trees.Allow keeps both, Trees.Ignore drops the new one,
// Trees.Replace overwrites, Trees.Error makes Add fail.
func New[K constraints.Ordered, V any](onDup Trees.Resolution) *SortedMultiMap[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a < b }, func(a, b V) bool { return reflect.DeepEqual(a, b) }, onDup)
}

// NewFunc SortedMultiMap ordered by less with values compared by eq.
func NewFunc[K, V any](less func(a, b K) bool, eq func(a, b V) bool, onDup Trees.Resolution) *SortedMultiMap[K, V] {
	return &SortedMultiMap[K, V]{Trees.NewAVL(Trees.Config[Maps.Pair[K, V], K]{
		KeyOf:               Maps.PairKey[K, V],
		Less:                less,
		Equal:               func(a, b Maps.Pair[K, V]) bool { return eq(a.Val, b.Val) },
		OnDuplicateKeys:     Trees.Allow,
		OnDuplicateElements: onDup,
	})}
}

// Add v at k. Returns whether v is stored after the call, and a
// *Trees.DuplicateElementError under Trees.Error.
func (u *SortedMultiMap[K, V]) Add(k K, v V) (bool, error) {
	_, in, err := u.t.Add(Maps.Pair[K, V]{k, v})
	return in, err
}

// Get all values of k.
func (u *SortedMultiMap[K, V]) Get(k K) []V {
	r := u.t.EqualKeys(k)
	vs := make([]V, 0, r.Size())
	for e := range r.Values() {
		vs = append(vs, e.Val)
	}
	return vs
}

func (u *SortedMultiMap[K, V]) Has(k K, v V) bool {
	return u.t.Has(Maps.Pair[K, V]{k, v})
}

func (u *SortedMultiMap[K, V]) HasKey(k K) bool {
	return u.t.HasKey(k)
}

// Remove one occurrence of v at k. Returns false if there's none.
func (u *SortedMultiMap[K, V]) Remove(k K, v V) bool {
	return u.t.Delete(Maps.Pair[K, V]{k, v})
}

// RemoveAll occurrences of v at k, returning how many were removed.
func (u *SortedMultiMap[K, V]) RemoveAll(k K, v V) int {
	return u.t.DeleteAll(Maps.Pair[K, V]{k, v})
}

// RemoveKey and all its values, returning how many values were removed.
func (u *SortedMultiMap[K, V]) RemoveKey(k K) int {
	return u.t.DeleteKey(k)
}

// Count of values at k.
func (u *SortedMultiMap[K, V]) Count(k K) int {
	return u.t.EqualKeys(k).Size()
}

// Size is the total number of values.
func (u *SortedMultiMap[K, V]) Size() uint {
	return uint(u.t.Size())
}

// Range calls f on every entry in key order until f returns false.
func (u *SortedMultiMap[K, V]) Range(f func(K, V) bool) {
	for e := range u.t.All() {
		if !f(e.Key, e.Val) {
			return
		}
	}
}

func (u *SortedMultiMap[K, V]) Clear() {
	u.t.Clear()
}
