package Maps

// Map from keys to values. The iterator closures returned by Keys, Values
// and Pairs act like "Next()" of iterators: the last return value tells
// whether the others are meaningful, and stays false once it became false.
// The Map mustn't be modified while such a closure is in use.
type Map[K, V any] interface {
	// Put returns the previous value of k, if any.
	Put(K, V) (V, bool)
	HasKey(K) bool
	Get(K) (V, bool)
	Remove(K) bool
	// Take removes and returns some entry.
	Take() (K, V, bool)
	Keys() func() (K, bool)
	Values() func() (V, bool)
	Pairs() func() (K, V, bool)
	Size() uint
	Clear()
}

// Pair is an entry of a Map.
type Pair[K, V any] struct {
	Key K
	Val V
}

// PairKey extracts the key of a Pair.
func PairKey[K, V any](p Pair[K, V]) K {
	return p.Key
}
