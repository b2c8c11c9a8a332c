package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() (E, bool)
	Range(func(E) bool)
}

// OrderedSet is a Set that keeps its elements in order.
type OrderedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
	// Floor is the greatest element not greater than e.
	Floor(e E) (E, bool)
	// Ceiling is the least element not less than e.
	Ceiling(e E) (E, bool)
	// Between returns the elements within [lo, hi] in order.
	Between(lo, hi E) []E
}
