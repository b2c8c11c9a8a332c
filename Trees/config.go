package Trees

import (
	"reflect"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Resolution decides what Add does when it meets an existing equal key or
// an existing equal element.
type Resolution byte

const (
	// Allow the new element to be stored next to the existing one.
	Allow Resolution = iota
	// Error makes Add return a *DuplicateKeyError or *DuplicateElementError.
	Error
	// Replace the value of the existing node with the new element.
	Replace
	// Ignore the new element.
	Ignore
)

func (r Resolution) String() string {
	switch r {
	case Allow:
		return "allow"
	case Error:
		return "error"
	case Replace:
		return "replace"
	case Ignore:
		return "ignore"
	}
	return "unknown"
}

// Config of a tree. All functions must be pure and must not touch the tree.
//
// OnDuplicateElements is only consulted when OnDuplicateKeys is Allow: an
// element whose key is already present is then compared by Equal against
// every element of that key, and OnDuplicateElements decides the outcome when
// one of them is equal. Any other OnDuplicateKeys mode settles the insertion on
// the key alone.
type Config[T, K any] struct {
	KeyOf               func(T) K         // required.
	Less                func(a, b K) bool // required, strict ordering.
	Equal               func(a, b T) bool // defaults to reflect.DeepEqual.
	OnDuplicateKeys     Resolution
	OnDuplicateElements Resolution
}

// withDefaults fills the unset optional fields and panics when a required one is missing.
func (c Config[T, K]) withDefaults() Config[T, K] {
	if c.KeyOf == nil {
		panic(PreconditionError{"config", "KeyOf is nil"})
	}
	if c.Less == nil {
		panic(PreconditionError{"config", "Less is nil"})
	}
	if c.Equal == nil {
		c.Equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return c
}

// OrderedConfig uses values as their own keys, compared with < and ==. Equal
// elements are ignored, which gives the tree set semantics.
func OrderedConfig[T constraints.Ordered]() Config[T, T] {
	return Config[T, T]{
		KeyOf:               func(v T) T { return v },
		Less:                func(a, b T) bool { return a < b },
		Equal:               func(a, b T) bool { return a == b },
		OnDuplicateKeys:     Allow,
		OnDuplicateElements: Ignore,
	}
}

// LessFromComparator adapts a gods comparator, such as utils.IntComparator, into a Less function.
func LessFromComparator[K any](c utils.Comparator) func(a, b K) bool {
	return func(a, b K) bool {
		return c(a, b) < 0
	}
}
