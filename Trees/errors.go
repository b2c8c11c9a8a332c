package Trees

import "fmt"

// DuplicateKeyError is returned by Add when the key is already present and
// Config.OnDuplicateKeys is Error.
type DuplicateKeyError[K any] struct {
	Key K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key %v", e.Key)
}

// DuplicateElementError is returned by Add when an equal element is already
// present and Config.OnDuplicateElements is Error.
type DuplicateElementError[T any] struct {
	Element T
}

func (e *DuplicateElementError[T]) Error() string {
	return fmt.Sprintf("duplicate element %v", e.Element)
}

// PreconditionError is the panic value for calls that break the documented
// preconditions, e.g. MustMinimum on an empty tree.
type PreconditionError struct {
	Op, Msg string
}

func (e PreconditionError) Error() string {
	return e.Op + ": " + e.Msg
}

// CorruptError describes the first broken invariant found by Check.
type CorruptError struct {
	Key any
	Msg string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt tree at key %v: %s", e.Key, e.Msg)
}
