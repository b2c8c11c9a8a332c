package Trees

import (
	"iter"

	"github.com/emirpasic/gods/containers"
)

// Index is an ordered collection of elements of type T, ordered by keys of
// type K that are extracted from the elements. Several elements may share a
// key, see Config for how duplicates are resolved.
// Methods that return a *Node return nil when there's no such node; methods
// that return (T, bool) use the bool to tell whether T is defined.
// Implementations are not safe for concurrent use. Ranges, cursors and
// iterators are views over the live tree and become undefined once the tree
// is modified, except for the slices returned by Values and Range.Slice.
type Index[T, K any] interface {
	containers.Container
	//Add v to the Index. See Config for the handling of duplicates.
	Add(v T) (*Node[T, K], bool, error)
	//Hint computes the insertion point of v for AddAt.
	Hint(v T) *Node[T, K]
	//AddAt is Add with the insertion point computed beforehand by Hint.
	AddAt(v T, hint *Node[T, K]) (*Node[T, K], bool, error)
	//Has an element with v's key that is Equal to v.
	Has(v T) bool
	//HasKey k.
	HasKey(k K) bool
	//FindKey returns any node with key k.
	FindKey(k K) *Node[T, K]
	//GetNearest returns the node with key k or a node adjacent to k.
	GetNearest(k K) *Node[T, K]
	//GetGreatestLowerBound returns the last node with key <= k.
	GetGreatestLowerBound(k K) *Node[T, K]
	//GetLeastUpperBound returns the first node with key >= k.
	GetLeastUpperBound(k K) *Node[T, K]
	//Predecessor returns the last node with key < k.
	Predecessor(k K) *Node[T, K]
	//Successor returns the first node with key > k.
	Successor(k K) *Node[T, K]
	//EqualKeys returns the Range of all nodes with key k.
	EqualKeys(k K) Range[T, K]
	//Between returns the Range of all nodes with key in [lo, hi].
	Between(lo, hi K) Range[T, K]
	//Delete one element Equal to v.
	Delete(v T) bool
	//DeleteAll elements Equal to v, returning the count.
	DeleteAll(v T) int
	//DeleteKey deletes all elements with key k, returning the count.
	DeleteKey(k K) int
	//DeleteAt removes the element held by a node of the Index.
	DeleteAt(n *Node[T, K])
	//Begin is the first node.
	Begin() *Node[T, K]
	//End is the last node.
	End() *Node[T, K]
	//ToRange over the whole Index.
	ToRange() Range[T, K]
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//All elements in key order.
	All() iter.Seq[T]
	//Backward is All in reverse.
	Backward() iter.Seq[T]
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in key order: val, valid=f(). val is meaningful only
	//if valid is true; valid can't turn true after it first became false.
	InOrder() func() (T, bool)
	//Check the structure, returning a *CorruptError for the first broken invariant.
	Check() error
	//Corrupt is Check()!=nil.
	Corrupt() bool
}

var (
	_ Index[int, int] = (*BSTree[int, int])(nil)
	_ Index[int, int] = (*AVLTree[int, int])(nil)
)
