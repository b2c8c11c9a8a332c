package Trees

import "golang.org/x/exp/constraints"

// BSTree is an unbalanced binary search tree. Its height depends on the
// insertion order: D is O(log n) on random input and O(n) on sorted input.
// Elements with equal keys always form a successor chain that starts at the
// node returned by FindKey, so EqualKeys costs O(D+k) for k elements and the
// returned Range knows its size.
type BSTree[T, K any] struct {
	base[T, K]
}

// NewBST returns an empty BSTree. It panics with a PreconditionError when
// cfg.KeyOf or cfg.Less is nil.
func NewBST[T, K any](cfg Config[T, K]) *BSTree[T, K] {
	return &BSTree[T, K]{base[T, K]{cfg: cfg.withDefaults(), bal: noopBalancer[T, K]{}, strict: true}}
}

// NewOrderedBST is NewBST with OrderedConfig.
func NewOrderedBST[T constraints.Ordered]() *BSTree[T, T] {
	return NewBST(OrderedConfig[T]())
}

// BuildBST adds every element of vs in order to a new BSTree. It stops at
// the first error, which is returned along with the partially built tree.
func BuildBST[T, K any](cfg Config[T, K], vs ...T) (*BSTree[T, K], error) {
	u := NewBST(cfg)
	for _, v := range vs {
		if _, _, err := u.Add(v); err != nil {
			return u, err
		}
	}
	return u, nil
}

// Clone returns a deep copy of u sharing no node with u.
// Time: O(n). Recursive.
func (u *BSTree[T, K]) Clone() *BSTree[T, K] {
	return &BSTree[T, K]{u.clone()}
}
