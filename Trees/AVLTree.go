package Trees

import "golang.org/x/exp/constraints"

// AVLTree is a height balanced binary search tree. Each node keeps the
// height difference of its subtrees within [-1, 1], so D<1.44*log2(n+2).
// Insertion performs at most one (single or double) rotation; deletion may
// rotate at every level on the way up.
// Rotations move elements with equal keys across each other's subtrees, so
// EqualKeys searches both subtrees of the first node found for the group's
// bounds, and the returned Range counts its size lazily.
type AVLTree[T, K any] struct {
	base[T, K]
}

// NewAVL returns an empty AVLTree. It panics with a PreconditionError when
// cfg.KeyOf or cfg.Less is nil.
func NewAVL[T, K any](cfg Config[T, K]) *AVLTree[T, K] {
	return &AVLTree[T, K]{base[T, K]{cfg: cfg.withDefaults(), bal: avlBalancer[T, K]{}}}
}

// NewOrderedAVL is NewAVL with OrderedConfig.
func NewOrderedAVL[T constraints.Ordered]() *AVLTree[T, T] {
	return NewAVL(OrderedConfig[T]())
}

// BuildAVL adds every element of vs in order to a new AVLTree. It stops at
// the first error, which is returned along with the partially built tree.
func BuildAVL[T, K any](cfg Config[T, K], vs ...T) (*AVLTree[T, K], error) {
	u := NewAVL(cfg)
	for _, v := range vs {
		if _, _, err := u.Add(v); err != nil {
			return u, err
		}
	}
	return u, nil
}

// Clone returns a deep copy of u sharing no node with u. Balance factors are
// copied, so the clone has the same shape.
// Time: O(n). Recursive.
func (u *AVLTree[T, K]) Clone() *AVLTree[T, K] {
	return &AVLTree[T, K]{u.clone()}
}

type avlBalancer[T, K any] struct{}

// inserted retraces from the new leaf n. A parent whose balance becomes 0
// didn't grow; one that reaches ±2 is rotated back to its old height. Either
// way nothing above changes.
func (avlBalancer[T, K]) inserted(root **Node[T, K], n *Node[T, K]) {
	for c, p := n, n.p; p != nil; c, p = p, p.p {
		if c == p.l {
			p.bal--
		} else {
			p.bal++
		}
		switch p.bal {
		case 0:
			return
		case -2, 2:
			rebalance(root, p)
			return
		}
	}
}

// removed retraces from p, whose left (or right) subtree got one shorter.
// The retracing stops at the first subtree whose height is unchanged: a node
// whose balance becomes ±1, or a rotation whose new root isn't balanced.
func (avlBalancer[T, K]) removed(root **Node[T, K], p *Node[T, K], left bool) {
	for {
		if left {
			p.bal++
		} else {
			p.bal--
		}
		if p.bal == 2 || p.bal == -2 {
			p = rebalance(root, p)
		}
		if p.bal != 0 || p.p == nil {
			return
		}
		left, p = p.isLeft(), p.p
	}
}

func (avlBalancer[T, K]) check(n *Node[T, K], lh, rh int) error {
	if int(n.bal) != rh-lh {
		return &CorruptError{n.k, "balance factor differs from height difference"}
	}
	if n.bal < -1 || n.bal > 1 {
		return &CorruptError{n.k, "balance factor out of range"}
	}
	return nil
}

// rebalance the subtree at n whose balance is ±2, returning the new subtree root.
// When the heavy child leans the other way a double rotation is done.
func rebalance[T, K any](root **Node[T, K], n *Node[T, K]) *Node[T, K] {
	if n.bal > 0 {
		if n.r.bal < 0 {
			rotateRight(root, n.r)
		}
		return rotateLeft(root, n)
	}
	if n.l.bal > 0 {
		rotateLeft(root, n.l)
	}
	return rotateRight(root, n)
}
