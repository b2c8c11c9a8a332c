package Trees

// Node is a single element of a tree together with its navigation links.
// A *Node handed out by a tree works as a cursor: it can be passed back to
// DeleteAt, or stepped with Next and Prev.
// A Node designates a position in the tree, not a value. Deleting a different
// element may copy that element's in-order successor into this node, after
// which the node holds the successor's value.
type Node[T, K any] struct {
	v       T
	k       K
	p, l, r *Node[T, K] // p is the parent, nil at the root.
	bal     int8        // height(r)-height(l); always 0 in a BSTree.
}

// Value stored at the node.
func (n *Node[T, K]) Value() T {
	return n.v
}

// Key of the stored value, as computed by the tree's Config.KeyOf.
func (n *Node[T, K]) Key() K {
	return n.k
}

// Parent node, nil at the root.
func (n *Node[T, K]) Parent() *Node[T, K] {
	return n.p
}

func (n *Node[T, K]) Left() *Node[T, K] {
	return n.l
}

func (n *Node[T, K]) Right() *Node[T, K] {
	return n.r
}

// Balance factor of the node. Always within [-1, 1] in an AVLTree.
func (n *Node[T, K]) Balance() int {
	return int(n.bal)
}

// Depth is the number of edges between the node and the root.
// Time: O(D)
func (n *Node[T, K]) Depth() uint {
	d := uint(0)
	for c := n.p; c != nil; c = c.p {
		d++
	}
	return d
}

// Leftmost node of the subtree rooted at n.
// Time: O(D); Space: O(1)
func (n *Node[T, K]) Leftmost() *Node[T, K] {
	if n == nil {
		return nil
	}
	for n.l != nil {
		n = n.l
	}
	return n
}

// Rightmost node of the subtree rooted at n.
// Time: O(D); Space: O(1)
func (n *Node[T, K]) Rightmost() *Node[T, K] {
	if n == nil {
		return nil
	}
	for n.r != nil {
		n = n.r
	}
	return n
}

// Next node in in-order, nil if n is the last node.
// Time: O(D), amortized O(1) over a full traversal; Space: O(1)
func (n *Node[T, K]) Next() *Node[T, K] {
	if n.r != nil {
		return n.r.Leftmost()
	}
	for c := n; c.p != nil; c = c.p {
		if c.p.l == c {
			return c.p
		}
	}
	return nil
}

// Prev node in in-order, nil if n is the first node.
// Time: O(D), amortized O(1) over a full traversal; Space: O(1)
func (n *Node[T, K]) Prev() *Node[T, K] {
	if n.l != nil {
		return n.l.Rightmost()
	}
	for c := n; c.p != nil; c = c.p {
		if c.p.r == c {
			return c.p
		}
	}
	return nil
}

// Sibling is the other child of n's parent.
func (n *Node[T, K]) Sibling() *Node[T, K] {
	if n.p == nil {
		return nil
	} else if n.p.l == n {
		return n.p.r
	}
	return n.p.l
}

// Uncle is the sibling of n's parent.
func (n *Node[T, K]) Uncle() *Node[T, K] {
	if n.p == nil {
		return nil
	}
	return n.p.Sibling()
}

// isLeft reports whether n hangs on the left of its parent. n must not be the root.
func (n *Node[T, K]) isLeft() bool {
	return n.p.l == n
}

// replaceChild puts nw where old was: under old's parent, or at *root.
// nw may be nil.
func replaceChild[T, K any](root **Node[T, K], old, nw *Node[T, K]) {
	if p := old.p; p == nil {
		*root = nw
	} else if p.l == old {
		p.l = nw
	} else {
		p.r = nw
	}
	if nw != nil {
		nw.p = old.p
	}
}

// rotateLeft performs a left rotation around n, whose right child becomes the
// subtree root. Balance factors of both nodes are updated in closed form.
// Returns the new subtree root.
// Time: O(1); Space: O(1)
func rotateLeft[T, K any](root **Node[T, K], n *Node[T, K]) *Node[T, K] {
	rc := n.r
	n.r = rc.l
	if rc.l != nil {
		rc.l.p = n
	}
	replaceChild(root, n, rc)
	rc.l = n
	n.p = rc

	n.bal = n.bal - 1 - max(rc.bal, 0)
	rc.bal = rc.bal - 1 + min(n.bal, 0)
	return rc
}

// rotateRight performs a right rotation around n, whose left child becomes the
// subtree root. Balance factors of both nodes are updated in closed form.
// Returns the new subtree root.
// Time: O(1); Space: O(1)
func rotateRight[T, K any](root **Node[T, K], n *Node[T, K]) *Node[T, K] {
	lc := n.l
	n.l = lc.r
	if lc.r != nil {
		lc.r.p = n
	}
	replaceChild(root, n, lc)
	lc.r = n
	n.p = lc

	n.bal = n.bal + 1 - min(lc.bal, 0)
	lc.bal = lc.bal + 1 + max(n.bal, 0)
	return lc
}
