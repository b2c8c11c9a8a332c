package Trees

import "github.com/emirpasic/gods/stacks/arraystack"

// Check walks the whole tree and returns a *CorruptError describing the first
// broken invariant, nil if there's none. It checks that children point back
// to their parents, that keys are in order, that the balance factor of every
// node is valid for the tree variant (its height difference within [-1, 1]
// in an AVLTree, 0 in a BSTree), and that Size matches the number of nodes.
// Time: O(n); Space: O(D)
func (u *base[T, K]) Check() error {
	if u.root == nil {
		if u.sz != 0 {
			return &CorruptError{nil, "empty tree with nonzero size"}
		}
		return nil
	}
	if u.root.p != nil {
		return &CorruptError{u.root.k, "root has a parent"}
	}
	cnt := 0
	st := arraystack.New()
	st.Push(u.root)
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T, K])
		cnt++
		for _, c := range [2]*Node[T, K]{cur.l, cur.r} {
			if c == nil {
				continue
			}
			if c.p != cur {
				return &CorruptError{c.k, "parent pointer mismatch"}
			}
			st.Push(c)
		}
	}
	if cnt != u.sz {
		return &CorruptError{u.root.k, "size mismatch"}
	}
	for prev, cur := u.Begin(), u.Begin().Next(); cur != nil; prev, cur = cur, cur.Next() {
		if u.cfg.Less(cur.k, prev.k) {
			return &CorruptError{cur.k, "keys out of order"}
		}
	}
	_, err := u.checkBalance(u.root)
	return err
}

// checkBalance returns the height of the subtree at n. Recursive.
func (u *base[T, K]) checkBalance(n *Node[T, K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := u.checkBalance(n.l)
	if err != nil {
		return 0, err
	}
	rh, err := u.checkBalance(n.r)
	if err != nil {
		return 0, err
	}
	if err = u.bal.check(n, lh, rh); err != nil {
		return 0, err
	}
	return max(lh, rh) + 1, nil
}

// Corrupt [Index.Corrupt]
func (u *base[T, K]) Corrupt() bool {
	return u.Check() != nil
}
