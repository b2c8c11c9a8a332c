package Trees

import (
	"fmt"
	"io"
)

// to control the print routine
type branch byte

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print an ASCII graphic representation of the tree to w, right subtrees on
// top. Each node shows its key, its parent's key and its balance factor.
// Returns the height of the tree. Recursive.
func (u *base[T, K]) Print(w io.Writer) int {
	return printTree(w, u.root, "", rootBranch)
}

func printTree[T, K any](w io.Writer, n *Node[T, K], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	if n.r != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, n.r, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := any(nil)
	if n.p != nil {
		up = n.p.k
	}
	fmt.Fprintf(w, "%v ^%v %+d\n", n.k, up, n.bal)
	ld := 0
	if n.l != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, n.l, prefix+t, leftBranch)
	}
	return max(ld, rd) + 1
}
