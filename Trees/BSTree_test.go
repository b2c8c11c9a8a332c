package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func TestBSTree_Add(t *testing.T) {
	tree := NewOrderedBST[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if _, c, err := tree.Add(b); err != nil || c == in {
			t.Errorf("wrong insertion of key %v: %v, %v", b, c, err)
		}
		content[b] = struct{}{}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if n := tree.FindKey(k); n == nil || n.Value() != k {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := slices.Collect(tree.All())
	if !slices.IsSorted(s) || len(s) != len(content) {
		t.Errorf("in-order traversal isn't sorted")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestBSTree_Del(t *testing.T) {
	tree := NewOrderedBST[int]()
	content := make(map[int]struct{})
	if tree.Delete(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Add(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Delete(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Delete(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestBSTree_RoundTrip(t *testing.T) {
	for range 20 {
		perm := rg.Perm(200)
		tree, err := BuildBST(OrderedConfig[int](), perm...)
		if err != nil {
			t.Fatal(err)
		}
		for _, i := range rg.Perm(200) {
			if !tree.Delete(i) {
				t.Fatalf("failed to delete key %v", i)
			}
		}
		if tree.Size() != 0 || tree.Root() != nil {
			t.Fatalf("tree isn't empty after deleting everything")
		}
	}
}

// equal keys form a chain starting at FindKey, so the Range knows its size.
func TestBSTree_StrictEqualKeys(t *testing.T) {
	tree := NewBST(itemConfig(Allow, Allow))
	counts := make(map[int]int)
	for i := range tAddN {
		k := rg.Intn(50)
		tree.Add(item{k, string(rune('a' + i%26))})
		counts[k]++
		if i%7 == 0 {
			k := rg.Intn(50)
			if n := tree.FindKey(k); n != nil {
				tree.DeleteAt(n)
				counts[k]--
			}
		}
	}
	for k, c := range counts {
		r := tree.EqualKeys(k)
		if c > 0 && *r.sz != c {
			t.Errorf("range of key %d was created with size %d, want %d", k, *r.sz, c)
		}
		if r.Size() != c {
			t.Errorf("range of key %d has size %d, want %d", k, r.Size(), c)
		}
		if c > 0 && r.Front() != tree.FindKey(k) {
			t.Errorf("range of key %d doesn't start at FindKey", k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestBSTree_DeleteAtRelocates(t *testing.T) {
	tree := NewOrderedBST[int]()
	n2, _, _ := tree.Add(2)
	tree.Add(1)
	n3, _, _ := tree.Add(3)
	tree.DeleteAt(n2)
	if tree.Size() != 2 || n2.Value() != 3 || tree.Root() != n2 {
		t.Errorf("root node should now hold 3, holds %v", n2.Value())
	}
	if tree.Has(2) {
		t.Errorf("2 wasn't deleted")
	}
	defer func() {
		var pe PreconditionError
		if r := recover(); r == nil {
			t.Errorf("deleting an unlinked node didn't panic")
		} else if pe, _ = r.(PreconditionError); pe.Op != "delete" {
			t.Errorf("unexpected panic %v", r)
		}
	}()
	tree.DeleteAt(n3)
}

func TestBSTree_Policies(t *testing.T) {
	type tc struct {
		keys, elems Resolution
		add         []item
		wantSize    int
		wantErr     error
		want        []item
	}
	var keyErr *DuplicateKeyError[int]
	var elemErr *DuplicateElementError[item]
	for name, c := range map[string]tc{
		"key error":      {Error, Allow, []item{{1, "a"}, {1, "b"}}, 1, keyErr, []item{{1, "a"}}},
		"key replace":    {Replace, Allow, []item{{1, "a"}, {1, "b"}}, 1, nil, []item{{1, "b"}}},
		"key ignore":     {Ignore, Allow, []item{{1, "a"}, {1, "b"}}, 1, nil, []item{{1, "a"}}},
		"element ignore": {Allow, Ignore, []item{{1, "a"}, {1, "b"}, {1, "a"}}, 2, nil, []item{{1, "a"}, {1, "b"}}},
		"element error":  {Allow, Error, []item{{1, "a"}, {1, "b"}, {1, "a"}}, 2, elemErr, []item{{1, "a"}, {1, "b"}}},
		"element allow":  {Allow, Allow, []item{{1, "a"}, {1, "b"}, {1, "a"}}, 3, nil, []item{{1, "a"}, {1, "b"}, {1, "a"}}},
	} {
		t.Run(name, func(t *testing.T) {
			tree := NewBST(itemConfig(c.keys, c.elems))
			var err error
			for _, v := range c.add {
				if _, _, e := tree.Add(v); e != nil {
					err = e
				}
			}
			switch c.wantErr.(type) {
			case nil:
				if err != nil {
					t.Errorf("unexpected error %v", err)
				}
			case *DuplicateKeyError[int]:
				if !errors.As(err, &keyErr) || keyErr.Key != 1 {
					t.Errorf("want duplicate key error, got %v", err)
				}
			case *DuplicateElementError[item]:
				if !errors.As(err, &elemErr) || elemErr.Element != (item{1, "a"}) {
					t.Errorf("want duplicate element error, got %v", err)
				}
			}
			if tree.Size() != c.wantSize {
				t.Errorf("size is %d, want %d", tree.Size(), c.wantSize)
			}
			if got := slices.Collect(tree.All()); !slices.Equal(got, c.want) {
				t.Errorf("content is %v, want %v", got, c.want)
			}
		})
	}
}

func TestBSTree_ReplaceElement(t *testing.T) {
	type rec struct {
		k, n int
		name string
	}
	tree := NewBST(Config[rec, int]{
		KeyOf:               func(v rec) int { return v.k },
		Less:                func(a, b int) bool { return a < b },
		Equal:               func(a, b rec) bool { return a.name == b.name },
		OnDuplicateElements: Replace,
	})
	tree.Add(rec{1, 0, "x"})
	tree.Add(rec{1, 0, "y"})
	n, in, err := tree.Add(rec{1, 7, "x"})
	if err != nil || !in || n.Value().n != 7 {
		t.Errorf("element wasn't replaced: %v %v %v", n.Value(), in, err)
	}
	if tree.Size() != 2 {
		t.Errorf("size is %d, want 2", tree.Size())
	}
	if !tree.Has(rec{1, 100, "y"}) || tree.Has(rec{1, 0, "z"}) {
		t.Errorf("Has doesn't use Equal")
	}
}

func TestBSTree_Hint(t *testing.T) {
	tree := NewOrderedBST[int]()
	if tree.Hint(3) != nil {
		t.Errorf("empty tree has a hint")
	}
	tree.Add(5)
	tree.Add(2)
	h := tree.Hint(3)
	if h == nil || h.Key() != 2 {
		t.Fatalf("hint of 3 should be 2")
	}
	n, in, err := tree.AddAt(3, h)
	if err != nil || !in || n.Parent() != h || h.Right() != n {
		t.Errorf("3 wasn't placed under its hint")
	}
	if tree.Hint(5) != tree.Root() {
		t.Errorf("hint of an existing key should be its node")
	}
}

func TestBSTree_Clone(t *testing.T) {
	tree, _ := BuildBST(OrderedConfig[int](), rg.Perm(100)...)
	c := tree.Clone()
	for i := range 50 {
		c.Delete(i)
	}
	if tree.Size() != 100 || c.Size() != 50 {
		t.Errorf("sizes are %d,%d want 100,50", tree.Size(), c.Size())
	}
	for n := range c.ToRange().Cursors() {
		if tree.FindKey(n.Key()) == n {
			t.Errorf("clone shares node %d", n.Key())
		}
	}
	if tree.Check() != nil || c.Check() != nil {
		t.Errorf("corrupt after clone")
	}
}

func TestBSTree_StaleHint(t *testing.T) {
	tree, _ := BuildBST(OrderedConfig[int](), 5, 2)
	h := tree.Hint(3)
	tree.Add(3)
	func() {
		defer func() {
			if r := recover(); r != (PreconditionError{"add", "invalid hint"}) {
				t.Errorf("stale hint recovered %v", r)
			}
		}()
		tree.AddAt(3, h)
	}()
	if tree.Size() != 3 || tree.String() != "[2 3 5]" || tree.Corrupt() {
		t.Errorf("tree changed by a rejected AddAt: %s", tree)
	}
}

// lenientBalancer accepts any balance factor.
type lenientBalancer struct {
	noopBalancer[int, int]
}

func (lenientBalancer) check(*Node[int, int], int, int) error {
	return nil
}

func TestBSTree_CheckBalance(t *testing.T) {
	tree, _ := BuildBST(OrderedConfig[int](), 2, 1, 3)
	tree.Root().bal = 1
	if err := tree.Check(); err == nil {
		t.Errorf("balance factor in a BSTree wasn't reported")
	}
	tree.bal = lenientBalancer{}
	if err := tree.Check(); err != nil {
		t.Errorf("balancer's own check wasn't used: %v", err)
	}
}
