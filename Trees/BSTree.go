package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no balancing. Elements are ordered by
// a three-way comparison function, repeated values are kept as separate nodes.
// Insertion sends a value to the right subtree of a node only when it's
// strictly greater than the node, otherwise to the left. So for every node,
// the left subtree holds values less than or equal to it and the right subtree
// holds values greater than it. The one exception is that removing a node with
// 2 children can leave a value equal to the replacement in its right subtree.
// The height D of the tree depends only on the order of insertions and
// removals: it's log2(n) for random orders and n for sorted inputs.
// BSTree isn't safe for concurrent use, see SyncTree.
type BSTree[T any] struct {
	root *node[T]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp  func(T, T) int
	size int
}

var _ Tree[int] = (*BSTree[int])(nil)
var _ containers.Container = (*BSTree[int])(nil)

// New returns a BSTree ordered by cmp.Compare containing vs, inserted in the given order.
func New[T constraints.Ordered](vs ...T) *BSTree[T] {
	return NewFunc(cmp.Compare[T], vs...)
}

// NewFunc returns a BSTree ordered by c containing vs, inserted in the given order.
// Panics with ErrNilCompare if c is nil.
func NewFunc[T any](c func(T, T) int, vs ...T) *BSTree[T] {
	if c == nil {
		panic(ErrNilCompare)
	}
	u := &BSTree[T]{cmp: c}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// NewWith returns a BSTree ordered by a gods comparator, for example utils.IntComparator.
// c is only ever called with values of type T.
func NewWith[T any](c utils.Comparator, vs ...T) *BSTree[T] {
	if c == nil {
		panic(ErrNilCompare)
	}
	return NewFunc(func(a, b T) int { return c(a, b) }, vs...)
}

// NewComparable returns a BSTree for types that compare themselves.
func NewComparable[T Comparable[T]](vs ...T) *BSTree[T] {
	return NewFunc(func(a, b T) int { return a.Compare(b) }, vs...)
}

// FromSorted builds a BSTree of minimum height from sli in O(n). This is faster than
// repeatedly calling Insert, which would degrade into a chain for sorted input.
// sli must be in ascending order according to c, repeated values are allowed.
// If safe==true, this function will check the order and panic with InvalidSliceError
// if it's broken. Otherwise, it's up to the user to ensure the order(otherwise the tree
// will be corrupt). sli isn't retained.
// Time: O(n). Recursive.
func FromSorted[T any](c func(T, T) int, sli []T, safe bool) *BSTree[T] {
	if c == nil {
		panic(ErrNilCompare)
	}
	if safe {
		for i := 1; i < len(sli); i++ {
			if c(sli[i-1], sli[i]) > 0 {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	return &BSTree[T]{build(sli), c, len(sli)}
}

// insert v into the subtree rooting at *curPtr recursively. curPtr is the
// slot owning the subtree, the new leaf is stored into the first empty slot.
func (u *BSTree[T]) insert(curPtr **node[T], v T) {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v}
	} else if u.cmp(v, cur.v) > 0 {
		u.insert(&cur.r, v)
	} else {
		u.insert(&cur.l, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) {
	u.insert(&u.root, v)
	u.size++
}

// remove one occurrence of v from the subtree rooting at cur recursively. Returns
// the node that now owns the subtree, which the caller stores back into its slot,
// and whether anything was removed.
// A node with 2 children takes the smallest value of its right subtree, and that
// value is then removed from the right subtree instead.
func (u *BSTree[T]) remove(cur *node[T], v T) (*node[T], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if order := u.cmp(v, cur.v); order > 0 {
		cur.r, deleted = u.remove(cur.r, v)
	} else if order < 0 {
		cur.l, deleted = u.remove(cur.l, v)
	} else if cur.r == nil {
		return cur.l, true
	} else if cur.l == nil {
		return cur.r, true
	} else {
		cur.v = smallest(cur.r).v
		cur.r, deleted = u.remove(cur.r, cur.v)
	}
	return cur, deleted
}

// Remove [Tree.Remove]. Recursive.
// The size only changes when an element is actually removed.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	var deleted bool
	if u.root, deleted = u.remove(u.root, v); deleted {
		u.size--
	}
	return deleted
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if order := u.cmp(v, cur.v); order > 0 {
			cur = cur.r
		} else if order < 0 {
			cur = cur.l
		} else {
			return true
		}
	}
	return false
}

func (u *BSTree[T]) count(cur *node[T], v T) int {
	if cur == nil {
		return 0
	}
	if order := u.cmp(v, cur.v); order > 0 {
		return u.count(cur.r, v)
	} else if order < 0 {
		return u.count(cur.l, v)
	}
	return u.count(cur.l, v) + u.count(cur.r, v) + 1
}

// Count [Tree.Count]. Recursive.
// Equal values are normally all in the left subtree of the first equal node,
// but removing a node with 2 children may leave one equal to it in its right subtree,
// so both sides are searched.
// Time: O(D+k) where k is the result.
func (u *BSTree[T]) Count(v T) int {
	return u.count(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (r T, has bool) {
	if u.root != nil {
		r, has = smallest(u.root).v, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (r T, has bool) {
	if u.root != nil {
		r, has = largest(u.root).v, true
	}
	return
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() int {
	return u.size
}

// Empty reports whether the tree has no elements.
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear removes all elements. The comparison function is kept.
func (u *BSTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Height() int {
	return height(u.root)
}

// Ascend [Tree.Ascend]
// Uses a stack of the pending left spine instead of recursion.
// Time: O(n) for a full visit; Space: O(D)
func (u *BSTree[T]) Ascend(f func(T) bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for top, ok := st.Pop(); ok; top, ok = st.Pop() {
		cur := top.(*node[T])
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(n)
func (u *BSTree[T]) InOrder() []T {
	if u.root == nil {
		return nil
	}
	vs := make([]T, 0, u.size)
	u.Ascend(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Values returns the elements in ascending order, for containers.Container.
func (u *BSTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	u.Ascend(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Iterator [Tree.Iterator]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) Iterator() func() (T, bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	return func() (r T, has bool) {
		top, ok := st.Pop()
		if !ok {
			return
		}
		cur := top.(*node[T])
		r, has = cur.v, true
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		return
	}
}

// corrupt checks that every value of the subtree rooting at cur lies within [lo,hi],
// where a nil bound is unbounded. Returns the number of nodes visited and whether
// a violation was found.
func (u *BSTree[T]) corrupt(cur, lo, hi *node[T]) (int, bool) {
	if cur == nil {
		return 0, false
	}
	if (lo != nil && u.cmp(cur.v, lo.v) < 0) || (hi != nil && u.cmp(cur.v, hi.v) > 0) {
		return 0, true
	}
	nl, bad := u.corrupt(cur.l, lo, cur)
	if bad {
		return 0, true
	}
	nr, bad := u.corrupt(cur.r, cur, hi)
	return nl + nr + 1, bad
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	n, bad := u.corrupt(u.root, nil, nil)
	return bad || n != u.size
}

func output[T any](sb *strings.Builder, cur *node[T], prefix string, isTail bool) {
	if cur.r != nil {
		p := prefix + "    "
		if isTail {
			p = prefix + "│   "
		}
		output(sb, cur.r, p, false)
	}
	sb.WriteString(prefix)
	if isTail {
		sb.WriteString("└── ")
	} else {
		sb.WriteString("┌── ")
	}
	fmt.Fprintf(sb, "%v\n", cur.v)
	if cur.l != nil {
		p := prefix + "│   "
		if isTail {
			p = prefix + "    "
		}
		output(sb, cur.l, p, true)
	}
}

// String draws the tree sideways, the right subtree above each node.
func (u *BSTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("BSTree\n")
	if u.root != nil {
		output(&sb, u.root, "", true)
	}
	return sb.String()
}
