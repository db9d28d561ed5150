package Trees

import (
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

var demoValues = []int{6, 324, 23, 1, 2, 3, 89, 346, 443, 3134, 13, -33, 4}

func TestBSTree_Demo(t *testing.T) {
	tree := New(demoValues...)
	require.Equal(t, len(demoValues), tree.Size())
	require.Equal(t, []int{-33, 1, 2, 3, 4, 6, 13, 23, 89, 324, 346, 443, 3134}, tree.InOrder())

	require.True(t, tree.Remove(3134))
	require.Equal(t, []int{-33, 1, 2, 3, 4, 6, 13, 23, 89, 324, 346, 443}, tree.InOrder())

	// 6 is the root and has 2 children.
	require.True(t, tree.Remove(6))
	require.Equal(t, []int{-33, 1, 2, 3, 4, 13, 23, 89, 324, 346, 443}, tree.InOrder())

	require.True(t, tree.Remove(346))
	require.Equal(t, []int{-33, 1, 2, 3, 4, 13, 23, 89, 324, 443}, tree.InOrder())
	require.Equal(t, 10, tree.Size())
	require.False(t, tree.Corrupt())
}

func TestBSTree_Empty(t *testing.T) {
	tree := New[int]()
	require.Nil(t, tree.InOrder())
	require.True(t, tree.Empty())
	require.Zero(t, tree.Size())
	require.Zero(t, tree.Height())
	_, ok := tree.Minimum()
	require.False(t, ok)
	_, ok = tree.Maximum()
	require.False(t, ok)
	require.False(t, tree.Remove(1))
	require.Zero(t, tree.Size())
	v, ok := tree.Iterator()()
	require.False(t, ok)
	require.Zero(t, v)
	require.Empty(t, tree.Values())
}

func TestBSTree_RemoveMissing(t *testing.T) {
	tree := New(5, 3, 8)
	before := tree.InOrder()
	require.False(t, tree.Remove(4))
	require.False(t, tree.Remove(100))
	require.Equal(t, 3, tree.Size())
	require.Equal(t, before, tree.InOrder())
	require.False(t, tree.Corrupt())
}

func TestBSTree_RootInsert(t *testing.T) {
	tree := New[int]()
	tree.Insert(42)
	require.Equal(t, 1, tree.Size())
	require.Equal(t, []int{42}, tree.InOrder())
	require.True(t, tree.Remove(42))
	require.Zero(t, tree.Size())
	require.Nil(t, tree.InOrder())
}

func TestBSTree_Duplicates(t *testing.T) {
	tree := New(5, 5, 3, 5, 7, 5)
	require.Equal(t, []int{3, 5, 5, 5, 5, 7}, tree.InOrder())
	require.Equal(t, 4, tree.Count(5))
	// equal values go left, so the second 5 is the left child of the root.
	require.Equal(t, 5, tree.root.l.v)

	require.True(t, tree.Remove(5))
	require.Equal(t, 3, tree.Count(5))
	require.Equal(t, []int{3, 5, 5, 5, 7}, tree.InOrder())
	for range 3 {
		require.True(t, tree.Remove(5))
	}
	require.False(t, tree.Remove(5))
	require.Equal(t, []int{3, 7}, tree.InOrder())
	require.Equal(t, 2, tree.Size())
	require.False(t, tree.Corrupt())
}

func TestBSTree_RemoveTwoChildrenWithEqualSuccessors(t *testing.T) {
	tree := New(1, 0, 5, 5, 7)
	require.True(t, tree.Remove(1))
	require.Equal(t, []int{0, 5, 5, 7}, tree.InOrder())
	require.Equal(t, 2, tree.Count(5))
	require.False(t, tree.Corrupt())
	require.True(t, tree.Remove(5))
	require.True(t, tree.Remove(5))
	require.False(t, tree.Has(5))
	require.Equal(t, []int{0, 7}, tree.InOrder())
}

func TestBSTree_Shape(t *testing.T) {
	require.Equal(t, 5, New(1, 2, 3, 4, 5).Height())
	require.Equal(t, 5, New(5, 4, 3, 2, 1).Height())
	require.Equal(t, 3, New(4, 2, 6, 1, 3, 5, 7).Height())
}

func TestBSTree_MinMaxHas(t *testing.T) {
	tree := New(demoValues...)
	v, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, -33, v)
	v, ok = tree.Maximum()
	require.True(t, ok)
	require.Equal(t, 3134, v)
	for _, v := range demoValues {
		require.True(t, tree.Has(v))
	}
	require.False(t, tree.Has(5))
}

func TestBSTree_AscendStop(t *testing.T) {
	tree := New(demoValues...)
	var s []int
	tree.Ascend(func(v int) bool {
		s = append(s, v)
		return len(s) < 4
	})
	require.Equal(t, []int{-33, 1, 2, 3}, s)
}

func TestBSTree_Iterator(t *testing.T) {
	tree := New(demoValues...)
	var s []int
	for f, v, ok := tree.Iterator(), 0, true; ok; {
		if v, ok = f(); ok {
			s = append(s, v)
		}
	}
	require.Equal(t, tree.InOrder(), s)
}

type version struct {
	major, minor int
}

func (u version) Compare(o version) int {
	if u.major != o.major {
		return u.major - o.major
	}
	return u.minor - o.minor
}

func TestBSTree_Comparators(t *testing.T) {
	tree := NewComparable(version{1, 2}, version{0, 9}, version{1, 0})
	require.Equal(t, []version{{0, 9}, {1, 0}, {1, 2}}, tree.InOrder())

	rev := NewFunc(func(a, b string) int { return strings.Compare(b, a) }, "b", "c", "a")
	require.Equal(t, []string{"c", "b", "a"}, rev.InOrder())

	gods := NewWith[string](utils.StringComparator, "pear", "apple", "fig")
	require.Equal(t, []string{"apple", "fig", "pear"}, gods.InOrder())
	require.Equal(t, []interface{}{"apple", "fig", "pear"}, gods.Values())

	require.PanicsWithValue(t, ErrNilCompare, func() { NewFunc[int](nil) })
}

func TestBSTree_FromSorted(t *testing.T) {
	s := []int{1, 2, 2, 3, 5, 8, 13, 21, 34}
	tree := FromSorted(func(a, b int) int { return a - b }, s, true)
	require.Equal(t, s, tree.InOrder())
	require.Equal(t, len(s), tree.Size())
	require.Equal(t, 4, tree.Height())
	require.False(t, tree.Corrupt())
	tree.Insert(2)
	require.Equal(t, 3, tree.Count(2))
	require.True(t, tree.Remove(8))
	require.True(t, slices.IsSorted(tree.InOrder()))

	require.PanicsWithValue(t, InvalidSliceError{2, 3, 2}, func() {
		FromSorted(func(a, b int) int { return a - b }, []int{1, 3, 2}, true)
	})
	require.Contains(t, InvalidSliceError{2, 3, 2}.Error(), "index 2: 3 > 2")
}

func TestBSTree_Clear(t *testing.T) {
	tree := New(3, 1, 2)
	tree.Clear()
	require.True(t, tree.Empty())
	require.Nil(t, tree.InOrder())
	tree.Insert(9)
	require.Equal(t, []int{9}, tree.InOrder())
}

func TestBSTree_String(t *testing.T) {
	tree := New(2, 1, 3)
	require.Equal(t, "BSTree\n│   ┌── 3\n└── 2\n    └── 1\n", tree.String())
	require.Equal(t, "BSTree\n", New[int]().String())
}
