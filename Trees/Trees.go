package Trees

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Equal elements are kept as distinct nodes, so the tree is a multiset.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Duplicates are always accepted.
	Insert(v T)
	//Remove one occurrence of v from the Tree. Returning true if an
	//element was removed, false if v isn't in the tree.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Count of elements equal to v.
	Count(v T) int
	//Size of the tree, the number of nodes.
	Size() int
	//Height of the tree. 0 when empty.
	Height() int
	//InOrder returns all elements in ascending order, or nil when the tree
	//is empty. The returned slice is a snapshot owned by the caller.
	InOrder() []T
	//Ascend calls f for each element in ascending order until f returns false.
	//The tree must not be modified from within f.
	Ascend(f func(T) bool)
	//Iterator returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	Iterator() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of its subtrees or the size counter
	//disagrees with the number of nodes.
	Corrupt() bool
}

// Comparable is implemented by types that order themselves.
// a.Compare(b) is negative when a<b, 0 when a==b and positive when a>b.
type Comparable[T any] interface {
	Compare(T) int
}
