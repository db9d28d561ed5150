package Trees

// A node in the BSTree
// l and r exclusively own the subtrees; a node is never reachable from two slots.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// smallest returns the leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func smallest[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// largest returns the rightmost node of the subtree rooting at n. n mustn't be nil.
func largest[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooting at n. Recursive.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}
