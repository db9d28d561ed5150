package Trees

import "sync"

// SyncTree guards a BSTree with a single RWMutex held for the whole of every
// public operation. Writers take the write lock, everything else the read lock.
type SyncTree[T any] struct {
	l sync.RWMutex
	t *BSTree[T]
}

var _ Tree[int] = (*SyncTree[int])(nil)

// NewSync wraps t. t mustn't be used directly afterward.
func NewSync[T any](t *BSTree[T]) *SyncTree[T] {
	return &SyncTree[T]{t: t}
}

func (u *SyncTree[T]) Insert(v T) {
	u.l.Lock()
	defer u.l.Unlock()
	u.t.Insert(v)
}

func (u *SyncTree[T]) Remove(v T) bool {
	u.l.Lock()
	defer u.l.Unlock()
	return u.t.Remove(v)
}

func (u *SyncTree[T]) Clear() {
	u.l.Lock()
	defer u.l.Unlock()
	u.t.Clear()
}

func (u *SyncTree[T]) Has(v T) bool {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Has(v)
}

func (u *SyncTree[T]) Count(v T) int {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Count(v)
}

func (u *SyncTree[T]) Minimum() (T, bool) {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Minimum()
}

func (u *SyncTree[T]) Maximum() (T, bool) {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Maximum()
}

func (u *SyncTree[T]) Size() int {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Size()
}

func (u *SyncTree[T]) Height() int {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Height()
}

func (u *SyncTree[T]) InOrder() []T {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.InOrder()
}

// Ascend holds the read lock until f returns false or the visit ends, so f
// mustn't call any writing method of u.
func (u *SyncTree[T]) Ascend(f func(T) bool) {
	u.l.RLock()
	defer u.l.RUnlock()
	u.t.Ascend(f)
}

// Iterator iterates over a snapshot taken under the read lock, writers
// aren't blocked while it's in use.
func (u *SyncTree[T]) Iterator() func() (T, bool) {
	vs := u.InOrder()
	i := 0
	return func() (r T, has bool) {
		if i < len(vs) {
			r, has = vs[i], true
			i++
		}
		return
	}
}

func (u *SyncTree[T]) Corrupt() bool {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Corrupt()
}
