package Trees

import (
	"errors"
	"fmt"
)

// ErrNilCompare is the panic value when a tree is created without a comparison function.
var ErrNilCompare = errors.New("Trees: nil comparison function")

// InvalidSliceError is the panic value of FromSorted when the given slice
// isn't in ascending order. Prev and Next are the first adjacent pair out of order.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice not sorted at index %d: %v > %v", e.Index, e.Prev, e.Next)
}
