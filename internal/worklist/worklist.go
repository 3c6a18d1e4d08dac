// Package worklist provides a small FIFO queue used by the analyzer's two
// worklists.
//
// Adapted from github.com/cs-au-dk/goat's utils/worklist/worklist.go. The
// analyzer runs strictly single-threaded and cooperatively, with no
// suspension points and nothing to cancel, so the concurrent variants of
// the teacher's Worklist (ProcessConc/AddConc/GetNextConc, guarded by a
// sync.Mutex) are dropped rather than kept unused.
package worklist

// Worklist is a generic FIFO queue with duplicate-suppression left to the
// caller (the analyzer only enqueues a node/definition when a set membership
// check says it isn't already scheduled).
type Worklist[T any] struct {
	list []T
}

// Empty returns a new, empty worklist.
func Empty[T any]() Worklist[T] {
	return Worklist[T]{}
}

// IsEmpty reports whether the worklist has no pending elements.
func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}

// Add appends an element to the worklist.
func (w *Worklist[T]) Add(el T) {
	w.list = append(w.list, el)
}

// GetNext pops and returns the next element in FIFO order.
// Calling GetNext on an empty worklist returns the zero value of T.
func (w *Worklist[T]) GetNext() (ret T) {
	if len(w.list) == 0 {
		return
	}
	next := w.list[0]
	w.list = w.list[1:]
	return next
}
