package collections

import (
	"iter"

	"github.com/hupe1980/collections/internal/mem"
)

// ArrayList is a growable, index-addressable sequence stored in one contiguous
// backing slice.
//
// Elements are stored by value. To get reference semantics, store pointers
// (ArrayList[*Point]) and let the caller own the pointees.
//
// Capacity doubles when an append finds the backing slice full, so a sequence
// of N appends costs amortized O(1) each. Insert and Remove shift the tail by
// one slot and cost O(n).
//
// An ArrayList is not safe for concurrent use. Views returned by Get and
// Array alias the backing slice and are invalidated by the next Add, Insert,
// Remove or Destroy.
type ArrayList[T any] struct {
	buf       []T
	length    int
	elemSize  int64
	reserved  int64
	destroyed bool

	opts   options
	logger *Logger
}

// New creates an empty list with room for initialCapacity elements.
//
// It fails with ErrInvalidArgument for a negative capacity and with
// ErrAllocationFailure if the initial storage cannot be reserved.
func New[T any](initialCapacity int, optFns ...Option) (*ArrayList[T], error) {
	const op = "ArrayList.New"

	if initialCapacity < 0 {
		return nil, invalidArgument(op, "negative initial capacity %d", initialCapacity)
	}

	o := applyOptions(optFns)

	l := &ArrayList[T]{
		elemSize: mem.SizeOf[T](),
		opts:     o,
	}
	l.logger = o.logger.WithElemSize(l.elemSize)

	if initialCapacity > o.maxCapacity {
		return nil, l.fail(op, &AllocError{Op: op, Requested: initialCapacity, cause: mem.ErrCapacityExceeded})
	}
	if err := l.reserve(initialCapacity); err != nil {
		return nil, l.fail(op, &AllocError{Op: op, Requested: initialCapacity, cause: err})
	}

	l.buf = make([]T, initialCapacity)
	return l, nil
}

// Get returns a pointer to the element at index. The pointer aliases the
// backing slice and is valid until the next structural mutation.
func (l *ArrayList[T]) Get(index int) (*T, error) {
	const op = "ArrayList.Get"

	if err := l.check(op); err != nil {
		return nil, err
	}
	if err := l.checkIndex(op, index, l.length); err != nil {
		return nil, err
	}
	return &l.buf[index], nil
}

// Value returns a copy of the element at index.
func (l *ArrayList[T]) Value(index int) (T, error) {
	p, err := l.Get(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element at index. It never resizes the list.
func (l *ArrayList[T]) Set(index int, value T) error {
	const op = "ArrayList.Set"

	if err := l.check(op); err != nil {
		return err
	}
	if err := l.checkIndex(op, index, l.length); err != nil {
		return err
	}
	l.buf[index] = value
	return nil
}

// Size returns the number of elements, or ErrInvalidContainer for a nil or
// destroyed list.
func (l *ArrayList[T]) Size() (int, error) {
	if err := l.check("ArrayList.Size"); err != nil {
		return 0, err
	}
	return l.length, nil
}

// Len returns the number of elements. It is 0 for a nil or destroyed list.
func (l *ArrayList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the number of allocated slots. It is 0 for a nil or destroyed list.
func (l *ArrayList[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.buf)
}

// Add appends value, doubling the capacity first if the list is full.
//
// If growth fails the list is left exactly as it was and the returned error
// matches ErrAllocationFailure.
func (l *ArrayList[T]) Add(value T) error {
	const op = "ArrayList.Add"

	if err := l.check(op); err != nil {
		return err
	}
	if err := l.ensureSpare(op); err != nil {
		return err
	}
	l.buf[l.length] = value
	l.length++
	return nil
}

// Insert places value at index and shifts the elements at and after index one
// slot to the right. index == Len() appends.
func (l *ArrayList[T]) Insert(index int, value T) error {
	const op = "ArrayList.Insert"

	if err := l.check(op); err != nil {
		return err
	}
	if err := l.checkIndex(op, index, l.length+1); err != nil {
		return err
	}
	if err := l.ensureSpare(op); err != nil {
		return err
	}

	moved := l.length - index
	mem.ShiftRight(l.buf, index, l.length)
	l.buf[index] = value
	l.length++

	if moved > 0 {
		l.opts.metricsCollector.RecordShift(op, moved)
	}
	return nil
}

// Remove deletes the element at index and shifts the following elements one
// slot to the left. Capacity is kept.
func (l *ArrayList[T]) Remove(index int) error {
	const op = "ArrayList.Remove"

	if err := l.check(op); err != nil {
		return err
	}
	if err := l.checkIndex(op, index, l.length); err != nil {
		return err
	}

	moved := l.length - index - 1
	mem.ShiftLeft(l.buf, index, l.length)
	l.length--

	if moved > 0 {
		l.opts.metricsCollector.RecordShift(op, moved)
	}
	return nil
}

// Array returns the live elements as a slice that aliases the backing storage.
//
// Writes through the slice are visible in the list. The slice's capacity is
// clipped to its length so appending to it never writes into the list's spare
// slots. It is invalidated by the next structural mutation.
func (l *ArrayList[T]) Array() ([]T, error) {
	if err := l.check("ArrayList.Array"); err != nil {
		return nil, err
	}
	return l.buf[:l.length:l.length], nil
}

// All returns an iterator over index/value pairs in ascending order.
// It yields nothing for a nil or destroyed list.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil || l.destroyed {
			return
		}
		for i := 0; i < l.length; i++ {
			if !yield(i, l.buf[i]) {
				return
			}
		}
	}
}

// Destroy releases the backing storage and its memory reservation. Every
// later call on the list reports ErrInvalidContainer.
func (l *ArrayList[T]) Destroy() error {
	const op = "ArrayList.Destroy"

	if err := l.check(op); err != nil {
		return err
	}

	l.opts.controller.ReleaseMemory(l.reserved)
	l.logger.LogDestroy(len(l.buf), l.reserved)

	l.buf = nil
	l.length = 0
	l.reserved = 0
	l.destroyed = true
	return nil
}

func (l *ArrayList[T]) check(op string) error {
	if l == nil {
		return invalidContainer(op)
	}
	if l.destroyed {
		return l.fail(op, invalidContainer(op))
	}
	return nil
}

// checkIndex requires 0 <= index < limit.
func (l *ArrayList[T]) checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return l.fail(op, &IndexError{Op: op, Index: index, Len: l.length})
	}
	return nil
}

func (l *ArrayList[T]) ensureSpare(op string) error {
	if l.length < len(l.buf) {
		return nil
	}
	return l.grow(op)
}

// grow swaps in a larger backing slice. On failure nothing is changed.
func (l *ArrayList[T]) grow(op string) error {
	from := len(l.buf)

	to, err := mem.NextCapacity(from, l.opts.maxCapacity)
	if err != nil {
		return l.growFailed(op, from, from, err)
	}
	if err := l.reserve(to); err != nil {
		return l.growFailed(op, from, to, err)
	}

	l.buf = mem.Grow(l.buf, l.length, to)

	l.opts.metricsCollector.RecordGrow(from, to, nil)
	l.logger.LogGrow(op, from, to, nil)
	return nil
}

func (l *ArrayList[T]) growFailed(op string, from, to int, cause error) error {
	l.opts.metricsCollector.RecordGrow(from, to, cause)
	l.logger.LogGrow(op, from, to, cause)
	return l.fail(op, &AllocError{Op: op, Capacity: from, Requested: to, cause: cause})
}

// reserve accounts for capacity slots against the memory budget.
func (l *ArrayList[T]) reserve(capacity int) error {
	bytes, err := mem.Bytes(l.elemSize, capacity)
	if err != nil {
		return err
	}
	if delta := bytes - l.reserved; delta > 0 {
		if err := l.opts.controller.TryAcquireMemory(delta); err != nil {
			return err
		}
	}
	l.reserved = bytes
	return nil
}

func (l *ArrayList[T]) fail(op string, err error) error {
	l.opts.metricsCollector.RecordError(op, err)
	l.logger.LogError(op, err)
	return err
}
