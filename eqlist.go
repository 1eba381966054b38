package collections

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// EqualFunc reports whether a stored element matches a query value.
// It is always called as eq(stored, query).
type EqualFunc[T any] func(stored, query T) bool

// Equal returns an EqualFunc that compares with ==.
func Equal[T comparable]() EqualFunc[T] {
	return func(stored, query T) bool { return stored == query }
}

// Equalable is implemented by types that define their own equality.
type Equalable[T any] interface {
	Equal(other T) bool
}

// EqualMethod returns an EqualFunc that calls stored.Equal(query).
func EqualMethod[T Equalable[T]]() EqualFunc[T] {
	return func(stored, query T) bool { return stored.Equal(query) }
}

// EqList is an ArrayList with an equality predicate for value-based search
// and removal.
//
// Structural operations forward to the owned ArrayList and keep its contracts.
// Value-based operations scan linearly.
type EqList[T any] struct {
	list *ArrayList[T]
	eq   EqualFunc[T]
}

// NewEqList creates an empty EqList. It fails with ErrInvalidArgument if eq is
// nil and otherwise with whatever New reports.
func NewEqList[T any](eq EqualFunc[T], initialCapacity int, optFns ...Option) (*EqList[T], error) {
	const op = "EqList.New"

	if eq == nil {
		return nil, invalidArgument(op, "nil equality function")
	}

	list, err := New[T](initialCapacity, optFns...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &EqList[T]{list: list, eq: eq}, nil
}

// Get forwards to ArrayList.Get.
func (l *EqList[T]) Get(index int) (*T, error) {
	if l == nil {
		return nil, invalidContainer("EqList.Get")
	}
	return l.list.Get(index)
}

// Value forwards to ArrayList.Value.
func (l *EqList[T]) Value(index int) (T, error) {
	if l == nil {
		var zero T
		return zero, invalidContainer("EqList.Value")
	}
	return l.list.Value(index)
}

// Set forwards to ArrayList.Set.
func (l *EqList[T]) Set(index int, value T) error {
	if l == nil {
		return invalidContainer("EqList.Set")
	}
	return l.list.Set(index, value)
}

// Size forwards to ArrayList.Size.
func (l *EqList[T]) Size() (int, error) {
	if l == nil {
		return 0, invalidContainer("EqList.Size")
	}
	return l.list.Size()
}

// Len forwards to ArrayList.Len.
func (l *EqList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.list.Len()
}

// Cap forwards to ArrayList.Cap.
func (l *EqList[T]) Cap() int {
	if l == nil {
		return 0
	}
	return l.list.Cap()
}

// Add forwards to ArrayList.Add.
func (l *EqList[T]) Add(value T) error {
	if l == nil {
		return invalidContainer("EqList.Add")
	}
	return l.list.Add(value)
}

// Insert forwards to ArrayList.Insert.
func (l *EqList[T]) Insert(index int, value T) error {
	if l == nil {
		return invalidContainer("EqList.Insert")
	}
	return l.list.Insert(index, value)
}

// Remove forwards to ArrayList.Remove.
func (l *EqList[T]) Remove(index int) error {
	if l == nil {
		return invalidContainer("EqList.Remove")
	}
	return l.list.Remove(index)
}

// Array forwards to ArrayList.Array.
func (l *EqList[T]) Array() ([]T, error) {
	if l == nil {
		return nil, invalidContainer("EqList.Array")
	}
	return l.list.Array()
}

// All forwards to ArrayList.All.
func (l *EqList[T]) All() iter.Seq2[int, T] {
	if l == nil {
		return func(func(int, T) bool) {}
	}
	return l.list.All()
}

// Destroy forwards to ArrayList.Destroy.
func (l *EqList[T]) Destroy() error {
	if l == nil {
		return invalidContainer("EqList.Destroy")
	}
	return l.list.Destroy()
}

// FirstIndexOf returns the lowest index whose element matches value, or -1.
func (l *EqList[T]) FirstIndexOf(value T) int {
	if !l.valid() {
		return -1
	}
	for i := 0; i < l.list.length; i++ {
		if l.eq(l.list.buf[i], value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the highest index whose element matches value, or -1.
func (l *EqList[T]) LastIndexOf(value T) int {
	if !l.valid() {
		return -1
	}
	for i := l.list.length - 1; i >= 0; i-- {
		if l.eq(l.list.buf[i], value) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element matches value.
func (l *EqList[T]) Contains(value T) bool {
	return l.FirstIndexOf(value) >= 0
}

// RemoveFirst removes the first matching element and reports whether one was
// found.
func (l *EqList[T]) RemoveFirst(value T) (bool, error) {
	const op = "EqList.RemoveFirst"

	if err := l.check(op); err != nil {
		return false, err
	}
	return l.removeAt(l.FirstIndexOf(value))
}

// RemoveLast removes the last matching element and reports whether one was
// found.
func (l *EqList[T]) RemoveLast(value T) (bool, error) {
	const op = "EqList.RemoveLast"

	if err := l.check(op); err != nil {
		return false, err
	}
	return l.removeAt(l.LastIndexOf(value))
}

// RemoveAll removes every matching element, preserving the order of the rest,
// and reports whether at least one was removed.
//
// Each removal shifts the tail, so the cost is O(n·k) for k matches.
func (l *EqList[T]) RemoveAll(value T) (bool, error) {
	const op = "EqList.RemoveAll"

	if err := l.check(op); err != nil {
		return false, err
	}

	removed := false
	for i := 0; i < l.list.length; {
		if !l.eq(l.list.buf[i], value) {
			i++
			continue
		}
		// The next element moves into slot i, so i is not advanced.
		if err := l.list.Remove(i); err != nil {
			return removed, err
		}
		removed = true
	}
	return removed, nil
}

// IndicesOf returns the indices of all matching elements as a bitmap.
func (l *EqList[T]) IndicesOf(value T) (*roaring.Bitmap, error) {
	const op = "EqList.IndicesOf"

	if err := l.check(op); err != nil {
		return nil, err
	}

	rb := roaring.New()
	for i := 0; i < l.list.length; i++ {
		if l.eq(l.list.buf[i], value) {
			rb.Add(uint32(i)) //nolint:gosec // length never exceeds mem.MaxCapacity
		}
	}
	return rb, nil
}

// Count returns the number of matching elements.
func (l *EqList[T]) Count(value T) int {
	rb, err := l.IndicesOf(value)
	if err != nil {
		return 0
	}
	return int(rb.GetCardinality())
}

func (l *EqList[T]) valid() bool {
	return l != nil && l.list != nil && !l.list.destroyed
}

func (l *EqList[T]) check(op string) error {
	if l == nil || l.list == nil {
		return invalidContainer(op)
	}
	return l.list.check(op)
}

func (l *EqList[T]) removeAt(index int) (bool, error) {
	if index < 0 {
		return false, nil
	}
	if err := l.list.Remove(index); err != nil {
		return false, err
	}
	return true, nil
}
