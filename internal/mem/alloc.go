package mem

import (
	"errors"
	"math"
	"math/bits"
	"unsafe"
)

var (
	// ErrOverflow is returned when a byte count does not fit in an int64.
	ErrOverflow = errors.New("mem: size overflow")
	// ErrCapacityExceeded is returned when growth would pass the capacity ceiling.
	ErrCapacityExceeded = errors.New("mem: capacity ceiling reached")
)

// MaxCapacity is the largest number of slots a backing slice may hold.
const MaxCapacity = math.MaxInt32

// SizeOf returns the in-memory size of one T.
func SizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero)) //nolint:gosec // Sizeof never exceeds int64
}

// Bytes returns n*elemSize, or ErrOverflow if the product does not fit.
func Bytes(elemSize int64, n int) (int64, error) {
	if elemSize < 0 || n < 0 {
		return 0, ErrOverflow
	}
	hi, lo := bits.Mul64(uint64(elemSize), uint64(n))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(lo), nil
}

// NextCapacity returns the capacity to grow to from cur.
//
// Capacity doubles, starting at 1 for an empty buffer, and is clamped to
// ceiling. It fails once cur has reached the ceiling. A ceiling <= 0 or above
// MaxCapacity means MaxCapacity.
func NextCapacity(cur, ceiling int) (int, error) {
	if ceiling <= 0 || ceiling > MaxCapacity {
		ceiling = MaxCapacity
	}
	if cur >= ceiling {
		return 0, ErrCapacityExceeded
	}
	if cur == 0 {
		return 1, nil
	}
	if cur > ceiling/2 {
		return ceiling, nil
	}
	return cur * 2, nil
}

// Grow returns a new backing slice of newCap slots holding buf[:length].
// buf itself is not modified.
func Grow[T any](buf []T, length, newCap int) []T {
	grown := make([]T, newCap)
	copy(grown, buf[:length])
	return grown
}

// ShiftRight moves buf[i:length] one slot to the right, leaving buf[i] free.
// The caller guarantees length < len(buf).
func ShiftRight[T any](buf []T, i, length int) {
	copy(buf[i+1:length+1], buf[i:length])
}

// ShiftLeft moves buf[i+1:length] one slot to the left, overwriting buf[i],
// and zeroes the vacated slot buf[length-1].
func ShiftLeft[T any](buf []T, i, length int) {
	copy(buf[i:length-1], buf[i+1:length])
	var zero T
	buf[length-1] = zero
}
