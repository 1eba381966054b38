// Package collections provides generic, growable array lists.
//
// Two list types are offered:
//
//   - ArrayList[T] is a contiguous, index-addressable sequence with geometric
//     growth, in-place shifting on Insert/Remove and raw slice export.
//   - EqList[T] wraps an ArrayList with a caller-supplied equality predicate
//     and adds value-based search (FirstIndexOf, LastIndexOf, Contains) and
//     removal (RemoveFirst, RemoveLast, RemoveAll).
//
// # Quick Start
//
//	list, _ := collections.New[Point](16)
//	_ = list.Add(Point{X: 1, Y: 1})
//
//	p, _ := list.Get(0) // aliasing view, valid until the next mutation
//	p.Y *= 2
//
//	points, _ := collections.NewEqList(collections.Equal[Point](), 0)
//	_ = points.Add(Point{X: 1, Y: 2})
//	removed, _ := points.RemoveAll(Point{X: 1, Y: 2})
//
// # Errors
//
// Every failure is returned as an error value that matches one of
// ErrInvalidContainer, ErrIndexOutOfRange, ErrAllocationFailure or
// ErrInvalidArgument via errors.Is. IndexError and AllocError carry the
// operation name and the offending values. A failed Add or Insert never
// changes the list.
//
// # Memory Budgets
//
// Backing storage can be reserved against a resource.Controller
// (WithResourceController, WithMemoryLimit). Growth that would exceed the
// budget fails with ErrAllocationFailure.
//
// # Concurrency
//
// Lists are not synchronized. Callers that share a list between goroutines
// must guard it themselves.
package collections
