// Package resource implements a shared memory budget for list storage.
//
// A Controller tracks the bytes reserved by every list that was built with it
// and, when a limit is configured, refuses reservations that would exceed it:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MiB across all lists
//	})
//
//	list, _ := collections.New[int](16, collections.WithResourceController(rc))
//
// Reservations never block. TryAcquireMemory either succeeds immediately or
// reports ErrMemoryLimitExceeded, and the caller decides what to do next.
//
// # Thread Safety
//
// Controller methods are safe for concurrent use, so a single budget can be
// shared by lists owned by different goroutines. The lists themselves are not
// synchronized.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: reservations always succeed
// and nothing is tracked.
package resource
