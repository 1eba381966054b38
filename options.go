package collections

import (
	"log/slog"

	"github.com/hupe1980/collections/internal/mem"
	"github.com/hupe1980/collections/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	maxCapacity      int
}

// Option configures list construction.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for growth and shift
// activity. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &collections.BasicMetricsCollector{}
//	list, _ := collections.New[int](0, collections.WithMetricsCollector(metrics))
//	// ... use list ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Moved: %d\n", stats.GrowCount, stats.ElementsMoved)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for list operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := collections.NewJSONLogger(slog.LevelDebug)
//	list, _ := collections.New[int](0, collections.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController reserves the list's backing storage against a shared
// memory budget. Growth that would exceed the budget fails with
// ErrAllocationFailure and leaves the list unchanged.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMemoryLimit gives the list a private memory budget of the given size in
// bytes. It is a shortcut for WithResourceController with a fresh controller.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.controller = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithMaxCapacity lowers the capacity ceiling of the list. Values <= 0 or
// above the default ceiling (math.MaxInt32) are ignored.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 && n < mem.MaxCapacity {
			o.maxCapacity = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxCapacity:      mem.MaxCapacity,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
