// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/kpaths/ksp"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

var (
	// ErrPoolSize indicates a non-positive worker count.
	ErrPoolSize = errors.New("batch: pool size must be positive")

	// ErrSubmit indicates the pool refused a task (released pool).
	ErrSubmit = errors.New("batch: submit failed")

	// ErrPanic indicates a search panicked; the panic value is in the message.
	ErrPanic = errors.New("batch: search panicked")
)

// Outcome is the result of one query.
type Outcome struct {
	Query    ksp.Query
	Paths    []ksp.Path
	Stats    ksp.Stats
	Err      error
	Duration time.Duration
}

// Observer receives engine hooks and finished searches, e.g. a metrics
// recorder. Implementations must be safe for concurrent use.
type Observer interface {
	SearchOptions() []ksp.Option
	Observe(q ksp.Query, paths []ksp.Path, err error, d time.Duration, st ksp.Stats)
}

// Options configures a Runner.
type Options struct {
	Logger   *slog.Logger
	Search   []ksp.Option // applied to every query before per-run options
	Observer Observer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions discards logs, adds no engine options and no observer.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithSearchOptions appends engine options applied to every query.
func WithSearchOptions(opts ...ksp.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithObserver sets the per-search observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
