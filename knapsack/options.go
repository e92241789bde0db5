package knapsack

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/knapsack/expand"
	"github.com/katalvlaran/knapsack/tree"
)

// Options configures Solve and SolveCatalog.
type Options struct {
	// Ctx is checked once per table row; defaults to context.Background().
	Ctx context.Context

	// Logger receives one V(1) line when a solve starts and one when it
	// ends. Defaults to logr.Discard().
	Logger logr.Logger

	// Trace enables the per-cell history in Result.Steps. Default true.
	Trace bool

	// MaxAttachments is the per-main attachment ceiling of Dependency.
	MaxAttachments int

	// TreeOptions are forwarded to tree.Solve.
	TreeOptions []tree.Option
}

// Option customises Options.
type Option func(*Options)

// DefaultOptions returns background context, a discarding logger, tracing
// on and expand.DefaultMaxAttachments.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Logger:         logr.Discard(),
		Trace:          true,
		MaxAttachments: expand.DefaultMaxAttachments,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs l for solve start/finish lines.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithTrace turns the per-cell history on or off. The table, path and
// value are identical either way.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithMaxAttachments overrides the Dependency attachment ceiling; n <= 0
// restores the default.
func WithMaxAttachments(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = expand.DefaultMaxAttachments
		}
		o.MaxAttachments = n
	}
}

// WithTreeOptions forwards traversal settings to the Tree variant.
func WithTreeOptions(opts ...tree.Option) Option {
	return func(o *Options) { o.TreeOptions = append(o.TreeOptions, opts...) }
}
