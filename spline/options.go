package spline

import "log/slog"

// Option configures optional behavior of a Base.
type Option func(*Base)

// WithLogger attaches a structured logger to the configuration. The smoother
// reports grid selection, the roughness weight, and factorization progress
// at debug level. Without this option the configuration is silent.
func WithLogger(l *slog.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.log = l
		}
	}
}
