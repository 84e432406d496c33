package rasterize

import "github.com/stanfordnqp/udon/pkg/field"

type config struct {
	combiner    field.Combiner
	clamp       bool
	smoothWidth float64
	culling     bool
}

func newConfig(opts []Option) config {
	cfg := config{combiner: field.MaxCombiner}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Option configures rasterization.
type Option func(*config)

// WithCombiner sets the fusion policy for overlapping contributions.
// The default is field.MaxCombiner (union-like stacking).
func WithCombiner(op field.Combiner) Option {
	return func(c *config) { c.combiner = op }
}

// WithClamp clips raster device contributions to [0, 1] before
// fusion. Off by default: out-of-range values pass through unchanged.
func WithClamp() Option {
	return func(c *config) { c.clamp = true }
}

// WithSmoothBoundary rasterizes boundary polygons through a logistic
// of their signed distance instead of a hard threshold, keeping the
// boundary path differentiable. Width is the transition width.
func WithSmoothBoundary(width float64) Option {
	return func(c *config) { c.smoothWidth = width }
}

// WithCulling indexes leaf contributions in an R-tree by their world
// bounding boxes and evaluates only candidates per sample point. A
// skipped leaf folds in as the zero it is known to hold there, so the
// result is identical to the unculled fold for any combinator.
func WithCulling() Option {
	return func(c *config) { c.culling = true }
}
