package editor

import (
	"bezplot/pkg/bezier"
	"bezplot/pkg/graphics"
)

// Options configures an Editor.
type Options struct {
	// SelectionRadius is the hover distance under which a point becomes active.
	// Default: 12
	SelectionRadius float64

	// Steps is the number of parameter steps used to sample the curve.
	// Default: 100
	Steps int

	// ToEnd appends the exact final control point to the sampled curve.
	// Default: false (the polyline stops at t = (Steps-1)/Steps)
	ToEnd bool

	// HoldModifier suppresses adding on click and, together with the
	// primary button, turns pointer motion into a drag of the active point.
	// Default: ModControl
	HoldModifier Modifier

	// Points are the initial control points.
	Points []graphics.Point
}

// DefaultOptions returns editor options with the defaults above.
func DefaultOptions() Options {
	return Options{
		SelectionRadius: bezier.DefaultSelectionRadius,
		Steps:           bezier.DefaultSteps,
		HoldModifier:    ModControl,
	}
}

// Option is a functional option for configuring an Editor.
type Option func(*Options)

// WithSelectionRadius sets the hover selection radius.
func WithSelectionRadius(r float64) Option {
	return func(o *Options) {
		o.SelectionRadius = r
	}
}

// WithSteps sets the number of sampling steps.
func WithSteps(steps int) Option {
	return func(o *Options) {
		o.Steps = steps
	}
}

// WithSampleToEnd makes the sampled curve finish on the last control point.
func WithSampleToEnd() Option {
	return func(o *Options) {
		o.ToEnd = true
	}
}

// WithHoldModifier sets the modifier that blocks adding and enables dragging.
func WithHoldModifier(m Modifier) Option {
	return func(o *Options) {
		o.HoldModifier = m
	}
}

// WithPoints seeds the editor with control points.
func WithPoints(points ...graphics.Point) Option {
	return func(o *Options) {
		o.Points = append(o.Points, points...)
	}
}

// NewOptions creates options from functional options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
