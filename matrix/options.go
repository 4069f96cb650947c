// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the capacity model.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each option impacts capacity decisions and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The growth policy is a single function (size -> per-side slack margin),
//     so its amortization and capping can be tested in isolation.
//   - MaxAllowedDimension is the global ceiling; WithMaxDimension may only lower it.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// MaxAllowedDimension is the global ceiling for rowCapacity and columnCapacity.
	// Capacity requests above it are clamped silently.
	MaxAllowedDimension = 25000

	// DefaultGrowthDivisor sets the default margin to ceil(size/DefaultGrowthDivisor).
	DefaultGrowthDivisor = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDimensionInvalid = "matrix: WithMaxDimension: max must be in [1, MaxAllowedDimension]"
	panicGrowthNil           = "matrix: WithGrowth: policy must be non-nil"
)

// GrowthPolicy maps a dimension size to the slack margin reserved on one side
// of the live region when that dimension is reallocated. A dimension that must
// grow receives two margins (one before, one after), a full dimension that is
// reallocated alongside receives one. Negative results are treated as zero.
type GrowthPolicy func(size int) int

// DefaultGrowth reserves ceil(size/4) elements per side, so a growing dimension
// ends up with roughly half of its size as slack.
func DefaultGrowth(size int) int {
	if size <= 0 {
		return 0
	}

	return (size + DefaultGrowthDivisor - 1) / DefaultGrowthDivisor
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved configuration of one Matrix instance.
// Fields are unexported; use WithX constructors.
type Options struct {
	maxDim int          // capacity ceiling for this instance
	growth GrowthPolicy // slack policy for implicit growth
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		maxDim: MaxAllowedDimension,
		growth: DefaultGrowth,
	}
}

// WithMaxDimension lowers the capacity ceiling of one matrix.
// Panics when max is outside [1, MaxAllowedDimension].
func WithMaxDimension(max int) Option {
	if max < 1 || max > MaxAllowedDimension {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *Options) { o.maxDim = max }
}

// WithGrowth replaces the slack policy used by implicit growth.
// Panics when p is nil.
func WithGrowth(p GrowthPolicy) Option {
	if p == nil {
		panic(panicGrowthNil)
	}

	return func(o *Options) { o.growth = p }
}

// gatherOptions applies optFns over the defaults in order; later options win.
func gatherOptions(optFns ...Option) Options {
	o := defaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// margin evaluates the growth policy with the non-negative guard applied.
func (o Options) margin(size int) int {
	if m := o.growth(size); m > 0 {
		return m
	}

	return 0
}

// clampCapacity caps a capacity at the instance ceiling.
func (o Options) clampCapacity(c int) int {
	if c > o.maxDim {
		return o.maxDim
	}

	return c
}
