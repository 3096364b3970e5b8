// SPDX-License-Identifier: MIT
// Package: ronet/generate
//
// options.go — functional options resolved into an immutable config.
//
// Contract (strict):
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil RNG, non-positive attempt budget); range checks whose
//     violation is a caller data error (probability) surface as
//     sentinel errors from Generate instead.
//   - No hidden globals; everything flows through the resolved config.

package generate

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	// defaultEdgeProbability is the densification Bernoulli parameter.
	// The hardware experiments run 0.30–0.35; 0.30 is the documented
	// default.
	defaultEdgeProbability = 0.30
)

// config aggregates all generator knobs. Passed by value; immutable to
// the algorithm.
type config struct {
	rng             *rand.Rand
	edgeProbability float64
	strictCapacity  bool // true: numNodes must be < Rows×Cols
	restartAttempts int  // 0: safe/no-restart policy
}

// Option customizes one Generate call.
type Option func(*config)

// newConfig resolves defaults then applies opts in order (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:             nil, // mandatory; Generate rejects nil with ErrNeedRandSource
		edgeProbability: defaultEdgeProbability,
		strictCapacity:  false,
		restartAttempts: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed derives a fresh deterministic *rand.Rand from seed, scoped
// to this Generate call. Identical seed ⇒ identical graph.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG stream. Panics on nil to surface
// the programmer error early; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithEdgeProbability sets the densification probability p ∈ [0,1].
// Out-of-range values are rejected by Generate with
// ErrInvalidProbability (data error, not programmer error).
func WithEdgeProbability(p float64) Option {
	return func(c *config) {
		c.edgeProbability = p
	}
}

// WithStrictCapacity demands numNodes strictly below Rows×Cols, i.e. at
// least one cell stays unoccupied. The default bound is inclusive.
func WithStrictCapacity() Option {
	return func(c *config) {
		c.strictCapacity = true
	}
}

// WithRestartPolicy replaces the safe repair policy with
// resample-from-scratch on geometric isolation, bounded by maxAttempts
// full attempts. Panics if maxAttempts < 1 (a zero-attempt generator is
// meaningless).
func WithRestartPolicy(maxAttempts int) Option {
	if maxAttempts < 1 {
		panic("generate: WithRestartPolicy(maxAttempts<1)")
	}
	return func(c *config) {
		c.restartAttempts = maxAttempts
	}
}
