// SPDX-License-Identifier: MIT
// Package: ronet/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy (matches the rest of ronet):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is, never with string comparison.
//   - Implementations attach context via fmt.Errorf("...: %w", Err).
//   - The algorithm never panics; panics are confined to option
//     constructors rejecting meaningless arguments.

package generate

import "errors"

// ErrTooFewNodes indicates numNodes < 1.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* fix the request */ }.
var ErrTooFewNodes = errors.New("generate: numNodes must be at least 1")

// ErrCapacity indicates the requested node count cannot be placed on
// the grid under the configured capacity bound (inclusive by default,
// strict with WithStrictCapacity). Generation aborts before any graph
// structure is built.
var ErrCapacity = errors.New("generate: node count exceeds grid capacity")

// ErrInvalidProbability indicates an edge-density probability outside
// the closed interval [0,1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates no *rand.Rand was supplied. Cell sampling
// is always stochastic, so WithSeed or WithRand is mandatory.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrConstructFailed indicates the generator exhausted its permitted
// attempts (restart policy) or could not repair connectivity without
// breaking the degree cap (safe policy, all visited nodes saturated).
var ErrConstructFailed = errors.New("generate: construction failed")
