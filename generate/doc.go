// SPDX-License-Identifier: MIT
// Package: ronet/generate
//
// Package generate samples random connected oscillator-network graphs
// onto a hexgrid lattice.
//
// What:
//
//   - Generate(grid, numNodes, opts...) picks numNodes distinct cells
//     uniformly without replacement, wires them into a connected graph
//     whose edges follow hex adjacency, then densifies with independent
//     Bernoulli(p) trials — all under the degree-6 cap.
//
// Why:
//
//   - Each generated graph is one experiment configuration for the
//     simulated testbed; reproducibility per seed matters more than any
//     particular distribution.
//
// Policies (explicit knobs, documented defaults):
//
//   - Capacity bound: numNodes ≤ Rows×Cols by default;
//     WithStrictCapacity() demands strictly fewer nodes than cells.
//   - Failure policy: the default safe policy never discards built
//     structure — it repairs geometric isolation, in the worst case with
//     a flagged non-adjacent repair edge. WithRestartPolicy(n) instead
//     resamples from scratch, at most n attempts (a bounded loop, never
//     recursion).
//   - Edge density: WithEdgeProbability(p), default 0.30.
//
// Determinism:
//
//   - All randomness flows through one explicit *rand.Rand supplied via
//     WithSeed or WithRand; identical seed ⇒ identical graph. No global
//     generator is ever touched. Cross-implementation bit-identical
//     streams are explicitly not a contract.
//
// Complexity: O(Rows×Cols) sampling + O(numNodes²) wiring per attempt.
//
// Errors: ErrTooFewNodes, ErrCapacity, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed; branch with errors.Is.
package generate
