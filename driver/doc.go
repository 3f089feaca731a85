// SPDX-License-Identifier: MIT

// Package driver runs the n-choose-2 comparison sweep of a session.
//
// What:
//
//   - Sweep visits every unordered pair (i,j), i<j, in row-major order
//     (i ascending outside, j ascending inside). For each pair it calls the
//     oracle, runs one transitive pass over the whole matrix, then notifies
//     every registered Observer with a Step.
//   - A pair already filled (seeded, judged or inferred earlier in the sweep)
//     is answered from the matrix without asking, so a full run asks at most
//     N(N-1)/2 judgments and usually far fewer.
//
// Hooks (functional options, in call order per pair):
//
//   - OnCompare  before the oracle is consulted (e.g. to print the matrix).
//   - Observer   after propagation (e.g. to print "Matrix updated").
//
// Any hook error aborts the sweep and is returned wrapped.
//
// Errors:
//
//   - ErrNilOracle                 nil oracle
//   - prefmatrix.ErrNilMatrix      nil matrix
//   - prefmatrix.ErrSizeMismatch   oracle alternatives and matrix differ in size
//   - context errors               ctx cancelled between pairs
//   - oracle / closure errors      propagated wrapped
package driver
