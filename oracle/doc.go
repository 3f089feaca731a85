// SPDX-License-Identifier: MIT

// Package oracle resolves the relation between two alternatives: it returns a
// cached cell when the matrix already knows the answer and otherwise asks the
// decision-maker for a judgment and records it.
//
// The decision-maker is an I/O boundary modeled by the Source interface, a
// synchronous request/response call. Front ends implement it:
//
//   - Console   line-oriented terminal prompt, re-prompts on invalid input.
//   - Sequence  fixed ordered list of judgments (scripted harnesses).
//   - ByPair    judgments keyed by identifier pair (batch files).
//   - Recorder  wraps another Source and keeps every accepted judgment.
//
// A Source that has nothing more to offer returns ErrNeedInput. Judgments
// outside {1,2,3} are rejected by the Oracle and requested again, without a
// retry limit; the context is the only other way out of that loop.
//
// Side effects: exactly one cell write, (i,j), per previously Unknown pair.
// The mirrored cell (j,i) is never written.
package oracle
