// SPDX-License-Identifier: MIT

// Package crossscale cross-checks a vector valuation against the reference
// ordinal scale.
//
// Inputs are static lookup tables:
//
//   - valuation[i][j]  1-based row of the criteria table chosen by
//     alternative i for criterion j.
//   - criteria[r][j]   the alternative code (e.g. 1211) of level r on
//     criterion j.
//   - scale            the reference ordinal scale; a code's rank is its
//     1-based position there.
//
// Pipeline: MapToScale replaces each valuation cell by the scale rank of the
// code it selects, SortRows sorts every mapped row ascending, BestRow picks
// the row whose smallest rank is lowest (the first such row on ties).
//
// A code missing from the scale is a diagnostic, not a failure: the cell
// becomes Missing (-1) and a Miss is reported. Rows holding Missing are not
// candidates for BestRow; when no row is complete, Validate still returns
// every table with Result.Best set to -1.
package crossscale
