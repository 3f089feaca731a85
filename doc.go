// SPDX-License-Identifier: MIT

// Package pairwise ranks a set of alternatives by pairwise comparison.
//
// 🚀 What is pairwise?
//
//	A small decision-support engine that brings together:
//		• Preference matrix: N×N relation codes, bounds-checked access
//		• Oracle: asks for a judgment only when a cell is still unknown
//		• Closure: fills cells implied by transitivity after each answer
//		• Driver: one sweep over every unordered pair, with hooks
//		• Ranking: orders alternatives by a reference ordinal scale
//		• Cross-scale check: maps a vector valuation onto that scale
//
// Under the hood, everything is organized by concern:
//
//	prefmatrix/   Matrix, Relation codes, Alternatives
//	oracle/       judgment Sources (console, scripted, by-pair, recorder) + Oracle
//	closure/      single-pass and fixpoint transitive propagation
//	driver/       Sweep over the upper triangle, Step observers, Summary
//	rank/         pairing and reference-scale ordering
//	crossscale/   valuation → scale ranks → sorted rows → best row
//	report/       text and Markdown tables
//	selftest/     built-in battery behind `pairwise test`
//	config/       YAML data set, .env overrides, judgment files
//	logger/       zerolog console/JSON output with rotating files
//
// Quick example:
//
//	     a   b   c
//	a    2   1   ·      a better than b, b better than c
//	b        2   1  ⇒   a better than c is inferred,
//	c            2      so (a,c) is never asked.
//
//	go install github.com/katalvlaran/pairwise/cmd/pairwise@latest
package pairwise
