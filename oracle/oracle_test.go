// SPDX-License-Identifier: MIT

package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
)

var alts = prefmatrix.Alternatives{
	"2111", "3111", "4111", "1211", "1311", "1411",
	"1121", "1131", "1141", "1112", "1113", "1114",
}

// countingSource returns its judgments in order and counts calls.
type countingSource struct {
	seq   []prefmatrix.Relation
	calls int
}

func (c *countingSource) Judge(_ context.Context, _ oracle.Query) (prefmatrix.Relation, error) {
	r := c.seq[c.calls]
	c.calls++

	return r, nil
}

func newMatrix(t *testing.T) *prefmatrix.Matrix {
	t.Helper()
	m, err := prefmatrix.NewIdentity(len(alts))
	require.NoError(t, err)

	return m
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := oracle.New(alts, nil)
	assert.ErrorIs(t, err, oracle.ErrNilSource)

	_, err = oracle.New(prefmatrix.Alternatives{"a", "a"}, oracle.NewSequence())
	assert.ErrorIs(t, err, prefmatrix.ErrDuplicateAlternative)
}

// ("2111","3111") judged 1 sets [0][1]; the reversed pair is resolved
// independently and judged 3 sets [1][0] without touching [0][1]; the
// diagonal pair answers 2 without asking.
func TestResolve_EndToEndScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newMatrix(t)
	src := &countingSource{seq: []prefmatrix.Relation{prefmatrix.Better, prefmatrix.Worse}}
	o, err := oracle.New(alts, src)
	require.NoError(t, err)

	got, err := o.Resolve(ctx, m, "2111", "3111")
	require.NoError(t, err)
	assert.Equal(t, prefmatrix.Better, got)
	assert.Equal(t, prefmatrix.Better, at(t, m, 0, 1))
	assert.Equal(t, prefmatrix.Unknown, at(t, m, 1, 0), "cache must not be mirrored")

	got, err = o.Resolve(ctx, m, "3111", "2111")
	require.NoError(t, err)
	assert.Equal(t, prefmatrix.Worse, got)
	assert.Equal(t, prefmatrix.Better, at(t, m, 0, 1))
	assert.Equal(t, prefmatrix.Worse, at(t, m, 1, 0))

	got, err = o.Resolve(ctx, m, "2111", "2111")
	require.NoError(t, err)
	assert.Equal(t, prefmatrix.Equal, got)
	assert.Equal(t, prefmatrix.Equal, at(t, m, 0, 0))

	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 2, o.Asked())
	assert.Equal(t, 1, o.Cached())
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newMatrix(t)
	src := &countingSource{seq: []prefmatrix.Relation{prefmatrix.Equal}}
	o, err := oracle.New(alts, src)
	require.NoError(t, err)

	first, asked, err := o.ResolveAt(ctx, m, 3, 7)
	require.NoError(t, err)
	assert.True(t, asked)

	second, asked, err := o.ResolveAt(ctx, m, 3, 7)
	require.NoError(t, err)
	assert.False(t, asked)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls, "only the first call may request a judgment")
}

func TestResolve_RejectsInvalidJudgments(t *testing.T) {
	t.Parallel()

	m := newMatrix(t)
	var attempts []int
	src := oracle.SourceFunc(func(_ context.Context, q oracle.Query) (prefmatrix.Relation, error) {
		attempts = append(attempts, q.Attempt)
		if q.Attempt < 3 {
			return prefmatrix.Relation(q.Attempt * 4), nil // 0, 4, 8: all rejected
		}
		return prefmatrix.Worse, nil
	})
	o, err := oracle.New(alts, src)
	require.NoError(t, err)

	got, err := o.Resolve(context.Background(), m, "1112", "1113")
	require.NoError(t, err)
	assert.Equal(t, prefmatrix.Worse, got)
	assert.Equal(t, []int{0, 1, 2, 3}, attempts)
	assert.Equal(t, prefmatrix.Worse, at(t, m, 9, 10))
}

func TestResolve_SourceErrorLeavesMatrix(t *testing.T) {
	t.Parallel()

	m := newMatrix(t)
	o, err := oracle.New(alts, oracle.NewSequence())
	require.NoError(t, err)

	_, err = o.Resolve(context.Background(), m, "2111", "4111")
	assert.ErrorIs(t, err, oracle.ErrNeedInput)
	assert.Equal(t, prefmatrix.Unknown, at(t, m, 0, 2))
	assert.Zero(t, o.Asked())
}

func TestResolve_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := newMatrix(t)
	o, err := oracle.New(alts, oracle.NewSequence(prefmatrix.Better))
	require.NoError(t, err)

	_, err = o.Resolve(ctx, m, "2111", "4111")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve_LookupAndShapeErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	o, err := oracle.New(alts, oracle.NewSequence(prefmatrix.Better))
	require.NoError(t, err)

	_, err = o.Resolve(ctx, newMatrix(t), "9999", "2111")
	assert.ErrorIs(t, err, prefmatrix.ErrUnknownAlternative)

	small, _ := prefmatrix.NewIdentity(4)
	_, err = o.Resolve(ctx, small, "2111", "3111")
	assert.ErrorIs(t, err, prefmatrix.ErrSizeMismatch)

	_, _, err = o.ResolveAt(ctx, newMatrix(t), 0, 12)
	assert.ErrorIs(t, err, prefmatrix.ErrOutOfRange)
}

func at(t *testing.T, m *prefmatrix.Matrix, i, j int) prefmatrix.Relation {
	t.Helper()
	r, err := m.At(i, j)
	require.NoError(t, err)

	return r
}
