// SPDX-License-Identifier: MIT

package prefmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/prefmatrix"
)

func TestParseRelation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    prefmatrix.Relation
		wantErr bool
	}{
		{in: "1", want: prefmatrix.Better},
		{in: " 2 ", want: prefmatrix.Equal},
		{in: "3\n", want: prefmatrix.Worse},
		{in: "0", wantErr: true},
		{in: "4", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "01", wantErr: true},
		{in: "1 2", wantErr: true},
		{in: "yes", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := prefmatrix.ParseRelation(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, prefmatrix.ErrInvalidRelation, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRelation_ValidKnownString(t *testing.T) {
	t.Parallel()

	assert.False(t, prefmatrix.Unknown.Valid())
	assert.False(t, prefmatrix.Unknown.Known())
	assert.True(t, prefmatrix.Equal.Valid())
	assert.False(t, prefmatrix.Relation(9).Valid())
	assert.Equal(t, "better", prefmatrix.Better.String())
	assert.Equal(t, "Relation(9)", prefmatrix.Relation(9).String())
}

func TestAlternatives(t *testing.T) {
	t.Parallel()

	require.NoError(t, primaryAlternatives.Validate())

	i, err := primaryAlternatives.Index("1211")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = primaryAlternatives.Index("9999")
	assert.ErrorIs(t, err, prefmatrix.ErrUnknownAlternative)

	assert.ErrorIs(t, prefmatrix.Alternatives{}.Validate(), prefmatrix.ErrEmptyAlternatives)
	assert.ErrorIs(t, prefmatrix.Alternatives{"a", "b", "a"}.Validate(), prefmatrix.ErrDuplicateAlternative)
}

func TestValidateSameSize(t *testing.T) {
	t.Parallel()

	m, err := prefmatrix.New(3)
	require.NoError(t, err)
	assert.NoError(t, prefmatrix.ValidateSameSize(prefmatrix.Alternatives{"a", "b", "c"}, m))
	assert.ErrorIs(t, prefmatrix.ValidateSameSize(prefmatrix.Alternatives{"a"}, m), prefmatrix.ErrSizeMismatch)
	assert.ErrorIs(t, prefmatrix.ValidateSameSize(nil, nil), prefmatrix.ErrNilMatrix)
}
