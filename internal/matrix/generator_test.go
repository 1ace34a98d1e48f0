package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/internal/matrix"
)

func TestSystematicGeneratorTopIsIdentity(t *testing.T) {
	t.Parallel()
	g, err := matrix.SystematicGenerator(8, 14)
	require.NoError(t, err)

	top, err := g.SubMatrix(0, 0, 8, 8)
	require.NoError(t, err)
	assert.Equal(t, matrix.Identity(8), top)
}

func TestSystematicGeneratorAnyKRowsInvertible(t *testing.T) {
	t.Parallel()
	k, n := 8, 14
	g, err := matrix.SystematicGenerator(k, n)
	require.NoError(t, err)

	subsets := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{8, 9, 10, 11, 12, 13, 0, 1},
		{0, 3, 6, 8, 9, 10, 11, 13},
	}
	for _, rows := range subsets {
		sub, err := g.SelectRows(rows)
		require.NoError(t, err)
		_, err = sub.Invert()
		assert.NoError(t, err, "rows=%v", rows)
	}
}
