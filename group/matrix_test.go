// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chvote/crypto-primitives/group"
)

// TestToMatrixIsColumnMajor pins the column-major reshape layout:
// element(row i, col j) = vector[i + rows*j]. With rows=2, cols=3 and
// vector = [v0..v5], the matrix reads:
//   row0: v0 v2 v4
//   row1: v1 v3 v5
func TestToMatrixIsColumnMajor(t *testing.T) {
	g := toyGroup(t)
	vec, err := group.NewGroupVector(gqElems(t, g, 2, 3, 4, 6, 8, 9))
	require.NoError(t, err)

	m, err := vec.ToMatrix(2, 3)
	require.NoError(t, err)

	want := [2][3]int64{
		{2, 4, 8},
		{3, 6, 9},
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			e, err := m.At(r, c)
			require.NoError(t, err)
			assert.Equal(t, want[r][c], e.Value().Int64(), "row %d col %d", r, c)
		}
	}
}

func TestToMatrixRequiresExactSize(t *testing.T) {
	g := toyGroup(t)
	vec, err := group.NewGroupVector(gqElems(t, g, 2, 3, 4))
	require.NoError(t, err)
	_, err = vec.ToMatrix(2, 2)
	assert.Error(t, err)
}

func TestFromRowsAndColumns(t *testing.T) {
	g := toyGroup(t)
	rows := [][]*group.GqElement{
		gqElems(t, g, 2, 4),
		gqElems(t, g, 8, 9),
	}
	m, err := group.FromRows(rows)
	require.NoError(t, err)
	row0, err := m.Row(0)
	require.NoError(t, err)
	e, _ := row0.Get(1)
	assert.Equal(t, int64(4), e.Value().Int64())

	col, err := m.Column(1)
	require.NoError(t, err)
	e0, _ := col.Get(0)
	e1, _ := col.Get(1)
	assert.Equal(t, int64(4), e0.Value().Int64())
	assert.Equal(t, int64(9), e1.Value().Int64())
}

func TestTransposeIsInvolution(t *testing.T) {
	g := toyGroup(t)
	m, err := group.FromRows([][]*group.GqElement{
		gqElems(t, g, 2, 4, 8),
		gqElems(t, g, 3, 6, 9),
	})
	require.NoError(t, err)

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, m.Columns(), tr.Rows())
	assert.Equal(t, m.Rows(), tr.Columns())

	back, err := tr.Transpose()
	require.NoError(t, err)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Columns(); c++ {
			orig, _ := m.At(r, c)
			got, _ := back.At(r, c)
			assert.True(t, orig.Equal(got))
		}
	}
}

func TestAppendPrependColumn(t *testing.T) {
	g := toyGroup(t)
	m, err := group.FromRows([][]*group.GqElement{
		gqElems(t, g, 2, 4),
		gqElems(t, g, 3, 6),
	})
	require.NoError(t, err)

	withAppended, err := m.AppendColumn(gqElems(t, g, 8, 9))
	require.NoError(t, err)
	assert.Equal(t, 3, withAppended.Columns())
	last, _ := withAppended.At(0, 2)
	assert.Equal(t, int64(8), last.Value().Int64())

	withPrepended, err := m.PrependColumn(gqElems(t, g, 8, 9))
	require.NoError(t, err)
	first, _ := withPrepended.At(0, 0)
	assert.Equal(t, int64(8), first.Value().Int64())
}

func TestStreamRowMajor(t *testing.T) {
	g := toyGroup(t)
	m, err := group.FromRows([][]*group.GqElement{
		gqElems(t, g, 2, 4),
		gqElems(t, g, 3, 6),
	})
	require.NoError(t, err)
	flat := m.StreamRowMajor()
	require.Len(t, flat, 4)
	assert.Equal(t, []int64{2, 4, 3, 6}, []int64{
		flat[0].Value().Int64(), flat[1].Value().Int64(), flat[2].Value().Int64(), flat[3].Value().Int64(),
	})
}
