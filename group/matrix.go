// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package group

import (
	"github.com/chvote/crypto-primitives/internal/common"
)

// GroupMatrix is a rectangular matrix with uniform group and element size,
// stored row-major internally. Rows and columns are both accessible, and
// the matrix can be built from either orientation.
type GroupMatrix[E Keyed] struct {
	rowMajor []E // len == rows*cols, rowMajor[r*cols+c] is row r, col c
	rows     int
	cols     int
}

// newTrustedMatrix wraps an already-validated row-major slice.
func newTrustedMatrix[E Keyed](rowMajor []E, rows, cols int) (*GroupMatrix[E], error) {
	if _, err := NewGroupVector(rowMajor); err != nil {
		return nil, err
	}
	return &GroupMatrix[E]{rowMajor: rowMajor, rows: rows, cols: cols}, nil
}

// FromRows builds a GroupMatrix from a slice of rows, each a slice of
// elements of equal length, uniform group and (if applicable) size.
func FromRows[E Keyed](rows [][]E) (*GroupMatrix[E], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "matrix must have at least one row and column")
	}
	numCols := len(rows[0])
	flat := make([]E, 0, len(rows)*numCols)
	for i, row := range rows {
		if len(row) != numCols {
			return nil, common.Wrap(common.ErrSizeMismatch, "row %d has length %d, want %d", i, len(row), numCols)
		}
		flat = append(flat, row...)
	}
	return newTrustedMatrix(flat, len(rows), numCols)
}

// FromColumns builds a GroupMatrix from a slice of columns, each a slice of
// elements of equal length, uniform group and (if applicable) size.
func FromColumns[E Keyed](cols [][]E) (*GroupMatrix[E], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, common.Wrap(common.ErrInvalidArgument, "matrix must have at least one row and column")
	}
	numRows := len(cols[0])
	flat := make([]E, numRows*len(cols))
	for j, col := range cols {
		if len(col) != numRows {
			return nil, common.Wrap(common.ErrSizeMismatch, "column %d has length %d, want %d", j, len(col), numRows)
		}
		for i, e := range col {
			flat[i*len(cols)+j] = e
		}
	}
	return newTrustedMatrix(flat, numRows, len(cols))
}

// Rows returns the number of rows.
func (m *GroupMatrix[E]) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *GroupMatrix[E]) Columns() int { return m.cols }

// At returns the element at (row, col).
func (m *GroupMatrix[E]) At(row, col int) (E, error) {
	var zero E
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return zero, common.Wrap(common.ErrInvalidArgument, "index (%d,%d) out of range", row, col)
	}
	return m.rowMajor[row*m.cols+col], nil
}

// Row returns row i as a GroupVector.
func (m *GroupMatrix[E]) Row(i int) (*GroupVector[E], error) {
	if i < 0 || i >= m.rows {
		return nil, common.Wrap(common.ErrInvalidArgument, "row %d out of range", i)
	}
	return NewGroupVector(m.rowMajor[i*m.cols : (i+1)*m.cols])
}

// Column returns column j as a GroupVector.
func (m *GroupMatrix[E]) Column(j int) (*GroupVector[E], error) {
	if j < 0 || j >= m.cols {
		return nil, common.Wrap(common.ErrInvalidArgument, "column %d out of range", j)
	}
	col := make([]E, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.rowMajor[i*m.cols+j]
	}
	return NewGroupVector(col)
}

// Transpose returns the transposed matrix. Transpose is an involution:
// m.Transpose().Transpose() equals m element-wise.
func (m *GroupMatrix[E]) Transpose() (*GroupMatrix[E], error) {
	flat := make([]E, len(m.rowMajor))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			flat[j*m.rows+i] = m.rowMajor[i*m.cols+j]
		}
	}
	return newTrustedMatrix(flat, m.cols, m.rows)
}

// StreamRowMajor returns every element in row-major order.
func (m *GroupMatrix[E]) StreamRowMajor() []E {
	cp := make([]E, len(m.rowMajor))
	copy(cp, m.rowMajor)
	return cp
}

// AppendColumn returns a new matrix with col appended as the last column.
func (m *GroupMatrix[E]) AppendColumn(col []E) (*GroupMatrix[E], error) {
	if len(col) != m.rows {
		return nil, common.Wrap(common.ErrSizeMismatch, "column length %d must equal row count %d", len(col), m.rows)
	}
	flat := make([]E, 0, len(m.rowMajor)+len(col))
	for i := 0; i < m.rows; i++ {
		flat = append(flat, m.rowMajor[i*m.cols:(i+1)*m.cols]...)
		flat = append(flat, col[i])
	}
	return newTrustedMatrix(flat, m.rows, m.cols+1)
}

// PrependColumn returns a new matrix with col prepended as the first column.
func (m *GroupMatrix[E]) PrependColumn(col []E) (*GroupMatrix[E], error) {
	if len(col) != m.rows {
		return nil, common.Wrap(common.ErrSizeMismatch, "column length %d must equal row count %d", len(col), m.rows)
	}
	flat := make([]E, 0, len(m.rowMajor)+len(col))
	for i := 0; i < m.rows; i++ {
		flat = append(flat, col[i])
		flat = append(flat, m.rowMajor[i*m.cols:(i+1)*m.cols]...)
	}
	return newTrustedMatrix(flat, m.rows, m.cols+1)
}
