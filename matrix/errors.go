// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (closed taxonomy).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// programmer errors (dereferencing an iterator sentinel, invalid options).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with matrixErrorf so the
// operation name travels with the sentinel; errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> aliasing -> dimension -> index -> shape -> structural.

// ---------- Dimension errors ----------

var (
	// ErrNullOrNegDimension is returned when a requested size is zero or
	// negative where a populated matrix is required, or when exactly one
	// extent would become zero.
	ErrNullOrNegDimension = errors.New("matrix: null or negative dimension")

	// ErrNegativeArg is returned when a capacity request is negative.
	ErrNegativeArg = errors.New("matrix: negative argument")

	// ErrDimensionTooLarge is returned when a requested SIZE exceeds the
	// maximum allowed dimension. Capacity requests are clamped instead.
	ErrDimensionTooLarge = errors.New("matrix: dimension exceeds maximum allowed")

	// ErrDataSizeMismatch is returned when a flat initializer does not hold
	// exactly rows*cols elements.
	ErrDataSizeMismatch = errors.New("matrix: data length does not match dimensions")
)

// ---------- Index errors ----------

var (
	// ErrInvalidElementIndex indicates a (row, column) outside the live region.
	ErrInvalidElementIndex = errors.New("matrix: invalid element index")

	// ErrInvalidRowIndex indicates a row reference that does not exist.
	ErrInvalidRowIndex = errors.New("matrix: invalid row index")

	// ErrInvalidColumnIndex indicates a column reference that does not exist.
	ErrInvalidColumnIndex = errors.New("matrix: invalid column index")
)

// ---------- Structural-invariant errors ----------

var (
	// ErrEraseOnlyRow is returned when erasing the last remaining row.
	ErrEraseOnlyRow = errors.New("matrix: cannot erase the only row")

	// ErrEraseOnlyColumn is returned when erasing the last remaining column.
	ErrEraseOnlyColumn = errors.New("matrix: cannot erase the only column")

	// ErrNonContiguousInsert is returned when an insert position is outside [0, count].
	ErrNonContiguousInsert = errors.New("matrix: insert position is not contiguous")

	// ErrCurrentMatrixAsArg is returned when the receiver is passed as an
	// argument where aliasing is disallowed.
	ErrCurrentMatrixAsArg = errors.New("matrix: current matrix passed as argument")

	// ErrSameMatrixMultipleArgs is returned when one matrix is passed as two
	// distinct required arguments.
	ErrSameMatrixMultipleArgs = errors.New("matrix: same matrix passed as multiple arguments")

	// ErrNilMatrix indicates that a nil *Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ---------- Cross-matrix shape errors ----------

var (
	// ErrUnequalColumnCount is returned by row-wise concatenation when the
	// operands do not have the same number of columns.
	ErrUnequalColumnCount = errors.New("matrix: matrixes have unequal column count")

	// ErrUnequalRowCount is returned by column-wise concatenation when the
	// operands do not have the same number of rows.
	ErrUnequalRowCount = errors.New("matrix: matrixes have unequal row count")

	// ErrUnequalDimensions is returned when two matrices must have the same shape.
	ErrUnequalDimensions = errors.New("matrix: matrixes have unequal dimensions")
)

// matrixErrorf wraps an underlying sentinel with the operation tag.
// Keep tags in constants (see ctx* below) for grep-ability.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", op, err)
}

// matrixIndexErrorf wraps a sentinel with the operation tag and one position.
func matrixIndexErrorf(op string, pos int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", op, pos, err)
}

// matrixCellErrorf wraps a sentinel with the operation tag and coordinates.
func matrixCellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, row, col, err)
}

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxAt           = "At"
	ctxSet          = "Set"
	ctxReserve      = "Reserve"
	ctxResize       = "Resize"
	ctxInsertRow    = "InsertRow"
	ctxInsertColumn = "InsertColumn"
	ctxEraseRow     = "EraseRow"
	ctxEraseColumn  = "EraseColumn"
	ctxTranspose    = "Transpose"
	ctxCatByRow     = "CatByRow"
	ctxCatByColumn  = "CatByColumn"
	ctxSplitByRow   = "SplitByRow"
	ctxSplitByCol   = "SplitByColumn"
	ctxIterator     = "Iterator"
)
