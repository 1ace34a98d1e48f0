package matrix

import "errors"

// ErrSingular is returned by Invert when the matrix has no inverse.
var ErrSingular = errors.New("matrix: singular, no inverse exists")

// ErrNotSquare is returned by Invert when called on a non-square matrix.
var ErrNotSquare = errors.New("matrix: not square")

// ErrDimensionMismatch is returned by Multiply when operand shapes do not
// conform.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrOutOfBounds is returned by SubMatrix and SelectRows when a requested
// index falls outside the matrix.
var ErrOutOfBounds = errors.New("matrix: index out of bounds")

// ErrEmptySelection is returned by SelectRows when given no indices.
var ErrEmptySelection = errors.New("matrix: empty row selection")
