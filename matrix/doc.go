// Package matrix provides zero-copy, bounds-checked views of row-major data.
//
// The package provides:
//
//   - Dense: Reshape a flat buffer into nrows×ncols (element (i,j) at i*ncols+j).
//   - Strided: rows start Stride() apart, Stride() >= Cols(); every Sub of a
//     Dense or Strided view is a Strided view over the same storage.
//   - Row: a contiguous run of one row; Col: one element every Stride().
//   - Matrix: the read-only Rows/Cols/At accessor all of the above satisfy.
//   - FromGeneral/ToGeneral/FromGonum/ToGonum: zero-copy bridges to gonum.
//
// Views never allocate (except Strided.Compact) and never expose their
// backing storage for writing. All accessors return errors instead of
// panicking: ErrShape at construction, ErrOutOfRange for indices, ErrBadRange
// for slicing ranges.
//
// See the examples in this package for usage patterns.
package matrix
