// Package core holds the vocabulary shared by every view family in this module.
//
// A view is a fat pointer: a reference into storage plus a small, fixed
// metadata record (shape, stride, offsets). The families live in their own
// packages:
//
//	slice/ : 1-D contiguous View and its owning Box
//	matrix/: Dense, Strided, Row and Col views over row-major buffers
//	sparse/: CRS views with an owning root and borrowed row/range views
//
// core supplies what they have in common:
//
//   - Sentinel errors (ErrShape, ErrOutOfRange, ErrBadRange, ErrNotFound,
//     ErrReleased), matched with errors.Is.
//   - Range, the half-open interval used by every slicing operation.
//   - Zeroer, the optional capability consulted only when a sparse view
//     renders positions that are not stored.
//   - Formatting options (WithVerb, WithSeparator, WithRowSeparator,
//     WithUnsetMarker) resolved by NewFormat for every String/Format method.
//
// Views are immutable values. Reading through several views of the same
// storage from multiple goroutines is safe; nothing in this module writes.
package core
