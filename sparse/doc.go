// Package sparse implements zero-copy views over matrices stored in
// Compressed Row Storage (CRS).
//
// A CRS matrix is three arrays:
//
//	values  []T    stored elements, row by row
//	colIdx  []int  column of each stored element (strictly increasing per row)
//	rowOff  []int  len nrows+1; row i occupies values[rowOff[i]:rowOff[i+1]]
//
// Ownership is expressed by type. New returns an *Owned root, the only value
// able to Release the arrays, and it does so exactly once. Everything derived
// from it (Mat for a row range, Row, Vector) borrows the same arrays and has
// no way to release them.
//
// Row-range slicing never rebases: SliceRows advances the rowOff window and
// keeps addressing the owner's values/colIdx arrays through it.
//
// Raw indexing never invents zeros: At on a position that is not stored fails
// with ErrNotFound. TryAt is the non-failing variant. Only the debug rendering
// fills gaps, with the element type's zero (see core.Zeroer) or with the marker
// configured by core.WithUnsetMarker.
//
// Configuration Options (Option):
//
//	- WithSearch(Linear | Binary)
//	    Lookup strategy inside a row. Both rely on sorted column indices.
//
//	- WithReleaseHook(func(Stats))
//	    Called exactly once when the owning root is released.
package sparse
