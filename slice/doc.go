// Package slice provides the one-dimensional fat pointer every matrix row is
// built on: a bounds-checked, read-only View over a run of elements, and an
// Owned box that holds exclusive responsibility for a buffer.
//
// A View is two words of metadata (start and length, carried by a Go slice
// header) and never copies. Sub-slicing returns another View over the same
// storage. Owned is the single-owner counterpart: it hands out Views while
// alive and releases its buffer exactly once.
//
// Errors (wrapped with call-site context, match with errors.Is):
//
//	ErrOutOfRange - At with i<0 or i>=Len.
//	ErrBadRange   - Slice with an inverted or out-of-bounds range.
//	ErrReleased   - Owned used after Release.
package slice
