// Package unsized gives fixed, caller-owned buffers a matrix shape without
// copying them.
//
// 🚀 What is unsized?
//
//	A small, zero-copy view library:
//		• Dense views: reshape a flat buffer into rows×cols
//		• Strided views: rows that start `stride` elements apart (sub-matrices, BLAS layouts)
//		• Row and column views, with bounds-checked indexing and slicing
//		• Sparse CRS matrices: one owning root, any number of borrowed views
//		• gonum bridges: hand a view to gonum (and back) without a copy
//
// ✨ Why choose unsized?
//
//   - Safe at the surface: every accessor bounds-checks and returns an error
//   - No hidden allocations: only Compact and FromDense allocate
//   - Ownership by type: only sparse.Owned can release storage, exactly once
//
// Everything is organized under four subpackages:
//
//	core/  : sentinel errors, Range, the optional Zeroer capability, formatting options
//	slice/ : 1-D View and the owning Box
//	matrix/: Dense, Strided, Row, Col and the gonum interop
//	sparse/: CRS Owned root, Mat, Row, Vector and the FromDense builder
//
// Quick ASCII example:
//
//	buf: 0 1 2 3 4 5 6 7 8 9 8 7 6 5 4
//
//	Reshape(buf, 3, 5)         Sub(1..3, 1..4)   (stride 5)
//	[0, 1, 2, 3, 4]
//	[5, 6, 7, 8, 9]     →      [6, 7, 8]
//	[8, 7, 6, 5, 4]            [7, 6, 5]
//
// Install:
//
//	go get github.com/katalvlaran/unsized
package unsized
