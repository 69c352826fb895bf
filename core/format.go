// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------

const (
	_fmtListOpen  = "["
	_fmtListClose = "]"
)

// Format is a resolved, immutable set of rendering options.
// Views build one per String/Format call; the zero Format is not usable,
// always obtain it through NewFormat.
type Format struct {
	o Options
}

// NewFormat applies opts over the defaults and freezes the result.
// Complexity: O(len(opts)).
func NewFormat(opts ...Option) Format {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return Format{o: o}
}

// Elem renders a single element with the configured verb.
func (f Format) Elem(v any) string { return fmt.Sprintf(f.o.verb, v) }

// Sep returns the element separator.
func (f Format) Sep() string { return f.o.sep }

// RowSep returns the row separator.
func (f Format) RowSep() string { return f.o.rowSep }

// Unset reports the marker for unset sparse positions, if one was configured.
func (f Format) Unset() (string, bool) { return f.o.unset, f.o.useUnset }

// WriteList writes "[e0, e1, ...]" for n elements obtained through elem.
// MAIN DESCRIPTION:
//   - Shared list renderer for rows, columns, slices and sparse vectors.
//
// Implementation:
//   - Stage 1: open bracket.
//   - Stage 2: for i in [0,n) write separator (except first) and elem(i).
//   - Stage 3: close bracket.
//
// Behavior highlights:
//   - elem returns the already rendered cell, so sparse callers can emit the
//     unset marker without going through the verb.
//
// Complexity:
//   - Time O(n), Space O(1) beyond the builder.
func (f Format) WriteList(b *strings.Builder, n int, elem func(i int) string) {
	b.WriteString(_fmtListOpen)
	for i := 0; i < n; i++ {
		if i != 0 {
			b.WriteString(f.o.sep)
		}
		b.WriteString(elem(i))
	}
	b.WriteString(_fmtListClose)
}

// WriteRows writes nrows lists separated by the row separator (no trailing one).
// Complexity: O(total cells).
func (f Format) WriteRows(b *strings.Builder, nrows int, row func(b *strings.Builder, r int)) {
	for r := 0; r < nrows; r++ {
		if r != 0 {
			b.WriteString(f.o.rowSep)
		}
		row(b, r)
	}
}
