// SPDX-License-Identifier: MIT

// Package core: functional configuration of the debug-rendering path.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewFormat, which resolves options into an immutable Format.
//
// Design goals:
//   - Deterministic output: same view, same options, same string.
//   - Rendering is total: formatting a valid view never fails.
//   - Options never influence indexing; they only shape String/Format output.
package core

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb is the fmt verb applied to every element.
	DefaultVerb = "%v"

	// DefaultSeparator separates elements inside one row.
	DefaultSeparator = ", "

	// DefaultRowSeparator separates rows of a matrix dump.
	DefaultRowSeparator = "\n"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid   = "core: WithVerb: verb must start with '%'"
	panicMarkerInvalid = "core: WithUnsetMarker: marker must be non-empty"
)

// ---------- Public option type (functional) ----------

// Option mutates formatting options. Safe to apply repeatedly (last wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	verb     string // fmt verb per element; DefaultVerb
	sep      string // element separator; DefaultSeparator
	rowSep   string // row separator; DefaultRowSeparator
	unset    string // marker for unset sparse positions
	useUnset bool   // render unset marker instead of the zero value
}

// defaultOptions returns Options populated from the documented defaults.
func defaultOptions() Options {
	return Options{
		verb:   DefaultVerb,
		sep:    DefaultSeparator,
		rowSep: DefaultRowSeparator,
	}
}

// WithVerb sets the fmt verb used for every element (e.g. "%g", "%5.2f").
// Panics if verb does not start with '%'.
func WithVerb(verb string) Option {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// WithSeparator sets the separator placed between elements of one row.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.sep = sep }
}

// WithRowSeparator sets the separator placed between rows.
func WithRowSeparator(sep string) Option {
	return func(o *Options) { o.rowSep = sep }
}

// WithUnsetMarker renders unset sparse positions as marker (for instance "_")
// instead of the element type's zero value. Dense views ignore it.
// Panics on an empty marker.
func WithUnsetMarker(marker string) Option {
	if marker == "" {
		panic(panicMarkerInvalid)
	}

	return func(o *Options) {
		o.unset = marker
		o.useUnset = true
	}
}
