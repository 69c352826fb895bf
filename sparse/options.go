// SPDX-License-Identifier: MIT

// Package sparse: functional configuration of owning roots.
//
// Design goals:
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

import "fmt"

// Search selects how a stored column is located inside one row.
type Search int

const (
	// Linear scans the row and stops as soon as a stored column exceeds the
	// target (relies on sorted indices). Best for short rows.
	Linear Search = iota

	// Binary bisects the row's sorted column indices.
	Binary
)

// DefaultSearch is the lookup strategy used when WithSearch is not given.
const DefaultSearch = Linear

// String returns the strategy name.
func (s Search) String() string {
	switch s {
	case Linear:
		return "linear"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Search(%d)", int(s))
	}
}

// Stats describes the storage handed to a release hook.
type Stats struct {
	NRows int // number of rows of the owning root
	NCols int // number of columns
	NNZ   int // number of stored values
}

// Option configures an owning root at construction.
type Option func(*options)

type options struct {
	search    Search      // DefaultSearch
	onRelease func(Stats) // nil: no hook
}

func defaultOptions() options { return options{search: DefaultSearch} }

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSearch sets the in-row lookup strategy. Panics on an unknown strategy.
func WithSearch(s Search) Option {
	if s != Linear && s != Binary {
		panic("sparse: WithSearch: unknown strategy " + s.String())
	}

	return func(o *options) { o.search = s }
}

// WithReleaseHook registers fn to run exactly once, when the owning root is
// released. A nil fn clears any previously set hook.
func WithReleaseHook(fn func(Stats)) Option {
	return func(o *options) { o.onRelease = fn }
}
