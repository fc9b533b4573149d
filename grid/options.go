package grid

import "fmt"

// Parse defaults. A zero-option Parse is strict: every line must be as wide
// as the first one.
const (
	// DefaultPad reports whether short lines are padded.
	DefaultPad = false
	// DefaultTruncate reports whether long lines are cut to the grid width.
	DefaultTruncate = false
	// DefaultWidth of 0 means "measure the first line".
	DefaultWidth = 0
)

// ParseOption configures Parse and ParseMap.
type ParseOption func(*parseOptions)

type parseOptions struct {
	pad      bool
	padRune  rune
	truncate bool
	width    int
}

// WithPadding pads lines shorter than the grid width with r instead of
// rejecting them with ErrNonRectangular.
func WithPadding(r rune) ParseOption {
	return func(o *parseOptions) {
		o.pad = true
		o.padRune = r
	}
}

// WithTruncate cuts lines longer than the grid width instead of rejecting
// them with ErrNonRectangular.
func WithTruncate() ParseOption {
	return func(o *parseOptions) {
		o.truncate = true
	}
}

// WithWidth fixes the grid width to n runes instead of measuring the first
// line. Panics if n is not positive.
func WithWidth(n int) ParseOption {
	if n <= 0 {
		panic(fmt.Sprintf("grid: WithWidth(%d): width must be > 0", n))
	}
	return func(o *parseOptions) {
		o.width = n
	}
}

// gatherParseOptions applies opts over the documented defaults.
func gatherParseOptions(opts ...ParseOption) parseOptions {
	o := parseOptions{
		pad:      DefaultPad,
		truncate: DefaultTruncate,
		width:    DefaultWidth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
