package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ProxyMap is a text block staged for conversion into a Map: its
// dimensions plus all rows concatenated into Text without separators.
// It holds no typed data; pass it to Convert once.
type ProxyMap struct {
	Width, Height int
	Text          string
}

// Parse stages a rectangular text block.
//
// Behavior:
//  1. Trim surrounding whitespace of the whole block (leading and trailing
//     blank lines included).
//  2. Split into lines on "\n"; a trailing "\r" per line is dropped.
//  3. Height = number of lines; Width = rune count of the first line,
//     unless WithWidth overrides it.
//  4. Every line must be exactly Width runes. Shorter lines are padded
//     under WithPadding, longer ones cut under WithTruncate; otherwise
//     ErrNonRectangular is returned with the offending line number.
//
// Returns ErrEmptyGrid for blank input.
// Complexity: O(len(text)).
func Parse(text string, opts ...ParseOption) (ProxyMap, error) {
	o := gatherParseOptions(opts...)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ProxyMap{}, fmt.Errorf("Parse: %w", ErrEmptyGrid)
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	width := o.width
	if width == 0 {
		width = utf8.RuneCountInString(lines[0])
	}

	var sb strings.Builder
	sb.Grow(len(trimmed))
	for i, line := range lines {
		n := utf8.RuneCountInString(line)
		switch {
		case n < width && o.pad:
			sb.WriteString(line)
			sb.WriteString(strings.Repeat(string(o.padRune), width-n))
		case n > width && o.truncate:
			sb.WriteString(string([]rune(line)[:width]))
		case n != width:
			return ProxyMap{}, fmt.Errorf("Parse: line %d has %d runes, want %d: %w",
				i+1, n, width, ErrNonRectangular)
		default:
			sb.WriteString(line)
		}
	}

	return ProxyMap{Width: width, Height: len(lines), Text: sb.String()}, nil
}

// Convert applies parser to the flattened text of p and assembles a Map
// with p's dimensions. The parser must yield exactly Width×Height values,
// otherwise ErrLengthMismatch is returned.
//
// Convert is a function rather than a method because Go methods cannot
// declare their own type parameters.
func Convert[T comparable](p ProxyMap, parser func(string) []T) (*Map[T], error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("Convert(%d,%d): %w", p.Width, p.Height, ErrEmptyGrid)
	}
	values := parser(p.Text)
	if len(values) != p.Width*p.Height {
		return nil, fmt.Errorf("Convert(%d,%d): parser produced %d values, want %d: %w",
			p.Width, p.Height, len(values), p.Width*p.Height, ErrLengthMismatch)
	}

	return &Map[T]{width: p.Width, height: p.Height, values: values}, nil
}

// ParseMap is Parse followed by Convert.
func ParseMap[T comparable](text string, parser func(string) []T, opts ...ParseOption) (*Map[T], error) {
	p, err := Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	return Convert(p, parser)
}

// Runes is the identity per-character parser: one rune per cell.
func Runes(s string) []rune {
	return []rune(s)
}
