package enhance

import (
	"errors"
	"fmt"
)

// TableSize is the number of entries in a lookup table, one per 3×3 block.
const TableSize = 512

var (
	// ErrTableLength indicates a table line of the wrong length.
	ErrTableLength = errors.New("enhance: table must have exactly 512 entries")
	// ErrBadPixel indicates a character other than '#' or '.'.
	ErrBadPixel = errors.New("enhance: pixels must be '#' or '.'")
	// ErrMissingSeparator indicates the blank line after the table is absent.
	ErrMissingSeparator = errors.New("enhance: expected a blank line after the table")
	// ErrEmptyImage indicates an image with no rows or no columns.
	ErrEmptyImage = errors.New("enhance: image must have at least one row and one column")
	// ErrNonRectangular indicates image rows of differing lengths.
	ErrNonRectangular = errors.New("enhance: all image rows must have the same length")
)

// Pixel is a single binary pixel.
type Pixel uint8

const (
	// Dark is rendered as '.'.
	Dark Pixel = iota
	// Light is rendered as '#'.
	Light
)

// parsePixel converts '#' and '.' to a Pixel.
func parsePixel(ch byte) (Pixel, error) {
	switch ch {
	case '#':
		return Light, nil
	case '.':
		return Dark, nil
	default:
		return Dark, fmt.Errorf("%w: got %q", ErrBadPixel, ch)
	}
}

// Byte renders the pixel as '#' or '.'.
func (p Pixel) Byte() byte {
	if p == Light {
		return '#'
	}
	return '.'
}

// Table maps a 9-bit neighbourhood index to the resulting pixel.
type Table [TableSize]Pixel

// ParseTable reads a 512-character line of '#' and '.'.
func ParseTable(s string) (Table, error) {
	var t Table
	if len(s) != TableSize {
		return t, fmt.Errorf("%w: got %d", ErrTableLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		p, err := parsePixel(s[i])
		if err != nil {
			return t, fmt.Errorf("table index %d: %w", i, err)
		}
		t[i] = p
	}

	return t, nil
}

// DefaultRule describes how the colour of the infinite background evolves.
type DefaultRule int

const (
	// RuleAlwaysDark applies when Table[0] is dark: an all-dark block stays dark.
	RuleAlwaysDark DefaultRule = iota
	// RuleAlternating applies when Table[0] is lit and Table[511] is dark.
	RuleAlternating
	// RuleFlipsOnce applies when both Table[0] and Table[511] are lit.
	RuleFlipsOnce
)

// RuleFor picks the background rule implied by t.
func RuleFor(t Table) DefaultRule {
	switch {
	case t[0] == Dark:
		return RuleAlwaysDark
	case t[TableSize-1] == Dark:
		return RuleAlternating
	default:
		return RuleFlipsOnce
	}
}

// Background returns the colour of every pixel outside the known image after
// the given number of enhancement steps. The canvas starts dark.
func (r DefaultRule) Background(steps int) Pixel {
	switch r {
	case RuleAlternating:
		if steps%2 == 1 {
			return Light
		}
		return Dark
	case RuleFlipsOnce:
		if steps > 0 {
			return Light
		}
		return Dark
	default:
		return Dark
	}
}

// String implements fmt.Stringer.
func (r DefaultRule) String() string {
	switch r {
	case RuleAlwaysDark:
		return "always-dark"
	case RuleAlternating:
		return "alternating"
	case RuleFlipsOnce:
		return "flips-once"
	default:
		return fmt.Sprintf("DefaultRule(%d)", int(r))
	}
}
