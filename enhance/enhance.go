package enhance

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// State is one snapshot of the simulation: the lookup table, the background
// rule derived from it, the known W×H image and the number of steps applied.
type State struct {
	table  Table
	rule   DefaultRule
	pixels []Pixel
	width  int
	height int
	steps  int
}

// NewState builds the initial State from a table and a rectangular image.
// The image is deep-copied.
func NewState(t Table, image [][]Pixel) (*State, error) {
	if len(image) == 0 || len(image[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(image), len(image[0])
	pixels := make([]Pixel, 0, w*h)
	for _, row := range image {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		pixels = append(pixels, row...)
	}

	return &State{
		table:  t,
		rule:   RuleFor(t),
		pixels: pixels,
		width:  w,
		height: h,
	}, nil
}

// Parse reads the table line, a blank separator line and the image rows.
// Trailing carriage returns and trailing blank lines are ignored.
func Parse(r io.Reader) (*State, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, TableSize+2), 1<<20)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("enhance: reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: got 0", ErrTableLength)
	}

	t, err := ParseTable(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines) == 1 {
		return nil, ErrEmptyImage
	}
	if lines[1] != "" {
		return nil, ErrMissingSeparator
	}

	image := make([][]Pixel, 0, len(lines)-2)
	for i, line := range lines[2:] {
		row := make([]Pixel, len(line))
		for x := 0; x < len(line); x++ {
			if row[x], err = parsePixel(line[x]); err != nil {
				return nil, fmt.Errorf("image line %d, column %d: %w", i+1, x+1, err)
			}
		}
		image = append(image, row)
	}

	return NewState(t, image)
}

// Width returns the width of the known image.
func (s *State) Width() int { return s.width }

// Height returns the height of the known image.
func (s *State) Height() int { return s.height }

// Steps returns the number of enhancement steps applied so far.
func (s *State) Steps() int { return s.steps }

// Rule returns the background rule chosen from the table.
func (s *State) Rule() DefaultRule { return s.rule }

// Background returns the current colour of the infinite canvas.
func (s *State) Background() Pixel { return s.rule.Background(s.steps) }

// Get returns the pixel at row y, column x. Coordinates outside the known
// image, including negative ones, read the background colour.
func (s *State) Get(y, x int) Pixel {
	if y < 0 || y >= s.height || x < 0 || x >= s.width {
		return s.Background()
	}
	return s.pixels[y*s.width+x]
}

// index reads the 3×3 block centred on (y,x) as a 9-bit number, top-left
// pixel first.
func (s *State) index(y, x int) int {
	idx := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			idx = idx<<1 | int(s.Get(y+dy, x+dx))
		}
	}
	return idx
}

// Step applies one enhancement and returns the resulting State. The new
// image covers one extra pixel on every side; s is not modified.
func (s *State) Step() *State {
	w, h := s.width+2, s.height+2
	pixels := make([]Pixel, 0, w*h)
	for y := -1; y <= s.height; y++ {
		for x := -1; x <= s.width; x++ {
			pixels = append(pixels, s.table[s.index(y, x)])
		}
	}

	return &State{
		table:  s.table,
		rule:   s.rule,
		pixels: pixels,
		width:  w,
		height: h,
		steps:  s.steps + 1,
	}
}

// Run applies n steps. A non-positive n returns s itself.
func (s *State) Run(n int) *State {
	cur := s
	for i := 0; i < n; i++ {
		cur = cur.Step()
	}
	return cur
}

// Lit counts the light pixels of the known image. When the background is
// lit the infinite canvas holds infinitely many more; those are not counted.
func (s *State) Lit() int {
	n := 0
	for _, p := range s.pixels {
		n += int(p)
	}
	return n
}

// String renders the known image with '#' and '.', one row per line.
func (s *State) String() string {
	var b strings.Builder
	b.Grow((s.width + 1) * s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			b.WriteByte(s.pixels[y*s.width+x].Byte())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
