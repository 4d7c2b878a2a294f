package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads one grid row per line, converting each character '0'..'9'
// to its value. Trailing carriage returns and trailing blank lines are
// ignored; a blank line inside the grid becomes an empty row.
// Shape is not validated here; see NewTiledGrid.
func ParseDigits(r io.Reader) ([][]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]int, 0, len(lines))
	for y, line := range lines {
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			ch := line[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadDigit, ch, y+1, i+1)
			}
			row[i] = int(ch - '0')
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Load parses r with ParseDigits and builds a TiledGrid from the result,
// so malformed input is rejected before any graph query is made.
func Load(r io.Reader, opts ...Option) (*TiledGrid, error) {
	rows, err := ParseDigits(r)
	if err != nil {
		return nil, err
	}

	return NewTiledGrid(rows, opts...)
}
