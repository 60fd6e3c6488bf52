// Package grid classifies the characters of a puzzle input into cells.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type CellKind uint8

const (
	Empty CellKind = iota
	Digit
	Symbol
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

type Cell struct {
	Kind CellKind
	Char rune
}

// A Grid is a sequence of rows. Rows need not have the same length.
type Grid [][]Cell

// MalformedInputError reports a character that doesn't belong in a grid.
type MalformedInputError struct {
	Row, Col int
	Char     rune
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: unexpected character %q at row %d, column %d",
		e.Char, e.Row, e.Col)
}

// Build classifies each character of lines. Columns are counted in runes.
func Build(lines []string) (Grid, error) {
	g := make(Grid, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		c := 0
		for _, ch := range line {
			cell, ok := classify(ch)
			if !ok {
				return nil, &MalformedInputError{Row: r, Col: c, Char: ch}
			}
			row = append(row, cell)
			c++
		}
		g[r] = row
	}
	return g, nil
}

func classify(ch rune) (Cell, bool) {
	switch {
	case ch == '.':
		return Cell{Kind: Empty, Char: ch}, true
	case ch >= '0' && ch <= '9':
		return Cell{Kind: Digit, Char: ch}, true
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		return Cell{}, false
	}
	return Cell{Kind: Symbol, Char: ch}, true
}

// Read reads all of r and builds a Grid from its lines.
func Read(r io.Reader) (Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Build(lines)
}

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, cell := range row {
			b.WriteRune(cell.Char)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
