package schematic

import "fmt"

// A Position is a (row, column) coordinate. It may lie outside the grid.
type Position struct {
	Row, Col int
}

func (p Position) add(dr, dc int) Position {
	return Position{p.Row + dr, p.Col + dc}
}

// Adjacent returns the 8 positions around p in row-major order.
func (p Position) Adjacent() []Position {
	adj := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			adj = append(adj, p.add(dr, dc))
		}
	}
	return adj
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
