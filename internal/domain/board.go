package domain

import (
	"fmt"
	"strings"
)

// Board is a width x height grid stored column-major, cells[column][row],
// with row 0 at the floor.
type Board struct {
	width  int
	height int
	cells  [][]PlayerID
}

func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]PlayerID, width)
	for i := range cells {
		cells[i] = make([]PlayerID, height)
	}

	return &Board{width: width, height: height, cells: cells}, nil
}

func (b *Board) Dimensions() (int, int) {
	return b.width, b.height
}

func (b *Board) InBounds(column, row int) bool {
	return column >= 0 && column < b.width && row >= 0 && row < b.height
}

func (b *Board) CellAt(column, row int) (PlayerID, error) {
	if !b.InBounds(column, row) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, column, row)
	}
	return b.cells[column][row], nil
}

// LandingRow returns the lowest empty row of the column, scanning up from the floor.
func (b *Board) LandingRow(column int) (int, error) {
	if column < 0 || column >= b.width {
		return -1, fmt.Errorf("%w: column %d", ErrOutOfBounds, column)
	}

	for row := 0; row < b.height; row++ {
		if b.cells[column][row] == Empty {
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// Place marks the cell as owned by player. row must come from LandingRow
// for the same column with no mutation in between.
func (b *Board) Place(column, row int, player PlayerID) error {
	if !b.InBounds(column, row) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, column, row)
	}
	if player <= Empty {
		return fmt.Errorf("%w: player %d", ErrInvalidPlacement, player)
	}
	if b.cells[column][row] != Empty {
		return fmt.Errorf("%w: (%d,%d) held by player %d", ErrInvalidPlacement, column, row, b.cells[column][row])
	}
	// a token must rest on the floor or on another token
	if row > 0 && b.cells[column][row-1] == Empty {
		return fmt.Errorf("%w: (%d,%d) has an empty cell below", ErrInvalidPlacement, column, row)
	}

	b.cells[column][row] = player
	return nil
}

// only the top row needs checking because columns fill bottom-up
func (b *Board) IsFull() bool {
	for c := 0; c < b.width; c++ {
		if b.cells[c][b.height-1] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Occupied() int {
	count := 0
	for c := range b.cells {
		for _, cell := range b.cells[c] {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// this creates a deep copy of the grid
func (b *Board) Snapshot() [][]PlayerID {
	grid := make([][]PlayerID, len(b.cells))
	for i := range b.cells {
		grid[i] = make([]PlayerID, len(b.cells[i]))
		copy(grid[i], b.cells[i])
	}
	return grid
}

// String draws the grid top row first, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := b.height - 1; row >= 0; row-- {
		for c := 0; c < b.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if cell := b.cells[c][row]; cell == Empty {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
