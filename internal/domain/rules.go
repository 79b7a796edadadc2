package domain

// Direction is a unit step along a line orientation.
type Direction struct {
	DColumn int
	DRow    int
}

func (d Direction) Reverse() Direction {
	return Direction{DColumn: -d.DColumn, DRow: -d.DRow}
}

// Orientations are checked in this order: horizontal, vertical,
// ascending diagonal, descending diagonal.
var Orientations = []Direction{
	{DColumn: 1, DRow: 0},
	{DColumn: 0, DRow: 1},
	{DColumn: 1, DRow: 1},
	{DColumn: 1, DRow: -1},
}

type WinResult struct {
	Won    bool
	Player PlayerID
	Line   []Position
}

// ScanLine returns the consecutive run of player's cells through (column, row)
// along dir, ordered in the direction of dir. The run is empty when the anchor
// cell is not owned by player.
func ScanLine(board *Board, column, row int, dir Direction, player PlayerID) []Position {
	if cell, err := board.CellAt(column, row); err != nil || cell != player {
		return nil
	}

	// walk backwards to the start of the run
	startCol, startRow := column, row
	for {
		c, r := startCol-dir.DColumn, startRow-dir.DRow
		if !board.InBounds(c, r) || board.cells[c][r] != player {
			break
		}
		startCol, startRow = c, r
	}

	run := []Position{}
	for c, r := startCol, startRow; board.InBounds(c, r) && board.cells[c][r] == player; c, r = c+dir.DColumn, r+dir.DRow {
		run = append(run, Position{Column: c, Row: r})
	}
	return run
}

// CheckWin only looks at lines passing through the cell that was just played,
// since no other cell can complete a new line. The reported line is the first
// ToWin cells of the run, lowest column first (lowest row first for vertical).
func CheckWin(board *Board, column, row int, player PlayerID) WinResult {
	if player == Empty {
		return WinResult{}
	}

	for _, dir := range Orientations {
		run := ScanLine(board, column, row, dir, player)
		if len(run) >= ToWin {
			return WinResult{Won: true, Player: player, Line: run[:ToWin:ToWin]}
		}
	}

	return WinResult{}
}
