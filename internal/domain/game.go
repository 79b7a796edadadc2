package domain

import "slices"

// PendingMove is a drop that has been accepted but not yet committed.
type PendingMove struct {
	Column int
	Row    int
	Player PlayerID
	Tint   Tint
}

type Resolution struct {
	Outcome Outcome
	// next player to move, or the winner
	Player    PlayerID
	Line      []Position
	Placed    Position
	MoveCount int
}

// Game is the turn controller. It owns the board and the rotation for the
// lifetime of one game.
type Game struct {
	board     *Board
	rotation  *Rotation
	state     State
	result    Outcome
	winner    PlayerID
	winLine   []Position
	moveCount int
	pending   *PendingMove
}

func NewGame(width, height int, tints []Tint) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	rotation, err := NewRotation(tints)
	if err != nil {
		return nil, err
	}

	return &Game{
		board:    board,
		rotation: rotation,
		state:    StateAwaitingMove,
	}, nil
}

// BeginMove resolves the landing row for column and moves the game into
// StateResolving. A full column is a rejected move: nothing changes and the
// game keeps waiting for a move.
func (g *Game) BeginMove(column int) (PendingMove, error) {
	switch g.state {
	case StateGameOver:
		return PendingMove{}, ErrGameOver
	case StateResolving:
		return PendingMove{}, ErrAlreadyResolving
	}

	row, err := g.board.LandingRow(column)
	if err != nil {
		return PendingMove{}, err
	}

	player := g.rotation.ActivePlayer()
	tint, _ := g.rotation.DisplayTint(player)
	move := PendingMove{Column: column, Row: row, Player: player, Tint: tint}

	g.pending = &move
	g.state = StateResolving
	return move, nil
}

// CommitMove places the pending token, checks for a win and advances the
// rotation if the game goes on.
func (g *Game) CommitMove() (Resolution, error) {
	if g.state != StateResolving || g.pending == nil {
		return Resolution{}, ErrNotResolving
	}

	move := *g.pending
	g.pending = nil
	g.state = StateAwaitingMove

	if err := g.board.Place(move.Column, move.Row, move.Player); err != nil {
		return Resolution{}, err
	}
	g.moveCount++

	placed := Position{Column: move.Column, Row: move.Row}

	if win := CheckWin(g.board, move.Column, move.Row, move.Player); win.Won {
		g.state = StateGameOver
		g.result = OutcomeWin
		g.winner = move.Player
		g.winLine = win.Line
		return Resolution{
			Outcome:   OutcomeWin,
			Player:    move.Player,
			Line:      slices.Clone(win.Line),
			Placed:    placed,
			MoveCount: g.moveCount,
		}, nil
	}

	if g.board.IsFull() {
		g.state = StateGameOver
		g.result = OutcomeDraw
		return Resolution{Outcome: OutcomeDraw, Placed: placed, MoveCount: g.moveCount}, nil
	}

	g.rotation.Advance()
	return Resolution{
		Outcome:   OutcomeMoveContinues,
		Player:    g.rotation.ActivePlayer(),
		Placed:    placed,
		MoveCount: g.moveCount,
	}, nil
}

// MakeMove runs a whole turn without a presentation step in between.
func (g *Game) MakeMove(column int) (Resolution, error) {
	if _, err := g.BeginMove(column); err != nil {
		return Resolution{}, err
	}
	return g.CommitMove()
}

// The board and the rotation only change through BeginMove and CommitMove;
// callers get read-only views.

func (g *Game) Dimensions() (int, int) {
	return g.board.Dimensions()
}

func (g *Game) CellAt(column, row int) (PlayerID, error) {
	return g.board.CellAt(column, row)
}

func (g *Game) Occupied() int {
	return g.board.Occupied()
}

func (g *Game) IsFull() bool {
	return g.board.IsFull()
}

func (g *Game) Snapshot() [][]PlayerID {
	return g.board.Snapshot()
}

func (g *Game) String() string {
	return g.board.String()
}

func (g *Game) DisplayTint(player PlayerID) (Tint, bool) {
	return g.rotation.DisplayTint(player)
}

func (g *Game) Players() []PlayerID {
	return g.rotation.Players()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) ActivePlayer() PlayerID {
	return g.rotation.ActivePlayer()
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

// Result is empty until the game is over.
func (g *Game) Result() Outcome {
	return g.result
}

// Winner returns a copy of the winning line.
func (g *Game) Winner() (PlayerID, []Position) {
	return g.winner, slices.Clone(g.winLine)
}

func (g *Game) IsFinished() bool {
	return g.state == StateGameOver
}
