package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
	ToWin         = 4
)

// Tint is an opaque presentation token handed back to the renderer.
type Tint uint32

var DefaultTints = []Tint{0x3643f4, 0x3bebff}

// Position is a board coordinate. Row 0 is the floor.
type Position struct {
	Column int
	Row    int
}

// to represent the state of the turn controller
type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateResolving    State = "resolving"
	StateGameOver     State = "game_over"
)

type Outcome string

const (
	OutcomeMoveContinues Outcome = "move_continues"
	OutcomeWin           Outcome = "win"
	OutcomeDraw          Outcome = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds       Error = "position out of bounds"
	ErrColumnFull        Error = "column is full"
	ErrInvalidPlacement  Error = "invalid placement"
	ErrGameOver          Error = "game is over"
	ErrNotResolving      Error = "no move is being resolved"
	ErrAlreadyResolving  Error = "a move is already being resolved"
	ErrEmptyRotation     Error = "rotation needs at least one player"
	ErrInvalidDimensions Error = "board dimensions must be positive"
)
