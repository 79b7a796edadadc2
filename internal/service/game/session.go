package game

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
)

var (
	ErrActorBusy        = errors.New("actor is still animating")
	ErrColumnOutOfRange = errors.New("column is outside the board")
)

// CursorMove tells the renderer how far to slide the cursor. Complete must be
// called once the slide has finished; until then further moves are refused.
type CursorMove struct {
	From     int
	To       int
	Delta    int
	Complete func()
}

// Drop describes an accepted token drop. The token enters at SourceRow, the
// cell right above the top row, and falls Distance rows to TargetRow. The move
// is committed when Complete is called.
type Drop struct {
	Column    int
	SourceRow int
	TargetRow int
	Distance  int
	Player    domain.PlayerID
	Tint      domain.Tint
	Complete  func()
}

type ResolutionHandler func(domain.Resolution)

// TurnController is the part of domain.Game a session drives. Board and
// rotation are only reachable through these read-only views.
type TurnController interface {
	BeginMove(column int) (domain.PendingMove, error)
	CommitMove() (domain.Resolution, error)
	Dimensions() (int, int)
	Snapshot() [][]domain.PlayerID
	String() string
	ActivePlayer() domain.PlayerID
	DisplayTint(player domain.PlayerID) (domain.Tint, bool)
	State() domain.State
	IsFinished() bool
}

// Session is one game as seen by the renderer. All methods are safe to call
// from completion callbacks.
type Session struct {
	ID        string
	CreatedAt time.Time

	game         TurnController
	cursor       *Actor
	token        *Actor
	cursorColumn int
	handlers     []ResolutionHandler
	logger       *log.Logger
	mu           sync.Mutex
}

func NewSession(width, height int, tints []domain.Tint, logger *log.Logger) (*Session, error) {
	g, err := domain.NewGame(width, height, tints)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s, err := newSession(g, logger)
	if err != nil {
		return nil, err
	}

	s.logger.Printf("[SESSION] Created session %s: %dx%d board, %d players", s.ID, width, height, len(tints))
	return s, nil
}

func newSession(g TurnController, logger *log.Logger) (*Session, error) {
	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		game:      g,
		cursor:    NewActor("cursor"),
		token:     NewActor("token"),
		logger:    logger,
	}, nil
}

// OnTurnResolved registers a handler called after every committed drop.
func (s *Session) OnTurnResolved(handler ResolutionHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers = append(s.handlers, handler)
}

func (s *Session) RequestCursorMove(target int) (CursorMove, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, _ := s.game.Dimensions()
	if target < 0 || target >= width {
		return CursorMove{}, ErrColumnOutOfRange
	}

	ticket, ok := s.cursor.Begin()
	if !ok {
		return CursorMove{}, ErrActorBusy
	}

	from := s.cursorColumn
	delta := target - from
	return CursorMove{
		From:     from,
		To:       target,
		Delta:    delta,
		Complete: func() { s.finishCursor(ticket, delta) },
	}, nil
}

func (s *Session) finishCursor(ticket uint64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cursor.Finish(ticket) {
		return
	}
	s.cursorColumn += delta
}

// RequestDrop accepts a drop into column or explains why it was declined.
// Declined drops (full column, busy token, finished game) change nothing.
func (s *Session) RequestDrop(column int) (Drop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, height := s.game.Dimensions()
	if column < 0 || column >= width {
		return Drop{}, ErrColumnOutOfRange
	}
	if s.token.Busy() {
		return Drop{}, ErrActorBusy
	}

	move, err := s.game.BeginMove(column)
	if err != nil {
		return Drop{}, err
	}

	ticket, _ := s.token.Begin()

	return Drop{
		Column:    column,
		SourceRow: height,
		TargetRow: move.Row,
		Distance:  height - move.Row,
		Player:    move.Player,
		Tint:      move.Tint,
		Complete:  func() { s.finishDrop(ticket) },
	}, nil
}

func (s *Session) finishDrop(ticket uint64) {
	s.mu.Lock()
	if !s.token.Finish(ticket) {
		s.mu.Unlock()
		return
	}

	res, err := s.game.CommitMove()
	handlers := make([]ResolutionHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	if err != nil {
		s.logger.Printf("[GAME] Session %s: failed to commit drop: %v", s.ID, err)
		return
	}

	switch res.Outcome {
	case domain.OutcomeWin:
		s.logger.Printf("[GAME] Session %s: player %d wins after %d moves", s.ID, res.Player, res.MoveCount)
	case domain.OutcomeDraw:
		s.logger.Printf("[GAME] Session %s: draw after %d moves", s.ID, res.MoveCount)
	}

	// handlers run without the lock so they can request the next move
	for _, handler := range handlers {
		handler(res)
	}
}

func (s *Session) CursorColumn() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursorColumn
}

func (s *Session) CursorBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor.Busy()
}

func (s *Session) TokenBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token.Busy()
}

func (s *Session) ActivePlayer() domain.PlayerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.ActivePlayer()
}

func (s *Session) DisplayTint(player domain.PlayerID) (domain.Tint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.DisplayTint(player)
}

func (s *Session) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.State()
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.IsFinished()
}

func (s *Session) Dimensions() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Dimensions()
}

func (s *Session) Snapshot() [][]domain.PlayerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Snapshot()
}

func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.String()
}
