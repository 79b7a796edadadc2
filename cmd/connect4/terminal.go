package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

var errQuit = errors.New("quit")

// Terminal is a text front end for a game session. Columns are typed 1-based.
type Terminal struct {
	In             io.Reader
	Out            io.Writer
	FallDuration   time.Duration
	CursorDuration time.Duration
	Color          bool
	Sleep          func(context.Context, time.Duration) error
}

// Play runs games until the player quits or declines a rematch.
func (t *Terminal) Play(ctx context.Context, svc *game.Service) error {
	scanner := bufio.NewScanner(t.In)

	for {
		session, err := svc.NewSession()
		if err != nil {
			return err
		}

		if err := t.playOne(ctx, session, scanner); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		fmt.Fprint(t.Out, "Play again? [y/N] ")
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			return scanner.Err()
		}
	}
}

func (t *Terminal) playOne(ctx context.Context, s *game.Session, scanner *bufio.Scanner) error {
	s.OnTurnResolved(func(res domain.Resolution) {
		t.announce(s, res)
	})

	t.draw(s)
	t.prompt(s)

	for !s.IsFinished() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			return errQuit
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q" || line == "quit":
			return errQuit
		case strings.HasPrefix(line, "m "):
			if err := t.moveCursor(ctx, s, t.resolveColumn(s, strings.TrimPrefix(line, "m "))); err != nil {
				return err
			}
			t.draw(s)
		default:
			column := t.resolveColumn(s, line)
			if err := t.moveCursor(ctx, s, column); err != nil {
				return err
			}
			if err := t.drop(ctx, s, column); err != nil {
				return err
			}
		}

		if !s.IsFinished() {
			t.prompt(s)
		}
	}

	return nil
}

// resolveColumn maps typed input to a column index, or -1 when it names none.
func (t *Terminal) resolveColumn(s *game.Session, input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return -1
	}
	width, _ := s.Dimensions()
	if n < 1 || n > width {
		return -1
	}
	return n - 1
}

// declined requests are ignored, the player just tries again
func (t *Terminal) moveCursor(ctx context.Context, s *game.Session, column int) error {
	move, err := s.RequestCursorMove(column)
	if err != nil {
		return nil
	}

	if err := t.Sleep(ctx, t.CursorDuration); err != nil {
		return err
	}
	move.Complete()
	return nil
}

func (t *Terminal) drop(ctx context.Context, s *game.Session, column int) error {
	d, err := s.RequestDrop(column)
	if err != nil {
		return nil
	}

	if err := t.Sleep(ctx, t.FallDuration); err != nil {
		return err
	}
	d.Complete()
	return nil
}

func (t *Terminal) announce(s *game.Session, res domain.Resolution) {
	t.draw(s)

	switch res.Outcome {
	case domain.OutcomeWin:
		cells := make([]string, len(res.Line))
		for i, pos := range res.Line {
			cells[i] = fmt.Sprintf("(%d,%d)", pos.Column+1, pos.Row+1)
		}
		fmt.Fprintf(t.Out, "Player %d wins! %s\n", res.Player, strings.Join(cells, " "))
	case domain.OutcomeDraw:
		fmt.Fprintln(t.Out, "Draw, the board is full.")
	}
}

func (t *Terminal) prompt(s *game.Session) {
	width, _ := s.Dimensions()
	player := s.ActivePlayer()
	fmt.Fprintf(t.Out, "Player %d %s, column [1-%d] (m N moves the cursor, q quits): ", player, t.token(s, player), width)
}

func (t *Terminal) draw(s *game.Session) {
	width, height := s.Dimensions()
	grid := s.Snapshot()
	cursor := s.CursorColumn()

	var sb strings.Builder
	sb.WriteByte('\n')
	for c := 0; c < width; c++ {
		if c == cursor {
			sb.WriteString(" v")
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteByte('\n')

	for row := height - 1; row >= 0; row-- {
		for c := 0; c < width; c++ {
			sb.WriteByte(' ')
			sb.WriteString(t.token(s, grid[c][row]))
		}
		sb.WriteByte('\n')
	}

	for c := 0; c < width; c++ {
		fmt.Fprintf(&sb, " %d", (c+1)%10)
	}
	sb.WriteByte('\n')

	fmt.Fprint(t.Out, sb.String())
}

func (t *Terminal) token(s *game.Session, player domain.PlayerID) string {
	if player == domain.Empty {
		return "."
	}
	tint, ok := s.DisplayTint(player)
	if !t.Color || !ok {
		return strconv.Itoa(int(player))
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm●\x1b[0m", tint>>16&0xff, tint>>8&0xff, tint&0xff)
}
