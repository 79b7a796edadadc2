// Command connect4 plays Connect Four in the terminal. It drives a game
// session the way a graphical front end would: it maps input to columns,
// waits out the animation durations and reports completion back to the
// session.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/service/game"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[CONFIG] Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args, os.Stderr)
	stop()
	os.Exit(code)
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "connect4",
		Usage: "play Connect Four in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.IntFlag{Name: "width", Usage: "number of columns"},
			&cli.IntFlag{Name: "height", Usage: "number of rows"},
			&cli.DurationFlag{Name: "fall", Usage: "token fall duration"},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging"},
		},
		Action: run,
	}
}

// execute runs the command and returns the exit code. Errors go straight to
// stderr because run may have silenced the default logger.
func execute(ctx context.Context, args []string, stderr io.Writer) int {
	if err := newCommand().Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "connect4: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.IsSet("width") {
		cfg.BoardWidth = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		cfg.BoardHeight = int(cmd.Int("height"))
	}
	if cmd.IsSet("fall") {
		cfg.FallDuration = cmd.Duration("fall")
	}
	if cmd.IsSet("debug") {
		cfg.Debug = cmd.Bool("debug")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
		log.SetOutput(io.Discard)
	}

	tints, err := cfg.Tints()
	if err != nil {
		return err
	}

	svc := game.NewService(cfg.BoardWidth, cfg.BoardHeight, tints, log.Default())
	term := &Terminal{
		In:             os.Stdin,
		Out:            os.Stdout,
		FallDuration:   cfg.FallDuration,
		CursorDuration: cfg.CursorDuration,
		Color:          true,
		Sleep:          sleep,
	}
	return term.Play(ctx, svc)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
