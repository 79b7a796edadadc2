package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/iamasit07/connect-four/internal/domain"
)

type Config struct {
	BoardWidth     int           `yaml:"board-width" env:"BOARD_WIDTH" env-default:"7"`
	BoardHeight    int           `yaml:"board-height" env:"BOARD_HEIGHT" env-default:"7"`
	PlayerTints    []string      `yaml:"player-tints" env:"PLAYER_TINTS" env-default:"3643f4,3bebff"`
	FallDuration   time.Duration `yaml:"fall-duration" env:"FALL_DURATION" env-default:"400ms"`
	CursorDuration time.Duration `yaml:"cursor-duration" env:"CURSOR_DURATION" env-default:"1ms"`
	Debug          bool          `yaml:"debug" env:"DEBUG" env-default:"false"`
}

// LoadConfig reads the YAML file at path when one is given, then lets the
// environment override it. Without a path only the environment and the
// defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("invalid board size %dx%d: %w", c.BoardWidth, c.BoardHeight, domain.ErrInvalidDimensions)
	}
	if c.FallDuration < 0 || c.CursorDuration < 0 {
		return errors.New("animation durations cannot be negative")
	}
	if _, err := c.Tints(); err != nil {
		return err
	}
	return nil
}

// Tints parses PlayerTints, accepting "3643f4", "#3643f4" and "0x3643f4".
func (c *Config) Tints() ([]domain.Tint, error) {
	tints := make([]domain.Tint, 0, len(c.PlayerTints))
	for _, raw := range c.PlayerTints {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		value = strings.TrimPrefix(value, "#")
		value = strings.TrimPrefix(strings.ToLower(value), "0x")

		parsed, err := strconv.ParseUint(value, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid player tint %q: %w", raw, err)
		}
		tints = append(tints, domain.Tint(parsed))
	}

	if len(tints) == 0 {
		return nil, fmt.Errorf("no player tints configured: %w", domain.ErrEmptyRotation)
	}
	return tints, nil
}
