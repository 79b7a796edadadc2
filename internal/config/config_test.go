package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect-four/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"BOARD_WIDTH", "BOARD_HEIGHT", "PLAYER_TINTS", "FALL_DURATION", "CURSOR_DURATION", "DEBUG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.BoardWidth)
	assert.Equal(t, 7, cfg.BoardHeight)
	assert.Equal(t, 400*time.Millisecond, cfg.FallDuration)
	assert.Equal(t, time.Millisecond, cfg.CursorDuration)
	assert.False(t, cfg.Debug)

	tints, err := cfg.Tints()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTints, tints)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("BOARD_WIDTH", "9")
	t.Setenv("BOARD_HEIGHT", "6")
	t.Setenv("PLAYER_TINTS", "#ff0000,0x00FF00,0000ff")
	t.Setenv("FALL_DURATION", "1s")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.BoardWidth)
	assert.Equal(t, 6, cfg.BoardHeight)
	assert.Equal(t, time.Second, cfg.FallDuration)

	tints, err := cfg.Tints()
	require.NoError(t, err)
	assert.Equal(t, []domain.Tint{0xff0000, 0x00ff00, 0x0000ff}, tints)
}

func TestLoadConfig_File(t *testing.T) {
	for _, key := range []string{"BOARD_WIDTH", "BOARD_HEIGHT", "PLAYER_TINTS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	content := "board-width: 5\nboard-height: 4\nplayer-tints:\n  - \"aa0000\"\n  - \"00aa00\"\n  - \"0000aa\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.BoardWidth)
	assert.Equal(t, 4, cfg.BoardHeight)
	tints, err := cfg.Tints()
	require.NoError(t, err)
	assert.Len(t, tints, 3)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{BoardWidth: 7, BoardHeight: 7, PlayerTints: []string{"3643f4"}}
	require.NoError(t, valid.Validate())

	t.Run("Board size", func(t *testing.T) {
		cfg := valid
		cfg.BoardHeight = 0
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidDimensions)
	})

	t.Run("No tints", func(t *testing.T) {
		cfg := valid
		cfg.PlayerTints = []string{" ", ""}
		require.ErrorIs(t, cfg.Validate(), domain.ErrEmptyRotation)
	})

	t.Run("Bad tint", func(t *testing.T) {
		cfg := valid
		cfg.PlayerTints = []string{"blue"}
		require.Error(t, cfg.Validate())
	})

	t.Run("Negative duration", func(t *testing.T) {
		cfg := valid
		cfg.FallDuration = -time.Second
		require.Error(t, cfg.Validate())
	})
}
