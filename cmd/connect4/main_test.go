package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute_ReportsErrors(t *testing.T) {
	// Given: logging that is already silenced, as it is without --debug
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	stderr := &bytes.Buffer{}

	// When: the command fails on an invalid board
	code := execute(context.Background(), []string{"connect4", "--width", "0"}, stderr)

	// Then: the failure still reaches stderr with a non-zero exit code
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "connect4: invalid board size 0x")
	assert.Contains(t, stderr.String(), "board dimensions must be positive")
}
