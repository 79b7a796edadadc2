package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor(t *testing.T) {
	actor := NewActor("token")
	assert.Equal(t, "token", actor.Name())
	assert.Equal(t, ActorIdle, actor.State())

	first, ok := actor.Begin()
	require.True(t, ok)
	assert.Equal(t, ActorAnimating, actor.State())

	_, ok = actor.Begin()
	assert.False(t, ok, "second begin while animating")

	assert.False(t, actor.Finish(first+1), "unknown ticket")
	assert.True(t, actor.Busy())

	assert.True(t, actor.Finish(first))
	assert.False(t, actor.Finish(first), "repeated finish")
	assert.False(t, actor.Busy())

	// a stale ticket cannot end a later animation
	second, ok := actor.Begin()
	require.True(t, ok)
	assert.NotEqual(t, first, second)
	assert.False(t, actor.Finish(first))
	assert.True(t, actor.Busy())
	assert.True(t, actor.Finish(second))
}
