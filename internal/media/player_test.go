package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_LoopsThroughFrames(t *testing.T) {
	p := NewPlayer([]time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond})

	assert.False(t, p.Advance(99*time.Millisecond))
	assert.Equal(t, 0, p.Index())

	assert.True(t, p.Advance(time.Millisecond))
	assert.Equal(t, 1, p.Index())

	assert.True(t, p.Advance(150*time.Millisecond))
	assert.Equal(t, 0, p.Index(), "wraps to the first frame")

	assert.True(t, p.Advance(160*time.Millisecond))
	assert.Equal(t, 2, p.Index(), "skips frames when a tick is long")
}

func TestPlayer_SingleFrameNeverChanges(t *testing.T) {
	p := NewPlayer([]time.Duration{time.Millisecond})
	assert.False(t, p.Advance(time.Hour))
	assert.Equal(t, 0, p.Index())
}

func TestPlayer_ZeroDelaysDoNotSpin(t *testing.T) {
	p := NewPlayer([]time.Duration{0, 0})
	assert.True(t, p.Advance(time.Millisecond))
	assert.Equal(t, 1, p.Index())
}

func TestPlayer_IgnoresNonPositiveTicks(t *testing.T) {
	p := NewPlayer([]time.Duration{time.Millisecond, time.Millisecond})
	assert.False(t, p.Advance(0))
	assert.False(t, p.Advance(-time.Second))
	assert.Equal(t, 0, p.Index())
}
