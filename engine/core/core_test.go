package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierPoolReusesReleasedIDs(t *testing.T) {
	p := NewIdentifierPool(4)

	a := p.Acquire("a")
	b := p.Acquire("b")
	c := p.Acquire("c")
	assert.Equal(t, []uint32{0, 1, 2}, []uint32{a, b, c})

	require.NoError(t, p.Release(b))
	assert.Nil(t, p.Owner(b))
	assert.Equal(t, 2, p.InUse())

	d := p.Acquire("d")
	assert.Equal(t, b, d)
	assert.Equal(t, "d", p.Owner(d))
}

func TestIdentifierPoolReleaseErrors(t *testing.T) {
	p := NewIdentifierPool(0)
	assert.Error(t, p.Release(0))

	id := p.Acquire(struct{}{})
	require.NoError(t, p.Release(id))
	assert.Error(t, p.Release(id), "double release")
}

func TestMetricsFrameCounters(t *testing.T) {
	m := NewMetrics()
	m.Frame.Draws = 3
	m.Frame.VAOCacheHits = 2
	m.BeginFrame()
	m.Frame.Draws = 1
	m.BeginFrame()

	assert.Equal(t, 4, m.Total.Draws)
	assert.Equal(t, 2, m.Total.VAOCacheHits)
	assert.Zero(t, m.Frame.Draws)
}

func TestMetricsUpdateAverages(t *testing.T) {
	m := NewMetrics()
	ticked := false
	for i := 0; i < int(AVG_COUNT); i++ {
		ticked = m.Update(0.016) || ticked
	}
	assert.InDelta(t, 16.0, m.FrameTime(), 0.0001)
	assert.False(t, ticked)

	for i := 0; i < 40; i++ {
		ticked = m.Update(0.016) || ticked
	}
	assert.True(t, ticked)
	assert.Greater(t, m.FPS, 0.0)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)

	_, err = ParseLogLevel("chatty")
	assert.Error(t, err)
}
