package tweens

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverTicksPlayables(t *testing.T) {
	d := NewDriver()
	a, va := newFloat(t, Config{})
	b, vb := newFloat(t, Config{})
	require.NoError(t, d.Add(a))
	require.NoError(t, d.Add(b))
	require.NoError(t, d.Add(a), "adding twice is a no-op")
	assert.Equal(t, 2, d.Len())

	a.Play()
	require.NoError(t, d.Tick(0.25))
	assert.InDelta(t, 0.25, *va, 1e-9)
	assert.Equal(t, 0.0, *vb, "idle playables do not move")
}

func TestDriverTimeScale(t *testing.T) {
	d := NewDriver()
	tw, v := newFloat(t, Config{})
	require.NoError(t, d.Add(tw))
	require.NoError(t, d.SetTimeScale(0.5))
	tw.Play()
	require.NoError(t, d.Tick(0.5))
	assert.InDelta(t, 0.25, *v, 1e-9)

	assert.ErrorIs(t, d.SetTimeScale(-1), ErrInvalidArgument)
	assert.ErrorIs(t, d.SetTimeScale(math.NaN()), ErrInvalidArgument)
	assert.Equal(t, 0.5, d.TimeScale())
}

func TestDriverRejects(t *testing.T) {
	d := NewDriver()
	assert.ErrorIs(t, d.Add(nil), ErrInvalidArgument)

	s, a, _ := overlapping(t, SequenceConfig{})
	assert.ErrorIs(t, d.Add(a.tw), ErrOwnershipConflict)
	assert.NoError(t, d.Add(s))
	assert.ErrorIs(t, d.Tick(-1), ErrInvalidArgument)
}

func TestDriverDropsNewlyOwnedPlayables(t *testing.T) {
	d := NewDriver()
	tw, _ := newFloat(t, Config{})
	require.NoError(t, d.Add(tw))

	s := newSeq(t, SequenceConfig{})
	mustInsert(t, s, 0, tw)
	require.NoError(t, d.Tick(0.1))
	assert.Equal(t, 0, d.Len())
}

func TestDriverPrunesFinished(t *testing.T) {
	d := NewDriver()
	d.SetPruneFinished(true)
	short, _ := newFloat(t, Config{})
	long, err := NewFloatTween("long", 0, 1, func(float64) {}, 5, Config{})
	require.NoError(t, err)
	require.NoError(t, d.Add(short))
	require.NoError(t, d.Add(long))
	short.Play()
	long.Play()

	require.NoError(t, d.Tick(1))
	assert.Equal(t, []Playable{long}, d.Playables())

	long.Stop()
	require.NoError(t, d.Tick(0.1))
	assert.Equal(t, 0, d.Len())
}

func TestDriverRemove(t *testing.T) {
	d := NewDriver()
	tw, _ := newFloat(t, Config{})
	require.NoError(t, d.Add(tw))
	assert.True(t, d.Remove(tw))
	assert.False(t, d.Remove(tw))
}

func TestDriverJoinsErrors(t *testing.T) {
	d := NewDriver()
	s, _, _ := overlapping(t, SequenceConfig{})
	tw, v := newFloat(t, Config{})
	require.NoError(t, d.Add(s))
	require.NoError(t, d.Add(tw))
	s.Dispose()
	tw.Play()

	err := d.Tick(0.5)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.InDelta(t, 0.5, *v, 1e-9, "healthy playables still tick")
}

type sinkRecorder struct {
	events []PhaseEvent
}

func (r *sinkRecorder) EmitPhase(ev PhaseEvent) { r.events = append(r.events, ev) }

func TestDriverEventSink(t *testing.T) {
	d := NewDriver()
	tw, _ := newFloat(t, Config{})
	require.NoError(t, d.Add(tw))

	sink := &sinkRecorder{}
	d.SetEventSink(sink)
	tw.Play()
	require.NoError(t, d.Tick(1))

	var phases []Phase
	for _, ev := range sink.events {
		phases = append(phases, ev.Phase)
	}
	assert.Equal(t, []Phase{
		PhaseStarting, PhaseStarted, PhaseLoopStarting, PhaseLoopStarted,
		PhaseLoopCompleting, PhaseLoopCompleted, PhaseCompleting, PhaseCompleted,
	}, phases)

	d.SetEventSink(nil)
	sink.events = nil
	tw.Play()
	assert.Empty(t, sink.events)
	assert.Equal(t, 0, tw.Events().Started.Len(), "detached sink leaves no handlers")
}

func TestDriverRemoveDuringTick(t *testing.T) {
	d := NewDriver()
	a, _ := newFloat(t, Config{})
	b, vb := newFloat(t, Config{})
	require.NoError(t, d.Add(a))
	require.NoError(t, d.Add(b))
	a.Events().Completed.Add(func(Playable, Direction) { d.Remove(b) })
	a.Play()
	b.Play()

	require.NoError(t, d.Tick(1))
	assert.Equal(t, 1.0, *vb, "b was present when the tick began")
	assert.Equal(t, 1, d.Len())
	require.NoError(t, d.Tick(0.1))
}
