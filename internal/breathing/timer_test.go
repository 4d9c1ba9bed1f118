package breathing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimer_Idle(t *testing.T) {
	s := NewTimer().State()

	assert.False(t, s.Running)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Countdown)
	assert.Equal(t, IdleLabel, s.Label())
}

func TestTimer_TickWhileStoppedIsNoop(t *testing.T) {
	timer := NewTimer()
	for i := 0; i < 10; i++ {
		s := timer.Tick()
		assert.Equal(t, Inhale, s.Phase)
		assert.Equal(t, 4, s.Countdown)
	}
}

func TestTimer_FullCycle(t *testing.T) {
	timer := NewTimer()
	s := timer.Start()
	require.True(t, s.Running)
	require.Equal(t, Inhale, s.Phase)
	require.Equal(t, 4, s.Countdown)

	type step struct {
		phase     Phase
		countdown int
	}
	want := []step{
		{Inhale, 3}, {Inhale, 2}, {Inhale, 1}, {Hold, 4},
		{Hold, 3}, {Hold, 2}, {Hold, 1}, {Exhale, 6},
		{Exhale, 5}, {Exhale, 4}, {Exhale, 3}, {Exhale, 2}, {Exhale, 1}, {Inhale, 4},
	}

	var visited []step
	for i, w := range want {
		s = timer.Tick()
		assert.Equal(t, w.phase, s.Phase, "tick %d", i+1)
		assert.Equal(t, w.countdown, s.Countdown, "tick %d", i+1)
		assert.Positive(t, s.Countdown)
		if len(visited) == 0 || visited[len(visited)-1].phase != s.Phase {
			visited = append(visited, step{s.Phase, s.Countdown})
		}
	}

	assert.Equal(t, []step{{Inhale, 3}, {Hold, 4}, {Exhale, 6}, {Inhale, 4}}, visited)
}

func TestTimer_StopResets(t *testing.T) {
	for ticks := 0; ticks < 20; ticks++ {
		timer := NewTimer()
		timer.Start()
		for i := 0; i < ticks; i++ {
			timer.Tick()
		}

		s := timer.Stop()
		assert.False(t, s.Running, "after %d ticks", ticks)
		assert.Equal(t, Inhale, s.Phase, "after %d ticks", ticks)
		assert.Equal(t, 4, s.Countdown, "after %d ticks", ticks)
	}
}

func TestTimer_StartResetsRunningTimer(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	for i := 0; i < 6; i++ {
		timer.Tick()
	}
	require.Equal(t, Hold, timer.State().Phase)

	s := timer.Start()
	assert.True(t, s.Running)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Countdown)
}

func TestTimer_Toggle(t *testing.T) {
	timer := NewTimer()

	assert.True(t, timer.Toggle().Running)
	assert.False(t, timer.Toggle().Running)
}

func TestTimer_TickGenerationDropsStaleTicks(t *testing.T) {
	timer := NewTimer()
	first := timer.Start().Generation

	_, ok := timer.TickGeneration(first)
	require.True(t, ok)

	timer.Stop()
	_, ok = timer.TickGeneration(first)
	assert.False(t, ok, "tick after stop")

	second := timer.Start().Generation
	assert.NotEqual(t, first, second)

	s, ok := timer.TickGeneration(first)
	assert.False(t, ok, "tick from previous run")
	assert.Equal(t, 4, s.Countdown)

	s, ok = timer.TickGeneration(second)
	assert.True(t, ok)
	assert.Equal(t, 3, s.Countdown)
}

func TestTimer_Run(t *testing.T) {
	timer := NewTimer()
	ctx, cancel := context.WithCancel(context.Background())

	var (
		mu    sync.Mutex
		ticks int
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		timer.Run(ctx, time.Millisecond, func(State) {
			mu.Lock()
			ticks++
			mu.Unlock()
		})
	}()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ticks >= 5
	}, time.Second, time.Millisecond)

	cancel()
	<-done

	s := timer.State()
	assert.False(t, s.Running)
	assert.Equal(t, Inhale, s.Phase)
	assert.Equal(t, 4, s.Countdown)
}

func TestPhase_Labels(t *testing.T) {
	assert.Equal(t, "Breathe In", Inhale.Label())
	assert.Equal(t, "Hold", Hold.Label())
	assert.Equal(t, "Breathe Out", Exhale.Label())
	assert.Equal(t, "Hold", State{Phase: Hold, Running: true}.Label())
}
