// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package breathing implements the guided-breathing timer used by calm mode.
//
// The timer is a small state machine built on [stateless.StateMachine]:
//
//	idle --start--> inhale --elapsed--> hold --elapsed--> exhale --elapsed--> inhale ...
//	 ^                                                                          |
//	 +------------------------------------stop----------------------------------+
//
// The timer does not own a clock. Callers drive it with [Timer.Tick], once
// per second, either from a [time.Ticker] via [Timer.Run] or from a UI event
// loop. Every start and stop bumps a generation number so that ticks
// scheduled for an earlier run can be recognised and dropped.
package breathing

import (
	"context"
	"sync"
	"time"

	"github.com/qmuntal/stateless"
)

// TickInterval is the real-time length of one tick.
const TickInterval = time.Second

const stateIdle = "idle"

const (
	triggerStart   = "start"
	triggerStop    = "stop"
	triggerElapsed = "elapsed"
)

// State is a snapshot of the timer.
type State struct {
	Phase      Phase
	Countdown  int
	Running    bool
	Generation uint64
}

// Label returns the instruction for the snapshot, or [IdleLabel] when stopped.
func (s State) Label() string {
	if !s.Running {
		return IdleLabel
	}
	return s.Phase.Label()
}

// Timer is safe for concurrent use.
type Timer struct {
	mu         sync.Mutex
	fsm        *stateless.StateMachine
	countdown  int
	generation uint64
}

// NewTimer returns a stopped timer showing inhale/4.
func NewTimer() *Timer {
	t := &Timer{countdown: Inhale.Duration()}

	fsm := stateless.NewStateMachine(stateIdle)

	fsm.Configure(stateIdle).
		OnEntry(t.resetCountdown(Inhale)).
		Permit(triggerStart, Inhale)

	for _, p := range []Phase{Inhale, Hold, Exhale} {
		fsm.Configure(p).
			OnEntry(t.resetCountdown(p)).
			Permit(triggerElapsed, p.Next()).
			Permit(triggerStop, stateIdle)
	}

	t.fsm = fsm
	return t
}

func (t *Timer) resetCountdown(p Phase) func(context.Context, ...any) error {
	return func(context.Context, ...any) error {
		t.countdown = p.Duration()
		return nil
	}
}

// Start resets the timer to inhale/4 and marks it running. Starting a
// running timer restarts it.
func (t *Timer) Start() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningLocked() {
		t.fireLocked(triggerStop)
	}
	t.fireLocked(triggerStart)
	t.generation++
	return t.snapshotLocked()
}

// Stop halts the timer and resets it to inhale/4.
func (t *Timer) Stop() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.runningLocked() {
		t.fireLocked(triggerStop)
		t.generation++
	}
	return t.snapshotLocked()
}

// Toggle starts a stopped timer and stops a running one.
func (t *Timer) Toggle() State {
	if t.State().Running {
		return t.Stop()
	}
	return t.Start()
}

// Tick advances the timer by one second. The countdown is decremented while
// it is above one; otherwise the next phase begins with its full duration.
// Ticking a stopped timer has no effect.
func (t *Timer) Tick() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tickLocked()
	return t.snapshotLocked()
}

// TickGeneration ticks only if generation matches the current run. The
// boolean is false for stale ticks, which must not be rescheduled.
func (t *Timer) TickGeneration(generation uint64) (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if generation != t.generation || !t.runningLocked() {
		return t.snapshotLocked(), false
	}
	t.tickLocked()
	return t.snapshotLocked(), true
}

// State returns the current snapshot.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

// Run starts the timer and ticks it every interval until ctx is done, then
// stops it. onTick, if set, receives every snapshot after a tick.
func (t *Timer) Run(ctx context.Context, interval time.Duration, onTick func(State)) {
	t.Start()
	defer t.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := t.Tick()
			if onTick != nil {
				onTick(s)
			}
		}
	}
}

func (t *Timer) tickLocked() {
	if !t.runningLocked() {
		return
	}
	if t.countdown > 1 {
		t.countdown--
		return
	}
	t.fireLocked(triggerElapsed)
}

// fireLocked ignores errors: every trigger used here is permitted in the
// state it is fired from.
func (t *Timer) fireLocked(trigger string) {
	_ = t.fsm.Fire(trigger)
}

func (t *Timer) runningLocked() bool {
	return t.fsm.MustState() != stateIdle
}

func (t *Timer) snapshotLocked() State {
	s := State{Phase: Inhale, Countdown: t.countdown, Generation: t.generation}
	if p, ok := t.fsm.MustState().(Phase); ok {
		s.Phase = p
		s.Running = true
	}
	return s
}
