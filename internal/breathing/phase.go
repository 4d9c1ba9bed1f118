// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package breathing

// Phase is one step of the breathing cycle.
type Phase string

const (
	Inhale Phase = "inhale"
	Hold   Phase = "hold"
	Exhale Phase = "exhale"
)

// Duration returns the length of the phase in ticks (seconds).
func (p Phase) Duration() int {
	switch p {
	case Hold:
		return 4
	case Exhale:
		return 6
	default:
		return 4
	}
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	switch p {
	case Inhale:
		return Hold
	case Hold:
		return Exhale
	default:
		return Inhale
	}
}

// Label is the instruction shown to the user during the phase.
func (p Phase) Label() string {
	switch p {
	case Hold:
		return "Hold"
	case Exhale:
		return "Breathe Out"
	default:
		return "Breathe In"
	}
}

// Legend describes the whole cycle in one line.
const Legend = "4 seconds in • 4 seconds hold • 6 seconds out"

// IdleLabel is shown while the timer is stopped.
const IdleLabel = "Ready"
