// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package reading

import "sync"

// Aggregator merges readings into the latest-value State. Last writer
// wins per category; no history is kept. Updates come from the single
// pipeline goroutine, but snapshots may be read concurrently (web,
// display), so State is always handed out by value under the lock —
// a snapshot never shows a half-applied reading.
type Aggregator struct {
	mu    sync.RWMutex
	state State
}

// NewAggregator returns an Aggregator with a zero State.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Update folds one reading into the state and returns the resulting
// snapshot. Temperature is taken from every reading regardless of kind,
// since every WT61 frame carries it.
func (a *Aggregator) Update(r Reading) State {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch r.Kind {
	case Acceleration:
		a.state.Ax, a.state.Ay, a.state.Az = r.X, r.Y, r.Z
	case AngularVelocity:
		a.state.Wx, a.state.Wy, a.state.Wz = r.X, r.Y, r.Z
	case Angle:
		a.state.Roll, a.state.Pitch, a.state.Yaw = r.X, r.Y, r.Z
	}
	a.state.TempC = r.TempC

	return a.state
}

// Snapshot returns the current state by value.
func (a *Aggregator) Snapshot() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}
