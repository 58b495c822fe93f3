package engine

// MaxLockResets caps how often lock delay may be reset per piece. Once spent,
// the piece locks on the next tick regardless of the timer, which prevents
// infinite stalling by wiggling a grounded piece.
const MaxLockResets = 15

// LockDelay tracks how long a grounded piece has rested without being nudged.
// The zero value is the inactive state. Transitions are pure: Update returns
// a new value and never mutates the receiver.
type LockDelay struct {
	Active     bool
	Timer      float64 // ms rested since the last reset
	ResetCount int
	LastReset  float64 // engine-clock ms of the last reset
}

// Update advances the state machine for one tick. grounded reports whether
// the piece is resting on the stack or floor, moved whether a successful
// move or rotation happened since the previous tick, and now is the engine
// clock in ms.
func (d LockDelay) Update(grounded, moved bool, now float64) LockDelay {
	if !grounded {
		// Airborne always clears everything, regardless of prior state.
		return LockDelay{}
	}

	if !d.Active {
		return LockDelay{Active: true, LastReset: now}
	}

	if moved && d.ResetCount < MaxLockResets {
		return LockDelay{
			Active:     true,
			ResetCount: d.ResetCount + 1,
			LastReset:  now,
		}
	}

	d.Timer = now - d.LastReset
	return d
}

// ShouldLock reports whether the piece must lock: the timer has run out, or
// the reset budget is spent.
func (d LockDelay) ShouldLock(delayMs float64) bool {
	if !d.Active {
		return false
	}
	return d.Timer >= delayMs || d.ResetCount >= MaxLockResets
}
