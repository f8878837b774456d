// Package game holds the round lifecycle pieces of a training session:
// the countdown timer state machine and score accounting.
package game

import (
	"time"

	"github.com/Deetschoe/monkeycmd/internal/pubsub"
)

// TimerPhase is the timer's state machine phase.
type TimerPhase int

const (
	// TimerIdle is the phase before the first keystroke of a session.
	TimerIdle TimerPhase = iota
	// TimerActive is the running countdown.
	TimerActive
	// TimerFinished is the terminal phase once the countdown hits zero.
	TimerFinished
)

func (p TimerPhase) String() string {
	switch p {
	case TimerIdle:
		return "idle"
	case TimerActive:
		return "active"
	case TimerFinished:
		return "finished"
	}
	return "unknown"
}

// TimerSnapshot is the payload published on every timer transition.
type TimerSnapshot struct {
	Phase     TimerPhase
	Elapsed   time.Duration
	Remaining time.Duration
}

// Timer is a countdown with three phases: idle until started, active
// while counting down, finished once the duration elapses. Transitions
// are driven entirely by explicit Start/Tick calls with a caller-supplied
// clock reading, so tests never sleep. Each transition publishes a
// snapshot to the broker: TickEvent while active, FinishEvent exactly
// once on expiry.
type Timer struct {
	phase     TimerPhase
	duration  time.Duration
	startedAt time.Time
	elapsed   time.Duration
	broker    *pubsub.Broker[TimerSnapshot]
}

// NewTimer creates an idle timer for the given session duration. The
// broker may be nil when nobody cares about timer events.
func NewTimer(duration time.Duration, broker *pubsub.Broker[TimerSnapshot]) *Timer {
	return &Timer{phase: TimerIdle, duration: duration, broker: broker}
}

// Phase returns the current phase.
func (t *Timer) Phase() TimerPhase { return t.phase }

// Duration returns the configured session duration.
func (t *Timer) Duration() time.Duration { return t.duration }

// Snapshot returns the current timer state without advancing it.
func (t *Timer) Snapshot() TimerSnapshot {
	remaining := t.duration - t.elapsed
	if remaining < 0 {
		remaining = 0
	}
	return TimerSnapshot{Phase: t.phase, Elapsed: t.elapsed, Remaining: remaining}
}

// Start begins the countdown. Only an idle timer starts; calling Start
// in any other phase is a no-op.
func (t *Timer) Start(now time.Time) {
	if t.phase != TimerIdle {
		return
	}
	t.phase = TimerActive
	t.startedAt = now
	t.elapsed = 0
	t.publish(pubsub.TickEvent)
}

// Tick advances the timer to the given clock reading and returns the
// resulting snapshot. An active timer whose duration has elapsed
// transitions to finished and publishes FinishEvent; idle and finished
// timers do not move.
func (t *Timer) Tick(now time.Time) TimerSnapshot {
	if t.phase != TimerActive {
		return t.Snapshot()
	}

	t.elapsed = now.Sub(t.startedAt)
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.phase = TimerFinished
		t.publish(pubsub.FinishEvent)
	} else {
		t.publish(pubsub.TickEvent)
	}
	return t.Snapshot()
}

// Reset returns the timer to idle with the same duration.
func (t *Timer) Reset() {
	t.phase = TimerIdle
	t.elapsed = 0
	t.startedAt = time.Time{}
}

func (t *Timer) publish(eventType pubsub.EventType) {
	if t.broker == nil {
		return
	}
	t.broker.Publish(eventType, t.Snapshot())
}
