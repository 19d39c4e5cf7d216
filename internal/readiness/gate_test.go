package readiness_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/a-osman/recipe-api/internal/readiness"
)

// scriptedPinger returns its errors in order, then succeeds forever.
type scriptedPinger struct {
	errs  []error
	calls int
}

func (p *scriptedPinger) Ping(_ context.Context) error {
	p.calls++
	if p.calls <= len(p.errs) {
		return p.errs[p.calls-1]
	}
	return nil
}

func newGate(p readiness.Pinger, sleep func(time.Duration)) *readiness.Gate {
	return readiness.NewGate(p, slog.Default(), sleep)
}

func TestWait_DatabaseUpImmediately_OneProbeNoSleep(t *testing.T) {
	p := &scriptedPinger{}
	slept := 0
	g := newGate(p, func(time.Duration) { slept++ })

	g.Wait(context.Background())

	if p.calls != 1 {
		t.Errorf("probe attempts = %d, want 1", p.calls)
	}
	if slept != 0 {
		t.Errorf("pauses = %d, want 0", slept)
	}
	if g.State() != readiness.Ready {
		t.Error("gate did not reach Ready")
	}
}

func TestWait_FailsTwiceThenSucceeds_ThreeProbesTwoPauses(t *testing.T) {
	p := &scriptedPinger{errs: []error{
		errors.New("connection refused"),
		errors.New("connection refused"),
	}}

	var pauses []time.Duration
	g := newGate(p, func(d time.Duration) { pauses = append(pauses, d) })

	g.Wait(context.Background())

	if p.calls != 3 {
		t.Errorf("probe attempts = %d, want 3", p.calls)
	}
	if len(pauses) != 2 {
		t.Fatalf("pauses = %d, want 2", len(pauses))
	}
	for i, d := range pauses {
		if d != time.Second {
			t.Errorf("pause %d = %v, want 1s", i, d)
		}
	}
	if g.State() != readiness.Ready {
		t.Error("gate did not reach Ready")
	}
}

func TestWait_DifferentTransientErrors_AllRetryable(t *testing.T) {
	// Interleave two distinct failure kinds — both must be retried.
	p := &scriptedPinger{errs: []error{
		errors.New("connection refused"),
		errors.New("the database system is starting up"),
		errors.New("connection refused"),
	}}
	slept := 0
	g := newGate(p, func(time.Duration) { slept++ })

	g.Wait(context.Background())

	if p.calls != 4 {
		t.Errorf("probe attempts = %d, want 4", p.calls)
	}
	if slept != 3 {
		t.Errorf("pauses = %d, want 3", slept)
	}
}

func TestState_StartsWaiting(t *testing.T) {
	g := newGate(&scriptedPinger{}, func(time.Duration) {})
	if g.State() != readiness.Waiting {
		t.Error("new gate is not in Waiting state")
	}
}
