// Package readiness blocks process startup until the database accepts
// connections.
package readiness

import (
	"context"
	"log/slog"
	"time"
)

// State of the gate. It starts Waiting and moves to Ready exactly once.
type State int

const (
	Waiting State = iota
	Ready
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Gate polls the database until it answers. Every failed probe logs, sleeps
// one interval and retries — no retry cap, no backoff. It is meant to run
// before any request-serving component starts, never concurrently with one.
type Gate struct {
	db       Pinger
	logger   *slog.Logger
	interval time.Duration
	sleep    func(time.Duration)
	state    State
}

// NewGate returns a gate probing db once per second. sleep may be nil, in
// which case time.Sleep is used; tests inject a recording function instead.
func NewGate(db Pinger, logger *slog.Logger, sleep func(time.Duration)) *Gate {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Gate{
		db:       db,
		logger:   logger.With("component", "readiness"),
		interval: 1 * time.Second,
		sleep:    sleep,
		state:    Waiting,
	}
}

// Wait runs the gate to completion. Any probe error counts as "database not
// ready yet" and is retried; the distinction between connection refused and
// backend-still-starting does not matter here.
func (g *Gate) Wait(ctx context.Context) {
	g.logger.Info("waiting for database...")

	for g.state == Waiting {
		if err := g.db.Ping(ctx); err != nil {
			g.logger.Warn("database unavailable, waiting 1 second...", "error", err)
			g.sleep(g.interval)
			continue
		}
		g.state = Ready
	}

	g.logger.Info("database available")
}

func (g *Gate) State() State {
	return g.state
}
