package services

import (
	"context"
	"log"
	"time"
)

type SweeperSessionStore interface {
	DeleteExpired(now time.Time) (int64, error)
}

// SessionSweeper periodically deletes expired sessions. The lazy check at
// resolution stays authoritative; the sweep only keeps the table small.
type SessionSweeper struct {
	sessions SweeperSessionStore
	interval time.Duration
}

func NewSessionSweeper(sessions SweeperSessionStore, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
	}
}

func (sweeper *SessionSweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweeper.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				sweeper.SweepOnce(now)
			}
		}
	}()
}

func (sweeper *SessionSweeper) SweepOnce(now time.Time) {
	removed, err := sweeper.sessions.DeleteExpired(now)
	if err != nil {
		log.Printf("session sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("session sweep removed %d expired sessions", removed)
	}
}
