package domain

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	clockMu sync.RWMutex
	clock   clockwork.Clock = clockwork.NewRealClock()
)

// SetClock replaces the time source used to stamp ProcessedAt. Pass nil to
// restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clockMu.Lock()
	clock = c
	clockMu.Unlock()
}

// processingTime returns the current time in UTC from the configured clock.
func processingTime() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now().UTC()
}
