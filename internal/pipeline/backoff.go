package pipeline

import (
	"context"
	"time"

	"github.com/couchcryptid/storm-data-shared/retry"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// backoff is a doubling delay shared by the extract and load retries.
type backoff struct {
	next time.Duration
}

func newBackoff() *backoff {
	return &backoff{next: initialBackoff}
}

func (b *backoff) reset() {
	b.next = initialBackoff
}

// wait sleeps for the current delay and doubles it, up to maxBackoff. It
// returns false if ctx is done first.
func (b *backoff) wait(ctx context.Context) bool {
	if ctx.Err() != nil || !retry.SleepWithContext(ctx, b.next) {
		return false
	}
	b.next = retry.NextBackoff(b.next, maxBackoff)
	return true
}
