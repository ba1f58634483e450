package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so that the
// queue controller's wall-clock budget and inter-call pacing are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
