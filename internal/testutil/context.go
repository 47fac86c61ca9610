package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds test contexts when no explicit timeout is given.
const DefaultTimeout = 5 * time.Second

// Context returns a context that is cancelled at test cleanup or after timeout,
// whichever comes first. A non-positive timeout uses DefaultTimeout, and the
// test binary deadline shortens it further.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
