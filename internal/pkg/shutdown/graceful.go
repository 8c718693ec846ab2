// Package shutdown ties process lifetime to termination signals.
package shutdown

import (
	"context"
	"os/signal"
	"syscall"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
