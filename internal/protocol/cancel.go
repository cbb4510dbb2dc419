package protocol

import (
	"context"
	"sync/atomic"
)

// CancelProbe is polled between variables while deserializing. A nil probe
// never cancels.
type CancelProbe interface {
	Cancelled() bool
}

// CancelFlag is an externally owned probe flipped by Cancel.
type CancelFlag struct {
	cancelled atomic.Bool
}

func (f *CancelFlag) Cancel() {
	f.cancelled.Store(true)
}

func (f *CancelFlag) Cancelled() bool {
	return f.cancelled.Load()
}

// ContextProbe reports cancellation once ctx is done.
func ContextProbe(ctx context.Context) CancelProbe {
	return contextProbe{ctx: ctx}
}

type contextProbe struct {
	ctx context.Context
}

func (p contextProbe) Cancelled() bool {
	return p.ctx.Err() != nil
}
