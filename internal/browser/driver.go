package browser

import (
	"context"
	"time"
)

// Driver is one live browser handle bound to a single automation
// session. All operations are one-shot and synchronous; the caller's
// context bounds each call, the handle's own lifetime is bounded by
// Close.
type Driver interface {
	Navigate(ctx context.Context, url string) error
	Search(ctx context.Context, pageURL, queryInput, query string) error
	FillForm(ctx context.Context, fields map[string]string) error
	Extract(ctx context.Context, selectors map[string]string) (map[string]string, error)
	Screenshot(ctx context.Context) ([]byte, error)
	Click(ctx context.Context, selector string) error
	Scroll(ctx context.Context, direction string) error
	PageSource(ctx context.Context) (string, error)
	Close(ctx context.Context) error
}

// Options are per-session launch parameters; everything else comes from
// the factory configuration.
type Options struct {
	Headless bool
}

// Factory launches driver handles. Launch must return a ready handle or
// release everything it allocated.
type Factory interface {
	Launch(ctx context.Context, opts Options) (Driver, error)
}

const (
	ScrollUp   = "up"
	ScrollDown = "down"
)

// combineContext derives a context from the session context (carrying
// the CDP target) that is additionally canceled when the per-request
// context is done.
func combineContext(sessCtx, reqCtx context.Context) (context.Context, context.CancelFunc) {
	combined, cancel := context.WithCancel(sessCtx)
	go func() {
		select {
		case <-reqCtx.Done():
			cancel()
		case <-combined.Done():
		}
	}()
	return combined, cancel
}

// valueOnlyContext inherits values (the CDP target) but not
// cancellation, for cleanup that must outlive the caller.
type valueOnlyContext struct {
	context.Context
}

func (valueOnlyContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (valueOnlyContext) Done() <-chan struct{}       { return nil }
func (valueOnlyContext) Err() error                  { return nil }

func detach(ctx context.Context) context.Context {
	return valueOnlyContext{ctx}
}
