package browser

import (
	"sync"
	"sync/atomic"
)

// presenter is the reference-counted handle the picker retains for an open
// dialog. When the last reference goes away the dialog is dismissed, if the
// platform allows it, and no further dialogs are shown for the session.
type presenter struct {
	refs     atomic.Int32
	retained atomic.Bool

	mu      sync.Mutex
	dismiss func()
}

func (p *presenter) Retain() {
	p.retained.Store(true)
	p.refs.Add(1)
}

func (p *presenter) Release() {
	if p.refs.Add(-1) != 0 {
		return
	}
	p.mu.Lock()
	fn := p.dismiss
	p.dismiss = nil
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// setDismiss installs the function closing the currently visible dialog.
func (p *presenter) setDismiss(fn func()) {
	p.mu.Lock()
	p.dismiss = fn
	p.mu.Unlock()
}

// abandoned reports whether the picker has let go of the session.
func (p *presenter) abandoned() bool {
	return p.retained.Load() && p.refs.Load() <= 0
}
