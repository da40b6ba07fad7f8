package picker

import (
	"context"
	"sync"
)

// watch is a latest-value broadcast channel. Senders overwrite the value and
// wake every waiter; receivers only ever see the newest value. It starts out
// holding "no value", which receivers skip.
type watch struct {
	mu      sync.Mutex
	value   *FileHandle
	version uint64
	closed  bool
	notify  chan struct{}
}

func newWatch() *watch {
	return &watch{notify: make(chan struct{})}
}

// send replaces the current value. It is a no-op once the watch is closed.
func (w *watch) send(h *FileHandle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.value = h
	w.version++
	close(w.notify)
	w.notify = make(chan struct{})
}

func (w *watch) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.notify)
}

func (w *watch) subscribe() *watchReceiver {
	return &watchReceiver{w: w}
}

// watchReceiver tracks which version of the value its owner has seen.
type watchReceiver struct {
	w    *watch
	seen uint64
}

// next blocks until a value newer than the last one seen is available, and
// returns it. ok is false once the watch is closed and nothing unseen is left.
func (r *watchReceiver) next(ctx context.Context) (h FileHandle, ok bool, err error) {
	for {
		r.w.mu.Lock()
		if r.w.version != r.seen {
			r.seen = r.w.version
			v := r.w.value
			r.w.mu.Unlock()
			if v != nil {
				return *v, true, nil
			}
			continue
		}
		if r.w.closed {
			r.w.mu.Unlock()
			return FileHandle{}, false, nil
		}
		wake := r.w.notify
		r.w.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return FileHandle{}, false, ctx.Err()
		}
	}
}
