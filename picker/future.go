package picker

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Future is the pending result of a single-file pick.
//
// A Future is awaited by one goroutine. It resolves at most once: to a
// FileHandle when the user picked a file, or to nothing when the dialog was
// dismissed. Resolving or closing the Future releases the dialog's presenter.
type Future struct {
	id        string
	token     Token
	ch        <-chan *FileHandle
	presenter *presenterHandle
	log       *zap.Logger

	mu       sync.Mutex
	resolved bool
	result   *FileHandle

	closeOnce sync.Once
}

func newFuture(id string, token Token, ch <-chan *FileHandle, presenter *presenterHandle, log *zap.Logger) *Future {
	f := &Future{
		id:        id,
		token:     token,
		ch:        ch,
		presenter: presenter,
		log:       log,
	}
	runtime.SetFinalizer(f, func(f *Future) { f.Close() })
	return f
}

// ID identifies the pick session in logs.
func (f *Future) ID() string { return f.id }

// Await blocks until the pick resolves or ctx is done. ok reports whether a
// file was picked. A ctx error leaves the Future pending.
func (f *Future) Await(ctx context.Context) (h FileHandle, ok bool, err error) {
	if h, ok, ready := f.Poll(); ready {
		return h, ok, nil
	}
	select {
	case v, open := <-f.ch:
		h, ok = f.resolve(v, open)
		return h, ok, nil
	case <-ctx.Done():
		return FileHandle{}, false, ctx.Err()
	}
}

// Poll returns the result without blocking. ready is false while the pick is
// still pending.
func (f *Future) Poll() (h FileHandle, ok, ready bool) {
	f.mu.Lock()
	if f.resolved {
		r := f.result
		f.mu.Unlock()
		if r == nil {
			return FileHandle{}, false, true
		}
		return *r, true, true
	}
	f.mu.Unlock()

	select {
	case v, open := <-f.ch:
		h, ok = f.resolve(v, open)
		return h, ok, true
	default:
		return FileHandle{}, false, false
	}
}

func (f *Future) resolve(v *FileHandle, open bool) (FileHandle, bool) {
	f.mu.Lock()
	first := !f.resolved
	if first {
		f.resolved = true
		if open {
			f.result = v
		}
	}
	r := f.result
	f.mu.Unlock()

	if first {
		if r != nil {
			f.log.Debug("pick resolved", zap.String("session", f.id), zap.Int("bytes", r.Len()))
		} else {
			f.log.Debug("pick resolved without a file", zap.String("session", f.id))
		}
		f.Close()
	}
	if r == nil {
		return FileHandle{}, false
	}
	return *r, true
}

// Close abandons the pick. The presenter is released and any later callback
// for this session is discarded. Close is safe to call more than once and
// after the Future resolved.
func (f *Future) Close() error {
	f.closeOnce.Do(func() {
		sessions.release(f.token)
		f.presenter.release()
		runtime.SetFinalizer(f, nil)
	})
	return nil
}
