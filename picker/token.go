package picker

import (
	"sync"

	"docpicker/shared"
)

// Token is the opaque context handed to a Browser together with the callback.
// It stands for the producer side of a session's channel, which stays in the
// package registry while the browser holds the token.
type Token uintptr

// Callback is invoked by a Browser with the content of a picked file, or with
// nil when no file was picked. data is only valid for the duration of the call.
type Callback func(data []byte, token Token)

type tokenMode uint8

const (
	// singleUse tokens are reclaimed by the first delivery.
	singleUse tokenMode = iota
	// multiUse tokens survive deliveries and are reclaimed by a nil delivery
	// or by the adapter's teardown.
	multiUse
)

func (m tokenMode) String() string {
	if m == multiUse {
		return "multi"
	}
	return "single"
}

// producer is the sending half of a session channel.
type producer interface {
	send(h *FileHandle)
	close()
}

// oneshot delivers at most one value. The registry guarantees send and close
// are each called at most once, send first.
type oneshot struct {
	ch chan *FileHandle
}

func newOneshot() (*oneshot, <-chan *FileHandle) {
	ch := make(chan *FileHandle, 1)
	return &oneshot{ch: ch}, ch
}

func (o *oneshot) send(h *FileHandle) { o.ch <- h }
func (o *oneshot) close()             { close(o.ch) }

type slot struct {
	mode tokenMode
	p    producer
}

// registry owns every live producer. All decisions about when a producer is
// reclaimed are made here.
type registry struct {
	mu    sync.Mutex
	next  Token
	slots map[Token]slot
}

func newRegistry() *registry {
	return &registry{slots: make(map[Token]slot)}
}

// sessions is shared with the native callback, which has no other way to find
// its producer.
var sessions = newRegistry()

func (r *registry) register(mode tokenMode, p producer) Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	t := r.next
	r.slots[t] = slot{mode: mode, p: p}
	return t
}

// deliver is the callback shim. A nil data slice is the null pointer.
func (r *registry) deliver(data []byte, t Token) {
	r.mu.Lock()
	s, ok := r.slots[t]
	if ok && (s.mode == singleUse || data == nil) {
		delete(r.slots, t)
	}
	r.mu.Unlock()

	if !ok {
		shared.RecordLateCallback()
		return
	}

	var h *FileHandle
	if data != nil {
		fh := newFileHandle(data)
		h = &fh
		shared.RecordFileDelivered(s.mode.String(), fh.Len())
	} else {
		shared.RecordSessionCancelled(s.mode.String())
	}

	switch {
	case s.mode == singleUse:
		s.p.send(h)
		s.p.close()
	case h != nil:
		s.p.send(h)
	default:
		s.p.close()
	}
}

// release reclaims the producer if it is still registered and closes it.
func (r *registry) release(t Token) {
	r.mu.Lock()
	s, ok := r.slots[t]
	delete(r.slots, t)
	r.mu.Unlock()
	if ok {
		s.p.close()
	}
}

func (r *registry) live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
