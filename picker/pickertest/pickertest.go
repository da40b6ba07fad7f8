// Package pickertest provides a scripted picker.Browser for tests.
package pickertest

import (
	"sync"
	"sync/atomic"

	"docpicker/picker"
)

// Browser records every ShowBrowser call and lets the test play the dialog.
type Browser struct {
	mu       sync.Mutex
	sessions []*Session

	// OnShow, if set, runs inside ShowBrowser after the session is recorded.
	OnShow func(*Session)
}

// Session is one recorded ShowBrowser call.
type Session struct {
	Host          any
	Extensions    []string
	AllowMultiple bool
	Presenter     *Presenter

	cb    picker.Callback
	token picker.Token
}

// ShowBrowser implements picker.Browser.
func (b *Browser) ShowBrowser(host any, extensions picker.ExtensionList, allowMultiple bool, cb picker.Callback, token picker.Token) picker.Presenter {
	s := &Session{
		Host:          host,
		Extensions:    extensions.Strings(),
		AllowMultiple: allowMultiple,
		Presenter:     &Presenter{},
		cb:            cb,
		token:         token,
	}
	b.mu.Lock()
	b.sessions = append(b.sessions, s)
	b.mu.Unlock()
	if b.OnShow != nil {
		b.OnShow(s)
	}
	return s.Presenter
}

// Sessions returns the sessions recorded so far.
func (b *Browser) Sessions() []*Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Session(nil), b.sessions...)
}

// Last returns the most recent session, or nil.
func (b *Browser) Last() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.sessions) == 0 {
		return nil
	}
	return b.sessions[len(b.sessions)-1]
}

// Pick simulates the user picking a file with the given content. The buffer
// is scribbled over after the callback returns, like a native buffer would be.
func (s *Session) Pick(content []byte) {
	buf := append(make([]byte, 0, len(content)), content...)
	s.cb(buf, s.token)
	for i := range buf {
		buf[i] = 0xAA
	}
}

// Cancel simulates the user dismissing the dialog.
func (s *Session) Cancel() {
	s.cb(nil, s.token)
}

// Presenter counts Retain and Release calls.
type Presenter struct {
	retains  atomic.Int32
	releases atomic.Int32
}

func (p *Presenter) Retain()  { p.retains.Add(1) }
func (p *Presenter) Release() { p.releases.Add(1) }

// Retains returns the number of Retain calls.
func (p *Presenter) Retains() int { return int(p.retains.Load()) }

// Releases returns the number of Release calls.
func (p *Presenter) Releases() int { return int(p.releases.Load()) }
