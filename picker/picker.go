// Package picker turns a callback-driven file dialog into a Future for
// single picks and a Stream for multi-file picks.
//
// The dialog is reached through a Browser. It reports picks by calling a
// Callback with a Token; the picker owns the channel behind each token and
// retains the dialog's Presenter until the Future or Stream is done with it.
package picker

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"docpicker/shared"
)

// Picker starts pick sessions on a Browser.
type Picker struct {
	browser Browser
	log     *zap.Logger
}

// Option configures a Picker.
type Option func(*Picker)

// WithLogger sets the logger used for session lifecycle messages.
func WithLogger(log *zap.Logger) Option {
	return func(p *Picker) {
		if log != nil {
			p.log = log
		}
	}
}

// New returns a Picker showing dialogs through b.
func New(b Browser, opts ...Option) *Picker {
	p := &Picker{browser: b, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PickOne shows a single-selection dialog restricted to extensions (none
// means any file) and returns a Future for the result. host is passed to the
// Browser untouched. It panics if an extension contains a NUL byte.
func (p *Picker) PickOne(host any, extensions []string) *Future {
	exts := MarshalExtensions(extensions)
	tx, rx := newOneshot()
	token := sessions.register(singleUse, tx)
	id := uuid.NewString()

	shared.RecordSessionStarted(singleUse.String())
	p.log.Debug("showing browser",
		zap.String("session", id),
		zap.String("mode", singleUse.String()),
		zap.Strings("extensions", exts.Strings()))

	presenter := p.browser.ShowBrowser(host, exts, false, sessions.deliver, token)
	return newFuture(id, token, rx, retainPresenter(presenter), p.log)
}

// PickMany shows a multi-selection dialog and returns a Stream of the picked
// files. Each call starts a fresh session. It panics if an extension contains
// a NUL byte.
func (p *Picker) PickMany(host any, extensions []string) *Stream {
	exts := MarshalExtensions(extensions)
	w := newWatch()
	rx := w.subscribe()
	token := sessions.register(multiUse, w)
	id := uuid.NewString()

	shared.RecordSessionStarted(multiUse.String())
	p.log.Debug("showing browser",
		zap.String("session", id),
		zap.String("mode", multiUse.String()),
		zap.Strings("extensions", exts.Strings()))

	presenter := p.browser.ShowBrowser(host, exts, true, sessions.deliver, token)
	return newStream(id, token, rx, retainPresenter(presenter), p.log)
}
