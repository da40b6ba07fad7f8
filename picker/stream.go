package picker

import (
	"context"
	"iter"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Stream yields the files of a multi-file pick in the order they were picked.
//
// Only the most recent file is held between reads: a consumer that reads
// slower than the dialog delivers may skip files. The stream ends when the
// dialog reports it is done or when Close is called.
type Stream struct {
	id        string
	token     Token
	rx        *watchReceiver
	presenter *presenterHandle
	log       *zap.Logger

	closeOnce sync.Once
}

func newStream(id string, token Token, rx *watchReceiver, presenter *presenterHandle, log *zap.Logger) *Stream {
	s := &Stream{
		id:        id,
		token:     token,
		rx:        rx,
		presenter: presenter,
		log:       log,
	}
	runtime.SetFinalizer(s, func(s *Stream) { s.Close() })
	return s
}

// ID identifies the pick session in logs.
func (s *Stream) ID() string { return s.id }

// Next blocks until the next file arrives, the stream ends or ctx is done.
// ok is false once the stream has ended.
func (s *Stream) Next(ctx context.Context) (h FileHandle, ok bool, err error) {
	h, ok, err = s.rx.next(ctx)
	if err == nil && !ok {
		s.log.Debug("pick stream ended", zap.String("session", s.id))
		s.presenter.release()
	}
	return h, ok, err
}

// All ranges over the remaining files. Iteration stops when the stream ends
// or ctx is done; check ctx.Err() to tell the two apart.
func (s *Stream) All(ctx context.Context) iter.Seq[FileHandle] {
	return func(yield func(FileHandle) bool) {
		for {
			h, ok, err := s.Next(ctx)
			if err != nil || !ok {
				return
			}
			if !yield(h) {
				return
			}
		}
	}
}

// Close ends the stream and releases the presenter. Safe to call more than once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		sessions.release(s.token)
		s.presenter.release()
		runtime.SetFinalizer(s, nil)
	})
	return nil
}
