package picker

import (
	"sync"

	"docpicker/shared"
)

// presenterHandle is the picker's single strong reference to a Presenter.
// Only the goroutine owning the Future or Stream touches it; callbacks never do.
type presenterHandle struct {
	p    Presenter
	once sync.Once
}

func retainPresenter(p Presenter) *presenterHandle {
	if p != nil {
		p.Retain()
		shared.PresenterRetained()
	}
	return &presenterHandle{p: p}
}

// release drops the reference. Safe to call more than once.
func (h *presenterHandle) release() {
	h.once.Do(func() {
		if h.p == nil {
			return
		}
		h.p.Release()
		shared.PresenterReleased()
		h.p = nil
	})
}
