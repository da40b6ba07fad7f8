package picker

// Browser shows a file browser. It is the boundary to the platform dialog.
//
// ShowBrowser must return without waiting for the user. It arranges for cb
// to be called with token once per picked file, or once with nil data when
// the user dismisses the dialog without a pick. For a single-selection
// session cb is called at most once. Calls for one session never overlap,
// but they may come from any goroutine or native thread.
//
// extensions is only valid until ShowBrowser returns; an empty list means any
// file may be picked.
type Browser interface {
	ShowBrowser(host any, extensions ExtensionList, allowMultiple bool, cb Callback, token Token) Presenter
}

// Presenter is the object driving an open dialog. The picker retains it for
// as long as a Future or Stream is listening and releases it exactly once.
type Presenter interface {
	Retain()
	Release()
}
