//go:build linux
// +build linux

package browser

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"

	"docpicker/picker"
)

// show opens fyne's file open dialog on Linux.
func (b *Browser) show(w fyne.Window, extensions []string, allowMultiple bool, cb picker.Callback, token picker.Token, p *presenter) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			b.log.Warn("file dialog failed", zap.Error(err))
			cb(nil, token)
			return
		}
		if reader == nil {
			// Cancelled
			cb(nil, token)
			return
		}
		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			b.log.Warn("reading picked file failed", zap.String("uri", reader.URI().String()), zap.Error(err))
			cb(nil, token)
			return
		}
		b.log.Debug("file picked", zap.String("uri", reader.URI().String()), zap.Int("bytes", len(data)))
		cb(data, token)

		if allowMultiple && !p.abandoned() {
			b.show(w, extensions, allowMultiple, cb, token, p)
		}
	}, w)
	if exts := dotted(extensions); len(exts) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	p.setDismiss(fd.Hide)
	fd.Show()
}
