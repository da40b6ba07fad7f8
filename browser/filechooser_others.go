//go:build !linux
// +build !linux

package browser

import (
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"docpicker/picker"
)

// show opens the native sqweek file chooser on Windows and macOS.
func (b *Browser) show(_ fyne.Window, extensions []string, allowMultiple bool, cb picker.Callback, token picker.Token, p *presenter) {
	exts := bare(extensions)
	// Run in a goroutine because sqweek blocks the thread.
	go func() {
		for {
			builder := dialog.File().Title(title(allowMultiple))
			if len(exts) > 0 {
				builder = builder.Filter("Supported files", exts...)
			}
			path, err := builder.Load()
			if err != nil {
				if !errors.Is(err, dialog.ErrCancelled) {
					b.log.Warn("file dialog failed", zap.Error(err))
				}
				cb(nil, token)
				return
			}
			data, err := os.ReadFile(path)
			if err != nil {
				b.log.Warn("reading picked file failed", zap.String("path", path), zap.Error(err))
				cb(nil, token)
				return
			}
			b.log.Debug("file picked", zap.String("path", path), zap.Int("bytes", len(data)))
			cb(data, token)

			if !allowMultiple || p.abandoned() {
				return
			}
		}
	}()
}
