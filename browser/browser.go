// Package browser shows desktop file dialogs for the picker.
//
// On Linux the dialog is fyne's own file-open dialog. Elsewhere it is the
// platform chooser from sqweek/dialog. Neither offers multi-selection, so a
// multi-file session shows the dialog again after every pick until the user
// cancels it or the picker stops listening.
package browser

import (
	"strings"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"docpicker/picker"
)

// Browser implements picker.Browser on top of a fyne window.
type Browser struct {
	window fyne.Window
	log    *zap.Logger
}

var _ picker.Browser = (*Browser)(nil)

// New returns a Browser whose dialogs belong to w unless the host passed to
// ShowBrowser is another fyne.Window.
func New(w fyne.Window, log *zap.Logger) *Browser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Browser{window: w, log: log}
}

// ShowBrowser implements picker.Browser.
func (b *Browser) ShowBrowser(host any, extensions picker.ExtensionList, allowMultiple bool, cb picker.Callback, token picker.Token) picker.Presenter {
	w := b.window
	if hw, ok := host.(fyne.Window); ok && hw != nil {
		w = hw
	}
	p := &presenter{}
	b.show(w, extensions.Strings(), allowMultiple, cb, token, p)
	return p
}

func title(allowMultiple bool) string {
	if allowMultiple {
		return "Select files"
	}
	return "Select a file"
}

// dotted returns extensions with a leading dot, as fyne filters expect.
func dotted(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		out = append(out, "."+strings.TrimPrefix(ext, "."))
	}
	return out
}

// bare returns extensions without a leading dot, as sqweek filters expect.
func bare(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		out = append(out, ext)
	}
	return out
}
