package dialog

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewPickingDialog creates the dialog shown while a multi-file pick is running.
// cancel is closed once, when the dialog closes for any reason.
func NewPickingDialog(title string, window fyne.Window, cancel chan struct{}) dialog.Dialog {
	message := widget.NewLabel("Pick files in the file dialog.\nCancel it, or press Stop, when you are done.")
	message.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(message, widget.NewProgressBarInfinite())
	pickingDialog := dialog.NewCustom(title, "Stop", content, window)
	var once sync.Once
	pickingDialog.SetOnClosed(func() {
		once.Do(func() { close(cancel) })
	})

	// Set a consistent width for the dialog
	pickingDialog.Resize(fyne.NewSize(400, 200))

	return pickingDialog
}
