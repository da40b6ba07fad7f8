package main

import (
	"context"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	pickdialog "docpicker/dialog"
	"docpicker/inbox"
	"docpicker/picker"
	"docpicker/shared"
)

type myTheme struct {
	fyne.Theme
}

func newMyTheme() *myTheme {
	return &myTheme{Theme: theme.LightTheme()}
}

func (m myTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.White
	}
	if name == theme.ColorNameForeground {
		return color.Black
	}
	if name == theme.ColorNameShadow {
		return color.NRGBA{R: 0, G: 0, B: 0, A: 40}
	}
	return m.Theme.Color(name, variant)
}

// pickerUI is the main window: two pick buttons and the list of saved files.
type pickerUI struct {
	window fyne.Window
	picker *picker.Picker
	inbox  *inbox.Inbox
	cfg    appConfig
	log    *zap.Logger

	statusLabel *widget.Label
	savedList   *fyne.Container
}

func newPickerUI(w fyne.Window, p *picker.Picker, box *inbox.Inbox, cfg appConfig, log *zap.Logger) *pickerUI {
	statusLabel := widget.NewLabel("")
	statusLabel.Wrapping = fyne.TextWrapWord // Allow status messages to wrap
	return &pickerUI{
		window:      w,
		picker:      p,
		inbox:       box,
		cfg:         cfg,
		log:         log,
		statusLabel: statusLabel,
		savedList:   container.NewVBox(),
	}
}

func (u *pickerUI) content() fyne.CanvasObject {
	pickOneButton := widget.NewButton("Pick a file", u.pickOne)
	pickManyButton := widget.NewButton("Pick several files", u.pickMany)
	inboxButton := shared.NewMenuButton("Inbox",
		fyne.NewMenuItem("Open folder", func() {
			if err := shared.OpenFileExplorer(u.inbox.Dir()); err != nil {
				dialog.ShowError(err, u.window)
			}
		}),
		fyne.NewMenuItem("Copy path", func() {
			if err := clipboard.WriteAll(u.inbox.Dir()); err != nil {
				dialog.ShowError(fmt.Errorf("copying inbox path: %w", err), u.window)
			}
		}),
	)

	savedScroll := container.NewVScroll(u.savedList)
	savedScroll.SetMinSize(fyne.NewSize(400, 200))

	return container.NewVBox(
		widget.NewLabelWithStyle("Document Picker", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewHBox(pickOneButton, pickManyButton, inboxButton),
		u.statusLabel,
		widget.NewLabel("Saved files:"),
		savedScroll,
	)
}

func (u *pickerUI) setStatus(msg string) {
	u.statusLabel.SetText(msg)
	u.statusLabel.Refresh()
}

func (u *pickerUI) pickOne() {
	f := u.picker.PickOne(u.window, u.cfg.Extensions)
	u.setStatus("Waiting for a file...")
	go func() {
		defer f.Close()
		h, ok, err := f.Await(context.Background())
		if err != nil || !ok {
			u.setStatus("No file picked")
			return
		}
		if u.store(h) {
			u.setStatus("1 file saved")
		}
	}()
}

func (u *pickerUI) pickMany() {
	ctx, stop := context.WithCancel(context.Background())
	cancel := make(chan struct{})
	pickingDialog := pickdialog.NewPickingDialog("Picking files", u.window, cancel)
	pickingDialog.Show()
	go func() {
		<-cancel
		stop()
	}()

	s := u.picker.PickMany(u.window, u.cfg.Extensions)
	u.setStatus("Waiting for files...")
	go func() {
		defer pickingDialog.Hide()
		defer s.Close()
		defer stop()
		saved := 0
		for h := range s.All(ctx) {
			if u.store(h) {
				saved++
			}
		}
		u.setStatus(fmt.Sprintf("%d file(s) saved", saved))
	}()
}

// store saves h in the inbox and lists it. It reports whether it succeeded.
func (u *pickerUI) store(h picker.FileHandle) bool {
	path, err := u.inbox.Save(h)
	if err != nil {
		u.log.Error("saving picked file failed", zap.Error(err))
		dialog.ShowError(fmt.Errorf("saving picked file: %w", err), u.window)
		return false
	}

	link := widget.NewButton(path, func() {
		if err := shared.OpenFile(path); err != nil {
			dialog.ShowError(err, u.window)
		}
	})
	link.Importance = widget.LowImportance
	u.savedList.Add(link)

	if u.cfg.CopyPath {
		if err := clipboard.WriteAll(path); err != nil {
			u.log.Warn("copying path to clipboard failed", zap.Error(err))
		}
	}
	return true
}
