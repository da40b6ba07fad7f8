package shared

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewMenuButton returns a button that pops up items below itself.
func NewMenuButton(label string, items ...*fyne.MenuItem) *widget.Button {
	btn := widget.NewButtonWithIcon(label, theme.MenuDropDownIcon(), nil)
	btn.IconPlacement = widget.ButtonIconTrailingText
	btn.OnTapped = func() {
		driver := fyne.CurrentApp().Driver()
		pos := driver.AbsolutePositionForObject(btn)
		pos.Y += btn.Size().Height // Position below the button
		widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), driver.CanvasForObject(btn), pos)
	}
	return btn
}
