package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the load summary on the left and hover hints on the right.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	hintLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	hintLabel := widget.NewLabel("")
	hintLabel.Alignment = fyne.TextAlignTrailing

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		statusLabel,
		hintLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		hintLabel:   hintLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetElementCount reports how many records the table holds.
func (sb *StatusBar) SetElementCount(count int) {
	if count == 0 {
		sb.SetStatus("No element data loaded")
		return
	}
	sb.SetStatus(fmt.Sprintf("Loaded %d elements", count))
}

func (sb *StatusBar) SetHint(hint string) {
	sb.hintLabel.SetText(hint)
}

func (sb *StatusBar) Hint() string {
	return sb.hintLabel.Text
}

func (sb *StatusBar) ClearHint() {
	sb.hintLabel.SetText("")
}
