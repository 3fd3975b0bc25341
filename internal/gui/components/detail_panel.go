package components

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const detailPlaceholder = "Click an element to see its details."

// DetailPanel is the read-only text region under the grid.
type DetailPanel struct {
	container *fyne.Container
	text      *widget.Label
	lines     []string
}

func NewDetailPanel() *DetailPanel {
	text := widget.NewLabel(detailPlaceholder)
	text.Wrapping = fyne.TextWrapWord

	return &DetailPanel{
		container: container.NewStack(container.NewVScroll(text)),
		text:      text,
	}
}

func (dp *DetailPanel) GetContainer() *fyne.Container {
	return dp.container
}

// Clear empties the panel.
func (dp *DetailPanel) Clear() {
	dp.lines = dp.lines[:0]
	dp.text.SetText("")
}

// Append adds one line below the current content.
func (dp *DetailPanel) Append(line string) {
	dp.lines = append(dp.lines, line)
	dp.text.SetText(strings.Join(dp.lines, "\n"))
}

// Show replaces the content with lines.
func (dp *DetailPanel) Show(lines []string) {
	dp.Clear()
	for _, line := range lines {
		dp.Append(line)
	}
}

// Lines returns a copy of what is currently shown.
func (dp *DetailPanel) Lines() []string {
	out := make([]string, len(dp.lines))
	copy(out, dp.lines)
	return out
}

// Text returns the rendered label text.
func (dp *DetailPanel) Text() string {
	return dp.text.Text
}
