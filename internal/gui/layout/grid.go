package layout

import (
	"fyne.io/fyne/v2"
)

// SlotGridLayout places objects[i] at slots[i] on a fixed rows x columns
// grid. Cells share the container size evenly but never shrink below
// minCell, so gaps keep their width when a row is sparse.
type SlotGridLayout struct {
	slots   []Slot
	minCell fyne.Size
	padding float32
}

func NewSlotGridLayout(slots []Slot, minCell fyne.Size, padding float32) *SlotGridLayout {
	return &SlotGridLayout{
		slots:   slots,
		minCell: minCell,
		padding: padding,
	}
}

func (l *SlotGridLayout) cellSize(containerSize fyne.Size) fyne.Size {
	width := (containerSize.Width - l.padding*(Columns-1)) / Columns
	height := (containerSize.Height - l.padding*(Rows-1)) / Rows

	if width < l.minCell.Width {
		width = l.minCell.Width
	}
	if height < l.minCell.Height {
		height = l.minCell.Height
	}
	return fyne.NewSize(width, height)
}

func (l *SlotGridLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	cell := l.cellSize(containerSize)

	for i, obj := range objects {
		if i >= len(l.slots) {
			break
		}

		slot := l.slots[i]
		obj.Resize(cell)
		obj.Move(fyne.NewPos(
			float32(slot.Column)*(cell.Width+l.padding),
			float32(slot.Row)*(cell.Height+l.padding),
		))
	}
}

func (l *SlotGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	cell := l.minCell
	for i, obj := range objects {
		if i >= len(l.slots) {
			break
		}
		objMin := obj.MinSize()
		if objMin.Width > cell.Width {
			cell.Width = objMin.Width
		}
		if objMin.Height > cell.Height {
			cell.Height = objMin.Height
		}
	}

	return fyne.NewSize(
		cell.Width*Columns+l.padding*(Columns-1),
		cell.Height*Rows+l.padding*(Rows-1),
	)
}
