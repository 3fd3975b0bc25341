package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ElementCell is the clickable button for one atomic number. A tap always
// reports the cell's own AtomicNumber to the select handler.
type ElementCell struct {
	widget.Button

	AtomicNumber int
	Description  string

	background *canvas.Rectangle
	tile       *fyne.Container

	onSelect    func(atomicNumber int)
	onHover     func(description string)
	onHoverExit func()
}

// CellLabel is the button text: symbol above atomic number.
func CellLabel(symbol string, atomicNumber int) string {
	if symbol == "" {
		symbol = "?"
	}
	return fmt.Sprintf("%s\n%d", symbol, atomicNumber)
}

// CellDescription is the hover hint for a cell.
func CellDescription(name string, atomicNumber int) string {
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("Name: %s\nAtomic Number: %d", name, atomicNumber)
}

func NewElementCell(atomicNumber int, symbol, name string, onSelect func(int)) *ElementCell {
	cell := &ElementCell{
		AtomicNumber: atomicNumber,
		Description:  CellDescription(name, atomicNumber),
		onSelect:     onSelect,
	}
	cell.Text = CellLabel(symbol, atomicNumber)
	cell.Importance = widget.LowImportance
	cell.OnTapped = cell.dispatch
	cell.ExtendBaseWidget(cell)

	cell.background = canvas.NewRectangle(CellColor(atomicNumber))
	cell.background.CornerRadius = 3
	cell.tile = container.NewStack(cell.background, cell)

	return cell
}

func (c *ElementCell) dispatch() {
	if c.onSelect != nil {
		c.onSelect(c.AtomicNumber)
	}
}

// Tile returns the cell stacked on its coloured background.
func (c *ElementCell) Tile() fyne.CanvasObject {
	return c.tile
}

// Background is the colour drawn behind the cell.
func (c *ElementCell) Background() *canvas.Rectangle {
	return c.background
}

func (c *ElementCell) SetHoverHandlers(onHover func(string), onExit func()) {
	c.onHover = onHover
	c.onHoverExit = onExit
}

func (c *ElementCell) MouseIn(ev *desktop.MouseEvent) {
	c.Button.MouseIn(ev)
	if c.onHover != nil {
		c.onHover(c.Description)
	}
}

func (c *ElementCell) MouseOut() {
	c.Button.MouseOut()
	if c.onHoverExit != nil {
		c.onHoverExit()
	}
}

var _ desktop.Hoverable = (*ElementCell)(nil)
