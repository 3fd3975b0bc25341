package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodic_EveryElementExactlyOnce(t *testing.T) {
	seen := make(map[int]int)
	for _, row := range Periodic {
		for _, n := range row {
			if n != 0 {
				seen[n]++
			}
		}
	}

	require.Len(t, seen, 118)
	for n := 1; n <= 118; n++ {
		assert.Equal(t, 1, seen[n], "atomic number %d", n)
	}
}

func TestPeriodic_Geometry(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		row    int
		column int
	}{
		{"hydrogen top left", 1, 0, 0},
		{"helium top right", 2, 0, 17},
		{"boron starts p-block", 5, 1, 12},
		{"scandium group 3", 21, 3, 2},
		{"lanthanum placeholder", 57, 5, 2},
		{"hafnium after f-block", 72, 5, 3},
		{"oganesson", 118, 6, 17},
		{"cerium in lanthanide row", 58, 8, 3},
		{"lawrencium ends actinide row", 103, 9, 16},
	}

	positions := make(map[int]Slot)
	for _, s := range Slots() {
		positions[s.AtomicNumber] = s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := positions[tt.n]
			assert.Equal(t, tt.row, slot.Row)
			assert.Equal(t, tt.column, slot.Column)
		})
	}
}

func TestSlots_RowMajorOrder(t *testing.T) {
	slots := Slots()
	require.Len(t, slots, 118)
	assert.Equal(t, 1, slots[0].AtomicNumber)
	assert.Equal(t, 2, slots[1].AtomicNumber)
	assert.Equal(t, 103, slots[len(slots)-1].AtomicNumber)

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		assert.True(t, prev.Row < cur.Row || (prev.Row == cur.Row && prev.Column < cur.Column))
	}
}

func TestSlotGridLayout_PlacesBySlot(t *testing.T) {
	slots := []Slot{{Row: 0, Column: 0}, {Row: 9, Column: 17}}
	l := NewSlotGridLayout(slots, fyne.NewSize(10, 10), 2)

	first := canvas.NewRectangle(nil)
	last := canvas.NewRectangle(nil)
	l.Layout([]fyne.CanvasObject{first, last}, fyne.NewSize(18*20+17*2, 10*30+9*2))

	assert.Equal(t, fyne.NewSize(20, 30), first.Size())
	assert.Equal(t, fyne.NewPos(0, 0), first.Position())
	assert.Equal(t, fyne.NewPos(17*22, 9*32), last.Position())
}

func TestSlotGridLayout_MinSize(t *testing.T) {
	l := NewSlotGridLayout([]Slot{{}}, fyne.NewSize(40, 30), 1)

	rect := canvas.NewRectangle(nil)
	rect.SetMinSize(fyne.NewSize(50, 10))

	assert.Equal(t, fyne.NewSize(50*18+17, 30*10+9), l.MinSize([]fyne.CanvasObject{rect}))
}

func TestSlotGridLayout_NeverBelowMinCell(t *testing.T) {
	l := NewSlotGridLayout([]Slot{{Row: 0, Column: 1}}, fyne.NewSize(40, 30), 0)
	rect := canvas.NewRectangle(nil)

	l.Layout([]fyne.CanvasObject{rect}, fyne.NewSize(100, 100))

	assert.Equal(t, fyne.NewSize(40, 30), rect.Size())
	assert.Equal(t, fyne.NewPos(40, 0), rect.Position())
}
