package components

import (
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellLabelAndDescription(t *testing.T) {
	assert.Equal(t, "C\n6", CellLabel("C", 6))
	assert.Equal(t, "?\n6", CellLabel("", 6))
	assert.Equal(t, "Name: Carbon\nAtomic Number: 6", CellDescription("Carbon", 6))
	assert.Equal(t, "Name: ?\nAtomic Number: 6", CellDescription("", 6))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, sky, CellColor(26))
	assert.Equal(t, lime, CellColor(33))
	assert.Equal(t, mint, CellColor(57))
	assert.Equal(t, rose, CellColor(118))
	assert.Equal(t, DefaultCellColor, CellColor(0))
	assert.Equal(t, DefaultCellColor, CellColor(119))

	for n := 1; n <= 118; n++ {
		_, ok := cellColors[n]
		assert.True(t, ok, "colour for %d", n)
	}
}

func TestElementCell_TapDispatchesOwnNumber(t *testing.T) {
	test.NewTempApp(t)

	var got []int
	record := func(n int) { got = append(got, n) }

	cells := make([]*ElementCell, 0, 3)
	for _, n := range []int{1, 6, 118} {
		cells = append(cells, NewElementCell(n, "X", "Name", record))
	}
	w := test.NewWindow(cells[0].Tile())
	defer w.Close()

	for _, cell := range cells {
		test.Tap(cell)
	}

	assert.Equal(t, []int{1, 6, 118}, got)
}

func TestElementCell_Appearance(t *testing.T) {
	test.NewTempApp(t)

	cell := NewElementCell(6, "C", "Carbon", nil)
	assert.Equal(t, "C\n6", cell.Text)
	assert.Equal(t, "Name: Carbon\nAtomic Number: 6", cell.Description)
	assert.Equal(t, CellColor(6), cell.Background().FillColor)
	require.NotNil(t, cell.Tile())

	// no handler: tapping is harmless
	test.Tap(cell)
}

func TestElementCell_HoverShowsDescription(t *testing.T) {
	test.NewTempApp(t)

	var hint string
	cell := NewElementCell(8, "O", "Oxygen", nil)
	cell.SetHoverHandlers(func(s string) { hint = s }, func() { hint = "" })

	cell.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, "Name: Oxygen\nAtomic Number: 8", hint)

	cell.MouseOut()
	assert.Empty(t, hint)
}

func TestDetailPanel_ShowOverwrites(t *testing.T) {
	test.NewTempApp(t)

	panel := NewDetailPanel()
	assert.Equal(t, detailPlaceholder, panel.Text())
	assert.Empty(t, panel.Lines())

	panel.Show([]string{"Name: Hydrogen", "Atomic Number: 1"})
	panel.Show([]string{"Name: Carbon", "Atomic Number: 6"})

	assert.Equal(t, []string{"Name: Carbon", "Atomic Number: 6"}, panel.Lines())
	assert.Equal(t, "Name: Carbon\nAtomic Number: 6", panel.Text())

	panel.Clear()
	assert.Empty(t, panel.Lines())
	assert.Empty(t, panel.Text())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)

	bar := NewStatusBar()
	assert.Equal(t, "Ready", bar.Status())

	bar.SetElementCount(118)
	assert.Equal(t, "Loaded 118 elements", bar.Status())

	bar.SetElementCount(0)
	assert.Equal(t, "No element data loaded", bar.Status())

	bar.SetHint("Name: Gold")
	assert.Equal(t, "Name: Gold", bar.Hint())
	bar.ClearHint()
	assert.Empty(t, bar.Hint())
}
