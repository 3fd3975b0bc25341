package gui

import (
	"strings"

	"periodic-tutor/internal/elements"
	"periodic-tutor/internal/gui/components"
	"periodic-tutor/internal/gui/layout"
	"periodic-tutor/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	Heading     = "Learn Your Periodic Table"
	cellPadding = 2
)

var minCellSize = fyne.NewSize(46, 40)

// State is where the display shell is: Idle until the first click, then
// Detail for the most recently clicked element. There is no way back to Idle.
type State int

const (
	StateIdle State = iota
	StateDetail
)

func (s State) String() string {
	if s == StateDetail {
		return "detail"
	}
	return "idle"
}

type Manager struct {
	table      *elements.Table
	logger     logger.Logger
	isShutdown bool

	state    State
	selected int

	cells  map[int]*components.ElementCell
	grid   *fyne.Container
	detail *components.DetailPanel
	status *components.StatusBar
	root   *fyne.Container
}

// NewManager builds the grid for table. The table is only read, never written.
func NewManager(table *elements.Table, log logger.Logger) *Manager {
	if table == nil {
		table = elements.Empty()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		table:  table,
		logger: log,
		state:  StateIdle,
		cells:  make(map[int]*components.ElementCell),
		detail: components.NewDetailPanel(),
		status: components.NewStatusBar(),
	}

	manager.buildGrid()
	manager.buildLayout()
	manager.status.SetElementCount(table.Len())

	log.Info("GUIManager", "periodic table grid built", map[string]interface{}{
		"cells":    len(manager.cells),
		"elements": table.Len(),
	})

	return manager
}

func (m *Manager) buildGrid() {
	slots := layout.Slots()
	tiles := make([]fyne.CanvasObject, 0, len(slots))

	for _, slot := range slots {
		record, _ := m.table.Lookup(slot.AtomicNumber)

		var symbol, name string
		if record.Symbol.IsKnown() {
			symbol = record.Symbol.String()
		}
		if record.Name.IsKnown() {
			name = record.Name.String()
		}

		cell := components.NewElementCell(slot.AtomicNumber, symbol, name, m.SelectElement)
		cell.SetHoverHandlers(m.showHint, m.status.ClearHint)

		m.cells[slot.AtomicNumber] = cell
		tiles = append(tiles, cell.Tile())
	}

	m.grid = container.New(layout.NewSlotGridLayout(slots, minCellSize, cellPadding), tiles...)
}

func (m *Manager) buildLayout() {
	title := widget.NewLabelWithStyle(Heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	body := container.NewVSplit(m.grid, m.detail.GetContainer())
	body.SetOffset(0.72)

	m.root = container.NewBorder(
		title,
		m.status.GetContainer(),
		nil, nil,
		body,
	)
}

func (m *Manager) showHint(description string) {
	m.status.SetHint(strings.ReplaceAll(description, "\n", "  |  "))
}

// SelectElement moves to Detail(atomicNumber) and overwrites the panel with
// that element's fields. A missing record shows Unknown for every field but
// the atomic number.
func (m *Manager) SelectElement(atomicNumber int) {
	record, found := m.table.Lookup(atomicNumber)
	if !found {
		m.logger.Debug("GUIManager", "no record for atomic number", map[string]interface{}{
			"atomic_number": atomicNumber,
		})
	}

	m.detail.Clear()
	for _, line := range record.Lines() {
		m.detail.Append(line)
	}

	m.state = StateDetail
	m.selected = atomicNumber

	m.logger.Debug("GUIManager", "element selected", map[string]interface{}{
		"atomic_number": atomicNumber,
		"found":         found,
	})
}

// State returns the current state and, in Detail, the selected atomic number.
func (m *Manager) State() (State, int) {
	return m.state, m.selected
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.root
}

// Cell returns the cell for atomicNumber, or nil if the grid has none.
func (m *Manager) Cell(atomicNumber int) *components.ElementCell {
	return m.cells[atomicNumber]
}

func (m *Manager) CellCount() int {
	return len(m.cells)
}

func (m *Manager) DetailLines() []string {
	return m.detail.Lines()
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.status
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.logger.Debug("GUIManager", "shutdown", map[string]interface{}{
		"state":    m.state.String(),
		"selected": m.selected,
	})
}
