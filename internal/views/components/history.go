package components

import (
	"strconv"

	"volume-tracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

var historyColumns = []struct {
	title string
	width float32
}{
	{"Date", 95},
	{"Exercise", 150},
	{"Sets", 70},
	{"Reps", 70},
	{"Weight", 80},
	{"Volume", 100},
}

// HistoryTable is the "Detailed Set History" grid
type HistoryTable struct {
	table *widget.Table
	rows  []models.WorkoutSet

	selectedRow int

	selectHandler   func(row int)
	unselectHandler func()
}

// NewHistoryTable creates an empty table with a header row
func NewHistoryTable() *HistoryTable {
	h := &HistoryTable{selectedRow: -1}
	h.createComponents()
	return h
}

func (h *HistoryTable) createComponents() {
	h.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(h.rows), len(historyColumns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Alignment = fyne.TextAlignCenter
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(h.CellText(id.Row, id.Col))
		},
	)
	h.table.ShowHeaderColumn = false
	h.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	h.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(historyColumns) {
			cell.(*widget.Label).SetText(historyColumns[id.Col].title)
		}
	}
	for i, col := range historyColumns {
		h.table.SetColumnWidth(i, col.width)
	}

	// Selection is per row; any cell click selects its row.
	h.table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(h.rows) {
			return
		}
		h.selectedRow = id.Row
		if h.selectHandler != nil {
			h.selectHandler(id.Row)
		}
	}
	h.table.OnUnselected = func(id widget.TableCellID) {
		if id.Row != h.selectedRow {
			return
		}
		h.selectedRow = -1
		if h.unselectHandler != nil {
			h.unselectHandler()
		}
	}
}

// CellText renders one cell the way the table shows it
func (h *HistoryTable) CellText(row, col int) string {
	if row < 0 || row >= len(h.rows) {
		return ""
	}
	s := h.rows[row]
	switch col {
	case 0:
		return s.DateString()
	case 1:
		return s.Exercise
	case 2:
		return strconv.Itoa(s.Sets)
	case 3:
		return strconv.Itoa(s.Reps)
	case 4:
		return strconv.FormatFloat(s.WeightKg, 'f', 2, 64)
	case 5:
		return strconv.FormatFloat(s.Volume(), 'f', 2, 64)
	}
	return ""
}

// SetRows replaces the displayed rows
func (h *HistoryTable) SetRows(rows []models.WorkoutSet) {
	h.rows = rows
	if h.selectedRow >= len(rows) {
		h.selectedRow = -1
	}
	h.table.Refresh()
}

func (h *HistoryTable) RowCount() int {
	return len(h.rows)
}

// Select highlights a row as if it had been clicked
func (h *HistoryTable) Select(row int) {
	h.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// ClearSelection drops the current selection without notifying handlers
func (h *HistoryTable) ClearSelection() {
	handler := h.unselectHandler
	h.unselectHandler = nil
	h.table.UnselectAll()
	h.unselectHandler = handler
	h.selectedRow = -1
}

func (h *HistoryTable) SelectedRow() int {
	return h.selectedRow
}

// ScrollTo brings a row into view
func (h *HistoryTable) ScrollTo(row int) {
	if row < 0 || row >= len(h.rows) {
		return
	}
	h.table.ScrollTo(widget.TableCellID{Row: row, Col: 0})
}

func (h *HistoryTable) SetSelectHandler(handler func(row int)) { h.selectHandler = handler }
func (h *HistoryTable) SetUnselectHandler(handler func())      { h.unselectHandler = handler }

// Widget returns the table for embedding in a layout
func (h *HistoryTable) Widget() *widget.Table {
	return h.table
}
