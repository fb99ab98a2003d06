package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volume-tracker/internal/models"

	"fyne.io/fyne/v2/test"
)

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "0.00 kg", FormatVolume(0))
	assert.Equal(t, "600.00 kg", FormatVolume(600))
	assert.Equal(t, "1,234.50 kg", FormatVolume(1234.5))
	assert.Equal(t, "12,345", FormatCount(12345))
}

func TestBreakdownText(t *testing.T) {
	assert.Equal(t, "No sets logged yet.", BreakdownText(models.Summary{}))

	summary := models.Summary{ByExercise: []models.ExerciseTotal{
		{Exercise: "Squat", Entries: 2, Volume: 1240},
		{Exercise: "Bench", Entries: 1, Volume: 300},
	}}
	assert.Equal(t, "Squat: 1,240.00 kg (2 entries)\nBench: 300.00 kg (1 entry)", BreakdownText(summary))
}

func TestBreakdownTextCapsLines(t *testing.T) {
	var summary models.Summary
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		summary.ByExercise = append(summary.ByExercise, models.ExerciseTotal{Exercise: name, Entries: 1, Volume: 10})
	}

	lines := strings.Split(BreakdownText(summary), "\n")
	require.Len(t, lines, breakdownLimit+1)
	assert.Equal(t, "+ 2 more", lines[breakdownLimit])
}

func TestSummaryPanelUpdate(t *testing.T) {
	test.NewTempApp(t)
	sp := NewSummaryPanel()
	assert.Equal(t, "Total Volume: 0.00 kg", sp.VolumeText())
	assert.Equal(t, "Total Sets Logged: 0", sp.SetsText())

	sp.Update(models.Summary{TotalVolume: 2100, SetCount: 2})
	assert.Equal(t, "Total Volume: 2,100.00 kg", sp.VolumeText())
	assert.Equal(t, "Total Sets Logged: 2", sp.SetsText())
}

func TestEntryFormDefaults(t *testing.T) {
	test.NewTempApp(t)
	f := NewEntryForm()

	assert.Equal(t, time.Now().Format(models.DateLayout), f.DateEntry.Text)
	assert.True(t, f.LoadButton.Disabled())
	assert.True(t, f.UpdateButton.Disabled())
	assert.True(t, f.DeleteButton.Disabled())
	assert.False(t, f.AddButton.Disabled())
}

func TestEntryFormClearKeepsDate(t *testing.T) {
	test.NewTempApp(t)
	f := NewEntryForm()
	f.SetInput(models.SetInput{Date: "2024-05-01", Exercise: "Squat", Sets: "3", Reps: "10", Weight: "20"})

	f.Clear()

	assert.Equal(t, models.SetInput{Date: "2024-05-01"}, f.Input())
}

func TestEntryFormButtonsCallHandlers(t *testing.T) {
	test.NewTempApp(t)
	f := NewEntryForm()
	var calls []string
	f.SetAddHandler(func() { calls = append(calls, "add") })
	f.SetRecalculateHandler(func() { calls = append(calls, "recalc") })
	f.SetDeleteHandler(func() { calls = append(calls, "delete") })

	test.Tap(f.AddButton)
	test.Tap(f.RecalculateButton)
	test.Tap(f.DeleteButton) // disabled, ignored
	f.SetSelectionActionsEnabled(true)
	test.Tap(f.DeleteButton)
	f.WeightEntry.OnSubmitted("20")

	assert.Equal(t, []string{"add", "recalc", "delete", "add"}, calls)
}

func TestEntryFormErrors(t *testing.T) {
	test.NewTempApp(t)
	f := NewEntryForm()
	_, err := models.ParseSetInput(models.SetInput{Date: "2024-05-01", Exercise: "Squat", Sets: "0", Reps: "x", Weight: "1"})
	verr, ok := err.(*models.ValidationError)
	require.True(t, ok)

	f.ShowErrors(verr)
	assert.Contains(t, f.ErrorText(), "sets")
	assert.Contains(t, f.ErrorText(), "  |  ")

	f.ClearErrors()
	assert.Empty(t, f.ErrorText())
}

func TestHistoryTableCells(t *testing.T) {
	test.NewTempApp(t)
	h := NewHistoryTable()
	day, _ := time.Parse(models.DateLayout, "2024-05-01")
	h.SetRows([]models.WorkoutSet{{ID: "a", Date: day, Exercise: "Squat", Sets: 3, Reps: 10, WeightKg: 20}})

	assert.Equal(t, 1, h.RowCount())
	want := []string{"2024-05-01", "Squat", "3", "10", "20.00", "600.00"}
	for col, text := range want {
		assert.Equal(t, text, h.CellText(0, col))
	}
	assert.Empty(t, h.CellText(1, 0))
}

func TestHistoryTableSelection(t *testing.T) {
	test.NewTempApp(t)
	h := NewHistoryTable()
	h.SetRows([]models.WorkoutSet{{ID: "a", Exercise: "Squat"}, {ID: "b", Exercise: "Bench"}})

	selected, unselected := -1, 0
	h.SetSelectHandler(func(row int) { selected = row })
	h.SetUnselectHandler(func() { unselected++ })

	h.Select(1)
	assert.Equal(t, 1, selected)
	assert.Equal(t, 1, h.SelectedRow())

	h.ClearSelection()
	assert.Equal(t, -1, h.SelectedRow())
	assert.Equal(t, 0, unselected)
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sb := NewStatusBar()
	sb.SetStatus("Loaded 3 sets")
	assert.Equal(t, "Loaded 3 sets", sb.GetStatus())
}
