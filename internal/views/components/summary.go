package components

import (
	"fmt"
	"strings"

	"volume-tracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// breakdownLimit caps the per-exercise lines shown under the totals.
const breakdownLimit = 5

// SummaryPanel shows the "Performance Summary" card
type SummaryPanel struct {
	container *fyne.Container
	volume    *widget.Label
	sets      *widget.Label
	breakdown *widget.Label
}

// NewSummaryPanel creates a panel showing an empty log
func NewSummaryPanel() *SummaryPanel {
	sp := &SummaryPanel{}
	sp.createComponents()
	sp.buildLayout()
	sp.Update(models.Summary{})
	return sp
}

func (sp *SummaryPanel) createComponents() {
	sp.volume = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	sp.volume.Importance = widget.SuccessImportance
	sp.sets = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	sp.sets.Importance = widget.WarningImportance
	sp.breakdown = widget.NewLabel("")
	sp.breakdown.Wrapping = fyne.TextWrapWord
}

func (sp *SummaryPanel) buildLayout() {
	totals := container.NewHBox(sp.volume, layout.NewSpacer(), sp.sets)
	sp.container = container.NewVBox(totals, sp.breakdown)
}

// Update redraws the totals and the per-exercise breakdown
func (sp *SummaryPanel) Update(summary models.Summary) {
	sp.volume.SetText("Total Volume: " + FormatVolume(summary.TotalVolume))
	sp.sets.SetText("Total Sets Logged: " + FormatCount(summary.SetCount))
	sp.breakdown.SetText(BreakdownText(summary))
}

// BreakdownText lists the heaviest exercises, one per line.
func BreakdownText(summary models.Summary) string {
	if len(summary.ByExercise) == 0 {
		return "No sets logged yet."
	}
	var b strings.Builder
	for i, ex := range summary.ByExercise {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == breakdownLimit {
			fmt.Fprintf(&b, "+ %d more", len(summary.ByExercise)-breakdownLimit)
			break
		}
		fmt.Fprintf(&b, "%s: %s (%d %s)", ex.Exercise, FormatVolume(ex.Volume), ex.Entries, plural(ex.Entries, "entry", "entries"))
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (sp *SummaryPanel) VolumeText() string { return sp.volume.Text }
func (sp *SummaryPanel) SetsText() string   { return sp.sets.Text }

// GetContainer returns the panel container
func (sp *SummaryPanel) GetContainer() *fyne.Container {
	return sp.container
}
