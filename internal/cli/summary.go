package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"volume-tracker/internal/csvlog"
	"volume-tracker/internal/models"
	"volume-tracker/internal/views/components"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the volume summary of the workout log",
		Long:  `Read the workout log and print total volume, sets logged and a per-exercise breakdown without opening the window.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}
}

func runSummary(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	sets, report, err := csvlog.Load(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cfg.Log.Path, err)
	}

	renderSummary(cmd.OutOrStdout(), cfg.Log.Path, models.Summarize(sets), report)
	return nil
}

// renderSummary writes the totals box followed by the per-exercise table.
func renderSummary(w io.Writer, path string, summary models.Summary, report csvlog.LoadReport) {
	fmt.Fprintln(w, titleStyle.Render("Performance Summary")+"  "+labelStyle.Render(path))

	totals := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Total Volume:      ")+totalStyle.Render(components.FormatVolume(summary.TotalVolume)),
		labelStyle.Render("Total Sets Logged: ")+components.FormatCount(summary.SetCount),
		labelStyle.Render("Total Reps:        ")+components.FormatCount(summary.TotalReps),
	)
	fmt.Fprintln(w, boxStyle.Render(totals))

	if len(summary.ByExercise) == 0 {
		fmt.Fprintln(w, labelStyle.Render("No sets logged yet."))
	} else {
		fmt.Fprintln(w, exerciseTable(summary.ByExercise))
	}

	if n := len(report.Skipped); n > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d row(s) skipped while reading the log", n)))
	}
}

func exerciseTable(totals []models.ExerciseTotal) string {
	nameWidth := len("EXERCISE")
	for _, t := range totals {
		nameWidth = max(nameWidth, lipgloss.Width(t.Exercise))
	}

	name := lipgloss.NewStyle().Width(nameWidth + 2)
	entries := lipgloss.NewStyle().Width(9).Align(lipgloss.Right)
	volume := lipgloss.NewStyle().Width(16).Align(lipgloss.Right)

	lines := []string{
		headerStyle.Render(name.Render("EXERCISE") + entries.Render("ENTRIES") + volume.Render("VOLUME")),
	}
	for _, t := range totals {
		lines = append(lines, name.Render(t.Exercise)+
			entries.Render(strconv.Itoa(t.Entries))+
			volume.Render(components.FormatVolume(t.Volume)))
	}
	return strings.Join(lines, "\n")
}
