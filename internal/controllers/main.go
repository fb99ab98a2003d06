package controllers

import (
	"context"
	"errors"
	"fmt"

	"volume-tracker/internal/csvlog"
	"volume-tracker/internal/logger"
	"volume-tracker/internal/models"
	"volume-tracker/internal/services"
)

// MainController binds the tracker window to the workout service
type MainController struct {
	service *services.WorkoutService
	view    View
	logger  logger.Logger

	// selectedID is the row picked in the history table, "" when none
	selectedID string

	// loadFailed is set when the log on disk could not be read at startup
	loadFailed bool
}

// NewMainController creates a new main controller
func NewMainController(service *services.WorkoutService, lg logger.Logger) *MainController {
	return &MainController{
		service: service,
		logger:  lg,
	}
}

// SetMainView associates the view with this controller and wires its events
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	mc.setupViewEventHandlers()
	mc.view.SetLogFile(mc.service.Path())
	mc.view.SetSelectionActionsEnabled(false)
}

func (mc *MainController) setupViewEventHandlers() {
	mc.view.SetAddHandler(mc.AddSet)
	mc.view.SetRecalculateHandler(mc.RecalculateSummary)
	mc.view.SetLoadSelectedHandler(mc.LoadSelected)
	mc.view.SetUpdateHandler(mc.UpdateSelected)
	mc.view.SetDeleteHandler(mc.DeleteSelected)
	mc.view.SetRowSelectedHandler(mc.SelectRow)
	mc.view.SetRowUnselectedHandler(mc.UnselectRow)
}

// LoadLog reads the log file into the table at startup
func (mc *MainController) LoadLog(ctx context.Context) {
	report, err := mc.service.Load(ctx)
	mc.refresh()
	mc.loadFailed = err != nil

	if err != nil {
		mc.logger.Error("MainController", err, nil)
		mc.view.SetStatus("Starting with an empty log")
		mc.view.ShowError("Data Load Error", fmt.Errorf("failed to load data: %w; starting with an empty log", err))
		return
	}

	mc.view.SetStatus(fmt.Sprintf("Loaded %d sets", report.Loaded))
	if len(report.Skipped) > 0 {
		mc.view.ShowWarning("Some Rows Skipped", skippedMessage(report))
	}
}

// AddSet validates the form and appends a new row
func (mc *MainController) AddSet() {
	set, err := mc.service.AddSet(mc.view.FormInput())
	if err != nil {
		mc.showInputError("Please check all input fields. Sets, Reps, and Weight must be numbers, and no field can be left empty.", err)
		return
	}

	mc.view.ClearFieldErrors()
	mc.view.ClearForm()
	mc.refresh()
	mc.view.ScrollToRow(mc.service.IndexOf(set.ID))

	total := len(mc.service.Sets())
	mc.view.SetStatus(fmt.Sprintf("Added %s", set.Exercise))
	mc.view.ShowInfo("Set Added Successfully",
		fmt.Sprintf("New set for '%s' added and tracked! Total Sets: %d", set.Exercise, total))
}

// RecalculateSummary recomputes the summary card on demand
func (mc *MainController) RecalculateSummary() {
	mc.view.SetSummary(mc.service.Summary())
	mc.view.SetStatus("Summary recalculated")
	mc.view.ShowInfo("Analysis Complete", "Performance Summary has been successfully updated.")
}

// SelectRow records the table selection
func (mc *MainController) SelectRow(row int) {
	sets := mc.service.Sets()
	if row < 0 || row >= len(sets) {
		mc.UnselectRow()
		return
	}
	mc.selectedID = sets[row].ID
	mc.view.SetSelectionActionsEnabled(true)
}

// UnselectRow clears the selection and disables the selection actions
func (mc *MainController) UnselectRow() {
	mc.selectedID = ""
	mc.view.SetSelectionActionsEnabled(false)
}

// SelectedID returns the ID of the selected row, "" when none.
func (mc *MainController) SelectedID() string {
	return mc.selectedID
}

// LoadSelected copies the selected row into the form for editing
func (mc *MainController) LoadSelected() {
	set, ok := mc.selected("Please select a row in the history table first.")
	if !ok {
		return
	}
	mc.view.ClearFieldErrors()
	mc.view.SetFormInput(models.FormatInput(set))
	mc.view.SetStatus(fmt.Sprintf("Editing %s", set.Exercise))
}

// UpdateSelected overwrites the selected row with the form contents
func (mc *MainController) UpdateSelected() {
	if _, ok := mc.selected("Please select a row to update."); !ok {
		return
	}

	set, err := mc.service.UpdateSet(mc.selectedID, mc.view.FormInput())
	if err != nil {
		mc.showInputError("Please fix your inputs.", err)
		return
	}

	mc.view.ClearFieldErrors()
	mc.refresh()
	mc.view.SetStatus(fmt.Sprintf("Updated %s", set.Exercise))
	mc.view.ShowInfo("Updated", "The selected set was updated successfully.")
}

// DeleteSelected removes the selected row after confirmation
func (mc *MainController) DeleteSelected() {
	if _, ok := mc.selected("Please select a row to delete."); !ok {
		return
	}
	id := mc.selectedID

	mc.view.ShowConfirm("Delete Set", "Are you sure you want to delete the selected set?", func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := mc.service.DeleteSet(id); err != nil {
			mc.logger.Error("MainController", err, map[string]interface{}{"id": id})
			mc.view.ShowError("Delete Error", fmt.Errorf("could not delete the selected row: %w", err))
			return
		}

		mc.view.ClearSelection()
		mc.UnselectRow()
		mc.refresh()
		mc.view.SetStatus("Set deleted")
		mc.view.ShowInfo("Deleted", "The selected set was deleted.")
	})
}

// RequestClose asks before exiting, saves, then calls closeWindow. A failed
// save keeps the window open. A log that could not be read at startup is not
// overwritten unless sets were entered since.
func (mc *MainController) RequestClose(ctx context.Context, closeWindow func()) {
	mc.view.ShowConfirm("Exit Fitness Tracker",
		"Do you really want to close the Fitness Tracker? All data will be saved to the CSV file.",
		func(confirmed bool) {
			if !confirmed {
				mc.logger.Debug("MainController", "exit cancelled", nil)
				return
			}
			if mc.loadFailed && !mc.service.HasUnsavedChanges() {
				mc.logger.Warning("MainController", "log was not loaded, leaving it untouched", map[string]interface{}{
					"path": mc.service.Path(),
				})
				closeWindow()
				return
			}
			if err := mc.service.Save(ctx); err != nil {
				mc.view.ShowError("Data Save Error", fmt.Errorf("failed to save data: %w", err))
				return
			}
			closeWindow()
		})
}

// Shutdown is called by the shutdown manager; the service does the saving.
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "shutdown completed", nil)
}

func (mc *MainController) selected(hint string) (models.WorkoutSet, bool) {
	if mc.selectedID == "" {
		mc.view.ShowWarning("No Selection", hint)
		return models.WorkoutSet{}, false
	}
	set, ok := mc.service.Get(mc.selectedID)
	if !ok {
		mc.view.ClearSelection()
		mc.UnselectRow()
		mc.view.ShowWarning("No Selection", hint)
		return models.WorkoutSet{}, false
	}
	return set, true
}

func (mc *MainController) showInputError(prefix string, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		mc.view.ShowFieldErrors(verr)
		mc.view.ShowError("Invalid Input", fmt.Errorf("%s Details: %w", prefix, err))
		return
	}
	mc.logger.Error("MainController", err, nil)
	mc.view.ShowError("Error", err)
}

func (mc *MainController) refresh() {
	mc.view.SetRows(mc.service.Sets())
	mc.view.SetSummary(mc.service.Summary())
}

func skippedMessage(report csvlog.LoadReport) string {
	msg := fmt.Sprintf("%d row(s) in the log could not be read and were skipped:", len(report.Skipped))
	for i, s := range report.Skipped {
		if i == 5 {
			msg += fmt.Sprintf("\n...and %d more", len(report.Skipped)-5)
			break
		}
		msg += fmt.Sprintf("\nline %d: %s", s.Line, s.Reason)
	}
	return msg
}
