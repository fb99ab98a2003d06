package controllers

import "volume-tracker/internal/models"

// View is what the controller needs from the window. *views.MainView
// implements it; tests use a recording fake.
type View interface {
	SetAddHandler(handler func())
	SetRecalculateHandler(handler func())
	SetLoadSelectedHandler(handler func())
	SetUpdateHandler(handler func())
	SetDeleteHandler(handler func())
	SetRowSelectedHandler(handler func(row int))
	SetRowUnselectedHandler(handler func())

	FormInput() models.SetInput
	SetFormInput(in models.SetInput)
	ClearForm()
	ShowFieldErrors(verr *models.ValidationError)
	ClearFieldErrors()

	SetRows(rows []models.WorkoutSet)
	SetSummary(summary models.Summary)
	ScrollToRow(row int)
	ClearSelection()
	SetSelectionActionsEnabled(enabled bool)

	SetStatus(status string)
	SetLogFile(path string)

	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
}
