package views

import (
	"image"
	"image/color"

	"volume-tracker/internal/models"
	"volume-tracker/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const headerText = "PERSONAL STRENGTH & VOLUME LOG"

// MainView is the single tracker window
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	background    *canvas.Image
	minSize       *canvas.Rectangle
	form          *components.EntryForm
	history       *components.HistoryTable
	summary       *components.SummaryPanel
	statusBar     *components.StatusBar
}

// NewMainView creates the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.form = components.NewEntryForm()
	mv.history = components.NewHistoryTable()
	mv.summary = components.NewSummaryPanel()
	mv.statusBar = components.NewStatusBar()

	mv.background = canvas.NewImageFromImage(nil)
	mv.background.FillMode = canvas.ImageFillStretch
	mv.background.Hide()

	mv.minSize = canvas.NewRectangle(color.Transparent)
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	header := widget.NewLabelWithStyle(headerText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	header.Importance = widget.SuccessImportance

	top := container.NewVBox(
		header,
		widget.NewCard("", "Performance Summary", mv.summary.GetContainer()),
		widget.NewCard("", "Log New Workout Set", mv.form.GetContainer()),
	)

	historyCard := widget.NewCard("", "Detailed Set History", mv.history.Widget())

	content := container.NewBorder(
		top,                         // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		historyCard,                 // center
	)

	mv.mainContainer = container.NewStack(mv.minSize, mv.background, container.NewPadded(content))
	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetAddHandler(handler func())            { mv.form.SetAddHandler(handler) }
func (mv *MainView) SetRecalculateHandler(handler func())    { mv.form.SetRecalculateHandler(handler) }
func (mv *MainView) SetLoadSelectedHandler(handler func())   { mv.form.SetLoadHandler(handler) }
func (mv *MainView) SetUpdateHandler(handler func())         { mv.form.SetUpdateHandler(handler) }
func (mv *MainView) SetDeleteHandler(handler func())         { mv.form.SetDeleteHandler(handler) }
func (mv *MainView) SetRowSelectedHandler(handler func(int)) { mv.history.SetSelectHandler(handler) }
func (mv *MainView) SetRowUnselectedHandler(handler func())  { mv.history.SetUnselectHandler(handler) }

// UI update methods - called by controller

// FormInput returns the current text of the entry form
func (mv *MainView) FormInput() models.SetInput {
	return mv.form.Input()
}

// SetFormInput fills the entry form
func (mv *MainView) SetFormInput(in models.SetInput) {
	mv.form.SetInput(in)
}

// ClearForm empties every input except the date
func (mv *MainView) ClearForm() {
	mv.form.Clear()
}

// ShowFieldErrors displays validation messages under the form
func (mv *MainView) ShowFieldErrors(verr *models.ValidationError) {
	mv.form.ShowErrors(verr)
}

func (mv *MainView) ClearFieldErrors() {
	mv.form.ClearErrors()
}

// SetRows redraws the history table
func (mv *MainView) SetRows(rows []models.WorkoutSet) {
	mv.history.SetRows(rows)
}

// SetSummary redraws the summary card
func (mv *MainView) SetSummary(summary models.Summary) {
	mv.summary.Update(summary)
}

func (mv *MainView) ScrollToRow(row int) {
	mv.history.ScrollTo(row)
}

func (mv *MainView) ClearSelection() {
	mv.history.ClearSelection()
}

// SetSelectionActionsEnabled toggles Load/Update/Delete Selected
func (mv *MainView) SetSelectionActionsEnabled(enabled bool) {
	mv.form.SetSelectionActionsEnabled(enabled)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetLogFile shows the log path in the status bar
func (mv *MainView) SetLogFile(path string) {
	mv.statusBar.SetFile(path)
}

// SetBackground paints img behind the content; nil hides it
func (mv *MainView) SetBackground(img image.Image) {
	if img == nil {
		mv.background.Hide()
		return
	}
	mv.background.Image = img
	mv.background.Show()
	mv.background.Refresh()
}

// SetMinSize stops the window from shrinking below size
func (mv *MainView) SetMinSize(size fyne.Size) {
	mv.minSize.SetMinSize(size)
	mv.mainContainer.Refresh()
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowWarning displays a warning; fyne has no dedicated warning dialog.
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	message := widget.NewLabel(err.Error())
	message.Wrapping = fyne.TextWrapWord
	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, message)
	dialog.NewCustom(title, "OK", content, mv.window).Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Form, History and Summary expose the components for tests.
func (mv *MainView) Form() *components.EntryForm       { return mv.form }
func (mv *MainView) History() *components.HistoryTable { return mv.history }
func (mv *MainView) Summary() *components.SummaryPanel { return mv.summary }
func (mv *MainView) Status() *components.StatusBar     { return mv.statusBar }
