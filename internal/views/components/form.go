package components

import (
	"strings"
	"time"

	"volume-tracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// EntryForm is the "Log New Workout Set" card: five inputs plus the action buttons
type EntryForm struct {
	container *fyne.Container

	DateEntry     *widget.Entry
	ExerciseEntry *widget.Entry
	SetsEntry     *widget.Entry
	RepsEntry     *widget.Entry
	WeightEntry   *widget.Entry

	AddButton         *widget.Button
	RecalculateButton *widget.Button
	LoadButton        *widget.Button
	UpdateButton      *widget.Button
	DeleteButton      *widget.Button

	errorText *canvas.Text

	// Event handlers
	addHandler         func()
	recalculateHandler func()
	loadHandler        func()
	updateHandler      func()
	deleteHandler      func()

	now func() time.Time
}

// NewEntryForm creates the form with today's date prefilled
func NewEntryForm() *EntryForm {
	form := &EntryForm{now: time.Now}
	form.createComponents()
	form.buildLayout()
	form.setupEventHandlers()
	return form
}

// createComponents initializes inputs and buttons
func (f *EntryForm) createComponents() {
	f.DateEntry = widget.NewEntry()
	f.DateEntry.SetPlaceHolder(models.DateLayout)
	f.DateEntry.SetText(f.now().Format(models.DateLayout))

	f.ExerciseEntry = widget.NewEntry()
	f.ExerciseEntry.SetPlaceHolder("Back Squat")
	f.SetsEntry = widget.NewEntry()
	f.SetsEntry.SetPlaceHolder("3")
	f.RepsEntry = widget.NewEntry()
	f.RepsEntry.SetPlaceHolder("10")
	f.WeightEntry = widget.NewEntry()
	f.WeightEntry.SetPlaceHolder("20")

	f.AddButton = widget.NewButton("Add Set", nil)
	f.AddButton.Importance = widget.HighImportance
	f.RecalculateButton = widget.NewButton("Recalculate Summary", nil)
	f.RecalculateButton.Importance = widget.HighImportance
	f.LoadButton = widget.NewButton("Load Selected", nil)
	f.LoadButton.Importance = widget.HighImportance
	f.UpdateButton = widget.NewButton("Update Selected", nil)
	f.UpdateButton.Importance = widget.HighImportance
	f.DeleteButton = widget.NewButton("Delete Selected", nil)
	f.DeleteButton.Importance = widget.DangerImportance

	f.SetSelectionActionsEnabled(false)

	f.errorText = canvas.NewText("", theme.Color(theme.ColorNameError))
	f.errorText.TextSize = theme.CaptionTextSize()
	f.errorText.Hide()
}

// buildLayout lays the inputs out in one labelled row with buttons underneath
func (f *EntryForm) buildLayout() {
	labelled := func(label string, entry *widget.Entry) fyne.CanvasObject {
		return container.NewVBox(widget.NewLabel(label), entry)
	}

	inputs := container.NewGridWithColumns(5,
		labelled("Date:", f.DateEntry),
		labelled("Exercise:", f.ExerciseEntry),
		labelled("Sets:", f.SetsEntry),
		labelled("Reps:", f.RepsEntry),
		labelled("Weight (kg):", f.WeightEntry),
	)

	// Two button rows so the card fits narrow windows
	topButtons := container.NewGridWithColumns(4,
		f.AddButton, f.RecalculateButton, f.LoadButton, f.UpdateButton,
	)
	bottomButtons := container.NewGridWithColumns(1, f.DeleteButton)

	f.container = container.NewVBox(
		inputs,
		f.errorText,
		layout.NewSpacer(),
		topButtons,
		bottomButtons,
	)
}

// setupEventHandlers connects button events
func (f *EntryForm) setupEventHandlers() {
	f.AddButton.OnTapped = func() {
		if f.addHandler != nil {
			f.addHandler()
		}
	}
	f.RecalculateButton.OnTapped = func() {
		if f.recalculateHandler != nil {
			f.recalculateHandler()
		}
	}
	f.LoadButton.OnTapped = func() {
		if f.loadHandler != nil {
			f.loadHandler()
		}
	}
	f.UpdateButton.OnTapped = func() {
		if f.updateHandler != nil {
			f.updateHandler()
		}
	}
	f.DeleteButton.OnTapped = func() {
		if f.deleteHandler != nil {
			f.deleteHandler()
		}
	}
	f.WeightEntry.OnSubmitted = func(string) {
		if f.addHandler != nil {
			f.addHandler()
		}
	}
}

func (f *EntryForm) SetAddHandler(handler func())         { f.addHandler = handler }
func (f *EntryForm) SetRecalculateHandler(handler func()) { f.recalculateHandler = handler }
func (f *EntryForm) SetLoadHandler(handler func())        { f.loadHandler = handler }
func (f *EntryForm) SetUpdateHandler(handler func())      { f.updateHandler = handler }
func (f *EntryForm) SetDeleteHandler(handler func())      { f.deleteHandler = handler }

// Input returns the raw text of every field
func (f *EntryForm) Input() models.SetInput {
	return models.SetInput{
		Date:     f.DateEntry.Text,
		Exercise: f.ExerciseEntry.Text,
		Sets:     f.SetsEntry.Text,
		Reps:     f.RepsEntry.Text,
		Weight:   f.WeightEntry.Text,
	}
}

// SetInput fills every field
func (f *EntryForm) SetInput(in models.SetInput) {
	f.DateEntry.SetText(in.Date)
	f.ExerciseEntry.SetText(in.Exercise)
	f.SetsEntry.SetText(in.Sets)
	f.RepsEntry.SetText(in.Reps)
	f.WeightEntry.SetText(in.Weight)
}

// Clear empties every field except the date
func (f *EntryForm) Clear() {
	f.ExerciseEntry.SetText("")
	f.SetsEntry.SetText("")
	f.RepsEntry.SetText("")
	f.WeightEntry.SetText("")
}

// SetSelectionActionsEnabled toggles Load/Update/Delete
func (f *EntryForm) SetSelectionActionsEnabled(enabled bool) {
	for _, b := range []*widget.Button{f.LoadButton, f.UpdateButton, f.DeleteButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

// ShowErrors displays the field messages inline under the inputs
func (f *EntryForm) ShowErrors(verr *models.ValidationError) {
	if verr == nil || len(verr.Fields) == 0 {
		f.ClearErrors()
		return
	}
	msgs := make([]string, len(verr.Fields))
	for i, fe := range verr.Fields {
		msgs[i] = fe.Error()
	}
	f.errorText.Text = strings.Join(msgs, "  |  ")
	f.errorText.Show()
	f.errorText.Refresh()
}

func (f *EntryForm) ClearErrors() {
	f.errorText.Text = ""
	f.errorText.Hide()
	f.errorText.Refresh()
}

// ErrorText returns the inline message currently shown.
func (f *EntryForm) ErrorText() string {
	return f.errorText.Text
}

// GetContainer returns the form container
func (f *EntryForm) GetContainer() *fyne.Container {
	return f.container
}
