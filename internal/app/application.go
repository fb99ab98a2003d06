package app

import (
	"runtime"

	"volume-tracker/internal/background"
	"volume-tracker/internal/config"
	"volume-tracker/internal/controllers"
	"volume-tracker/internal/logger"
	"volume-tracker/internal/models"
	"volume-tracker/internal/services"
	"volume-tracker/internal/shutdown"
	"volume-tracker/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName = "Personal Fitness & Volume Tracker"
	AppID   = "com.volumetracker.app"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	config  *config.Config
	logger  logger.Logger

	// MVC components
	workoutLog *models.WorkoutLog
	service    *services.WorkoutService
	view       *views.MainView
	controller *controllers.MainController

	backgrounds *background.Loader
	shutdown    *shutdown.Manager
}

// NewApplication creates the fyne app and wires the tracker into it
func NewApplication(cfg *config.Config, lg logger.Logger) *Application {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: Version,
	})
	return New(fyneapp.NewWithID(AppID), cfg, lg)
}

// New wires the tracker into an existing fyne app
func New(fyneApp fyne.App, cfg *config.Config, lg logger.Logger) *Application {
	fyneApp.Settings().SetTheme(views.NewTheme())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	lg.Info("Application", "starting application", map[string]interface{}{
		"version":    Version,
		"log_path":   cfg.Log.Path,
		"background": cfg.Background,
		"go_version": runtime.Version(),
	})

	workoutLog := models.NewWorkoutLog()
	service := services.NewWorkoutService(cfg.Log.Path, workoutLog, lg)

	view := views.NewMainView(window)
	view.SetMinSize(fyne.NewSize(cfg.Window.MinWidth, cfg.Window.MinHeight))

	controller := controllers.NewMainController(service, lg)
	controller.SetMainView(view)

	manager := shutdown.NewManager(lg)
	manager.Register(service)
	manager.Register(controller)

	a := &Application{
		fyneApp:     fyneApp,
		window:      window,
		config:      cfg,
		logger:      lg,
		workoutLog:  workoutLog,
		service:     service,
		view:        view,
		controller:  controller,
		backgrounds: background.NewLoader(lg),
		shutdown:    manager,
	}

	a.setupWindowEvents()
	return a
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.controller.RequestClose(a.shutdown.Context(), a.window.Close)
	})
}

// Start loads the log and the background image into the window
func (a *Application) Start() {
	a.controller.LoadLog(a.shutdown.Context())
	a.loadBackground()
}

func (a *Application) loadBackground() {
	img, err := a.backgrounds.Load(a.config.Background, int(a.config.Window.Width), int(a.config.Window.Height))
	if err != nil {
		a.logger.Warning("Application", "background unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if !img.Drawable() {
		a.logger.Debug("Application", "background too small to draw", map[string]interface{}{
			"source":   img.Source,
			"fallback": img.Fallback,
		})
		return
	}
	a.view.SetBackground(img.Image)
}

// Run shows the window and blocks until the app quits. A termination signal
// saves the log and quits the app.
func (a *Application) Run() error {
	a.Start()

	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) Service() *services.WorkoutService {
	return a.service
}
