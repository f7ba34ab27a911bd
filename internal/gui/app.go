// Main application wiring
package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/sirupsen/logrus"

	"workout-story/internal/config"
	"workout-story/internal/core"
	"workout-story/internal/gesture"
	appio "workout-story/internal/io"
	"workout-story/internal/render"
)

// Application represents the main application.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger
	cfg    *config.Config

	// Core components
	session    *core.Session
	controller *gesture.Controller
	pipeline   *render.Pipeline
	loader     *appio.ImageLoader
	exporter   *appio.Exporter

	// GUI components
	editor      *EditorCanvas
	statsPanel  *StatsPanel
	menuHandler *MenuHandler

	mainContent *container.Split
}

// NewApplication wires the core and GUI components together.
func NewApplication(app fyne.App, cfg *config.Config, logger *logrus.Logger) *Application {
	window := app.NewWindow("Workout Story Composer")
	window.Resize(fyne.NewSize(1100, 800))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
		cfg:    cfg,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	a.editor.SetStats(core.ParseStats(a.statsPanel.Form(), time.Now()))

	return a
}

func (a *Application) initializeCore() {
	a.session = core.NewSession()

	mapper := gesture.Mapper{OutputWidth: render.CanvasWidth}
	a.controller = gesture.NewController(a.session, mapper, a.cfg.ScaleLimits(), a.logger)
	a.controller.SetWheelStep(a.cfg.ZoomStep)

	a.pipeline = render.NewPipeline(a.logger)
	a.loader = appio.NewImageLoader(a.logger)
	a.exporter = appio.NewExporter(a.logger, a.cfg.Export.Quality)
}

func (a *Application) initializeGUI() {
	a.editor = NewEditorCanvas(a.session, a.controller, a.pipeline, a.logger)
	a.statsPanel = NewStatsPanel()
	a.menuHandler = NewMenuHandler(a.window, a.loader, a.exporter, a.cfg.Export.Format, a.logger)
}

func (a *Application) setupLayout() {
	a.mainContent = container.NewHSplit(a.statsPanel.Container(), a.editor)
	a.mainContent.SetOffset(0.3)

	a.window.SetMainMenu(a.menuHandler.MainMenu(a.editor.Compose))
	a.window.SetContent(a.mainContent)
}

func (a *Application) setupCallbacks() {
	a.statsPanel.OnChange(func(form core.StatsForm) {
		stats := core.ParseStats(form, a.editor.Stats().Date)
		a.editor.SetStats(stats)
	})

	a.menuHandler.OnPhotoLoaded(func(photo *core.SourceImage) {
		// Photo and transform swap together; the controller's gesture
		// session is cleared alongside.
		a.session.SetPhoto(photo)
		a.controller.Reset()

		stats := core.ParseStats(a.statsPanel.Form(), time.Now())
		a.editor.SetStats(stats)

		a.logger.WithFields(logrus.Fields{
			"filepath": photo.Filepath(),
			"width":    photo.Width(),
			"height":   photo.Height(),
		}).Info("Editing session started")
	})
}

// ShowAndRun shows the main window and runs the event loop.
func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")
	a.window.ShowAndRun()
}
