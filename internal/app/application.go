package app

import (
	"errors"
	"fmt"

	"periodic-tutor/internal/config"
	"periodic-tutor/internal/elements"
	"periodic-tutor/internal/gui"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName     = "Periodic Tutor"
	AppID       = "org.periodic.tutor"
	AppVersion  = "1.0.0"
	WindowTitle = "Intelligent Tutoring System for Chemistry (Periodic Table)"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	table      *elements.Table
	loadErr    error
	logger     logger.Logger
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
}

// NewApplication loads the element table and builds the main window. A data
// file that cannot be loaded is not fatal: the grid is shown with an empty
// table and the failure is logged and reported in the status bar.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"data":          cfg.Data.Path,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
	})

	table, loadErr := LoadTable(cfg, log)

	window := fyneApp.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	guiManager := gui.NewManager(table, log)
	if loadErr != nil {
		guiManager.StatusBar().SetStatus("Element data unavailable: " + loadErr.Error())
	}

	lifecycle := NewLifecycle(guiManager, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		table:      table,
		loadErr:    loadErr,
		logger:     log,
		lifecycle:  lifecycle,
		shutdown:   shutdown.NewManager(log),
	}

	application.shutdown.Register(shutdown.Func(application.quit))
	application.shutdown.Register(lifecycle)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"elements": table.Len(),
	})
	return application, nil
}

// LoadTable reads the configured data file. On failure it returns an empty
// table together with the error so the caller can still show the grid.
func LoadTable(cfg *config.Config, log logger.Logger) (*elements.Table, error) {
	table, err := elements.LoadWithOptions(cfg.Data.Path, elements.Options{
		Namespace: cfg.Data.Namespace,
		Logger:    log,
	})
	if err == nil {
		return table, nil
	}

	var loadErr *elements.LoadError
	if errors.As(err, &loadErr) {
		log.Error("Application", err, map[string]interface{}{
			"op":   "element load",
			"path": loadErr.Path,
		})
	} else {
		log.Error("Application", err, map[string]interface{}{
			"op": "element load",
		})
	}
	return elements.Empty(), err
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	a.shutdown.Release()
	return nil
}

func (a *Application) quit() {
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) Manager() *gui.Manager {
	return a.guiManager
}

func (a *Application) Table() *elements.Table {
	return a.table
}

// LoadErr is the error from loading the data file, if any.
func (a *Application) LoadErr() error {
	return a.loadErr
}
