package app

import (
	"context"
	"errors"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"

	"floatimage/internal/assets"
	"floatimage/internal/config"
	"floatimage/internal/mode"
	"floatimage/internal/platform"
	"floatimage/internal/ui"
)

// errNotReady is returned when the hotkey is changed before the overlay's
// native window exists.
var errNotReady = errors.New("overlay window is not ready yet")

// App is the main application
type App struct {
	fyneApp  fyne.App
	config   *config.Config
	features platform.PlatformFeatures
	session  *Session

	// UI components
	tray     *ui.TrayManager
	overlay  *ui.OverlayWindow
	settings *ui.SettingsDialog
	picker   *ui.ImagePicker

	// State
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
}

// Run starts the application
func Run() error {
	a := &App{features: platform.Features}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	// Initialize Fyne app
	a.fyneApp = app.NewWithID("com.floatimage.app")
	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.fyneApp.SetIcon(assets.AppIcon())

	// Load config
	a.config = config.Get()

	// Initialize UI
	if err := a.initUI(); err != nil {
		return err
	}

	go a.watchConfig()

	a.running = true

	// Run the app (blocking)
	a.fyneApp.Run()

	// Cleanup
	a.shutdown()

	return nil
}

// initUI initializes all UI components
func (a *App) initUI() error {
	a.overlay = ui.NewOverlayWindow(a.fyneApp, a.features, a.config)
	a.overlay.SetCallbacks(ui.OverlayActions{
		ToggleLock:        a.ToggleLock,
		OpenImage:         a.OpenImage,
		OpenSettings:      a.OpenSettings,
		Minimize:          a.Minimize,
		MaximizeOrRestore: a.MaximizeOrRestore,
		Close:             a.Close,
	})
	if err := a.overlay.Setup(); err != nil {
		return err
	}
	a.overlay.SetOnClosed(a.quit)

	if a.config.TrayEnabled {
		a.tray = ui.NewTrayManager(a.fyneApp)
		a.tray.SetCallbacks(a.ToggleLock, a.OpenImage, a.OpenSettings, a.quit)
		if err := a.tray.Setup(); err != nil {
			log.Printf("Warning: System tray setup failed: %v", err)
			a.tray = nil
		}
	}

	a.settings = ui.NewSettingsDialog(a.fyneApp, a.config)
	a.settings.SetCallbacks(a.confirmHotkey, a.overlay.ApplyConfig)

	a.picker = ui.NewImagePicker(a.fyneApp)

	a.overlay.Show(a.onWindowReady)
	return nil
}

// onWindowReady runs on the UI thread once the overlay's native handle is
// known. The hotkey must be registered from this thread on Windows.
func (a *App) onWindowReady(handle platform.WindowHandle) {
	a.session = NewSession(a.features, &modeChrome{OverlayWindow: a.overlay, tray: a.tray}, handle)
	if err := a.session.Start(); err != nil {
		dialog.ShowError(err, a.overlay.GetWindow())
	}
	go a.session.Run(a.ctx, fyne.Do)
}

// modeChrome keeps the tray's Lock/Unlock label in step with the overlay,
// whichever way the mode was switched.
type modeChrome struct {
	*ui.OverlayWindow
	tray *ui.TrayManager
}

func (c *modeChrome) SetControlsVisible(visible bool) {
	c.OverlayWindow.SetControlsVisible(visible)
	if c.tray != nil {
		c.tray.SetLocked(!visible)
	}
}

var _ mode.Chrome = (*modeChrome)(nil)

// editable reports whether edit-only commands may run. Before the session
// exists the overlay is still in its initial Edit mode.
func (a *App) editable() bool {
	return a.session == nil || a.session.IsEditMode()
}

// ToggleLock switches between Edit and Locked. It is the only command that
// works while locked.
func (a *App) ToggleLock() {
	if a.session == nil {
		return
	}
	if !a.overlay.HasImage() {
		log.Println("Lock ignored: no image loaded")
		return
	}
	// Failures are logged by the controller.
	_ = a.session.Toggle()
}

// OpenImage lets the user pick the image to display.
func (a *App) OpenImage() {
	if !a.editable() {
		return
	}
	a.picker.Pick(a.overlay.SetLoadedImage)
}

// OpenSettings shows the settings window.
func (a *App) OpenSettings() {
	if !a.editable() {
		return
	}
	a.settings.Show(a.hotkeyText())
}

// Minimize minimizes the overlay.
func (a *App) Minimize() {
	if !a.editable() {
		return
	}
	a.overlay.Minimize()
}

// MaximizeOrRestore toggles the maximized window state.
func (a *App) MaximizeOrRestore() {
	if !a.editable() {
		return
	}
	a.overlay.MaximizeOrRestore()
}

// Close quits the application.
func (a *App) Close() {
	if !a.editable() {
		return
	}
	a.quit()
}

func (a *App) hotkeyText() string {
	if a.session == nil {
		return ""
	}
	return a.session.HotkeyText()
}

// confirmHotkey is the settings confirmation boundary.
func (a *App) confirmHotkey(text string) (string, error) {
	if a.session == nil {
		return "", errNotReady
	}
	return a.session.ConfirmHotkey(text)
}

// watchConfig applies external edits of the config file.
func (a *App) watchConfig() {
	err := config.Watch(a.ctx, func(fresh *config.Config) {
		fyne.Do(func() {
			a.config.Apply(fresh)
			a.overlay.ApplyConfig()
			log.Println("Config reloaded")
		})
	})
	if err != nil {
		log.Printf("Config watcher stopped: %v", err)
	}
}

// quit shuts down the application
func (a *App) quit() {
	a.shutdown()
	a.fyneApp.Quit()
}

// shutdown cleans up resources. It runs on the UI thread, which is where
// the hotkey was registered.
func (a *App) shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false

	log.Println("Shutting down...")

	a.cancel()
	if a.session != nil {
		a.session.Close()
	}

	log.Println("Shutdown complete")
}
