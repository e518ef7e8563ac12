package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"floatimage/internal/assets"
)

// TrayManager handles the system tray icon and menu. Its Lock/Unlock item
// is the way back out of click-through mode without the hotkey.
type TrayManager struct {
	app        fyne.App
	menu       *fyne.Menu
	lockItem   *fyne.MenuItem
	onLock     func()
	onOpen     func()
	onSettings func()
	onQuit     func()
}

// NewTrayManager creates a new tray manager
func NewTrayManager(app fyne.App) *TrayManager {
	return &TrayManager{app: app}
}

// SetCallbacks sets the callback functions for tray actions
func (t *TrayManager) SetCallbacks(onLock, onOpen, onSettings, onQuit func()) {
	t.onLock = onLock
	t.onOpen = onOpen
	t.onSettings = onSettings
	t.onQuit = onQuit
}

// Setup initializes the system tray
func (t *TrayManager) Setup() error {
	desk, ok := t.app.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray not supported on this platform")
	}

	t.lockItem = fyne.NewMenuItem("Lock", func() {
		if t.onLock != nil {
			t.onLock()
		}
	})

	openItem := fyne.NewMenuItem("Open Image...", func() {
		if t.onOpen != nil {
			t.onOpen()
		}
	})

	settingsItem := fyne.NewMenuItem("Settings...", func() {
		if t.onSettings != nil {
			t.onSettings()
		}
	})

	// Replaces fyne's default tray Quit so shutdown goes through the app.
	quitItem := fyne.NewMenuItem("Quit", func() {
		if t.onQuit != nil {
			t.onQuit()
		}
	})
	quitItem.IsQuit = true

	t.menu = fyne.NewMenu("FloatImage",
		t.lockItem,
		fyne.NewMenuItemSeparator(),
		openItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(assets.TrayIcon())
	log.Println("System tray initialized")
	return nil
}

// SetLocked updates the Lock/Unlock item to match the overlay mode.
func (t *TrayManager) SetLocked(locked bool) {
	if t.lockItem == nil {
		return
	}
	if locked {
		t.lockItem.Label = "Unlock"
	} else {
		t.lockItem.Label = "Lock"
	}
	t.menu.Refresh()
}
