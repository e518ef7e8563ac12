package platform

import (
	"errors"

	"floatimage/internal/platform/native"
)

// ErrUnsupportedKey is returned when a key has no native code on this OS.
var ErrUnsupportedKey = errors.New("key has no native mapping on this platform")

// WindowHandle represents a platform-specific window handle
type WindowHandle = native.WindowHandle

const (
	StyleClickThrough = native.StyleClickThrough
	StyleLayered      = native.StyleLayered
)

// PlatformFeatures defines the interface for platform-specific features.
// Each platform (Windows, Linux, macOS) must implement this interface.
type PlatformFeatures interface {
	// Global hotkeys. Fired ids are delivered on HotkeyEvents.
	RegisterHotkey(window WindowHandle, id int, modifiers uint, keyCode uint) error
	UnregisterHotkey(window WindowHandle, id int) error
	HotkeyEvents() <-chan int

	// Extended style word (GWL_EXSTYLE on Windows)
	GetExtendedStyle(window WindowHandle) (uint32, error)
	SetExtendedStyle(window WindowHandle, bits uint32) (uint32, error)

	// Window management
	SetAlwaysOnTop(window WindowHandle, onTop bool) error
	SetTransparency(window WindowHandle, opacity float64) error
	MoveWindowTo(window WindowHandle, x, y int) error
	MoveAndResizeWindow(window WindowHandle, x, y, width, height int) error
	GetWindowRect(window WindowHandle) (x, y, width, height int, err error)
	MinimizeWindow(window WindowHandle) error
	MaximizeWindow(window WindowHandle) error
	RestoreWindow(window WindowHandle) error

	// Screen info
	GetWorkArea() (x, y, width, height int)
}

// Hotkey modifiers
const (
	ModAlt   uint = 0x0001
	ModCtrl  uint = 0x0002
	ModShift uint = 0x0004
	ModWin   uint = 0x0008
)

// eventBuffer bounds the fired-hotkey queue. A burst beyond it is dropped;
// the user simply pressed faster than the UI toggles.
const eventBuffer = 8

func newEventChannel() chan int {
	return make(chan int, eventBuffer)
}

// deliver queues a fired id without blocking the OS callback.
func deliver(ch chan int, id int) {
	select {
	case ch <- id:
	default:
	}
}
