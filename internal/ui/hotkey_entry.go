package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"floatimage/internal/hotkeys"
	"floatimage/internal/platform"
)

// HotkeyEntry is a text field that records a key combination instead of
// accepting typed text. Every key event is swallowed while it has focus.
type HotkeyEntry struct {
	widget.Entry
	capture *hotkeys.Capture
}

// NewHotkeyEntry creates an entry showing initial.
func NewHotkeyEntry(initial string) *HotkeyEntry {
	e := &HotkeyEntry{capture: hotkeys.NewCapture()}
	e.capture.SetBindable(func(vk hotkeys.VKey) bool {
		return platform.SupportsKey(uint(vk))
	})
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Press a key combination")
	e.SetHotkey(initial)
	return e
}

// SetHotkey replaces the displayed combination and restarts the capture.
func (e *HotkeyEntry) SetHotkey(text string) {
	e.capture.Reset(text)
	e.SetText(text)
}

// FocusGained starts a new capture session seeded with the current text.
func (e *HotkeyEntry) FocusGained() {
	e.capture.Reset(e.Text)
	e.Entry.FocusGained()
}

// KeyDown feeds a press to the recorder.
func (e *HotkeyEntry) KeyDown(ev *fyne.KeyEvent) {
	if vk, ok := vkeyFor(ev.Name); ok {
		e.capture.KeyDown(vk)
		e.sync()
	}
}

// KeyUp feeds a release to the recorder.
func (e *HotkeyEntry) KeyUp(ev *fyne.KeyEvent) {
	vk, _ := vkeyFor(ev.Name)
	e.capture.KeyUp(vk)
	e.sync()
}

// AcceptsTab keeps Tab and Shift+Tab in the field, so focus cannot move
// away in the middle of a capture.
func (e *HotkeyEntry) AcceptsTab() bool { return true }

// TypedRune is ignored; the text only changes through the recorder.
func (e *HotkeyEntry) TypedRune(rune) {}

// TypedKey is ignored so Tab, Enter and arrows cannot edit or move focus.
func (e *HotkeyEntry) TypedKey(*fyne.KeyEvent) {}

// TypedShortcut is ignored so paste and cut cannot edit the text.
func (e *HotkeyEntry) TypedShortcut(fyne.Shortcut) {}

func (e *HotkeyEntry) sync() {
	if text := e.capture.Text(); text != e.Text {
		e.SetText(text)
	}
}
