package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatimage/internal/hotkeys"
)

func newFocusedEntry(t *testing.T, initial string) *HotkeyEntry {
	t.Helper()
	test.NewTempApp(t)
	e := NewHotkeyEntry(initial)
	w := test.NewTempWindow(t, e)
	w.Canvas().Focus(e)
	return e
}

func press(e *HotkeyEntry, names ...fyne.KeyName) {
	for _, n := range names {
		e.KeyDown(&fyne.KeyEvent{Name: n})
	}
}

func release(e *HotkeyEntry, names ...fyne.KeyName) {
	for _, n := range names {
		e.KeyUp(&fyne.KeyEvent{Name: n})
	}
}

func TestHotkeyEntryCapturesCombination(t *testing.T) {
	e := newFocusedEntry(t, "Shift+Alt+Z")
	assert.Equal(t, "Shift+Alt+Z", e.Text)

	press(e, desktop.KeyShiftLeft)
	assert.Equal(t, "Shift+", e.Text)

	press(e, fyne.KeyZ)
	assert.Equal(t, "Shift+Z", e.Text)

	release(e, fyne.KeyZ, desktop.KeyShiftLeft)
	assert.Equal(t, "Shift+Z", e.Text)
}

func TestHotkeyEntryCancelsIncomplete(t *testing.T) {
	e := newFocusedEntry(t, "")

	press(e, desktop.KeyControlLeft, desktop.KeyAltRight)
	assert.Equal(t, "Ctrl+Alt+", e.Text)

	release(e, desktop.KeyControlLeft, desktop.KeyAltRight)
	assert.Equal(t, "", e.Text)
}

func TestHotkeyEntryRejectsReservedKeys(t *testing.T) {
	e := newFocusedEntry(t, "")

	press(e, desktop.KeyControlLeft, desktop.KeyCapsLock)
	assert.Equal(t, "Ctrl+", e.Text)

	press(e, desktop.KeySuperLeft)
	assert.Equal(t, "Ctrl+", e.Text)
}

func TestHotkeyEntryIgnoresTyping(t *testing.T) {
	e := newFocusedEntry(t, "Ctrl+K")

	e.TypedRune('x')
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.Equal(t, "Ctrl+K", e.Text)

	// A primary key without a modifier is swallowed.
	press(e, fyne.KeyQ)
	assert.Equal(t, "Ctrl+K", e.Text)
}

func TestHotkeyEntrySetHotkey(t *testing.T) {
	e := newFocusedEntry(t, "Ctrl+K")
	press(e, desktop.KeyShiftLeft)

	e.SetHotkey("Shift+Alt+Z")
	assert.Equal(t, "Shift+Alt+Z", e.Text)

	// The held Shift was forgotten with the reset.
	press(e, fyne.KeyF5)
	assert.Equal(t, "Shift+Alt+Z", e.Text)
}

func TestVKeyForPunctuation(t *testing.T) {
	name := func(key fyne.KeyName) string {
		vk, ok := vkeyFor(key)
		if !ok {
			return ""
		}
		return hotkeys.KeyName(vk)
	}
	assert.Equal(t, "Period", name(fyne.KeyPeriod))
	assert.Equal(t, "Backquote", name(fyne.KeyBackTick))
	assert.Equal(t, "F12", name(fyne.KeyF12))
	assert.Equal(t, "7", name(fyne.Key7))
	assert.Equal(t, "", name(fyne.KeyUnknown))
}

func TestHotkeyEntryKeepsTab(t *testing.T) {
	e := newFocusedEntry(t, "")

	var obj fyne.CanvasObject = e
	tabbable, ok := obj.(fyne.Tabbable)
	require.True(t, ok)
	assert.True(t, tabbable.AcceptsTab())

	press(e, desktop.KeyControlLeft, fyne.KeyTab)
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyTab})
	assert.Equal(t, "Ctrl+Tab", e.Text)
}
