package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"floatimage/internal/hotkeys"
)

// fyneKeys maps fyne key names onto the virtual-key space the hotkey
// codec works in. Letters and digits are filled in by init.
var fyneKeys = map[fyne.KeyName]hotkeys.VKey{
	desktop.KeyShiftLeft:    hotkeys.VKLShift,
	desktop.KeyShiftRight:   hotkeys.VKRShift,
	desktop.KeyControlLeft:  hotkeys.VKLControl,
	desktop.KeyControlRight: hotkeys.VKRControl,
	desktop.KeyAltLeft:      hotkeys.VKLMenu,
	desktop.KeyAltRight:     hotkeys.VKRMenu,
	desktop.KeySuperLeft:    hotkeys.VKLWin,
	desktop.KeySuperRight:   hotkeys.VKRWin,
	desktop.KeyMenu:         hotkeys.VKApps,
	desktop.KeyCapsLock:     hotkeys.VKCapital,
	desktop.KeyPrintScreen:  hotkeys.VKSnapshot,

	fyne.KeyEscape:    hotkeys.VKEscape,
	fyne.KeyReturn:    hotkeys.VKReturn,
	fyne.KeyEnter:     hotkeys.VKReturn,
	fyne.KeyTab:       hotkeys.VKTab,
	fyne.KeyBackspace: hotkeys.VKBack,
	fyne.KeyInsert:    hotkeys.VKInsert,
	fyne.KeyDelete:    hotkeys.VKDelete,
	fyne.KeyRight:     hotkeys.VKRight,
	fyne.KeyLeft:      hotkeys.VKLeft,
	fyne.KeyDown:      hotkeys.VKDown,
	fyne.KeyUp:        hotkeys.VKUp,
	fyne.KeyPageUp:    hotkeys.VKPrior,
	fyne.KeyPageDown:  hotkeys.VKNext,
	fyne.KeyHome:      hotkeys.VKHome,
	fyne.KeyEnd:       hotkeys.VKEnd,
	fyne.KeySpace:     hotkeys.VKSpace,

	fyne.KeyF1:  hotkeys.VKF1,
	fyne.KeyF2:  hotkeys.VKF1 + 1,
	fyne.KeyF3:  hotkeys.VKF1 + 2,
	fyne.KeyF4:  hotkeys.VKF1 + 3,
	fyne.KeyF5:  hotkeys.VKF1 + 4,
	fyne.KeyF6:  hotkeys.VKF1 + 5,
	fyne.KeyF7:  hotkeys.VKF1 + 6,
	fyne.KeyF8:  hotkeys.VKF1 + 7,
	fyne.KeyF9:  hotkeys.VKF1 + 8,
	fyne.KeyF10: hotkeys.VKF1 + 9,
	fyne.KeyF11: hotkeys.VKF1 + 10,
	fyne.KeyF12: hotkeys.VKF1 + 11,

	fyne.KeyApostrophe:   hotkeys.VKOEM7,
	fyne.KeyComma:        hotkeys.VKOEMComma,
	fyne.KeyMinus:        hotkeys.VKOEMMinus,
	fyne.KeyPeriod:       hotkeys.VKOEMPeriod,
	fyne.KeySlash:        hotkeys.VKOEM2,
	fyne.KeyBackslash:    hotkeys.VKOEM5,
	fyne.KeyLeftBracket:  hotkeys.VKOEM4,
	fyne.KeyRightBracket: hotkeys.VKOEM6,
	fyne.KeySemicolon:    hotkeys.VKOEM1,
	fyne.KeyEqual:        hotkeys.VKOEMPlus,
	fyne.KeyAsterisk:     hotkeys.VKMultiply,
	fyne.KeyPlus:         hotkeys.VKAdd,
	fyne.KeyBackTick:     hotkeys.VKOEM3,
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		fyneKeys[fyne.KeyName(string(c))] = hotkeys.VKey(c)
	}
	for d := '0'; d <= '9'; d++ {
		fyneKeys[fyne.KeyName(string(d))] = hotkeys.VKey(d)
	}
}

// vkeyFor translates a fyne key name. Keys fyne reports as unknown, or that
// have no virtual-key equivalent, are not mapped.
func vkeyFor(name fyne.KeyName) (hotkeys.VKey, bool) {
	vk, ok := fyneKeys[name]
	return vk, ok
}
