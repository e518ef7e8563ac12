package hotkeys

import (
	"strconv"
	"strings"
)

// Modifier is a hotkey modifier bitmask. Values match the Win32 MOD_* flags
// so a mask can be handed to RegisterHotKey unchanged.
type Modifier uint32

const (
	ModAlt   Modifier = 0x0001
	ModCtrl  Modifier = 0x0002
	ModShift Modifier = 0x0004
	// ModWin is never valid in a Combination; it exists so input naming it
	// can be rejected explicitly.
	ModWin Modifier = 0x0008
)

// canonicalModifiers is the fixed render order.
var canonicalModifiers = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModShift, "Shift"},
	{ModAlt, "Alt"},
}

// Prefix renders the modifiers as "Ctrl+Shift+Alt+" (present ones only).
func (m Modifier) Prefix() string {
	var b strings.Builder
	for _, cm := range canonicalModifiers {
		if m&cm.mod != 0 {
			b.WriteString(cm.name)
			b.WriteByte('+')
		}
	}
	return b.String()
}

// VKey is a virtual-key code in the Win32 virtual-key space. That space is
// used as the canonical key space on every OS.
type VKey uint32

// Modifier keys.
const (
	VKShift    VKey = 0x10
	VKControl  VKey = 0x11
	VKMenu     VKey = 0x12 // Alt
	VKLShift   VKey = 0xA0
	VKRShift   VKey = 0xA1
	VKLControl VKey = 0xA2
	VKRControl VKey = 0xA3
	VKLMenu    VKey = 0xA4
	VKRMenu    VKey = 0xA5
)

// Reserved keys.
const (
	VKCapital  VKey = 0x14 // Caps Lock
	VKSnapshot VKey = 0x2C // Print Screen
	VKLWin     VKey = 0x5B
	VKRWin     VKey = 0x5C
	VKApps     VKey = 0x5D
	VKNumLock  VKey = 0x90
	VKScroll   VKey = 0x91
)

// Keys referenced by name elsewhere.
const (
	VKBack      VKey = 0x08
	VKTab       VKey = 0x09
	VKReturn    VKey = 0x0D
	VKPause     VKey = 0x13
	VKEscape    VKey = 0x1B
	VKSpace     VKey = 0x20
	VKPrior     VKey = 0x21
	VKNext      VKey = 0x22
	VKEnd       VKey = 0x23
	VKHome      VKey = 0x24
	VKLeft      VKey = 0x25
	VKUp        VKey = 0x26
	VKRight     VKey = 0x27
	VKDown      VKey = 0x28
	VKInsert    VKey = 0x2D
	VKDelete    VKey = 0x2E
	VKNumpad0   VKey = 0x60
	VKMultiply  VKey = 0x6A
	VKAdd       VKey = 0x6B
	VKSubtract  VKey = 0x6D
	VKDecimal   VKey = 0x6E
	VKDivide    VKey = 0x6F
	VKF1        VKey = 0x70
	VKOEM1      VKey = 0xBA // ;:
	VKOEMPlus   VKey = 0xBB // =+
	VKOEMComma  VKey = 0xBC
	VKOEMMinus  VKey = 0xBD
	VKOEMPeriod VKey = 0xBE
	VKOEM2      VKey = 0xBF // /?
	VKOEM3      VKey = 0xC0 // `~
	VKOEM4      VKey = 0xDB // [{
	VKOEM5      VKey = 0xDC // \|
	VKOEM6      VKey = 0xDD // ]}
	VKOEM7      VKey = 0xDE // '"
)

var (
	keyNames  = map[VKey]string{}
	keyByName = map[string]VKey{}
)

func init() {
	add := func(vk VKey, name string, aliases ...string) {
		keyNames[vk] = name
		keyByName[strings.ToLower(name)] = vk
		for _, a := range aliases {
			keyByName[strings.ToLower(a)] = vk
		}
	}

	for c := 'A'; c <= 'Z'; c++ {
		add(VKey(c), string(c))
	}
	for d := '0'; d <= '9'; d++ {
		add(VKey(d), string(d), "D"+string(d))
	}
	for i := 0; i < 24; i++ {
		add(VKF1+VKey(i), "F"+strconv.Itoa(i+1))
	}
	for i := 0; i < 10; i++ {
		add(VKNumpad0+VKey(i), "NumPad"+strconv.Itoa(i), "Num"+strconv.Itoa(i))
	}

	add(VKBack, "Backspace", "Back")
	add(VKTab, "Tab")
	add(VKReturn, "Enter", "Return")
	add(VKPause, "Pause")
	add(VKEscape, "Esc", "Escape")
	add(VKSpace, "Space")
	add(VKPrior, "PageUp", "Prior")
	add(VKNext, "PageDown", "Next")
	add(VKEnd, "End")
	add(VKHome, "Home")
	add(VKLeft, "Left")
	add(VKUp, "Up")
	add(VKRight, "Right")
	add(VKDown, "Down")
	add(VKInsert, "Insert", "Ins")
	add(VKDelete, "Delete", "Del")
	add(VKMultiply, "Multiply")
	add(VKAdd, "Add")
	add(VKSubtract, "Subtract")
	add(VKDecimal, "Decimal")
	add(VKDivide, "Divide")
	add(VKOEM1, "Semicolon", "OemSemicolon", "Oem1")
	add(VKOEMPlus, "Equals", "OemPlus", "Plus")
	add(VKOEMComma, "Comma", "OemComma")
	add(VKOEMMinus, "Minus", "OemMinus")
	add(VKOEMPeriod, "Period", "OemPeriod")
	add(VKOEM2, "Slash", "OemQuestion", "Oem2")
	add(VKOEM3, "Backquote", "OemTilde", "Oem3", "Grave", "`")
	add(VKOEM4, "OpenBracket", "OemOpenBrackets", "Oem4")
	add(VKOEM5, "Backslash", "OemPipe", "Oem5")
	add(VKOEM6, "CloseBracket", "OemCloseBrackets", "Oem6")
	add(VKOEM7, "Quote", "OemQuotes", "Oem7")

	add(0xA6, "BrowserBack")
	add(0xA7, "BrowserForward")
	add(0xA8, "BrowserRefresh")
	add(0xAD, "VolumeMute")
	add(0xAE, "VolumeDown")
	add(0xAF, "VolumeUp")
	add(0xB0, "MediaNextTrack")
	add(0xB1, "MediaPreviousTrack")
	add(0xB2, "MediaStop")
	add(0xB3, "MediaPlayPause")

	// Reserved keys have names so they can be recognized and refused.
	add(VKCapital, "CapsLock", "Capital")
	add(VKSnapshot, "PrintScreen", "Snapshot")
	add(VKLWin, "LWin")
	add(VKRWin, "RWin")
	add(VKApps, "Apps", "ContextMenu")
	add(VKNumLock, "NumLock")
	add(VKScroll, "Scroll", "ScrollLock")
}

// KeyName returns the display name of vk, or "" if vk is not in the table.
func KeyName(vk VKey) string {
	return keyNames[vk]
}

// LookupKey resolves a key name or alias, case-insensitively.
func LookupKey(name string) (VKey, bool) {
	vk, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]
	return vk, ok
}

// Keys returns every named key that may be bound as a primary key.
func Keys() []VKey {
	keys := make([]VKey, 0, len(keyNames))
	for vk := range keyNames {
		if !IsReserved(vk) {
			keys = append(keys, vk)
		}
	}
	return keys
}

// IsReserved reports whether vk is an OS-level key that must never be bound.
func IsReserved(vk VKey) bool {
	switch vk {
	case VKLWin, VKRWin, VKApps, VKCapital, VKNumLock, VKScroll, VKSnapshot:
		return true
	}
	return false
}

// ModifierOf returns the modifier bit a modifier key contributes, or 0 when
// vk is not a modifier key.
func ModifierOf(vk VKey) Modifier {
	switch vk {
	case VKControl, VKLControl, VKRControl:
		return ModCtrl
	case VKShift, VKLShift, VKRShift:
		return ModShift
	case VKMenu, VKLMenu, VKRMenu:
		return ModAlt
	}
	return 0
}
