//go:build darwin

package platform

import (
	"golang.design/x/hotkey"

	"floatimage/internal/hotkeys"
)

// modifierMap maps Win32 modifier bits to macOS modifiers.
var modifierMap = map[uint]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModOption,
}

// macKeys maps virtual-key codes to Carbon kVK codes. Pause, F21-F24 and
// the media keys have no kVK code and cannot be bound.
var macKeys = map[uint]hotkey.Key{
	'A': hotkey.KeyA, 'B': hotkey.KeyB, 'C': hotkey.KeyC, 'D': hotkey.KeyD, 'E': hotkey.KeyE,
	'F': hotkey.KeyF, 'G': hotkey.KeyG, 'H': hotkey.KeyH, 'I': hotkey.KeyI, 'J': hotkey.KeyJ,
	'K': hotkey.KeyK, 'L': hotkey.KeyL, 'M': hotkey.KeyM, 'N': hotkey.KeyN, 'O': hotkey.KeyO,
	'P': hotkey.KeyP, 'Q': hotkey.KeyQ, 'R': hotkey.KeyR, 'S': hotkey.KeyS, 'T': hotkey.KeyT,
	'U': hotkey.KeyU, 'V': hotkey.KeyV, 'W': hotkey.KeyW, 'X': hotkey.KeyX, 'Y': hotkey.KeyY,
	'Z': hotkey.KeyZ,

	'0': hotkey.Key0, '1': hotkey.Key1, '2': hotkey.Key2, '3': hotkey.Key3, '4': hotkey.Key4,
	'5': hotkey.Key5, '6': hotkey.Key6, '7': hotkey.Key7, '8': hotkey.Key8, '9': hotkey.Key9,

	0x70: hotkey.KeyF1, 0x71: hotkey.KeyF2, 0x72: hotkey.KeyF3, 0x73: hotkey.KeyF4,
	0x74: hotkey.KeyF5, 0x75: hotkey.KeyF6, 0x76: hotkey.KeyF7, 0x77: hotkey.KeyF8,
	0x78: hotkey.KeyF9, 0x79: hotkey.KeyF10, 0x7A: hotkey.KeyF11, 0x7B: hotkey.KeyF12,
	0x7C: hotkey.KeyF13, 0x7D: hotkey.KeyF14, 0x7E: hotkey.KeyF15, 0x7F: hotkey.KeyF16,
	0x80: hotkey.KeyF17, 0x81: hotkey.KeyF18, 0x82: hotkey.KeyF19, 0x83: hotkey.KeyF20,

	uint(hotkeys.VKBack):   hotkey.KeyDelete, // kVK_Delete is backspace
	uint(hotkeys.VKTab):    hotkey.KeyTab,
	uint(hotkeys.VKReturn): hotkey.KeyReturn,
	uint(hotkeys.VKEscape): hotkey.KeyEscape,
	uint(hotkeys.VKSpace):  hotkey.KeySpace,
	uint(hotkeys.VKLeft):   hotkey.KeyLeft,
	uint(hotkeys.VKUp):     hotkey.KeyUp,
	uint(hotkeys.VKRight):  hotkey.KeyRight,
	uint(hotkeys.VKDown):   hotkey.KeyDown,
	uint(hotkeys.VKHome):   0x73,
	uint(hotkeys.VKPrior):  0x74,
	uint(hotkeys.VKDelete): 0x75, // kVK_ForwardDelete
	uint(hotkeys.VKEnd):    0x77,
	uint(hotkeys.VKNext):   0x79,
	uint(hotkeys.VKInsert): 0x72, // kVK_Help sits where Insert is

	uint(hotkeys.VKNumpad0):     0x52,
	uint(hotkeys.VKNumpad0) + 1: 0x53,
	uint(hotkeys.VKNumpad0) + 2: 0x54,
	uint(hotkeys.VKNumpad0) + 3: 0x55,
	uint(hotkeys.VKNumpad0) + 4: 0x56,
	uint(hotkeys.VKNumpad0) + 5: 0x57,
	uint(hotkeys.VKNumpad0) + 6: 0x58,
	uint(hotkeys.VKNumpad0) + 7: 0x59,
	uint(hotkeys.VKNumpad0) + 8: 0x5B,
	uint(hotkeys.VKNumpad0) + 9: 0x5C,
	uint(hotkeys.VKMultiply):    0x43,
	uint(hotkeys.VKAdd):         0x45,
	uint(hotkeys.VKSubtract):    0x4E,
	uint(hotkeys.VKDecimal):     0x41,
	uint(hotkeys.VKDivide):      0x4B,

	uint(hotkeys.VKOEM1):      0x29, // semicolon
	uint(hotkeys.VKOEMPlus):   0x18, // equal
	uint(hotkeys.VKOEMComma):  0x2B,
	uint(hotkeys.VKOEMMinus):  0x1B,
	uint(hotkeys.VKOEMPeriod): 0x2F,
	uint(hotkeys.VKOEM2):      0x2C, // slash
	uint(hotkeys.VKOEM3):      0x32, // grave
	uint(hotkeys.VKOEM4):      0x21, // left bracket
	uint(hotkeys.VKOEM5):      0x2A, // backslash
	uint(hotkeys.VKOEM6):      0x1E, // right bracket
	uint(hotkeys.VKOEM7):      0x27, // quote
}

func nativeKey(vk uint) (hotkey.Key, bool) {
	k, ok := macKeys[vk]
	return k, ok
}
