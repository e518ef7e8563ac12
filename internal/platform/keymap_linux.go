//go:build linux

package platform

import (
	"golang.design/x/hotkey"

	"floatimage/internal/hotkeys"
)

// modifierMap maps Win32 modifier bits to X11 modifiers.
var modifierMap = map[uint]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1, // Alt is Mod1 on X11
}

// On X11 a hotkey.Key is a keysym. Raw keysyms are used throughout because
// the library's named digit and Tab constants point at the wrong symbols.
var x11Keysyms = map[uint]hotkey.Key{
	uint(hotkeys.VKBack):   0xff08,
	uint(hotkeys.VKTab):    0xff09,
	uint(hotkeys.VKReturn): 0xff0d,
	uint(hotkeys.VKPause):  0xff13,
	uint(hotkeys.VKEscape): 0xff1b,
	uint(hotkeys.VKSpace):  0x0020,
	uint(hotkeys.VKHome):   0xff50,
	uint(hotkeys.VKLeft):   0xff51,
	uint(hotkeys.VKUp):     0xff52,
	uint(hotkeys.VKRight):  0xff53,
	uint(hotkeys.VKDown):   0xff54,
	uint(hotkeys.VKPrior):  0xff55,
	uint(hotkeys.VKNext):   0xff56,
	uint(hotkeys.VKEnd):    0xff57,
	uint(hotkeys.VKInsert): 0xff63,
	uint(hotkeys.VKDelete): 0xffff,

	uint(hotkeys.VKMultiply): 0xffaa,
	uint(hotkeys.VKAdd):      0xffab,
	uint(hotkeys.VKSubtract): 0xffad,
	uint(hotkeys.VKDecimal):  0xffae,
	uint(hotkeys.VKDivide):   0xffaf,

	uint(hotkeys.VKOEM1):      0x003b, // semicolon
	uint(hotkeys.VKOEMPlus):   0x003d, // equal
	uint(hotkeys.VKOEMComma):  0x002c,
	uint(hotkeys.VKOEMMinus):  0x002d,
	uint(hotkeys.VKOEMPeriod): 0x002e,
	uint(hotkeys.VKOEM2):      0x002f, // slash
	uint(hotkeys.VKOEM3):      0x0060, // grave
	uint(hotkeys.VKOEM4):      0x005b, // bracketleft
	uint(hotkeys.VKOEM5):      0x005c, // backslash
	uint(hotkeys.VKOEM6):      0x005d, // bracketright
	uint(hotkeys.VKOEM7):      0x0027, // apostrophe
}

// nativeKey translates a virtual-key code to its keysym. Media and browser
// keys live in the XF86 range, which does not fit the library's 16-bit key.
func nativeKey(vk uint) (hotkey.Key, bool) {
	switch {
	case vk >= 'A' && vk <= 'Z':
		return hotkey.Key(vk + 0x20), true // XK_a..XK_z
	case vk >= '0' && vk <= '9':
		return hotkey.Key(vk), true
	case vk >= uint(hotkeys.VKF1) && vk < uint(hotkeys.VKF1)+24:
		return hotkey.Key(0xffbe + vk - uint(hotkeys.VKF1)), true
	case vk >= uint(hotkeys.VKNumpad0) && vk < uint(hotkeys.VKNumpad0)+10:
		return hotkey.Key(0xffb0 + vk - uint(hotkeys.VKNumpad0)), true
	}
	k, ok := x11Keysyms[vk]
	return k, ok
}
