//go:build linux

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.design/x/hotkey"

	"floatimage/internal/hotkeys"
)

func TestNativeKeyKeysyms(t *testing.T) {
	tests := []struct {
		name string
		want hotkey.Key
	}{
		{"A", 0x0061},
		{"Z", 0x007a},
		{"0", 0x0030},
		{"9", 0x0039},
		{"Tab", 0xff09},
		{"Esc", 0xff1b},
		{"Home", 0xff50},
		{"PageDown", 0xff56},
		{"Insert", 0xff63},
		{"Backspace", 0xff08},
		{"F1", 0xffbe},
		{"F24", 0xffd5},
		{"NumPad0", 0xffb0},
		{"NumPad9", 0xffb9},
		{"Semicolon", 0x003b},
		{"Backquote", 0x0060},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vk, ok := hotkeys.LookupKey(tt.name)
			assert.True(t, ok)
			got, ok := nativeKey(uint(vk))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportsKeyCoversKeyTable(t *testing.T) {
	media := map[string]bool{
		"BrowserBack": true, "BrowserForward": true, "BrowserRefresh": true,
		"VolumeMute": true, "VolumeDown": true, "VolumeUp": true,
		"MediaNextTrack": true, "MediaPreviousTrack": true, "MediaStop": true, "MediaPlayPause": true,
	}
	for _, vk := range hotkeys.Keys() {
		name := hotkeys.KeyName(vk)
		assert.Equal(t, !media[name], SupportsKey(uint(vk)), name)
	}
}

func TestRegisterUnsupportedKey(t *testing.T) {
	vk, _ := hotkeys.LookupKey("VolumeMute")
	err := newHotkeyTable().RegisterHotkey(1, 1, ModCtrl, uint(vk))
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}
