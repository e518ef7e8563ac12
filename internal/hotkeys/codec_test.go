package hotkeys

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderRoundTrip(t *testing.T) {
	modSets := []Modifier{
		ModCtrl,
		ModShift,
		ModAlt,
		ModCtrl | ModShift,
		ModCtrl | ModAlt,
		ModShift | ModAlt,
		ModCtrl | ModShift | ModAlt,
	}
	for _, key := range Keys() {
		for _, mods := range modSets {
			c := Combination{Modifiers: mods, Key: key}
			text := Render(c)
			got, err := Parse(text)
			require.NoError(t, err, text)
			assert.Equal(t, c, got, text)
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"Z", ErrNoModifier},
		{"Ctrl+Shift", ErrNoKey},
		{"Ctrl+", ErrNoKey},
		{"Ctrl+A+B", ErrMultipleKeys},
		{"Ctrl+Foo", ErrUnknownKey},
		{"Win+Z", ErrWinModifier},
		{"Ctrl+Super+Z", ErrWinModifier},
		{"Ctrl+CapsLock", ErrReservedKey},
		{"Alt+PrintScreen", ErrReservedKey},
		{"Shift+LWin", ErrReservedKey},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.input, fe.Input)
		})
	}
}

func TestParseCanonicalOrder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alt+Shift+Z", "Shift+Alt+Z"},
		{"alt + ctrl + f5", "Ctrl+Alt+F5"},
		{"SHIFT+esc", "Shift+Esc"},
		{"control+D1", "Ctrl+1"},
		{"ctrl+return", "Ctrl+Enter"},
		{"Shift+Ctrl+Alt+OemPeriod", "Ctrl+Shift+Alt+Period"},
		{"ctrl+ctrl+k", "Ctrl+K"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestDefaultCombination(t *testing.T) {
	assert.Equal(t, "Shift+Alt+Z", Default.String())
	assert.NoError(t, Default.validate())
}

func TestNewCombination(t *testing.T) {
	c, err := NewCombination(ModCtrl|ModAlt, VKDelete)
	require.NoError(t, err)
	assert.Equal(t, "Ctrl+Alt+Delete", c.String())

	_, err = NewCombination(0, VKey('Z'))
	assert.ErrorIs(t, err, ErrNoModifier)

	_, err = NewCombination(ModCtrl, VKLShift)
	assert.ErrorIs(t, err, ErrNoKey)

	_, err = NewCombination(ModCtrl|ModWin, VKey('Z'))
	assert.ErrorIs(t, err, ErrWinModifier)

	_, err = NewCombination(ModShift, VKApps)
	assert.ErrorIs(t, err, ErrReservedKey)
}

func TestRenderUnnamedKey(t *testing.T) {
	assert.Equal(t, "Ctrl+0xFF", Render(Combination{Modifiers: ModCtrl, Key: 0xFF}))
}

func TestKeysExcludeReserved(t *testing.T) {
	for _, vk := range Keys() {
		assert.False(t, IsReserved(vk), KeyName(vk))
		assert.Zero(t, ModifierOf(vk), KeyName(vk))
	}
}
