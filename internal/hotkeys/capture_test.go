package hotkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureModifierOnly(t *testing.T) {
	c := NewCapture()
	assert.True(t, c.KeyDown(VKLShift))
	assert.Equal(t, "Shift+", c.Text())
}

func TestCaptureModifierThenKey(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLShift)
	c.KeyDown(VKey('Z'))
	assert.Equal(t, "Shift+Z", c.Text())

	// Releasing after a complete combination keeps it.
	c.KeyUp(VKey('Z'))
	c.KeyUp(VKLShift)
	assert.Equal(t, "Shift+Z", c.Text())
}

func TestCaptureReleaseCancelsIncomplete(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLShift)
	assert.Equal(t, "Shift+", c.Text())
	assert.True(t, c.KeyUp(VKLShift))
	assert.Equal(t, "", c.Text())
}

func TestCaptureRejectsReservedKey(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLControl)
	assert.True(t, c.KeyDown(VKCapital))
	assert.Equal(t, "Ctrl+", c.Text())

	c.KeyDown(VKLWin)
	c.KeyDown(VKSnapshot)
	assert.Equal(t, "Ctrl+", c.Text())
}

func TestCaptureRejectsKeyWithoutModifier(t *testing.T) {
	c := NewCapture()
	c.Reset("Shift+Alt+Z")
	assert.True(t, c.KeyDown(VKey('Q')))
	assert.Equal(t, "Shift+Alt+Z", c.Text())
}

func TestCaptureCanonicalPrefix(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKRMenu)
	c.KeyDown(VKLShift)
	c.KeyDown(VKRControl)
	assert.Equal(t, "Ctrl+Shift+Alt+", c.Text())
	assert.Equal(t, ModCtrl|ModShift|ModAlt, c.Modifiers())

	c.KeyDown(VKF1 + 4)
	assert.Equal(t, "Ctrl+Shift+Alt+F5", c.Text())
}

func TestCapturePartialRelease(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLControl)
	c.KeyDown(VKLShift)
	c.KeyUp(VKLShift)
	// Ctrl is still held, so the prefix stays.
	assert.Equal(t, "Ctrl+Shift+", c.Text())

	c.KeyDown(VKey('K'))
	assert.Equal(t, "Ctrl+K", c.Text())
}

func TestCaptureBothSidesHeld(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLShift)
	c.KeyDown(VKRShift)
	c.KeyUp(VKLShift)
	assert.Equal(t, "Shift+", c.Text())
	assert.Equal(t, ModShift, c.Modifiers())

	// A generic release drops both sides.
	c.KeyUp(VKShift)
	assert.Zero(t, c.Modifiers())
	assert.Equal(t, "", c.Text())
}

func TestCaptureReset(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLControl)
	c.Reset("Ctrl+K")
	assert.Equal(t, "Ctrl+K", c.Text())
	assert.Zero(t, c.Modifiers())

	// Stale modifiers from before the reset do not leak into the next key.
	c.KeyDown(VKey('J'))
	assert.Equal(t, "Ctrl+K", c.Text())
}

func TestCaptureAgreesWithParse(t *testing.T) {
	c := NewCapture()
	c.KeyDown(VKLMenu)
	c.KeyDown(VKLShift)
	c.KeyDown(VKOEMPeriod)

	parsed, err := Parse(c.Text())
	assert.NoError(t, err)
	assert.Equal(t, Combination{Modifiers: ModShift | ModAlt, Key: VKOEMPeriod}, parsed)
}

func TestCaptureSkipsUnbindableKey(t *testing.T) {
	c := NewCapture()
	c.SetBindable(func(vk VKey) bool { return vk != VKHome })

	c.KeyDown(VKLControl)
	c.KeyDown(VKLMenu)
	assert.True(t, c.KeyDown(VKHome))
	assert.Equal(t, "Ctrl+Alt+", c.Text())

	c.KeyDown(VKEnd)
	assert.Equal(t, "Ctrl+Alt+End", c.Text())
}
