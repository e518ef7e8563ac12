package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatimage/internal/hotkeys"
	"floatimage/internal/mode"
	"floatimage/internal/platform/native"
)

type binding struct {
	mods uint
	key  uint
}

// fakeOS stands in for the platform layer: one window, a hotkey table, an
// extended style word and the fired-id channel.
type fakeOS struct {
	bound       map[int]binding
	taken       map[uint]bool
	style       uint32
	events      chan int
	registers   int
	unregisters int
}

func newFakeOS(style uint32) *fakeOS {
	return &fakeOS{
		bound:  make(map[int]binding),
		taken:  make(map[uint]bool),
		style:  style,
		events: make(chan int, 8),
	}
}

func (f *fakeOS) RegisterHotkey(_ native.WindowHandle, id int, modifiers uint, keyCode uint) error {
	f.registers++
	if f.taken[keyCode] {
		return errors.New("hot key is already registered")
	}
	if _, ok := f.bound[id]; ok {
		return fmt.Errorf("id %d already in use", id)
	}
	f.bound[id] = binding{modifiers, keyCode}
	return nil
}

func (f *fakeOS) UnregisterHotkey(_ native.WindowHandle, id int) error {
	f.unregisters++
	if _, ok := f.bound[id]; !ok {
		return fmt.Errorf("id %d not registered", id)
	}
	delete(f.bound, id)
	return nil
}

func (f *fakeOS) GetExtendedStyle(native.WindowHandle) (uint32, error) {
	return f.style, nil
}

func (f *fakeOS) SetExtendedStyle(_ native.WindowHandle, bits uint32) (uint32, error) {
	prev := f.style
	f.style = bits
	return prev, nil
}

func (f *fakeOS) HotkeyEvents() <-chan int { return f.events }

// fire simulates the OS delivering a fired hotkey for the bound id.
func (f *fakeOS) fire(id int) { f.events <- id }

type fakeChrome struct {
	hasImage        bool
	controlsVisible bool
	resizable       bool
}

func (f *fakeChrome) HasImage() bool { return f.hasImage }
func (f *fakeChrome) SetControlsVisible(visible bool) { f.controlsVisible = visible }
func (f *fakeChrome) SetResizable(resizable bool) { f.resizable = resizable }

const (
	testWindow   native.WindowHandle = 0x99
	initialStyle uint32              = 0x00080108
)

func newTestSession(t *testing.T) (*Session, *fakeOS, *fakeChrome) {
	t.Helper()
	sys := newFakeOS(initialStyle)
	chrome := &fakeChrome{hasImage: true, controlsVisible: true, resizable: true}
	s := NewSession(sys, chrome, testWindow)
	t.Cleanup(s.Close)
	return s, sys, chrome
}

// runPump starts the event pump and returns the queue of work it hands to
// the UI thread; the test goroutine plays that thread.
func runPump(t *testing.T, s *Session) <-chan func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	q := make(chan func(), 8)
	done := make(chan struct{})
	go func() {
		s.Run(ctx, func(fn func()) { q <- fn })
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return q
}

func runNext(t *testing.T, q <-chan func()) {
	t.Helper()
	select {
	case fn := <-q:
		fn()
	case <-time.After(2 * time.Second):
		require.FailNow(t, "fired hotkey was not dispatched")
	}
}

func TestSessionEndToEnd(t *testing.T) {
	s, sys, chrome := newTestSession(t)

	require.NoError(t, s.Start())
	assert.Equal(t, "Shift+Alt+Z", s.HotkeyText())
	assert.Equal(t, binding{uint(hotkeys.ModShift | hotkeys.ModAlt), 'Z'}, sys.bound[hotkeys.HotkeyID])

	q := runPump(t, s)

	sys.fire(hotkeys.HotkeyID)
	runNext(t, q)
	assert.Equal(t, mode.Locked, s.Mode())
	assert.False(t, chrome.controlsVisible)
	assert.False(t, chrome.resizable)
	assert.Equal(t, initialStyle|native.StyleClickThrough, sys.style)

	sys.fire(hotkeys.HotkeyID)
	runNext(t, q)
	assert.Equal(t, mode.Edit, s.Mode())
	assert.True(t, chrome.controlsVisible)
	assert.True(t, chrome.resizable)
	assert.Equal(t, initialStyle, sys.style)
}

func TestSessionIgnoresForeignIds(t *testing.T) {
	s, sys, _ := newTestSession(t)
	require.NoError(t, s.Start())
	q := runPump(t, s)

	sys.fire(hotkeys.HotkeyID + 5)
	runNext(t, q)
	assert.Equal(t, mode.Edit, s.Mode())
	assert.Equal(t, initialStyle, sys.style)
}

func TestSessionManualToggleMatchesHotkey(t *testing.T) {
	s, sys, chrome := newTestSession(t)
	require.NoError(t, s.Start())

	require.NoError(t, s.Toggle())
	assert.Equal(t, mode.Locked, s.Mode())
	assert.False(t, chrome.controlsVisible)
	assert.Equal(t, initialStyle|native.StyleClickThrough, sys.style)
}

func TestSessionConfirmHotkey(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDisplay string
		wantFormat  bool
		wantOS      bool
		wantCalls   bool
	}{
		{name: "empty", input: "", wantDisplay: "Shift+Alt+Z", wantFormat: true},
		{name: "no modifier", input: "Z", wantDisplay: "Shift+Alt+Z", wantFormat: true},
		{name: "unknown key", input: "Ctrl+Foo", wantDisplay: "Shift+Alt+Z", wantFormat: true},
		{name: "identical", input: "alt+shift+z", wantDisplay: "Shift+Alt+Z"},
		{name: "taken", input: "Ctrl+Q", wantDisplay: "Shift+Alt+Z", wantOS: true, wantCalls: true},
		{name: "new", input: "ctrl+alt+f5", wantDisplay: "Ctrl+Alt+F5", wantCalls: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sys, _ := newTestSession(t)
			sys.taken['Q'] = true
			require.NoError(t, s.Start())
			before := sys.registers + sys.unregisters

			display, err := s.ConfirmHotkey(tt.input)
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.wantDisplay, s.HotkeyText())

			var formatErr *hotkeys.FormatError
			var regErr *hotkeys.RegistrationError
			switch {
			case tt.wantFormat:
				assert.True(t, errors.As(err, &formatErr), "want FormatError, got %v", err)
			case tt.wantOS:
				assert.True(t, errors.As(err, &regErr), "want RegistrationError, got %v", err)
			default:
				assert.NoError(t, err)
			}

			if tt.wantCalls {
				assert.Greater(t, sys.registers+sys.unregisters, before)
			} else {
				assert.Equal(t, before, sys.registers+sys.unregisters)
			}
			// Whatever happened, exactly one combination stays bound.
			assert.Len(t, sys.bound, 1)
		})
	}
}

func TestSessionStartFailure(t *testing.T) {
	s, sys, _ := newTestSession(t)
	sys.taken['Z'] = true

	err := s.Start()
	var regErr *hotkeys.RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "", s.HotkeyText())

	// The overlay keeps working without a hotkey.
	require.NoError(t, s.Toggle())
	assert.Equal(t, mode.Locked, s.Mode())
}

func TestSessionCloseReleasesOnce(t *testing.T) {
	s, sys, _ := newTestSession(t)
	require.NoError(t, s.Start())

	s.Close()
	s.Close()
	assert.Empty(t, sys.bound)
	assert.Equal(t, 1, sys.unregisters)
}

func TestSessionStartWithoutWindow(t *testing.T) {
	sys := newFakeOS(initialStyle)
	s := NewSession(sys, &fakeChrome{hasImage: true}, 0)
	s.needsWindow = true
	t.Cleanup(s.Close)

	assert.ErrorIs(t, s.Start(), ErrNoWindow)
	assert.Equal(t, 0, sys.registers)
	assert.Equal(t, "", s.HotkeyText())
}

func TestSessionStartWithoutWindowWhereNotNeeded(t *testing.T) {
	sys := newFakeOS(initialStyle)
	s := NewSession(sys, &fakeChrome{hasImage: true}, 0)
	s.needsWindow = false
	t.Cleanup(s.Close)

	require.NoError(t, s.Start())
	assert.Equal(t, "Shift+Alt+Z", s.HotkeyText())
}
