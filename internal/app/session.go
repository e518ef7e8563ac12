package app

import (
	"context"
	"errors"
	"log"
	"sync"

	"floatimage/internal/hotkeys"
	"floatimage/internal/mode"
	"floatimage/internal/platform/native"
)

// ErrNoWindow is returned by Start when hotkeys are delivered through the
// overlay window and its native handle could not be found.
var ErrNoWindow = errors.New("overlay window handle not found, the hotkey cannot be delivered")

// SessionBackend is the slice of the platform layer a Session needs.
type SessionBackend interface {
	hotkeys.Backend
	mode.StyleBackend
	HotkeyEvents() <-chan int
}

// Session ties the hotkey registry, the mode controller and the fired-hotkey
// pump to one overlay window. Apart from Run, every method must be called on
// the UI thread.
type Session struct {
	registry   *hotkeys.Registry
	controller *mode.Controller
	events     <-chan int
	window     native.WindowHandle

	// needsWindow is true where a zero window would register the hotkey
	// somewhere the overlay never hears it.
	needsWindow bool

	mu      sync.Mutex
	manager *hotkeys.Manager
	closed  bool
}

// NewSession creates a session for window. Nothing is registered until Start.
func NewSession(backend SessionBackend, chrome mode.Chrome, window native.WindowHandle) *Session {
	return &Session{
		registry:   hotkeys.NewRegistry(backend, window),
		controller: mode.NewController(chrome, backend, window, hotkeys.HotkeyID),
		events:     backend.HotkeyEvents(),
		window:     window,

		needsWindow: native.HotkeysNeedWindow,
	}
}

// Start registers the default hotkey. A failure leaves the session usable
// without a hotkey.
func (s *Session) Start() error {
	if s.window == 0 && s.needsWindow {
		log.Println("Skipping hotkey registration: no overlay window handle")
		return ErrNoWindow
	}
	if _, err := s.registry.Register(hotkeys.Default); err != nil {
		log.Printf("Failed to register default hotkey: %v", err)
		return err
	}
	return nil
}

// ConfirmHotkey parses text and makes it the active hotkey. The returned
// display text is always the authoritative hotkey, so on error it is the
// previous one.
func (s *Session) ConfirmHotkey(text string) (string, error) {
	c, err := hotkeys.Parse(text)
	if err != nil {
		return s.HotkeyText(), err
	}
	if err := s.registry.Replace(c); err != nil {
		return s.HotkeyText(), err
	}
	return s.HotkeyText(), nil
}

// HotkeyText is the display text of the active hotkey, or "" if none.
func (s *Session) HotkeyText() string {
	c, ok := s.registry.Current()
	if !ok {
		return ""
	}
	return c.String()
}

// Toggle is the manual lock/unlock entry point.
func (s *Session) Toggle() error {
	return s.controller.Toggle()
}

// Mode returns the current interaction mode.
func (s *Session) Mode() mode.Mode {
	return s.controller.Mode()
}

// IsEditMode reports whether the overlay accepts edits.
func (s *Session) IsEditMode() bool {
	return s.controller.IsEditMode()
}

// Run pumps fired hotkeys into the controller until ctx is done. Each event
// is handed to dispatch, which must run it on the UI thread.
func (s *Session) Run(ctx context.Context, dispatch func(func())) {
	s.mu.Lock()
	if s.closed || s.manager != nil {
		s.mu.Unlock()
		return
	}
	m := hotkeys.NewManager(s.events, dispatch)
	m.SetCallback(hotkeys.HotkeyID, func(id int) {
		// Failures are logged by the controller; the mode is already switched.
		_, _ = s.controller.HandleHotkey(id)
	})
	s.manager = m
	s.mu.Unlock()

	m.Start(ctx)
	<-ctx.Done()
	m.Stop()
}

// Close stops the pump and releases the hotkey. Only the first call does
// anything.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	m := s.manager
	s.mu.Unlock()

	if m != nil {
		m.Stop()
	}
	s.registry.Unregister()
}
