package hotkeys

import (
	"fmt"
	"log"

	"floatimage/internal/platform/native"
)

// HotkeyID is the single registration slot used for the process lifetime.
const HotkeyID = 1

// Backend is the part of the OS subsystem the registry drives.
type Backend interface {
	RegisterHotkey(window native.WindowHandle, id int, modifiers uint, keyCode uint) error
	UnregisterHotkey(window native.WindowHandle, id int) error
}

// Registration is a live system-wide shortcut.
type Registration struct {
	ID          int
	Combination Combination
	Window      native.WindowHandle
}

// RegistrationError reports that the OS declined to bind a combination,
// usually because another process already holds it.
type RegistrationError struct {
	Combination Combination
	Err         error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to register hotkey %s: %v", e.Combination, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }

// Registry owns the one global shortcut of the overlay window. It is not
// safe for concurrent use; all calls come from the UI thread.
type Registry struct {
	backend Backend
	window  native.WindowHandle
	active  *Registration
}

// NewRegistry creates a registry bound to window.
func NewRegistry(backend Backend, window native.WindowHandle) *Registry {
	return &Registry{backend: backend, window: window}
}

// Current returns the authoritative combination, if one is registered.
func (r *Registry) Current() (Combination, bool) {
	if r.active == nil {
		return Combination{}, false
	}
	return r.active.Combination, true
}

// Register binds c under HotkeyID. Any previous registration is released
// first; if binding c fails the previous one is restored. If the previous one
// cannot be released it stays active and nothing else is attempted.
func (r *Registry) Register(c Combination) (Registration, error) {
	if err := c.validate(); err != nil {
		return Registration{}, &FormatError{Input: Render(c), Err: err}
	}

	prev := r.active
	if prev != nil {
		if err := r.backend.UnregisterHotkey(r.window, HotkeyID); err != nil {
			log.Printf("Failed to release hotkey %s before re-registering: %v", prev.Combination, err)
			return Registration{}, &RegistrationError{
				Combination: c,
				Err:         fmt.Errorf("release %s: %w", prev.Combination, err),
			}
		}
		r.active = nil
	}

	if err := r.register(c); err != nil {
		if prev != nil {
			if restoreErr := r.register(prev.Combination); restoreErr != nil {
				log.Printf("Failed to restore hotkey %s: %v", prev.Combination, restoreErr)
			} else {
				r.active = prev
			}
		}
		return Registration{}, &RegistrationError{Combination: c, Err: err}
	}

	reg := Registration{ID: HotkeyID, Combination: c, Window: r.window}
	r.active = &reg
	log.Printf("Registered hotkey: %s", c)
	return reg, nil
}

func (r *Registry) register(c Combination) error {
	return r.backend.RegisterHotkey(r.window, HotkeyID, uint(c.Modifiers), uint(c.Key))
}

// Replace makes c the active hotkey. It is a no-op when c renders the same
// as the current combination.
func (r *Registry) Replace(c Combination) error {
	if cur, ok := r.Current(); ok && Render(cur) == Render(c) {
		return nil
	}
	_, err := r.Register(c)
	return err
}

// Unregister releases the hotkey. Safe to call more than once; failures are
// logged and otherwise ignored.
func (r *Registry) Unregister() {
	if r.active == nil {
		return
	}
	if err := r.backend.UnregisterHotkey(r.window, HotkeyID); err != nil {
		log.Printf("Failed to unregister hotkey %s: %v", r.active.Combination, err)
	}
	r.active = nil
}
