//go:build linux || darwin

package platform

import (
	"fmt"
	"log"
	"sync"

	"golang.design/x/hotkey"
)

// SupportsKey reports whether vk can be bound as a global hotkey here.
func SupportsKey(vk uint) bool {
	_, ok := nativeKey(vk)
	return ok
}

func translateModifiers(modifiers uint) []hotkey.Modifier {
	var mods []hotkey.Modifier
	for _, m := range []uint{ModCtrl, ModShift, ModAlt} {
		if modifiers&m != 0 {
			mods = append(mods, modifierMap[m])
		}
	}
	return mods
}

type hotkeyKey struct {
	window WindowHandle
	id     int
}

type boundHotkey struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

// hotkeyTable registers global hotkeys through golang.design/x/hotkey.
// The window handle only scopes the id; the library binds process-wide.
type hotkeyTable struct {
	mu     sync.Mutex
	bound  map[hotkeyKey]*boundHotkey
	events chan int
}

func newHotkeyTable() *hotkeyTable {
	return &hotkeyTable{
		bound:  make(map[hotkeyKey]*boundHotkey),
		events: newEventChannel(),
	}
}

// RegisterHotkey binds modifiers+keyCode under (window, id). The native API
// has no id-based replacement, so an existing binding for the same slot is
// released first.
func (t *hotkeyTable) RegisterHotkey(window WindowHandle, id int, modifiers uint, keyCode uint) error {
	if modifiers&ModWin != 0 {
		return fmt.Errorf("register hotkey id %d: Win modifier not supported", id)
	}
	key, ok := nativeKey(keyCode)
	if !ok {
		return fmt.Errorf("register hotkey id %d: key 0x%02X: %w", id, keyCode, ErrUnsupportedKey)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	slot := hotkeyKey{window, id}
	if prev, ok := t.bound[slot]; ok {
		if err := t.releaseLocked(slot, prev); err != nil {
			log.Printf("RegisterHotkey: %v", err)
		}
	}

	hk := hotkey.New(translateModifiers(modifiers), key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register hotkey id %d: %w", id, err)
	}

	b := &boundHotkey{hk: hk, stop: make(chan struct{})}
	t.bound[slot] = b
	go t.listen(id, b)
	return nil
}

func (t *hotkeyTable) listen(id int, b *boundHotkey) {
	for {
		select {
		case <-b.hk.Keydown():
			deliver(t.events, id)
		case <-b.stop:
			return
		}
	}
}

// UnregisterHotkey removes the binding for (window, id).
func (t *hotkeyTable) UnregisterHotkey(window WindowHandle, id int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot := hotkeyKey{window, id}
	b, ok := t.bound[slot]
	if !ok {
		return fmt.Errorf("unregister hotkey id %d: not registered", id)
	}
	return t.releaseLocked(slot, b)
}

func (t *hotkeyTable) releaseLocked(slot hotkeyKey, b *boundHotkey) error {
	delete(t.bound, slot)
	close(b.stop)
	if err := b.hk.Unregister(); err != nil {
		return fmt.Errorf("unregister hotkey id %d: %w", slot.id, err)
	}
	return nil
}

// HotkeyEvents returns the ids of fired hotkeys.
func (t *hotkeyTable) HotkeyEvents() <-chan int {
	return t.events
}

// styleTable keeps an extended-style word per window. There is no native
// equivalent here, so the bits are tracked in-process and click-through
// changes are reported instead of applied.
type styleTable struct {
	mu     sync.Mutex
	styles map[WindowHandle]uint32
}

func newStyleTable() *styleTable {
	return &styleTable{styles: make(map[WindowHandle]uint32)}
}

// GetExtendedStyle returns the tracked style word.
func (s *styleTable) GetExtendedStyle(window WindowHandle) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styles[window], nil
}

// SetExtendedStyle stores bits and returns the previous value.
func (s *styleTable) SetExtendedStyle(window WindowHandle, bits uint32) (uint32, error) {
	s.mu.Lock()
	prev := s.styles[window]
	s.styles[window] = bits
	s.mu.Unlock()

	if (prev^bits)&StyleClickThrough != 0 {
		log.Printf("SetExtendedStyle: click-through=%v recorded (no native support on this platform)",
			bits&StyleClickThrough != 0)
	}
	return prev, nil
}
