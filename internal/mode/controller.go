// Package mode owns the overlay's interaction mode and keeps the window
// chrome and the click-through style bit in step with it.
package mode

import (
	"fmt"
	"log"

	"floatimage/internal/platform/native"
)

// Mode is the overlay interaction mode.
type Mode int

const (
	// Edit: movable, resizable, controls visible.
	Edit Mode = iota
	// Locked: controls hidden, fixed size, pointer input passes through.
	Locked
)

func (m Mode) String() string {
	switch m {
	case Edit:
		return "edit"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Chrome is the window-chrome layer the controller drives.
type Chrome interface {
	HasImage() bool
	SetControlsVisible(visible bool)
	SetResizable(resizable bool)
}

// StyleBackend reads and writes the extended style word of a window.
type StyleBackend interface {
	GetExtendedStyle(window native.WindowHandle) (uint32, error)
	SetExtendedStyle(window native.WindowHandle, bits uint32) (uint32, error)
}

// Controller is the Edit/Locked state machine. Like the rest of the window
// state it is owned by the UI thread and not safe for concurrent use.
type Controller struct {
	chrome   Chrome
	styles   StyleBackend
	window   native.WindowHandle
	hotkeyID int
	mode     Mode
}

// NewController returns a controller in Edit mode.
func NewController(chrome Chrome, styles StyleBackend, window native.WindowHandle, hotkeyID int) *Controller {
	return &Controller{
		chrome:   chrome,
		styles:   styles,
		window:   window,
		hotkeyID: hotkeyID,
		mode:     Edit,
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// IsEditMode reports whether the overlay is in Edit mode.
func (c *Controller) IsEditMode() bool { return c.mode == Edit }

// Toggle switches between Edit and Locked. Without a loaded image it does
// nothing. Chrome is updated before the style bit; a style failure is
// returned but the mode stays switched.
func (c *Controller) Toggle() error {
	if !c.chrome.HasImage() {
		return nil
	}

	if c.mode == Edit {
		c.mode = Locked
	} else {
		c.mode = Edit
	}
	edit := c.mode == Edit

	c.chrome.SetControlsVisible(edit)
	c.chrome.SetResizable(edit)

	if err := c.applyClickThrough(!edit); err != nil {
		log.Printf("Failed to update click-through for %s mode: %v", c.mode, err)
		return err
	}
	log.Printf("Overlay mode: %s", c.mode)
	return nil
}

// applyClickThrough sets or clears only the click-through bit.
func (c *Controller) applyClickThrough(on bool) error {
	style, err := c.styles.GetExtendedStyle(c.window)
	if err != nil {
		return fmt.Errorf("read window style: %w", err)
	}
	next := style &^ native.StyleClickThrough
	if on {
		next |= native.StyleClickThrough
	}
	if next == style {
		return nil
	}
	if _, err := c.styles.SetExtendedStyle(c.window, next); err != nil {
		return fmt.Errorf("write window style: %w", err)
	}
	return nil
}

// HandleHotkey toggles when id is the overlay's hotkey. Foreign ids are
// reported as not handled.
func (c *Controller) HandleHotkey(id int) (bool, error) {
	if id != c.hotkeyID {
		return false, nil
	}
	return true, c.Toggle()
}
