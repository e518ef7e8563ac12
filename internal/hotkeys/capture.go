package hotkeys

import "strings"

// Capture records a key combination from raw key-down/key-up notifications.
// It is driven by the settings surface while the hotkey field has focus.
type Capture struct {
	held     map[VKey]struct{} // physical modifier keys currently down
	pending  string
	bindable func(VKey) bool
}

// NewCapture returns a recorder with an empty display.
func NewCapture() *Capture {
	return &Capture{held: make(map[VKey]struct{})}
}

// SetBindable limits primary keys to those fn accepts, such as the keys the
// OS backend can grab. A nil fn accepts every named key.
func (c *Capture) SetBindable(fn func(VKey) bool) {
	c.bindable = fn
}

// Reset starts a new capture session showing initial.
func (c *Capture) Reset(initial string) {
	clear(c.held)
	c.pending = initial
}

// Text is the current display value.
func (c *Capture) Text() string { return c.pending }

// Modifiers returns the modifier set currently held.
func (c *Capture) Modifiers() Modifier {
	var m Modifier
	for vk := range c.held {
		m |= ModifierOf(vk)
	}
	return m
}

// KeyDown handles a key press. The event is always consumed.
func (c *Capture) KeyDown(key VKey) bool {
	if ModifierOf(key) != 0 {
		c.held[key] = struct{}{}
		c.pending = c.Modifiers().Prefix()
		return true
	}

	mods := c.Modifiers()
	if mods == 0 || IsReserved(key) {
		return true
	}
	if c.bindable != nil && !c.bindable(key) {
		return true
	}
	name := KeyName(key)
	if name == "" {
		return true
	}
	c.pending = mods.Prefix() + name
	return true
}

// KeyUp handles a key release. Releasing every modifier before a primary key
// was pressed cancels the incomplete capture.
func (c *Capture) KeyUp(key VKey) bool {
	if ModifierOf(key) != 0 {
		delete(c.held, key)
		// A generic code (VK_SHIFT) releases both sides.
		if key == VKShift || key == VKControl || key == VKMenu {
			for vk := range c.held {
				if ModifierOf(vk) == ModifierOf(key) {
					delete(c.held, vk)
				}
			}
		}
	}
	if len(c.held) == 0 && endsWithBarePrefix(c.pending) {
		c.pending = ""
	}
	return true
}

func endsWithBarePrefix(s string) bool {
	for _, cm := range canonicalModifiers {
		if strings.HasSuffix(s, cm.name+"+") {
			return true
		}
	}
	return false
}
