package hotkeys

import (
	"errors"
	"fmt"
	"strings"
)

// Format failures. Parse wraps exactly one of these in a *FormatError.
var (
	ErrEmpty        = errors.New("hotkey is empty")
	ErrNoModifier   = errors.New("at least one of Ctrl, Shift or Alt is required")
	ErrNoKey        = errors.New("a non-modifier key is required")
	ErrMultipleKeys = errors.New("only one non-modifier key is allowed")
	ErrUnknownKey   = errors.New("unknown key")
	ErrReservedKey  = errors.New("key is reserved by the system")
	ErrWinModifier  = errors.New("the Windows key cannot be used as a modifier")
)

// FormatError reports a malformed or incomplete combination string.
type FormatError struct {
	Input string
	Token string // offending token, when there is one
	Err   error
}

func (e *FormatError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid hotkey %q: %v: %q", e.Input, e.Err, e.Token)
	}
	return fmt.Sprintf("invalid hotkey %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Combination is a modifier set plus exactly one primary key.
// Construct via Parse or NewCombination to keep the invariant.
type Combination struct {
	Modifiers Modifier
	Key       VKey
}

// Default is the combination registered at every launch.
var Default = Combination{Modifiers: ModShift | ModAlt, Key: VKey('Z')}

// NewCombination validates mods and key without going through text.
func NewCombination(mods Modifier, key VKey) (Combination, error) {
	c := Combination{Modifiers: mods, Key: key}
	if err := c.validate(); err != nil {
		return Combination{}, &FormatError{Input: Render(c), Err: err}
	}
	return c, nil
}

func (c Combination) validate() error {
	switch {
	case c.Modifiers&ModWin != 0:
		return ErrWinModifier
	case c.Modifiers&(ModCtrl|ModShift|ModAlt) == 0:
		return ErrNoModifier
	case ModifierOf(c.Key) != 0:
		return ErrNoKey
	case IsReserved(c.Key):
		return ErrReservedKey
	case KeyName(c.Key) == "":
		return ErrUnknownKey
	}
	return nil
}

// String renders c canonically, e.g. "Shift+Alt+Z".
func (c Combination) String() string { return Render(c) }

// Parse converts text like "alt + shift + z" into a Combination.
func Parse(text string) (Combination, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Combination{}, &FormatError{Input: text, Err: ErrEmpty}
	}

	var (
		mods    Modifier
		keyTok  string
		keySeen int
	)
	for _, part := range strings.Split(raw, "+") {
		tok := strings.ToLower(strings.TrimSpace(part))
		switch tok {
		case "":
			// "Ctrl+" leaves a trailing empty token; the missing key is
			// reported below.
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "alt":
			mods |= ModAlt
		case "win", "super", "meta":
			return Combination{}, &FormatError{Input: text, Token: part, Err: ErrWinModifier}
		default:
			keySeen++
			keyTok = strings.TrimSpace(part)
		}
	}

	switch {
	case keySeen > 1:
		return Combination{}, &FormatError{Input: text, Err: ErrMultipleKeys}
	case keySeen == 0:
		return Combination{}, &FormatError{Input: text, Err: ErrNoKey}
	case mods == 0:
		return Combination{}, &FormatError{Input: text, Err: ErrNoModifier}
	}

	key, ok := LookupKey(keyTok)
	if !ok {
		return Combination{}, &FormatError{Input: text, Token: keyTok, Err: ErrUnknownKey}
	}
	if ModifierOf(key) != 0 {
		return Combination{}, &FormatError{Input: text, Err: ErrNoKey}
	}
	if IsReserved(key) {
		return Combination{}, &FormatError{Input: text, Token: keyTok, Err: ErrReservedKey}
	}
	return Combination{Modifiers: mods, Key: key}, nil
}

// Render emits the modifiers in the fixed order Ctrl, Shift, Alt followed by
// the key's display name.
func Render(c Combination) string {
	name := KeyName(c.Key)
	if name == "" {
		name = fmt.Sprintf("0x%02X", uint32(c.Key))
	}
	return c.Modifiers.Prefix() + name
}
