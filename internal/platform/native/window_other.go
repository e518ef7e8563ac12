//go:build !windows

package native

// HotkeysNeedWindow reports whether global hotkeys are delivered through a
// window. Elsewhere they are grabbed process-wide.
const HotkeysNeedWindow = false
