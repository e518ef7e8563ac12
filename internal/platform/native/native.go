// Package native holds the window-system values shared by the platform
// backends and the packages that drive them. It has no OS bindings of its
// own, so importing it never loads a native library.
package native

// WindowHandle represents a platform-specific window handle
type WindowHandle uintptr

// StyleClickThrough is the extended-style bit that makes a window transparent
// to pointer input (WS_EX_TRANSPARENT).
const StyleClickThrough uint32 = 0x00000020

// StyleLayered is WS_EX_LAYERED, required for per-window opacity.
const StyleLayered uint32 = 0x00080000
