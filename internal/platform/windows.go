//go:build windows

package platform

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procMoveWindow           = user32.NewProc("MoveWindow")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetWindowLong        = user32.NewProc("GetWindowLongW")
	procSetWindowLong        = user32.NewProc("SetWindowLongW")
	procSetWindowLongPtr     = user32.NewProc("SetWindowLongPtrW")
	procCallWindowProc       = user32.NewProc("CallWindowProcW")
	procSetLayeredWindowAttr = user32.NewProc("SetLayeredWindowAttributes")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
	procShowWindow           = user32.NewProc("ShowWindow")
	procRegisterHotKey       = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey     = user32.NewProc("UnregisterHotKey")
	procFindWindow           = user32.NewProc("FindWindowW")
	procSetLastError         = kernel32.NewProc("SetLastError")
)

// Windows constants
const (
	HWND_TOPMOST   = ^uintptr(0) // -1
	HWND_NOTOPMOST = ^uintptr(1) // -2
	SWP_NOMOVE     = 0x0002
	SWP_NOSIZE     = 0x0001
	SWP_NOACTIVATE = 0x0010

	LWA_ALPHA = 0x00000002

	SPI_GETWORKAREA = 0x0030

	SW_MAXIMIZE = 3
	SW_MINIMIZE = 6
	SW_RESTORE  = 9

	WM_HOTKEY = 0x0312
)

// gwlExStyle is GWL_EXSTYLE (-20) as uintptr, computed at runtime to avoid overflow
var gwlExStyle = negativeToUintptr(-20)

// gwlpWndProc is GWLP_WNDPROC (-4)
var gwlpWndProc = negativeToUintptr(-4)

func negativeToUintptr(v int32) uintptr {
	return uintptr(uint32(v))
}

// RECT structure for Windows API
type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WindowsFeatures implements PlatformFeatures for Windows. Hotkeys are bound to the
// overlay HWND; WM_HOTKEY is picked out of the window's own message stream
// by subclassing its window procedure.
type WindowsFeatures struct {
	mu         sync.Mutex
	events     chan int
	subclassed map[WindowHandle]uintptr // window -> original wndproc
	callback   uintptr
}

// NewWindowsFeatures creates a new Windows platform features instance
func NewWindowsFeatures() *WindowsFeatures {
	w := &WindowsFeatures{
		events:     newEventChannel(),
		subclassed: make(map[WindowHandle]uintptr),
	}
	w.callback = windows.NewCallback(w.wndProc)
	return w
}

// callError turns the (ret, err) pair of a LazyProc call into an error,
// treating ERROR_SUCCESS as a generic failure of the named API.
func callError(api string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		return fmt.Errorf("%s failed", api)
	}
	return fmt.Errorf("%s failed: %w", api, err)
}

// wndProc forwards WM_HOTKEY to the events channel and everything else to the
// original window procedure. It runs on the window's thread.
func (w *WindowsFeatures) wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	if msg == WM_HOTKEY {
		deliver(w.events, int(wParam))
		return 0
	}
	w.mu.Lock()
	prev := w.subclassed[WindowHandle(hwnd)]
	w.mu.Unlock()
	ret, _, _ := procCallWindowProc.Call(prev, hwnd, msg, wParam, lParam)
	return ret
}

func (w *WindowsFeatures) ensureSubclassed(window WindowHandle) error {
	if window == 0 {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.subclassed[window]; ok {
		return nil
	}
	procSetLastError.Call(0)
	prev, _, err := procSetWindowLongPtr.Call(uintptr(window), gwlpWndProc, w.callback)
	if prev == 0 {
		return callError("SetWindowLongPtrW", err)
	}
	w.subclassed[window] = prev
	log.Printf("Installed hotkey hook on window %v", window)
	return nil
}

// RegisterHotkey registers a global hotkey owned by window. Must be called on
// the thread that created window.
func (w *WindowsFeatures) RegisterHotkey(window WindowHandle, id int, modifiers uint, keyCode uint) error {
	if err := w.ensureSubclassed(window); err != nil {
		return err
	}
	ret, _, err := procRegisterHotKey.Call(
		uintptr(window),
		uintptr(id),
		uintptr(modifiers),
		uintptr(keyCode),
	)
	if ret == 0 {
		return callError(fmt.Sprintf("RegisterHotKey(id %d)", id), err)
	}
	return nil
}

// UnregisterHotkey removes a registered hotkey
func (w *WindowsFeatures) UnregisterHotkey(window WindowHandle, id int) error {
	ret, _, err := procUnregisterHotKey.Call(uintptr(window), uintptr(id))
	if ret == 0 {
		return callError(fmt.Sprintf("UnregisterHotKey(id %d)", id), err)
	}
	return nil
}

// HotkeyEvents returns the ids of fired hotkeys.
func (w *WindowsFeatures) HotkeyEvents() <-chan int {
	return w.events
}

// GetExtendedStyle reads GWL_EXSTYLE.
func (w *WindowsFeatures) GetExtendedStyle(window WindowHandle) (uint32, error) {
	procSetLastError.Call(0)
	ret, _, err := procGetWindowLong.Call(uintptr(window), gwlExStyle)
	if ret == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return 0, callError("GetWindowLongW", err)
		}
	}
	return uint32(ret), nil
}

// SetExtendedStyle writes GWL_EXSTYLE and returns the previous value.
func (w *WindowsFeatures) SetExtendedStyle(window WindowHandle, bits uint32) (uint32, error) {
	procSetLastError.Call(0)
	prev, _, err := procSetWindowLong.Call(uintptr(window), gwlExStyle, uintptr(bits))
	if prev == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return 0, callError("SetWindowLongW", err)
		}
	}
	return uint32(prev), nil
}

// SetAlwaysOnTop sets the window to always be on top
func (w *WindowsFeatures) SetAlwaysOnTop(window WindowHandle, onTop bool) error {
	insertAfter := HWND_NOTOPMOST
	if onTop {
		insertAfter = HWND_TOPMOST
	}

	ret, _, err := procSetWindowPos.Call(
		uintptr(window),
		insertAfter,
		0, 0, 0, 0,
		SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE,
	)
	if ret == 0 {
		return callError("SetWindowPos", err)
	}
	return nil
}

// SetTransparency sets the window opacity. Marks the window layered, which
// click-through also depends on.
func (w *WindowsFeatures) SetTransparency(window WindowHandle, opacity float64) error {
	style, err := w.GetExtendedStyle(window)
	if err != nil {
		return err
	}
	if style&StyleLayered == 0 {
		if _, err := w.SetExtendedStyle(window, style|StyleLayered); err != nil {
			return err
		}
	}

	alpha := byte(opacity * 255)
	ret, _, callErr := procSetLayeredWindowAttr.Call(
		uintptr(window),
		0,
		uintptr(alpha),
		LWA_ALPHA,
	)
	if ret == 0 {
		return callError("SetLayeredWindowAttributes", callErr)
	}
	return nil
}

// MoveWindowTo moves a window to the specified position, keeping its current size
func (w *WindowsFeatures) MoveWindowTo(window WindowHandle, x, y int) error {
	_, _, width, height, err := w.GetWindowRect(window)
	if err != nil {
		return err
	}
	return w.MoveAndResizeWindow(window, x, y, width, height)
}

// MoveAndResizeWindow moves and resizes a window
func (w *WindowsFeatures) MoveAndResizeWindow(window WindowHandle, x, y, width, height int) error {
	ret, _, err := procMoveWindow.Call(
		uintptr(window),
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		1, // bRepaint = TRUE
	)
	if ret == 0 {
		return callError("MoveWindow", err)
	}
	return nil
}

// GetWindowRect returns the actual window position and size
func (w *WindowsFeatures) GetWindowRect(window WindowHandle) (x, y, width, height int, err error) {
	var rect RECT
	ret, _, callErr := procGetWindowRect.Call(
		uintptr(window),
		uintptr(unsafe.Pointer(&rect)),
	)
	if ret == 0 {
		return 0, 0, 0, 0, callError("GetWindowRect", callErr)
	}
	return int(rect.Left), int(rect.Top),
		int(rect.Right - rect.Left), int(rect.Bottom - rect.Top), nil
}

func showWindow(window WindowHandle, cmd uintptr) error {
	// ShowWindow returns the previous visibility, not success.
	procShowWindow.Call(uintptr(window), cmd)
	return nil
}

// MinimizeWindow minimizes the window to the taskbar
func (w *WindowsFeatures) MinimizeWindow(window WindowHandle) error {
	return showWindow(window, SW_MINIMIZE)
}

// MaximizeWindow maximizes the window
func (w *WindowsFeatures) MaximizeWindow(window WindowHandle) error {
	return showWindow(window, SW_MAXIMIZE)
}

// RestoreWindow restores a minimized or maximized window
func (w *WindowsFeatures) RestoreWindow(window WindowHandle) error {
	return showWindow(window, SW_RESTORE)
}

// GetWorkArea returns the usable screen area (excluding taskbar)
func (w *WindowsFeatures) GetWorkArea() (x, y, width, height int) {
	var rect RECT
	procSystemParametersInfo.Call(
		SPI_GETWORKAREA,
		0,
		uintptr(unsafe.Pointer(&rect)),
		0,
	)
	return int(rect.Left), int(rect.Top), int(rect.Right - rect.Left), int(rect.Bottom - rect.Top)
}

// SupportsKey reports whether vk can be bound as a global hotkey here.
// RegisterHotKey takes virtual-key codes directly, so every key can.
func SupportsKey(vk uint) bool {
	return true
}

// GetWindowHandle extracts the native window handle by title
func GetWindowHandle(title string) (WindowHandle, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}

	hwnd, _, callErr := procFindWindow.Call(
		0,
		uintptr(unsafe.Pointer(titlePtr)),
	)
	if hwnd == 0 {
		return 0, callError("FindWindow", callErr)
	}

	return WindowHandle(hwnd), nil
}

// Global instance
var Features PlatformFeatures = NewWindowsFeatures()
