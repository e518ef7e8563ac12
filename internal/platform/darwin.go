//go:build darwin

package platform

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
)

// DarwinFeatures implements PlatformFeatures on macOS. Without cgo the
// NSWindow is out of reach, so geometry goes through System Events against
// the frontmost process, which is the overlay while the user drives it.
type DarwinFeatures struct {
	*hotkeyTable
	*styleTable
}

// NewDarwinFeatures creates a new macOS platform features instance
func NewDarwinFeatures() *DarwinFeatures {
	return &DarwinFeatures{
		hotkeyTable: newHotkeyTable(),
		styleTable:  newStyleTable(),
	}
}

// frontWindow wraps body in a System Events block addressing the frontmost
// process's first window.
func frontWindow(body string) string {
	return "tell application \"System Events\"\n" +
		"tell (first process whose frontmost is true)\n" +
		body + "\nend tell\nend tell"
}

func osascript(what, script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("AppleScript %s failed: %w", what, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// parseInts splits an AppleScript list like "0, 25, 1440, 900".
func parseInts(s, sep string, n int) ([]int, bool) {
	fields := strings.Split(s, sep)
	if len(fields) < n {
		return nil, false
	}
	vals := make([]int, n)
	for i := range vals {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}
	return vals, true
}

// SetAlwaysOnTop needs the NSWindow level, which requires cgo.
func (d *DarwinFeatures) SetAlwaysOnTop(handle WindowHandle, onTop bool) error {
	log.Printf("SetAlwaysOnTop(%v): not supported without cgo on macOS", onTop)
	return nil
}

// SetTransparency needs NSWindow alphaValue, which requires cgo.
func (d *DarwinFeatures) SetTransparency(handle WindowHandle, opacity float64) error {
	log.Printf("SetTransparency(%.0f%%): not supported without cgo on macOS", opacity*100)
	return nil
}

// MoveWindowTo sets the window position.
func (d *DarwinFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	_, err := osascript("move", frontWindow(fmt.Sprintf("set position of window 1 to {%d, %d}", x, y)))
	return err
}

// GetWindowRect reads position and size of the front window.
func (d *DarwinFeatures) GetWindowRect(handle WindowHandle) (x, y, width, height int, err error) {
	out, err := osascript("bounds", frontWindow(
		"set p to position of window 1\n"+
			"set s to size of window 1\n"+
			"return (item 1 of p as text) & \",\" & (item 2 of p as text) & \",\" & (item 1 of s as text) & \",\" & (item 2 of s as text)"))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	v, ok := parseInts(out, ",", 4)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("unexpected window bounds %q", out)
	}
	return v[0], v[1], v[2], v[3], nil
}

// MoveAndResizeWindow sets position and size in one script.
func (d *DarwinFeatures) MoveAndResizeWindow(handle WindowHandle, x, y, width, height int) error {
	_, err := osascript("move/resize", frontWindow(fmt.Sprintf(
		"set position of window 1 to {%d, %d}\nset size of window 1 to {%d, %d}", x, y, width, height)))
	return err
}

// MinimizeWindow miniaturizes the front window.
func (d *DarwinFeatures) MinimizeWindow(handle WindowHandle) error {
	_, err := osascript("minimize", frontWindow(`set value of attribute "AXMinimized" of window 1 to true`))
	return err
}

// MaximizeWindow fills the work area. macOS has no maximized state to
// toggle, so the overlay restores its saved frame itself.
func (d *DarwinFeatures) MaximizeWindow(handle WindowHandle) error {
	x, y, w, h := d.GetWorkArea()
	return d.MoveAndResizeWindow(handle, x, y, w, h)
}

// RestoreWindow does nothing; see MaximizeWindow.
func (d *DarwinFeatures) RestoreWindow(handle WindowHandle) error {
	return nil
}

// GetWorkArea returns the desktop bounds Finder reports, or the main
// display below the menu bar.
func (d *DarwinFeatures) GetWorkArea() (x, y, width, height int) {
	out, err := osascript("desktop bounds", "tell application \"Finder\" to get bounds of window of desktop")
	if err == nil {
		if v, ok := parseInts(out, ",", 4); ok {
			return v[0], v[1], v[2] - v[0], v[3] - v[1]
		}
	}
	const menuBar = 25
	w, h := mainDisplaySize()
	return 0, menuBar, w, h - menuBar
}

// mainDisplaySize reads "Resolution: 2560 x 1440" from system_profiler.
func mainDisplaySize() (width, height int) {
	out, err := exec.Command("system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return 1920, 1080
	}
	for _, line := range strings.Split(string(out), "\n") {
		_, res, ok := strings.Cut(line, "Resolution:")
		if !ok {
			continue
		}
		fields := strings.Fields(res)
		if len(fields) >= 3 {
			w, werr := strconv.Atoi(fields[0])
			h, herr := strconv.Atoi(fields[2])
			if werr == nil && herr == nil && w > 0 && h > 0 {
				return w, h
			}
		}
	}
	return 1920, 1080
}

// GetWindowHandle cannot resolve native windows without cgo. Handles only
// key the hotkey and style tables here, so a fixed non-zero handle serves.
func GetWindowHandle(title string) (WindowHandle, error) {
	log.Printf("GetWindowHandle: using synthetic handle on macOS (title=%s)", title)
	return WindowHandle(1), nil
}

// Features is the process-wide platform implementation.
var Features PlatformFeatures = NewDarwinFeatures()
