//go:build linux

package platform

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
)

// LinuxFeatures implements PlatformFeatures on X11. Window state goes through
// the xdotool, wmctrl and xprop tools; hotkeys go through
// golang.design/x/hotkey.
type LinuxFeatures struct {
	*hotkeyTable
	*styleTable
}

// NewLinuxFeatures creates a new Linux platform features instance
func NewLinuxFeatures() *LinuxFeatures {
	return &LinuxFeatures{
		hotkeyTable: newHotkeyTable(),
		styleTable:  newStyleTable(),
	}
}

// x11Tool runs an X11 helper binary and returns its stdout.
func x11Tool(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

func decimal(handle WindowHandle) string {
	return strconv.FormatUint(uint64(handle), 10)
}

func itoa(vals ...int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// wmState adds or removes _NET_WM_STATE properties.
func wmState(handle WindowHandle, add bool, props string) error {
	action := "remove"
	if add {
		action = "add"
	}
	id := fmt.Sprintf("0x%x", uintptr(handle))
	if _, err := x11Tool("wmctrl", "-i", "-r", id, "-b", action+","+props); err != nil {
		return fmt.Errorf("%w (is wmctrl installed?)", err)
	}
	return nil
}

// SetAlwaysOnTop toggles the "above" state.
func (l *LinuxFeatures) SetAlwaysOnTop(handle WindowHandle, onTop bool) error {
	return wmState(handle, onTop, "above")
}

// SetTransparency writes _NET_WM_WINDOW_OPACITY. A compositor is needed
// for it to show.
func (l *LinuxFeatures) SetTransparency(handle WindowHandle, opacity float64) error {
	alpha := uint32(opacity * 0xFFFFFFFF)
	_, err := x11Tool("xprop", "-id", decimal(handle),
		"-f", "_NET_WM_WINDOW_OPACITY", "32c",
		"-set", "_NET_WM_WINDOW_OPACITY", strconv.FormatUint(uint64(alpha), 10))
	if err != nil {
		log.Printf("SetTransparency: %v", err)
		return fmt.Errorf("transparency not available (install xprop/x11-utils)")
	}
	return nil
}

// MoveWindowTo moves the window's top-left corner.
func (l *LinuxFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	_, err := x11Tool("xdotool", append([]string{"windowmove", decimal(handle)}, itoa(x, y)...)...)
	return err
}

// GetWindowRect reads the geometry xdotool reports.
func (l *LinuxFeatures) GetWindowRect(handle WindowHandle) (x, y, width, height int, err error) {
	out, err := x11Tool("xdotool", "getwindowgeometry", "--shell", decimal(handle))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	vars := parseShellVars(out)
	return vars["X"], vars["Y"], vars["WIDTH"], vars["HEIGHT"], nil
}

// MoveAndResizeWindow sets position then size, waiting for each to apply.
func (l *LinuxFeatures) MoveAndResizeWindow(handle WindowHandle, x, y, width, height int) error {
	id := decimal(handle)
	if _, err := x11Tool("xdotool", append([]string{"windowmove", "--sync", id}, itoa(x, y)...)...); err != nil {
		return err
	}
	_, err := x11Tool("xdotool", append([]string{"windowsize", "--sync", id}, itoa(width, height)...)...)
	return err
}

// MinimizeWindow iconifies the window.
func (l *LinuxFeatures) MinimizeWindow(handle WindowHandle) error {
	_, err := x11Tool("xdotool", "windowminimize", decimal(handle))
	return err
}

// MaximizeWindow asks the window manager to maximize both axes.
func (l *LinuxFeatures) MaximizeWindow(handle WindowHandle) error {
	return wmState(handle, true, "maximized_vert,maximized_horz")
}

// RestoreWindow clears the maximized state.
func (l *LinuxFeatures) RestoreWindow(handle WindowHandle) error {
	return wmState(handle, false, "maximized_vert,maximized_horz")
}

// GetWorkArea returns the first _NET_WORKAREA rectangle, or the whole
// screen when the window manager does not publish one.
func (l *LinuxFeatures) GetWorkArea() (x, y, width, height int) {
	if out, err := x11Tool("xprop", "-root", "_NET_WORKAREA"); err == nil {
		if r, ok := parseWorkArea(out); ok {
			return r[0], r[1], r[2], r[3]
		}
	}
	w, h := 1920, 1080
	if out, err := x11Tool("xdpyinfo"); err == nil {
		if dw, dh, ok := parseDimensions(out); ok {
			w, h = dw, dh
		}
	}
	return 0, 0, w, h
}

// GetWindowHandle returns the first window whose name matches title.
func GetWindowHandle(title string) (WindowHandle, error) {
	out, err := x11Tool("xdotool", "search", "--name", title)
	if err != nil {
		return 0, err
	}
	first, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	if first == "" {
		return 0, fmt.Errorf("window not found: %s", title)
	}
	id, err := strconv.ParseUint(first, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", first, err)
	}
	return WindowHandle(id), nil
}

// parseShellVars reads KEY=int lines as printed by xdotool --shell.
func parseShellVars(out string) map[string]int {
	vars := make(map[string]int)
	for _, line := range strings.Split(out, "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(val); err == nil {
			vars[key] = n
		}
	}
	return vars
}

// parseWorkArea reads "_NET_WORKAREA(CARDINAL) = 0, 27, 1920, 1053, ...".
func parseWorkArea(out string) ([4]int, bool) {
	var r [4]int
	_, list, ok := strings.Cut(out, "=")
	if !ok {
		return r, false
	}
	fields := strings.Split(list, ",")
	if len(fields) < 4 {
		return r, false
	}
	for i := range r {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return r, false
		}
		r[i] = n
	}
	return r, r[2] > 0 && r[3] > 0
}

// parseDimensions finds "dimensions:    2560x1440 pixels" in xdpyinfo output.
func parseDimensions(out string) (width, height int, ok bool) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "dimensions:" {
			continue
		}
		ws, hs, found := strings.Cut(fields[1], "x")
		if !found {
			return 0, 0, false
		}
		w, werr := strconv.Atoi(ws)
		h, herr := strconv.Atoi(hs)
		if werr != nil || herr != nil || w <= 0 || h <= 0 {
			return 0, 0, false
		}
		return w, h, true
	}
	return 0, 0, false
}

// Features is the process-wide platform implementation.
var Features PlatformFeatures = NewLinuxFeatures()
