package native

// HotkeysNeedWindow reports whether global hotkeys are delivered through a
// window. RegisterHotKey with a NULL window posts WM_HOTKEY to the thread
// queue, which the overlay never reads.
const HotkeysNeedWindow = true
