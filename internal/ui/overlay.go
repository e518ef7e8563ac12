package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"floatimage/internal/config"
	"floatimage/internal/platform"
)

const (
	overlayTitle = "FloatImage Overlay"

	// Smallest size the grip can shrink the window to.
	minOverlayWidth  = 160
	minOverlayHeight = 120
)

// OverlayActions are the commands the overlay's buttons and context menu
// invoke. Each entry point of a command calls the same function.
type OverlayActions struct {
	ToggleLock        func()
	OpenImage         func()
	OpenSettings      func()
	Minimize          func()
	MaximizeOrRestore func()
	Close             func()
}

// OverlayWindow is the borderless image window. It implements the chrome
// side of the interaction mode: control visibility and resize policy.
type OverlayWindow struct {
	window   fyne.Window
	app      fyne.App
	config   *config.Config
	platform platform.PlatformFeatures
	actions  OverlayActions

	background  *canvas.Rectangle
	placeholder *canvas.Text
	imageHolder *fyne.Container
	controls    *fyne.Container
	grip        *ResizeGrip
	maximizeBtn *widget.Button

	menu         *fyne.Menu
	lockItem     *fyne.MenuItem
	maximizeItem *fyne.MenuItem

	// State
	imagePath    string
	maximized    bool
	savedRect    [4]int // x, y, w, h before maximize
	hasSavedRect bool
	initialized  bool
	windowHandle platform.WindowHandle

	// Drag and resize tracking, reset on DragEnd
	dragging   bool
	dragStartX int
	dragStartY int
	dragDX     float32
	dragDY     float32
	resizing   bool
	resizeTo   fyne.Size
}

// NewOverlayWindow creates a new overlay window
func NewOverlayWindow(app fyne.App, features platform.PlatformFeatures, cfg *config.Config) *OverlayWindow {
	return &OverlayWindow{
		app:      app,
		config:   cfg,
		platform: features,
	}
}

// SetCallbacks sets the command callbacks. Call before Setup.
func (o *OverlayWindow) SetCallbacks(actions OverlayActions) {
	o.actions = actions
}

// Setup creates the window and its content. It does not show it.
func (o *OverlayWindow) Setup() error {
	if drv, ok := o.app.Driver().(desktop.Driver); ok {
		o.window = drv.CreateSplashWindow()
	} else {
		o.window = o.app.NewWindow(overlayTitle)
	}
	// The title is how the native handle is found once shown.
	o.window.SetTitle(overlayTitle)
	o.window.SetPadded(false)
	o.window.SetFixedSize(false)

	o.background = canvas.NewRectangle(colorBg)
	o.placeholder = placeholderText("Right-click or use the folder button to open an image")
	o.imageHolder = container.NewStack()

	o.buildControls()
	o.buildMenu()

	o.grip = NewResizeGrip()
	o.grip.OnDragged = o.resizeBy
	o.grip.OnDragEnd = func() { o.resizing = false }

	chrome := container.NewBorder(
		o.controls,
		container.NewHBox(layout.NewSpacer(), o.grip),
		nil, nil,
	)
	content := container.NewStack(
		o.background,
		container.NewCenter(o.placeholder),
		o.imageHolder,
		newContextArea(o.showContextMenu),
		chrome,
	)
	o.window.SetContent(content)
	o.window.Resize(fyne.NewSize(640, 400))
	o.window.CenterOnScreen()

	o.initialized = true
	return nil
}

func (o *OverlayWindow) buildControls() {
	drag := NewDragHandle()
	drag.OnDragged = o.moveBy
	drag.OnDragEnd = func() { o.dragging = false }

	o.maximizeBtn = controlButton(theme.ViewFullScreenIcon(), o.actions.MaximizeOrRestore)

	row := container.NewHBox(
		drag,
		layout.NewSpacer(),
		controlButton(theme.FolderOpenIcon(), o.actions.OpenImage),
		controlButton(theme.SettingsIcon(), o.actions.OpenSettings),
		controlButton(theme.VisibilityOffIcon(), o.actions.ToggleLock),
		controlButton(theme.ContentRemoveIcon(), o.actions.Minimize),
		o.maximizeBtn,
		controlButton(theme.CancelIcon(), o.actions.Close),
	)
	o.controls = container.NewStack(canvas.NewRectangle(colorBar), row)
}

func (o *OverlayWindow) buildMenu() {
	o.lockItem = fyne.NewMenuItem("Lock", o.actions.ToggleLock)
	o.maximizeItem = fyne.NewMenuItem("Maximize", o.actions.MaximizeOrRestore)
	o.menu = fyne.NewMenu("",
		fyne.NewMenuItem("Open Image...", o.actions.OpenImage),
		fyne.NewMenuItem("Settings...", o.actions.OpenSettings),
		o.lockItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Minimize", o.actions.Minimize),
		o.maximizeItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Close", o.actions.Close),
	)
}

func (o *OverlayWindow) showContextMenu(pos fyne.Position) {
	widget.ShowPopUpMenuAtPosition(o.menu, o.window.Canvas(), pos)
}

// Show displays the overlay. onReady runs on the UI thread once the native
// handle is known (zero if it could not be found).
func (o *OverlayWindow) Show(onReady func(platform.WindowHandle)) {
	if !o.initialized {
		return
	}
	o.window.Show()

	// The native window only exists after the first frame.
	go func() {
		time.Sleep(200 * time.Millisecond)
		fyne.Do(func() {
			o.applyWindowFeatures()
			o.placeInitial()
			if onReady != nil {
				onReady(o.windowHandle)
			}
		})
	}()
}

// applyWindowFeatures looks up the native handle and applies the
// always-on-top and opacity settings.
func (o *OverlayWindow) applyWindowFeatures() {
	handle, err := platform.GetWindowHandle(overlayTitle)
	if err != nil {
		log.Printf("Failed to get window handle: %v", err)
		return
	}
	o.windowHandle = handle
	o.ApplyConfig()
	log.Printf("Window features applied (handle: %v)", handle)
}

// ApplyConfig reapplies the window settings from the current config.
func (o *OverlayWindow) ApplyConfig() {
	if o.windowHandle == 0 {
		return
	}
	if err := o.platform.SetAlwaysOnTop(o.windowHandle, o.config.AlwaysOnTop); err != nil {
		log.Printf("Failed to set always on top: %v", err)
	}
	if err := o.platform.SetTransparency(o.windowHandle, o.config.OverlayOpacity); err != nil {
		log.Printf("Failed to set transparency: %v", err)
	}
}

// placeInitial sizes the window to a fraction of the work area and centers it.
func (o *OverlayWindow) placeInitial() {
	if o.windowHandle == 0 {
		return
	}
	workX, workY, workW, workH := o.platform.GetWorkArea()
	if workW <= 0 || workH <= 0 {
		return
	}
	w := int(float64(workW) * o.config.StartSizeRatio)
	h := int(float64(workH) * o.config.StartSizeRatio)
	x := workX + (workW-w)/2
	y := workY + (workH-h)/2
	if err := o.platform.MoveAndResizeWindow(o.windowHandle, x, y, w, h); err != nil {
		log.Printf("Failed to place window: %v", err)
	}
}

// moveBy drags the native window. Fyne deltas are in canvas units.
func (o *OverlayWindow) moveBy(delta fyne.Delta) {
	if o.windowHandle == 0 {
		return
	}
	if !o.dragging {
		x, y, _, _, err := o.platform.GetWindowRect(o.windowHandle)
		if err != nil {
			log.Printf("Failed to read window position: %v", err)
			return
		}
		o.dragging = true
		o.dragStartX, o.dragStartY = x, y
		o.dragDX, o.dragDY = 0, 0
	}
	scale := o.window.Canvas().Scale()
	o.dragDX += delta.DX * scale
	o.dragDY += delta.DY * scale
	x := o.dragStartX + int(o.dragDX)
	y := o.dragStartY + int(o.dragDY)
	if err := o.platform.MoveWindowTo(o.windowHandle, x, y); err != nil {
		log.Printf("Failed to move window: %v", err)
	}
}

// resizeBy grows or shrinks the window from the bottom-right corner.
func (o *OverlayWindow) resizeBy(delta fyne.Delta) {
	if !o.grip.Visible() {
		return
	}
	if !o.resizing {
		o.resizing = true
		o.resizeTo = o.window.Canvas().Size()
	}
	o.resizeTo = fyne.NewSize(
		fyne.Max(o.resizeTo.Width+delta.DX, minOverlayWidth),
		fyne.Max(o.resizeTo.Height+delta.DY, minOverlayHeight),
	)
	o.window.Resize(o.resizeTo)
}

// HasImage reports whether an image has been loaded.
func (o *OverlayWindow) HasImage() bool {
	return o.imagePath != ""
}

// SetControlsVisible shows or collapses the control bar.
func (o *OverlayWindow) SetControlsVisible(visible bool) {
	if visible {
		o.controls.Show()
		o.lockItem.Label = "Lock"
	} else {
		o.controls.Hide()
		o.lockItem.Label = "Unlock"
	}
	o.menu.Refresh()
}

// SetResizable switches between a resizable window with a grip and a fixed
// one.
func (o *OverlayWindow) SetResizable(resizable bool) {
	o.window.SetFixedSize(!resizable)
	if resizable {
		o.grip.Show()
	} else {
		o.grip.Hide()
		o.resizing = false
	}
}

// SetLoadedImage displays the image at path, scaled to fit.
func (o *OverlayWindow) SetLoadedImage(path string) {
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	o.imageHolder.Objects = []fyne.CanvasObject{img}
	o.imageHolder.Refresh()
	o.placeholder.Hide()
	o.background.Hide()
	o.imagePath = path
	log.Printf("Loaded image: %s", path)
}

// ImagePath returns the path of the loaded image, or "".
func (o *OverlayWindow) ImagePath() string {
	return o.imagePath
}

// SetMaximizeIconState swaps the maximize button icon and menu label.
func (o *OverlayWindow) SetMaximizeIconState(isMaximized bool) {
	if isMaximized {
		o.maximizeBtn.SetIcon(theme.ViewRestoreIcon())
		o.maximizeItem.Label = "Restore"
	} else {
		o.maximizeBtn.SetIcon(theme.ViewFullScreenIcon())
		o.maximizeItem.Label = "Maximize"
	}
	o.menu.Refresh()
}

// IsMaximized reports the window state.
func (o *OverlayWindow) IsMaximized() bool {
	return o.maximized
}

// Minimize minimizes the native window.
func (o *OverlayWindow) Minimize() {
	if o.windowHandle == 0 {
		return
	}
	if err := o.platform.MinimizeWindow(o.windowHandle); err != nil {
		log.Printf("Failed to minimize window: %v", err)
	}
}

// MaximizeOrRestore toggles between the maximized and normal window state.
func (o *OverlayWindow) MaximizeOrRestore() {
	if o.windowHandle == 0 {
		return
	}
	if o.maximized {
		if err := o.platform.RestoreWindow(o.windowHandle); err != nil {
			log.Printf("Failed to restore window: %v", err)
			return
		}
		if o.hasSavedRect {
			r := o.savedRect
			if err := o.platform.MoveAndResizeWindow(o.windowHandle, r[0], r[1], r[2], r[3]); err != nil {
				log.Printf("Failed to restore window frame: %v", err)
			}
		}
		o.maximized = false
	} else {
		if x, y, w, h, err := o.platform.GetWindowRect(o.windowHandle); err == nil {
			o.savedRect = [4]int{x, y, w, h}
			o.hasSavedRect = true
		}
		if err := o.platform.MaximizeWindow(o.windowHandle); err != nil {
			log.Printf("Failed to maximize window: %v", err)
			return
		}
		o.maximized = true
	}
	o.SetMaximizeIconState(o.maximized)
}

// SetOnClosed sets the function run when the window is closed.
func (o *OverlayWindow) SetOnClosed(fn func()) {
	o.window.SetOnClosed(fn)
}

// GetWindow returns the underlying Fyne window
func (o *OverlayWindow) GetWindow() fyne.Window {
	return o.window
}
