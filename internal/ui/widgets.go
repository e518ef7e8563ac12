package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Overlay color palette
var (
	colorBg          = color.RGBA{32, 33, 35, 255}    // Placeholder background
	colorBar         = color.RGBA{32, 33, 35, 200}    // Control bar
	colorGray        = color.RGBA{156, 163, 175, 255} // Placeholder text
	colorGrip        = color.RGBA{180, 186, 194, 255} // Resize grip lines
	colorTransparent = color.Transparent
)

// DragHandle is a small icon that moves the window when dragged.
type DragHandle struct {
	widget.BaseWidget
	OnDragged func(delta fyne.Delta)
	OnDragEnd func()
}

// NewDragHandle creates a drag handle
func NewDragHandle() *DragHandle {
	d := &DragHandle{}
	d.ExtendBaseWidget(d)
	return d
}

func (d *DragHandle) CreateRenderer() fyne.WidgetRenderer {
	icon := widget.NewIcon(theme.MenuIcon())
	return widget.NewSimpleRenderer(icon)
}

// Dragged implements fyne.Draggable
func (d *DragHandle) Dragged(ev *fyne.DragEvent) {
	if d.OnDragged != nil {
		d.OnDragged(ev.Dragged)
	}
}

// DragEnd implements fyne.Draggable
func (d *DragHandle) DragEnd() {
	if d.OnDragEnd != nil {
		d.OnDragEnd()
	}
}

// Cursor shows the move cursor over the handle
func (d *DragHandle) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// ResizeGrip is the bottom-right corner grip shown while the overlay is
// resizable.
type ResizeGrip struct {
	widget.BaseWidget
	OnDragged func(delta fyne.Delta)
	OnDragEnd func()
}

// NewResizeGrip creates a resize grip
func NewResizeGrip() *ResizeGrip {
	g := &ResizeGrip{}
	g.ExtendBaseWidget(g)
	return g
}

func (g *ResizeGrip) CreateRenderer() fyne.WidgetRenderer {
	r := &resizeGripRenderer{}
	for i := 0; i < 3; i++ {
		line := canvas.NewLine(colorGrip)
		line.StrokeWidth = 1.5
		r.lines = append(r.lines, line)
	}
	return r
}

// Dragged implements fyne.Draggable
func (g *ResizeGrip) Dragged(ev *fyne.DragEvent) {
	if g.OnDragged != nil {
		g.OnDragged(ev.Dragged)
	}
}

// DragEnd implements fyne.Draggable
func (g *ResizeGrip) DragEnd() {
	if g.OnDragEnd != nil {
		g.OnDragEnd()
	}
}

// Cursor shows the resize cursor over the grip
func (g *ResizeGrip) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

type resizeGripRenderer struct {
	lines []*canvas.Line
}

// Layout draws three diagonal strokes hugging the bottom-right corner.
func (r *resizeGripRenderer) Layout(size fyne.Size) {
	step := size.Width / float32(len(r.lines)+1)
	for i, line := range r.lines {
		off := step * float32(i+1)
		line.Position1 = fyne.NewPos(size.Width-off, size.Height)
		line.Position2 = fyne.NewPos(size.Width, size.Height-off)
	}
}

func (r *resizeGripRenderer) MinSize() fyne.Size {
	return fyne.NewSize(16, 16)
}

func (r *resizeGripRenderer) Refresh() {
	for _, line := range r.lines {
		line.Refresh()
	}
}

func (r *resizeGripRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, len(r.lines))
	for i, line := range r.lines {
		objs[i] = line
	}
	return objs
}

func (r *resizeGripRenderer) Destroy() {}

// contextArea fills the window behind the controls and opens the context
// menu on a secondary tap.
type contextArea struct {
	widget.BaseWidget
	onSecondaryTap func(pos fyne.Position)
}

func newContextArea(onSecondaryTap func(pos fyne.Position)) *contextArea {
	c := &contextArea{onSecondaryTap: onSecondaryTap}
	c.ExtendBaseWidget(c)
	return c
}

func (c *contextArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(colorTransparent))
}

// TappedSecondary implements fyne.SecondaryTappable
func (c *contextArea) TappedSecondary(ev *fyne.PointEvent) {
	if c.onSecondaryTap != nil {
		c.onSecondaryTap(ev.AbsolutePosition)
	}
}

// controlButton is a flat icon button for the overlay control bar.
func controlButton(icon fyne.Resource, onTapped func()) *widget.Button {
	b := widget.NewButtonWithIcon("", icon, onTapped)
	b.Importance = widget.LowImportance
	return b
}

// placeholderText is shown until an image is loaded.
func placeholderText(text string) *canvas.Text {
	t := canvas.NewText(text, colorGray)
	t.TextSize = 13
	t.Alignment = fyne.TextAlignCenter
	return t
}
