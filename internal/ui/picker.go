package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// imageExtensions are the formats the picker offers.
var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// ImagePicker asks the user for an image file. The overlay is usually too
// small to host a file dialog, so the picker opens its own window.
type ImagePicker struct {
	app fyne.App
}

// NewImagePicker creates a picker
func NewImagePicker(app fyne.App) *ImagePicker {
	return &ImagePicker{app: app}
}

// Pick shows the file dialog. onPicked receives the chosen path; it is not
// called when the user cancels.
func (p *ImagePicker) Pick(onPicked func(path string)) {
	window := p.app.NewWindow("Open Image")
	window.Resize(fyne.NewSize(720, 520))

	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			// The dialog's window closes with it, so there is nowhere to show this.
			log.Printf("Failed to open image: %v", err)
			return
		}
		if r == nil {
			return // cancelled
		}
		path := r.URI().Path()
		if cerr := r.Close(); cerr != nil {
			log.Printf("Failed to close %s: %v", path, cerr)
		}
		onPicked(path)
	}, window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.SetOnClosed(window.Close)
	d.Resize(fyne.NewSize(700, 500))

	window.Show()
	d.Show()
}
