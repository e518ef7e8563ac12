package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"floatimage/internal/config"
)

// SettingsDialog manages the settings window
type SettingsDialog struct {
	app             fyne.App
	config          *config.Config
	onConfirmHotkey func(text string) (string, error)
	onSave          func()

	window fyne.Window
	entry  *HotkeyEntry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(app fyne.App, cfg *config.Config) *SettingsDialog {
	return &SettingsDialog{
		app:    app,
		config: cfg,
	}
}

// SetCallbacks sets the callback functions. onConfirmHotkey receives the
// captured text and returns the hotkey that is active afterwards.
func (s *SettingsDialog) SetCallbacks(
	onConfirmHotkey func(text string) (string, error),
	onSave func(),
) {
	s.onConfirmHotkey = onConfirmHotkey
	s.onSave = onSave
}

// Show displays the settings window seeded with the active hotkey. A
// second call while it is open brings the existing window forward.
func (s *SettingsDialog) Show(currentHotkey string) {
	if s.window != nil {
		s.entry.SetHotkey(currentHotkey)
		s.window.RequestFocus()
		return
	}

	window := s.app.NewWindow("FloatImage Settings")
	window.Resize(fyne.NewSize(360, 260))
	s.window = window
	window.SetOnClosed(func() {
		s.window = nil
		s.entry = nil
	})

	// --- Hotkey ---
	hotkeyLabel := widget.NewLabel("Lock hotkey")
	hotkeyLabel.TextStyle = fyne.TextStyle{Bold: true}

	s.entry = NewHotkeyEntry(currentHotkey)
	hint := widget.NewLabel("Hold Ctrl, Shift or Alt and press a key")

	hotkeySection := container.NewVBox(hotkeyLabel, s.entry, hint)

	// --- Display ---
	displayLabel := widget.NewLabel("Display")
	displayLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Opacity slider with live value label
	opacityBinding := binding.NewFloat()
	opacityBinding.Set(s.config.OverlayOpacity)
	opacitySlider := widget.NewSliderWithData(0.1, 1.0, opacityBinding)
	opacitySlider.Step = 0.05
	opacityValueLabel := widget.NewLabel(fmt.Sprintf("%.0f%%", s.config.OverlayOpacity*100))
	opacityBinding.AddListener(binding.NewDataListener(func() {
		v, _ := opacityBinding.Get()
		opacityValueLabel.SetText(fmt.Sprintf("%.0f%%", v*100))
	}))

	onTopCheck := widget.NewCheck("Always on top", nil)
	onTopCheck.SetChecked(s.config.AlwaysOnTop)

	displaySection := container.NewVBox(
		displayLabel,
		container.NewHBox(widget.NewLabel("Opacity"), layout.NewSpacer(), opacityValueLabel),
		opacitySlider,
		onTopCheck,
	)

	// --- Buttons ---
	okBtn := widget.NewButton("OK", func() {
		entry := s.entry
		if s.onConfirmHotkey != nil {
			active, err := s.onConfirmHotkey(entry.Text)
			if err != nil {
				entry.SetHotkey(active)
				dialog.ShowError(err, window)
				return
			}
			entry.SetHotkey(active)
		}

		opacity, _ := opacityBinding.Get()
		s.config.OverlayOpacity = opacity
		s.config.AlwaysOnTop = onTopCheck.Checked
		if err := s.config.Save(); err != nil {
			dialog.ShowError(err, window)
			return
		}
		if s.onSave != nil {
			s.onSave()
		}
		window.Close()
	})
	okBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButton("Cancel", func() {
		window.Close()
	})

	buttons := container.NewHBox(layout.NewSpacer(), okBtn, cancelBtn, layout.NewSpacer())

	// --- Layout ---
	content := container.NewVBox(
		hotkeySection,
		widget.NewSeparator(),
		displaySection,
		widget.NewSeparator(),
		buttons,
	)

	window.SetContent(container.NewPadded(content))
	window.Show()
	window.Canvas().Focus(s.entry)
}
