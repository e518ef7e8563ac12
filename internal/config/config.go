package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Config holds all application settings. The hotkey and the image are
// deliberately absent: every launch starts from the defaults.
type Config struct {
	OverlayOpacity float64 `json:"overlay_opacity"`
	AlwaysOnTop    bool    `json:"always_on_top"`
	StartSizeRatio float64 `json:"start_size_ratio"` // fraction of the work area
	TrayEnabled    bool    `json:"tray_enabled"`
}

const (
	minOpacity   = 0.1
	minSizeRatio = 0.2
)

var (
	instance   *Config
	once       sync.Once
	mu         sync.RWMutex
	configPath string
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		OverlayOpacity: 1.0,
		AlwaysOnTop:    true,
		StartSizeRatio: 0.5,
		TrayEnabled:    true,
	}
}

// Get returns the singleton config instance
func Get() *Config {
	once.Do(func() {
		instance = Default()
		if err := instance.Load(); err != nil {
			log.Printf("Failed to load config, using defaults: %v", err)
		}
	})
	return instance
}

// SetPath overrides the config file location. It must be called before the
// first Load or Save.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configPath = path
}

// getConfigPath returns the path to the config file.
// Uses platform-appropriate directories:
//   - Windows: %APPDATA%\FloatImage\config.json
//   - macOS:   ~/Library/Application Support/FloatImage/config.json
//   - Linux:   ~/.config/floatimage/config.json (XDG_CONFIG_HOME)
func getConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}

	var dir string

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		dir = filepath.Join(appData, "FloatImage")

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, "Library", "Application Support", "FloatImage")

	default: // linux and others
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			configHome = filepath.Join(home, ".config")
		}
		dir = filepath.Join(configHome, "floatimage")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	configPath = filepath.Join(dir, "config.json")
	return configPath, nil
}

// Path returns the config file location.
func Path() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	return getConfigPath()
}

// Load reads the config from disk
func (c *Config) Load() error {
	mu.Lock()
	defer mu.Unlock()

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Use defaults
		}
		return err
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	c.Normalize()
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	mu.Lock()
	defer mu.Unlock()

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	c.Normalize()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Normalize pulls out-of-range values back to something usable.
func (c *Config) Normalize() {
	switch {
	case c.OverlayOpacity <= 0 || c.OverlayOpacity > 1:
		c.OverlayOpacity = 1.0
	case c.OverlayOpacity < minOpacity:
		c.OverlayOpacity = minOpacity
	}
	switch {
	case c.StartSizeRatio <= 0:
		c.StartSizeRatio = 0.5
	case c.StartSizeRatio < minSizeRatio:
		c.StartSizeRatio = minSizeRatio
	case c.StartSizeRatio > 1:
		c.StartSizeRatio = 1
	}
}

// Apply copies the user-editable values of other into c.
func (c *Config) Apply(other *Config) {
	mu.Lock()
	defer mu.Unlock()
	*c = *other
}

// Watch reloads the config file whenever it changes on disk and passes the
// fresh copy to onChange. onChange runs on the watcher goroutine. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, onChange func(*Config)) error {
	path, err := Path()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fresh := Default()
			if err := fresh.Load(); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			onChange(fresh)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}
