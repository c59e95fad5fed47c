package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.json"

// Prefs holds viewer preferences. Vertex colors are never persisted; every run starts from opaque black.
type Prefs struct {
	CoordsFile  string  `json:"coords_file" yaml:"coords_file"`
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	Background  string  `json:"background" yaml:"background"`
	ShowHUD     bool    `json:"show_hud" yaml:"show_hud"`
	ShowFPS     bool    `json:"show_fps" yaml:"show_fps"`
	ShowAxes    bool    `json:"show_axes" yaml:"show_axes"`
	ColorStep   float32 `json:"color_step" yaml:"color_step"`
	Sensitivity float32 `json:"sensitivity" yaml:"sensitivity"`
}

// Default returns the stock preferences: 1280x768 beige window, HUD on, FPS and axes off.
func Default() Prefs {
	return Prefs{
		CoordsFile:  "triangle.txt",
		Width:       1280,
		Height:      768,
		Background:  "#f5f5dc",
		ShowHUD:     true,
		ShowFPS:     false,
		ShowAxes:    false,
		ColorStep:   0.05,
		Sensitivity: 0.005,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads preferences from path, as YAML for .yaml/.yml and JSON otherwise. Fields missing from the
// file keep their defaults. A missing file returns Default() and no error; an unreadable or invalid one
// returns Default() together with the error so the caller can report it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	p := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path in the format its extension selects, creating the directory if needed.
func Save(path string, p Prefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "\t")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the viewer cannot run with.
func (p Prefs) Validate() error {
	if p.CoordsFile == "" {
		return fmt.Errorf("coords_file is empty")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", p.Width, p.Height)
	}
	if p.ColorStep <= 0 || p.ColorStep > 1 {
		return fmt.Errorf("color_step %v outside (0, 1]", p.ColorStep)
	}
	if p.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be positive")
	}
	if _, err := colorful.Hex(p.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// BackgroundRGB returns the background as 8-bit channels. Invalid hex falls back to the default beige.
func (p Prefs) BackgroundRGB() (r, g, b uint8) {
	c, err := colorful.Hex(p.Background)
	if err != nil {
		c, _ = colorful.Hex(Default().Background)
	}
	return c.RGB255()
}

// Environment variables that override file preferences.
const (
	EnvCoordsFile = "TRIANGLE_COORDS_FILE"
	EnvShowHUD    = "TRIANGLE_SHOW_HUD"
	EnvShowFPS    = "TRIANGLE_SHOW_FPS"
	EnvShowAxes   = "TRIANGLE_SHOW_AXES"
)

// ApplyEnv overrides p from the environment. lookup is usually os.LookupEnv.
// Boolean values that do not parse are reported and leave the field unchanged.
func ApplyEnv(p *Prefs, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCoordsFile); ok && v != "" {
		p.CoordsFile = v
	}
	var errs []string
	for _, b := range []struct {
		key string
		dst *bool
	}{
		{EnvShowHUD, &p.ShowHUD},
		{EnvShowFPS, &p.ShowFPS},
		{EnvShowAxes, &p.ShowAxes},
	} {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q: not a boolean", b.key, v))
			continue
		}
		*b.dst = parsed
	}
	if len(errs) > 0 {
		return fmt.Errorf("environment: %s", strings.Join(errs, "; "))
	}
	return nil
}
