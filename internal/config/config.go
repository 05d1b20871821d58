// Package config loads the demo's YAML settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"render-demo/core"
)

// Drawable kinds understood by the demo.
const (
	KindSphere   = "sphere"
	KindCylinder = "cylinder"
	KindQuad     = "quad"
	KindSkybox   = "skybox"
	KindDepth    = "depth"
	KindModel    = "model"
)

// Config is the top-level demo configuration.
type Config struct {
	Window     core.WindowConfig `yaml:"window"`
	FrameRate  int               `yaml:"frame_rate"`
	Wireframe  bool              `yaml:"wireframe"`
	Background [3]float32        `yaml:"background"`
	Camera     Camera            `yaml:"camera"`
	Drawables  []Drawable        `yaml:"drawables"`
	LogLevel   string            `yaml:"log_level"`
}

// Camera places the scene camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`
	FOV    float32    `yaml:"fov"`
}

// Drawable selects one scene object. Resolution holds the two tessellation
// counts (latitude/longitude, strips/slices or rows/cols). Texture and Path
// are file paths; an empty Texture means a generated chessboard.
type Drawable struct {
	Kind       string `yaml:"kind"`
	Resolution [2]int `yaml:"resolution"`
	Texture    string `yaml:"texture,omitempty"`
	Path       string `yaml:"path,omitempty"`
}

// Default returns the demo settings used without a config file: a skybox
// and a textured sphere seen from above.
func Default() Config {
	return Config{
		Window:     core.DefaultWindowConfig(),
		FrameRate:  60,
		Background: [3]float32{0.6, 0.6, 0.6},
		Camera: Camera{
			Eye:    [3]float32{1.5, 1, 1.5},
			Target: [3]float32{0, 0, 0},
			Up:     [3]float32{0, 1, 0},
			FOV:    60,
		},
		Drawables: []Drawable{
			{Kind: KindSkybox, Resolution: [2]int{64, 0}},
			{Kind: KindSphere, Resolution: [2]int{100, 100}},
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML over the defaults and validates the result. Keys not
// present keep their default values; a drawables list replaces the default
// list entirely.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside the GPU
// layer.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate %d must be positive", c.FrameRate)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %g out of (0, 180)", c.Camera.FOV)
	}
	for i, d := range c.Drawables {
		switch d.Kind {
		case KindSphere, KindCylinder, KindQuad, KindSkybox, KindDepth:
		case KindModel:
			if d.Path == "" {
				return fmt.Errorf("drawable %d: model needs a path", i)
			}
		default:
			return fmt.Errorf("drawable %d: unknown kind %q", i, d.Kind)
		}
	}
	return nil
}

// Encode writes c as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
