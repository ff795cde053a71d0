package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iansan5653/propwatch/internal/errors"
	"github.com/iansan5653/propwatch/pkg/scene"
)

// Config represents the top-level propwatch.yml scene file.
type Config struct {
	Version string       `yaml:"version"`
	Canvas  CanvasConfig `yaml:"canvas"`
	Shapes  []ShapeEntry `yaml:"shapes"`
	Script  []Step       `yaml:"script,omitempty"`
}

// CanvasConfig describes the canvas the shapes mount on.
type CanvasConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width,omitempty"`  // Default: 800
	Height int    `yaml:"height,omitempty"` // Default: 600
}

// ShapeEntry describes one shape's initial members.
type ShapeEntry struct {
	Kind    string   `yaml:"kind"`
	Color   string   `yaml:"color,omitempty"`   // Default: "#000000"
	Opacity *float64 `yaml:"opacity,omitempty"` // Default: 1.0
	Visible *bool    `yaml:"visible,omitempty"` // Default: true
	X       float64  `yaml:"x,omitempty"`
	Y       float64  `yaml:"y,omitempty"`
	Width   float64  `yaml:"width,omitempty"`
	Height  float64  `yaml:"height,omitempty"`
}

// Step is one scripted mutation the demo runs against the canvas.
// Steps run in order; shape indexes refer to the canvas as it is when the
// step runs.
type Step struct {
	Action  string       `yaml:"action"`
	Shape   int          `yaml:"shape,omitempty"`
	Color   string       `yaml:"color,omitempty"`
	X       float64      `yaml:"x,omitempty"`
	Y       float64      `yaml:"y,omitempty"`
	Width   float64      `yaml:"width,omitempty"`
	Height  float64      `yaml:"height,omitempty"`
	Opacity float64      `yaml:"opacity,omitempty"`
	Add     *ShapeEntry  `yaml:"add,omitempty"`    // Shape appended by "add"
	Shapes  []ShapeEntry `yaml:"shapes,omitempty"` // Collection for "replace"
}

// Script actions.
const (
	ActionSetColor   = "set-color"
	ActionMove       = "move"
	ActionResize     = "resize"
	ActionSetOpacity = "set-opacity"
	ActionToggle     = "toggle"
	ActionAdd        = "add"
	ActionPop        = "pop"
	ActionClear      = "clear"
	ActionReplace    = "replace"
)

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return errors.New("E002").WithDetail("unsupported version: %q (expected: 1.0)", c.Version)
	}

	if c.Canvas.Name == "" {
		return errors.New("E002").WithDetail("canvas.name is required")
	}
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return errors.New("E002").WithDetail("canvas dimensions must not be negative")
	}

	for i := range c.Shapes {
		if err := c.Shapes[i].validate("shapes", i); err != nil {
			return err
		}
	}

	for i := range c.Script {
		if err := c.Script[i].validate(i); err != nil {
			return err
		}
	}

	return nil
}

// validate checks a single shape entry. section and index locate the entry
// in error detail.
func (e *ShapeEntry) validate(section string, index int) error {
	if !scene.Kind(e.Kind).IsValid() {
		return errors.New("E010").WithDetail("%s[%d]: kind %q", section, index, e.Kind)
	}
	if e.Opacity != nil && (*e.Opacity < 0 || *e.Opacity > 1) {
		return errors.New("E002").WithDetail("%s[%d]: opacity %v out of range", section, index, *e.Opacity)
	}
	if e.Width < 0 || e.Height < 0 {
		return errors.New("E002").WithDetail("%s[%d]: negative dimensions", section, index)
	}
	return nil
}

// validate checks a single script step.
func (s *Step) validate(index int) error {
	if s.Shape < 0 {
		return errors.New("E011").WithDetail("script[%d]: negative shape index", index)
	}

	switch s.Action {
	case ActionSetColor:
		if s.Color == "" {
			return errors.New("E011").WithDetail("script[%d]: %s requires a color", index, s.Action)
		}
	case ActionMove, ActionResize, ActionToggle, ActionPop, ActionClear:
		// Coordinate and dimension zero values are meaningful here.
	case ActionSetOpacity:
		if s.Opacity < 0 || s.Opacity > 1 {
			return errors.New("E011").WithDetail("script[%d]: opacity %v out of range", index, s.Opacity)
		}
	case ActionAdd:
		if s.Add == nil {
			return errors.New("E011").WithDetail("script[%d]: add requires a shape", index)
		}
		if err := s.Add.validate("script", index); err != nil {
			return err
		}
	case ActionReplace:
		for i := range s.Shapes {
			if err := s.Shapes[i].validate("script", index); err != nil {
				return err
			}
		}
	default:
		return errors.New("E011").WithDetail("script[%d]: unknown action %q", index, s.Action)
	}

	return nil
}

// ShapeConfig converts the entry to the scene representation, applying
// defaults for omitted members.
func (e *ShapeEntry) ShapeConfig() scene.ShapeConfig {
	cfg := scene.ShapeConfig{
		Kind:    scene.Kind(e.Kind),
		Color:   e.Color,
		Opacity: 1.0,
		Visible: true,
		X:       e.X,
		Y:       e.Y,
		Width:   e.Width,
		Height:  e.Height,
	}
	if cfg.Color == "" {
		cfg.Color = "#000000"
	}
	if e.Opacity != nil {
		cfg.Opacity = *e.Opacity
	}
	if e.Visible != nil {
		cfg.Visible = *e.Visible
	}
	return cfg
}

// ShapeConfigs converts every declared shape to its scene representation.
func (c *Config) ShapeConfigs() []scene.ShapeConfig {
	configs := make([]scene.ShapeConfig, len(c.Shapes))
	for i := range c.Shapes {
		configs[i] = c.Shapes[i].ShapeConfig()
	}
	return configs
}

// Load reads and validates propwatch.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E001").WithDetail("no scene file at %q", path).Wrap(err)
		}
		return nil, errors.New("E002").Wrap(err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.New("E002").WithDetail("%q is not valid YAML", path).Wrap(err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E002").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Newf(errors.CategoryCLI, "failed to write %q", path).Wrap(err)
	}
	return nil
}

// Default returns the built-in demo scene used when no file is given.
// DefaultYAML renders the same scene.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "demo", Width: 800, Height: 600},
		Shapes: []ShapeEntry{
			{Kind: "rect", Color: "#e94f37", X: 40, Y: 40, Width: 120, Height: 80},
			{Kind: "ellipse", Color: "#3f88c5", X: 220, Y: 100, Width: 90, Height: 90},
		},
		Script: []Step{
			{Action: ActionSetColor, Shape: 0, Color: "#44bba4"},
			{Action: ActionMove, Shape: 1, X: 260, Y: 140},
			{Action: ActionAdd, Add: &ShapeEntry{Kind: "line", Color: "#393e41", X: 10, Y: 10, Width: 300}},
			{Action: ActionSetOpacity, Shape: 2, Opacity: 0.5},
			{Action: ActionToggle, Shape: 0},
			{Action: ActionResize, Shape: 0, Width: 160, Height: 90},
			{Action: ActionPop},
		},
	}
}

// DefaultYAML is the commented starter scene file propwatch init writes.
// It must stay in sync with Default; the tests parse it and compare.
const DefaultYAML = `version: "1.0"

canvas:
  name: demo
  width: 800
  height: 600

# Shape members are observed: every write redraws the canvas.
shapes:
  - kind: rect
    color: "#e94f37"
    x: 40
    y: 40
    width: 120
    height: 80
  - kind: ellipse
    color: "#3f88c5"
    x: 220
    y: 100
    width: 90
    height: 90

# Steps run in order. Shape indexes refer to the canvas as it is when
# the step runs. Actions: set-color, move, resize, set-opacity, toggle,
# add, pop, clear, replace.
script:
  - action: set-color
    shape: 0
    color: "#44bba4"
  - action: move
    shape: 1
    x: 260
    y: 140
  - action: add
    add:
      kind: line
      color: "#393e41"
      x: 10
      y: 10
      width: 300
  - action: set-opacity
    shape: 2
    opacity: 0.5
  - action: toggle
    shape: 0
  - action: resize
    shape: 0
    width: 160
    height: 90
  - action: pop
`

// Scaffold writes the commented starter scene file to path.
func Scaffold(path string) error {
	if err := os.WriteFile(path, []byte(DefaultYAML), 0644); err != nil {
		return errors.Newf(errors.CategoryCLI, "failed to write %q", path).Wrap(err)
	}
	return nil
}
