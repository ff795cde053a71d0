package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iansan5653/propwatch/internal/errors"
	"github.com/iansan5653/propwatch/pkg/scene"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "propwatch.yml")

	validConfig := `version: "1.0"
canvas:
  name: "main"
  width: 640
  height: 480
shapes:
  - kind: rect
    color: "#ff0000"
    x: 10
    y: 20
    width: 100
    height: 50
  - kind: ellipse
script:
  - action: set-color
    shape: 0
    color: "#00ff00"
  - action: move
    shape: 1
    x: 30
    y: 40
`
	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	require.NoError(t, err)
	assert.NotNil(t, config)
	assert.Equal(t, "1.0", config.Version)
	assert.Equal(t, "main", config.Canvas.Name)
	assert.Equal(t, 640, config.Canvas.Width)
	assert.Equal(t, 480, config.Canvas.Height)
	require.Len(t, config.Shapes, 2)
	assert.Equal(t, "rect", config.Shapes[0].Kind)
	assert.Equal(t, "#ff0000", config.Shapes[0].Color)
	assert.Equal(t, 100.0, config.Shapes[0].Width)
	require.Len(t, config.Script, 2)
	assert.Equal(t, ActionSetColor, config.Script[0].Action)
	assert.Equal(t, ActionMove, config.Script[1].Action)
	assert.Equal(t, 30.0, config.Script[1].X)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/propwatch.yml")
	assert.Error(t, err)
	assert.Nil(t, config)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E001", pwErr.Code)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "propwatch.yml")

	invalidYAML := `version: "1.0"
shapes:
  - this is invalid
    yaml syntax
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	config, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, config)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E002", pwErr.Code)
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	config := &Config{
		Version: "2.0",
		Canvas:  CanvasConfig{Name: "main"},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E002", pwErr.Code)
	assert.Contains(t, pwErr.Detail, "unsupported version")
}

func TestValidate_MissingCanvasName(t *testing.T) {
	config := &Config{Version: "1.0"}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Contains(t, pwErr.Detail, "canvas.name is required")
}

func TestValidate_UnknownKind(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Shapes:  []ShapeEntry{{Kind: "triangle"}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E010", pwErr.Code)
	assert.Contains(t, pwErr.Detail, "triangle")
}

func TestValidate_OpacityOutOfRange(t *testing.T) {
	tooHigh := 1.5
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Shapes:  []ShapeEntry{{Kind: "rect", Opacity: &tooHigh}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E002", pwErr.Code)
	assert.Contains(t, pwErr.Detail, "opacity")
}

func TestValidate_UnknownAction(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Script:  []Step{{Action: "rotate"}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E011", pwErr.Code)
	assert.Contains(t, pwErr.Detail, "rotate")
}

func TestValidate_SetColorRequiresColor(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Script:  []Step{{Action: ActionSetColor, Shape: 0}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E011", pwErr.Code)
}

func TestValidate_AddRequiresShape(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Script:  []Step{{Action: ActionAdd}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E011", pwErr.Code)
}

func TestValidate_NegativeShapeIndex(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Script:  []Step{{Action: ActionToggle, Shape: -1}},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E011", pwErr.Code)
}

func TestValidate_ReplaceValidatesShapes(t *testing.T) {
	config := &Config{
		Version: "1.0",
		Canvas:  CanvasConfig{Name: "main"},
		Script: []Step{
			{Action: ActionReplace, Shapes: []ShapeEntry{{Kind: "blob"}}},
		},
	}

	err := config.Validate()
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E010", pwErr.Code)
}

func TestShapeConfig_Defaults(t *testing.T) {
	entry := ShapeEntry{Kind: "rect"}

	cfg := entry.ShapeConfig()
	assert.Equal(t, scene.KindRect, cfg.Kind)
	assert.Equal(t, "#000000", cfg.Color)
	assert.Equal(t, 1.0, cfg.Opacity)
	assert.True(t, cfg.Visible)
}

func TestShapeConfig_ExplicitValues(t *testing.T) {
	opacity := 0.25
	hidden := false
	entry := ShapeEntry{
		Kind:    "ellipse",
		Color:   "#abcdef",
		Opacity: &opacity,
		Visible: &hidden,
		X:       5,
		Y:       6,
		Width:   70,
		Height:  80,
	}

	cfg := entry.ShapeConfig()
	assert.Equal(t, scene.KindEllipse, cfg.Kind)
	assert.Equal(t, "#abcdef", cfg.Color)
	assert.Equal(t, 0.25, cfg.Opacity)
	assert.False(t, cfg.Visible)
	assert.Equal(t, 5.0, cfg.X)
	assert.Equal(t, 80.0, cfg.Height)
}

func TestDefault_PassesValidation(t *testing.T) {
	config := Default()
	require.NoError(t, config.Validate())
	assert.Equal(t, "demo", config.Canvas.Name)
	assert.Len(t, config.Shapes, 2)
	assert.NotEmpty(t, config.Script)
}

func TestSave_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "propwatch.yml")

	original := Default()
	require.NoError(t, original.Save(configPath))

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, original.Version, loaded.Version)
	assert.Equal(t, original.Canvas, loaded.Canvas)
	assert.Equal(t, original.Shapes, loaded.Shapes)
	require.Len(t, loaded.Script, len(original.Script))
	assert.Equal(t, original.Script[0].Action, loaded.Script[0].Action)
}

func TestScaffold_MatchesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "propwatch.yml")

	require.NoError(t, Scaffold(configPath))

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}
