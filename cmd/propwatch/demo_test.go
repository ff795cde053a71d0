package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iansan5653/propwatch/internal/config"
	"github.com/iansan5653/propwatch/internal/errors"
)

func TestRunDemo_BuiltinScene(t *testing.T) {
	require.NoError(t, runDemo("", false, "info"))
}

func TestRunDemo_SceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propwatch.yml")
	require.NoError(t, config.Default().Save(path))

	// Metrics plus debug logging exercise the full middleware chain.
	require.NoError(t, runDemo(path, true, "debug"))
}

func TestRunDemo_MissingSceneFile(t *testing.T) {
	err := runDemo("/nonexistent/propwatch.yml", false, "info")
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E001", pwErr.Code)
}

func TestRunDemo_UnknownLogLevel(t *testing.T) {
	err := runDemo("", false, "loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestRunDemo_ShapeIndexOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propwatch.yml")
	scene := `version: "1.0"
canvas:
  name: "sparse"
shapes:
  - kind: rect
script:
  - action: toggle
    shape: 5
`
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))

	err := runDemo(path, false, "info")
	assert.Error(t, err)

	var pwErr *errors.PropwatchError
	require.ErrorAs(t, err, &pwErr)
	assert.Equal(t, "E012", pwErr.Code)
}

func TestRunDemo_PopOnEmptyCanvasWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "propwatch.yml")
	scene := `version: "1.0"
canvas:
  name: "empty"
script:
  - action: pop
`
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))

	// An empty pop warns but the run still succeeds.
	require.NoError(t, runDemo(path, false, "info"))
}
