package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/60, cfg.Tick())
	assert.Equal(t, mgl32.Vec3{0, 0, -0.02}, cfg.Gravity())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
tick_rate: 30
world:
  size: [32, 16, 8]
  generator: flat
physics:
  gravity: [0, 0, 0.05]
projectiles:
  grenade_fuse: 2s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, [3]int{32, 16, 8}, cfg.World.Size)
	assert.Equal(t, GeneratorFlat, cfg.World.Generator)
	assert.Equal(t, [3]float32{0, 0, 0.05}, cfg.Physics.Gravity)
	assert.Equal(t, 2*time.Second, cfg.Projectiles.GrenadeFuse)

	// Untouched sections keep defaults
	assert.Equal(t, Default().World.GroundDepth, cfg.World.GroundDepth)
	assert.Equal(t, Default().Player, cfg.Player)
	assert.Equal(t, Default().Projectiles.RocketRadius, cfg.Projectiles.RocketRadius)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "tick_rate: [unclosed"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 0
	cfg.World.Generator = "cave"
	cfg.Audio.Volume = 2

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "tick_rate")
	assert.Contains(t, msg, "cave")
	assert.Contains(t, msg, "audio.volume")
}

func TestValidate_MazeCellSize(t *testing.T) {
	cfg := Default()
	cfg.World.Maze.CellSize = 0
	assert.Error(t, cfg.Validate())

	cfg.World.Generator = GeneratorFlat
	assert.NoError(t, cfg.Validate())
}
