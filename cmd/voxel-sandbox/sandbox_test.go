package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/input"
	"github.com/lixenwraith/voxel-fighter/mapio"
)

func testConfig(t *testing.T, generator string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.World.Size = [3]int{24, 24, 12}
	cfg.World.Generator = generator
	cfg.World.Maze.Seed = 42
	cfg.Log.Outputs = []string{filepath.Join(t.TempDir(), "sandbox.log")}
	return cfg
}

func TestDropPoint(t *testing.T) {
	m := component.NewVoxelMap(4, 4, 8)
	m.Set(1, 1, 5, mgl32.Vec4{1, 1, 1, 1})
	assert.Equal(t, mgl32.Vec3{1, 1, 4}, dropPoint(m, 1, 1))
	assert.Equal(t, mgl32.Vec3{2, 2, 7}, dropPoint(m, 2, 2), "empty column drops from the top")
}

func TestBuildMap_Generators(t *testing.T) {
	for _, gen := range []string{config.GeneratorFlat, config.GeneratorMaze} {
		t.Run(gen, func(t *testing.T) {
			cfg := testConfig(t, gen)
			m, spawn, err := buildMap(cfg, zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, 24, m.X)

			x, y, z := int(spawn[0]), int(spawn[1]), int(spawn[2])
			assert.False(t, m.Solid(x, y, z), "spawn cell is air")
			assert.True(t, m.Solid(x, y, z+1), "spawn stands on solid ground")
		})
	}
}

func TestBuildMap_FromFile(t *testing.T) {
	cfg := testConfig(t, config.GeneratorFlat)
	src, _, err := buildMap(cfg, zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "map.vxm")
	require.NoError(t, mapio.SaveFile(path, src))

	cfg.World.MapFile = path
	m, _, err := buildMap(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, src.Digest(), m.Digest())

	cfg.World.MapFile = filepath.Join(t.TempDir(), "absent.vxm")
	_, _, err = buildMap(cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestSandbox_PlayerLandsOnGround(t *testing.T) {
	cfg := testConfig(t, config.GeneratorFlat)
	m, spawn, err := buildMap(cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, mgl32.Vec3{12, 12, 7}, spawn)
	sb := buildSandbox(cfg, m, spawn, zap.NewNop())

	so, _ := sb.world.Components.SceneObject.Get(sb.player)
	assert.Equal(t, mgl32.Vec3{-12, -12, -7}, so.Position(), "map cell mirrors to world")

	for range 10 {
		sb.world.Update(sb.tick)
	}

	cell := sb.playerCell()
	assert.Equal(t, float32(12), cell[0])
	assert.Equal(t, float32(12), cell[1])
	assert.Greater(t, cell[2], float32(7), "gravity pulls toward the ground")
	assert.Less(t, cell[2], float32(7.5), "ground contact slows the fall")
	assert.Greater(t, sb.world.Resources.Status.Counters.Get("collision.accepted").Load(), int64(0))
}

func TestSandbox_GrenadeCarvesGround(t *testing.T) {
	cfg := testConfig(t, config.GeneratorFlat)
	cfg.Projectiles.GrenadeFuse = cfg.Tick() * 30
	cfg.Projectiles.LaunchForce = 0
	cfg.Projectiles.LaunchLift = 0
	m, spawn, err := buildMap(cfg, zap.NewNop())
	require.NoError(t, err)
	sb := buildSandbox(cfg, m, spawn, zap.NewNop())

	before := m.Digest()
	v := &view{follow: true}
	sb.handle(input.IntentGrenade, v, "")
	for range 60 {
		sb.world.Update(sb.tick)
	}

	reg := sb.world.Resources.Status
	assert.Equal(t, int64(1), reg.Counters.Get("explosion.triggered").Load())
	assert.Greater(t, reg.Counters.Get("explosion.carved").Load(), int64(0))
	assert.NotEqual(t, before, sb.voxelMap().Digest())
	assert.False(t, sb.voxelMap().Solid(12, 12, 8), "ground under the player is gone")
	assert.Equal(t, 2, sb.world.EntityCount(), "only the map and the player remain")
}

func TestSandbox_HandleView(t *testing.T) {
	cfg := testConfig(t, config.GeneratorFlat)
	m, spawn, err := buildMap(cfg, zap.NewNop())
	require.NoError(t, err)
	sb := buildSandbox(cfg, m, spawn, zap.NewNop())

	v := &view{slice: 0, follow: true}
	sb.handle(input.IntentSliceUp, v, "")
	assert.Equal(t, 0, v.slice)
	assert.False(t, v.follow)

	for range 20 {
		sb.handle(input.IntentSliceDown, v, "")
	}
	assert.Equal(t, 11, v.slice)

	sb.handle(input.IntentFollow, v, "")
	assert.True(t, v.follow)

	path := filepath.Join(t.TempDir(), "saved.vxm")
	sb.handle(input.IntentSaveMap, v, path)
	loaded, err := mapio.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sb.voxelMap().Digest(), loaded.Digest())
}

func TestRun_Headless(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sandbox.yaml")
	body := "world:\n  size: [16, 16, 8]\n  generator: flat\nlog:\n  outputs: [" + filepath.Join(dir, "run.log") + "]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	savePath := filepath.Join(dir, "out.vxm")

	var out bytes.Buffer
	err := run([]string{"-config", cfgPath, "-frames", "10", "-save", savePath}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "engine.frames=10\n")
	assert.True(t, strings.Contains(out.String(), "collision.entities="))
	_, err = os.Stat(savePath)
	assert.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "run_id")
}

func TestRun_BadFlag(t *testing.T) {
	assert.Error(t, run([]string{"-nope"}, &bytes.Buffer{}))
}
