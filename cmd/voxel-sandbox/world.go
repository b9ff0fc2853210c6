package main

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/audio"
	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/game"
	"github.com/lixenwraith/voxel-fighter/mapio"
	"github.com/lixenwraith/voxel-fighter/system"
	"github.com/lixenwraith/voxel-fighter/terrain"
)

// sandbox holds the assembled simulation
type sandbox struct {
	world      *engine.World
	mapEntity  core.Entity
	player     core.Entity
	controller *game.Controller
	audio      *audio.Service
	tick       time.Duration
}

// buildMap loads cfg.World.MapFile when set, otherwise generates terrain
// Returns the map and the player spawn cell in map coordinates
func buildMap(cfg config.Config, log *zap.Logger) (component.VoxelMapComponent, mgl32.Vec3, error) {
	wc := cfg.World
	if wc.MapFile != "" {
		m, err := mapio.LoadFile(wc.MapFile)
		if err != nil {
			return m, mgl32.Vec3{}, fmt.Errorf("load map: %w", err)
		}
		log.Info("map loaded", zap.String("path", wc.MapFile),
			zap.Ints("size", []int{m.X, m.Y, m.Z}), zap.Uint64("digest", m.Digest()))
		return m, dropPoint(m, m.X/2, m.Y/2), nil
	}

	x, y, z := wc.Size[0], wc.Size[1], wc.Size[2]
	switch wc.Generator {
	case config.GeneratorMaze:
		m, layout := terrain.Maze(x, y, z, wc.GroundDepth, wc.Maze, terrain.GroundColor, terrain.WallColor)
		start := terrain.CellCenter(layout.Start, wc.Maze.CellSize, 0)
		log.Info("maze generated", zap.Int("cols", layout.Cols), zap.Int("rows", layout.Rows),
			zap.Int64("seed", wc.Maze.Seed), zap.Uint64("digest", m.Digest()))
		return m, dropPoint(m, int(start[0]), int(start[1])), nil
	default:
		m := terrain.Flat(x, y, z, wc.GroundDepth, terrain.GroundColor)
		log.Info("flat map generated", zap.Uint64("digest", m.Digest()))
		return m, dropPoint(m, x/2, y/2), nil
	}
}

// dropPoint returns the cell center just above the topmost solid voxel of column (x,y)
// An empty column drops from the top layer
func dropPoint(m component.VoxelMapComponent, x, y int) mgl32.Vec3 {
	top := m.Z
	for z := 0; z < m.Z; z++ {
		if m.Solid(x, y, z) {
			top = z
			break
		}
	}
	return mgl32.Vec3{float32(x), float32(y), float32(max(top-1, 0))}
}

// buildSandbox wires the world, systems, audio and the player around m
func buildSandbox(cfg config.Config, m component.VoxelMapComponent, spawn mgl32.Vec3, log *zap.Logger) *sandbox {
	world := engine.NewWorld(log)

	mapEntity := world.CreateEntity()
	world.Components.VoxelMap.Set(mapEntity, m)
	world.Components.SceneObject.Set(mapEntity, component.NewSceneObject())

	world.AddSystem(system.NewTimerSystem(world))
	world.AddSystem(system.NewBroadPhaseSystem(world, mapEntity))
	world.AddSystem(system.NewCollisionSystem(world, mapEntity))
	world.AddSystem(system.NewExplosionSystem(world, mapEntity))
	world.AddSystem(system.NewPhysicsSystem(world, cfg.Gravity(), cfg.Tick()))
	world.AddSystem(system.NewSceneSystem(world))
	world.AddSystem(system.NewDiagnosticsSystem(world))

	sound := audio.NewService(cfg.Audio, world.Resources.Status, log)
	world.AddHandler(sound)

	spawner := game.NewSpawner(world, mapEntity, cfg.Player, cfg.Projectiles)
	pos := component.WorldPoint(spawn)
	player := spawner.Player(pos)
	log.Info("player spawned", zap.Uint64("entity", uint64(player)),
		zap.Float32s("cell", spawn[:]), zap.Float32s("pos", pos[:]))

	return &sandbox{
		world:      world,
		mapEntity:  mapEntity,
		player:     player,
		controller: game.NewController(world, spawner, player, cfg.Player.Acceleration),
		audio:      sound,
		tick:       cfg.Tick(),
	}
}

// voxelMap returns the live map
func (s *sandbox) voxelMap() component.VoxelMapComponent {
	m, _ := s.world.Components.VoxelMap.Get(s.mapEntity)
	return m
}

// playerCell returns the player position in map coordinates, or the map center once the player is gone
func (s *sandbox) playerCell() mgl32.Vec3 {
	if so, ok := s.world.Components.SceneObject.Get(s.player); ok {
		return component.MapPoint(so.Position())
	}
	m := s.voxelMap()
	return m.Dimensions().Mul(0.5)
}
