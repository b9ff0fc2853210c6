// Package config loads sandbox settings from YAML, overlaying the file on built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/voxel-fighter/logging"
	"github.com/lixenwraith/voxel-fighter/parameter"
	"github.com/lixenwraith/voxel-fighter/terrain"
)

// Generator names accepted by World.Generator
const (
	GeneratorFlat = "flat"
	GeneratorMaze = "maze"
)

type Config struct {
	TickRate    int              `yaml:"tick_rate"`
	World       WorldConfig      `yaml:"world"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Log         logging.Config   `yaml:"log"`
	Audio       AudioConfig      `yaml:"audio"`
}

type WorldConfig struct {
	Size        [3]int             `yaml:"size"`
	GroundDepth int                `yaml:"ground_depth"`
	Generator   string             `yaml:"generator"`
	Maze        terrain.MazeConfig `yaml:"maze"`
	// MapFile, when set, replaces generation with a saved map
	MapFile string `yaml:"map_file"`
}

type PhysicsConfig struct {
	Gravity [3]float32 `yaml:"gravity"`
}

type PlayerConfig struct {
	Acceleration float32 `yaml:"acceleration"`
	HalfExtent   float32 `yaml:"half_extent"`
}

type ProjectileConfig struct {
	LaunchForce   float32       `yaml:"launch_force"`
	LaunchLift    float32       `yaml:"launch_lift"`
	HalfExtent    float32       `yaml:"half_extent"`
	GrenadeFuse   time.Duration `yaml:"grenade_fuse"`
	GrenadeRadius int           `yaml:"grenade_radius"`
	RocketRadius  int           `yaml:"rocket_radius"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TickRate: parameter.TickRate,
		World: WorldConfig{
			Size:        [3]int{parameter.MapWidth, parameter.MapDepth, parameter.MapHeight},
			GroundDepth: parameter.GroundDepth,
			Generator:   GeneratorMaze,
			Maze: terrain.MazeConfig{
				Braiding:   parameter.MazeBraiding,
				CellSize:   parameter.MazeCellSize,
				WallHeight: parameter.MazeWallHeight,
			},
		},
		Physics: PhysicsConfig{Gravity: parameter.DefaultGravity},
		Player: PlayerConfig{
			Acceleration: parameter.PlayerAcceleration,
			HalfExtent:   parameter.PlayerHalfExtent,
		},
		Projectiles: ProjectileConfig{
			LaunchForce:   parameter.ProjectileLaunchForce,
			LaunchLift:    parameter.ProjectileLaunchLift,
			HalfExtent:    parameter.ProjectileHalfExtent,
			GrenadeFuse:   parameter.GrenadeFuseMs * time.Millisecond,
			GrenadeRadius: parameter.GrenadeBlastRadius,
			RocketRadius:  parameter.RocketBlastRadius,
		},
		Log:   logging.DefaultConfig(),
		Audio: AudioConfig{Enabled: false, Volume: 0.5},
	}
}

// Load reads path over Default; an empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field joined into one error
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	for i, d := range c.World.Size {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("world.size[%d] must be positive, got %d", i, d))
		}
	}
	if c.World.GroundDepth < 0 {
		errs = append(errs, fmt.Errorf("world.ground_depth must be >= 0, got %d", c.World.GroundDepth))
	}
	switch c.World.Generator {
	case GeneratorFlat, GeneratorMaze:
	default:
		errs = append(errs, fmt.Errorf("world.generator %q: want %s or %s", c.World.Generator, GeneratorFlat, GeneratorMaze))
	}
	if c.World.Generator == GeneratorMaze && c.World.Maze.CellSize < 1 {
		errs = append(errs, fmt.Errorf("world.maze.cell_size must be >= 1, got %d", c.World.Maze.CellSize))
	}
	if c.Player.HalfExtent <= 0 || c.Projectiles.HalfExtent <= 0 {
		errs = append(errs, errors.New("half_extent must be positive"))
	}
	if c.Projectiles.GrenadeFuse <= 0 {
		errs = append(errs, fmt.Errorf("projectiles.grenade_fuse must be positive, got %s", c.Projectiles.GrenadeFuse))
	}
	if c.Projectiles.GrenadeRadius < 0 || c.Projectiles.RocketRadius < 0 {
		errs = append(errs, errors.New("blast radius must be >= 0"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0,1], got %g", c.Audio.Volume))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Tick is the fixed frame duration
func (c Config) Tick() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Gravity as a vector
func (c Config) Gravity() mgl32.Vec3 {
	return mgl32.Vec3(c.Physics.Gravity)
}
