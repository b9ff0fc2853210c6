package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/input"
)

// Thrust directions in world space
// The screen shows map space, which mirrors the world, so screen-forward (map -Y) is world +Y
var (
	dirForward = mgl32.Vec3{0, 1, 0}
	dirBack    = mgl32.Vec3{0, -1, 0}
	dirLeft    = mgl32.Vec3{1, 0, 0}
	dirRight   = mgl32.Vec3{-1, 0, 0}
	dirUp      = mgl32.Vec3{0, 0, 1}
	dirDown    = mgl32.Vec3{0, 0, -1}
)

// Controller turns intents into player forces and launches
// Horizontal thrust also sets the facing used to aim projectiles
type Controller struct {
	world   *engine.World
	spawner *Spawner
	player  core.Entity
	accel   float32
	facing  mgl32.Vec3
	log     *zap.Logger
}

func NewController(world *engine.World, spawner *Spawner, player core.Entity, accel float32) *Controller {
	return &Controller{
		world:   world,
		spawner: spawner,
		player:  player,
		accel:   accel,
		facing:  dirForward,
		log:     world.Resources.Log.Named("controller"),
	}
}

// Player returns the controlled entity
func (c *Controller) Player() core.Entity {
	return c.player
}

// Facing returns the current aim direction
func (c *Controller) Facing() mgl32.Vec3 {
	return c.facing
}

// Apply handles one intent; non-gameplay intents are ignored and reported false
func (c *Controller) Apply(intent input.Intent) bool {
	switch intent {
	case input.IntentForward:
		c.thrust(dirForward, true)
	case input.IntentBack:
		c.thrust(dirBack, true)
	case input.IntentLeft:
		c.thrust(dirLeft, true)
	case input.IntentRight:
		c.thrust(dirRight, true)
	case input.IntentUp:
		// Jumping works against gravity, so it gets double thrust
		c.thrust(dirUp.Mul(2), false)
	case input.IntentDown:
		c.thrust(dirDown, false)
	case input.IntentGrenade:
		c.launch(Grenade)
	case input.IntentRocket:
		c.launch(Rocket)
	default:
		return false
	}
	return true
}

func (c *Controller) thrust(dir mgl32.Vec3, aim bool) {
	if aim {
		c.facing = dir
	}
	forces, ok := c.world.Components.Forces.Get(c.player)
	if !ok {
		return
	}
	forces.AddForce(dir.Mul(c.accel))
	c.world.Components.Forces.Set(c.player, forces)
}

func (c *Controller) launch(kind Projectile) {
	if !c.spawner.Launch(c.player, c.facing, kind) {
		c.log.Warn("launch skipped, player missing components",
			zap.Uint64("player", uint64(c.player)),
			zap.Stringer("projectile", kind))
		return
	}
	c.log.Debug("launch", zap.Stringer("projectile", kind), zap.Float32s("facing", c.facing[:]))
}
