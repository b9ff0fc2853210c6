package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-fighter/render"
)

// Terrain glyphs
const (
	glyphSolid = '█'
	glyphFloor = '·'
	glyphPit   = ' '
)

// floorShade darkens the layer below so walls at the slice stand out
const floorShade = 0.45

// TerrainRenderer draws the voxel map layer at ctx.Slice
// A solid cell draws as a block; an air cell over a solid cell below draws as floor
type TerrainRenderer struct{}

func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{}
}

// Render implements SystemRenderer
func (r *TerrainRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	m, ok := ctx.World.Components.VoxelMap.Get(ctx.MapEntity)
	if !ok {
		return
	}

	bg := tcell.StyleDefault.Background(render.RgbBackground)
	for sy := 0; sy < ctx.ViewportHeight; sy++ {
		y := sy + ctx.CameraY
		if y >= m.Y {
			break
		}
		for sx := 0; sx < ctx.ViewportWidth; sx++ {
			x := sx + ctx.CameraX
			if x >= m.X {
				break
			}
			switch {
			case m.Solid(x, y, ctx.Slice):
				idx, _ := m.Index(x, y, ctx.Slice)
				buf.Set(sx, sy, glyphSolid, bg.Foreground(render.VoxelColor(m.Cells[idx])))
			case m.Solid(x, y, ctx.Slice+1):
				idx, _ := m.Index(x, y, ctx.Slice+1)
				buf.Set(sx, sy, glyphFloor, bg.Foreground(render.Shade(m.Cells[idx], floorShade)))
			default:
				buf.Set(sx, sy, glyphPit, bg)
			}
		}
	}
}
