package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-fighter/component"
	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/render"
)

// EntityRenderer draws every collider-bearing body projected onto the view
// Bodies above the slice render bold, bodies below render dim
type EntityRenderer struct {
	player core.Entity
}

func NewEntityRenderer(player core.Entity) *EntityRenderer {
	return &EntityRenderer{player: player}
}

// Render implements SystemRenderer
func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	entities := w.Query().
		With(w.Components.SceneObject).
		With(w.Components.Collider).
		Execute()

	// Player draws last so it stays on top of projectiles sharing its cell
	for _, e := range entities {
		if e != r.player {
			r.draw(ctx, buf, e)
		}
	}
	if w.Alive(r.player) {
		r.draw(ctx, buf, r.player)
	}
}

func (r *EntityRenderer) draw(ctx render.RenderContext, buf *render.RenderBuffer, e core.Entity) {
	so, ok := ctx.World.Components.SceneObject.Get(e)
	if !ok {
		return
	}
	pos := component.MapPoint(so.Position())
	sx, sy, visible := ctx.MapToScreen(render.CellOf(pos[0]), render.CellOf(pos[1]))
	if !visible {
		return
	}

	glyph, color := r.glyph(ctx, e)
	_, bg, _ := buf.Get(sx, sy).Style.Decompose()
	style := tcell.StyleDefault.Background(bg).Foreground(color)
	switch layer := render.CellOf(pos[2]); {
	case layer < ctx.Slice:
		style = style.Bold(true)
	case layer > ctx.Slice:
		style = style.Dim(true)
	}
	buf.Set(sx, sy, glyph, style)
}

func (r *EntityRenderer) glyph(ctx render.RenderContext, e core.Entity) (rune, tcell.Color) {
	if e == r.player {
		return '@', render.RgbPlayer
	}
	if ex, ok := ctx.World.Components.Explosive.Get(e); ok {
		if ex.Trigger == component.TriggerCollision {
			return '^', render.RgbRocket
		}
		return 'o', render.RgbGrenade
	}
	return '*', render.RgbBody
}
