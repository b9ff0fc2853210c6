package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/voxel-fighter/render"
)

// StatusBarRenderer draws the HUD rows below the viewport
// Row one carries frame, slice and player position; row two the status registry snapshot
type StatusBarRenderer struct {
	prefixes []string
}

// NewStatusBarRenderer shows registry metrics whose key starts with any of prefixes; none shows all
func NewStatusBarRenderer(prefixes ...string) *StatusBarRenderer {
	return &StatusBarRenderer{prefixes: prefixes}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	top := ctx.ViewportHeight
	if top >= ctx.ScreenHeight {
		return
	}

	base := tcell.StyleDefault.Background(render.RgbStatusBg).Foreground(render.RgbStatusFg)
	keyStyle := base.Foreground(render.RgbStatusKey)
	for y := top; y < ctx.ScreenHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.Set(x, y, ' ', base)
		}
	}

	clock := ctx.World.Resources.Time
	x := buf.SetString(0, top, fmt.Sprintf(" frame %d ", clock.FrameNumber), base)
	x = buf.SetString(x, top, fmt.Sprintf("| slice z=%d ", ctx.Slice), base)
	x = buf.SetString(x, top, fmt.Sprintf("| entities %d ", ctx.World.EntityCount()), base)
	buf.SetString(x, top, fmt.Sprintf("| cam %d,%d", ctx.CameraX, ctx.CameraY), base)

	if top+1 >= ctx.ScreenHeight {
		return
	}
	x = 1
	for _, entry := range ctx.World.Resources.Status.Snapshot(r.prefixes...) {
		x = buf.SetString(x, top+1, entry.Key, keyStyle)
		x = buf.SetString(x, top+1, "="+entry.Value+" ", base)
		if x >= ctx.ScreenWidth {
			break
		}
	}
}
