package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbStatusBg   = tcell.NewRGBColor(36, 40, 59)
	RgbStatusFg   = tcell.NewRGBColor(192, 202, 245)
	RgbStatusKey  = tcell.NewRGBColor(122, 162, 247)
	RgbPlayer     = tcell.NewRGBColor(224, 175, 104)
	RgbGrenade    = tcell.NewRGBColor(247, 118, 142)
	RgbRocket     = tcell.NewRGBColor(255, 158, 100)
	RgbBody       = tcell.NewRGBColor(158, 206, 106)
)

// VoxelColor converts a linear RGBA voxel color to a terminal color, ignoring alpha
func VoxelColor(c mgl32.Vec4) tcell.Color {
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

// Shade scales a voxel color toward black by factor in [0,1]
func Shade(c mgl32.Vec4, factor float32) tcell.Color {
	return VoxelColor(mgl32.Vec4{c[0] * factor, c[1] * factor, c[2] * factor, c[3]})
}

func channel(v float32) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int32(v*255 + 0.5)
}
