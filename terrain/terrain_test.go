package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlat(t *testing.T) {
	m := Flat(4, 3, 5, 2, GroundColor)

	assert.Equal(t, 3, GroundLevel(5, 2))
	for z := 0; z < 5; z++ {
		assert.Equal(t, z >= 3, m.Solid(1, 1, z), "z=%d", z)
	}
	assert.Equal(t, GroundColor, m.Color(0, 0, 4))
}

func TestGroundLevelClamps(t *testing.T) {
	assert.Equal(t, 0, GroundLevel(4, 10))
	assert.Equal(t, 4, GroundLevel(4, -1))
}

func TestGenerateLayout_Deterministic(t *testing.T) {
	a := GenerateLayout(21, 15, 0.3, 42)
	b := GenerateLayout(21, 15, 0.3, 42)
	assert.Equal(t, a, b)
}

func TestGenerateLayout_Shape(t *testing.T) {
	l := GenerateLayout(20, 10, 0, 7)
	require.Equal(t, 19, l.Cols)
	require.Equal(t, 9, l.Rows)

	for x := 0; x < l.Cols; x++ {
		assert.True(t, l.Wall(x, 0))
		assert.True(t, l.Wall(x, l.Rows-1))
	}
	for y := 0; y < l.Rows; y++ {
		assert.True(t, l.Wall(0, y))
		assert.True(t, l.Wall(l.Cols-1, y))
	}
	assert.True(t, l.Wall(-1, 3), "outside reads as wall")
	assert.False(t, l.Wall(l.Start.X, l.Start.Y))
}

// Every room of a perfect maze is reachable from the start
func TestGenerateLayout_Connected(t *testing.T) {
	for _, braid := range []float64{0, 0.5, 1} {
		l := GenerateLayout(31, 21, braid, 99)

		seen := map[Point]bool{l.Start: true}
		queue := []Point{l.Start}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, d := range steps {
				n := Point{p.X + d.X, p.Y + d.Y}
				if !l.Wall(n.X, n.Y) && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}

		for y := 1; y < l.Rows-1; y += 2 {
			for x := 1; x < l.Cols-1; x += 2 {
				assert.True(t, seen[Point{x, y}], "braid %.1f room (%d,%d) unreachable", braid, x, y)
			}
		}
	}
}

func TestGenerateLayout_BraidingHasNoPlazas(t *testing.T) {
	l := GenerateLayout(41, 41, 1, 5)
	for y := 0; y < l.Rows-1; y++ {
		for x := 0; x < l.Cols-1; x++ {
			plaza := !l.Wall(x, y) && !l.Wall(x+1, y) && !l.Wall(x, y+1) && !l.Wall(x+1, y+1)
			assert.False(t, plaza, "plaza at (%d,%d)", x, y)
		}
	}
}

func TestMaze_Extrusion(t *testing.T) {
	cfg := MazeConfig{CellSize: 2, WallHeight: 3, Seed: 11}
	m, layout := Maze(22, 22, 8, 1, cfg, GroundColor, WallColor)

	top := GroundLevel(8, 1)
	assert.Equal(t, 7, top)
	for z := 0; z < 8; z++ {
		wantWall := z >= top-3 && z < top
		assert.Equal(t, wantWall || z >= top, m.Solid(0, 0, z), "border column z=%d", z)
	}

	c := CellCenter(layout.Start, cfg.CellSize, 0)
	assert.Equal(t, mgl32.Vec3{3, 3, 0}, c)
	assert.False(t, m.Solid(int(c[0]), int(c[1]), top-1), "start cell is open")
}
