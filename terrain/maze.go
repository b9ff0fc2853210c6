package terrain

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/component"
)

// Point is a layout cell coordinate
type Point struct {
	X, Y int
}

// MazeConfig controls layout generation and extrusion
type MazeConfig struct {
	// Braiding: 0.0 keeps a perfect maze (tree), 1.0 removes every dead end it safely can
	Braiding float64 `yaml:"braiding"`

	// CellSize is the voxel footprint of one layout cell
	CellSize int `yaml:"cell_size"`

	// WallHeight is the number of voxel layers stacked on the ground
	WallHeight int `yaml:"wall_height"`

	// Seed 0 picks a time-based seed
	Seed int64 `yaml:"seed"`
}

// Layout is a 2D wall grid produced by the recursive backtracker
type Layout struct {
	Cols, Rows int
	Start      Point
	walls      []bool
}

// Wall reports whether layout cell (x,y) is a wall; outside cells are walls
func (l Layout) Wall(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Cols || y >= l.Rows {
		return true
	}
	return l.walls[y*l.Cols+x]
}

func (l Layout) set(x, y int, wall bool) {
	l.walls[y*l.Cols+x] = wall
}

func (l Layout) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Cols && y < l.Rows
}

var (
	steps = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// GenerateLayout carves a maze of at most cols x rows cells, rounded down to odd sizes
// Rooms sit on odd coordinates; the border is always wall
func GenerateLayout(cols, rows int, braiding float64, seed int64) Layout {
	l := Layout{Cols: oddFloor(cols), Rows: oddFloor(rows), Start: Point{1, 1}}
	l.walls = make([]bool, l.Cols*l.Rows)
	for i := range l.walls {
		l.walls[i] = true
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	l.backtrack(rng)
	if braiding > 0 {
		l.braid(braiding, rng)
	}
	return l
}

// backtrack builds a uniform spanning tree over the rooms
func (l Layout) backtrack(rng *rand.Rand) {
	stack := []Point{l.Start}
	l.set(l.Start.X, l.Start.Y, false)

	var open [4]Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		n := 0
		for _, d := range jumps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < l.Cols-1 && ny > 0 && ny < l.Rows-1 && l.Wall(nx, ny) {
				open[n] = d
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := open[rng.Intn(n)]
		l.set(cur.X+d.X/2, cur.Y+d.Y/2, false)
		next := Point{cur.X + d.X, cur.Y + d.Y}
		l.set(next.X, next.Y, false)
		stack = append(stack, next)
	}
}

// braid opens a wall next to dead ends with the given probability, never creating
// 2x2 open plazas or free-standing pillars
func (l Layout) braid(probability float64, rng *rand.Rand) {
	for y := 1; y < l.Rows-1; y += 2 {
		for x := 1; x < l.Cols-1; x += 2 {
			if l.Wall(x, y) || l.exits(x, y) != 1 || rng.Float64() >= probability {
				continue
			}

			var candidates [4]Point
			n := 0
			for _, d := range jumps {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if l.inside(nx, ny) && !l.Wall(nx, ny) && l.Wall(wx, wy) && l.canOpen(wx, wy) {
					candidates[n] = Point{wx, wy}
					n++
				}
			}
			if n > 0 {
				c := candidates[rng.Intn(n)]
				l.set(c.X, c.Y, false)
			}
		}
	}
}

func (l Layout) exits(x, y int) int {
	n := 0
	for _, d := range steps {
		if !l.Wall(x+d.X, y+d.Y) {
			n++
		}
	}
	return n
}

func (l Layout) open(x, y int) bool {
	return l.inside(x, y) && !l.Wall(x, y)
}

// canOpen reports whether turning (x,y) into passage keeps the topology clean
func (l Layout) canOpen(x, y int) bool {
	// No 2x2 plaza in any quadrant touching (x,y)
	for _, q := range [4][3]Point{
		{{-1, -1}, {0, -1}, {-1, 0}},
		{{0, -1}, {1, -1}, {1, 0}},
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{1, 0}, {0, 1}, {1, 1}},
	} {
		if l.open(x+q[0].X, y+q[0].Y) && l.open(x+q[1].X, y+q[1].Y) && l.open(x+q[2].X, y+q[2].Y) {
			return false
		}
	}

	// No orthogonal wall left without another wall neighbor
	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if !l.inside(nx, ny) || !l.Wall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range steps {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if l.inside(ax, ay) && l.Wall(ax, ay) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

func oddFloor(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// Maze builds a map with a ground slab and the maze layout extruded on top of it
// Returns the layout so callers can place spawns in open cells
func Maze(x, y, z, groundDepth int, cfg MazeConfig, ground, wall mgl32.Vec4) (component.VoxelMapComponent, Layout) {
	cell := cfg.CellSize
	if cell < 1 {
		cell = 1
	}
	m := Flat(x, y, z, groundDepth, ground)
	layout := GenerateLayout(x/cell, y/cell, cfg.Braiding, cfg.Seed)

	top := GroundLevel(z, groundDepth)
	bottom := top - cfg.WallHeight
	if bottom < 0 {
		bottom = 0
	}

	for ly := 0; ly < layout.Rows; ly++ {
		for lx := 0; lx < layout.Cols; lx++ {
			if !layout.Wall(lx, ly) {
				continue
			}
			for vz := bottom; vz < top; vz++ {
				for vy := ly * cell; vy < (ly+1)*cell; vy++ {
					for vx := lx * cell; vx < (lx+1)*cell; vx++ {
						m.Set(vx, vy, vz, wall)
					}
				}
			}
		}
	}
	return m, layout
}

// CellCenter returns the voxel-space center of a layout cell at the given height
func CellCenter(p Point, cellSize int, z float32) mgl32.Vec3 {
	if cellSize < 1 {
		cellSize = 1
	}
	half := float32(cellSize) / 2
	return mgl32.Vec3{float32(p.X*cellSize) + half, float32(p.Y*cellSize) + half, z}
}
