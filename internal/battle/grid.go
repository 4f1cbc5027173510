package battle

// Grid is the battleground: a walled rectangle of tiles with at most one unit
// per tile. Effects do not occupy tiles and live outside the grid.
type Grid struct {
	W, H int
	wall []bool
	occ  []*Unit
}

const (
	DefaultWidth  = 60
	DefaultHeight = 43
)

func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, wall: make([]bool, w*h), occ: make([]*Unit, w*h)}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				g.wall[y*w+x] = true
			}
		}
	}
	return g
}

func (g *Grid) Inside(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Passable reports whether the tile itself admits movement. Occupancy is a
// separate question answered by At.
func (g *Grid) Passable(x, y int) bool {
	return g.Inside(x, y) && !g.wall[y*g.W+x]
}

func (g *Grid) At(x, y int) *Unit {
	if !g.Inside(x, y) {
		return nil
	}
	return g.occ[y*g.W+x]
}

func (g *Grid) place(u *Unit, x, y int) {
	if g.Inside(x, y) {
		g.occ[y*g.W+x] = u
	}
}

func (g *Grid) clear(x, y int) {
	if g.Inside(x, y) {
		g.occ[y*g.W+x] = nil
	}
}

// Free reports whether a unit could be spawned on the tile: inside, no wall,
// no occupant.
func (g *Grid) Free(x, y int) bool {
	return g.Passable(x, y) && g.At(x, y) == nil
}
