package battle

// Shape enumerates the tiles a targeted skill covers around its anchor.
type Shape interface {
	Tiles(w *World, g *General, x, y int) []Point
}

// SingleTile covers exactly the anchor tile.
type SingleTile struct{}

func (SingleTile) Tiles(w *World, g *General, x, y int) []Point {
	return []Point{{x, y}}
}

// Circle covers tiles within the given Euclidean radius of the anchor,
// scanned in row-major order so every instance enumerates identically.
type Circle struct {
	R int
}

func (c Circle) Tiles(w *World, g *General, x, y int) []Point {
	var out []Point
	for dy := -c.R; dy <= c.R; dy++ {
		for dx := -c.R; dx <= c.R; dx++ {
			if dx*dx+dy*dy <= c.R*c.R {
				out = append(out, Point{x + dx, y + dy})
			}
		}
	}
	return out
}

// Line covers the tiles on the segment from the caster to the anchor,
// excluding the caster's own tile. Bresenham keeps the walk integer-only so
// both simulations trace identical tiles.
type Line struct{}

func (Line) Tiles(w *World, g *General, x, y int) []Point {
	var out []Point
	x0, y0 := g.X, g.Y
	dx, dy := abs(x-x0), -abs(y-y0)
	sx, sy := sign(x-x0), sign(y-y0)
	err := dx + dy
	for x0 != x || y0 != y {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
		out = append(out, Point{x0, y0})
	}
	return out
}

// WholeField covers every tile of the battleground regardless of anchor.
type WholeField struct{}

func (WholeField) Tiles(w *World, g *General, x, y int) []Point {
	out := make([]Point, 0, w.Grid.W*w.Grid.H)
	for ty := 0; ty < w.Grid.H; ty++ {
		for tx := 0; tx < w.Grid.W; tx++ {
			out = append(out, Point{tx, ty})
		}
	}
	return out
}

// Sieve filters candidate tiles after the shape has been laid out.
type Sieve func(w *World, g *General, p Point) bool

func SieveInside(w *World, g *General, p Point) bool {
	return w.Grid.Passable(p.X, p.Y)
}

func SieveOccupied(w *World, g *General, p Point) bool {
	return w.Grid.At(p.X, p.Y) != nil
}

func SieveEmpty(w *World, g *General, p Point) bool {
	return w.Grid.Free(p.X, p.Y)
}

func SieveEnemy(w *World, g *General, p Point) bool {
	u := w.Grid.At(p.X, p.Y)
	return u != nil && u.Side != g.Side
}

func SieveAlly(w *World, g *General, p Point) bool {
	u := w.Grid.At(p.X, p.Y)
	return u != nil && u.Side == g.Side
}

// Reach gates whether the anchor is castable at all from the caster's tile.
type Reach func(w *World, g *General, p Point) bool

const (
	CloseReach = 8
	LongReach  = 20
)

func ReachWithin(r int) Reach {
	return func(w *World, g *General, p Point) bool {
		dx := p.X - g.X
		dy := p.Y - g.Y
		return dx*dx+dy*dy <= r*r
	}
}

func ReachAnywhere(w *World, g *General, p Point) bool { return true }

// Area combines shape, sieve and reach into the full targeting rule of one
// skill. SelfCentered areas ignore the requested anchor and use the caster.
type Area struct {
	Shape        Shape
	Sieve        Sieve
	Reach        Reach
	SelfCentered bool
}

// Tiles resolves the affected tiles for an anchor. It is a pure query: the
// client uses it for previews and the engine for application, so it must not
// mutate anything. Out of reach yields nil.
func (a *Area) Tiles(w *World, g *General, x, y int) []Point {
	if a.SelfCentered {
		x, y = g.X, g.Y
	}
	if a.Reach != nil && !a.Reach(w, g, Point{x, y}) {
		return nil
	}
	raw := a.Shape.Tiles(w, g, x, y)
	out := raw[:0]
	for _, p := range raw {
		if !w.Grid.Inside(p.X, p.Y) {
			continue
		}
		if a.Sieve != nil && !a.Sieve(w, g, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
