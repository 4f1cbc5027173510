package battle

// Formation lays out a general's starting minions. Offsets are expressed
// relative to the general's tile along its forward direction, so one layout
// serves both sides.
type Formation interface {
	Place(w *World, g *General, spec UnitSpec, count int)
}

func formationSpawn(w *World, g *General, spec UnitSpec, x, y int) {
	if u := w.SpawnUnit(spec, g.Side, x, y, &g.Unit); u != nil {
		u.Tactic = g.SelectedTactic()
	}
}

// Rows stacks minions in vertical columns ahead of the general.
type Rows struct {
	// PerColumn is how many minions fill one column before the next starts.
	PerColumn int
}

func (f Rows) Place(w *World, g *General, spec UnitSpec, count int) {
	per := f.PerColumn
	if per <= 0 {
		per = 8
	}
	fwd := forwardX(g.Side)
	baseY := g.Y - per/2
	placed := 0
	for col := 0; placed < count; col++ {
		for row := 0; row < per && placed < count; row++ {
			x := g.X + fwd*(3+col*2)
			y := baseY + row
			formationSpawn(w, g, spec, x, y)
			placed++
		}
	}
}

// FlyingWedge forms an arrowhead pointing at the enemy.
type FlyingWedge struct {
	// Spread is the vertical step between successive pairs.
	Spread int
}

func (f FlyingWedge) Place(w *World, g *General, spec UnitSpec, count int) {
	spread := f.Spread
	if spread <= 0 {
		spread = 1
	}
	fwd := forwardX(g.Side)
	tip := g.X + fwd*6
	placed := 0
	formationSpawn(w, g, spec, tip, g.Y)
	placed++
	for i := 1; placed < count; i++ {
		formationSpawn(w, g, spec, tip-fwd*i, g.Y-i*spread)
		placed++
		if placed >= count {
			break
		}
		formationSpawn(w, g, spec, tip-fwd*i, g.Y+i*spread)
		placed++
	}
}

// InvertedWedge forms a funnel opening toward the enemy.
type InvertedWedge struct {
	Spread int
}

func (f InvertedWedge) Place(w *World, g *General, spec UnitSpec, count int) {
	spread := f.Spread
	if spread <= 0 {
		spread = 1
	}
	fwd := forwardX(g.Side)
	back := g.X + fwd*2
	placed := 0
	formationSpawn(w, g, spec, back, g.Y)
	placed++
	for i := 1; placed < count; i++ {
		formationSpawn(w, g, spec, back+fwd*i, g.Y-i*spread)
		placed++
		if placed >= count {
			break
		}
		formationSpawn(w, g, spec, back+fwd*i, g.Y+i*spread)
		placed++
	}
}
