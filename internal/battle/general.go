package battle

// General is a side's commander: a unit with skills, a tactic broadcast, a
// walk-to flag and a bench of reserve generals it can swap with.
type General struct {
	Unit

	Faction    string
	DeathQuote string
	Skills     []*Skill

	// Swap readiness counts down to zero like a skill cooldown. A general
	// arriving from the bench also suffers swap sickness: a delay before its
	// first action.
	SwapCD       int
	SwapMaxCD    int
	SwapSickness int

	MinionSpec      UnitSpec
	Formation       Formation
	StartingMinions int
	MinionsAlive    int

	selected TacticID
	previous TacticID

	flag    *FlagMark
	flagPos Point
}

func (g *General) SelectedTactic() TacticID { return g.selected }

// StartBattle readies the general for deployment: full health, all skills on
// charge-up, swap available immediately.
func (g *General) StartBattle() {
	g.Alive = true
	g.HP = g.Spec.MaxHP
	g.Kills = 0
	g.SwapCD = 0
	g.NextAction = g.Spec.Cadence
	g.selected = TacticStop
	g.previous = TacticStop
	for _, s := range g.Skills {
		s.CD = s.MaxCD
	}
}

// Deploy places the general on the grid and lays out its starting minions.
func (g *General) Deploy(w *World, x, y int) {
	g.StartBattle()
	g.X, g.Y = x, y
	w.Grid.place(&g.Unit, x, y)
	w.emit(Event{Kind: EventSpawned, Turn: w.Turn, Actor: g.Spec.Name, Pos: g.Pos(), Side: g.Side})
	if g.Formation != nil && g.StartingMinions > 0 {
		g.Formation.Place(w, g, g.MinionSpec, g.StartingMinions)
	}
}

// CommandTactic broadcasts a tactic to every living minion on the general's
// side. Re-issuing the current tactic toggles back to the previous one.
func (g *General) CommandTactic(w *World, t TacticID) bool {
	if !t.Valid() {
		return false
	}
	if t == g.selected {
		g.selected, g.previous = g.previous, g.selected
	} else {
		g.previous = g.selected
		g.selected = t
	}
	for _, m := range w.Minions {
		if m.Alive && m.Side == g.Side {
			m.Tactic = g.selected
		}
	}
	w.emit(Event{Kind: EventTactic, Turn: w.Turn, Actor: g.Spec.Name, Side: g.Side, Pos: g.Pos()})
	w.Logf(g.Color, "%s commands: %s!", g.Spec.Name, g.selected)
	return true
}

// PlaceFlag sets the walk-to marker. Coordinates off the battleground clear
// the flag, which is how a stop order is expressed.
func (g *General) PlaceFlag(w *World, x, y int) {
	if g.flag != nil && g.flag.IsAlive() && g.flagPos == (Point{x, y}) {
		return
	}
	g.ClearFlag()
	if !w.Grid.Passable(x, y) {
		return
	}
	g.flagPos = Point{x, y}
	g.flag = &FlagMark{ID: w.nextEffectID(), Side: g.Side, X: x, Y: y, Color: g.Color, alive: true, visible: true, timer: flagBlinkPeriod}
	w.AddEffect(g.flag)
}

func (g *General) ClearFlag() {
	if g.flag != nil {
		g.flag.Clear()
		g.flag = nil
	}
}

// UseSkill fires skill i at the anchor. Using one skill delays the others,
// so chaining casts has a cost. A fizzled cast spends nothing.
func (g *General) UseSkill(w *World, i, x, y int) bool {
	if i < 0 || i >= len(g.Skills) {
		return false
	}
	s := g.Skills[i]
	if !s.Ready() {
		return false
	}
	if !s.apply(w, g, x, y) {
		return false
	}
	for _, o := range g.Skills {
		if o != s {
			o.delay(exertionPenalty)
		}
	}
	s.CD = s.MaxCD
	w.emit(Event{Kind: EventSkill, Turn: w.Turn, Actor: g.Spec.Name, Target: s.Name, Side: g.Side, Pos: Point{x, y}})
	if s.Quote != "" {
		w.emit(Event{Kind: EventQuote, Turn: w.Turn, Actor: g.Spec.Name, Target: s.Quote, Side: g.Side, Pos: g.Pos()})
		w.Logf(g.Color, "%s: \"%s\"", g.Spec.Name, s.Quote)
	}
	return true
}

// Update runs one turn for the general: statuses, cooldowns, then either a
// step toward the flag or an attack on an adjacent enemy. With nothing to do
// the general idles without burning cadence.
func (g *General) Update(w *World) {
	if !g.Alive {
		return
	}
	updateStatuses(w, &g.Unit)
	if !g.Alive {
		return
	}
	for _, s := range g.Skills {
		s.tickCooldown()
	}
	if g.SwapCD > 0 {
		g.SwapCD--
	}
	if g.NextAction > 0 {
		g.NextAction--
	}
	if g.NextAction > 0 {
		return
	}
	g.resetAction()
	if g.flag != nil && g.flag.IsAlive() {
		dx := sign(g.flagPos.X - g.X)
		dy := sign(g.flagPos.Y - g.Y)
		moved := false
		if dx != 0 {
			moved = w.MoveUnit(&g.Unit, dx, 0)
		}
		if !moved && dy != 0 {
			moved = w.MoveUnit(&g.Unit, 0, dy)
		}
		if g.Pos() == g.flagPos || !moved {
			g.ClearFlag()
		}
		return
	}
	if !w.tryAttack(&g.Unit) {
		// Nothing adjacent and nowhere to go: stay ready for next turn.
		g.NextAction = 0
	}
}
