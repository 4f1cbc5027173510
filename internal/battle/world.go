package battle

import "fmt"

// Outcome is the terminal state of a battle. Once Over is set nothing in the
// world changes again.
type Outcome struct {
	Over   bool
	Draw   bool
	Winner Side
}

// World is the complete simulation state of one battle. Everything in it is
// plain data driven by AdvanceTurn; there is no I/O, no clock and no
// randomness, so two worlds fed identical commands stay identical.
type World struct {
	Grid *Grid
	Turn int

	Generals [2]*General
	Reserves [2][]*General
	Minions  []*Unit
	Others   []*Unit
	Effects  []Effect

	Outcome Outcome

	nextUnitID int64
	nextFXID   int64
	events     []Event
	log        []LogLine
}

func NewWorld(width, height int) *World {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &World{Grid: NewGrid(width, height)}
}

func (w *World) nextID() int64 {
	w.nextUnitID++
	return w.nextUnitID
}

func (w *World) nextEffectID() int64 {
	w.nextFXID++
	return w.nextFXID
}

func (w *World) Over() bool { return w.Outcome.Over }

func (w *World) emit(e Event) { w.events = append(w.events, e) }

func (w *World) Logf(c RGB, format string, args ...any) {
	w.log = append(w.log, LogLine{Text: fmt.Sprintf(format, args...), Color: c})
}

// DrainEvents hands the accumulated events to the presenter and clears them.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}

func (w *World) DrainLog() []LogLine {
	out := w.log
	w.log = nil
	return out
}

func (w *World) AddEffect(e Effect) { w.Effects = append(w.Effects, e) }

// AddGeneral registers a general for a side. The first one registered is the
// active commander; the rest sit on the bench as swap targets. Every general
// readies for battle once, here: later swaps keep wounds and cooldowns.
func (w *World) AddGeneral(g *General) {
	side := g.Side
	if !side.Valid() {
		return
	}
	g.Unit.ID = w.nextID()
	g.Unit.Gen = g
	g.StartBattle()
	if w.Generals[side] == nil {
		w.Generals[side] = g
	} else {
		w.Reserves[side] = append(w.Reserves[side], g)
	}
}

// SpawnUnit builds a live unit from a spec onto a free tile. Returns nil when
// the tile is blocked. The owner, when set, collects the unit's kill credit.
func (w *World) SpawnUnit(spec UnitSpec, side Side, x, y int, owner *Unit) *Unit {
	if !w.Grid.Free(x, y) {
		return nil
	}
	u := &Unit{
		ID:           w.nextID(),
		Spec:         spec,
		Side:         side,
		X:            x,
		Y:            y,
		Alive:        true,
		HP:           spec.MaxHP,
		Power:        spec.Power,
		Armor:        map[DamageType]int{},
		Sprite:       spec.Sprite,
		AttackDamage: DamagePhysical,
		NextAction:   spec.Cadence,
		Owner:        owner,
	}
	for t, v := range spec.Armor {
		u.Armor[t] = v
	}
	if owner != nil {
		u.Color = owner.Color
	}
	w.Grid.place(u, x, y)
	switch spec.Kind {
	case KindMine:
		w.Others = append(w.Others, u)
	default:
		w.Minions = append(w.Minions, u)
		if side.Valid() && w.Generals[side] != nil {
			w.Generals[side].MinionsAlive++
		}
	}
	w.emit(Event{Kind: EventSpawned, Turn: w.Turn, Actor: spec.Name, Pos: u.Pos(), Side: side})
	return u
}

// Attack is a unit striking another with its own power and damage type.
func (w *World) Attack(a *Unit, target *Unit) {
	w.Damage(a, target, a.AttackPower(), a.AttackType(), a.AttackEffect())
}

// Damage applies one hit. Armor of the matching type soaks it, damage never
// goes negative, hit points clamp at zero and death flips Alive exactly once.
// A mine ignores the incoming hit: it detonates on its attacker instead.
func (w *World) Damage(a Attacker, target *Unit, power int, dtype DamageType, fx *FXTemplate) {
	if target == nil || !target.Alive || w.Outcome.Over {
		return
	}
	if target.Spec.Kind == KindMine {
		w.detonateMine(target, a)
		return
	}
	dmg := power - target.armorAgainst(dtype)
	if dmg < 0 {
		dmg = 0
	}
	target.HP -= dmg
	if target.HP < 0 {
		target.HP = 0
	}
	if fx != nil {
		w.AddEffect(&TempFX{ID: w.nextEffectID(), Side: a.AttackerSide(), X: target.X, Y: target.Y, Sprite: fx.Sprite, Color: fx.Color, Duration: fx.Duration, alive: true})
	}
	w.emit(Event{Kind: EventAttacked, Turn: w.Turn, Actor: a.AttackerName(), Target: target.Spec.Name, Amount: dmg, Pos: target.Pos(), Side: a.AttackerSide()})
	if target.HP == 0 {
		w.kill(target, a)
	}
}

// detonateMine blows the mine on whoever touched it. Only units take the
// blast; a projectile or status sweeping a mine just clears it.
func (w *World) detonateMine(mine *Unit, a Attacker) {
	if !mine.Alive {
		return
	}
	mine.Alive = false
	w.Grid.clear(mine.X, mine.Y)
	w.emit(Event{Kind: EventDied, Turn: w.Turn, Actor: mine.Spec.Name, Pos: mine.Pos(), Side: mine.Side})
	if u, ok := a.(*Unit); ok {
		w.Damage(&mineBlast{mine}, u, mine.Power, DamageMagical, nil)
	}
}

// mineBlast lets a dead mine appear as the attacker of its own explosion.
type mineBlast struct{ mine *Unit }

func (b *mineBlast) AttackerName() string      { return b.mine.Spec.Name }
func (b *mineBlast) AttackerSide() Side        { return b.mine.Side }
func (b *mineBlast) AttackPower() int          { return b.mine.Power }
func (b *mineBlast) AttackType() DamageType    { return DamageMagical }
func (b *mineBlast) AttackEffect() *FXTemplate { return nil }
func (b *mineBlast) CreditKill(victim *Unit)   { b.mine.CreditKill(victim) }

func (w *World) kill(target *Unit, a Attacker) {
	target.Alive = false
	w.Grid.clear(target.X, target.Y)
	a.CreditKill(target)
	if target.Side.Valid() && target.Spec.Kind != KindGeneral && target.Spec.Kind != KindMine {
		if g := w.Generals[target.Side]; g != nil && g.MinionsAlive > 0 {
			g.MinionsAlive--
		}
	}
	if target.Gen != nil {
		target.Gen.ClearFlag()
	}
	w.emit(Event{Kind: EventDied, Turn: w.Turn, Actor: target.Spec.Name, Pos: target.Pos(), Side: target.Side})
}

// canBePushed checks whether the unit could be shoved one tile. Generals and
// walls stop a push; anything else recurses into a chain.
func (w *World) canBePushed(u *Unit, dx, dy int) bool {
	if u.Spec.Kind == KindGeneral {
		return false
	}
	nx, ny := u.X+dx, u.Y+dy
	if !w.Grid.Passable(nx, ny) {
		return false
	}
	n := w.Grid.At(nx, ny)
	return n == nil || w.canBePushed(n, dx, dy)
}

func (w *World) canMove(u *Unit, dx, dy int) bool {
	nx, ny := u.X+dx, u.Y+dy
	if !w.Grid.Passable(nx, ny) {
		return false
	}
	n := w.Grid.At(nx, ny)
	if n == nil {
		return true
	}
	if n.Side != u.Side {
		return false
	}
	return w.canBePushed(n, dx, dy)
}

// MoveUnit steps the unit one tile, shoving allied units ahead of it in a
// chain. A unit that was pushed this way forfeits its own next move. Returns
// whether the unit ended up moving.
func (w *World) MoveUnit(u *Unit, dx, dy int) bool {
	if u.pushed {
		u.pushed = false
		return false
	}
	if !w.canMove(u, dx, dy) {
		return false
	}
	nx, ny := u.X+dx, u.Y+dy
	if n := w.Grid.At(nx, ny); n != nil {
		w.pushUnit(n, dx, dy)
	}
	w.Grid.clear(u.X, u.Y)
	u.X, u.Y = nx, ny
	w.Grid.place(u, nx, ny)
	w.emit(Event{Kind: EventMoved, Turn: w.Turn, Actor: u.Spec.Name, Pos: u.Pos(), Side: u.Side})
	return true
}

func (w *World) pushUnit(u *Unit, dx, dy int) {
	u.pushed = false
	w.MoveUnit(u, dx, dy)
	u.pushed = true
}

// SwapGeneral exchanges the active general with bench slot i. The incoming
// general inherits the tile, the walk-to flag and the tactic memory, keeps
// whatever wounds and skill cooldowns it left the field with, and suffers
// swap sickness before its first act; its swap goes on full cooldown.
func (w *World) SwapGeneral(side Side, i int) bool {
	if !side.Valid() {
		return false
	}
	g := w.Generals[side]
	if g == nil || !g.Alive || g.SwapCD > 0 {
		return false
	}
	if i < 0 || i >= len(w.Reserves[side]) {
		return false
	}
	in := w.Reserves[side][i]
	w.Reserves[side][i] = g
	w.Generals[side] = in

	x, y := g.X, g.Y
	hadFlag := g.flag != nil && g.flag.IsAlive()
	flagPos := g.flagPos
	w.Grid.clear(x, y)
	g.ClearFlag()
	g.X, g.Y = -1, -1

	in.X, in.Y = x, y
	in.SwapCD = in.SwapMaxCD
	in.NextAction = in.SwapSickness
	in.MinionsAlive = g.MinionsAlive
	g.MinionsAlive = 0
	in.selected, in.previous = g.selected, g.previous
	w.Grid.place(&in.Unit, x, y)
	if hadFlag {
		in.PlaceFlag(w, flagPos.X, flagPos.Y)
	}

	w.emit(Event{Kind: EventSwap, Turn: w.Turn, Actor: in.Spec.Name, Target: g.Spec.Name, Pos: in.Pos(), Side: side})
	w.Logf(in.Color, "%s takes the field!", in.Spec.Name)
	return true
}

// cleanup drops dead units and finished effects from the rosters. Grid tiles
// were already cleared at death time.
func (w *World) cleanup() {
	minions := w.Minions[:0]
	for _, m := range w.Minions {
		if m.Alive {
			minions = append(minions, m)
		}
	}
	w.Minions = minions

	others := w.Others[:0]
	for _, o := range w.Others {
		if o.Alive {
			others = append(others, o)
		}
	}
	w.Others = others

	effects := w.Effects[:0]
	for _, e := range w.Effects {
		if e.IsAlive() {
			effects = append(effects, e)
		}
	}
	w.Effects = effects
}

// checkWinner inspects both commanders after the turn's deaths settled. Both
// falling on the same turn is a draw; the outcome is absorbing either way.
func (w *World) checkWinner() {
	if w.Outcome.Over {
		return
	}
	dead0 := w.Generals[Side0] == nil || !w.Generals[Side0].Alive
	dead1 := w.Generals[Side1] == nil || !w.Generals[Side1].Alive
	if !dead0 && !dead1 {
		return
	}
	for s := Side0; s <= Side1; s++ {
		g := w.Generals[s]
		if g != nil && !g.Alive && g.DeathQuote != "" {
			w.Logf(g.Color, "%s: \"%s\"", g.Spec.Name, g.DeathQuote)
			w.Logf(g.Color, "%s is dead!", g.Spec.Name)
		}
	}
	switch {
	case dead0 && dead1:
		w.Outcome = Outcome{Over: true, Draw: true, Winner: SideNeutral}
		w.Logf(RGB{255, 255, 255}, "Both commanders have fallen. The battle is a draw.")
	case dead0:
		w.Outcome = Outcome{Over: true, Winner: Side1}
		w.Logf(w.Generals[Side1].Color, "%s is victorious!", w.Generals[Side1].Spec.Name)
	default:
		w.Outcome = Outcome{Over: true, Winner: Side0}
		w.Logf(w.Generals[Side0].Color, "%s is victorious!", w.Generals[Side0].Spec.Name)
	}
}

// AdvanceTurn runs the fixed per-turn phases after commands were applied:
// generals in side order, then effects, then minions in spawn order, then
// cleanup and the win check. Index loops tolerate mid-iteration growth so
// entities spawned this turn are visited the way they were appended.
func (w *World) AdvanceTurn() {
	if w.Outcome.Over {
		return
	}
	for s := Side0; s <= Side1; s++ {
		if g := w.Generals[s]; g != nil {
			g.Update(w)
		}
	}
	for i := 0; i < len(w.Effects); i++ {
		w.Effects[i].Update(w)
	}
	for i := 0; i < len(w.Minions); i++ {
		updateMinion(w, w.Minions[i])
	}
	w.cleanup()
	w.checkWinner()
	w.Turn++
}
