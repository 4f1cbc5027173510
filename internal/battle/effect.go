package battle

// Effect is a non-occupying battlefield object: attack flashes, projectiles,
// flag markers. Effects update once per turn like units but never block tiles.
type Effect interface {
	Update(w *World)
	IsAlive() bool
	View() EntityView
}

// FXTemplate describes the visual spawned when an attack lands. Cloning a
// template onto a tile produces a short-lived TempFX there.
type FXTemplate struct {
	Sprite   string
	Color    RGB
	Duration int
}

// TempFX sits on a tile for a fixed number of turns and disappears.
type TempFX struct {
	ID       int64
	Side     Side
	X, Y     int
	Sprite   string
	Color    RGB
	Duration int
	alive    bool
}

func (e *TempFX) IsAlive() bool { return e.alive }

func (e *TempFX) Update(w *World) {
	if !e.alive {
		return
	}
	e.Duration--
	if e.Duration < 0 {
		e.alive = false
	}
}

func (e *TempFX) View() EntityView {
	return EntityView{ID: e.ID, Sprite: e.Sprite, Name: "fx", Side: e.Side, X: e.X, Y: e.Y, Color: e.Color}
}

// FlagMark is the blinking flag a general walks toward. It stays alive until
// cleared; visibility toggles on a fixed period for the renderer.
type FlagMark struct {
	ID      int64
	Side    Side
	X, Y    int
	Color   RGB
	alive   bool
	visible bool
	timer   int
}

const flagBlinkPeriod = 5

func (e *FlagMark) IsAlive() bool { return e.alive }

func (e *FlagMark) Update(w *World) {
	if !e.alive {
		return
	}
	e.timer--
	if e.timer <= 0 {
		e.timer = flagBlinkPeriod
		e.visible = !e.visible
	}
}

func (e *FlagMark) Clear() { e.alive = false }

func (e *FlagMark) View() EntityView {
	sprite := "flag"
	if !e.visible {
		sprite = ""
	}
	return EntityView{ID: e.ID, Sprite: sprite, Name: "flag", Side: e.Side, X: e.X, Y: e.Y, Color: e.Color}
}

// Wave is a sonic wavefront that sweeps across the field away from its side,
// damaging every unit it passes exactly once, allies included.
type Wave struct {
	ID    int64
	Side  Side
	X, Y  int
	Power int
	Owner *Unit
	alive bool
	hit   map[*Unit]bool
}

func NewWave(w *World, owner *Unit, x, y, power int) *Wave {
	wv := &Wave{ID: w.nextEffectID(), Side: owner.Side, X: x, Y: y, Power: power, Owner: owner, alive: true, hit: map[*Unit]bool{}}
	wv.strike(w)
	return wv
}

func (e *Wave) forward() int {
	if e.Side == Side0 {
		return 1
	}
	return -1
}

func (e *Wave) strike(w *World) {
	u := w.Grid.At(e.X, e.Y)
	if u != nil && !e.hit[u] {
		e.hit[u] = true
		w.Damage(e, u, e.Power, DamageMagical, nil)
	}
}

func (e *Wave) Update(w *World) {
	if !e.alive {
		return
	}
	if !w.Grid.Inside(e.X+e.forward(), e.Y) {
		e.alive = false
		return
	}
	e.strike(w)
	e.X += e.forward()
	e.strike(w)
}

func (e *Wave) IsAlive() bool { return e.alive }

func (e *Wave) View() EntityView {
	return EntityView{ID: e.ID, Sprite: "wave", Name: "wave", Side: e.Side, X: e.X, Y: e.Y, Color: RGB{0, 0, 255}}
}

func (e *Wave) AttackerName() string      { return "wave" }
func (e *Wave) AttackerSide() Side        { return e.Side }
func (e *Wave) AttackPower() int          { return e.Power }
func (e *Wave) AttackType() DamageType    { return DamageMagical }
func (e *Wave) AttackEffect() *FXTemplate { return nil }

func (e *Wave) CreditKill(victim *Unit) {
	if e.Owner != nil {
		e.Owner.CreditKill(victim)
	}
}

// Arrow is a ranged minion's projectile: flies forward one tile per turn and
// detonates on the first enemy it touches.
type Arrow struct {
	ID    int64
	Side  Side
	X, Y  int
	Power int
	Owner *Unit
	alive bool
}

func NewArrow(w *World, owner *Unit, x, y, power int) *Arrow {
	a := &Arrow{ID: w.nextEffectID(), Side: owner.Side, X: x, Y: y, Power: power, Owner: owner, alive: true}
	a.strike(w)
	return a
}

func (e *Arrow) forward() int {
	if e.Side == Side0 {
		return 1
	}
	return -1
}

func (e *Arrow) strike(w *World) {
	u := w.Grid.At(e.X, e.Y)
	if u != nil && u.Side != e.Side {
		w.Damage(e, u, e.Power, DamagePhysical, nil)
		e.alive = false
	}
}

func (e *Arrow) Update(w *World) {
	if !e.alive {
		return
	}
	if !w.Grid.Inside(e.X+e.forward(), e.Y) {
		e.alive = false
		return
	}
	e.strike(w)
	if !e.alive {
		return
	}
	e.X += e.forward()
	e.strike(w)
}

func (e *Arrow) IsAlive() bool { return e.alive }

func (e *Arrow) View() EntityView {
	sprite := "arrow_r"
	if e.Side == Side1 {
		sprite = "arrow_l"
	}
	return EntityView{ID: e.ID, Sprite: sprite, Name: "arrow", Side: e.Side, X: e.X, Y: e.Y, Color: RGB{255, 165, 0}}
}

func (e *Arrow) AttackerName() string      { return "arrow" }
func (e *Arrow) AttackerSide() Side        { return e.Side }
func (e *Arrow) AttackPower() int          { return e.Power }
func (e *Arrow) AttackType() DamageType    { return DamagePhysical }
func (e *Arrow) AttackEffect() *FXTemplate { return nil }

func (e *Arrow) CreditKill(victim *Unit) {
	if e.Owner != nil {
		e.Owner.CreditKill(victim)
	}
}

// Blast is a delayed explosion: it charges for fuse turns, then damages
// whatever stands on its tile and disappears.
type Blast struct {
	ID    int64
	Side  Side
	X, Y  int
	Power int
	Fuse  int
	Owner *Unit
	alive bool
}

func NewBlast(w *World, owner *Unit, x, y, power, fuse int) *Blast {
	return &Blast{ID: w.nextEffectID(), Side: owner.Side, X: x, Y: y, Power: power, Fuse: fuse, Owner: owner, alive: true}
}

func (e *Blast) Update(w *World) {
	if !e.alive {
		return
	}
	if e.Fuse > 0 {
		e.Fuse--
		return
	}
	if u := w.Grid.At(e.X, e.Y); u != nil && u.Side != e.Side {
		w.Damage(e, u, e.Power, DamageMagical, nil)
	}
	e.alive = false
}

func (e *Blast) IsAlive() bool { return e.alive }

func (e *Blast) View() EntityView {
	return EntityView{ID: e.ID, Sprite: "blast", Name: "blast", Side: e.Side, X: e.X, Y: e.Y, Color: RGB{255, 255, 0}}
}

func (e *Blast) AttackerName() string      { return "blast" }
func (e *Blast) AttackerSide() Side        { return e.Side }
func (e *Blast) AttackPower() int          { return e.Power }
func (e *Blast) AttackType() DamageType    { return DamageMagical }
func (e *Blast) AttackEffect() *FXTemplate { return nil }

func (e *Blast) CreditKill(victim *Unit) {
	if e.Owner != nil {
		e.Owner.CreditKill(victim)
	}
}
