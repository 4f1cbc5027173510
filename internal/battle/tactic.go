package battle

// TacticID is a movement policy a general broadcasts to every minion on its
// side. Minions consult the tactic only when no adjacent enemy is in reach.
type TacticID int

const (
	TacticStop TacticID = iota
	TacticForward
	TacticBackward
	TacticGoFlanks
	TacticGoCenter
	TacticAttackGeneral
	TacticDefendGeneral
	TacticDisperse
	tacticCount
)

var tacticNames = [...]string{
	TacticStop:          "stop",
	TacticForward:       "forward",
	TacticBackward:      "backward",
	TacticGoFlanks:      "go flanks",
	TacticGoCenter:      "go center",
	TacticAttackGeneral: "attack general",
	TacticDefendGeneral: "defend general",
	TacticDisperse:      "disperse",
}

func (t TacticID) Valid() bool { return t >= 0 && t < tacticCount }

func (t TacticID) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tacticNames[t]
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// forwardX is +1 for side 0 and -1 for side 1; every horizontal tactic is
// expressed relative to it so both sides mirror.
func forwardX(s Side) int {
	if s == Side1 {
		return -1
	}
	return 1
}

// followTactic moves the minion one step according to its current tactic.
// Called only when the minion is ready to act and found nothing to hit.
func followTactic(w *World, m *Unit) {
	switch m.Tactic {
	case TacticStop:
		if m.Spec.Kind == KindRanged {
			fireForward(w, m)
		}
	case TacticForward:
		w.MoveUnit(m, forwardX(m.Side), 0)
	case TacticBackward:
		w.MoveUnit(m, -forwardX(m.Side), 0)
	case TacticGoFlanks:
		if m.Y <= w.Grid.H/2 {
			w.MoveUnit(m, 0, -1)
		} else {
			w.MoveUnit(m, 0, 1)
		}
	case TacticGoCenter:
		w.MoveUnit(m, 0, sign(w.Grid.H/2-m.Y))
	case TacticAttackGeneral:
		if g := w.Generals[m.Side.Opponent()]; g != nil && g.Alive && g.OnBoard() {
			stepToward(w, m, g.Pos())
		}
	case TacticDefendGeneral:
		if g := w.Generals[m.Side]; g != nil && g.Alive && g.OnBoard() {
			if m.Pos().Dist(g.Pos()) > 4 {
				stepToward(w, m, g.Pos())
			}
		}
	case TacticDisperse:
		stepApart(w, m)
	}
}

// stepToward closes on the target one axis at a time, longest axis first.
func stepToward(w *World, m *Unit, target Point) {
	dx := target.X - m.X
	dy := target.Y - m.Y
	if abs(dx) >= abs(dy) {
		if dx != 0 && w.MoveUnit(m, sign(dx), 0) {
			return
		}
		if dy != 0 {
			w.MoveUnit(m, 0, sign(dy))
		}
	} else {
		if dy != 0 && w.MoveUnit(m, 0, sign(dy)) {
			return
		}
		if dx != 0 {
			w.MoveUnit(m, sign(dx), 0)
		}
	}
}

// stepApart moves away from the nearest allied minion, breaking up clumps.
func stepApart(w *World, m *Unit) {
	var nearest *Unit
	best := 1 << 30
	for _, o := range w.Minions {
		if o == m || !o.Alive || o.Side != m.Side {
			continue
		}
		if d := m.Pos().Dist(o.Pos()); d < best {
			best = d
			nearest = o
		}
	}
	if nearest == nil {
		return
	}
	dx := sign(m.X - nearest.X)
	dy := sign(m.Y - nearest.Y)
	if dx != 0 && w.MoveUnit(m, dx, 0) {
		return
	}
	if dy != 0 {
		w.MoveUnit(m, 0, dy)
	}
}

// fireForward looses an arrow if the tile ahead is clear of allies.
func fireForward(w *World, m *Unit) {
	x := m.X + forwardX(m.Side)
	if !w.Grid.Inside(x, m.Y) {
		return
	}
	if u := w.Grid.At(x, m.Y); u != nil && u.Side == m.Side {
		return
	}
	w.AddEffect(NewArrow(w, m, x, m.Y, m.Spec.RangedPower))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
