package battle

// tryAttack probes the four adjacent tiles in a fixed order relative to the
// unit's facing: front, back, above, below. The first enemy found is hit.
// The fixed order keeps both simulations picking the same target.
func (w *World) tryAttack(u *Unit) bool {
	fwd := forwardX(u.Side)
	probes := [4][2]int{{fwd, 0}, {-fwd, 0}, {0, -1}, {0, 1}}
	for _, d := range probes {
		t := w.Grid.At(u.X+d[0], u.Y+d[1])
		if t == nil || !t.Alive || t.Side == u.Side {
			continue
		}
		w.Attack(u, t)
		return true
	}
	return false
}

// updateMinion runs one turn for a rank-and-file unit: statuses first, then
// on its cadence beat an attack if an enemy is adjacent, otherwise its
// current tactic. Mines never act; they only retaliate.
func updateMinion(w *World, m *Unit) {
	if !m.Alive {
		return
	}
	updateStatuses(w, m)
	if !m.Alive || m.Spec.Kind == KindMine {
		return
	}
	if m.NextAction > 0 {
		m.NextAction--
	}
	if m.NextAction > 0 {
		return
	}
	m.resetAction()
	if !w.tryAttack(m) {
		followTactic(w, m)
	}
}
