package battle

// Snapshot is the render-boundary view of the world: everything a presenter
// needs to draw a frame, with no references back into live state.
type Snapshot struct {
	Turn     int          `json:"turn"`
	Entities []EntityView `json:"entities"`
	Over     bool         `json:"over"`
	Draw     bool         `json:"draw"`
	Winner   Side         `json:"winner"`
}

func unitView(u *Unit) EntityView {
	return EntityView{
		ID:     u.ID,
		Sprite: u.Sprite,
		Name:   u.Spec.Name,
		Side:   u.Side,
		X:      u.X,
		Y:      u.Y,
		HPFrac: u.HPFrac(),
		Color:  u.Color,
	}
}

// Snapshot captures the current frame in roster order: generals, minions,
// mines, effects.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{Turn: w.Turn, Over: w.Outcome.Over, Draw: w.Outcome.Draw, Winner: w.Outcome.Winner}
	for s := Side0; s <= Side1; s++ {
		if g := w.Generals[s]; g != nil && g.Alive && g.OnBoard() {
			snap.Entities = append(snap.Entities, unitView(&g.Unit))
		}
	}
	for _, m := range w.Minions {
		if m.Alive {
			snap.Entities = append(snap.Entities, unitView(m))
		}
	}
	for _, o := range w.Others {
		if o.Alive {
			snap.Entities = append(snap.Entities, unitView(o))
		}
	}
	for _, e := range w.Effects {
		if e.IsAlive() {
			snap.Entities = append(snap.Entities, e.View())
		}
	}
	return snap
}
