package battle

// Skill effect constructors. Each returns a closure the catalog pairs with an
// Area to form a concrete skill; the closures hold the tuning numbers.

// HealEffect restores hit points to the unit on the tile, capped at max HP.
func HealEffect(amount int) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		u := w.Grid.At(p.X, p.Y)
		if u == nil || !u.Alive {
			return false
		}
		before := u.HP
		u.HP += amount
		if u.HP > u.Spec.MaxHP {
			u.HP = u.Spec.MaxHP
		}
		return u.HP > before
	}
}

// DamageEffect hits the unit on the tile directly.
func DamageEffect(power int, dtype DamageType, fx *FXTemplate) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		u := w.Grid.At(p.X, p.Y)
		if u == nil || !u.Alive {
			return false
		}
		w.Damage(&g.Unit, u, power, dtype, fx)
		return true
	}
}

// StatusEffect attaches a copy of the prototype to the unit on the tile.
func StatusEffect(proto Status) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		u := w.Grid.At(p.X, p.Y)
		if u == nil || !u.Alive {
			return false
		}
		AttachStatus(w, u, proto, &g.Unit)
		return true
	}
}

// MineEffect buries an armed mine on an empty tile. The mine belongs to the
// caster's side so only enemies trigger it.
func MineEffect(spec UnitSpec) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		return w.SpawnUnit(spec, g.Side, p.X, p.Y, &g.Unit) != nil
	}
}

// SummonEffect raises a minion on an empty tile, credited to the caster.
func SummonEffect(spec UnitSpec) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		u := w.SpawnUnit(spec, g.Side, p.X, p.Y, &g.Unit)
		if u == nil {
			return false
		}
		u.Tactic = g.SelectedTactic()
		return true
	}
}

// WaveEffect launches a sonic wavefront from the tile.
func WaveEffect(power int) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		w.AddEffect(NewWave(w, &g.Unit, p.X, p.Y, power))
		return true
	}
}

// BlastEffect plants a delayed explosion on the tile.
func BlastEffect(power, fuse int) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		w.AddEffect(NewBlast(w, &g.Unit, p.X, p.Y, power, fuse))
		return true
	}
}

// ShoveEffect pushes the unit on the tile one step away from the caster,
// with the same chain rules as a battlefield push. Generals hold their
// ground.
func ShoveEffect() SkillEffect {
	return func(w *World, g *General, p Point) bool {
		u := w.Grid.At(p.X, p.Y)
		if u == nil || !u.Alive {
			return false
		}
		dx, dy := sign(p.X-g.X), sign(p.Y-g.Y)
		if dx == 0 && dy == 0 {
			return false
		}
		if !w.canBePushed(u, dx, dy) {
			return false
		}
		w.pushUnit(u, dx, dy)
		return true
	}
}

// RestockEffect is a self-cast reinforcement call: it spawns up to n minions
// on the free tiles nearest the general, scanned in a fixed ring order so
// both simulations fill identical tiles.
func RestockEffect(spec UnitSpec, n int) SkillEffect {
	return func(w *World, g *General, p Point) bool {
		left := n
		for r := 1; r <= 6 && left > 0; r++ {
			for dy := -r; dy <= r && left > 0; dy++ {
				for dx := -r; dx <= r && left > 0; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					x, y := g.X+dx, g.Y+dy
					if !w.Grid.Free(x, y) {
						continue
					}
					if u := w.SpawnUnit(spec, g.Side, x, y, &g.Unit); u != nil {
						u.Tactic = g.SelectedTactic()
						left--
					}
				}
			}
		}
		return left < n
	}
}
