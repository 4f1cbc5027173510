package battle

// SkillEffect applies a skill to one resolved tile and reports whether it
// changed anything there.
type SkillEffect func(w *World, g *General, p Point) bool

// Skill is one of a general's special abilities. Cooldown counts down one per
// turn and the skill is ready at zero; using it resets the cooldown to max.
// Skills start on full cooldown so a fresh battle opens with a charge-up.
type Skill struct {
	Name  string
	Quote string
	Desc  string

	CD    int
	MaxCD int

	// Area is nil for self-cast skills that take no target.
	Area   *Area
	Effect SkillEffect
}

// exertionPenalty is added to a general's other skills whenever one is used.
const exertionPenalty = 5

func (s *Skill) Ready() bool { return s.CD <= 0 }

func (s *Skill) tickCooldown() {
	if s.CD > 0 {
		s.CD--
	}
}

func (s *Skill) delay(n int) {
	s.CD += n
	if s.CD > s.MaxCD {
		s.CD = s.MaxCD
	}
}

// TargetTiles previews the tiles the skill would affect for an anchor. Pure.
func (s *Skill) TargetTiles(w *World, g *General, x, y int) []Point {
	if s.Area == nil {
		return []Point{{g.X, g.Y}}
	}
	return s.Area.Tiles(w, g, x, y)
}

// apply runs the effect over the resolved tiles. True when at least one tile
// was actually affected; a fizzle leaves the cooldown untouched.
func (s *Skill) apply(w *World, g *General, x, y int) bool {
	if s.Effect == nil {
		return false
	}
	if s.Area == nil {
		return s.Effect(w, g, Point{g.X, g.Y})
	}
	tiles := s.Area.Tiles(w, g, x, y)
	if len(tiles) == 0 {
		return false
	}
	any := false
	for _, p := range tiles {
		if s.Effect(w, g, p) {
			any = true
		}
	}
	return any
}
