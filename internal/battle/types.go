package battle

// Side identifies one of the two opposing players. Terrain-owned entities
// (mines, neutral visual effects) use SideNeutral.
type Side int

const (
	Side0       Side = 0
	Side1       Side = 1
	SideNeutral Side = -1
)

// Opponent returns the other playing side. Neutral has no opponent.
func (s Side) Opponent() Side {
	if s == SideNeutral {
		return SideNeutral
	}
	return (s + 1) % 2
}

func (s Side) Valid() bool { return s == Side0 || s == Side1 }

// DamageType selects which armor entry reduces an incoming hit.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan grid distance, the tie-break metric for target selection.
func (p Point) Dist(q Point) int {
	dx := p.X - q.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - q.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type EventKind string

const (
	EventSpawned  EventKind = "spawned"
	EventMoved    EventKind = "moved"
	EventAttacked EventKind = "attacked"
	EventDied     EventKind = "died"
	EventQuote    EventKind = "quote"
	EventSkill    EventKind = "skill"
	EventSwap     EventKind = "swap"
	EventTactic   EventKind = "tactic"
)

// Event is a semantic notification for the external presenter. The core never
// draws anything; it records what happened and lets the renderer decide.
type Event struct {
	Kind   EventKind `json:"kind"`
	Turn   int       `json:"turn"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Amount int       `json:"amount,omitempty"`
	Pos    Point     `json:"pos"`
	Side   Side      `json:"side"`
}

// LogLine is one entry of the battle message log, already formatted for
// display but carrying the speaker's color so the renderer can tint it.
type LogLine struct {
	Text  string `json:"text"`
	Color RGB    `json:"color"`
}

// EntityView is the per-entity slice of a renderable snapshot.
type EntityView struct {
	ID     int64   `json:"id"`
	Sprite string  `json:"sprite"`
	Name   string  `json:"name"`
	Side   Side    `json:"side"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	HPFrac float64 `json:"hp_frac"`
	Color  RGB     `json:"color"`
}
