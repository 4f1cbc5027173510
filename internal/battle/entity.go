package battle

// UnitKind tags the concrete variant of a board unit. Behavior differences
// are resolved by switching on the kind, not by subclassing.
type UnitKind string

const (
	KindMinion  UnitKind = "minion"
	KindRanged  UnitKind = "ranged"
	KindGeneral UnitKind = "general"
	KindMine    UnitKind = "mine"
)

// UnitSpec is the static stat block a unit is built from. Specs come from the
// catalog (optionally overridden by the units file) and are shared; runtime
// state lives on Unit.
type UnitSpec struct {
	Key     string             `yaml:"key"`
	Name    string             `yaml:"name"`
	Kind    UnitKind           `yaml:"kind"`
	Sprite  string             `yaml:"sprite"`
	MaxHP   int                `yaml:"max_hp"`
	Power   int                `yaml:"power"`
	Armor   map[DamageType]int `yaml:"armor"`
	Cadence int                `yaml:"cadence"`
	// Ranged units only.
	RangedPower int `yaml:"ranged_power"`
}

// Unit is any attackable thing standing on the grid: minions, generals and
// mines. Exactly one unit may occupy a tile.
type Unit struct {
	ID     int64
	Spec   UnitSpec
	Side   Side
	X, Y   int
	Alive  bool
	HP     int
	Power  int
	Armor  map[DamageType]int
	Color  RGB
	Sprite string

	AttackDamage DamageType
	AttackFX     *FXTemplate

	// NextAction counts down each turn; the unit acts when it reaches zero
	// and then resets to Spec.Cadence.
	NextAction int

	Tactic TacticID
	pushed bool

	Statuses []*Status
	Kills    int

	// Owner receives kill credit for units and effects this one spawned.
	Owner *Unit
	// Gen is set when this unit is the embedded body of a General.
	Gen *General
}

func (u *Unit) Pos() Point          { return Point{u.X, u.Y} }
func (u *Unit) OnBoard() bool       { return u.X >= 0 && u.Y >= 0 }
func (u *Unit) IsAlly(v *Unit) bool { return u.Side == v.Side }

func (u *Unit) armorAgainst(t DamageType) int {
	if u.Armor == nil {
		return 0
	}
	return u.Armor[t]
}

func (u *Unit) resetAction() { u.NextAction = u.Spec.Cadence }

// HPFrac is the render-boundary health fraction.
func (u *Unit) HPFrac() float64 {
	if u.Spec.MaxHP <= 0 {
		return 0
	}
	f := float64(u.HP) / float64(u.Spec.MaxHP)
	if f < 0 {
		f = 0
	}
	return f
}

// Attacker is anything that can deal damage: units, travelling effects and
// damage-over-time statuses. Kill credit flows back through it.
type Attacker interface {
	AttackerName() string
	AttackerSide() Side
	AttackPower() int
	AttackType() DamageType
	AttackEffect() *FXTemplate
	CreditKill(victim *Unit)
}

func (u *Unit) AttackerName() string      { return u.Spec.Name }
func (u *Unit) AttackerSide() Side        { return u.Side }
func (u *Unit) AttackPower() int          { return u.Power }
func (u *Unit) AttackType() DamageType    { return u.AttackDamage }
func (u *Unit) AttackEffect() *FXTemplate { return u.AttackFX }

func (u *Unit) CreditKill(victim *Unit) {
	u.Kills++
	if u.Owner != nil {
		u.Owner.Kills++
	}
}
