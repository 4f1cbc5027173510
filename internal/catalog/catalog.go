// Package catalog is the explicit registry of playable content: factions,
// generals, their minions and skills. Nothing registers itself through init
// side effects; a battle asks the registry for definitions by key.
package catalog

import (
	"fmt"
	"sort"

	"gridlock/internal/battle"
)

// GeneralDef is the static description of one general. Build turns it into a
// live battle.General; the def itself never holds battle state.
type GeneralDef struct {
	Key        string
	Name       string
	Faction    string
	DeathQuote string

	MaxHP   int
	Power   int
	Armor   map[battle.DamageType]int
	Cadence int
	Sprite  string
	Color   battle.RGB

	SwapMaxCD    int
	SwapSickness int

	MinionKey       string
	StartingMinions int
	Formation       battle.Formation

	// Skills builds fresh skill instances; closures inside capture specs from
	// the registry, so the builder runs against it.
	Skills func(r *Registry) []*battle.Skill
}

// Registry holds every known unit spec and general def, keyed by stable
// string keys.
type Registry struct {
	units    map[string]battle.UnitSpec
	generals map[string]*GeneralDef
}

func NewRegistry() *Registry {
	return &Registry{
		units:    map[string]battle.UnitSpec{},
		generals: map[string]*GeneralDef{},
	}
}

func (r *Registry) AddUnit(spec battle.UnitSpec) error {
	if spec.Key == "" {
		return fmt.Errorf("catalog: unit spec without key")
	}
	if _, dup := r.units[spec.Key]; dup {
		return fmt.Errorf("catalog: duplicate unit key %q", spec.Key)
	}
	r.units[spec.Key] = spec
	return nil
}

func (r *Registry) AddGeneral(def *GeneralDef) error {
	if def.Key == "" {
		return fmt.Errorf("catalog: general def without key")
	}
	if _, dup := r.generals[def.Key]; dup {
		return fmt.Errorf("catalog: duplicate general key %q", def.Key)
	}
	r.generals[def.Key] = def
	return nil
}

func (r *Registry) Unit(key string) (battle.UnitSpec, bool) {
	s, ok := r.units[key]
	return s, ok
}

func (r *Registry) General(key string) (*GeneralDef, bool) {
	g, ok := r.generals[key]
	return g, ok
}

// GeneralKeys lists every registered general in sorted order.
func (r *Registry) GeneralKeys() []string {
	keys := make([]string, 0, len(r.generals))
	for k := range r.generals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OverrideUnit replaces stats of an already registered unit spec. Used by the
// units file loader.
func (r *Registry) OverrideUnit(spec battle.UnitSpec) error {
	if _, ok := r.units[spec.Key]; !ok {
		return fmt.Errorf("catalog: override for unknown unit %q", spec.Key)
	}
	r.units[spec.Key] = spec
	return nil
}

// Build instantiates a general for a side. The returned general is not yet on
// the board; the world deploys it.
func (r *Registry) Build(key string, side battle.Side) (*battle.General, error) {
	def, ok := r.generals[key]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown general %q", key)
	}
	minion, ok := r.units[def.MinionKey]
	if !ok {
		return nil, fmt.Errorf("catalog: general %q references unknown minion %q", key, def.MinionKey)
	}
	armor := map[battle.DamageType]int{}
	for t, v := range def.Armor {
		armor[t] = v
	}
	g := &battle.General{
		Unit: battle.Unit{
			Spec: battle.UnitSpec{
				Key:     def.Key,
				Name:    def.Name,
				Kind:    battle.KindGeneral,
				Sprite:  def.Sprite,
				MaxHP:   def.MaxHP,
				Power:   def.Power,
				Armor:   def.Armor,
				Cadence: def.Cadence,
			},
			Side:         side,
			X:            -1,
			Y:            -1,
			Power:        def.Power,
			Armor:        armor,
			Color:        def.Color,
			Sprite:       def.Sprite,
			AttackDamage: battle.DamagePhysical,
		},
		Faction:         def.Faction,
		DeathQuote:      def.DeathQuote,
		SwapMaxCD:       def.SwapMaxCD,
		SwapSickness:    def.SwapSickness,
		MinionSpec:      minion,
		Formation:       def.Formation,
		StartingMinions: def.StartingMinions,
	}
	if def.Skills != nil {
		g.Skills = def.Skills(r)
	}
	return g, nil
}
