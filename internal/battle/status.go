package battle

// StatusKind selects the per-turn behavior of a status. Like units, statuses
// are a single struct switched on a kind tag.
type StatusKind string

const (
	StatusPoison  StatusKind = "poison"
	StatusShield  StatusKind = "shield"
	StatusHaste   StatusKind = "haste"
	StatusStun    StatusKind = "stun"
	StatusFreeze  StatusKind = "freeze"
	StatusEmpower StatusKind = "empower"
)

// Status is a timed modifier attached to a unit. A unit's statuses form a
// FIFO list and tick in attach order during the owner's update.
type Status struct {
	Kind      StatusKind
	Name      string
	Magnitude int
	Duration  int
	// Poison only: turns between damage ticks.
	Interval int
	// Shield only: which armor entry the magnitude is added to.
	ArmorType DamageType
	// Source gets kill credit for poison deaths.
	Source *Unit

	timer int
	bonus int
}

// AttachStatus puts a copy of the prototype on the unit. A status with the
// same name refreshes the existing one instead of stacking; the surviving
// duration is the longer of the two.
func AttachStatus(w *World, u *Unit, proto Status, source *Unit) {
	for _, s := range u.Statuses {
		if s.Name == proto.Name {
			if proto.Duration > s.Duration {
				s.Duration = proto.Duration
			}
			s.Source = source
			return
		}
	}
	s := proto
	s.Source = source
	s.onAttach(u)
	u.Statuses = append(u.Statuses, &s)
}

func (s *Status) onAttach(u *Unit) {
	switch s.Kind {
	case StatusShield:
		if u.Armor == nil {
			u.Armor = map[DamageType]int{}
		}
		u.Armor[s.ArmorType] += s.Magnitude
	case StatusEmpower:
		s.bonus = u.Power * s.Magnitude / 100
		u.Power += s.bonus
	case StatusPoison:
		s.timer = s.Interval
	}
}

func (s *Status) onEnd(u *Unit) {
	switch s.Kind {
	case StatusShield:
		if u.Armor != nil {
			u.Armor[s.ArmorType] -= s.Magnitude
		}
	case StatusEmpower:
		u.Power -= s.bonus
	}
}

func (s *Status) tick(w *World, u *Unit) {
	switch s.Kind {
	case StatusPoison:
		s.timer--
		if s.timer < 0 {
			s.timer = s.Interval
			w.Damage(s, u, s.Magnitude, DamageMagical, nil)
		}
	case StatusHaste:
		u.NextAction -= s.Magnitude
	case StatusStun:
		u.resetAction()
	case StatusFreeze:
		if u.Gen != nil {
			for _, sk := range u.Gen.Skills {
				if sk.CD < sk.MaxCD {
					sk.CD++
				}
			}
		}
	}
}

// updateStatuses advances the unit's statuses in attach order and removes the
// expired ones. Expiry undoes attach-time stat changes.
func updateStatuses(w *World, u *Unit) {
	kept := u.Statuses[:0]
	for _, s := range u.Statuses {
		if !u.Alive {
			kept = append(kept, s)
			continue
		}
		s.Duration--
		s.tick(w, u)
		if s.Duration <= 0 {
			s.onEnd(u)
			continue
		}
		kept = append(kept, s)
	}
	u.Statuses = kept
}

// Statuses deal damage as attackers so poison kills carry credit.
func (s *Status) AttackerName() string { return s.Name }

func (s *Status) AttackerSide() Side {
	if s.Source != nil {
		return s.Source.Side
	}
	return SideNeutral
}

func (s *Status) AttackPower() int          { return s.Magnitude }
func (s *Status) AttackType() DamageType    { return DamageMagical }
func (s *Status) AttackEffect() *FXTemplate { return nil }

func (s *Status) CreditKill(victim *Unit) {
	if s.Source != nil {
		s.Source.CreditKill(victim)
	}
}
