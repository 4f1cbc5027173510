package battle

import "testing"

func TestStatusRefreshDoesNotStack(t *testing.T) {
	w := NewWorld(20, 15)
	u := w.SpawnUnit(minionSpec("u", 100, 10, 5), Side0, 2, 2, nil)

	AttachStatus(w, u, Status{Kind: StatusShield, Name: "bulwark", Magnitude: 6, Duration: 10, ArmorType: DamagePhysical}, nil)
	AttachStatus(w, u, Status{Kind: StatusShield, Name: "bulwark", Magnitude: 6, Duration: 30, ArmorType: DamagePhysical}, nil)

	if len(u.Statuses) != 1 {
		t.Fatalf("same-name status stacked: %d entries", len(u.Statuses))
	}
	if u.Statuses[0].Duration != 30 {
		t.Fatalf("refresh kept duration %d, want 30", u.Statuses[0].Duration)
	}
	if u.Armor[DamagePhysical] != 6 {
		t.Fatalf("armor bonus applied twice: %d", u.Armor[DamagePhysical])
	}

	// A shorter reapplication never shortens the remaining duration.
	AttachStatus(w, u, Status{Kind: StatusShield, Name: "bulwark", Magnitude: 6, Duration: 5, ArmorType: DamagePhysical}, nil)
	if u.Statuses[0].Duration != 30 {
		t.Fatalf("refresh shortened duration to %d", u.Statuses[0].Duration)
	}
}

func TestShieldExpiryRestoresArmor(t *testing.T) {
	w := NewWorld(20, 15)
	u := w.SpawnUnit(minionSpec("u", 100, 10, 5), Side0, 2, 2, nil)
	u.Armor[DamagePhysical] = 3

	AttachStatus(w, u, Status{Kind: StatusShield, Name: "bulwark", Magnitude: 6, Duration: 2, ArmorType: DamagePhysical}, nil)
	if u.Armor[DamagePhysical] != 9 {
		t.Fatalf("armor with shield = %d, want 9", u.Armor[DamagePhysical])
	}
	updateStatuses(w, u)
	updateStatuses(w, u)
	if len(u.Statuses) != 0 {
		t.Fatal("expired status not removed")
	}
	if u.Armor[DamagePhysical] != 3 {
		t.Fatalf("armor after expiry = %d, want 3", u.Armor[DamagePhysical])
	}
}

func TestPoisonTicksAndCreditsKiller(t *testing.T) {
	w := NewWorld(20, 15)
	caster := w.SpawnUnit(minionSpec("caster", 100, 10, 5), Side0, 2, 2, nil)
	victim := w.SpawnUnit(minionSpec("victim", 8, 10, 5), Side1, 5, 5, nil)

	AttachStatus(w, victim, Status{Kind: StatusPoison, Name: "miasma", Magnitude: 4, Duration: 50, Interval: 2}, caster)

	// Interval 2: damage lands on every third update.
	updateStatuses(w, victim)
	updateStatuses(w, victim)
	if victim.HP != 8 {
		t.Fatalf("poison ticked early: hp=%d", victim.HP)
	}
	updateStatuses(w, victim)
	if victim.HP != 4 {
		t.Fatalf("hp after first poison tick = %d, want 4", victim.HP)
	}
	for i := 0; i < 3; i++ {
		updateStatuses(w, victim)
	}
	if victim.Alive {
		t.Fatal("poison should have killed the victim")
	}
	if caster.Kills != 1 {
		t.Fatalf("poison kill credit = %d, want 1", caster.Kills)
	}
}

func TestEmpowerAddsAndRemovesPower(t *testing.T) {
	w := NewWorld(20, 15)
	u := w.SpawnUnit(minionSpec("u", 100, 20, 5), Side0, 2, 2, nil)

	AttachStatus(w, u, Status{Kind: StatusEmpower, Name: "benediction", Magnitude: 50, Duration: 2}, nil)
	if u.Power != 30 {
		t.Fatalf("empowered power = %d, want 30", u.Power)
	}
	updateStatuses(w, u)
	updateStatuses(w, u)
	if u.Power != 20 {
		t.Fatalf("power after expiry = %d, want 20", u.Power)
	}
}

func TestStunResetsAction(t *testing.T) {
	w := NewWorld(20, 15)
	u := w.SpawnUnit(minionSpec("u", 100, 10, 5), Side0, 2, 2, nil)
	u.NextAction = 0

	AttachStatus(w, u, Status{Kind: StatusStun, Name: "censure", Duration: 10}, nil)
	updateStatuses(w, u)
	if u.NextAction != u.Spec.Cadence {
		t.Fatalf("stunned unit ready to act: next=%d", u.NextAction)
	}
}

func TestFreezeHoldsSkillCooldowns(t *testing.T) {
	w := NewWorld(20, 15)
	g := addTestGeneral(t, w, Side0, 2, 5)
	s := testSkill(40, nil, func(w *World, g *General, p Point) bool { return true })
	s.CD = 10
	g.Skills = []*Skill{s}

	AttachStatus(w, &g.Unit, Status{Kind: StatusFreeze, Name: "winterhold", Duration: 5}, nil)
	// Each update the freeze adds back what the cooldown tick removes.
	for i := 0; i < 5; i++ {
		g.Update(w)
	}
	if s.CD != 10 {
		t.Fatalf("cd under freeze = %d, want 10", s.CD)
	}
	g.Update(w)
	if s.CD != 9 {
		t.Fatalf("cd after freeze expired = %d, want 9", s.CD)
	}
}

// Poison dropping a commander must settle the battle the same turn: the
// cleanup pass clears the corpse and the win check sees it.
func TestPoisonCanDecideTheBattle(t *testing.T) {
	w := NewWorld(20, 15)
	g0 := addTestGeneral(t, w, Side0, 2, 5)
	g1 := addTestGeneral(t, w, Side1, 17, 5)
	g1.HP = 3

	AttachStatus(w, &g1.Unit, Status{Kind: StatusPoison, Name: "miasma", Magnitude: 5, Duration: 20, Interval: 0}, &g0.Unit)
	for i := 0; i < 5 && !w.Over(); i++ {
		w.AdvanceTurn()
	}
	if !w.Over() || w.Outcome.Winner != Side0 {
		t.Fatalf("outcome = %+v, want side 0 win by poison", w.Outcome)
	}
	if g0.Kills != 1 {
		t.Fatalf("poison kill credit = %d, want 1", g0.Kills)
	}
	if w.Grid.At(17, 5) != nil {
		t.Fatal("dead general left on the grid")
	}
}

func TestStatusesTickInAttachOrder(t *testing.T) {
	w := NewWorld(20, 15)
	u := w.SpawnUnit(minionSpec("u", 100, 10, 5), Side0, 2, 2, nil)

	AttachStatus(w, u, Status{Kind: StatusHaste, Name: "first", Magnitude: 1, Duration: 10}, nil)
	AttachStatus(w, u, Status{Kind: StatusHaste, Name: "second", Magnitude: 1, Duration: 10}, nil)
	if u.Statuses[0].Name != "first" || u.Statuses[1].Name != "second" {
		t.Fatal("status list is not FIFO")
	}
}
