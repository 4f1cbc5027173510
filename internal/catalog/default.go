package catalog

import "gridlock/internal/battle"

// Default builds the stock registry both peers must share. Content is data,
// but it is versioned with the binary: peers running different catalogs would
// desync, so there is no runtime content negotiation.
func Default() *Registry {
	r := NewRegistry()
	for _, spec := range defaultUnits() {
		if err := r.AddUnit(spec); err != nil {
			panic(err)
		}
	}
	for _, def := range defaultGenerals() {
		if err := r.AddGeneral(def); err != nil {
			panic(err)
		}
	}
	return r
}

func defaultUnits() []battle.UnitSpec {
	return []battle.UnitSpec{
		{
			Key: "swordsman", Name: "swordsman", Kind: battle.KindMinion, Sprite: "swordsman",
			MaxHP: 40, Power: 10,
			Armor:   map[battle.DamageType]int{battle.DamagePhysical: 3},
			Cadence: 5,
		},
		{
			Key: "archer", Name: "archer", Kind: battle.KindRanged, Sprite: "archer",
			MaxHP: 25, Power: 6,
			Armor:       map[battle.DamageType]int{},
			Cadence:     10,
			RangedPower: 8,
		},
		{
			Key: "skeleton", Name: "skeleton", Kind: battle.KindMinion, Sprite: "skeleton",
			MaxHP: 25, Power: 8,
			Armor:   map[battle.DamageType]int{battle.DamageMagical: 4},
			Cadence: 5,
		},
		{
			Key: "briar_mine", Name: "briar mine", Kind: battle.KindMine, Sprite: "mine",
			MaxHP: 1, Power: 35,
			Armor: map[battle.DamageType]int{},
		},
	}
}

func defaultGenerals() []*GeneralDef {
	return []*GeneralDef{
		{
			Key: "kord", Name: "Marshal Kord", Faction: "Iron Legion",
			DeathQuote: "Hold the line... without me...",
			MaxHP:      300, Power: 25,
			Armor:   map[battle.DamageType]int{battle.DamagePhysical: 8, battle.DamageMagical: 2},
			Cadence: 5, Sprite: "kord",
			Color:        battle.RGB{R: 200, G: 60, B: 40},
			SwapMaxCD:    200, SwapSickness: 15,
			MinionKey: "swordsman", StartingMinions: 24,
			Formation: battle.Rows{PerColumn: 8},
			Skills: func(r *Registry) []*battle.Skill {
				swordsman, _ := r.Unit("swordsman")
				return []*battle.Skill{
					{
						Name: "Rally", Quote: "To me, Legion!",
						Desc:   "Call reinforcements to the Marshal's side.",
						MaxCD:  150,
						Effect: battle.RestockEffect(swordsman, 6),
					},
					{
						Name: "Bulwark", Quote: "Shields up!",
						Desc:  "Harden nearby allies against blades.",
						MaxCD: 90,
						Area: &battle.Area{
							Shape: battle.Circle{R: 6}, Sieve: battle.SieveAlly,
							Reach: battle.ReachAnywhere, SelfCentered: true,
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusShield, Name: "bulwark",
							Magnitude: 6, Duration: 60, ArmorType: battle.DamagePhysical,
						}),
					},
					{
						Name: "Cannonade", Quote: "Fire at will!",
						Desc:  "Shell a distant area after a short fuse.",
						MaxCD: 120,
						Area: &battle.Area{
							Shape: battle.Circle{R: 3}, Sieve: battle.SieveInside,
							Reach: battle.ReachWithin(battle.LongReach),
						},
						Effect: battle.BlastEffect(30, 3),
					},
				}
			},
		},
		{
			Key: "maren", Name: "Sister Maren", Faction: "Iron Legion",
			DeathQuote: "The light... goes out...",
			MaxHP:      220, Power: 12,
			Armor:   map[battle.DamageType]int{battle.DamageMagical: 8},
			Cadence: 5, Sprite: "maren",
			Color:        battle.RGB{R: 240, G: 220, B: 120},
			SwapMaxCD:    200, SwapSickness: 15,
			MinionKey: "archer", StartingMinions: 16,
			Formation: battle.InvertedWedge{Spread: 1},
			Skills: func(r *Registry) []*battle.Skill {
				return []*battle.Skill{
					{
						Name: "Mend", Quote: "Stand and be whole.",
						Desc:  "Heal allies in the chosen area.",
						MaxCD: 80,
						Area: &battle.Area{
							Shape: battle.Circle{R: 4}, Sieve: battle.SieveAlly,
							Reach: battle.ReachWithin(battle.LongReach),
						},
						Effect: battle.HealEffect(20),
					},
					{
						Name: "Benediction", Quote: "Strength to your arms.",
						Desc:  "Empower nearby allies' attacks.",
						MaxCD: 110,
						Area: &battle.Area{
							Shape: battle.Circle{R: 6}, Sieve: battle.SieveAlly,
							Reach: battle.ReachAnywhere, SelfCentered: true,
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusEmpower, Name: "benediction",
							Magnitude: 50, Duration: 50,
						}),
					},
					{
						Name: "Repulsion", Quote: "Back, all of you!",
						Desc:  "Shove everything near the Sister away from her.",
						MaxCD: 60,
						Area: &battle.Area{
							Shape: battle.Circle{R: 3}, Sieve: battle.SieveOccupied,
							Reach: battle.ReachAnywhere, SelfCentered: true,
						},
						Effect: battle.ShoveEffect(),
					},
					{
						Name: "Censure", Quote: "Be still.",
						Desc:  "Stun a single enemy at close range.",
						MaxCD: 70,
						Area: &battle.Area{
							Shape: battle.SingleTile{}, Sieve: battle.SieveEnemy,
							Reach: battle.ReachWithin(battle.CloseReach),
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusStun, Name: "censure",
							Duration: 25,
						}),
					},
				}
			},
		},
		{
			Key: "vassago", Name: "Vassago the Hollow", Faction: "Pale Covenant",
			DeathQuote: "Death was never my master... only my trade...",
			MaxHP:      240, Power: 18,
			Armor:   map[battle.DamageType]int{battle.DamageMagical: 6},
			Cadence: 5, Sprite: "vassago",
			Color:        battle.RGB{R: 120, G: 80, B: 200},
			SwapMaxCD:    200, SwapSickness: 15,
			MinionKey: "skeleton", StartingMinions: 20,
			Formation: battle.FlyingWedge{Spread: 1},
			Skills: func(r *Registry) []*battle.Skill {
				skeleton, _ := r.Unit("skeleton")
				return []*battle.Skill{
					{
						Name: "Raise Dead", Quote: "Up. You are not finished.",
						Desc:  "Raise skeletons on empty ground.",
						MaxCD: 130,
						Area: &battle.Area{
							Shape: battle.Circle{R: 2}, Sieve: battle.SieveEmpty,
							Reach: battle.ReachWithin(battle.CloseReach),
						},
						Effect: battle.SummonEffect(skeleton),
					},
					{
						Name: "Miasma", Quote: "Breathe deep.",
						Desc:  "Poison enemies in a wide area.",
						MaxCD: 100,
						Area: &battle.Area{
							Shape: battle.Circle{R: 5}, Sieve: battle.SieveEnemy,
							Reach: battle.ReachWithin(battle.LongReach),
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusPoison, Name: "miasma",
							Magnitude: 4, Duration: 40, Interval: 8,
						}),
					},
					{
						Name: "Soul Nova", Quote: "Begone, flesh.",
						Desc:  "Release a wave that scours everything in its path.",
						MaxCD: 160,
						Area: &battle.Area{
							Shape: battle.SingleTile{}, Sieve: battle.SieveInside,
							Reach: battle.ReachAnywhere, SelfCentered: true,
						},
						Effect: battle.WaveEffect(25),
					},
				}
			},
		},
		{
			Key: "ilex", Name: "Thornwife Ilex", Faction: "Pale Covenant",
			DeathQuote: "The roots will remember you.",
			MaxHP:      260, Power: 15,
			Armor:   map[battle.DamageType]int{battle.DamagePhysical: 4, battle.DamageMagical: 4},
			Cadence: 5, Sprite: "ilex",
			Color:        battle.RGB{R: 60, G: 160, B: 90},
			SwapMaxCD:    200, SwapSickness: 15,
			MinionKey: "skeleton", StartingMinions: 18,
			Formation: battle.Rows{PerColumn: 6},
			Skills: func(r *Registry) []*battle.Skill {
				mine, _ := r.Unit("briar_mine")
				return []*battle.Skill{
					{
						Name: "Seed Mines", Quote: "Careful where you step.",
						Desc:  "Bury briar mines on empty tiles.",
						MaxCD: 120,
						Area: &battle.Area{
							Shape: battle.Circle{R: 2}, Sieve: battle.SieveEmpty,
							Reach: battle.ReachWithin(battle.CloseReach),
						},
						Effect: battle.MineEffect(mine),
					},
					{
						Name: "Sap Rush", Quote: "Run them down.",
						Desc:  "Hasten nearby allies.",
						MaxCD: 90,
						Area: &battle.Area{
							Shape: battle.Circle{R: 6}, Sieve: battle.SieveAlly,
							Reach: battle.ReachAnywhere, SelfCentered: true,
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusHaste, Name: "sap rush",
							Magnitude: 1, Duration: 30,
						}),
					},
					{
						Name: "Winterhold", Quote: "Let your fire gutter out.",
						Desc:  "Freeze an enemy commander's skill cooldowns.",
						MaxCD: 140,
						Area: &battle.Area{
							Shape: battle.SingleTile{}, Sieve: battle.SieveEnemy,
							Reach: battle.ReachAnywhere,
						},
						Effect: battle.StatusEffect(battle.Status{
							Kind: battle.StatusFreeze, Name: "winterhold",
							Duration: 30,
						}),
					},
				}
			},
		},
	}
}
