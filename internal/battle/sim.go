package battle

import "gridlock/internal/protocol"

// turnLag is how many ticks behind the input turn the simulation runs. The
// gap gives a remote command time to cross the wire before its turn is
// simulated, so neither peer simulates a turn it might still get input for.
const turnLag = 1

type slot struct {
	cmd  *protocol.Command
	idle bool
}

// Scheduler drives the world in lockstep. Wall-clock ticks advance the input
// turn unconditionally; the simulation turn advances only once both sides
// have resolved it with a command or an explicit idle. In local play the
// opponent slot is considered always resolved.
type Scheduler struct {
	W         *World
	Networked bool

	// InputTurn is the turn currently accepting player input.
	InputTurn int
	// SimTurn is the next turn to simulate.
	SimTurn int

	slots [2]map[int]slot
}

func NewScheduler(w *World, networked bool) *Scheduler {
	return &Scheduler{
		W:         w,
		Networked: networked,
		slots:     [2]map[int]slot{{}, {}},
	}
}

// Queue records a side's command for its stamped turn. Commands for already
// simulated turns are rejected; the first command per side per turn wins.
func (s *Scheduler) Queue(c protocol.Command) bool {
	side := Side(c.Side)
	if !side.Valid() || c.Turn < s.SimTurn {
		return false
	}
	if _, dup := s.slots[side][c.Turn]; dup {
		return false
	}
	s.slots[side][c.Turn] = slot{cmd: &c}
	return true
}

// MarkIdle resolves a side's turn with no command.
func (s *Scheduler) MarkIdle(side Side, turn int) {
	if !side.Valid() || turn < s.SimTurn {
		return
	}
	if _, dup := s.slots[side][turn]; dup {
		return
	}
	s.slots[side][turn] = slot{idle: true}
}

func (s *Scheduler) resolved(side Side, turn int) bool {
	if !s.Networked {
		return true
	}
	_, ok := s.slots[side][turn]
	return ok
}

// Stalled reports whether the simulation is waiting on a remote turn, which
// the client surfaces as a connection hiccup.
func (s *Scheduler) Stalled() bool {
	t := s.InputTurn - turnLag - 1
	return s.SimTurn <= t && !(s.resolved(Side0, s.SimTurn) && s.resolved(Side1, s.SimTurn))
}

// Tick is one wall-clock beat: open the next input turn, then simulate every
// turn whose inputs are complete and old enough.
func (s *Scheduler) Tick() {
	s.InputTurn++
	for s.SimTurn <= s.InputTurn-turnLag-1 &&
		s.resolved(Side0, s.SimTurn) && s.resolved(Side1, s.SimTurn) {
		s.step(s.SimTurn)
		s.SimTurn++
	}
}

// step applies the turn's commands in side order and advances the world.
// After the battle ends commands are still consumed but change nothing.
func (s *Scheduler) step(turn int) {
	for side := Side0; side <= Side1; side++ {
		sl := s.slots[side][turn]
		delete(s.slots[side], turn)
		if sl.cmd != nil && !s.W.Outcome.Over {
			s.apply(side, *sl.cmd)
		}
	}
	s.W.AdvanceTurn()
}

// apply executes one command against the world. Invalid commands (bad index,
// cooldown not ready, fizzled target) are dropped; both peers drop them
// identically because validity is a pure function of shared state.
func (s *Scheduler) apply(side Side, c protocol.Command) {
	g := s.W.Generals[side]
	if g == nil || !g.Alive {
		return
	}
	switch c.Verb {
	case protocol.VerbStop:
		g.ClearFlag()
	case protocol.VerbFlag:
		g.PlaceFlag(s.W, c.X, c.Y)
	case protocol.VerbSkill:
		g.UseSkill(s.W, c.N, c.X, c.Y)
	case protocol.VerbSwap:
		s.W.SwapGeneral(side, c.N)
	case protocol.VerbTactic:
		g.CommandTactic(s.W, TacticID(c.N))
	}
}
