package battle

import (
	"reflect"
	"testing"

	"gridlock/internal/protocol"
)

func buildDuelWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(30, 15)
	g0 := addTestGeneral(t, w, Side0, 3, 7)
	g1 := addTestGeneral(t, w, Side1, 26, 7)
	Rows{PerColumn: 4}.Place(w, g0, minionSpec("m0", 30, 8, 5), 8)
	Rows{PerColumn: 4}.Place(w, g1, minionSpec("m1", 30, 8, 5), 8)
	return w
}

// Two simulations fed the same command script must stay byte-identical.
// This is the whole contract of lockstep play.
func TestLockstepDeterminism(t *testing.T) {
	script := []protocol.Command{
		{Turn: 0, Side: 0, Verb: protocol.VerbTactic, N: int(TacticForward)},
		{Turn: 0, Side: 1, Verb: protocol.VerbTactic, N: int(TacticForward)},
		{Turn: 3, Side: 0, Verb: protocol.VerbFlag, X: 10, Y: 7},
		{Turn: 5, Side: 1, Verb: protocol.VerbFlag, X: 18, Y: 5},
		{Turn: 20, Side: 0, Verb: protocol.VerbTactic, N: int(TacticAttackGeneral)},
		{Turn: 40, Side: 1, Verb: protocol.VerbTactic, N: int(TacticDefendGeneral)},
	}

	run := func() Snapshot {
		w := buildDuelWorld(t)
		s := NewScheduler(w, false)
		for _, c := range script {
			s.Queue(c)
		}
		for i := 0; i < 200; i++ {
			s.Tick()
		}
		return w.Snapshot()
	}

	a := run()
	b := run()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical scripts produced divergent worlds")
	}
	if a.Turn == 0 {
		t.Fatal("simulation never advanced")
	}
}

func TestNetworkedSchedulerWaitsForBothSides(t *testing.T) {
	w := buildDuelWorld(t)
	s := NewScheduler(w, true)

	// Only side 0 resolves its turns; the sim must not advance past them.
	for i := 0; i < 10; i++ {
		s.MarkIdle(Side0, s.InputTurn)
		s.Tick()
	}
	if s.SimTurn != 0 {
		t.Fatalf("sim advanced to %d without side 1 input", s.SimTurn)
	}
	if !s.Stalled() {
		t.Fatal("scheduler should report a stall")
	}

	// Resolving side 1's backlog releases the held turns at once.
	for turn := 0; turn < 8; turn++ {
		s.MarkIdle(Side1, turn)
	}
	s.Tick()
	if s.SimTurn != 8 {
		t.Fatalf("sim turn = %d after backlog resolved, want 8", s.SimTurn)
	}
}

func TestLocalSchedulerNeverStalls(t *testing.T) {
	w := buildDuelWorld(t)
	s := NewScheduler(w, false)
	for i := 0; i < 50; i++ {
		if s.Stalled() {
			t.Fatal("local play stalled")
		}
		s.Tick()
	}
	if s.SimTurn == 0 {
		t.Fatal("local play did not simulate")
	}
}

func TestQueueRejectsPastAndDuplicate(t *testing.T) {
	w := buildDuelWorld(t)
	s := NewScheduler(w, false)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Queue(protocol.Command{Turn: 0, Side: 0, Verb: protocol.VerbStop}) {
		t.Fatal("command for an already simulated turn accepted")
	}
	c := protocol.Command{Turn: s.InputTurn, Side: 0, Verb: protocol.VerbStop}
	if !s.Queue(c) {
		t.Fatal("fresh command rejected")
	}
	if s.Queue(c) {
		t.Fatal("second command for the same side and turn accepted")
	}
	if s.Queue(protocol.Command{Turn: s.InputTurn, Side: 7, Verb: protocol.VerbStop}) {
		t.Fatal("command with invalid side accepted")
	}
}

func TestCommandsApplyInSideOrder(t *testing.T) {
	w := buildDuelWorld(t)
	s := NewScheduler(w, false)
	s.Queue(protocol.Command{Turn: 0, Side: 1, Verb: protocol.VerbTactic, N: int(TacticBackward)})
	s.Queue(protocol.Command{Turn: 0, Side: 0, Verb: protocol.VerbTactic, N: int(TacticForward)})
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if w.Generals[Side0].SelectedTactic() != TacticForward {
		t.Fatal("side 0 command not applied")
	}
	if w.Generals[Side1].SelectedTactic() != TacticBackward {
		t.Fatal("side 1 command not applied")
	}
}

func TestTerminalStateAbsorbsCommands(t *testing.T) {
	w := buildDuelWorld(t)
	s := NewScheduler(w, false)
	w.Generals[Side1].HP = 0
	w.Generals[Side1].Alive = false
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if !w.Over() || w.Outcome.Winner != Side0 {
		t.Fatalf("outcome = %+v, want side 0 win", w.Outcome)
	}
	turnAtEnd := w.Turn
	snap := w.Snapshot()

	s.Queue(protocol.Command{Turn: s.InputTurn, Side: 0, Verb: protocol.VerbTactic, N: int(TacticForward)})
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if w.Turn != turnAtEnd {
		t.Fatal("turn counter moved after the battle ended")
	}
	if !reflect.DeepEqual(snap, w.Snapshot()) {
		t.Fatal("world changed after the battle ended")
	}
}

func TestInvalidCommandsDroppedIdentically(t *testing.T) {
	run := func() Snapshot {
		w := buildDuelWorld(t)
		s := NewScheduler(w, false)
		// Bad skill index, bad swap index, out of range tactic.
		s.Queue(protocol.Command{Turn: 0, Side: 0, Verb: protocol.VerbSkill, N: 5, X: 4, Y: 4})
		s.Queue(protocol.Command{Turn: 1, Side: 0, Verb: protocol.VerbSwap, N: 3})
		s.Queue(protocol.Command{Turn: 2, Side: 1, Verb: protocol.VerbTactic, N: 99})
		for i := 0; i < 30; i++ {
			s.Tick()
		}
		return w.Snapshot()
	}
	if !reflect.DeepEqual(run(), run()) {
		t.Fatal("invalid command handling diverged")
	}
}

// A full scripted battle driven to the kill: forward tactics march the lines
// into each other and the survivors reach the enemy commander.
func TestBattleRunsToVictory(t *testing.T) {
	w := NewWorld(30, 15)
	g0 := addTestGeneral(t, w, Side0, 3, 7)
	g1 := addTestGeneral(t, w, Side1, 26, 7)
	g1.HP = 30
	Rows{PerColumn: 4}.Place(w, g0, minionSpec("m0", 30, 8, 5), 12)

	s := NewScheduler(w, false)
	s.Queue(protocol.Command{Turn: 0, Side: 0, Verb: protocol.VerbTactic, N: int(TacticAttackGeneral)})
	for i := 0; i < 5000 && !w.Over(); i++ {
		s.Tick()
	}
	if !w.Over() {
		t.Fatal("battle never resolved")
	}
	if w.Outcome.Winner != Side0 {
		t.Fatalf("outcome = %+v, want side 0 win", w.Outcome)
	}
}
