// Package ai is the built-in opponent for local play. It reads the shared
// world and emits ordinary protocol commands, so the engine cannot tell a
// bot from a remote player.
package ai

import (
	"math/rand"

	"gridlock/internal/battle"
	"gridlock/internal/protocol"
)

// Controller issues commands for one side on a fixed think cadence. Its
// randomness is seeded, so a replay with the same seed makes the same calls.
type Controller struct {
	Side  battle.Side
	World *battle.World

	rng   *rand.Rand
	every int
	next  int
}

// New builds a controller thinking once per `every` turns.
func New(w *battle.World, side battle.Side, seed int64, every int) *Controller {
	if every <= 0 {
		every = 10
	}
	return &Controller{
		Side:  side,
		World: w,
		rng:   rand.New(rand.NewSource(seed)),
		every: every,
	}
}

// Decide returns the side's command for this turn, or nil to idle. Priority:
// fire a ready skill at a scored target, otherwise reposition the general,
// otherwise adjust the tactic.
func (c *Controller) Decide(turn int) *protocol.Command {
	g := c.World.Generals[c.Side]
	if g == nil || !g.Alive || c.World.Over() {
		return nil
	}
	if turn < c.next {
		return nil
	}
	c.next = turn + c.every

	if cmd := c.trySkill(g); cmd != nil {
		cmd.Turn = turn
		cmd.Side = int(c.Side)
		return cmd
	}
	if cmd := c.tryFlag(g); cmd != nil {
		cmd.Turn = turn
		cmd.Side = int(c.Side)
		return cmd
	}
	cmd := c.pickTactic(g)
	if cmd == nil {
		return nil
	}
	cmd.Turn = turn
	cmd.Side = int(c.Side)
	return cmd
}

// trySkill fires the first ready skill whose best anchor affects enough
// tiles. Anchors are scored by affected tile count over enemy positions and
// the caster's own tile.
func (c *Controller) trySkill(g *battle.General) *protocol.Command {
	for i, s := range g.Skills {
		if !s.Ready() {
			continue
		}
		best, score := battle.Point{X: g.X, Y: g.Y}, 0
		for _, anchor := range c.anchors(g) {
			n := len(s.TargetTiles(c.World, g, anchor.X, anchor.Y))
			if n > score {
				best, score = anchor, n
			}
		}
		if score == 0 {
			continue
		}
		return &protocol.Command{Verb: protocol.VerbSkill, N: i, X: best.X, Y: best.Y}
	}
	return nil
}

func (c *Controller) anchors(g *battle.General) []battle.Point {
	pts := []battle.Point{{X: g.X, Y: g.Y}}
	for _, m := range c.World.Minions {
		if m.Alive && m.Side != c.Side {
			pts = append(pts, m.Pos())
		}
	}
	if e := c.World.Generals[c.Side.Opponent()]; e != nil && e.Alive && e.OnBoard() {
		pts = append(pts, e.Pos())
	}
	return pts
}

// tryFlag keeps the general drifting toward mid-field, retreating when hurt.
func (c *Controller) tryFlag(g *battle.General) *protocol.Command {
	if c.rng.Intn(3) != 0 {
		return nil
	}
	grid := c.World.Grid
	x := grid.W / 2
	if g.HPFrac() < 0.4 {
		if c.Side == battle.Side0 {
			x = 3
		} else {
			x = grid.W - 4
		}
	} else if c.Side == battle.Side0 {
		x = grid.W/2 - 8
	} else {
		x = grid.W/2 + 8
	}
	y := 2 + c.rng.Intn(grid.H-4)
	if !grid.Passable(x, y) {
		return nil
	}
	return &protocol.Command{Verb: protocol.VerbFlag, X: x, Y: y}
}

func (c *Controller) pickTactic(g *battle.General) *protocol.Command {
	choices := []battle.TacticID{
		battle.TacticForward,
		battle.TacticAttackGeneral,
		battle.TacticGoCenter,
		battle.TacticDefendGeneral,
	}
	t := choices[c.rng.Intn(len(choices))]
	if t == g.SelectedTactic() {
		return nil
	}
	return &protocol.Command{Verb: protocol.VerbTactic, N: int(t)}
}
