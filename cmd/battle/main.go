// Command battle runs one lockstep battle as a headless client: commands in
// on stdin, battle log out on stdout. Networked play goes through the relay;
// without a relay URL it plays the built-in opponent locally.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"gridlock/internal/ai"
	"gridlock/internal/battle"
	"gridlock/internal/catalog"
	"gridlock/internal/config"
	"gridlock/internal/netplay"
	"gridlock/internal/protocol"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadBattle()
	if err != nil {
		return err
	}
	log, err := buildLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	reg := catalog.Default()
	if cfg.UnitsFile != "" {
		if err := config.ApplyUnitsFile(reg, cfg.UnitsFile); err != nil {
			return err
		}
	}

	w, err := setupWorld(reg, cfg)
	if err != nil {
		return err
	}

	networked := cfg.RelayURL != ""
	localSide := battle.Side(cfg.Side)
	if !localSide.Valid() {
		return fmt.Errorf("battle: side must be 0 or 1, got %d", cfg.Side)
	}
	sched := battle.NewScheduler(w, networked)

	var link *netplay.Conn
	var bot *ai.Controller
	if networked {
		link, err = netplay.Dial(context.Background(), cfg.RelayURL, log)
		if err != nil {
			return err
		}
		defer link.Close()
		log.Info("connected to relay", zap.String("url", cfg.RelayURL), zap.Int("side", int(localSide)))
	} else {
		bot = ai.New(w, localSide.Opponent(), time.Now().UnixNano(), 10)
	}

	input := readCommands(log)
	ticker := time.NewTicker(time.Duration(cfg.TurnMillis) * time.Millisecond)
	defer ticker.Stop()

	remoteSide := localSide.Opponent()
	remoteTurn := 0
	stalled := false

	for range ticker.C {
		if link != nil {
			select {
			case <-link.Closed():
				return fmt.Errorf("battle: connection lost, session cannot continue")
			default:
			}
		}

		turn := sched.InputTurn

		// At most one local command per turn; leftovers wait for later ticks.
		sent := false
		select {
		case cmd := <-input:
			cmd.Turn = turn
			cmd.Side = int(localSide)
			if sched.Queue(cmd) {
				sent = true
				if link != nil {
					if err := link.SendCommand(turn, cmd); err != nil {
						return err
					}
				}
			}
		default:
		}
		if link != nil && !sent {
			sched.MarkIdle(localSide, turn)
			if err := link.SendIdle(); err != nil {
				return err
			}
		}

		if link != nil {
			for _, f := range link.Poll() {
				if f.Idle {
					sched.MarkIdle(remoteSide, remoteTurn)
					remoteTurn++
					continue
				}
				cmd, err := protocol.ParseCommand(f.Text)
				if err != nil {
					// Dropped, not fatal: the turn resolves as idle.
					log.Warn("dropping malformed command", zap.String("frame", f.Text), zap.Error(err))
					sched.MarkIdle(remoteSide, f.Turn)
					remoteTurn = f.Turn + 1
					continue
				}
				cmd.Turn = f.Turn
				cmd.Side = int(remoteSide)
				sched.Queue(cmd)
				remoteTurn = f.Turn + 1
			}
		}

		if bot != nil {
			if cmd := bot.Decide(turn); cmd != nil {
				sched.Queue(*cmd)
			}
		}

		sched.Tick()

		if link != nil {
			if sched.Stalled() && !stalled {
				stalled = true
				log.Warn("waiting for opponent's turn", zap.Int("turn", sched.SimTurn))
			} else if stalled && !sched.Stalled() {
				stalled = false
				log.Info("opponent caught up", zap.Int("turn", sched.SimTurn))
			}
		}

		for _, line := range w.DrainLog() {
			fmt.Println(line.Text)
		}
		if cfg.Debug {
			for _, ev := range w.DrainEvents() {
				log.Debug("event", zap.String("kind", string(ev.Kind)), zap.Int("turn", ev.Turn), zap.String("actor", ev.Actor))
			}
		} else {
			w.DrainEvents()
		}

		if w.Over() {
			out := w.Outcome
			switch {
			case out.Draw:
				fmt.Println("Result: draw")
			case out.Winner == localSide:
				fmt.Println("Result: victory")
			default:
				fmt.Println("Result: defeat")
			}
			return nil
		}
	}
	return nil
}

// setupWorld builds the shared battle both peers must agree on: same catalog
// keys, same deploy tiles, same roster order.
func setupWorld(reg *catalog.Registry, cfg config.Battle) (*battle.World, error) {
	w := battle.NewWorld(battle.DefaultWidth, battle.DefaultHeight)
	lineup := [2][2]string{
		{cfg.General0, cfg.Reserve0},
		{cfg.General1, cfg.Reserve1},
	}
	for side := battle.Side0; side <= battle.Side1; side++ {
		for _, key := range lineup[side] {
			g, err := reg.Build(key, side)
			if err != nil {
				return nil, err
			}
			w.AddGeneral(g)
		}
	}
	w.Generals[battle.Side0].Deploy(w, 3, battle.DefaultHeight/2)
	w.Generals[battle.Side1].Deploy(w, battle.DefaultWidth-4, battle.DefaultHeight/2)
	return w, nil
}

// readCommands parses stdin lines into commands on a background goroutine.
func readCommands(log *zap.Logger) <-chan protocol.Command {
	out := make(chan protocol.Command, 64)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			cmd, err := protocol.ParseCommand(sc.Text())
			if err != nil {
				log.Warn("ignoring bad command", zap.Error(err))
				continue
			}
			out <- cmd
		}
	}()
	return out
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
