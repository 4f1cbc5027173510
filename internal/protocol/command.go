// Package protocol defines the command grammar and the wire framing shared by
// both peers and the relay. It is pure data: no sockets, no simulation.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb is the command family. Numbered verbs (skill, swap, tactic) carry an
// index; positional verbs (flag, skill) carry a tile.
type Verb string

const (
	VerbStop   Verb = "stop"
	VerbFlag   Verb = "flag"
	VerbSkill  Verb = "skill"
	VerbSwap   Verb = "swap"
	VerbTactic Verb = "tactic"
)

// Command is one parsed player order. Turn and Side are stamped by the
// scheduler and the transport, not by the parser.
type Command struct {
	Turn int
	Side int
	Verb Verb
	N    int
	X, Y int
}

// Text renders the canonical wire form of the command body.
func (c Command) Text() string {
	switch c.Verb {
	case VerbStop:
		return "stop"
	case VerbFlag:
		return fmt.Sprintf("flag (%d,%d)", c.X, c.Y)
	case VerbSkill:
		return fmt.Sprintf("skill%d (%d,%d)", c.N, c.X, c.Y)
	case VerbSwap:
		return fmt.Sprintf("swap%d", c.N)
	case VerbTactic:
		return fmt.Sprintf("tactic%d", c.N)
	}
	return ""
}

// ParseCommand parses a command body. The grammar is deliberately rigid: a
// verb, an optional index glued to it, and an optional "(x,y)" tile. Anything
// else is an error so both peers reject the same inputs.
func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Command{}, fmt.Errorf("protocol: empty command")
	}
	word, rest, _ := strings.Cut(s, " ")
	rest = strings.TrimSpace(rest)

	switch {
	case word == "stop":
		if rest != "" {
			return Command{}, fmt.Errorf("protocol: stop takes no arguments, got %q", s)
		}
		return Command{Verb: VerbStop}, nil

	case word == "flag":
		x, y, err := parseTile(rest)
		if err != nil {
			return Command{}, fmt.Errorf("protocol: flag: %w", err)
		}
		return Command{Verb: VerbFlag, X: x, Y: y}, nil

	case strings.HasPrefix(word, "skill"):
		n, err := parseIndex(word, "skill")
		if err != nil {
			return Command{}, err
		}
		x, y, err := parseTile(rest)
		if err != nil {
			return Command{}, fmt.Errorf("protocol: skill: %w", err)
		}
		return Command{Verb: VerbSkill, N: n, X: x, Y: y}, nil

	case strings.HasPrefix(word, "swap"):
		if rest != "" {
			return Command{}, fmt.Errorf("protocol: swap takes no tile, got %q", s)
		}
		n, err := parseIndex(word, "swap")
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbSwap, N: n}, nil

	case strings.HasPrefix(word, "tactic"):
		if rest != "" {
			return Command{}, fmt.Errorf("protocol: tactic takes no tile, got %q", s)
		}
		n, err := parseIndex(word, "tactic")
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: VerbTactic, N: n}, nil
	}
	return Command{}, fmt.Errorf("protocol: unknown command %q", s)
}

func parseIndex(word, verb string) (int, error) {
	digits := word[len(verb):]
	if digits == "" {
		return 0, fmt.Errorf("protocol: %s needs an index", verb)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("protocol: bad %s index %q", verb, digits)
	}
	return n, nil
}

func parseTile(s string) (int, int, error) {
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return 0, 0, fmt.Errorf("expected (x,y), got %q", s)
	}
	body := s[1 : len(s)-1]
	xs, ys, ok := strings.Cut(body, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected (x,y), got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("bad y in %q", s)
	}
	return x, y, nil
}
