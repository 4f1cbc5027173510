// Package config loads process configuration from the environment and
// optional balance overrides from a YAML units file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"gridlock/internal/battle"
	"gridlock/internal/catalog"
)

// Battle is the client process configuration.
type Battle struct {
	// RelayURL is the websocket endpoint of the relay. Empty means local play
	// against the built-in opponent.
	RelayURL string `env:"GRIDLOCK_RELAY_URL"`
	// TurnMillis is the wall-clock length of one input turn.
	TurnMillis int `env:"GRIDLOCK_TURN_MS" envDefault:"100"`
	// Side is this peer's side in a networked match. Both peers must agree
	// out of band; the relay does not arbitrate identity.
	Side int `env:"GRIDLOCK_SIDE" envDefault:"0"`
	// UnitsFile optionally points at a YAML balance override file.
	UnitsFile string `env:"GRIDLOCK_UNITS_FILE"`
	// Commander lineups by catalog key. Both peers must configure the same
	// four keys: lockstep requires each side to build the full battle.
	General0 string `env:"GRIDLOCK_GENERAL0" envDefault:"kord"`
	Reserve0 string `env:"GRIDLOCK_RESERVE0" envDefault:"maren"`
	General1 string `env:"GRIDLOCK_GENERAL1" envDefault:"vassago"`
	Reserve1 string `env:"GRIDLOCK_RESERVE1" envDefault:"ilex"`
	Debug   bool   `env:"GRIDLOCK_DEBUG"`
}

// Relay is the relay process configuration.
type Relay struct {
	Addr  string `env:"GRIDLOCK_RELAY_ADDR" envDefault:":8844"`
	Debug bool   `env:"GRIDLOCK_DEBUG"`
}

func LoadBattle() (Battle, error) {
	var c Battle
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if c.TurnMillis <= 0 {
		return c, fmt.Errorf("config: turn length must be positive, got %d", c.TurnMillis)
	}
	return c, nil
}

func LoadRelay() (Relay, error) {
	var c Relay
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// unitsFile is the YAML shape of a balance override file: a list of full unit
// specs replacing catalog entries of the same key.
type unitsFile struct {
	Units []battle.UnitSpec `yaml:"units"`
}

// ApplyUnitsFile overlays unit specs from a YAML file onto the registry.
// Both peers must load the same file or their simulations diverge, which is
// the operator's contract, not something the engine can verify.
func ApplyUnitsFile(r *catalog.Registry, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read units file: %w", err)
	}
	var f unitsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("config: parse units file %s: %w", path, err)
	}
	for _, spec := range f.Units {
		if err := r.OverrideUnit(spec); err != nil {
			return err
		}
	}
	return nil
}
