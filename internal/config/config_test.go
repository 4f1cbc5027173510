package config

import (
	"os"
	"path/filepath"
	"testing"

	"gridlock/internal/catalog"
)

func TestLoadBattleDefaults(t *testing.T) {
	c, err := LoadBattle()
	if err != nil {
		t.Fatal(err)
	}
	if c.TurnMillis != 100 {
		t.Fatalf("default turn length = %d, want 100", c.TurnMillis)
	}
	if c.General0 == "" || c.General1 == "" {
		t.Fatal("default lineup missing")
	}
	if c.RelayURL != "" {
		t.Fatalf("default relay url = %q, want local play", c.RelayURL)
	}
}

func TestLoadBattleFromEnv(t *testing.T) {
	t.Setenv("GRIDLOCK_RELAY_URL", "ws://relay.example:8844/play")
	t.Setenv("GRIDLOCK_SIDE", "1")
	t.Setenv("GRIDLOCK_TURN_MS", "50")
	t.Setenv("GRIDLOCK_GENERAL0", "maren")

	c, err := LoadBattle()
	if err != nil {
		t.Fatal(err)
	}
	if c.RelayURL != "ws://relay.example:8844/play" || c.Side != 1 || c.TurnMillis != 50 || c.General0 != "maren" {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestLoadBattleRejectsBadTurnLength(t *testing.T) {
	t.Setenv("GRIDLOCK_TURN_MS", "0")
	if _, err := LoadBattle(); err == nil {
		t.Fatal("zero turn length accepted")
	}
}

func TestLoadRelayDefaults(t *testing.T) {
	c, err := LoadRelay()
	if err != nil {
		t.Fatal(err)
	}
	if c.Addr == "" {
		t.Fatal("relay address default missing")
	}
}

func TestApplyUnitsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	data := `units:
  - key: swordsman
    name: swordsman
    kind: minion
    sprite: swordsman
    max_hp: 55
    power: 12
    cadence: 5
    armor:
      physical: 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := catalog.Default()
	if err := ApplyUnitsFile(reg, path); err != nil {
		t.Fatal(err)
	}
	got, ok := reg.Unit("swordsman")
	if !ok {
		t.Fatal("swordsman missing after override")
	}
	if got.MaxHP != 55 || got.Power != 12 || got.Armor["physical"] != 4 {
		t.Fatalf("override not applied: %+v", got)
	}
}

func TestApplyUnitsFileRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	if err := os.WriteFile(path, []byte("units:\n  - key: phantom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ApplyUnitsFile(catalog.Default(), path); err == nil {
		t.Fatal("unknown key accepted")
	}
}

func TestApplyUnitsFileMissingFile(t *testing.T) {
	if err := ApplyUnitsFile(catalog.Default(), "/does/not/exist.yaml"); err == nil {
		t.Fatal("missing file accepted")
	}
}
