package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchFallbacks(t *testing.T) {
	var dp DuelpongConfig
	if err := yaml.Unmarshal(defaultDuelpongYAML, &dp); err != nil {
		t.Fatalf("embedded duelpong yaml does not parse: %v", err)
	}
	if dp != DefaultDuelpongConfig() {
		t.Errorf("embedded duelpong config diverged from fallback:\n%+v\n%+v", dp, DefaultDuelpongConfig())
	}

	var bl BlasterConfig
	if err := yaml.Unmarshal(defaultBlasterYAML, &bl); err != nil {
		t.Fatalf("embedded blaster yaml does not parse: %v", err)
	}
	if bl != DefaultBlasterConfig() {
		t.Errorf("embedded blaster config diverged from fallback:\n%+v\n%+v", bl, DefaultBlasterConfig())
	}

	var fl FlapperConfig
	if err := yaml.Unmarshal(defaultFlapperYAML, &fl); err != nil {
		t.Fatalf("embedded flapper yaml does not parse: %v", err)
	}
	if fl != DefaultFlapperConfig() {
		t.Errorf("embedded flapper config diverged from fallback:\n%+v\n%+v", fl, DefaultFlapperConfig())
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "duelpong.yaml")
	body := "physics:\n  ball_speed: 9.5\nrules:\n  win_score: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadDuelpong(path)
	if err != nil {
		t.Fatalf("LoadDuelpong failed: %v", err)
	}
	if cfg.Physics.BallSpeed != 9.5 {
		t.Errorf("expected ball_speed 9.5, got %v", cfg.Physics.BallSpeed)
	}
	if cfg.Rules.WinScore != 5 {
		t.Errorf("expected win_score 5, got %d", cfg.Rules.WinScore)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	cfg, err := LoadDuelpong(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom path")
	}
	// Caller still gets a usable config.
	if cfg.Rules.WinScore != DefaultDuelpongConfig().Rules.WinScore {
		t.Errorf("expected fallback win_score, got %d", cfg.Rules.WinScore)
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if lvl := d.Level(0, 0); lvl != 0.2 {
		t.Errorf("expected initial level 0.2, got %v", lvl)
	}
	if lvl := d.Level(5, 0); math.Abs(lvl-0.6) > 1e-9 {
		t.Errorf("expected midpoint level 0.6, got %v", lvl)
	}
	if lvl := d.Level(10, 0); lvl != 1.0 {
		t.Errorf("expected max level 1.0, got %v", lvl)
	}
	// Progress never overshoots 1.0.
	if lvl := d.Level(1000, 0); lvl != 1.0 {
		t.Errorf("level overshot max: %v", lvl)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if lvl := d.Level(100, 100); lvl != 0.5 {
		t.Errorf("disabled difficulty moved: %v", lvl)
	}
}

func TestDifficultyGapAndSpawnFloors(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:      ScalingConfig{GapReduction: 500, SpawnReduction: 500},
	})

	if gap := d.Gap(150, 110, 10, 0); gap != 110 {
		t.Errorf("gap fell through floor: %v", gap)
	}
	if iv := d.SpawnInterval(90, 30, 10, 0); iv != 30 {
		t.Errorf("spawn interval fell through floor: %d", iv)
	}
}

func TestApplyPresets(t *testing.T) {
	dp := DefaultDuelpongConfig()
	ApplyDuelpongPreset(&dp, DifficultyHard)
	if dp.AI.MissChance != 0.05 || dp.AI.MaxSpeedCap != 8.5 {
		t.Errorf("hard preset not applied: %+v", dp.AI)
	}

	fixed := DefaultDuelpongConfig()
	ApplyDuelpongPreset(&fixed, DifficultyFixed)
	if fixed.AI != DefaultDuelpongConfig().AI {
		t.Errorf("fixed preset should leave tuning untouched: %+v", fixed.AI)
	}

	bl := DefaultBlasterConfig()
	ApplyBlasterPreset(&bl, DifficultyFixed)
	if bl.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	ApplyBlasterPreset(&bl, DifficultyHard)
	if !bl.Difficulty.Enabled || bl.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", bl.Difficulty)
	}
}
