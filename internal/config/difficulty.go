package config

import "math"

// DifficultyManager calculates dynamic game parameters from score or
// elapsed ticks, interpolating from the configured initial level to 1.0.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for the given progression config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, initialLevel: cfg.InitialLevel}
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0, 1)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scaled speed for the current level.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Gap returns the shrunken gap size for the current level, floored so
// levels stay playable.
func (d *DifficultyManager) Gap(baseGap, minGap float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	gap := baseGap - level*d.cfg.Scaling.GapReduction
	if gap < minGap {
		gap = minGap
	}
	return gap
}

// SpawnInterval returns the shrunken spawn interval for the current level,
// floored at minTicks.
func (d *DifficultyManager) SpawnInterval(baseTicks, minTicks, score, ticks int) int {
	level := d.Level(score, ticks)
	interval := baseTicks - int(level*float64(d.cfg.Scaling.SpawnReduction))
	if interval < minTicks {
		interval = minTicks
	}
	return interval
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
