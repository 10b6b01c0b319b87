package config

import (
	_ "embed"
)

//go:embed defaults/duelpong.yaml
var defaultDuelpongYAML []byte

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

//go:embed defaults/flapper.yaml
var defaultFlapperYAML []byte

// DefaultDuelpongConfig returns the hardcoded fallback Duelpong tuning,
// used when even the embedded YAML fails to parse.
func DefaultDuelpongConfig() DuelpongConfig {
	return DuelpongConfig{
		Physics: DuelpongPhysics{
			BallSpeed:    7.0,
			PaddleSpeed:  6.0,
			PaddleHeight: 80,
		},
		Rules: DuelpongRules{
			WinScore: 10,
		},
		AI: DuelpongAI{
			Friction:     0.88,
			Accel:        0.9,
			Jitter:       15,
			MissChance:   0.10,
			BaseMaxSpeed: 4.0,
			MaxSpeedCap:  7.5,
			RampPerRally: 0.12,
		},
		PowerUps: DuelpongPowerUps{
			SpawnBase:      720,
			SpawnShrinkPer: 30,
			SpawnMin:       300,
			Duration:       600,
			MaxUncollected: 2,
		},
	}
}

// DefaultBlasterConfig returns the hardcoded fallback Blaster tuning.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Ship: BlasterShip{
			Speed:        8.0,
			FireCooldown: 12,
			Lives:        3,
		},
		Enemies: BlasterEnemies{
			SpawnBase:      90,
			SpawnMin:       30,
			SpawnShrinkPer: 1,
			BaseSpeed:      2.0,
			BaseHealth:     1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.2,
				SpawnReduction:  45,
			},
		},
	}
}

// DefaultFlapperConfig returns the hardcoded fallback Flapper tuning.
func DefaultFlapperConfig() FlapperConfig {
	return FlapperConfig{
		Physics: FlapperPhysics{
			Gravity:      0.35,
			JumpImpulse:  -5.5,
			MaxFallSpeed: 8.0,
			BaseSpeed:    3.0,
		},
		Obstacles: FlapperObstacles{
			PipeWidth:   40,
			PipeSpacing: 220,
			MinGapSize:  110,
			MaxGapSize:  150,
			Margin:      30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				GapReduction:    30,
			},
		},
	}
}
