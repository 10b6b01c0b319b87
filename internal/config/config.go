// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// DuelpongConfig contains all tuning for the Duelpong game.
type DuelpongConfig struct {
	Physics  DuelpongPhysics  `yaml:"physics"`
	Rules    DuelpongRules    `yaml:"rules"`
	AI       DuelpongAI       `yaml:"ai"`
	PowerUps DuelpongPowerUps `yaml:"powerups"`
}

// DuelpongPhysics defines movement parameters in field units per tick.
type DuelpongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	PaddleHeight float64 `yaml:"paddle_height"`
}

// DuelpongRules defines match rules.
type DuelpongRules struct {
	WinScore int `yaml:"win_score"`
}

// DuelpongAI defines the computer opponent tuning.
type DuelpongAI struct {
	Friction     float64 `yaml:"friction"`
	Accel        float64 `yaml:"accel"`
	Jitter       float64 `yaml:"jitter"`
	MissChance   float64 `yaml:"miss_chance"`
	BaseMaxSpeed float64 `yaml:"base_max_speed"`
	MaxSpeedCap  float64 `yaml:"max_speed_cap"`
	RampPerRally float64 `yaml:"ramp_per_rally"`
}

// DuelpongPowerUps defines spawn timing and effect duration, in ticks.
type DuelpongPowerUps struct {
	SpawnBase      int `yaml:"spawn_base"`
	SpawnShrinkPer int `yaml:"spawn_shrink_per"`
	SpawnMin       int `yaml:"spawn_min"`
	Duration       int `yaml:"duration"`
	MaxUncollected int `yaml:"max_uncollected"`
}

// BlasterConfig contains all tuning for the Blaster game.
type BlasterConfig struct {
	Ship       BlasterShip      `yaml:"ship"`
	Enemies    BlasterEnemies   `yaml:"enemies"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlasterShip defines the player ship parameters.
type BlasterShip struct {
	Speed        float64 `yaml:"speed"`
	FireCooldown int     `yaml:"fire_cooldown"` // Min ticks between shots
	Lives        int     `yaml:"lives"`
}

// BlasterEnemies defines enemy spawning and movement.
type BlasterEnemies struct {
	SpawnBase      int     `yaml:"spawn_base"` // Spawn interval at score 0, ticks
	SpawnMin       int     `yaml:"spawn_min"`
	SpawnShrinkPer int     `yaml:"spawn_shrink_per"`
	BaseSpeed      float64 `yaml:"base_speed"`
	BaseHealth     int     `yaml:"base_health"`
}

// FlapperConfig contains all tuning for the Flapper game.
type FlapperConfig struct {
	Physics    FlapperPhysics   `yaml:"physics"`
	Obstacles  FlapperObstacles `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlapperPhysics defines gravity integration parameters.
type FlapperPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlapperObstacles defines pipe layout parameters in field units.
type FlapperObstacles struct {
	PipeWidth   float64 `yaml:"pipe_width"`
	PipeSpacing float64 `yaml:"pipe_spacing"`
	MinGapSize  float64 `yaml:"min_gap_size"`
	MaxGapSize  float64 `yaml:"max_gap_size"`
	Margin      float64 `yaml:"margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
	GapReduction    float64 `yaml:"gap_reduction"`    // Gap shrink at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval shrink, ticks
}

// DifficultyPreset is a named difficulty level selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyBlasterPreset modifies the config based on a difficulty preset.
func ApplyBlasterPreset(cfg *BlasterConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyFlapperPreset modifies the config based on a difficulty preset.
func ApplyFlapperPreset(cfg *FlapperConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyDuelpongPreset tunes the opponent for a preset: easier presets miss
// more and move slower, harder ones the reverse. "fixed" leaves the file
// values alone.
func ApplyDuelpongPreset(cfg *DuelpongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.MissChance = 0.16
		cfg.AI.MaxSpeedCap = 6.0
	case DifficultyNormal:
		cfg.AI.MissChance = 0.10
		cfg.AI.MaxSpeedCap = 7.5
	case DifficultyHard:
		cfg.AI.MissChance = 0.05
		cfg.AI.MaxSpeedCap = 8.5
	}
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
