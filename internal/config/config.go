// Package config provides YAML-based game configuration loading and
// difficulty presets for the chameleon game.
package config

// ChameleonConfig contains all tuning for the chameleon game.
type ChameleonConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Chameleon ChameleonTuning `yaml:"chameleon"`
	Flies     FliesConfig     `yaml:"flies"`
	Rules     RulesConfig     `yaml:"rules"`
}

// FieldConfig defines the virtual playing field. The simulation runs in
// these units regardless of terminal size; the renderer scales down.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ChameleonTuning defines the player parameters.
type ChameleonTuning struct {
	RotationStep     float64 `yaml:"rotation_step"`      // Degrees per tick while a rotate key is held
	ArmLength        float64 `yaml:"arm_length"`         // Distance from the rotation pivot to the head
	Radius           float64 `yaml:"radius"`             // Collision radius of the head
	TongueDurationMS int     `yaml:"tongue_duration_ms"` // Max time the tongue stays out
	TongueReach      float64 `yaml:"tongue_reach"`       // Collision radius bonus while the tongue is out
}

// FliesConfig defines fly spawning and movement parameters.
type FliesConfig struct {
	Count            int     `yaml:"count"`              // Flies alive at game start
	MinSpeed         float64 `yaml:"min_speed"`          // Lower bound of spawn velocity magnitude
	MaxSpeed         float64 `yaml:"max_speed"`          // Upper bound of spawn velocity magnitude
	MinSpawnDistance float64 `yaml:"min_spawn_distance"` // Flies never spawn closer than this to the player
	FlyRadius        float64 `yaml:"fly_radius"`         // Collision radius of a fly
}

// RulesConfig defines scoring and collision rules.
type RulesConfig struct {
	CatchReward    int     `yaml:"catch_reward"`    // Points per caught fly
	CollisionFudge float64 `yaml:"collision_fudge"` // Subtracted from the radii sum in collision checks
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyChameleonPreset modifies the config based on a difficulty preset.
// An unknown or empty preset leaves the config untouched.
func ApplyChameleonPreset(cfg *ChameleonConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Flies.Count = 4
		cfg.Flies.MaxSpeed = 2.0
	case DifficultyHard:
		cfg.Flies.Count = 8
		cfg.Flies.MinSpeed = 2.0
		cfg.Flies.MaxSpeed = 4.0
	}
}
