package config

import (
	_ "embed"
)

//go:embed defaults/chameleon.yaml
var defaultChameleonYAML []byte

// DefaultChameleonConfig returns the default chameleon game configuration.
func DefaultChameleonConfig() ChameleonConfig {
	return ChameleonConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Chameleon: ChameleonTuning{
			RotationStep:     3.0,
			ArmLength:        150,
			Radius:           75,
			TongueDurationMS: 1000,
			TongueReach:      100,
		},
		Flies: FliesConfig{
			Count:            6,
			MinSpeed:         1.0,
			MaxSpeed:         3.0,
			MinSpawnDistance: 250,
			FlyRadius:        15,
		},
		Rules: RulesConfig{
			CatchReward:    100,
			CollisionFudge: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChameleonYAML
}
