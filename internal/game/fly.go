package game

import (
	"math/rand"

	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
)

// Fly is prey: it gets one random velocity at spawn and keeps it forever,
// drifting across the toroidal field until caught.
type Fly struct {
	Entity
}

// NewFly creates a fly at the given position with a random constant velocity:
// magnitude uniform in [MinSpeed, MaxSpeed], direction uniform in [0, 360).
func NewFly(position core.Vec2, rng *rand.Rand, cfg config.FliesConfig) *Fly {
	speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
	velocity := core.Up.Scale(speed).Rotate(rng.Float64() * 360)

	return &Fly{
		Entity: Entity{
			Position:  position,
			Radius:    cfg.FlyRadius,
			Velocity:  velocity,
			Direction: velocity.Normalized(),
		},
	}
}
