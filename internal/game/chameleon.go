package game

import (
	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
)

// TongueState is the chameleon's tongue position.
type TongueState int

const (
	TongueRetracted TongueState = iota
	TongueExtended
)

// String returns a human-readable name for the state.
func (t TongueState) String() string {
	if t == TongueExtended {
		return "extended"
	}
	return "retracted"
}

// Chameleon is the player: it never translates freely, its head revolves
// rigidly around a fixed pivot, and its tongue briefly enlarges its capture
// radius. Fly contact is lethal unless the tongue is out.
type Chameleon struct {
	Entity
	Pivot core.Vec2 // Fixed at spawn; rotation revolves Position around it

	tongue       TongueState
	tongueSince  uint64 // Tick at which the tongue was extended
	tongueSpent  bool   // Cap reached while still held; require release to re-extend
	rotationStep float64
	tongueReach  float64
	tongueTicks  uint64 // Max extension, in ticks
}

// NewChameleon creates the player at the given head position. The pivot is
// placed one arm length behind the head along the initial facing (Up), so
// rotating swings the head on a circle around it.
func NewChameleon(position core.Vec2, tune config.ChameleonTuning, tickRate int) *Chameleon {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Chameleon{
		Entity: Entity{
			Position:  position,
			Radius:    tune.Radius,
			Velocity:  core.Vec2{}, // Moves only via Rotate
			Direction: core.Up,
		},
		Pivot:        position.Sub(core.Up.Scale(tune.ArmLength)),
		rotationStep: tune.RotationStep,
		tongueReach:  tune.TongueReach,
		tongueTicks:  uint64(tune.TongueDurationMS * tickRate / 1000),
	}
}

// Rotate turns the facing direction by the step angle and revolves the head
// rigidly around the pivot by the same signed angle. Direction stays unit
// length; the distance to the pivot is preserved.
func (c *Chameleon) Rotate(clockwise bool) {
	angle := c.rotationStep
	if !clockwise {
		angle = -angle
	}
	c.Direction = c.Direction.Rotate(angle).Normalized()
	c.Position = c.Pivot.Add(c.Position.Sub(c.Pivot).Rotate(angle))
}

// UpdateTongue advances the tongue state machine for one tick. The tongue is
// extended only while the catch input is held, capped at the configured
// duration; once the cap is hit the input must be released before the tongue
// can extend again.
func (c *Chameleon) UpdateTongue(catchHeld bool, tick uint64) {
	switch c.tongue {
	case TongueRetracted:
		if !catchHeld {
			c.tongueSpent = false
		} else if !c.tongueSpent {
			c.tongue = TongueExtended
			c.tongueSince = tick
		}
	case TongueExtended:
		switch {
		case !catchHeld:
			c.tongue = TongueRetracted
			c.tongueSpent = false
		case tick-c.tongueSince >= c.tongueTicks:
			c.tongue = TongueRetracted
			c.tongueSpent = true
		}
	}
}

// TongueOut reports whether the tongue is currently extended.
func (c *Chameleon) TongueOut() bool {
	return c.tongue == TongueExtended
}

// Tongue returns the current tongue state.
func (c *Chameleon) Tongue() TongueState {
	return c.tongue
}

// EffectiveRadius is the capture radius: the body radius, enlarged by the
// tongue reach while the tongue is out.
func (c *Chameleon) EffectiveRadius() float64 {
	if c.TongueOut() {
		return c.Radius + c.tongueReach
	}
	return c.Radius
}

// CollidesWith reports contact with a fly, accounting for the tongue bonus.
func (c *Chameleon) CollidesWith(f *Fly, fudge float64) bool {
	return c.Position.Distance(f.Position) < c.EffectiveRadius()+f.Radius-fudge
}
