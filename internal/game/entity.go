// Package game implements the chameleon simulation: a player-controlled
// chameleon pivots in the middle of a toroidal field and catches wandering
// flies with its tongue. The package contains pure logic with no external
// dependencies; the platform layer handles input mapping, timing, and display.
package game

import (
	"github.com/okvist/chameleon-tui/internal/core"
)

// Entity is the shared state of any moving, collidable object on the field:
// a circle with a position, a per-tick velocity, and a facing direction.
type Entity struct {
	Position  core.Vec2
	Radius    float64
	Velocity  core.Vec2
	Direction core.Vec2 // Unit length, maintained by rotation
}

// Move advances the entity by its velocity and wraps the result onto the
// toroidal field, so leaving one edge re-enters from the opposite one.
func (e *Entity) Move(fieldW, fieldH float64) {
	e.Position = core.Wrap(e.Position.Add(e.Velocity), fieldW, fieldH)
}

// CollidesWith reports whether the two circles overlap: the distance
// between centers is less than the sum of the radii minus the fudge term.
func (e *Entity) CollidesWith(other *Entity, fudge float64) bool {
	return e.Position.Distance(other.Position) < e.Radius+other.Radius-fudge
}
