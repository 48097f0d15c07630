package game

import (
	"math"
	"testing"

	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
)

func defaultTuning() config.ChameleonTuning {
	return config.DefaultChameleonConfig().Chameleon
}

func TestNewChameleonPivot(t *testing.T) {
	head := core.NewVec2(400, 300)
	c := NewChameleon(head, defaultTuning(), 60)

	// The pivot sits one arm length behind the head along the initial facing
	if c.Pivot.X != 400 || c.Pivot.Y != 450 {
		t.Errorf("Pivot = %v, expected (400, 450)", c.Pivot)
	}
	if c.Direction != core.Up {
		t.Errorf("Initial direction = %v, expected Up", c.Direction)
	}
	if c.Position.Distance(c.Pivot) != 150 {
		t.Errorf("Arm length = %f, expected 150", c.Position.Distance(c.Pivot))
	}
}

func TestChameleonRotatePreservesArm(t *testing.T) {
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	for i := 0; i < 50; i++ {
		c.Rotate(true)

		if d := c.Position.Distance(c.Pivot); math.Abs(d-150) > 1e-6 {
			t.Fatalf("Arm length drifted to %f after %d rotations", d, i+1)
		}
		if l := c.Direction.Length(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("Direction length drifted to %f after %d rotations", l, i+1)
		}
	}
}

func TestChameleonFullCircle(t *testing.T) {
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)
	start := c.Position

	// 120 steps of 3 degrees is a full revolution
	for i := 0; i < 120; i++ {
		c.Rotate(true)
	}

	if c.Position.Distance(start) > 1e-6 {
		t.Errorf("After a full circle, head at %v, expected %v", c.Position, start)
	}
	if math.Abs(c.Direction.X) > 1e-9 || math.Abs(c.Direction.Y-core.Up.Y) > 1e-9 {
		t.Errorf("After a full circle, direction = %v, expected Up", c.Direction)
	}
}

func TestChameleonRotateDirections(t *testing.T) {
	cw := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)
	ccw := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	cw.Rotate(true)
	ccw.Rotate(false)

	// Clockwise in screen coordinates tilts Up toward +X, counterclockwise toward -X
	if cw.Direction.X <= 0 {
		t.Errorf("Clockwise rotation should tilt direction toward +X, got %v", cw.Direction)
	}
	if ccw.Direction.X >= 0 {
		t.Errorf("Counterclockwise rotation should tilt direction toward -X, got %v", ccw.Direction)
	}

	// One step each way cancels out
	cw.Rotate(false)
	if cw.Position.Distance(core.NewVec2(400, 300)) > 1e-9 {
		t.Errorf("Rotate cw then ccw should return to start, got %v", cw.Position)
	}
}

func TestTongueExtendAndRelease(t *testing.T) {
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	if c.TongueOut() {
		t.Fatal("Tongue should start retracted")
	}

	// Hold: extends immediately
	c.UpdateTongue(true, 1)
	if !c.TongueOut() {
		t.Fatal("Tongue should extend on hold")
	}

	// Still held well under the cap: stays out
	c.UpdateTongue(true, 30)
	if !c.TongueOut() {
		t.Error("Tongue should stay out while held under the cap")
	}

	// Release: retracts at once
	c.UpdateTongue(false, 31)
	if c.TongueOut() {
		t.Error("Tongue should retract on release")
	}

	// Can extend again right away after a release
	c.UpdateTongue(true, 32)
	if !c.TongueOut() {
		t.Error("Tongue should re-extend after an explicit release")
	}
}

func TestTongueDurationCap(t *testing.T) {
	// 60 ticks/s and 1000 ms cap: the tongue lasts at most 60 ticks
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	tick := uint64(1)
	c.UpdateTongue(true, tick)
	if !c.TongueOut() {
		t.Fatal("Tongue should extend on hold")
	}

	// Keep holding until the cap hits
	for c.TongueOut() && tick < 1000 {
		tick++
		c.UpdateTongue(true, tick)
	}

	if c.TongueOut() {
		t.Fatal("Tongue never hit the duration cap")
	}
	// Extended at tick 1, forced back in at tick 61
	if tick != 61 {
		t.Errorf("Tongue retracted at tick %d, expected 61", tick)
	}

	// Still holding: must NOT re-extend until released
	for i := 0; i < 10; i++ {
		tick++
		c.UpdateTongue(true, tick)
		if c.TongueOut() {
			t.Fatal("Tongue re-extended without a release after hitting the cap")
		}
	}

	// Release, then hold again: extends normally
	tick++
	c.UpdateTongue(false, tick)
	tick++
	c.UpdateTongue(true, tick)
	if !c.TongueOut() {
		t.Error("Tongue should extend again after release")
	}
}

func TestEffectiveRadius(t *testing.T) {
	tune := defaultTuning()
	c := NewChameleon(core.NewVec2(400, 300), tune, 60)

	if got := c.EffectiveRadius(); got != tune.Radius {
		t.Errorf("EffectiveRadius() retracted = %f, expected %f", got, tune.Radius)
	}

	c.UpdateTongue(true, 1)
	want := tune.Radius + tune.TongueReach
	if got := c.EffectiveRadius(); got != want {
		t.Errorf("EffectiveRadius() extended = %f, expected %f", got, want)
	}
}

func TestChameleonCollidesWithFly(t *testing.T) {
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	// Radius 75, fly radius 15: contact under 90 units
	near := &Fly{Entity: Entity{Position: core.NewVec2(450, 300), Radius: 15}}
	reach := &Fly{Entity: Entity{Position: core.NewVec2(500, 300), Radius: 15}}
	far := &Fly{Entity: Entity{Position: core.NewVec2(700, 300), Radius: 15}}

	if !c.CollidesWith(near, 0) {
		t.Error("Fly 50 units away should touch the body")
	}
	if c.CollidesWith(reach, 0) {
		t.Error("Fly 100 units away should be out of body range")
	}

	// With the tongue out the capture radius grows to 175
	c.UpdateTongue(true, 1)
	if !c.CollidesWith(reach, 0) {
		t.Error("Fly 100 units away should be in tongue range")
	}
	if c.CollidesWith(far, 0) {
		t.Error("Fly 300 units away should be out of tongue range")
	}
}

func TestCollisionFudge(t *testing.T) {
	c := NewChameleon(core.NewVec2(400, 300), defaultTuning(), 60)

	// Distance 85 vs radii sum 90: touching with no fudge, clear with fudge 10
	fly := &Fly{Entity: Entity{Position: core.NewVec2(485, 300), Radius: 15}}

	if !c.CollidesWith(fly, 0) {
		t.Error("Expected contact with zero fudge")
	}
	if c.CollidesWith(fly, 10) {
		t.Error("Expected no contact with fudge 10")
	}
}
