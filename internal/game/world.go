package game

import (
	"math/rand"

	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
)

// HighScoreStore loads and saves the persistent best score.
// storage.HighScoreFile is the canonical implementation; tests use in-memory fakes.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// World owns the full simulation state for one run: the chameleon, the fly
// population, and the score. A restart replaces the World with a freshly
// constructed one; only the high score survives, re-read from storage.
type World struct {
	cfg      config.ChameleonConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	chameleon *Chameleon // nil encodes "player eliminated"
	spawn     core.Vec2  // Chameleon head position at spawn, used for fly placement
	flies     []*Fly

	score      int
	highScore  int
	fliesEaten int
	scores     HighScoreStore // May be nil: play without persistence
}

// NewWorld constructs a fresh run. The chameleon spawns at the field center;
// flies spawn at random positions no closer than the configured minimum
// distance. The high score is read from storage; a missing or corrupt record
// counts as zero (the caller is expected to have logged the condition once).
func NewWorld(cfg config.ChameleonConfig, tickRate int, rng *rand.Rand, scores HighScoreStore) *World {
	center := core.NewVec2(cfg.Field.Width/2, cfg.Field.Height/2)

	w := &World{
		cfg:       cfg,
		rng:       rng,
		tickRate:  tickRate,
		chameleon: NewChameleon(center, cfg.Chameleon, tickRate),
		spawn:     center,
		scores:    scores,
	}

	if scores != nil {
		if hs, err := scores.Load(); err == nil {
			w.highScore = hs
		}
	}

	w.spawnFlies(cfg.Flies.Count)
	return w
}

// spawnFlies adds n flies at valid random positions.
func (w *World) spawnFlies(n int) {
	for i := 0; i < n; i++ {
		w.flies = append(w.flies, NewFly(w.randomFlyPosition(), w.rng, w.cfg.Flies))
	}
}

// randomFlyPosition draws uniform field positions, rejecting any within the
// minimum spawn distance of the chameleon, so flies never appear on top of
// the player.
func (w *World) randomFlyPosition() core.Vec2 {
	for {
		pos := core.NewVec2(
			w.rng.Float64()*w.cfg.Field.Width,
			w.rng.Float64()*w.cfg.Field.Height,
		)
		if pos.Distance(w.spawn) > w.cfg.Flies.MinSpawnDistance {
			return pos
		}
	}
}

// Update advances the simulation by one tick: apply the player's intents,
// move every live entity, then resolve collisions. Player input is ignored
// once the chameleon is gone; flies keep wandering behind the overlay.
func (w *World) Update(in core.InputFrame) {
	w.tick++

	if w.chameleon != nil {
		if in.Has(core.ActionRotateLeft) {
			w.chameleon.Rotate(false)
		}
		if in.Has(core.ActionRotateRight) {
			w.chameleon.Rotate(true)
		}
		w.chameleon.UpdateTongue(in.Has(core.ActionCatch), w.tick)
	}

	for _, f := range w.flies {
		f.Move(w.cfg.Field.Width, w.cfg.Field.Height)
	}
	if w.chameleon != nil {
		w.chameleon.Move(w.cfg.Field.Width, w.cfg.Field.Height)
	}

	w.resolveCollisions()
}

// resolveCollisions walks the flies in order. Contact with the tongue out
// removes the fly and scores; contact with the tongue retracted eliminates
// the chameleon and ends the pass immediately — flies after the lethal one
// are not processed this tick, but catches before it already counted.
func (w *World) resolveCollisions() {
	if w.chameleon == nil {
		return
	}

	fudge := w.cfg.Rules.CollisionFudge
	survivors := w.flies[:0]
	for i, f := range w.flies {
		if !w.chameleon.CollidesWith(f, fudge) {
			survivors = append(survivors, f)
			continue
		}

		if w.chameleon.TongueOut() {
			w.score += w.cfg.Rules.CatchReward
			w.fliesEaten++
			if w.score > w.highScore {
				w.highScore = w.score
				w.persistHighScore()
			}
			continue // caught: fly dropped from the slice
		}

		// Lethal contact. Remaining flies survive untouched.
		w.chameleon = nil
		survivors = append(survivors, w.flies[i:]...)
		break
	}
	w.flies = survivors
}

// persistHighScore writes the new record. Persistence is best effort: a
// write failure must not interrupt the run.
func (w *World) persistHighScore() {
	if w.scores == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	w.scores.Save(w.highScore)
}

// GameOver reports whether the player has been eliminated.
// It is true exactly when the chameleon is absent.
func (w *World) GameOver() bool {
	return w.chameleon == nil
}

// Chameleon returns the player, or nil after elimination.
func (w *World) Chameleon() *Chameleon {
	return w.chameleon
}

// Flies returns the live flies in spawn order.
func (w *World) Flies() []*Fly {
	return w.flies
}

// Score returns the current run's score.
func (w *World) Score() int {
	return w.score
}

// HighScore returns the best score on record, including this run.
func (w *World) HighScore() int {
	return w.highScore
}

// FliesEaten returns how many flies were caught this run.
func (w *World) FliesEaten() int {
	return w.fliesEaten
}

// Tick returns the number of simulation ticks since construction.
func (w *World) Tick() uint64 {
	return w.tick
}

// NextSeed draws a seed for the replacement World on restart.
func (w *World) NextSeed() int64 {
	return w.rng.Int63()
}
