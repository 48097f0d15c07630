package game

// Phase describes the run's coarse state for snapshots.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	HighScore  int
	FliesAlive int
	FliesEaten int
	HeadX      float64
	HeadY      float64
	DirX       float64
	DirY       float64
	TongueOut  bool
	Phase      Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.world.GameOver():
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:       g.world.Tick(),
		Score:      g.world.Score(),
		HighScore:  g.world.HighScore(),
		FliesAlive: len(g.world.Flies()),
		FliesEaten: g.world.FliesEaten(),
		Phase:      phase,
	}

	if c := g.world.Chameleon(); c != nil {
		snap.HeadX = c.Position.X
		snap.HeadY = c.Position.Y
		snap.DirX = c.Direction.X
		snap.DirY = c.Direction.Y
		snap.TongueOut = c.TongueOut()
	}

	return snap
}
