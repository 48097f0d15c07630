package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okvist/chameleon-tui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionRotateLeft, false
	case "right", "d":
		return core.ActionRotateRight, false
	case " ":
		return core.ActionCatch, false
	case "enter":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// IsHeldAction reports whether an action uses held-key semantics
// (re-asserted every tick while the key is down) rather than edge semantics.
func IsHeldAction(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionCatch:
		return true
	}
	return false
}

// HeldTracker synthesizes held-key state from terminal key repeats.
// Terminals report repeated key-down events while a key is held but never a
// release, so a key counts as held until no repeat arrives within a grace
// window of ticks.
type HeldTracker struct {
	remaining map[core.Action]int
	grace     int
}

// NewHeldTracker creates a tracker for the given tick rate. The grace window
// must outlast the terminal's key-repeat interval, which stays well under
// 150 ms on common configurations.
func NewHeldTracker(tickRate int) *HeldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	grace := tickRate / 6 // ~166 ms
	if grace < 2 {
		grace = 2
	}
	return &HeldTracker{
		remaining: make(map[core.Action]int),
		grace:     grace,
	}
}

// Press records a key-down (or repeat) for a held-semantics action.
func (h *HeldTracker) Press(a core.Action) {
	h.remaining[a] = h.grace
}

// Tick stamps all currently held actions into the frame and ages the
// tracker by one tick. Actions whose window expired count as released.
func (h *HeldTracker) Tick(frame *core.InputFrame) {
	for a, left := range h.remaining {
		frame.Set(a)
		if left <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = left - 1
		}
	}
}

// Held reports whether the action currently counts as held.
func (h *HeldTracker) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Clear releases all tracked keys.
func (h *HeldTracker) Clear() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
