package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/haoranliu666/Hell-Survivor/engine"
)

// holdDuration is how long a direction stays active after its last key
// event. Terminals report repeats, not releases, so held movement is
// emulated by refreshing a deadline on every repeat.
const holdDuration = 150 * time.Millisecond

// Handler turns terminal key events into simulation intents
type Handler struct {
	table *KeyTable

	heldUntil [4]time.Time // indexed by direction actions

	attack  bool
	dodge   bool
	restart bool
	quit    bool
}

// NewHandler creates a handler over the resolved key table
func NewHandler(table *KeyTable) *Handler {
	return &Handler{table: table}
}

// HandleEvent consumes one terminal event. Ctrl+C quits regardless of
// bindings.
func (h *Handler) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape {
		h.quit = true
		return
	}

	switch h.table.Lookup(key) {
	case ActionUp:
		h.heldUntil[0] = time.Now().Add(holdDuration)
	case ActionDown:
		h.heldUntil[1] = time.Now().Add(holdDuration)
	case ActionLeft:
		h.heldUntil[2] = time.Now().Add(holdDuration)
	case ActionRight:
		h.heldUntil[3] = time.Now().Add(holdDuration)
	case ActionAttack:
		h.attack = true
	case ActionDodge:
		h.dodge = true
	case ActionRestart:
		h.restart = true
	case ActionQuit:
		h.quit = true
	}
}

// QuitRequested reports whether a quit key was seen
func (h *Handler) QuitRequested() bool {
	return h.quit
}

// Intent assembles the current frame's intent and clears the one-shot
// action latches
func (h *Handler) Intent() engine.Intent {
	now := time.Now()
	var in engine.Intent
	if h.heldUntil[0].After(now) {
		in.MoveY -= 1
	}
	if h.heldUntil[1].After(now) {
		in.MoveY += 1
	}
	if h.heldUntil[2].After(now) {
		in.MoveX -= 1
	}
	if h.heldUntil[3].After(now) {
		in.MoveX += 1
	}

	in.Attack = h.attack
	in.Dodge = h.dodge
	in.Restart = h.restart
	h.attack = false
	h.dodge = false
	h.restart = false

	return in
}
