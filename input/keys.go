package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/haoranliu666/Hell-Survivor/config"
)

// Action is a semantic game input
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionAttack
	ActionDodge
	ActionRestart
	ActionQuit
)

// keyName identifies a key independent of modifier state. Special keys
// use the tcell key code, everything else the rune.
type keyName struct {
	key    tcell.Key
	ch     rune
	isRune bool
}

// specialKeys are the named non-rune bindings accepted in config files
var specialKeys = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"enter": tcell.KeyEnter,
	"esc":   tcell.KeyEscape,
	"tab":   tcell.KeyTab,
}

// runeAliases name runes that read poorly as bare config values
var runeAliases = map[string]rune{
	"space": ' ',
}

// KeyTable maps resolved keys to actions
type KeyTable struct {
	bindings map[keyName]Action
}

// NewKeyTable resolves the configured key names into a lookup table.
// The arrow keys always steer in addition to the configured bindings.
func NewKeyTable(keys config.Keys) (*KeyTable, error) {
	kt := &KeyTable{bindings: make(map[keyName]Action)}

	for _, b := range []struct {
		name   string
		action Action
	}{
		{keys.Up, ActionUp},
		{keys.Down, ActionDown},
		{keys.Left, ActionLeft},
		{keys.Right, ActionRight},
		{keys.Attack, ActionAttack},
		{keys.Dodge, ActionDodge},
		{keys.Restart, ActionRestart},
		{keys.Quit, ActionQuit},
	} {
		kn, err := resolveKey(b.name)
		if err != nil {
			return nil, err
		}
		kt.bindings[kn] = b.action
	}

	kt.bindings[keyName{key: tcell.KeyUp}] = ActionUp
	kt.bindings[keyName{key: tcell.KeyDown}] = ActionDown
	kt.bindings[keyName{key: tcell.KeyLeft}] = ActionLeft
	kt.bindings[keyName{key: tcell.KeyRight}] = ActionRight

	return kt, nil
}

// Lookup resolves a tcell key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.bindings[keyName{ch: ev.Rune(), isRune: true}]
	}
	return kt.bindings[keyName{key: ev.Key()}]
}

func resolveKey(name string) (keyName, error) {
	lower := strings.ToLower(name)
	if k, ok := specialKeys[lower]; ok {
		return keyName{key: k}, nil
	}
	if r, ok := runeAliases[lower]; ok {
		return keyName{ch: r, isRune: true}, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return keyName{}, fmt.Errorf("unknown key name %q", name)
	}
	return keyName{ch: runes[0], isRune: true}, nil
}
