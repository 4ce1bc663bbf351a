package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/devhausleipzig/cell-dodger-game/internal/game"
)

// delayStep is how much one delay key press changes the tick delay.
const delayStep = 50 * time.Millisecond

// arrowNames maps tcell arrow keys to the names player bindings use.
var arrowNames = map[tcell.Key]string{
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyRight: "ArrowRight",
	tcell.KeyDown:  "ArrowDown",
}

// Translate converts a terminal key event into a game input.
// ok is false for keys the game has no use for.
func Translate(ev *tcell.EventKey) (game.Input, bool) {
	return translateKey(ev.Key(), ev.Rune())
}

func translateKey(key tcell.Key, r rune) (game.Input, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.QuitInput(), true
	case tcell.KeyRune:
		return translateRune(r)
	}

	if name, ok := arrowNames[key]; ok {
		return game.KeyInput(name), true
	}
	return game.Input{}, false
}

// translateRune handles the configuration keys; every other character is a raw key.
func translateRune(r rune) (game.Input, bool) {
	switch r {
	case 'q', 'Q':
		return game.QuitInput(), true
	case 'r':
		return game.AdjustInput(func(c game.Config) game.Config { return c }), true
	case 'p':
		return game.AdjustInput(cyclePlayers), true
	case 'e':
		return game.AdjustInput(func(c game.Config) game.Config { c.Enemies--; return c }), true
	case 'E':
		return game.AdjustInput(func(c game.Config) game.Config { c.Enemies++; return c }), true
	case ',':
		return game.AdjustInput(func(c game.Config) game.Config { c.Delay -= delayStep; return c }), true
	case '.':
		return game.AdjustInput(func(c game.Config) game.Config { c.Delay += delayStep; return c }), true
	}
	return game.KeyInput(string(r)), true
}

// cyclePlayers steps the player count through 1..len(bindings).
func cyclePlayers(c game.Config) game.Config {
	if len(c.Bindings) == 0 {
		return c
	}
	c.Players = c.Players%len(c.Bindings) + 1
	return c
}
